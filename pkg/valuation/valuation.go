package valuation

import (
	"github.com/ajshieldpay/otpay/pkg/entry"
	"github.com/ajshieldpay/otpay/pkg/rates"
	"github.com/shopspring/decimal"
)

// Valuation is the gross value of a single entry, split into the hours-based part
// and the flat allowance.
type Valuation struct {
	OvertimeGross  decimal.Decimal
	AllowanceGross decimal.Decimal
}

func (v Valuation) TotalGross() decimal.Decimal {
	return v.OvertimeGross.Add(v.AllowanceGross)
}

// Valuate prices an entry against the given tier rates. Negative hours count as zero and an
// unknown allowance code is worth nothing.
func Valuate(e entry.Entry, r rates.TierRates) Valuation {
	overtime := entry.NonNegative(e.Hours133).Mul(r.R133).
		Add(entry.NonNegative(e.Hours150).Mul(r.R150)).
		Add(entry.NonNegative(e.Hours200).Mul(r.R200))
	return Valuation{
		OvertimeGross:  overtime,
		AllowanceGross: rates.AllowanceValue(e.Allowance),
	}
}

// Net applies a flat tax percentage to a gross amount: gross * (100 - taxRate) / 100.
// The result is exact, no rounding takes place.
func Net(gross decimal.Decimal, taxRate int) decimal.Decimal {
	return gross.Mul(decimal.NewFromInt(int64(100 - taxRate))).Shift(-2)
}
