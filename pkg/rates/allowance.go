package rates

import "github.com/shopspring/decimal"

// AllowanceCode identifies a flat allowance (PA) paid independently of hours worked.
type AllowanceCode string

const (
	AllowanceNone AllowanceCode = "None"
	AllowancePA1  AllowanceCode = "PA1"
	AllowancePA2  AllowanceCode = "PA2"
	AllowancePA3  AllowanceCode = "PA3"
)

var allowances = map[AllowanceCode]decimal.Decimal{
	AllowanceNone: decimal.Zero,
	AllowancePA1:  decimal.NewFromInt(40),
	AllowancePA2:  decimal.NewFromInt(90),
	AllowancePA3:  decimal.NewFromInt(125),
}

// AllowanceCodes lists the codes that pay something, in ascending order.
func AllowanceCodes() []AllowanceCode {
	return []AllowanceCode{AllowancePA1, AllowancePA2, AllowancePA3}
}

// AllowanceValue returns the flat amount for the code. Unknown codes are worth nothing.
func AllowanceValue(code AllowanceCode) decimal.Decimal {
	if v, ok := allowances[code]; ok {
		return v
	}
	return decimal.Zero
}

// IsPaying reports whether the code is a known allowance other than None.
func (c AllowanceCode) IsPaying() bool {
	_, ok := allowances[c]
	return ok && c != AllowanceNone
}

// NormalizeAllowance maps blank input to None and leaves everything else untouched.
func NormalizeAllowance(code string) AllowanceCode {
	if code == "" {
		return AllowanceNone
	}
	return AllowanceCode(code)
}
