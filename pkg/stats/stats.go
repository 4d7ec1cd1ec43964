package stats

import (
	"time"

	"github.com/ajshieldpay/otpay/pkg/calendar"
	"github.com/ajshieldpay/otpay/pkg/entry"
	"github.com/ajshieldpay/otpay/pkg/rates"
	"github.com/shopspring/decimal"
)

// YearTotals sums the whole fiscal year. TotalHours counts worked hours even when no rank
// is selected, while the money figures stay zero until rates exist.
type YearTotals struct {
	GrossOvertime  decimal.Decimal
	GrossAllowance decimal.Decimal
	TotalGross     decimal.Decimal
	TotalNet       decimal.Decimal
	TotalHours     decimal.Decimal
}

type PeriodStats struct {
	Period calendar.Period
	Gross  decimal.Decimal
	Net    decimal.Decimal
}

// PeriodWindow holds the periods around today. Each is nil when it does not exist.
type PeriodWindow struct {
	Previous *PeriodStats
	Current  *PeriodStats
	Next     *PeriodStats
}

type HoursByTier struct {
	Tier133 decimal.Decimal
	Tier150 decimal.Decimal
	Tier200 decimal.Decimal
}

func (h HoursByTier) Total() decimal.Decimal {
	return h.Tier133.Add(h.Tier150).Add(h.Tier200)
}

type PeriodBreakdown struct {
	Period          calendar.Period
	Hours           HoursByTier
	AllowanceCounts map[rates.AllowanceCode]int
	OvertimeGross   decimal.Decimal
	OvertimeNet     decimal.Decimal
	AllowanceGross  decimal.Decimal
	AllowanceNet    decimal.Decimal
	TotalGross      decimal.Decimal
	TotalNet        decimal.Decimal
	// Entries of the period sorted by date, for drill-down.
	Entries []entry.Entry
}

type GraphPoint struct {
	Period        calendar.Period
	GrossOvertime decimal.Decimal
	NetOvertime   decimal.Decimal
}

// Graph is the overtime-only series over all periods. Max scales the bars and is never below 100.
type Graph struct {
	Points []GraphPoint
	Max    decimal.Decimal
}

type Dashboard struct {
	Date    time.Time
	TaxRate int
	Totals  YearTotals
	Window  PeriodWindow
}
