package stats

import (
	"sort"
	"time"

	"github.com/ajshieldpay/otpay/pkg/calendar"
	"github.com/ajshieldpay/otpay/pkg/entry"
	"github.com/ajshieldpay/otpay/pkg/rates"
	"github.com/ajshieldpay/otpay/pkg/settings"
	"github.com/ajshieldpay/otpay/pkg/valuation"
	"github.com/shopspring/decimal"
)

var graphFloor = decimal.NewFromInt(100)

// Aggregator turns a snapshot of entries and settings into the dashboard, breakdown and graph
// figures. It keeps no state between calls and never modifies its inputs.
type Aggregator struct {
	calendar *calendar.Calendar
}

func NewAggregator(cal *calendar.Calendar) *Aggregator {
	return &Aggregator{calendar: cal}
}

// FiscalYearEntries keeps the entries dated within the fiscal year, bounds included.
func (a *Aggregator) FiscalYearEntries(all []entry.Entry) []entry.Entry {
	result := make([]entry.Entry, 0, len(all))
	for _, e := range all {
		if a.calendar.InFiscalYear(e.Date) {
			result = append(result, e)
		}
	}
	return result
}

func (a *Aggregator) YearTotals(entries []entry.Entry, cfg settings.Settings) YearTotals {
	totals := YearTotals{
		GrossOvertime:  decimal.Zero,
		GrossAllowance: decimal.Zero,
		TotalHours:     decimal.Zero,
	}
	for _, e := range a.FiscalYearEntries(entries) {
		v := valuation.Valuate(e, cfg.Rates)
		totals.GrossOvertime = totals.GrossOvertime.Add(v.OvertimeGross)
		totals.GrossAllowance = totals.GrossAllowance.Add(v.AllowanceGross)
		totals.TotalHours = totals.TotalHours.Add(e.TotalHours())
	}
	totals.TotalGross = totals.GrossOvertime.Add(totals.GrossAllowance)
	totals.TotalNet = valuation.Net(totals.TotalGross, cfg.EffectiveTaxRate())
	return totals
}

// PeriodStats values the entries of the period at index idx, allowances included.
// It returns nil when idx is outside the calendar.
func (a *Aggregator) PeriodStats(entries []entry.Entry, cfg settings.Settings, idx int) *PeriodStats {
	period, ok := a.calendar.At(idx)
	if !ok {
		return nil
	}
	gross := decimal.Zero
	for _, e := range entries {
		if period.Contains(e.Date) {
			gross = gross.Add(valuation.Valuate(e, cfg.Rates).TotalGross())
		}
	}
	return &PeriodStats{
		Period: period,
		Gross:  gross,
		Net:    valuation.Net(gross, cfg.EffectiveTaxRate()),
	}
}

// CurrentPeriodWindow returns the period containing today with its neighbours. Outside the
// fiscal year there is no current period and the whole window is empty.
func (a *Aggregator) CurrentPeriodWindow(entries []entry.Entry, cfg settings.Settings, today time.Time) PeriodWindow {
	idx, ok := a.calendar.IndexOf(today)
	if !ok {
		return PeriodWindow{}
	}
	return PeriodWindow{
		Previous: a.PeriodStats(entries, cfg, idx-1),
		Current:  a.PeriodStats(entries, cfg, idx),
		Next:     a.PeriodStats(entries, cfg, idx+1),
	}
}

func (a *Aggregator) MonthlyBreakdown(entries []entry.Entry, cfg settings.Settings) []PeriodBreakdown {
	taxRate := cfg.EffectiveTaxRate()
	periods := a.calendar.Periods()
	result := make([]PeriodBreakdown, 0, len(periods))
	for _, period := range periods {
		b := PeriodBreakdown{
			Period:          period,
			Hours:           HoursByTier{Tier133: decimal.Zero, Tier150: decimal.Zero, Tier200: decimal.Zero},
			AllowanceCounts: make(map[rates.AllowanceCode]int, len(rates.AllowanceCodes())),
			OvertimeGross:   decimal.Zero,
			AllowanceGross:  decimal.Zero,
			Entries:         entriesIn(period, entries),
		}
		for _, code := range rates.AllowanceCodes() {
			b.AllowanceCounts[code] = 0
		}
		for _, e := range b.Entries {
			b.Hours.Tier133 = b.Hours.Tier133.Add(entry.NonNegative(e.Hours133))
			b.Hours.Tier150 = b.Hours.Tier150.Add(entry.NonNegative(e.Hours150))
			b.Hours.Tier200 = b.Hours.Tier200.Add(entry.NonNegative(e.Hours200))
			if e.Allowance.IsPaying() {
				b.AllowanceCounts[e.Allowance]++
			}
			v := valuation.Valuate(e, cfg.Rates)
			b.OvertimeGross = b.OvertimeGross.Add(v.OvertimeGross)
			b.AllowanceGross = b.AllowanceGross.Add(v.AllowanceGross)
		}
		b.OvertimeNet = valuation.Net(b.OvertimeGross, taxRate)
		b.AllowanceNet = valuation.Net(b.AllowanceGross, taxRate)
		b.TotalGross = b.OvertimeGross.Add(b.AllowanceGross)
		b.TotalNet = b.OvertimeNet.Add(b.AllowanceNet)
		result = append(result, b)
	}
	return result
}

// GraphSeries charts overtime pay per period. Allowances are left out.
func (a *Aggregator) GraphSeries(entries []entry.Entry, cfg settings.Settings) Graph {
	taxRate := cfg.EffectiveTaxRate()
	periods := a.calendar.Periods()
	graph := Graph{Points: make([]GraphPoint, 0, len(periods)), Max: graphFloor}
	for _, period := range periods {
		gross := decimal.Zero
		for _, e := range entries {
			if period.Contains(e.Date) {
				gross = gross.Add(valuation.Valuate(e, cfg.Rates).OvertimeGross)
			}
		}
		graph.Points = append(graph.Points, GraphPoint{
			Period:        period,
			GrossOvertime: gross,
			NetOvertime:   valuation.Net(gross, taxRate),
		})
		graph.Max = decimal.Max(graph.Max, gross)
	}
	return graph
}

func (a *Aggregator) Dashboard(entries []entry.Entry, cfg settings.Settings, today time.Time) Dashboard {
	return Dashboard{
		Date:    calendar.DateOf(today),
		TaxRate: cfg.EffectiveTaxRate(),
		Totals:  a.YearTotals(entries, cfg),
		Window:  a.CurrentPeriodWindow(entries, cfg, today),
	}
}

func entriesIn(period calendar.Period, entries []entry.Entry) []entry.Entry {
	result := make([]entry.Entry, 0)
	for _, e := range entries {
		if period.Contains(e.Date) {
			result = append(result, e)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result
}
