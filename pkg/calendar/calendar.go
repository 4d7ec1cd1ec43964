package calendar

import (
	"errors"
	"fmt"
	"time"
)

var ErrNoPeriods = errors.New("calendar has no periods")
var ErrPeriodsNotContiguous = errors.New("pay periods are not contiguous")

// Calendar is an ordered, contiguous, non-overlapping sequence of pay periods.
// The first period's start and the last period's end are the fiscal-year bounds.
type Calendar struct {
	periods []Period
}

var fiscalYear2026 = []Period{
	{Label: "April 2026", Short: "Apr", Start: mustDate("2026-02-09"), End: mustDate("2026-03-08")},
	{Label: "May 2026", Short: "May", Start: mustDate("2026-03-09"), End: mustDate("2026-04-12")},
	{Label: "June 2026", Short: "Jun", Start: mustDate("2026-04-13"), End: mustDate("2026-05-10")},
	{Label: "July 2026", Short: "Jul", Start: mustDate("2026-05-11"), End: mustDate("2026-06-07")},
	{Label: "August 2026", Short: "Aug", Start: mustDate("2026-06-08"), End: mustDate("2026-07-12")},
	{Label: "September 2026", Short: "Sep", Start: mustDate("2026-07-13"), End: mustDate("2026-08-09")},
	{Label: "October 2026", Short: "Oct", Start: mustDate("2026-08-10"), End: mustDate("2026-09-06")},
	{Label: "November 2026", Short: "Nov", Start: mustDate("2026-09-07"), End: mustDate("2026-10-11")},
	{Label: "December 2026", Short: "Dec", Start: mustDate("2026-10-12"), End: mustDate("2026-11-08")},
	{Label: "January 2027", Short: "Jan", Start: mustDate("2026-11-09"), End: mustDate("2026-12-06")},
	{Label: "February 2027", Short: "Feb", Start: mustDate("2026-12-07"), End: mustDate("2027-01-10")},
	{Label: "March 2027", Short: "Mar", Start: mustDate("2027-01-11"), End: mustDate("2027-02-07")},
}

var fiscalYear2026Calendar = &Calendar{periods: fiscalYear2026}

// Default returns the compiled-in calendar for the 2026/27 fiscal year.
func Default() *Calendar {
	return fiscalYear2026Calendar
}

// New validates the periods and builds a calendar from them.
func New(periods []Period) (*Calendar, error) {
	if len(periods) == 0 {
		return nil, ErrNoPeriods
	}
	normalized := make([]Period, 0, len(periods))
	for i, p := range periods {
		p.Start = DateOf(p.Start)
		p.End = DateOf(p.End)
		if p.End.Before(p.Start) {
			return nil, fmt.Errorf("period %q ends before it starts", p.Label)
		}
		if i > 0 {
			prev := normalized[i-1]
			if !p.Start.Equal(prev.End.AddDate(0, 0, 1)) {
				return nil, fmt.Errorf("%w: %q starts %s, expected the day after %s",
					ErrPeriodsNotContiguous, p.Label, FormatDate(p.Start), FormatDate(prev.End))
			}
		}
		normalized = append(normalized, p)
	}
	return &Calendar{periods: normalized}, nil
}

// Len returns the number of periods.
func (c *Calendar) Len() int {
	return len(c.periods)
}

// Periods returns a copy of all periods in calendar order.
func (c *Calendar) Periods() []Period {
	out := make([]Period, len(c.periods))
	copy(out, c.periods)
	return out
}

// Start is the first day of the fiscal year.
func (c *Calendar) Start() time.Time {
	return c.periods[0].Start
}

// End is the last day of the fiscal year.
func (c *Calendar) End() time.Time {
	return c.periods[len(c.periods)-1].End
}

// InFiscalYear reports whether the date falls within [Start, End].
func (c *Calendar) InFiscalYear(date time.Time) bool {
	d := DateOf(date)
	return !d.Before(c.Start()) && !d.After(c.End())
}

// IndexOf returns the index of the period containing the date, scanning in order.
func (c *Calendar) IndexOf(date time.Time) (int, bool) {
	for i, p := range c.periods {
		if p.Contains(date) {
			return i, true
		}
	}
	return -1, false
}

// At returns the period at index i.
func (c *Calendar) At(i int) (Period, bool) {
	if i < 0 || i >= len(c.periods) {
		return Period{}, false
	}
	return c.periods[i], true
}

// Offset returns the period n positions away from the one containing date.
func (c *Calendar) Offset(date time.Time, n int) (Period, bool) {
	idx, ok := c.IndexOf(date)
	if !ok {
		return Period{}, false
	}
	return c.At(idx + n)
}

// DefaultEntryDate is today when today is inside the fiscal year, the fiscal-year start otherwise.
func (c *Calendar) DefaultEntryDate(today time.Time) time.Time {
	if c.InFiscalYear(today) {
		return DateOf(today)
	}
	return c.Start()
}
