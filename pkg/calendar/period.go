package calendar

import (
	"time"
)

const dateLayout = time.DateOnly

// Period is one pay period. Start and End are both inclusive calendar dates.
type Period struct {
	Label string
	Short string
	Start time.Time
	End   time.Time
}

// Contains returns true if the date is within [Start, End].
func (p Period) Contains(date time.Time) bool {
	d := DateOf(date)
	return !d.Before(p.Start) && !d.After(p.End)
}

// Days returns the number of days in the period, both ends included.
func (p Period) Days() int {
	return int(p.End.Sub(p.Start).Hours()/24) + 1
}

func (p Period) String() string {
	return p.Label + " [" + p.Start.Format(dateLayout) + ", " + p.End.Format(dateLayout) + "]"
}

// Date builds a calendar date at UTC midnight.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOf drops the clock part of t, keeping its calendar date as seen in t's own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return Date(y, m, d)
}

// ParseDate parses an ISO calendar date (2006-01-02).
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(t), nil
}

// FormatDate renders an ISO calendar date.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func mustDate(s string) time.Time {
	t, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}
