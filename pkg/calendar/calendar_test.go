package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_PeriodsPartitionTheFiscalYear(t *testing.T) {
	cal := Default()
	periods := cal.Periods()

	require.Len(t, periods, 12)
	assert.Equal(t, Date(2026, time.February, 9), cal.Start())
	assert.Equal(t, Date(2027, time.February, 7), cal.End())
	assert.Equal(t, cal.Start(), periods[0].Start)
	assert.Equal(t, cal.End(), periods[11].End)

	totalDays := 0
	for i, p := range periods {
		assert.False(t, p.End.Before(p.Start), p.Label)
		totalDays += p.Days()
		if i > 0 {
			assert.Equal(t, periods[i-1].End.AddDate(0, 0, 1), p.Start, "%s must start the day after %s ends", p.Label, periods[i-1].Label)
		}
		for j, other := range periods {
			if i == j {
				continue
			}
			overlap := !p.End.Before(other.Start) && !other.End.Before(p.Start)
			assert.False(t, overlap, "%s overlaps %s", p.Label, other.Label)
		}
	}
	fiscalDays := int(cal.End().Sub(cal.Start()).Hours()/24) + 1
	assert.Equal(t, fiscalDays, totalDays)
}

func TestDefault_EveryFiscalDayMapsToExactlyOnePeriod(t *testing.T) {
	cal := Default()
	for d := cal.Start(); !d.After(cal.End()); d = d.AddDate(0, 0, 1) {
		matches := 0
		for _, p := range cal.Periods() {
			if p.Contains(d) {
				matches++
			}
		}
		assert.Equal(t, 1, matches, FormatDate(d))
	}
}

func TestCalendar_IndexOf(t *testing.T) {
	cal := Default()

	t.Run("should include both ends of a period", func(t *testing.T) {
		idx, ok := cal.IndexOf(Date(2026, time.February, 9))
		assert.True(t, ok)
		assert.Equal(t, 0, idx)

		idx, ok = cal.IndexOf(Date(2026, time.March, 8))
		assert.True(t, ok)
		assert.Equal(t, 0, idx)
	})

	t.Run("should assign the day after a period end to the next period", func(t *testing.T) {
		idx, ok := cal.IndexOf(Date(2026, time.March, 9))
		assert.True(t, ok)
		assert.Equal(t, 1, idx)
	})

	t.Run("should ignore the clock part of a timestamp", func(t *testing.T) {
		idx, ok := cal.IndexOf(time.Date(2027, time.February, 7, 23, 59, 0, 0, time.UTC))
		assert.True(t, ok)
		assert.Equal(t, 11, idx)
	})

	t.Run("should not find dates outside the fiscal year", func(t *testing.T) {
		_, ok := cal.IndexOf(Date(2026, time.February, 8))
		assert.False(t, ok)
		_, ok = cal.IndexOf(Date(2027, time.February, 8))
		assert.False(t, ok)
	})
}

func TestCalendar_At(t *testing.T) {
	cal := Default()

	p, ok := cal.At(11)
	assert.True(t, ok)
	assert.Equal(t, "March 2027", p.Label)

	_, ok = cal.At(-1)
	assert.False(t, ok)
	_, ok = cal.At(12)
	assert.False(t, ok)
}

func TestCalendar_Offset(t *testing.T) {
	cal := Default()
	today := Date(2026, time.October, 17)

	current, ok := cal.Offset(today, 0)
	assert.True(t, ok)
	assert.Equal(t, "December 2026", current.Label)

	next, ok := cal.Offset(today, 1)
	assert.True(t, ok)
	assert.Equal(t, "January 2027", next.Label)

	_, ok = cal.Offset(Date(2027, time.February, 1), 1)
	assert.False(t, ok)
}

func TestCalendar_DefaultEntryDate(t *testing.T) {
	cal := Default()
	assert.Equal(t, Date(2026, time.October, 17), cal.DefaultEntryDate(time.Date(2026, time.October, 17, 14, 30, 0, 0, time.UTC)))
	assert.Equal(t, cal.Start(), cal.DefaultEntryDate(Date(2027, time.March, 1)))
	assert.Equal(t, cal.Start(), cal.DefaultEntryDate(Date(2025, time.December, 25)))
}

func TestNew(t *testing.T) {
	t.Run("should reject a gap between periods", func(t *testing.T) {
		_, err := New([]Period{
			{Label: "A", Start: Date(2026, 1, 1), End: Date(2026, 1, 31)},
			{Label: "B", Start: Date(2026, 2, 2), End: Date(2026, 2, 28)},
		})
		assert.ErrorIs(t, err, ErrPeriodsNotContiguous)
	})

	t.Run("should reject overlapping periods", func(t *testing.T) {
		_, err := New([]Period{
			{Label: "A", Start: Date(2026, 1, 1), End: Date(2026, 1, 31)},
			{Label: "B", Start: Date(2026, 1, 31), End: Date(2026, 2, 28)},
		})
		assert.ErrorIs(t, err, ErrPeriodsNotContiguous)
	})

	t.Run("should reject an empty calendar", func(t *testing.T) {
		_, err := New(nil)
		assert.ErrorIs(t, err, ErrNoPeriods)
	})

	t.Run("should accept the compiled-in periods", func(t *testing.T) {
		cal, err := New(Default().Periods())
		require.NoError(t, err)
		assert.Equal(t, 12, cal.Len())
	})
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-08")
	require.NoError(t, err)
	assert.Equal(t, Date(2026, time.March, 8), d)

	_, err = ParseDate("08/03/2026")
	assert.Error(t, err)
}
