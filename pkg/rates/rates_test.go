package rates

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	t.Run("should return rates for a known rank and band", func(t *testing.T) {
		// when
		r, ok := Lookup(Sergeant, "Sgt - Point 1")

		// then
		require.True(t, ok)
		assert.True(t, decimal.RequireFromString("32.946").Equal(r.R133))
		assert.True(t, decimal.RequireFromString("37.073").Equal(r.R150))
		assert.True(t, decimal.RequireFromString("49.431").Equal(r.R200))
	})

	t.Run("should not find a band that belongs to another rank", func(t *testing.T) {
		// when
		_, ok := Lookup(Sergeant, "PC - Year 4")

		// then
		assert.False(t, ok)
	})

	t.Run("should not find an unknown rank", func(t *testing.T) {
		_, ok := Lookup("Inspector", "Sgt - Point 1")
		assert.False(t, ok)
	})
}

func TestBands(t *testing.T) {
	assert.Equal(t, []ServiceBand{"PC - Year 3", "PC - Year 4", "PC - Year 5", "PC - Year 6", "PC - Year 7+"}, Bands(ConstablePost2013))
	assert.Nil(t, Bands("Inspector"))
}

func TestFirstBand(t *testing.T) {
	band, ok := FirstBand(ConstablePre2013)
	assert.True(t, ok)
	assert.Equal(t, ServiceBand("PC - Year 4"), band)

	_, ok = FirstBand("")
	assert.False(t, ok)
}

func TestRanks(t *testing.T) {
	assert.Equal(t, []Rank{ConstablePre2013, ConstablePost2013, Sergeant}, Ranks())
}

func TestEveryBandHasPositiveRates(t *testing.T) {
	for _, rank := range Ranks() {
		for _, band := range Bands(rank) {
			r, ok := Lookup(rank, band)
			require.True(t, ok)
			assert.True(t, r.R133.IsPositive(), "%s / %s", rank, band)
			assert.True(t, r.R150.GreaterThan(r.R133), "%s / %s", rank, band)
			assert.True(t, r.R200.GreaterThan(r.R150), "%s / %s", rank, band)
		}
	}
}

func TestAllowanceValue(t *testing.T) {
	assert.True(t, AllowanceValue(AllowanceNone).IsZero())
	assert.True(t, decimal.NewFromInt(40).Equal(AllowanceValue(AllowancePA1)))
	assert.True(t, decimal.NewFromInt(90).Equal(AllowanceValue(AllowancePA2)))
	assert.True(t, decimal.NewFromInt(125).Equal(AllowanceValue(AllowancePA3)))
	assert.True(t, AllowanceValue("PA9").IsZero())
	assert.False(t, AllowanceCode("PA9").IsPaying())
	assert.False(t, AllowanceNone.IsPaying())
	assert.True(t, AllowancePA2.IsPaying())
	assert.Equal(t, AllowanceNone, NormalizeAllowance(""))
}

func TestTaxRates(t *testing.T) {
	assert.Equal(t, []int{20, 40, 45}, TaxRates())
	assert.True(t, IsValidTaxRate(DefaultTaxRate))
	assert.False(t, IsValidTaxRate(33))
}
