package rates

import (
	"github.com/shopspring/decimal"
)

type Rank string

type ServiceBand string

// TierRates holds the hourly rates paid for the 1.33x, 1.50x and 2.00x overtime tiers.
type TierRates struct {
	R133 decimal.Decimal
	R150 decimal.Decimal
	R200 decimal.Decimal
}

// IsZero reports whether no tier pays anything, which is the case until a rank is selected.
func (r TierRates) IsZero() bool {
	return r.R133.IsZero() && r.R150.IsZero() && r.R200.IsZero()
}

type band struct {
	name  ServiceBand
	rates TierRates
}

type rankBands struct {
	rank  Rank
	bands []band
}

const (
	ConstablePre2013  Rank = "Constable (Joined Pre 2013)"
	ConstablePost2013 Rank = "Constable (Joined Post 2013)"
	Sergeant          Rank = "Sergeant"
)

// table is kept as an ordered slice: the first band of a rank is the fallback when a band is invalid.
var table = []rankBands{
	{
		rank: ConstablePre2013,
		bands: []band{
			{"PC - Year 4", tier("25.688", "28.906", "38.541")},
			{"PC - Year 5", tier("26.47", "29.787", "39.715")},
			{"PC - Year 6", tier("28.677", "32.27", "43.027")},
			{"PC - Year 7+", tier("30.91", "34.782", "46.376")},
		},
	},
	{
		rank: ConstablePost2013,
		bands: []band{
			{"PC - Year 3", tier("20.781", "23.385", "31.18")},
			{"PC - Year 4", tier("21.591", "24.296", "32.394")},
			{"PC - Year 5", tier("23.21", "26.117", "34.823")},
			{"PC - Year 6", tier("26.47", "29.787", "39.715")},
			{"PC - Year 7+", tier("30.91", "34.782", "46.376")},
		},
	},
	{
		rank: Sergeant,
		bands: []band{
			{"Sgt - Point 1", tier("32.946", "37.073", "49.431")},
			{"Sgt - Point 2", tier("33.619", "37.83", "50.44")},
			{"Sgt - Point 3+", tier("34.57", "38.901", "51.868")},
		},
	},
}

func tier(r133, r150, r200 string) TierRates {
	return TierRates{
		R133: decimal.RequireFromString(r133),
		R150: decimal.RequireFromString(r150),
		R200: decimal.RequireFromString(r200),
	}
}

// Ranks returns all ranks in table order.
func Ranks() []Rank {
	ranks := make([]Rank, 0, len(table))
	for _, r := range table {
		ranks = append(ranks, r.rank)
	}
	return ranks
}

// Bands returns the service bands of the rank in table order, or nil for an unknown rank.
func Bands(rank Rank) []ServiceBand {
	rb, ok := findRank(rank)
	if !ok {
		return nil
	}
	bands := make([]ServiceBand, 0, len(rb.bands))
	for _, b := range rb.bands {
		bands = append(bands, b.name)
	}
	return bands
}

func IsValidRank(rank Rank) bool {
	_, ok := findRank(rank)
	return ok
}

// IsValidBand reports whether band is a key under rank.
func IsValidBand(rank Rank, band ServiceBand) bool {
	_, ok := Lookup(rank, band)
	return ok
}

// FirstBand returns the first enumerated band for the rank.
func FirstBand(rank Rank) (ServiceBand, bool) {
	rb, ok := findRank(rank)
	if !ok || len(rb.bands) == 0 {
		return "", false
	}
	return rb.bands[0].name, true
}

// Lookup returns the tier rates for (rank, band).
func Lookup(rank Rank, band ServiceBand) (TierRates, bool) {
	rb, ok := findRank(rank)
	if !ok {
		return TierRates{}, false
	}
	for _, b := range rb.bands {
		if b.name == band {
			return b.rates, true
		}
	}
	return TierRates{}, false
}

func findRank(rank Rank) (rankBands, bool) {
	for _, rb := range table {
		if rb.rank == rank {
			return rb, true
		}
	}
	return rankBands{}, false
}
