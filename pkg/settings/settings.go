package settings

import (
	"errors"

	"github.com/ajshieldpay/otpay/pkg/rates"
)

var ErrSettingsNotFound = errors.New("settings not found")
var ErrInvalidRank = errors.New("unknown rank")
var ErrInvalidServiceBand = errors.New("service band cannot be chosen without a rank")
var ErrInvalidTaxRate = errors.New("unsupported tax rate")

// Settings is the single user's pay configuration. Rates is a copy taken from the rate
// table when rank or band was chosen; later changes to the table do not touch it.
type Settings struct {
	Rank        rates.Rank
	ServiceBand rates.ServiceBand
	Rates       rates.TierRates
	TaxRate     int
}

// Default is used until anything has been stored: no rank, nothing paid per hour, 40% tax.
func Default() Settings {
	return Settings{TaxRate: rates.DefaultTaxRate}
}

func (s Settings) HasRank() bool {
	return s.Rank != ""
}

// EffectiveTaxRate is the percentage used for net amounts. An unset rate means the default.
func (s Settings) EffectiveTaxRate() int {
	if s.TaxRate == 0 {
		return rates.DefaultTaxRate
	}
	return s.TaxRate
}

// WithRank selects a new rank. The current band is kept when the rank offers it, otherwise the
// rank's first band is taken. Clearing the rank clears the band and zeroes the rates.
func (s Settings) WithRank(rank rates.Rank) Settings {
	return s.resolve(rank, s.ServiceBand)
}

// WithServiceBand selects a band under the current rank. A band the rank does not offer
// falls back to its first band. Without a rank nothing changes.
func (s Settings) WithServiceBand(band rates.ServiceBand) Settings {
	if !s.HasRank() {
		return s
	}
	return s.resolve(s.Rank, band)
}

func (s Settings) WithTaxRate(pct int) Settings {
	s.TaxRate = pct
	return s
}

// Repaired fixes a stored band that is no longer valid for the stored rank. The rate
// snapshot is only retaken when the band actually changes.
func (s Settings) Repaired() Settings {
	if !s.HasRank() || !rates.IsValidRank(s.Rank) || rates.IsValidBand(s.Rank, s.ServiceBand) {
		return s
	}
	return s.resolve(s.Rank, s.ServiceBand)
}

func (s Settings) resolve(rank rates.Rank, band rates.ServiceBand) Settings {
	if rank == "" || !rates.IsValidRank(rank) {
		s.Rank = ""
		s.ServiceBand = ""
		s.Rates = rates.TierRates{}
		return s
	}
	if !rates.IsValidBand(rank, band) {
		band, _ = rates.FirstBand(rank)
	}
	s.Rank = rank
	s.ServiceBand = band
	s.Rates, _ = rates.Lookup(rank, band)
	return s
}
