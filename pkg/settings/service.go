package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/ajshieldpay/otpay/internal/event_bus"
	"github.com/ajshieldpay/otpay/pkg/rates"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	// Get returns the stored settings, or the defaults when nothing was stored yet.
	Get(ctx context.Context) (Settings, error)
	// SetRank selects a rank. preferredBand is kept when the rank offers it; when empty the
	// currently selected band is tried instead. An empty rank clears rank, band and rates.
	SetRank(ctx context.Context, rank rates.Rank, preferredBand rates.ServiceBand) (Settings, error)
	SetServiceBand(ctx context.Context, band rates.ServiceBand) (Settings, error)
	SetTaxRate(ctx context.Context, pct int) (Settings, error)
	Options() Options
}

type RankOption struct {
	Rank  rates.Rank
	Bands []rates.ServiceBand
}

// Options lists everything the settings can be set to.
type Options struct {
	Ranks      []RankOption
	TaxRates   []int
	Allowances []rates.AllowanceCode
}

type ServiceImpl struct {
	repo     Repository
	eventBus *event_bus.EventBus
}

func NewService(repo Repository, eventBus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo, eventBus}
}

func (s *ServiceImpl) Get(ctx context.Context) (Settings, error) {
	stored, err := s.repo.Load(ctx)
	if errors.Is(err, ErrSettingsNotFound) {
		return Default(), nil
	}
	if err != nil {
		return Settings{}, err
	}
	return stored.Repaired(), nil
}

func (s *ServiceImpl) SetRank(ctx context.Context, rank rates.Rank, preferredBand rates.ServiceBand) (Settings, error) {
	if rank != "" && !rates.IsValidRank(rank) {
		return Settings{}, fmt.Errorf("%w: %q", ErrInvalidRank, rank)
	}
	current, err := s.Get(ctx)
	if err != nil {
		return Settings{}, err
	}
	if preferredBand != "" {
		current.ServiceBand = preferredBand
	}
	return s.save(ctx, current.WithRank(rank))
}

func (s *ServiceImpl) SetServiceBand(ctx context.Context, band rates.ServiceBand) (Settings, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return Settings{}, err
	}
	if !current.HasRank() {
		return Settings{}, ErrInvalidServiceBand
	}
	updated := current.WithServiceBand(band)
	if updated.ServiceBand != band {
		log.Debugf("band %q not offered for %s, using %q", band, updated.Rank, updated.ServiceBand)
	}
	return s.save(ctx, updated)
}

func (s *ServiceImpl) SetTaxRate(ctx context.Context, pct int) (Settings, error) {
	if !rates.IsValidTaxRate(pct) {
		return Settings{}, fmt.Errorf("%w: %d (allowed %v)", ErrInvalidTaxRate, pct, rates.TaxRates())
	}
	current, err := s.Get(ctx)
	if err != nil {
		return Settings{}, err
	}
	return s.save(ctx, current.WithTaxRate(pct))
}

func (s *ServiceImpl) Options() Options {
	ranks := make([]RankOption, 0, len(rates.Ranks()))
	for _, rank := range rates.Ranks() {
		ranks = append(ranks, RankOption{Rank: rank, Bands: rates.Bands(rank)})
	}
	return Options{
		Ranks:      ranks,
		TaxRates:   rates.TaxRates(),
		Allowances: rates.AllowanceCodes(),
	}
}

func (s *ServiceImpl) save(ctx context.Context, settings Settings) (Settings, error) {
	if err := s.repo.Save(ctx, settings); err != nil {
		return Settings{}, err
	}
	err := s.eventBus.Publish(event_bus.NewEvent(ctx, event_bus.SettingsChanged, event_bus.SettingsUpdated{
		Rank:        string(settings.Rank),
		ServiceBand: string(settings.ServiceBand),
		TaxRate:     settings.TaxRate,
	}))
	if err != nil {
		log.Errorf("failed to publish settings change: %v", err)
	}
	return settings, nil
}
