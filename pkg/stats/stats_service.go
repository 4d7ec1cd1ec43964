package stats

import (
	"context"

	"github.com/ajshieldpay/otpay/internal/utils"
	"github.com/ajshieldpay/otpay/pkg/entry"
	"github.com/ajshieldpay/otpay/pkg/settings"
	log "github.com/sirupsen/logrus"
)

type StatsService interface {
	Dashboard(ctx context.Context) (Dashboard, error)
	Breakdown(ctx context.Context) ([]PeriodBreakdown, error)
	Graph(ctx context.Context) (Graph, error)
}

type EntryLister interface {
	List(ctx context.Context) ([]entry.Entry, error)
}

type SettingsReader interface {
	Get(ctx context.Context) (settings.Settings, error)
}

// StatsServiceImpl loads a fresh snapshot of entries and settings on every call and hands it
// to the Aggregator, so results always reflect the store.
type StatsServiceImpl struct {
	entries    EntryLister
	settings   SettingsReader
	aggregator *Aggregator
	clock      utils.Clock
}

func NewStatsServiceImpl(entries EntryLister, settings SettingsReader, aggregator *Aggregator, clock utils.Clock) *StatsServiceImpl {
	return &StatsServiceImpl{
		entries:    entries,
		settings:   settings,
		aggregator: aggregator,
		clock:      clock,
	}
}

func (s *StatsServiceImpl) Dashboard(ctx context.Context) (Dashboard, error) {
	entries, cfg, err := s.snapshot(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	return s.aggregator.Dashboard(entries, cfg, s.clock.Now()), nil
}

func (s *StatsServiceImpl) Breakdown(ctx context.Context) ([]PeriodBreakdown, error) {
	entries, cfg, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return s.aggregator.MonthlyBreakdown(entries, cfg), nil
}

func (s *StatsServiceImpl) Graph(ctx context.Context) (Graph, error) {
	entries, cfg, err := s.snapshot(ctx)
	if err != nil {
		return Graph{}, err
	}
	return s.aggregator.GraphSeries(entries, cfg), nil
}

func (s *StatsServiceImpl) snapshot(ctx context.Context) ([]entry.Entry, settings.Settings, error) {
	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, settings.Settings{}, err
	}
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, settings.Settings{}, err
	}
	log.Tracef("Aggregating %d entries for %s/%s", len(entries), cfg.Rank, cfg.ServiceBand)
	return entries, cfg, nil
}
