package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ajshieldpay/otpay/internal/changefeed"
	"github.com/ajshieldpay/otpay/internal/config"
	"github.com/ajshieldpay/otpay/internal/database"
	"github.com/ajshieldpay/otpay/internal/event_bus"
	"github.com/ajshieldpay/otpay/internal/utils"
	"github.com/ajshieldpay/otpay/pkg/calendar"
	"github.com/ajshieldpay/otpay/pkg/entry"
	"github.com/ajshieldpay/otpay/pkg/settings"
	"github.com/ajshieldpay/otpay/pkg/stats"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// Stores are the repositories of the configured backend. Pool is only set for Postgres.
type Stores struct {
	Entries  entry.Repository
	Settings settings.Repository
	Pool     *pgxpool.Pool
	close    func()
}

func (s *Stores) Close() {
	if s.close != nil {
		s.close()
	}
}

// OpenStores connects to the configured backend and brings its schema up to date.
func OpenStores(ctx context.Context, cfg config.Application) (*Stores, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		db, err := database.OpenSQLite(cfg.Storage.SQLite.Path)
		if err != nil {
			return nil, err
		}
		return SQLiteStores(db), nil
	case config.BackendPostgres:
		if err := database.Migrate(cfg.Database); err != nil {
			return nil, err
		}
		pool, err := database.Open(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		return &Stores{
			Entries:  entry.NewRepo(pool),
			Settings: settings.NewRepo(pool),
			Pool:     pool,
			close:    pool.Close,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.Storage.Backend)
	}
}

func SQLiteStores(db *sql.DB) *Stores {
	return &Stores{
		Entries:  entry.NewSQLiteRepo(db),
		Settings: settings.NewSQLiteRepo(db),
		close: func() {
			if err := db.Close(); err != nil {
				log.Errorf("failed to close local store: %v", err)
			}
		},
	}
}

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.EventBus
	Calendar *calendar.Calendar
	Clock    utils.Clock

	EntryService *entry.ServiceImpl
	EntryHandler *entry.Handler

	SettingsService *settings.ServiceImpl
	SettingsHandler *settings.Handler

	StatsService     *stats.StatsServiceImpl
	CsvStatsRenderer *stats.CsvStatsRendererImpl
	LiveDashboard    *stats.LiveDashboard
	StatsHandler     *stats.StatsHandler

	CalendarHandler *calendar.Handler

	// ChangeFeed is nil unless the store can push changes made by other processes.
	ChangeFeed *changefeed.Listener
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(stores *Stores) *Dependencies {
	deps := &Dependencies{}

	deps.EventBus = event_bus.NewEventBus()
	deps.Calendar = calendar.Default()
	deps.Clock = utils.SystemClock{}

	deps.EntryService = entry.NewService(stores.Entries, deps.EventBus, deps.Calendar, deps.Clock)
	deps.EntryHandler = entry.NewHandler(deps.EntryService)

	deps.SettingsService = settings.NewService(stores.Settings, deps.EventBus)
	deps.SettingsHandler = settings.NewHandler(deps.SettingsService)

	deps.StatsService = stats.NewStatsServiceImpl(deps.EntryService, deps.SettingsService, stats.NewAggregator(deps.Calendar), deps.Clock)
	deps.CsvStatsRenderer = stats.NewCsvStatsRenderer()
	deps.LiveDashboard = stats.NewLiveDashboard(deps.StatsService, deps.EventBus, deps.Clock)
	deps.StatsHandler = stats.NewStatsHandler(deps.StatsService, deps.CsvStatsRenderer, deps.LiveDashboard)

	deps.CalendarHandler = calendar.NewHandler(deps.Calendar, deps.Clock.Now)

	if stores.Pool != nil {
		deps.ChangeFeed = changefeed.NewListener(stores.Pool, deps.EventBus)
	}

	return deps
}
