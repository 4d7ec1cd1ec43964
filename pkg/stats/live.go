package stats

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ajshieldpay/otpay/internal/event_bus"
	"github.com/ajshieldpay/otpay/internal/utils"
	"github.com/ajshieldpay/otpay/pkg/calendar"
	log "github.com/sirupsen/logrus"
)

// LiveSnapshot is the latest dashboard with the revision it was computed at.
type LiveSnapshot struct {
	Dashboard  Dashboard
	Revision   uint64
	ComputedAt time.Time
}

// LiveDashboard keeps a dashboard in memory and recomputes it from scratch whenever an entry
// or the settings change, locally or (with the Postgres store) in another process.
type LiveDashboard struct {
	service     StatsService
	clock       utils.Clock
	started     atomic.Uint64
	mu          sync.RWMutex
	snapshot    LiveSnapshot
	stored      uint64
	unsubscribe func()
}

func NewLiveDashboard(service StatsService, eventBus *event_bus.EventBus, clock utils.Clock) *LiveDashboard {
	live := &LiveDashboard{service: service, clock: clock}
	types := append([]event_bus.EventType{event_bus.SettingsChanged}, event_bus.EntryEventTypes...)
	live.unsubscribe = eventBus.SubscribeMany(types, func(e event_bus.Event) error {
		log.Debugf("Refreshing live dashboard after %s", e.Type)
		return live.Refresh(e.Context())
	})
	return live
}

// Refresh reloads entries and settings and replaces the held dashboard. Refreshes may overlap;
// a result is dropped when a refresh started later has already been stored.
func (l *LiveDashboard) Refresh(ctx context.Context) error {
	seq := l.started.Add(1)
	dashboard, err := l.service.Dashboard(ctx)
	if err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if seq < l.stored {
		log.Debugf("Dropping live dashboard refresh %d, refresh %d is newer", seq, l.stored)
		return nil
	}
	l.stored = seq
	l.snapshot = LiveSnapshot{
		Dashboard:  dashboard,
		Revision:   l.snapshot.Revision + 1,
		ComputedAt: l.clock.Now(),
	}
	return nil
}

// Current returns the held dashboard. It is recomputed first when nothing was computed yet
// or when it was computed on an earlier day, since the current period depends on today.
func (l *LiveDashboard) Current(ctx context.Context) (LiveSnapshot, error) {
	l.mu.RLock()
	snapshot := l.snapshot
	l.mu.RUnlock()

	today := calendar.DateOf(l.clock.Now())
	if snapshot.Revision > 0 && snapshot.Dashboard.Date.Equal(today) {
		return snapshot, nil
	}
	if err := l.Refresh(ctx); err != nil {
		return LiveSnapshot{}, err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.snapshot, nil
}

// Close stops listening for changes.
func (l *LiveDashboard) Close() {
	if l.unsubscribe != nil {
		l.unsubscribe()
	}
}
