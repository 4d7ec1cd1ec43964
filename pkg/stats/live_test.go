package stats

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ajshieldpay/otpay/internal/event_bus"
	"github.com/ajshieldpay/otpay/internal/utils"
	"github.com/ajshieldpay/otpay/pkg/calendar"
	"github.com/ajshieldpay/otpay/pkg/entry"
	"github.com/ajshieldpay/otpay/pkg/rates"
	"github.com/ajshieldpay/otpay/pkg/settings"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type liveFixture struct {
	live     *LiveDashboard
	bus      *event_bus.EventBus
	repo     *entry.StubRepository
	entries  *entry.ServiceImpl
	settings *settings.ServiceImpl
	clock    *utils.MockClock
}

func setupLive(t *testing.T) liveFixture {
	t.Helper()
	now := utils.NewMockClock(time.Date(2026, 2, 20, 8, 0, 0, 0, time.UTC))
	bus := event_bus.NewEventBus()
	repo := entry.NewStubRepository()
	entries := entry.NewService(repo, bus, calendar.Default(), now)
	settingsService := settings.NewService(settings.NewStubRepository(), bus)

	service := NewStatsServiceImpl(entries, settingsService, NewAggregator(calendar.Default()), now)
	live := NewLiveDashboard(service, bus, now)
	t.Cleanup(live.Close)
	return liveFixture{live, bus, repo, entries, settingsService, now}
}

func TestLiveDashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("should compute on first read", func(t *testing.T) {
		// given
		f := setupLive(t)

		// when
		snapshot, err := f.live.Current(ctx)

		// then
		require.NoError(t, err)
		assert.Equal(t, uint64(1), snapshot.Revision)
		assert.True(t, snapshot.Dashboard.Totals.TotalHours.IsZero())
	})

	t.Run("should recompute when an entry is stored", func(t *testing.T) {
		// given
		f := setupLive(t)
		_, err := f.live.Current(ctx)
		require.NoError(t, err)

		// when
		_, err = f.entries.Create(ctx, on(2026, 2, 9).entry(hours("4", "0", "0")))
		require.NoError(t, err)

		// then
		snapshot, err := f.live.Current(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), snapshot.Revision)
		assert.Equal(t, "4", snapshot.Dashboard.Totals.TotalHours.String())
		assert.True(t, snapshot.Dashboard.Totals.TotalGross.IsZero(), "no rank selected yet")
	})

	t.Run("should recompute when settings change", func(t *testing.T) {
		// given
		f := setupLive(t)
		_, err := f.repo.Create(ctx, on(2026, 2, 9).entry(hours("4", "0", "0")))
		require.NoError(t, err)
		before, err := f.live.Current(ctx)
		require.NoError(t, err)

		// when
		_, err = f.settings.SetRank(ctx, rates.Sergeant, "Sgt - Point 1")
		require.NoError(t, err)

		// then
		snapshot, err := f.live.Current(ctx)
		require.NoError(t, err)
		assert.True(t, before.Dashboard.Totals.TotalGross.IsZero())
		assert.Equal(t, uint64(2), snapshot.Revision)
		assert.Equal(t, "131.784", snapshot.Dashboard.Totals.TotalGross.String())
		assert.Equal(t, "79.0704", snapshot.Dashboard.Totals.TotalNet.String())
	})

	t.Run("should follow remote deltas published on the bus", func(t *testing.T) {
		// given
		f := setupLive(t)
		id, err := f.repo.Create(ctx, on(2026, 2, 12).entry(hours("0", "2", "0")))
		require.NoError(t, err)
		_, err = f.live.Current(ctx)
		require.NoError(t, err)

		// when
		require.NoError(t, f.repo.Delete(ctx, id))
		err = f.bus.Publish(event_bus.NewEvent(ctx, event_bus.EntryDeleted, event_bus.EntryChanged{Id: id, Remote: true}))

		// then
		require.NoError(t, err)
		snapshot, err := f.live.Current(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), snapshot.Revision)
		assert.True(t, snapshot.Dashboard.Totals.TotalHours.IsZero())
	})

	t.Run("should recompute on a new day", func(t *testing.T) {
		// given
		f := setupLive(t)
		first, err := f.live.Current(ctx)
		require.NoError(t, err)

		// when
		f.clock.AddDays(30)
		second, err := f.live.Current(ctx)

		// then
		require.NoError(t, err)
		assert.Equal(t, first.Revision+1, second.Revision)
		assert.Equal(t, "April 2026", first.Dashboard.Window.Current.Period.Label)
		assert.Equal(t, "May 2026", second.Dashboard.Window.Current.Period.Label)
	})

	t.Run("should stop refreshing once closed", func(t *testing.T) {
		// given
		f := setupLive(t)
		_, err := f.live.Current(ctx)
		require.NoError(t, err)

		// when
		f.live.Close()
		require.NoError(t, f.bus.Publish(event_bus.NewEvent(ctx, event_bus.EntryCreated, event_bus.EntryChanged{})))

		// then
		snapshot, err := f.live.Current(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), snapshot.Revision)
	})
}

// gatedStatsService holds its first Dashboard call until released, so a later refresh can
// finish while an earlier one is still computing.
type gatedStatsService struct {
	mu           sync.Mutex
	calls        int
	today        time.Time
	firstStarted chan struct{}
	releaseFirst chan struct{}
}

func (s *gatedStatsService) Dashboard(_ context.Context) (Dashboard, error) {
	s.mu.Lock()
	s.calls++
	call := s.calls
	s.mu.Unlock()

	if call == 1 {
		close(s.firstStarted)
		<-s.releaseFirst
	}
	return Dashboard{Date: s.today, Totals: YearTotals{TotalHours: decimal.NewFromInt(int64(call))}}, nil
}

func (s *gatedStatsService) Breakdown(_ context.Context) ([]PeriodBreakdown, error) {
	return nil, nil
}

func (s *gatedStatsService) Graph(_ context.Context) (Graph, error) {
	return Graph{}, nil
}

func TestLiveDashboard_OverlappingRefreshes(t *testing.T) {
	// given
	ctx := context.Background()
	now := utils.NewMockClock(time.Date(2026, 2, 20, 8, 0, 0, 0, time.UTC))
	service := &gatedStatsService{
		today:        calendar.DateOf(now.Now()),
		firstStarted: make(chan struct{}),
		releaseFirst: make(chan struct{}),
	}
	live := NewLiveDashboard(service, event_bus.NewEventBus(), now)
	t.Cleanup(live.Close)

	slow := make(chan error, 1)
	go func() { slow <- live.Refresh(ctx) }()
	<-service.firstStarted

	// when
	require.NoError(t, live.Refresh(ctx))
	close(service.releaseFirst)
	require.NoError(t, <-slow)

	// then
	snapshot, err := live.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2", snapshot.Dashboard.Totals.TotalHours.String(), "the earlier computation must not replace the later one")
	assert.Equal(t, uint64(1), snapshot.Revision)
}
