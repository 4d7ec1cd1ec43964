package entry

import (
	"context"
	"testing"
	"time"

	"github.com/ajshieldpay/otpay/internal/event_bus"
	"github.com/ajshieldpay/otpay/internal/utils"
	"github.com/ajshieldpay/otpay/pkg/calendar"
	"github.com/ajshieldpay/otpay/pkg/rates"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedEvent struct {
	eventType event_bus.EventType
	data      event_bus.EntryChanged
}

func setupService(t *testing.T) (*ServiceImpl, *StubRepository, *[]recordedEvent) {
	t.Helper()
	repo := NewStubRepository()
	bus := event_bus.NewEventBus()
	var events []recordedEvent
	for _, et := range event_bus.EntryEventTypes {
		event_bus.SubscribeTyped(bus, et, func(e event_bus.EventT[event_bus.EntryChanged]) error {
			events = append(events, recordedEvent{e.Type, e.Data})
			return nil
		})
	}
	service := NewService(repo, bus, calendar.Default(), utils.NewMockClock(time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)))
	return service, repo, &events
}

func TestServiceImpl_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("should store the entry and publish entry.created", func(t *testing.T) {
		// given
		service, repo, events := setupService(t)
		e := Entry{
			Date:     calendar.Date(2026, 2, 9),
			Reason:   "  Late job ",
			Hours133: decimal.NewFromInt(4),
		}

		// when
		created, err := service.Create(ctx, e)

		// then
		require.NoError(t, err)
		assert.NotEmpty(t, created.Id)
		assert.Equal(t, "Late job", created.Reason)
		assert.Equal(t, rates.AllowanceNone, created.Allowance)
		stored, err := repo.Get(ctx, created.Id)
		require.NoError(t, err)
		assert.Equal(t, created, stored)
		require.Len(t, *events, 1)
		assert.Equal(t, event_bus.EntryCreated, (*events)[0].eventType)
		assert.Equal(t, created.Id, (*events)[0].data.Id)
		assert.Equal(t, calendar.Date(2026, 2, 9), (*events)[0].data.Date)
	})

	t.Run("should not store an empty entry", func(t *testing.T) {
		// given
		service, repo, events := setupService(t)
		e := Entry{Date: calendar.Date(2026, 3, 1), Allowance: rates.AllowanceNone, Comments: " "}

		// when
		_, err := service.Create(ctx, e)

		// then
		assert.ErrorIs(t, err, ErrEmptyEntry)
		entries, _ := repo.List(ctx)
		assert.Empty(t, entries)
		assert.Empty(t, *events)
	})

	t.Run("should reject an entry without a date", func(t *testing.T) {
		// given
		service, _, _ := setupService(t)

		// when
		_, err := service.Create(ctx, Entry{Hours150: decimal.NewFromInt(1)})

		// then
		assert.ErrorIs(t, err, ErrDateRequired)
	})

	t.Run("should store negative hours as zero", func(t *testing.T) {
		// given
		service, _, _ := setupService(t)
		e := Entry{Date: calendar.Date(2026, 3, 1), Hours133: decimal.NewFromInt(-2), Allowance: rates.AllowancePA1}

		// when
		created, err := service.Create(ctx, e)

		// then
		require.NoError(t, err)
		assert.True(t, created.Hours133.IsZero())
	})
}

func TestServiceImpl_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("should replace the entry and publish entry.updated", func(t *testing.T) {
		// given
		service, _, events := setupService(t)
		created, err := service.Create(ctx, Entry{Date: calendar.Date(2026, 4, 1), Hours133: decimal.NewFromInt(1)})
		require.NoError(t, err)

		// when
		updated, err := service.Update(ctx, created.Id, Entry{Date: calendar.Date(2026, 4, 2), Hours200: decimal.NewFromInt(3)})

		// then
		require.NoError(t, err)
		assert.Equal(t, created.Id, updated.Id)
		stored, err := service.Get(ctx, created.Id)
		require.NoError(t, err)
		assert.Equal(t, calendar.Date(2026, 4, 2), stored.Date)
		assert.Equal(t, "3", stored.Hours200.String())
		require.Len(t, *events, 2)
		assert.Equal(t, event_bus.EntryUpdated, (*events)[1].eventType)
	})

	t.Run("should fail for an unknown id", func(t *testing.T) {
		// given
		service, _, events := setupService(t)

		// when
		_, err := service.Update(ctx, "missing", Entry{Date: calendar.Date(2026, 4, 2), Reason: "x"})

		// then
		assert.ErrorIs(t, err, ErrEntryNotFound)
		assert.Empty(t, *events)
	})
}

func TestServiceImpl_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("should remove the entry and publish entry.deleted with its date", func(t *testing.T) {
		// given
		service, repo, events := setupService(t)
		created, err := service.Create(ctx, Entry{Date: calendar.Date(2026, 5, 5), Reason: "Football"})
		require.NoError(t, err)

		// when
		err = service.Delete(ctx, created.Id)

		// then
		require.NoError(t, err)
		_, err = repo.Get(ctx, created.Id)
		assert.ErrorIs(t, err, ErrEntryNotFound)
		require.Len(t, *events, 2)
		assert.Equal(t, event_bus.EntryDeleted, (*events)[1].eventType)
		assert.Equal(t, calendar.Date(2026, 5, 5), (*events)[1].data.Date)
	})

	t.Run("should fail for an unknown id", func(t *testing.T) {
		// given
		service, _, _ := setupService(t)

		// when
		err := service.Delete(ctx, "missing")

		// then
		assert.ErrorIs(t, err, ErrEntryNotFound)
	})
}

func TestServiceImpl_NewDraft(t *testing.T) {
	t.Run("should default to the fiscal-year start outside the fiscal year", func(t *testing.T) {
		// given
		service, _, _ := setupService(t)
		service.clock = utils.NewMockClock(time.Date(2027, 3, 1, 8, 0, 0, 0, time.UTC))

		// when
		draft := service.NewDraft()

		// then
		assert.Equal(t, calendar.Date(2026, 2, 9), draft.Date)
	})

	// given
	service, _, _ := setupService(t)

	// when
	draft := service.NewDraft()

	// then
	assert.Equal(t, calendar.Date(2026, 10, 17), draft.Date)
	assert.Equal(t, rates.AllowanceNone, draft.Allowance)
	assert.True(t, draft.IsEmpty())
}
