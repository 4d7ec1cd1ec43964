package changefeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ajshieldpay/otpay/internal/event_bus"
	"github.com/ajshieldpay/otpay/pkg/calendar"
	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// Channels written by the triggers in migrations/postgres.
const (
	EntryChannel    = "entry_changes"
	SettingsChannel = "settings_changes"
)

var ErrUnknownChannel = errors.New("unknown notification channel")

// Listener forwards Postgres notifications to the event bus, so that changes made by other
// processes sharing the database reach the same subscribers as local ones.
type Listener struct {
	pool     *pgxpool.Pool
	eventBus *event_bus.EventBus
}

func NewListener(pool *pgxpool.Pool, eventBus *event_bus.EventBus) *Listener {
	return &Listener{pool, eventBus}
}

// Run listens until ctx is done. A lost connection is re-acquired with exponential backoff,
// which starts over once LISTEN succeeds again.
func (l *Listener) Run(ctx context.Context) error {
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = 0
	err := backoff.RetryNotify(func() error {
		return l.listen(ctx, b.Reset)
	}, backoff.WithContext(b, ctx), func(err error, wait time.Duration) {
		log.Warnf("change feed interrupted, retrying in %s: %v", wait.Round(time.Millisecond), err)
	})
	if ctx.Err() != nil {
		return nil
	}
	return err
}

func (l *Listener) listen(ctx context.Context, connected func()) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquiring listener connection: %w", err)
	}
	defer conn.Release()

	for _, channel := range []string{EntryChannel, SettingsChannel} {
		if _, err := conn.Exec(ctx, "LISTEN "+channel); err != nil {
			return fmt.Errorf("listening on %s: %w", channel, err)
		}
	}
	log.Infof("Listening for changes on %s and %s", EntryChannel, SettingsChannel)
	connected()

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}
		event, err := ToEvent(ctx, notification)
		if err != nil {
			log.Errorf("ignoring notification on %s: %v", notification.Channel, err)
			continue
		}
		if err := l.eventBus.Publish(event); err != nil {
			log.Errorf("handling %s notification: %v", event.Type, err)
		}
	}
}

type entryPayload struct {
	Op   string `json:"op"`
	Id   string `json:"id"`
	Date string `json:"date"`
}

type settingsPayload struct {
	Rank    string `json:"rank"`
	Service string `json:"service"`
	TaxRate int    `json:"taxRate"`
}

// ToEvent decodes a trigger payload into the matching bus event.
func ToEvent(ctx context.Context, n *pgconn.Notification) (event_bus.Event, error) {
	switch n.Channel {
	case EntryChannel:
		var p entryPayload
		if err := json.Unmarshal([]byte(n.Payload), &p); err != nil {
			return event_bus.Event{}, fmt.Errorf("decoding entry payload: %w", err)
		}
		var eventType event_bus.EventType
		switch p.Op {
		case "INSERT":
			eventType = event_bus.EntryCreated
		case "UPDATE":
			eventType = event_bus.EntryUpdated
		case "DELETE":
			eventType = event_bus.EntryDeleted
		default:
			return event_bus.Event{}, fmt.Errorf("unexpected operation %q", p.Op)
		}
		changed := event_bus.EntryChanged{Id: p.Id, Remote: true}
		if p.Date != "" {
			date, err := calendar.ParseDate(p.Date)
			if err != nil {
				return event_bus.Event{}, fmt.Errorf("decoding entry date: %w", err)
			}
			changed.Date = date
		}
		return event_bus.NewEvent(ctx, eventType, changed), nil
	case SettingsChannel:
		var p settingsPayload
		if err := json.Unmarshal([]byte(n.Payload), &p); err != nil {
			return event_bus.Event{}, fmt.Errorf("decoding settings payload: %w", err)
		}
		return event_bus.NewEvent(ctx, event_bus.SettingsChanged, event_bus.SettingsUpdated{
			Rank:        p.Rank,
			ServiceBand: p.Service,
			TaxRate:     p.TaxRate,
			Remote:      true,
		}), nil
	default:
		return event_bus.Event{}, fmt.Errorf("%w: %s", ErrUnknownChannel, n.Channel)
	}
}
