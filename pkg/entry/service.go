package entry

import (
	"context"
	"fmt"

	"github.com/ajshieldpay/otpay/internal/event_bus"
	"github.com/ajshieldpay/otpay/internal/utils"
	"github.com/ajshieldpay/otpay/pkg/calendar"
	"github.com/ajshieldpay/otpay/pkg/rates"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	List(ctx context.Context) ([]Entry, error)
	Get(ctx context.Context, id string) (Entry, error)
	// Create stores a new entry. An entry without any content is not stored and ErrEmptyEntry is returned.
	Create(ctx context.Context, entry Entry) (Entry, error)
	// Update replaces the entry with the given id, following the same emptiness rule as Create.
	Update(ctx context.Context, id string, entry Entry) (Entry, error)
	Delete(ctx context.Context, id string) error
	// NewDraft returns a blank entry with the date the entry form should start from.
	NewDraft() Entry
}

type ServiceImpl struct {
	repo     Repository
	eventBus *event_bus.EventBus
	calendar *calendar.Calendar
	clock    utils.Clock
}

func NewService(repo Repository, eventBus *event_bus.EventBus, cal *calendar.Calendar, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo, eventBus, cal, clock}
}

func (s *ServiceImpl) List(ctx context.Context) ([]Entry, error) {
	return s.repo.List(ctx)
}

func (s *ServiceImpl) Get(ctx context.Context, id string) (Entry, error) {
	return s.repo.Get(ctx, id)
}

func (s *ServiceImpl) Create(ctx context.Context, entry Entry) (Entry, error) {
	if err := validate(entry); err != nil {
		return Entry{}, err
	}
	entry = normalize(entry)

	id, err := s.repo.Create(ctx, entry)
	if err != nil {
		return Entry{}, err
	}
	entry.Id = id
	log.Debugf("entry %s stored for %s", id, calendar.FormatDate(entry.Date))

	s.publish(ctx, event_bus.EntryCreated, entry)
	return entry, nil
}

func (s *ServiceImpl) Update(ctx context.Context, id string, entry Entry) (Entry, error) {
	if err := validate(entry); err != nil {
		return Entry{}, err
	}
	entry = normalize(entry)
	entry.Id = id

	if err := s.repo.Update(ctx, entry); err != nil {
		return Entry{}, err
	}

	s.publish(ctx, event_bus.EntryUpdated, entry)
	return entry, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.publish(ctx, event_bus.EntryDeleted, existing)
	return nil
}

func (s *ServiceImpl) NewDraft() Entry {
	return Entry{
		Date:      s.calendar.DefaultEntryDate(s.clock.Now()),
		Hours133:  decimal.Zero,
		Hours150:  decimal.Zero,
		Hours200:  decimal.Zero,
		Allowance: rates.AllowanceNone,
	}
}

// The entry is already stored when this runs, so a failing subscriber is only logged.
// Subscribers rebuild their views from the store, so the next change repairs them.
func (s *ServiceImpl) publish(ctx context.Context, eventType event_bus.EventType, entry Entry) {
	err := s.eventBus.Publish(event_bus.NewEvent(ctx, eventType, event_bus.EntryChanged{
		Id:   entry.Id,
		Date: entry.Date,
	}))
	if err != nil {
		log.Errorf("failed to publish %s for entry %s: %v", eventType, entry.Id, err)
	}
}

func validate(entry Entry) error {
	if entry.IsEmpty() {
		return ErrEmptyEntry
	}
	if entry.Date.IsZero() {
		return fmt.Errorf("%w: entry has content but no date", ErrDateRequired)
	}
	return nil
}
