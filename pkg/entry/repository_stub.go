package entry

import (
	"context"
	"sort"
	"strconv"
)

type StubRepository struct {
	entries map[string]Entry
	order   []string
	nextId  int
}

func NewStubRepository() *StubRepository {
	return &StubRepository{entries: make(map[string]Entry)}
}

func (s *StubRepository) List(_ context.Context) ([]Entry, error) {
	result := make([]Entry, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.entries[id])
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func (s *StubRepository) Get(_ context.Context, id string) (Entry, error) {
	e, ok := s.entries[id]
	if !ok {
		return Entry{}, ErrEntryNotFound
	}
	return e, nil
}

func (s *StubRepository) Create(_ context.Context, entry Entry) (string, error) {
	s.nextId++
	entry.Id = "entry-" + strconv.Itoa(s.nextId)
	s.entries[entry.Id] = entry
	s.order = append(s.order, entry.Id)
	return entry.Id, nil
}

func (s *StubRepository) Update(_ context.Context, entry Entry) error {
	if _, ok := s.entries[entry.Id]; !ok {
		return ErrEntryNotFound
	}
	s.entries[entry.Id] = entry
	return nil
}

func (s *StubRepository) Delete(_ context.Context, id string) error {
	if _, ok := s.entries[id]; !ok {
		return ErrEntryNotFound
	}
	delete(s.entries, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
