package utils

import "time"

type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC, so "today" is the same calendar date for every caller.
type SystemClock struct{}

func (s SystemClock) Now() time.Time {
	return time.Now().UTC()
}

type MockClock struct {
	FixedNow time.Time
}

func NewMockClock(now time.Time) *MockClock {
	return &MockClock{FixedNow: now}
}

func (m *MockClock) Now() time.Time {
	return m.FixedNow
}

func (m *MockClock) SetNow(now time.Time) {
	m.FixedNow = now
}

// AddDays moves the mocked clock by whole days.
func (m *MockClock) AddDays(days int) {
	m.FixedNow = m.FixedNow.AddDate(0, 0, days)
}
