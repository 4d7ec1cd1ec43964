package stats

import (
	"context"

	"github.com/ajshieldpay/otpay/pkg/entry"
	"github.com/ajshieldpay/otpay/pkg/settings"
)

type entryListerStub struct {
	entries []entry.Entry
	err     error
	calls   int
}

func (s *entryListerStub) List(_ context.Context) ([]entry.Entry, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.entries, nil
}

type settingsReaderStub struct {
	settings settings.Settings
	err      error
}

func (s *settingsReaderStub) Get(_ context.Context) (settings.Settings, error) {
	if s.err != nil {
		return settings.Settings{}, s.err
	}
	return s.settings, nil
}
