package settings

import "context"

type StubRepository struct {
	stored  *Settings
	SaveErr error
}

func NewStubRepository() *StubRepository {
	return &StubRepository{}
}

func (s *StubRepository) Load(_ context.Context) (Settings, error) {
	if s.stored == nil {
		return Settings{}, ErrSettingsNotFound
	}
	return *s.stored, nil
}

func (s *StubRepository) Save(_ context.Context, settings Settings) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.stored = &settings
	return nil
}
