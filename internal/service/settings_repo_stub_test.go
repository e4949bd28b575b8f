package service_test

import (
	"context"
	"database/sql"
	"sync"
)

// settingsRepoStub is an in-memory SettingsRepository for auth tests.
type settingsRepoStub struct {
	mu   sync.Mutex
	data map[string]string
}

func newSettingsRepoStub() *settingsRepoStub {
	return &settingsRepoStub{data: make(map[string]string)}
}

func (s *settingsRepoStub) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.data[key]
	if !ok {
		return "", sql.ErrNoRows
	}
	return value, nil
}

func (s *settingsRepoStub) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}
