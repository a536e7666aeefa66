// Package prefstore keeps each user's selected model for the lifetime of the
// process. Nothing is persisted; a restart clears all picks.
package prefstore

import "sync"

type Store struct {
	mu           sync.RWMutex
	models       map[int64]string
	defaultModel string
}

func New(defaultModel string) *Store {
	return &Store{
		models:       make(map[int64]string),
		defaultModel: defaultModel,
	}
}

// Set unconditionally overwrites any previous pick.
func (s *Store) Set(userID int64, modelID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.models[userID] = modelID
}

func (s *Store) Get(userID int64) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.models[userID]
	return id, ok
}

func (s *Store) GetOrDefault(userID int64) string {
	if id, ok := s.Get(userID); ok {
		return id
	}
	return s.defaultModel
}

func (s *Store) Has(userID int64) bool {
	_, ok := s.Get(userID)
	return ok
}
