package store

import (
	"context"
	"sync"
)

// MemoryStore is a mutex-guarded in-process store for tests and single-node
// deployments. Like the other adapters it never evicts: the last record per
// city stays readable for stale fallback.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]Record),
	}
}

func (s *MemoryStore) Load(_ context.Context, cityID string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, exists := s.data[cityID]
	if !exists {
		return nil, nil
	}
	copied := record
	return &copied, nil
}

func (s *MemoryStore) Save(_ context.Context, record *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[record.CityID] = *record
	return nil
}
