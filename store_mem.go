package bankroll

import (
	"fmt"
	"slices"
)

// MemStore is a Store kept in memory, for tests and dry runs.
type MemStore struct {
	records map[string][]byte
	// Fail, when set, is returned by every Put.
	Fail error
}

func NewMemStore() *MemStore { return &MemStore{records: make(map[string][]byte)} }

func (s *MemStore) Get(key string) ([]byte, error) {
	v, ok := s.records[key]
	if !ok {
		return nil, fmt.Errorf("record %q: %w", key, ErrNotFound)
	}
	return slices.Clone(v), nil
}

func (s *MemStore) Put(key string, value []byte) error {
	if s.Fail != nil {
		return s.Fail
	}
	s.records[key] = slices.Clone(value)
	return nil
}

func (s *MemStore) Close() error { return nil }
