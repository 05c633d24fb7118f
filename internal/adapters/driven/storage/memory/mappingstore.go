// Package memory provides in-memory implementations of the driven storage
// ports, used as test doubles and for ephemeral runs.
package memory

import (
	"sync"

	"github.com/ludwa6/customer-support/internal/core/domain"
	"github.com/ludwa6/customer-support/internal/core/ports/driven"
)

// Ensure MappingStore implements the interface.
var _ driven.MappingStore = (*MappingStore)(nil)

// MappingStore is an in-memory implementation of driven.MappingStore.
type MappingStore struct {
	mu      sync.RWMutex
	mapping domain.DatabaseMapping
	saves   int
}

// NewMappingStore creates a new in-memory mapping store.
func NewMappingStore() *MappingStore {
	return &MappingStore{}
}

// Load returns the stored mapping.
func (s *MappingStore) Load() (domain.DatabaseMapping, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mapping, nil
}

// Save replaces the stored mapping wholesale.
func (s *MappingStore) Save(mapping domain.DatabaseMapping) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mapping = mapping
	s.saves++
	return nil
}

// SaveCount reports how many times Save was called. Useful in tests.
func (s *MappingStore) SaveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}
