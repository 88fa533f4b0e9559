package settings

import (
	"context"
	"sync"
)

// MemoryStore keeps settings in memory. It backs dry runs such as the simulate command.
type MemoryStore struct {
	mu     sync.Mutex
	values Values
}

// NewMemoryStore creates a store holding v.
func NewMemoryStore(v Values) *MemoryStore {
	return &MemoryStore{values: v.Normalize()}
}

// Load returns a copy of the held values.
func (s *MemoryStore) Load(_ context.Context) (Values, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.values), nil
}

// Save replaces the held values.
func (s *MemoryStore) Save(_ context.Context, v Values) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = clone(v.Normalize())
	return nil
}

func clone(v Values) Values {
	v.EnabledPotions = append([]string{}, v.EnabledPotions...)
	v.AllowedEffects = append([]string{}, v.AllowedEffects...)
	return v
}
