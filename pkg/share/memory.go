package share

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-memory share store for development and testing.
type MemoryStore struct {
	mu   sync.RWMutex
	sets map[string]Set
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sets: make(map[string]Set)}
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*Set, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set, ok := s.sets[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := set
	return &out, nil
}

func (s *MemoryStore) Put(ctx context.Context, set *Set) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *set
	stored.UpdatedAt = time.Now().UTC()
	s.sets[set.ID] = stored
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sets, id)
	return nil
}

func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

var _ Store = (*MemoryStore)(nil)
