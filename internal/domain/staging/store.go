package staging

import (
	"context"
	"sync"
)

// Store persists pending batches per operator and slot. Writes are whole-
// batch replacements (last writer wins); there is no merging between
// concurrent writers, matching the single-operator assumption of the
// original console.
type Store interface {
	// Get returns the batch for a slot, empty when absent.
	Get(ctx context.Context, userID string, slot Slot) ([]Entry, error)

	// Set replaces the batch for a slot.
	Set(ctx context.Context, userID string, slot Slot, entries []Entry) error

	// Clear removes the batch for a slot.
	Clear(ctx context.Context, userID string, slot Slot) error
}

// MemoryStore is an in-process Store used in tests and single-node dev runs.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]Entry
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]Entry)}
}

func memoryKey(userID string, slot Slot) string {
	return userID + "|" + string(slot)
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, userID string, slot Slot) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, ok := s.data[memoryKey(userID, slot)]
	if !ok {
		return nil, nil
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out, nil
}

// Set implements Store.
func (s *MemoryStore) Set(_ context.Context, userID string, slot Slot, entries []Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]Entry, len(entries))
	copy(stored, entries)
	s.data[memoryKey(userID, slot)] = stored
	return nil
}

// Clear implements Store.
func (s *MemoryStore) Clear(_ context.Context, userID string, slot Slot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, memoryKey(userID, slot))
	return nil
}
