package store

import (
	"context"
	"sync"
)

// MemoryStore keeps the booked set in a process-local map. This is the
// default backend; it is single-instance only and starts empty on every
// process start.
type MemoryStore struct {
	mu     sync.Mutex
	booked map[string]struct{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		booked: make(map[string]struct{}),
	}
}

func (s *MemoryStore) IsBooked(_ context.Context, serviceID, slotID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.booked[Key(serviceID, slotID)]
	return ok, nil
}

func (s *MemoryStore) MarkBooked(_ context.Context, serviceID, slotID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.booked[Key(serviceID, slotID)] = struct{}{}
	return nil
}

func (s *MemoryStore) TryClaim(_ context.Context, serviceID, slotID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := Key(serviceID, slotID)
	if _, ok := s.booked[key]; ok {
		return false, nil
	}
	s.booked[key] = struct{}{}
	return true, nil
}
