package memorystorage

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"ivcal/internal/storage"
)

// Storage keeps events in insertion order so that grouping downstream stays
// deterministic across repeated reads of the same collection.
type Storage struct {
	mu     sync.RWMutex
	events []storage.Event
	index  map[string]int
}

func New() *Storage {
	return &Storage{index: make(map[string]int)}
}

func (s *Storage) List() []storage.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]storage.Event, len(s.events))
	copy(out, s.events)
	return out
}

// Replace swaps the whole collection, keeping the given order. Events
// without an ID get one assigned.
func (s *Storage) Replace(events []storage.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = make([]storage.Event, 0, len(events))
	s.index = make(map[string]int, len(events))
	for _, e := range events {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		if _, ok := s.index[e.ID]; ok {
			continue
		}
		s.index[e.ID] = len(s.events)
		s.events = append(s.events, e)
	}
}

func (s *Storage) Add(e *storage.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if _, ok := s.index[e.ID]; ok {
		return fmt.Errorf("duplicate ID %q: %w", e.ID, storage.ErrDuplicateEventID)
	}
	s.index[e.ID] = len(s.events)
	s.events = append(s.events, *e)
	return nil
}

// Update replaces the stored event wholesale; the ID is kept.
func (s *Storage) Update(id string, e storage.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("failed to update event with id %q: %w", id, storage.ErrNotFoundEvent)
	}
	e.ID = id
	s.events[i] = e
	return nil
}

// Remove deletes the event if present; an unknown id is a no-op.
func (s *Storage) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok {
		return
	}
	s.events = append(s.events[:i], s.events[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.events); j++ {
		s.index[s.events[j].ID] = j
	}
}
