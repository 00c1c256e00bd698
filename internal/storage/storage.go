package storage

import (
	"errors"
)

var (
	ErrDuplicateEventID = errors.New("event with same ID exists")
	ErrNotFoundEvent    = errors.New("event not found")
)

// Store owns the in-memory event collection. List returns events in
// insertion order; callers treat the returned slice as read-only for the
// duration of a render pass.
type Store interface {
	List() []Event
	Replace(events []Event)
	Add(e *Event) error
	Update(id string, e Event) error
	Remove(id string)
}
