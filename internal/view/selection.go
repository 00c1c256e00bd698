package view

import (
	"ivcal/internal/storage"
)

type SelectionState int

const (
	Idle SelectionState = iota
	SingleSelected
	MultiOpen
)

// Selection decides how a clicked cell group discloses: a group of one opens
// the detail view directly, a larger group opens the multi-event list first.
// At most one of the two disclosure states is active at a time.
type Selection struct {
	state SelectionState
	event storage.Event
	group []storage.Event
}

func (s *Selection) State() SelectionState {
	return s.state
}

// Event is the selected event; valid only in SingleSelected.
func (s *Selection) Event() storage.Event {
	return s.event
}

// Group is the open multi-event list; valid only in MultiOpen.
func (s *Selection) Group() []storage.Event {
	return s.group
}

// Activate handles a cell click on a group. An empty group is ignored.
func (s *Selection) Activate(group []storage.Event) {
	switch len(group) {
	case 0:
	case 1:
		s.state = SingleSelected
		s.event = group[0]
		s.group = nil
	default:
		s.state = MultiOpen
		s.group = group
		s.event = storage.Event{}
	}
}

// Choose picks one event out of an open multi-event list, closing the list.
func (s *Selection) Choose(e storage.Event) {
	s.state = SingleSelected
	s.event = e
	s.group = nil
}

// Clear returns to Idle from any state.
func (s *Selection) Clear() {
	*s = Selection{}
}
