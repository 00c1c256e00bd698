// Package view holds the ephemeral UI state: the navigation anchor
// (reference date + view mode) and the selection machine. Both are mutated
// only through their intent methods; renderers read them as values.
package view

import (
	"time"

	"ivcal/internal/timeutil"
)

type Mode int

const (
	ModeDay Mode = iota
	ModeWeek
	ModeMonth
	ModeYear
)

func (m Mode) String() string {
	switch m {
	case ModeDay:
		return "day"
	case ModeWeek:
		return "week"
	case ModeMonth:
		return "month"
	case ModeYear:
		return "year"
	}
	return "unknown"
}

// Nav anchors the grid to a reference date in one of the four view modes.
type Nav struct {
	Reference time.Time
	Mode      Mode
}

func NewNav() Nav {
	return Nav{Reference: timeutil.TruncateToDay(time.Now()), Mode: ModeDay}
}

// Advance shifts the reference date by dir units of the current mode;
// dir is +1 for next, -1 for prev.
func (n *Nav) Advance(dir int) {
	switch n.Mode {
	case ModeDay:
		n.Reference = n.Reference.AddDate(0, 0, dir)
	case ModeWeek:
		n.Reference = n.Reference.AddDate(0, 0, 7*dir)
	case ModeMonth:
		n.Reference = n.Reference.AddDate(0, dir, 0)
	case ModeYear:
		n.Reference = n.Reference.AddDate(dir, 0, 0)
	}
}

// SwitchView changes the mode without touching the reference date, except
// that entering day mode snaps back to today.
func (n *Nav) SwitchView(m Mode) {
	n.switchViewAt(m, time.Now())
}

func (n *Nav) switchViewAt(m Mode, now time.Time) {
	if m == ModeDay && n.Mode != ModeDay {
		n.Reference = timeutil.TruncateToDay(now)
	}
	n.Mode = m
}

// Today jumps the reference date to the current real-world date.
func (n *Nav) Today() {
	n.Reference = timeutil.TruncateToDay(time.Now())
}
