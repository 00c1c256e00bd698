package ui

import "github.com/charmbracelet/bubbles/key"

var keys = struct {
	Quit      key.Binding
	Prev      key.Binding
	Next      key.Binding
	NextGroup key.Binding
	PrevGroup key.Binding
	Open      key.Binding
	Back      key.Binding
	DayView   key.Binding
	WeekView  key.Binding
	MonthView key.Binding
	YearView  key.Binding
	Today     key.Binding
	Add       key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Reload    key.Binding
}{
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	Prev:      key.NewBinding(key.WithKeys("left", "h")),
	Next:      key.NewBinding(key.WithKeys("right", "l")),
	NextGroup: key.NewBinding(key.WithKeys("tab", "j", "down")),
	PrevGroup: key.NewBinding(key.WithKeys("shift+tab", "k", "up")),
	Open:      key.NewBinding(key.WithKeys("enter")),
	Back:      key.NewBinding(key.WithKeys("esc")),
	DayView:   key.NewBinding(key.WithKeys("d")),
	WeekView:  key.NewBinding(key.WithKeys("w")),
	MonthView: key.NewBinding(key.WithKeys("m")),
	YearView:  key.NewBinding(key.WithKeys("y")),
	Today:     key.NewBinding(key.WithKeys("t")),
	Add:       key.NewBinding(key.WithKeys("a")),
	Edit:      key.NewBinding(key.WithKeys("e")),
	Delete:    key.NewBinding(key.WithKeys("x", "delete")),
	Reload:    key.NewBinding(key.WithKeys("r")),
}
