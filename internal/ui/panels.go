package ui

import (
	"fmt"
	"strings"

	"ivcal/internal/storage"
	"ivcal/internal/timeutil"
)

func (m *Model) detailView() string {
	e := m.sel.Event()
	var b strings.Builder

	b.WriteString(titleStyle.Render(e.Title))
	b.WriteString("\n")
	if e.Description != "" {
		b.WriteString(e.Description)
		b.WriteString("\n")
	}
	if e.Interviewer != "" {
		b.WriteString("Interviewer: " + e.Interviewer)
		b.WriteString("\n")
	}
	b.WriteString("Date: " + formatDetailDate(e.Date))
	b.WriteString("\n")
	b.WriteString("Time: " + e.StartTime)
	if e.EndTime != "" {
		b.WriteString(" - " + e.EndTime)
	}
	if e.Link != "" {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(e.Link))
	}
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("e edit  x delete  esc close"))

	return panelStyle.Render(b.String())
}

// formatDetailDate renders "2025-08-29" as "29th August 2025"; a date that
// fails to parse is shown as stored.
func formatDetailDate(date string) string {
	d, err := timeutil.ParseCalendarDate(date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s %s %d", timeutil.OrdinalDay(d.Day()), d.Month(), d.Year())
}

func (m *Model) multiView() string {
	group := m.sel.Group()
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%d interviews", len(group))))
	b.WriteString("\n")
	for i, e := range group {
		line := fmt.Sprintf("%s %s", e.StartTime, e.Title)
		if e.Description != "" {
			line += mutedStyle.Render(" (" + e.Description + ")")
		}
		if i == m.multiIdx {
			b.WriteString(focusStyle.Render("▸ "))
			b.WriteString(line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("↑/↓ choose  enter open  esc close"))

	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func (m *Model) confirmView() string {
	e := m.sel.Event()
	var b strings.Builder
	b.WriteString(dangerStyle.Bold(true).Render("Delete interview?"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%q on %s at %s\n\n", e.Title, formatDetailDate(e.Date), e.StartTime))
	b.WriteString(mutedStyle.Render("y delete  n cancel"))
	return panelStyle.Render(b.String())
}

func (m *Model) helpView() string {
	hints := []string{
		helpKeyStyle.Render("←/→") + " prev/next",
		helpKeyStyle.Render("tab") + " cycle",
		helpKeyStyle.Render("enter") + " open",
		helpKeyStyle.Render("d/w/m/y") + " view",
		helpKeyStyle.Render("t") + " today",
		helpKeyStyle.Render("a") + " add",
		helpKeyStyle.Render("r") + " reload",
		helpKeyStyle.Render("q") + " quit",
	}
	return mutedStyle.Render(strings.Join(hints, "  "))
}

// groupIndexOf finds the flattened-group index containing an event, used to
// keep the cursor near a mutation. Returns 0 when the event is not visible.
func groupIndexOf(groups [][]storage.Event, id string) int {
	for i, g := range groups {
		for _, e := range g {
			if e.ID == id {
				return i
			}
		}
	}
	return 0
}
