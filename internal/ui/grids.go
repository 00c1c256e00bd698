package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ivcal/internal/bucket"
	"ivcal/internal/storage"
	"ivcal/internal/timeutil"
	"ivcal/internal/view"
)

// visibleGroups flattens the current view's cells into the ordered list the
// cursor walks. Renderers iterate the same structures in the same order, so
// group index N here is group index N on screen.
func visibleGroups(events []storage.Event, nav view.Nav) [][]storage.Event {
	var out [][]storage.Event
	switch nav.Mode {
	case view.ModeDay:
		day := bucket.ForDay(events, nav.Reference)
		for h := 0; h < 24; h++ {
			for _, slot := range day.Hours[h] {
				out = append(out, slot.Events)
			}
		}
	case view.ModeWeek:
		week := bucket.ForWeek(events, nav.Reference)
		for _, day := range week.Days {
			for h := 0; h < 24; h++ {
				for _, slot := range day.Hours[h] {
					out = append(out, slot.Events)
				}
			}
		}
	case view.ModeMonth:
		month := bucket.ForMonth(events, nav.Reference)
		for _, cell := range month.Cells {
			if len(cell.Events) > 0 {
				out = append(out, cell.Events)
			}
		}
	case view.ModeYear:
		year := bucket.ForYear(events, nav.Reference)
		for _, mg := range year.Months {
			if len(mg.Events) > 0 {
				out = append(out, mg.Events)
			}
		}
	}
	return out
}

func (m *Model) headerView() string {
	ref := m.nav.Reference
	var label string
	switch m.nav.Mode {
	case view.ModeDay:
		label = fmt.Sprintf("%s %s %d", timeutil.OrdinalDay(ref.Day()), ref.Month(), ref.Year())
	case view.ModeWeek:
		start, end := timeutil.WeekBounds(ref, true)
		label = fmt.Sprintf("%s - %s", start.Format("02 Jan"), end.Format("02 Jan 2006"))
	case view.ModeMonth:
		label = ref.Format("January 2006")
	case view.ModeYear:
		label = ref.Format("2006")
	}

	var tabs []string
	for _, mode := range []view.Mode{view.ModeDay, view.ModeWeek, view.ModeMonth, view.ModeYear} {
		if mode == m.nav.Mode {
			tabs = append(tabs, tabActiveStyle.Render(mode.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(mode.String()))
		}
	}

	return titleStyle.Render("Interview Calendar") + "  " +
		dayHeaderStyle.Render(label) + "  " + strings.Join(tabs, "")
}

func (m *Model) gridView() string {
	switch m.nav.Mode {
	case view.ModeWeek:
		return m.weekGrid()
	case view.ModeMonth:
		return m.monthGrid()
	case view.ModeYear:
		return m.yearGrid()
	default:
		return m.dayGrid()
	}
}

func (m *Model) dayGrid() string {
	day := bucket.ForDay(m.events, m.nav.Reference)
	var b strings.Builder
	g := 0
	for h := 0; h < 24; h++ {
		b.WriteString(hourLabelStyle.Render(hourLabel(h)))
		b.WriteString(mutedStyle.Render(" │"))
		for _, slot := range day.Hours[h] {
			b.WriteString(" ")
			b.WriteString(m.slotCard(slot, g == m.cursor))
			g++
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) weekGrid() string {
	week := bucket.ForWeek(m.events, m.nav.Reference)
	colWidth := 16
	if m.width > 0 {
		if w := (m.width - 2) / 7; w > colWidth {
			colWidth = w
		}
	}
	colStyle := lipgloss.NewStyle().Width(colWidth).PaddingRight(1)

	g := 0
	cols := make([]string, 0, 7)
	for _, day := range week.Days {
		var b strings.Builder
		b.WriteString(dayHeaderStyle.Width(colWidth - 1).Render(day.Date.Format("Mon 02")))
		b.WriteString("\n")
		for h := 0; h < 24; h++ {
			for _, slot := range day.Hours[h] {
				e := slot.Representative()
				line := e.StartTime + " " + e.Title
				if slot.Size() > 1 {
					line = fmt.Sprintf("%s ×%d", line, slot.Size())
				}
				line = truncate(line, colWidth-1)
				if g == m.cursor {
					line = cardActiveStyle.Render(line)
				}
				b.WriteString(line)
				b.WriteString("\n")
				g++
			}
		}
		cols = append(cols, colStyle.Render(strings.TrimRight(b.String(), "\n")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...) + "\n"
}

func (m *Model) monthGrid() string {
	month := bucket.ForMonth(m.events, m.nav.Reference)
	colWidth := 14
	if m.width > 0 {
		if w := (m.width - 2) / 7; w > colWidth {
			colWidth = w
		}
	}

	var b strings.Builder
	for _, name := range []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"} {
		b.WriteString(dayHeaderStyle.Width(colWidth).Render(name))
	}
	b.WriteString("\n")

	g := 0
	for row := 0; row < len(month.Cells)/7; row++ {
		cells := make([]string, 0, 7)
		for col := 0; col < 7; col++ {
			cell := month.Cells[row*7+col]
			selected := len(cell.Events) > 0 && g == m.cursor
			cells = append(cells, m.monthCell(cell, colWidth, selected))
			if len(cell.Events) > 0 {
				g++
			}
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}
	return b.String()
}

// monthCell renders one date cell: the day number, the representative event,
// and the "+N more" overflow. Out-of-month days render de-emphasized.
func (m *Model) monthCell(cell bucket.MonthCell, width int, selected bool) string {
	style := lipgloss.NewStyle().Width(width).Height(3).Padding(0, 1)
	dayStyle := lipgloss.NewStyle().Bold(true)
	if !cell.InMonth {
		dayStyle = outMonthStyle
	}
	if selected {
		style = style.Background(colPrimary)
	}

	var b strings.Builder
	b.WriteString(dayStyle.Render(fmt.Sprintf("%2d", cell.Date.Day())))
	b.WriteString("\n")
	if len(cell.Events) > 0 {
		first := cell.Events[0]
		b.WriteString(truncate(first.Title, width-2))
		b.WriteString("\n")
		if len(cell.Events) > 1 {
			b.WriteString(mutedStyle.Render(fmt.Sprintf("+%d more", len(cell.Events)-1)))
		}
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}

func (m *Model) yearGrid() string {
	year := bucket.ForYear(m.events, m.nav.Reference)
	boxWidth := 22
	if m.width > 0 {
		if w := (m.width - 2) / 4; w > boxWidth {
			boxWidth = w
		}
	}

	g := 0
	var rows []string
	for row := 0; row < 3; row++ {
		boxes := make([]string, 0, 4)
		for col := 0; col < 4; col++ {
			mg := year.Months[row*4+col]
			selected := len(mg.Events) > 0 && g == m.cursor
			boxes = append(boxes, m.yearBox(mg, boxWidth, selected))
			if len(mg.Events) > 0 {
				g++
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	}
	return strings.Join(rows, "\n") + "\n"
}

// yearBox shows the month name, the event count, and the earliest event as
// the representative.
func (m *Model) yearBox(mg bucket.MonthGroup, width int, selected bool) string {
	style := lipgloss.NewStyle().Width(width).Height(3).Padding(0, 1)
	if selected {
		style = style.Background(colPrimary)
	}

	var b strings.Builder
	b.WriteString(dayHeaderStyle.Render(mg.Month.String()[:3]))
	if len(mg.Events) == 0 {
		return style.Render(b.String())
	}
	rep := mg.Representative()
	b.WriteString(mutedStyle.Render(fmt.Sprintf(" %d", len(mg.Events))))
	b.WriteString("\n")
	b.WriteString(truncate(rep.Date+" "+rep.StartTime, width-2))
	b.WriteString("\n")
	b.WriteString(truncate(rep.Title, width-2))
	return style.Render(b.String())
}

func (m *Model) slotCard(slot bucket.Slot, selected bool) string {
	e := slot.Representative()
	text := e.StartTime + " " + e.Title
	style := cardStyle
	if selected {
		style = cardActiveStyle
	}
	card := style.Render(text)
	if slot.Size() > 1 {
		card += badgeStyle.Render(fmt.Sprintf(" %d ", slot.Size()))
	}
	return card
}

func hourLabel(h int) string {
	switch {
	case h == 0:
		return "12 AM"
	case h == 12:
		return "12 PM"
	case h < 12:
		return fmt.Sprintf("%d AM", h)
	default:
		return fmt.Sprintf("%d PM", h-12)
	}
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}
