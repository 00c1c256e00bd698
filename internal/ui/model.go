// Package ui is the terminal front end: it renders the calendar grids from
// the bucketed groupings and wires key presses into the navigation and
// selection state machines. All grouping decisions live in internal/bucket;
// this package only lays cells out.
package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"ivcal/internal/app"
	"ivcal/internal/storage"
	"ivcal/internal/view"
)

type uiState int

const (
	stateGrid uiState = iota
	stateForm
	stateConfirmDelete
)

type Model struct {
	app *app.App

	nav view.Nav
	sel view.Selection

	events []storage.Event
	groups [][]storage.Event
	cursor int

	loading bool
	spin    spinner.Model
	banner  string

	width  int
	height int

	state    uiState
	form     eventForm
	formErr  string
	multiIdx int
}

type eventsLoadedMsg struct{}

type loadFailedMsg struct {
	err error
}

func NewModel(a *app.App) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = focusStyle
	return &Model{app: a, nav: view.NewNav(), spin: sp, loading: true}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.load())
}

func (m *Model) load() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := m.app.Load(ctx); err != nil {
			return loadFailedMsg{err: err}
		}
		return eventsLoadedMsg{}
	}
}

// refresh re-derives the cell groups after any change to the event list,
// the reference date, or the view mode.
func (m *Model) refresh() {
	m.events = m.app.Events()
	m.groups = visibleGroups(m.events, m.nav)
	if m.cursor >= len(m.groups) {
		m.cursor = len(m.groups) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case eventsLoadedMsg:
		m.loading = false
		m.refresh()
		return m, nil

	case loadFailedMsg:
		m.loading = false
		m.banner = "could not load interviews: " + msg.err.Error()
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.state == stateForm {
		return m.updateFormInputs(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateForm:
		return m.handleFormKeys(msg)
	case stateConfirmDelete:
		return m.handleConfirmKeys(msg)
	}

	if m.sel.State() == view.MultiOpen {
		return m.handleMultiKeys(msg)
	}
	if m.sel.State() == view.SingleSelected {
		return m.handleDetailKeys(msg)
	}
	return m.handleGridKeys(msg)
}

func (m *Model) handleGridKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Prev):
		m.nav.Advance(-1)
		m.cursor = 0
		m.refresh()

	case key.Matches(msg, keys.Next):
		m.nav.Advance(1)
		m.cursor = 0
		m.refresh()

	case key.Matches(msg, keys.DayView):
		m.switchView(view.ModeDay)
	case key.Matches(msg, keys.WeekView):
		m.switchView(view.ModeWeek)
	case key.Matches(msg, keys.MonthView):
		m.switchView(view.ModeMonth)
	case key.Matches(msg, keys.YearView):
		m.switchView(view.ModeYear)

	case key.Matches(msg, keys.Today):
		m.nav.Today()
		m.cursor = 0
		m.refresh()

	case key.Matches(msg, keys.NextGroup):
		if len(m.groups) > 0 {
			m.cursor = (m.cursor + 1) % len(m.groups)
		}

	case key.Matches(msg, keys.PrevGroup):
		if len(m.groups) > 0 {
			m.cursor = (m.cursor + len(m.groups) - 1) % len(m.groups)
		}

	case key.Matches(msg, keys.Open):
		if m.cursor < len(m.groups) {
			m.multiIdx = 0
			m.sel.Activate(m.groups[m.cursor])
		}

	case key.Matches(msg, keys.Add):
		m.initAddForm()
		m.state = stateForm
		return m, nil

	case key.Matches(msg, keys.Reload):
		m.loading = true
		m.banner = ""
		return m, tea.Batch(m.spin.Tick, m.load())

	case key.Matches(msg, keys.Back):
		m.banner = ""
	}
	return m, nil
}

func (m *Model) handleMultiKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	group := m.sel.Group()
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.NextGroup):
		m.multiIdx = (m.multiIdx + 1) % len(group)

	case key.Matches(msg, keys.PrevGroup):
		m.multiIdx = (m.multiIdx + len(group) - 1) % len(group)

	case key.Matches(msg, keys.Open):
		m.sel.Choose(group[m.multiIdx])

	case key.Matches(msg, keys.Back):
		m.sel.Clear()
	}
	return m, nil
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Edit):
		m.initEditForm(m.sel.Event())
		m.state = stateForm

	case key.Matches(msg, keys.Delete):
		m.state = stateConfirmDelete

	case key.Matches(msg, keys.Back):
		m.sel.Clear()
	}
	return m, nil
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.app.RemoveEvent(m.sel.Event().ID)
		m.sel.Clear()
		m.state = stateGrid
		m.refresh()
	case "n", "N", "esc", "q":
		m.state = stateGrid
	}
	return m, nil
}

func (m *Model) switchView(mode view.Mode) {
	m.nav.SwitchView(mode)
	m.cursor = 0
	m.sel.Clear()
	m.refresh()
}

func (m *Model) View() string {
	switch m.state {
	case stateForm:
		return m.formView()
	case stateConfirmDelete:
		return m.confirmView()
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")

	if m.banner != "" {
		b.WriteString(dangerStyle.Render(m.banner))
		b.WriteString(mutedStyle.Render("  (esc to dismiss, r to retry)"))
		b.WriteString("\n")
	}

	if m.loading {
		b.WriteString(m.spin.View())
		b.WriteString(" loading interviews...\n")
	} else {
		b.WriteString(m.gridView())
	}

	switch m.sel.State() {
	case view.MultiOpen:
		b.WriteString("\n")
		b.WriteString(m.multiView())
	case view.SingleSelected:
		b.WriteString("\n")
		b.WriteString(m.detailView())
	}

	b.WriteString("\n")
	b.WriteString(m.helpView())
	return b.String()
}
