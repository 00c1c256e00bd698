package ui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"ivcal/internal/app"
	"ivcal/internal/storage"
	memorystorage "ivcal/internal/storage/memory"
	"ivcal/internal/view"
)

func newTestModel(t *testing.T, events []storage.Event) *Model {
	t.Helper()
	store := memorystorage.New()
	store.Replace(events)
	m := NewModel(app.New(store, nil))
	m.loading = false
	m.nav = view.Nav{Reference: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), Mode: view.ModeDay}
	m.refresh()
	return m
}

func press(m *Model, k string) {
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	m.handleKey(msg)
}

func TestOpenSingleGroupSelectsDirectly(t *testing.T) {
	m := newTestModel(t, []storage.Event{
		{ID: "1", Title: "solo", Date: "2025-03-05", StartTime: "10:00 AM"},
	})

	press(m, "enter")
	require.Equal(t, view.SingleSelected, m.sel.State())
	require.Equal(t, "1", m.sel.Event().ID)
}

func TestOpenOverlappingGroupListsAll(t *testing.T) {
	m := newTestModel(t, []storage.Event{
		{ID: "1", Title: "a", Date: "2025-03-05", StartTime: "10:00 AM"},
		{ID: "2", Title: "b", Date: "2025-03-05", StartTime: "10:00 AM"},
		{ID: "3", Title: "c", Date: "2025-03-05", StartTime: "10:00 AM"},
	})

	press(m, "enter")
	require.Equal(t, view.MultiOpen, m.sel.State())
	require.Len(t, m.sel.Group(), 3)

	// Pick the second entry; the list closes.
	press(m, "tab")
	press(m, "enter")
	require.Equal(t, view.SingleSelected, m.sel.State())
	require.Equal(t, "2", m.sel.Event().ID)

	press(m, "esc")
	require.Equal(t, view.Idle, m.sel.State())
}

func TestNavigationKeys(t *testing.T) {
	m := newTestModel(t, nil)

	press(m, "right")
	require.Equal(t, time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC), m.nav.Reference)
	press(m, "left")
	require.Equal(t, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), m.nav.Reference)

	press(m, "w")
	require.Equal(t, view.ModeWeek, m.nav.Mode)
	press(m, "right")
	require.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), m.nav.Reference)

	press(m, "m")
	require.Equal(t, view.ModeMonth, m.nav.Mode)
	press(m, "y")
	require.Equal(t, view.ModeYear, m.nav.Mode)
}

func TestDeleteFlow(t *testing.T) {
	m := newTestModel(t, []storage.Event{
		{ID: "1", Title: "solo", Date: "2025-03-05", StartTime: "10:00 AM"},
	})

	press(m, "enter")
	press(m, "x")
	require.Equal(t, stateConfirmDelete, m.state)

	press(m, "y")
	require.Equal(t, stateGrid, m.state)
	require.Equal(t, view.Idle, m.sel.State())
	require.Empty(t, m.app.Events())
	require.Empty(t, m.groups)
}

func TestDeleteCancelKeepsEvent(t *testing.T) {
	m := newTestModel(t, []storage.Event{
		{ID: "1", Title: "solo", Date: "2025-03-05", StartTime: "10:00 AM"},
	})

	press(m, "enter")
	press(m, "x")
	press(m, "n")
	require.Equal(t, stateGrid, m.state)
	require.Len(t, m.app.Events(), 1)
}

func TestLoadFailureShowsBanner(t *testing.T) {
	m := newTestModel(t, nil)
	m.loading = true

	m.Update(loadFailedMsg{err: errors.New("connection refused")})
	require.False(t, m.loading)
	require.Contains(t, m.banner, "connection refused")

	// The banner is dismissible.
	press(m, "esc")
	require.Empty(t, m.banner)
}

func TestFormCreateAndValidation(t *testing.T) {
	m := newTestModel(t, nil)

	press(m, "a")
	require.Equal(t, stateForm, m.state)
	require.Equal(t, "2025-03-05", m.form.date.Value())

	// Missing title is rejected at the form, nothing reaches the store.
	m.form.start.SetValue("10:00 AM")
	m.saveForm()
	require.Equal(t, stateForm, m.state)
	require.NotEmpty(t, m.formErr)
	require.Empty(t, m.app.Events())

	m.form.title.SetValue("Python Developer")
	m.saveForm()
	require.Equal(t, stateGrid, m.state)
	require.Len(t, m.app.Events(), 1)
	require.Len(t, m.groups, 1)
}

func TestFormEdit(t *testing.T) {
	m := newTestModel(t, []storage.Event{
		{ID: "1", Title: "before", Date: "2025-03-05", StartTime: "10:00 AM"},
	})

	press(m, "enter")
	press(m, "e")
	require.Equal(t, stateForm, m.state)
	require.Equal(t, "1", m.form.editID)
	require.Equal(t, "before", m.form.title.Value())

	m.form.title.SetValue("after")
	m.saveForm()
	require.Equal(t, stateGrid, m.state)
	require.Equal(t, "after", m.app.Events()[0].Title)
}

func TestViewRendersBadgeAndOverflow(t *testing.T) {
	m := newTestModel(t, []storage.Event{
		{ID: "1", Title: "a", Date: "2025-03-05", StartTime: "10:00 AM"},
		{ID: "2", Title: "b", Date: "2025-03-05", StartTime: "10:00 AM"},
	})

	out := m.View()
	require.Contains(t, out, "10:00 AM a")
	require.Contains(t, out, "2") // overlap badge

	m.nav.Mode = view.ModeMonth
	m.refresh()
	out = m.View()
	require.Contains(t, out, "+1 more")
}
