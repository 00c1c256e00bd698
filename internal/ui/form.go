package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"ivcal/internal/app"
	"ivcal/internal/storage"
	"ivcal/internal/timeutil"
)

const formFields = 7

type eventForm struct {
	title       textinput.Model
	date        textinput.Model
	start       textinput.Model
	end         textinput.Model
	interviewer textinput.Model
	description textinput.Model
	link        textinput.Model
	editID      string
	focus       int
}

func newEventForm() eventForm {
	f := eventForm{
		title:       textinput.New(),
		date:        textinput.New(),
		start:       textinput.New(),
		end:         textinput.New(),
		interviewer: textinput.New(),
		description: textinput.New(),
		link:        textinput.New(),
	}
	f.title.Placeholder = "Interview title"
	f.date.Placeholder = "YYYY-MM-DD"
	f.start.Placeholder = "5:00 PM"
	f.end.Placeholder = "6:00 PM"
	f.interviewer.Placeholder = "Interviewer name"
	f.description.Placeholder = "Round / stage"
	f.link.Placeholder = "Meeting link (optional)"
	f.title.Focus()
	return f
}

func (f *eventForm) inputs() []*textinput.Model {
	return []*textinput.Model{
		&f.title, &f.date, &f.start, &f.end,
		&f.interviewer, &f.description, &f.link,
	}
}

func (f *eventForm) setFocus(i int) {
	f.focus = i
	for j, in := range f.inputs() {
		if j == i {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (f *eventForm) event() storage.Event {
	return storage.Event{
		Title:       strings.TrimSpace(f.title.Value()),
		Date:        strings.TrimSpace(f.date.Value()),
		StartTime:   strings.TrimSpace(f.start.Value()),
		EndTime:     strings.TrimSpace(f.end.Value()),
		Interviewer: strings.TrimSpace(f.interviewer.Value()),
		Description: strings.TrimSpace(f.description.Value()),
		Link:        strings.TrimSpace(f.link.Value()),
	}
}

func (m *Model) initAddForm() {
	m.form = newEventForm()
	m.form.date.SetValue(timeutil.FormatCalendarDate(m.nav.Reference))
	m.formErr = ""
}

func (m *Model) initEditForm(e storage.Event) {
	m.form = newEventForm()
	m.form.editID = e.ID
	m.form.title.SetValue(e.Title)
	m.form.date.SetValue(e.Date)
	m.form.start.SetValue(e.StartTime)
	m.form.end.SetValue(e.EndTime)
	m.form.interviewer.SetValue(e.Interviewer)
	m.form.description.SetValue(e.Description)
	m.form.link.SetValue(e.Link)
	m.formErr = ""
}

func (m *Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = stateGrid
		return m, nil

	case "tab", "down":
		m.form.setFocus((m.form.focus + 1) % formFields)
		return m, nil

	case "shift+tab", "up":
		m.form.setFocus((m.form.focus + formFields - 1) % formFields)
		return m, nil

	case "enter", "ctrl+s":
		return m.saveForm()
	}

	return m.updateFormInputs(msg)
}

func (m *Model) updateFormInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, formFields)
	for _, in := range m.form.inputs() {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) saveForm() (tea.Model, tea.Cmd) {
	e := m.form.event()

	var saved storage.Event
	var err error
	if m.form.editID == "" {
		saved, err = m.app.CreateEvent(e)
	} else {
		err = m.app.UpdateEvent(m.form.editID, e)
		saved = e
		saved.ID = m.form.editID
	}
	if err != nil {
		if errors.Is(err, app.ErrValidation) {
			m.formErr = err.Error()
			return m, nil
		}
		m.formErr = "could not save: " + err.Error()
		return m, nil
	}

	m.state = stateGrid
	m.sel.Clear()
	m.refresh()
	m.cursor = groupIndexOf(m.groups, saved.ID)
	return m, nil
}

func (m *Model) formView() string {
	header := "New Interview"
	if m.form.editID != "" {
		header = "Edit Interview"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	fields := []struct {
		label string
		input *textinput.Model
	}{
		{"Title:", &m.form.title},
		{"Date:", &m.form.date},
		{"Start:", &m.form.start},
		{"End:", &m.form.end},
		{"Interviewer:", &m.form.interviewer},
		{"Description:", &m.form.description},
		{"Link:", &m.form.link},
	}
	for i, f := range fields {
		label := f.label
		if i == m.form.focus {
			label = focusStyle.Render(label)
		}
		b.WriteString(labelStyle.Render(label))
		b.WriteString(f.input.View())
		b.WriteString("\n")
	}

	if m.formErr != "" {
		b.WriteString("\n")
		b.WriteString(dangerStyle.Render(m.formErr))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("tab next field  enter save  esc cancel"))
	return b.String()
}
