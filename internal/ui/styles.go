package ui

import "github.com/charmbracelet/lipgloss"

var (
	colPrimary = lipgloss.Color("33")
	colAccent  = lipgloss.Color("220")
	colMuted   = lipgloss.Color("241")
	colDanger  = lipgloss.Color("196")
	colText    = lipgloss.Color("252")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colPrimary).Padding(0, 1)

	tabStyle       = lipgloss.NewStyle().Foreground(colMuted).Padding(0, 1)
	tabActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(colText).Background(colPrimary).Padding(0, 1)

	hourLabelStyle = lipgloss.NewStyle().Foreground(colMuted).Width(6).Align(lipgloss.Right)

	cardStyle       = lipgloss.NewStyle().Foreground(colText).Padding(0, 1)
	cardActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(colText).Background(colPrimary).Padding(0, 1)
	badgeStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("16")).Background(colAccent)

	dayHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colText).Align(lipgloss.Center)
	outMonthStyle  = lipgloss.NewStyle().Foreground(colMuted)

	mutedStyle  = lipgloss.NewStyle().Foreground(colMuted)
	dangerStyle = lipgloss.NewStyle().Foreground(colDanger)
	labelStyle  = lipgloss.NewStyle().Width(13).Foreground(colMuted)
	focusStyle  = lipgloss.NewStyle().Foreground(colPrimary)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colPrimary).
			Padding(0, 1)

	helpKeyStyle = lipgloss.NewStyle().Bold(true).Foreground(colAccent)
)
