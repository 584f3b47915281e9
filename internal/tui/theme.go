package tui

import "github.com/charmbracelet/lipgloss"

type uiTheme struct {
	root          lipgloss.Style
	header        lipgloss.Style
	headerTitle   lipgloss.Style
	panel         lipgloss.Style
	panelTitle    lipgloss.Style
	inputPanel    lipgloss.Style
	suggestion    lipgloss.Style
	suggestionSel lipgloss.Style
	status        lipgloss.Style
	warnStatus    lipgloss.Style
	errorStatus   lipgloss.Style
	footer        lipgloss.Style
	helpText      lipgloss.Style
	recordOK      lipgloss.Style
	recordFail    lipgloss.Style
	recordTime    lipgloss.Style
	payload       lipgloss.Style
}

func newTheme() uiTheme {
	teal := lipgloss.Color("#2dd4bf")
	amber := lipgloss.Color("#fbbf24")
	red := lipgloss.Color("#f87171")
	bg := lipgloss.Color("#0b1220")
	panelBg := lipgloss.Color("#131c2e")
	text := lipgloss.Color("#e2e8f0")
	muted := lipgloss.Color("#7b8db0")

	return uiTheme{
		root: lipgloss.NewStyle().
			Background(bg).
			Foreground(text).
			Padding(0, 1),
		header: lipgloss.NewStyle().
			Background(panelBg).
			Foreground(text).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(teal).
			Padding(0, 1),
		headerTitle: lipgloss.NewStyle().Foreground(teal).Bold(true),
		panel: lipgloss.NewStyle().
			Background(panelBg).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1),
		panelTitle: lipgloss.NewStyle().Foreground(teal).Bold(true),
		inputPanel: lipgloss.NewStyle().
			Background(panelBg).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(teal).
			Padding(0, 1),
		suggestion: lipgloss.NewStyle().Foreground(muted),
		suggestionSel: lipgloss.NewStyle().
			Foreground(bg).
			Background(teal).
			Bold(true).
			Padding(0, 1),
		status:      lipgloss.NewStyle().Foreground(teal).Bold(true),
		warnStatus:  lipgloss.NewStyle().Foreground(amber).Bold(true),
		errorStatus: lipgloss.NewStyle().Foreground(red).Bold(true),
		footer: lipgloss.NewStyle().
			Background(panelBg).
			Foreground(muted).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1),
		helpText:   lipgloss.NewStyle().Foreground(muted),
		recordOK:   lipgloss.NewStyle().Foreground(teal).Bold(true),
		recordFail: lipgloss.NewStyle().Foreground(red).Bold(true),
		recordTime: lipgloss.NewStyle().Foreground(muted),
		payload:    lipgloss.NewStyle().Foreground(text),
	}
}
