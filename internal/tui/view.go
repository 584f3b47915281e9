package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"devconsole/internal/execute"
	"devconsole/internal/format"
)

func (m *Model) resize() {
	contentWidth := maxInt(20, m.width-6)
	m.input.Width = maxInt(10, contentWidth-4)
	// header + suggestions + input + footer take a fixed band; the output
	// viewport gets the rest.
	outputHeight := maxInt(3, m.height-12)
	m.output.Width = contentWidth
	m.output.Height = outputHeight
}

// renderOutput rebuilds the viewport content from the history buffer.
func (m *Model) renderOutput() {
	records := m.buffer.All()
	if len(records) == 0 {
		m.output.SetContent(m.theme.helpText.Render("no executions yet"))
		return
	}
	var b strings.Builder
	for i, record := range records {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.renderRecord(record))
	}
	m.output.SetContent(b.String())
}

func (m *Model) renderRecord(record execute.ExecutionRecord) string {
	stamp := m.theme.recordTime.Render(record.CompletedAt.Format("15:04:05"))
	var head string
	switch record.Status {
	case execute.StatusCompleted:
		head = m.theme.recordOK.Render("✓ "+record.CommandName) + " " + stamp
	case execute.StatusFailed:
		head = m.theme.recordFail.Render("✗ "+record.CommandName) + " " + stamp
	default:
		head = m.theme.recordTime.Render("· "+record.CommandName) + " " + stamp
	}
	lines := []string{head}
	if record.Status == execute.StatusFailed {
		lines = append(lines, m.theme.errorStatus.Render("  "+record.ErrorMessage))
	} else if rendered := format.Render(record.ResultPayload); rendered != "" {
		for _, line := range strings.Split(rendered, "\n") {
			lines = append(lines, m.theme.payload.Render("  "+line))
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderHeader() string {
	title := m.theme.headerTitle.Render("devconsole")
	agent := m.theme.helpText.Render("agent " + m.cfg.AgentURL)
	activity := ""
	if m.inflight > 0 {
		activity = " " + m.spinner.View() + fmt.Sprintf(" %d in flight", m.inflight)
	}
	return m.theme.header.Width(maxInt(20, m.width-4)).Render(title + "  " + agent + activity)
}

func (m *Model) renderSuggestions() string {
	if len(m.suggestions) == 0 {
		return ""
	}
	rows := make([]string, 0, len(m.suggestions))
	for i, def := range m.suggestions {
		label := def.Name
		if def.Description != "" {
			label += " — " + def.Description
		}
		if len(def.ParameterNames) > 0 {
			label += " (" + strings.Join(def.ParameterNames, ", ") + ")"
		}
		if i == m.state.SuggestionIndex {
			rows = append(rows, m.theme.suggestionSel.Render(label))
		} else {
			rows = append(rows, m.theme.suggestion.Render("  "+label))
		}
	}
	return m.theme.panel.Width(maxInt(20, m.width-4)).Render(
		m.theme.panelTitle.Render("suggestions") + "\n" + strings.Join(rows, "\n"))
}

func (m *Model) renderStatus() string {
	if strings.TrimSpace(m.statusLine) == "" {
		return ""
	}
	switch m.statusLevel {
	case noticeError:
		return m.theme.errorStatus.Render(m.statusLine)
	case noticeWarning:
		return m.theme.warnStatus.Render(m.statusLine)
	case noticeSuccess:
		return m.theme.status.Render(m.statusLine)
	default:
		return m.theme.helpText.Render(m.statusLine)
	}
}

func (m *Model) renderFooter() string {
	help := "enter run · tab complete · ↑/↓ suggest/history · esc clear · ctrl+y copy · ctrl+s save · ctrl+l clear history · ctrl+c quit"
	line := m.theme.helpText.Render(help)
	if status := m.renderStatus(); status != "" {
		line = status + "  " + line
	}
	return m.theme.footer.Width(maxInt(20, m.width-4)).Render(line)
}

func (m Model) View() string {
	header := m.renderHeader()
	outputPanel := m.theme.panel.Width(maxInt(20, m.width-4)).Render(
		m.theme.panelTitle.Render("history") + "\n" + m.output.View())
	inputPanel := m.theme.inputPanel.Width(maxInt(20, m.width-4)).Render(m.input.View())
	sections := []string{header, outputPanel}
	if suggestions := m.renderSuggestions(); suggestions != "" {
		sections = append(sections, suggestions)
	}
	sections = append(sections, inputPanel, m.renderFooter())
	return m.theme.root.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
