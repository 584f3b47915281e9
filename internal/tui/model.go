// Package tui is the interactive console: a bubbletea model wiring the
// keyboard dispatcher, input state, suggestion engine, history buffer, and
// execution tracker together. All shared state is written only from Update;
// transport calls run inside tea.Cmd closures and report back as messages.
package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"devconsole/internal/catalog"
	"devconsole/internal/config"
	"devconsole/internal/console"
	"devconsole/internal/execute"
	"devconsole/internal/export"
	"devconsole/internal/format"
	"devconsole/internal/history"
)

const maxLogLines = 100

type noticeLevel int

const (
	noticeNone noticeLevel = iota
	noticeSuccess
	noticeWarning
	noticeError
)

// statusNotifier buffers the latest notification so the model can fold it
// into the status line after each tracker call.
type statusNotifier struct {
	level noticeLevel
	text  string
}

func (n *statusNotifier) Success(text string) { n.level, n.text = noticeSuccess, text }
func (n *statusNotifier) Warning(text string) { n.level, n.text = noticeWarning, text }
func (n *statusNotifier) Error(text string)   { n.level, n.text = noticeError, text }

func (n *statusNotifier) take() (noticeLevel, string) {
	level, text := n.level, n.text
	n.level, n.text = noticeNone, ""
	return level, text
}

type catalogMsg struct {
	commands []catalog.CommandDefinition
}

type execDoneMsg struct {
	record *execute.ExecutionRecord
	result execute.Result
}

// Model is the console program state.
type Model struct {
	cfg      config.Config
	provider catalog.Provider
	commands []catalog.CommandDefinition
	notifier *statusNotifier
	tracker  *execute.Tracker
	buffer   *history.Buffer
	clip     *export.Clipboard

	state       console.InputState
	suggestions []catalog.CommandDefinition

	inflight    int
	statusLine  string
	statusLevel noticeLevel
	logs        []string

	width  int
	height int

	input   textinput.Model
	output  viewport.Model
	spinner spinner.Model

	theme uiTheme
}

// New builds the console model. The transport and catalog provider are
// injected so tests can substitute deterministic fakes. The provider is
// consulted once, asynchronously, at startup; until it answers the built-in
// catalog serves suggestions.
func New(cfg config.Config, transport execute.Transport, provider catalog.Provider) Model {
	input := textinput.New()
	input.Prompt = "❯ "
	input.CharLimit = 400
	input.Placeholder = "type a command, e.g. ping host=10.0.4.1"
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#2dd4bf"))

	output := viewport.New(0, 0)
	output.MouseWheelEnabled = true
	output.MouseWheelDelta = 4

	notifier := &statusNotifier{}
	buffer := history.NewBuffer(cfg.MaxHistoryItems)
	if provider == nil {
		provider = catalog.NewStatic(catalog.Defaults())
	}

	return Model{
		cfg:        cfg,
		provider:   provider,
		commands:   catalog.Defaults(),
		notifier:   notifier,
		tracker:    execute.NewTracker(transport, notifier, buffer),
		buffer:     buffer,
		clip:       export.NewClipboard(),
		state:      console.NewInputState(),
		statusLine: "connecting to agent...",
		input:      input,
		output:     output,
		spinner:    sp,
		theme:      newTheme(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCatalogCmd())
}

func (m Model) loadCatalogCmd() tea.Cmd {
	provider := m.provider
	return func() tea.Msg {
		return catalogMsg{commands: provider.Commands()}
	}
}

func (m Model) execCmd(record *execute.ExecutionRecord) tea.Cmd {
	tracker := m.tracker
	timeout := m.cfg.ExecuteTimeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		result := tracker.Invoke(ctx, record)
		return execDoneMsg{record: record, result: result}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case catalogMsg:
		if len(msg.commands) > 0 {
			m.commands = msg.commands
		}
		m.statusLine = fmt.Sprintf("ready · %d commands", len(m.commands))
		m.statusLevel = noticeSuccess
	case execDoneMsg:
		m.inflight--
		if m.inflight < 0 {
			m.inflight = 0
		}
		m.tracker.Resolve(msg.record, msg.result)
		m.syncStatus()
		m.renderOutput()
		m.output.GotoBottom()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.renderOutput()
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.output, cmd = m.output.Update(msg)
		cmds = append(cmds, cmd)
	case tea.KeyMsg:
		return m.handleKey(msg, cmds)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg, cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	switch Dispatch(msg.String(), len(m.suggestions), m.state.SuggestionIndex) {
	case IntentQuit:
		return m, tea.Quit
	case IntentSubmit:
		record, ok := m.tracker.Submit(m.input.Value())
		m.syncStatus()
		m.setText("")
		m.buffer.ResetCursor()
		m.state.HistoryIndex = console.NoSelection
		if ok {
			m.inflight++
			m.statusLine = "executing " + record.CommandName + "..."
			m.statusLevel = noticeNone
			cmds = append(cmds, m.execCmd(record))
		}
	case IntentAcceptSuggestion:
		m.acceptSuggestion(m.state.SuggestionIndex)
	case IntentAcceptFirst:
		m.acceptSuggestion(0)
	case IntentNextSuggestion:
		m.state = m.state.CycleSuggestion(1, len(m.suggestions))
	case IntentPrevSuggestion:
		m.state = m.state.CycleSuggestion(-1, len(m.suggestions))
	case IntentHistoryBack:
		if name, ok := m.buffer.Back(); ok {
			m.recallHistory(name)
		}
	case IntentHistoryForward:
		if name, ok := m.buffer.Forward(); ok {
			m.recallHistory(name)
		}
	case IntentClear:
		m.setText("")
		m.state = m.state.Clear()
		m.buffer.ResetCursor()
		m.statusLine = ""
		m.statusLevel = noticeNone
	case IntentCopyOutput:
		m.copyLastOutput()
	case IntentExportOutput:
		m.exportLastOutput()
	case IntentClearHistory:
		m.buffer.Clear()
		m.state.HistoryIndex = console.NoSelection
		m.renderOutput()
		m.statusLine = "history cleared"
		m.statusLevel = noticeNone
	case IntentInsert:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
		if m.input.Value() != m.state.Text {
			m.state = m.state.SetText(m.input.Value())
			m.suggestions = console.Suggest(m.state.Text, m.commands)
		}
	}
	return m, tea.Batch(cmds...)
}

// setText replaces the line programmatically, keeping the input widget, the
// pure state, and the suggestion list in step.
func (m *Model) setText(text string) {
	m.input.SetValue(text)
	m.input.CursorEnd()
	m.state = m.state.SetText(text)
	m.suggestions = console.Suggest(text, m.commands)
}

// recallHistory replaces the line with a recalled command name without waking
// the suggestion list: a recalled name always matches itself in the catalog,
// and live suggestions would reroute the next arrow press to suggestion
// cycling, cutting the walk off after one step. Typing resumes suggestion
// recomputation as usual.
func (m *Model) recallHistory(name string) {
	m.input.SetValue(name)
	m.input.CursorEnd()
	m.state = m.state.SetText(name)
	m.suggestions = nil
	m.state.HistoryIndex = m.buffer.Cursor()
}

func (m *Model) acceptSuggestion(index int) {
	if index < 0 || index >= len(m.suggestions) {
		return
	}
	m.setText(m.suggestions[index].Name)
}

func (m *Model) copyLastOutput() {
	last := m.tracker.LastExecution()
	if last == nil {
		m.statusLine = "nothing to copy yet"
		m.statusLevel = noticeWarning
		return
	}
	if err := m.clip.Copy(m.formatRecord(last)); err != nil {
		m.statusLine = "copy failed: " + err.Error()
		m.statusLevel = noticeError
		return
	}
	m.statusLine = "output copied"
	m.statusLevel = noticeSuccess
}

func (m *Model) exportLastOutput() {
	last := m.tracker.LastExecution()
	if last == nil {
		m.statusLine = "nothing to export yet"
		m.statusLevel = noticeWarning
		return
	}
	name := fmt.Sprintf("devconsole-%s.txt", time.Now().Format("20060102-150405"))
	path := filepath.Join(m.cfg.ExportDir, name)
	if err := export.Download(path, m.formatRecord(last)); err != nil {
		m.statusLine = "export failed: " + err.Error()
		m.statusLevel = noticeError
		return
	}
	m.statusLine = "saved " + path
	m.statusLevel = noticeSuccess
}

// formatRecord renders what copy/export act on: the formatted payload for
// completed records, the error text for failed ones.
func (m *Model) formatRecord(record *execute.ExecutionRecord) string {
	if record.Status == execute.StatusFailed {
		return record.ErrorMessage
	}
	return format.Render(record.ResultPayload)
}

func (m *Model) syncStatus() {
	level, text := m.notifier.take()
	if level == noticeNone {
		return
	}
	m.statusLevel = level
	m.statusLine = text
	m.appendLog(text)
}

func (m *Model) appendLog(line string) {
	stamped := time.Now().Format("15:04:05") + " " + line
	m.logs = append(m.logs, stamped)
	if len(m.logs) > maxLogLines {
		m.logs = m.logs[len(m.logs)-maxLogLines:]
	}
}
