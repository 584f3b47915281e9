package tui

// Intent is what a key press asks the console to do. The dispatcher is a
// stateless mapping: it inspects a read-only snapshot of the suggestion list
// and never mutates anything itself.
type Intent int

const (
	IntentInsert Intent = iota // forward the key to the text input
	IntentSubmit
	IntentAcceptSuggestion // accept the currently selected suggestion
	IntentAcceptFirst      // accept the first suggestion
	IntentNextSuggestion
	IntentPrevSuggestion
	IntentHistoryBack
	IntentHistoryForward
	IntentClear
	IntentCopyOutput
	IntentExportOutput
	IntentClearHistory
	IntentQuit
)

// Dispatch maps a key to an intent. Arrow keys drive suggestion cycling
// whenever suggestions are showing and history navigation otherwise; Enter
// accepts an explicit selection before it submits; Escape always clears.
func Dispatch(key string, suggestionCount, suggestionIndex int) Intent {
	switch key {
	case "ctrl+c":
		return IntentQuit
	case "enter":
		if suggestionIndex >= 0 && suggestionIndex < suggestionCount {
			return IntentAcceptSuggestion
		}
		return IntentSubmit
	case "up":
		if suggestionCount > 0 {
			return IntentPrevSuggestion
		}
		return IntentHistoryBack
	case "down":
		if suggestionCount > 0 {
			return IntentNextSuggestion
		}
		return IntentHistoryForward
	case "tab":
		if suggestionCount > 0 {
			return IntentAcceptFirst
		}
		return IntentInsert
	case "esc":
		return IntentClear
	case "ctrl+y":
		return IntentCopyOutput
	case "ctrl+s":
		return IntentExportOutput
	case "ctrl+l":
		return IntentClearHistory
	default:
		return IntentInsert
	}
}
