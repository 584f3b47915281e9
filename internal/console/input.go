// Package console holds the pure input state of the command terminal: the
// current line, the suggestion selection, the history scroll position, and
// the transition functions that move between them. Side effects live with the
// caller.
package console

// NoSelection marks an inactive suggestion or history index.
const NoSelection = -1

// InputState is the keyboard-owned state of the prompt. SuggestionIndex and
// HistoryIndex are independent: arrow keys drive exactly one of them at a
// time, depending on whether suggestions are showing.
type InputState struct {
	Text            string
	SuggestionIndex int
	HistoryIndex    int
}

// NewInputState returns the zero state with both indices inactive.
func NewInputState() InputState {
	return InputState{SuggestionIndex: NoSelection, HistoryIndex: NoSelection}
}

// SetText replaces the line text and drops any active suggestion selection.
func (s InputState) SetText(text string) InputState {
	s.Text = text
	s.SuggestionIndex = NoSelection
	return s
}

// Clear resets to the zero state. Idempotent.
func (s InputState) Clear() InputState {
	return NewInputState()
}

// SelectSuggestion moves the suggestion selection. Out-of-range indices
// deactivate it.
func (s InputState) SelectSuggestion(index, count int) InputState {
	if index < 0 || index >= count {
		s.SuggestionIndex = NoSelection
		return s
	}
	s.SuggestionIndex = index
	return s
}

// CycleSuggestion advances the suggestion selection by delta with wrap-around
// over count entries. No-op when there are no suggestions.
func (s InputState) CycleSuggestion(delta, count int) InputState {
	if count <= 0 {
		return s
	}
	idx := s.SuggestionIndex
	if idx == NoSelection {
		if delta > 0 {
			idx = 0
		} else {
			idx = count - 1
		}
	} else {
		idx = (idx + delta) % count
		if idx < 0 {
			idx += count
		}
	}
	s.SuggestionIndex = idx
	return s
}
