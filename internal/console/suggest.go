package console

import (
	"strings"

	"devconsole/internal/catalog"
)

const (
	suggestMinChars = 2
	suggestMaxItems = 5
)

// Suggest filters the catalog against the current input text. Matching is a
// case-insensitive substring test on name and description; catalog order is
// preserved with no additional ranking, so for a fixed catalog and fixed text
// the result is always identical. Inputs shorter than two characters produce
// no suggestions.
func Suggest(text string, commands []catalog.CommandDefinition) []catalog.CommandDefinition {
	needle := strings.ToLower(strings.TrimSpace(text))
	if len(needle) < suggestMinChars {
		return nil
	}
	matches := make([]catalog.CommandDefinition, 0, suggestMaxItems)
	for _, def := range commands {
		if !strings.Contains(strings.ToLower(def.Name), needle) &&
			!strings.Contains(strings.ToLower(def.Description), needle) {
			continue
		}
		matches = append(matches, def)
		if len(matches) == suggestMaxItems {
			break
		}
	}
	return matches
}
