// Package format renders execution result payloads for display and export.
package format

import (
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Render interprets a result payload. Structured (JSON) payloads come back
// pretty-printed; anything else is returned verbatim. Parse failures are
// silent fallbacks, never surfaced to the user.
func Render(payload string) string {
	trimmed := strings.TrimSpace(payload)
	if trimmed == "" {
		return ""
	}
	if !gjson.Valid(trimmed) {
		return payload
	}
	// Bare JSON scalars read better unquoted.
	parsed := gjson.Parse(trimmed)
	if parsed.Type == gjson.String {
		return parsed.String()
	}
	if !parsed.IsObject() && !parsed.IsArray() {
		return payload
	}
	return strings.TrimRight(string(pretty.Pretty([]byte(trimmed))), "\n")
}
