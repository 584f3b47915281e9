package console

import "strings"

// ParseLine splits a submitted line into a command name and parameter map.
// The first whitespace-separated token is the command name; each later token
// is split once on '='. Tokens without '=' are dropped.
//
//	"ping host=localhost" -> "ping", {host: localhost}
//	"system_info"         -> "system_info", {}
func ParseLine(raw string) (string, map[string]string) {
	fields := strings.Fields(strings.TrimSpace(raw))
	if len(fields) == 0 {
		return "", map[string]string{}
	}
	name := fields[0]
	params := make(map[string]string, len(fields)-1)
	for _, token := range fields[1:] {
		key, value, found := strings.Cut(token, "=")
		if !found {
			continue
		}
		params[key] = value
	}
	return name, params
}
