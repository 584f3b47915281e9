// Package catalog defines the invocable command set shown in the console.
package catalog

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// CommandDefinition describes one invocable command. Instances are immutable
// once handed out by a Provider.
type CommandDefinition struct {
	Name           string   `json:"name" yaml:"name"`
	Description    string   `json:"description" yaml:"description"`
	Category       string   `json:"category" yaml:"category"`
	ParameterNames []string `json:"parameter_names" yaml:"parameter_names"`
}

// Provider supplies the command catalog. The returned slice is a stable
// reference: callers hold on to it instead of refetching per keystroke.
type Provider interface {
	Commands() []CommandDefinition
}

// Static serves a fixed catalog.
type Static struct {
	commands []CommandDefinition
}

func NewStatic(commands []CommandDefinition) *Static {
	return &Static{commands: commands}
}

func (s *Static) Commands() []CommandDefinition {
	return s.commands
}

// Defaults is the built-in catalog used when no agent is reachable.
func Defaults() []CommandDefinition {
	return []CommandDefinition{
		{Name: "ping", Description: "Check reachability of a device", Category: "network", ParameterNames: []string{"host", "count"}},
		{Name: "system_info", Description: "Report agent host system information", Category: "system"},
		{Name: "uptime", Description: "Report agent uptime", Category: "system"},
		{Name: "echo", Description: "Echo the given text back", Category: "diagnostics", ParameterNames: []string{"text"}},
		{Name: "device_list", Description: "List devices known to the agent", Category: "devices"},
		{Name: "device_status", Description: "Show status for one device", Category: "devices", ParameterNames: []string{"id"}},
		{Name: "reboot_device", Description: "Request a reboot of one device", Category: "devices", ParameterNames: []string{"id"}},
		{Name: "net_scan", Description: "Scan the local segment for devices", Category: "network", ParameterNames: []string{"subnet"}},
	}
}

// HTTP loads the catalog from a device agent, falling back to another
// provider when the agent cannot be reached. Commands is called once at
// startup; the caller keeps the returned slice as its stable reference.
type HTTP struct {
	baseURL  string
	timeout  time.Duration
	fallback Provider
}

func NewHTTP(baseURL string, timeout time.Duration, fallback Provider) *HTTP {
	if fallback == nil {
		fallback = NewStatic(Defaults())
	}
	return &HTTP{baseURL: baseURL, timeout: timeout, fallback: fallback}
}

func (h *HTTP) Commands() []CommandDefinition {
	commands, err := FetchHTTP(h.baseURL, h.timeout)
	if err != nil {
		return h.fallback.Commands()
	}
	return commands
}

// FetchHTTP loads the catalog from a device agent. The result is fetched once
// at startup; on any error the caller falls back to Defaults.
func FetchHTTP(baseURL string, timeout time.Duration) ([]CommandDefinition, error) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + "/api/commands")
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch catalog: unexpected status %d", resp.StatusCode)
	}
	var commands []CommandDefinition
	if err := json.NewDecoder(resp.Body).Decode(&commands); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(commands) == 0 {
		return nil, fmt.Errorf("fetch catalog: empty command list")
	}
	return commands, nil
}
