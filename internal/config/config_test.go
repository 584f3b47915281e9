package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if cfg.MaxHistoryItems != 50 {
		t.Fatalf("expected default history bound 50, got %d", cfg.MaxHistoryItems)
	}
	if cfg.AgentURL == "" || cfg.ListenAddr == "" {
		t.Fatalf("expected default addresses, got %+v", cfg)
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file must fall back to defaults: %v", err)
	}
	if cfg.ExecuteTimeout() != 30*time.Second {
		t.Fatalf("expected default execute timeout, got %s", cfg.ExecuteTimeout())
	}
}

func TestLoadYAMLOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devconsole.yaml")
	body := "agent_url: http://10.0.0.9:9000\nmax_history_items: 7\nexecute_timeout_seconds: 5\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AgentURL != "http://10.0.0.9:9000" {
		t.Fatalf("expected yaml agent url, got %s", cfg.AgentURL)
	}
	if cfg.MaxHistoryItems != 7 {
		t.Fatalf("expected yaml history bound, got %d", cfg.MaxHistoryItems)
	}
	if cfg.ExecuteTimeout() != 5*time.Second {
		t.Fatalf("expected yaml timeout, got %s", cfg.ExecuteTimeout())
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("DEVCONSOLE_AGENT_URL", "http://envhost:1234")
	t.Setenv("DEVCONSOLE_MAX_HISTORY", "12")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AgentURL != "http://envhost:1234" {
		t.Fatalf("expected env agent url, got %s", cfg.AgentURL)
	}
	if cfg.MaxHistoryItems != 12 {
		t.Fatalf("expected env history bound, got %d", cfg.MaxHistoryItems)
	}
}

func TestLoadRejectsBadHistoryBound(t *testing.T) {
	t.Setenv("DEVCONSOLE_MAX_HISTORY", "0")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for zero history bound")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte(":\n  - ["), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
