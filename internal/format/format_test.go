package format

import (
	"strings"
	"testing"
)

func TestRenderPrettyPrintsJSONObject(t *testing.T) {
	got := Render(`{"host":"10.0.4.1","received":3}`)
	if !strings.Contains(got, "\n") {
		t.Fatalf("expected multi-line pretty output, got %q", got)
	}
	if !strings.Contains(got, `"host": "10.0.4.1"`) {
		t.Fatalf("expected indented key, got %q", got)
	}
}

func TestRenderPrettyPrintsJSONArray(t *testing.T) {
	got := Render(`[{"id":"dev-01"},{"id":"dev-02"}]`)
	if !strings.Contains(got, `"id": "dev-01"`) {
		t.Fatalf("expected pretty array, got %q", got)
	}
}

func TestRenderUnquotesJSONString(t *testing.T) {
	if got := Render(`"hello"`); got != "hello" {
		t.Fatalf("expected bare string, got %q", got)
	}
}

func TestRenderFallsBackToRawText(t *testing.T) {
	raw := "PING 10.0.4.1: 3 packets transmitted"
	if got := Render(raw); got != raw {
		t.Fatalf("non-JSON payload must pass through, got %q", got)
	}
}

func TestRenderMalformedJSONIsSilentFallback(t *testing.T) {
	raw := `{"host": "10.0.4.1"`
	if got := Render(raw); got != raw {
		t.Fatalf("malformed JSON must fall back to raw text, got %q", got)
	}
}

func TestRenderEmptyPayload(t *testing.T) {
	if got := Render("   "); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}
