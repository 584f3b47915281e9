package execute

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Result is the outcome a Transport reports for one command.
type Result struct {
	Success bool
	Payload string
	Error   string
}

// Transport performs the real work of a command. Implementations are opaque
// to the tracker: they run asynchronously and must always return, either a
// failure Result or an error, never both panic nor hang past their own
// deadline.
type Transport interface {
	ExecuteCommand(ctx context.Context, name string, parameters map[string]string) (Result, error)
}

// Notifier surfaces transient messages to the user.
type Notifier interface {
	Success(text string)
	Warning(text string)
	Error(text string)
}

type executeRequest struct {
	Name       string            `json:"name"`
	Parameters map[string]string `json:"parameters"`
}

type executeResponse struct {
	Success bool            `json:"success"`
	Payload json.RawMessage `json:"payload,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// HTTPTransport executes commands against a device agent over REST.
type HTTPTransport struct {
	baseURL string
	client  *http.Client
}

func NewHTTPTransport(baseURL string, timeout time.Duration) *HTTPTransport {
	return &HTTPTransport{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (t *HTTPTransport) ExecuteCommand(ctx context.Context, name string, parameters map[string]string) (Result, error) {
	body, err := json.Marshal(executeRequest{Name: name, Parameters: parameters})
	if err != nil {
		return Result{}, fmt.Errorf("encode execute request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/api/execute", bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("build execute request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := t.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("execute %s: %w", name, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("read execute response: %w", err)
	}
	var decoded executeResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return Result{}, fmt.Errorf("decode execute response for %s: %w", name, err)
	}
	if !decoded.Success {
		errText := strings.TrimSpace(decoded.Error)
		if errText == "" {
			errText = fmt.Sprintf("command %s failed with status %d", name, resp.StatusCode)
		}
		return Result{Success: false, Error: errText}, nil
	}
	return Result{Success: true, Payload: string(decoded.Payload)}, nil
}
