// Package agent is a small device-agent backend: the HTTP service the console
// talks to. It serves the command catalog and executes a fixed set of
// diagnostics against simulated devices.
package agent

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"devconsole/internal/catalog"
)

// Device is one simulated managed device.
type Device struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Online   bool   `json:"online"`
	Firmware string `json:"firmware"`
}

// Server executes console commands against an in-memory device inventory.
type Server struct {
	devices []Device
	started time.Time
	logger  *log.Logger
}

func NewServer() *Server {
	return &Server{
		devices: []Device{
			{ID: "dev-01", Name: "gateway-lobby", Address: "10.0.4.1", Online: true, Firmware: "2.4.1"},
			{ID: "dev-02", Name: "sensor-roof", Address: "10.0.4.17", Online: true, Firmware: "1.9.0"},
			{ID: "dev-03", Name: "camera-dock", Address: "10.0.4.30", Online: false, Firmware: "3.0.2"},
			{ID: "dev-04", Name: "relay-basement", Address: "10.0.4.42", Online: true, Firmware: "2.4.1"},
		},
		started: time.Now(),
		logger:  log.New(os.Stderr, "[agent] ", log.LstdFlags),
	}
}

// Router wires the REST surface the console depends on.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/commands", s.handleCommands).Methods(http.MethodGet)
	r.HandleFunc("/api/execute", s.handleExecute).Methods(http.MethodPost)
	r.Use(s.logRequests)
	return r
}

// ListenAndServe blocks serving the agent API on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, s.Router())
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Printf("%s %s (%s)", r.Method, r.URL.Path, time.Since(start).Round(time.Millisecond))
	})
}

func (s *Server) handleCommands(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Defaults())
}

type executeRequest struct {
	Name       string            `json:"name"`
	Parameters map[string]string `json:"parameters"`
}

type executeResponse struct {
	Success bool   `json:"success"`
	Payload any    `json:"payload,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (s *Server) handleExecute(w http.ResponseWriter, r *http.Request) {
	var req executeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, executeResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	payload, err := s.run(req.Name, req.Parameters)
	if err != nil {
		writeJSON(w, http.StatusOK, executeResponse{Success: false, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, executeResponse{Success: true, Payload: payload})
}

// run dispatches one command. Unknown names and missing parameters are
// command failures, not HTTP errors.
func (s *Server) run(name string, params map[string]string) (any, error) {
	switch name {
	case "ping":
		host := params["host"]
		if host == "" {
			return nil, fmt.Errorf("ping requires host=<address>")
		}
		count := 3
		if raw := params["count"]; raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				return nil, fmt.Errorf("invalid count %q", raw)
			}
			count = parsed
		}
		return map[string]any{
			"host":        host,
			"transmitted": count,
			"received":    count,
			"avg_rtt_ms":  1.2,
		}, nil
	case "system_info":
		return map[string]any{
			"os":         runtime.GOOS,
			"arch":       runtime.GOARCH,
			"goroutines": runtime.NumGoroutine(),
			"cpus":       runtime.NumCPU(),
		}, nil
	case "uptime":
		return map[string]any{
			"started": s.started.UTC().Format(time.RFC3339),
			"uptime":  time.Since(s.started).Round(time.Second).String(),
		}, nil
	case "echo":
		return params["text"], nil
	case "device_list":
		return s.devices, nil
	case "device_status":
		device, err := s.findDevice(params["id"])
		if err != nil {
			return nil, err
		}
		return device, nil
	case "reboot_device":
		device, err := s.findDevice(params["id"])
		if err != nil {
			return nil, err
		}
		if !device.Online {
			return nil, fmt.Errorf("device %s is offline", device.ID)
		}
		return map[string]string{"id": device.ID, "state": "rebooting"}, nil
	case "net_scan":
		subnet := params["subnet"]
		if subnet == "" {
			subnet = "10.0.4.0/24"
		}
		found := make([]string, 0, len(s.devices))
		for _, d := range s.devices {
			if d.Online {
				found = append(found, d.Address)
			}
		}
		return map[string]any{"subnet": subnet, "hosts": found}, nil
	default:
		return nil, fmt.Errorf("unknown command: %s", name)
	}
}

func (s *Server) findDevice(id string) (Device, error) {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return Device{}, fmt.Errorf("missing id=<device> parameter")
	}
	for _, d := range s.devices {
		if d.ID == trimmed {
			return d, nil
		}
	}
	return Device{}, fmt.Errorf("no such device: %s", trimmed)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
