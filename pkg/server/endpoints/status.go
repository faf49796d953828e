package endpoints

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/harvest"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/server"
)

// StatusResponse represents the response from /status
type StatusResponse struct {
	Server  string                 `json:"server"`
	Targets []harvest.TargetStatus `json:"targets"`
	Healthy bool                   `json:"healthy"`
}

// RegisterStatusEndpoints registers the status and info endpoints
func RegisterStatusEndpoints(s *server.Server) {
	serverName := ""
	if s.Config != nil {
		serverName = s.Config.ServerName
	}

	// GET / - Liveness (no auth required)
	s.Router.HandleFunc("/", handleRoot()).Methods("GET")

	// GET /status - Last sweep of every catalog target (no auth required)
	s.Router.HandleFunc("/status", handleStatus(s.Harvester, serverName)).Methods("GET")
}

func version() string {
	if v := os.Getenv("EGERIA_VERSION_DISPLAY"); v != "" {
		return v
	}
	return "0.1.0"
}

func handleRoot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accept := r.Header.Get("Accept")
		format := r.URL.Query().Get("format")
		if format == "json" || strings.Contains(accept, "application/json") {
			writeJSON(w, http.StatusOK, map[string]string{"version": version()})
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Your survey harvester is running! Version " + version() + "\n"))
	}
}

func handleStatus(h server.Harvester, serverName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		targets := h.Status()
		healthy := true
		for _, t := range targets {
			if !t.Connected || t.LastError != "" {
				healthy = false
			}
		}

		code := http.StatusOK
		if !healthy {
			code = http.StatusServiceUnavailable
		}
		writeJSON(w, code, StatusResponse{Server: serverName, Targets: targets, Healthy: healthy})
	}
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}
