package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Check is a named readiness probe.
type Check struct {
	Name string
	Fn   func(ctx context.Context) error
}

// Server serves the ops endpoints of the daemon.
type Server struct {
	Checks       []Check
	CheckTimeout time.Duration
}

// NewServer constructs an ops server with the given readiness checks.
func NewServer(checks ...Check) *Server {
	return &Server{Checks: checks, CheckTimeout: 2 * time.Second}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// HealthzHandler reports liveness only.
func (s *Server) HealthzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }
}

// ReadyzHandler runs every check and answers 503 when any fails.
func (s *Server) ReadyzHandler() http.HandlerFunc {
	type check struct {
		Name    string `json:"name"`
		OK      bool   `json:"ok"`
		Details string `json:"details,omitempty"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), s.CheckTimeout)
		defer cancel()
		results := make([]check, 0, len(s.Checks))
		st := http.StatusOK
		for _, c := range s.Checks {
			if err := c.Fn(ctx); err != nil {
				results = append(results, check{Name: c.Name, OK: false, Details: err.Error()})
				st = http.StatusServiceUnavailable
				continue
			}
			results = append(results, check{Name: c.Name, OK: true})
		}
		writeJSON(w, st, map[string]any{"checks": results})
	}
}
