package rest

import (
	"context"
	"net/http"
	"time"
)

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// sessionCounter reports how many study sessions are held in memory.
type sessionCounter interface {
	LiveCount() int
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db       dbPinger
	sessions sessionCounter
	version  string
}

// NewHealthHandler creates a HealthHandler. sessions may be nil.
func NewHealthHandler(db dbPinger, sessions sessionCounter, version string) *HealthHandler {
	return &HealthHandler{db: db, sessions: sessions, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status       string                `json:"status"`
	Version      string                `json:"version,omitempty"`
	Components   map[string]CompStatus `json:"components,omitempty"`
	LiveSessions *int                  `json:"liveSessions,omitempty"`
	Timestamp    time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. Pings DB: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	status, code := "ok", http.StatusOK
	if err := h.db.Ping(ctx); err != nil {
		status, code = "down", http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
	})
}

// Health is the full health check. Pings DB with latency measurement and
// reports the version and the number of live sessions.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	resp := HealthResponse{
		Status:     "ok",
		Version:    h.version,
		Components: make(map[string]CompStatus),
	}

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		resp.Components["database"] = CompStatus{Status: "down"}
		resp.Status = "down"
	} else {
		resp.Components["database"] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
	}

	if h.sessions != nil {
		n := h.sessions.LiveCount()
		resp.LiveSessions = &n
	}

	code := http.StatusOK
	if resp.Status != "ok" {
		code = http.StatusServiceUnavailable
	}
	resp.Timestamp = time.Now()
	writeJSON(w, code, resp)
}
