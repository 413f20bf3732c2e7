package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// poolStatter is implemented by *pgxpool.Pool; when the pinger also
// satisfies it, /health reports connection usage.
type poolStatter interface {
	Stat() *pgxpool.Stat
}

const pingTimeout = 3 * time.Second

type poolStats struct {
	acquired, idle, total int32
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      dbPinger
	version string
	stats   func() poolStats
}

// NewHealthHandler creates a HealthHandler. Passing a *pgxpool.Pool adds
// connection usage to /health.
func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	h := &HealthHandler{db: db, version: version}
	if ps, ok := db.(poolStatter); ok {
		h.stats = func() poolStats {
			st := ps.Stat()
			return poolStats{acquired: st.AcquiredConns(), idle: st.IdleConns(), total: st.TotalConns()}
		}
	}
	return h
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status   string `json:"status"`
	Latency  string `json:"latency,omitempty"`
	Acquired int32  `json:"acquired,omitempty"`
	Idle     int32  `json:"idle,omitempty"`
	Total    int32  `json:"total,omitempty"`
}

// Live is the liveness check. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness check. Pings DB: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check: DB ping latency, pool usage and version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	components := make(map[string]CompStatus)
	overallStatus := "ok"

	start := time.Now()
	err := h.db.Ping(ctx)
	latency := time.Since(start)

	db := CompStatus{Status: "ok", Latency: latency.String()}
	if err != nil {
		db = CompStatus{Status: "down"}
		overallStatus = "down"
	}
	if h.stats != nil {
		st := h.stats()
		db.Acquired, db.Idle, db.Total = st.acquired, st.idle, st.total
	}
	components["database"] = db

	status := http.StatusOK
	if overallStatus != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}
