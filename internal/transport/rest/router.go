package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/segmentbench/internal/transport/middleware"
)

// RouterDeps holds everything NewRouter wires into the mux.
type RouterDeps struct {
	Classify *ClassifyHandler
	Health   *HealthHandler
	// Metrics serves /metrics; nil disables the endpoint.
	Metrics http.Handler
	// HTTPMetrics records per-request metrics; nil disables recording.
	HTTPMetrics *middleware.HTTPMetrics
	Logger      *slog.Logger
}

// NewRouter builds the REST handler: routes plus the middleware chain
// RequestID, Logger, Metrics, Recovery (outermost first).
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /classify", deps.Classify.Classify)
	mux.HandleFunc("GET /live", deps.Health.Live)
	mux.HandleFunc("GET /ready", deps.Health.Ready)
	mux.HandleFunc("GET /health", deps.Health.Health)
	if deps.Metrics != nil {
		mux.Handle("GET /metrics", deps.Metrics)
	}

	var metrics middleware.Middleware
	if deps.HTTPMetrics != nil {
		metrics = deps.HTTPMetrics.Middleware()
	}

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(deps.Logger),
		metrics,
		middleware.Recovery(deps.Logger),
	)(mux)
}
