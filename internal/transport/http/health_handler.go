package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
)

// HealthHandler handles health HTTP requests
type HealthHandler struct {
	service EnrollmentServiceInterface
	logger  *slog.Logger
	version string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(service EnrollmentServiceInterface, logger *slog.Logger, version string) *HealthHandler {
	return &HealthHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "health")),
		version: version,
	}
}

// HealthCheck handles GET /healthz. Always returns 200; reports whether a
// snapshot has been ingested so probes can tell warm from cold.
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "ok",
		"version":   h.version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	if snapshot, err := h.service.Current(r.Context()); err == nil && snapshot != nil {
		response["snapshot"] = map[string]interface{}{
			"generation": snapshot.Generation,
			"loaded_at":  snapshot.LoadedAt,
			"records":    len(snapshot.Records),
		}
	} else {
		response["snapshot"] = nil
	}

	render.JSON(w, r, response)
}
