package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Pinger reports dependency liveness. Implemented by the cache layer;
// a nil Pinger means the dependency is not configured.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthChecker handles health check requests
type HealthChecker struct {
	cache Pinger
}

// NewHealthChecker creates a new health checker. cache may be nil when the
// server runs without Redis.
func NewHealthChecker(cache Pinger) *HealthChecker {
	return &HealthChecker{cache: cache}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// HealthCheck handles the /healthz endpoint
func (h *HealthChecker) HealthCheck(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("mode")

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if mode == "extended" {
		checks := make(map[string]string)

		if h.cache == nil {
			checks["cache"] = "disabled"
		} else if err := h.checkCache(r.Context()); err != nil {
			response.Status = "unhealthy"
			checks["cache"] = "unhealthy: " + err.Error()
		} else {
			checks["cache"] = "healthy"
		}

		response.Checks = checks

		statusCode := http.StatusOK
		if response.Status == "unhealthy" {
			statusCode = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		_ = json.NewEncoder(w).Encode(response)
		return
	}

	// Basic mode just confirms the server is running
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(response)
}

// checkCache verifies the Redis connection
func (h *HealthChecker) checkCache(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return h.cache.Ping(ctx)
}

// VersionInfo is the /version response body
type VersionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit,omitempty"`
}

// VersionHandler serves build information
type VersionHandler struct {
	info VersionInfo
}

// NewVersionHandler creates a version handler
func NewVersionHandler(version, commit string) *VersionHandler {
	return &VersionHandler{info: VersionInfo{Version: version, Commit: commit}}
}

// Version handles the /version endpoint
func (h *VersionHandler) Version(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.info)
}
