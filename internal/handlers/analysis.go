package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/redsight/redsight/internal/analytics"
	"github.com/redsight/redsight/internal/logger"
	"github.com/redsight/redsight/internal/request"
	"github.com/redsight/redsight/internal/services/reddit"
	"github.com/redsight/redsight/internal/validation"
)

// AnalysisHandler handles user analysis requests
type AnalysisHandler struct {
	provider reddit.Provider
	analyzer *analytics.Analyzer
	logger   *zap.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(provider reddit.Provider, analyzer *analytics.Analyzer, log *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		provider: provider,
		analyzer: analyzer,
		logger:   log,
	}
}

// RegisterRoutes registers analysis routes on the given router.
// The router should already carry the /api/v1 prefix.
func (h *AnalysisHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/users/{username}/analysis", h.AnalyzeUser).Methods("GET")
	r.HandleFunc("/analysis", h.AnalyzeProfileURL).Methods("GET")
}

// AnalyzeUser handles GET /users/{username}/analysis
func (h *AnalysisHandler) AnalyzeUser(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]
	if err := validation.ValidateUsername(username); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", err.Error())
		return
	}
	h.analyze(w, r, username)
}

// AnalyzeProfileURL handles GET /analysis?profile_url=<url-or-username>
func (h *AnalysisHandler) AnalyzeProfileURL(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("profile_url")
	if raw == "" {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "profile_url query parameter is required")
		return
	}

	username, err := reddit.ParseProfileURL(raw)
	if err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", err.Error())
		return
	}
	h.analyze(w, r, username)
}

func (h *AnalysisHandler) analyze(w http.ResponseWriter, r *http.Request, username string) {
	ctx := r.Context()
	start := time.Now()

	activity, err := h.provider.FetchUserActivity(ctx, username)
	if err != nil {
		h.respondFetchError(w, r, username, err)
		return
	}

	report := h.analyzer.Analyze(activity, time.Now().UTC())
	report.ID = uuid.New()

	h.logger.Info("analysis_completed",
		zap.String("request_id", request.RequestIDFromContext(r).String()),
		zap.String("username", logger.SanitizeUsername(username)),
		zap.Int("risk_score", report.RiskScore),
		zap.String("risk_tier", string(report.RiskTier)),
		zap.Duration("duration", time.Since(start)))

	respondJSON(w, http.StatusOK, report)
}

// respondFetchError maps upstream failures onto client-facing status codes
func (h *AnalysisHandler) respondFetchError(w http.ResponseWriter, r *http.Request, username string, err error) {
	requestID := request.RequestIDFromContext(r).String()

	switch {
	case errors.Is(err, reddit.ErrInvalidUsername):
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "invalid username")
	case reddit.IsNotFound(err):
		respondJSONError(w, http.StatusNotFound, "Not Found", "reddit user not found")
	case reddit.IsRateLimited(err):
		respondJSONError(w, http.StatusTooManyRequests, "Too Many Requests", "reddit API rate limit reached, retry later")
	case reddit.IsBlocked(err):
		respondJSONError(w, http.StatusBadGateway, "Bad Gateway", "reddit refused the request for this user")
	case errors.Is(err, context.DeadlineExceeded):
		respondJSONError(w, http.StatusGatewayTimeout, "Gateway Timeout", "reddit API did not respond in time")
	default:
		h.logger.Error("activity_fetch_failed",
			zap.String("request_id", requestID),
			zap.String("username", logger.SanitizeUsername(username)),
			zap.String("error", logger.SanitizeError(err)))
		respondJSONError(w, http.StatusBadGateway, "Bad Gateway", "failed to fetch user activity")
	}
}
