package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/zestie-cloud/pawmatch/internal/domain"
	"github.com/zestie-cloud/pawmatch/internal/domain/match"
	"github.com/zestie-cloud/pawmatch/internal/metrics"
	healthuc "github.com/zestie-cloud/pawmatch/internal/usecase/health"
	matcheruc "github.com/zestie-cloud/pawmatch/internal/usecase/matcher"
	usageuc "github.com/zestie-cloud/pawmatch/internal/usecase/usage"
)

// Error codes returned in the JSON error body.
const (
	codeBadRequest       = "bad_request"
	codeValidationFailed = "validation_failed"
	codeNotFound         = "dog_not_found"
	codeNotReady         = "catalog_not_ready"
	codeInternalError    = "internal_error"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the matching engine and analytics over HTTP.
type Server struct {
	matcher       *matcheruc.Service
	usage         *usageuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server. usage may be nil when analytics
// storage is not configured (file-backed catalog mode).
func NewServer(
	matcher *matcheruc.Service,
	usage *usageuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		matcher: matcher,
		usage:   usage,
		health:  health,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidRequest, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrCatalogNotReady, http.StatusServiceUnavailable, codeNotReady),
		sentinelHandler(domain.ErrDogNotFound, http.StatusNotFound, codeNotFound),
	}
	return s
}

// Routes registers all handlers on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Post("/api/v1/match", s.Match)
	r.Post("/api/v1/dogs/{id}/views", s.RecordView)
	r.Post("/api/v1/sessions", s.StartSession)
	r.Get("/api/v1/stats", s.GetStats)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// Match handles POST /api/v1/match.
func (s *Server) Match(w http.ResponseWriter, r *http.Request) {
	var dto matchRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		metrics.MatchRequestsTotal.WithLabelValues("invalid").Inc()
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	req, err := match.NewRequest(dto.HardFilters, dto.toPrefSpecs(), dto.SeenDogIDs)
	if err != nil {
		metrics.MatchRequestsTotal.WithLabelValues("invalid").Inc()
		s.handleDomainError(w, err)
		return
	}

	start := time.Now()
	resp, err := s.matcher.Match(r.Context(), &req)
	if err != nil {
		metrics.MatchRequestsTotal.WithLabelValues(matchErrorOutcome(err)).Inc()
		s.handleDomainError(w, err)
		return
	}

	metrics.MatchRequestsTotal.WithLabelValues("ok").Inc()
	metrics.MatchDuration.Observe(time.Since(start).Seconds())
	metrics.MatchCompatiblePool.Observe(float64(resp.TotalFound))

	s.recordMatchUsage(r, &dto, &resp)

	writeJSON(w, http.StatusOK, responseToDTO(resp))
}

// recordMatchUsage tracks filter popularity and explore slots. Analytics
// failures never fail the match call.
func (s *Server) recordMatchUsage(r *http.Request, dto *matchRequestDTO, resp *match.Response) {
	if s.usage == nil {
		return
	}

	exploreServed := 0
	for i := range resp.Results {
		if resp.Results[i].Section == match.SectionExplore {
			exploreServed++
		}
	}

	if err := s.usage.RecordMatch(r.Context(), dto.filterUses(), exploreServed); err != nil {
		s.logger.Warn("record match usage", zap.Error(err))
	}
}

// RecordView handles POST /api/v1/dogs/{id}/views.
func (s *Server) RecordView(w http.ResponseWriter, r *http.Request) {
	if s.usage == nil {
		writeError(w, http.StatusServiceUnavailable, codeNotReady, "analytics storage not configured")
		return
	}

	dogID := chi.URLParam(r, "id")
	if dogID == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "dog id is required")
		return
	}

	total, err := s.usage.RecordView(r.Context(), dogID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"dog_id": dogID,
		"views":  total,
	})
}

// StartSession handles POST /api/v1/sessions.
func (s *Server) StartSession(w http.ResponseWriter, r *http.Request) {
	if s.usage == nil {
		writeError(w, http.StatusServiceUnavailable, codeNotReady, "analytics storage not configured")
		return
	}

	if err := s.usage.StartSession(r.Context()); err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetStats handles GET /api/v1/stats.
func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	if s.usage == nil {
		writeError(w, http.StatusServiceUnavailable, codeNotReady, "analytics storage not configured")
		return
	}

	stats, err := s.usage.Stats(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, report)
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidRequest,
		domain.ErrCatalogNotReady,
		domain.ErrDogNotFound,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			// Validation errors carry the offending field, safe to return.
			if errors.Is(err, domain.ErrInvalidRequest) {
				return err.Error()
			}
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}

func matchErrorOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return "invalid"
	case errors.Is(err, domain.ErrCatalogNotReady):
		return "not_ready"
	default:
		return "error"
	}
}
