// Package httpapi exposes the comparison service over HTTP: operational
// endpoints (health, readiness, metrics) plus the JSON comparison API the
// renderer consumes. It never produces markup; presentation belongs to the
// consumer.
package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/econlens/country-compare/internal/domain"
)

// compareTimeout bounds one fetch-and-compare cycle; the upstream client
// owns the per-request transport timeout underneath this.
const compareTimeout = 15 * time.Second

// ComparisonRunner runs one two-country comparison.
type ComparisonRunner interface {
	Compare(ctx context.Context, countryA, countryB string) (domain.Comparison, error)
}

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Server exposes the comparison API and operational HTTP endpoints.
type Server struct {
	httpServer *http.Server
	runner     ComparisonRunner
	ready      ReadinessChecker
	countries  []string
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics,
// /v1/compare and /v1/countries routes.
func NewServer(addr string, runner ComparisonRunner, ready ReadinessChecker, countries []string, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		runner:    runner,
		ready:     ready,
		countries: countries,
		logger:    logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /v1/compare", s.handleCompare)
	mux.HandleFunc("GET /v1/countries", s.handleCountries)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.ready.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	countryA := strings.TrimSpace(r.URL.Query().Get("a"))
	countryB := strings.TrimSpace(r.URL.Query().Get("b"))

	if countryA == "" || countryB == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "query parameters a and b are required",
		})
		return
	}
	if strings.EqualFold(countryA, countryB) {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "countries must differ",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), compareTimeout)
	defer cancel()

	cmp, err := s.runner.Compare(ctx, countryA, countryB)
	if err != nil {
		// Only cancellation reaches here; upstream trouble degrades to N/A rows.
		s.logger.Error("comparison failed", "country_a", countryA, "country_b", countryB, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "comparison failed",
		})
		return
	}

	writeJSON(w, http.StatusOK, cmp)
}

func (s *Server) handleCountries(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"countries": s.countries})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
