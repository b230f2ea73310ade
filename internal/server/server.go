// Package server exposes the seasonal norm estimator and fleet aggregates
// over an HTTP JSON API.
package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/sunslope/solarnorm/internal/fleet"
	"github.com/sunslope/solarnorm/internal/norm"
)

// requestIDHeader carries the caller-supplied request ID, if any.
const requestIDHeader = "X-Request-Id"

// Server handles norm estimation requests.
type Server struct {
	estimator *norm.Estimator
	fleet     *fleet.Fleet
	logger    zerolog.Logger

	registry   *prometheus.Registry
	requests   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	rejections prometheus.Counter
}

// New creates a Server around the given estimator and fleet.
func New(estimator *norm.Estimator, flt *fleet.Fleet, logger zerolog.Logger) *Server {
	s := &Server{
		estimator: estimator,
		fleet:     flt,
		logger:    logger,
		registry:  prometheus.NewRegistry(),
	}

	s.requests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "solarnorm_http_requests_total",
		Help: "HTTP requests served, by path and status code.",
	}, []string{"path", "code"})
	s.duration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "solarnorm_http_request_duration_seconds",
		Help:    "HTTP request latency, by path.",
		Buckets: prometheus.DefBuckets,
	}, []string{"path"})
	s.rejections = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "solarnorm_estimate_rejections_total",
		Help: "Estimate requests rejected by input validation.",
	})

	s.registry.MustRegister(s.requests, s.duration, s.rejections)

	return s
}

// Handler returns the root HTTP handler with all routes mounted.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/norm", s.instrument("/v1/norm", s.handleNorm))
	mux.HandleFunc("/v1/curve", s.instrument("/v1/curve", s.handleCurve))
	mux.HandleFunc("/v1/fleet/norm", s.instrument("/v1/fleet/norm", s.handleFleetNorm))
	mux.HandleFunc("/v1/fleet/sites", s.instrument("/v1/fleet/sites", s.handleFleetSites))
	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return mux
}

// statusRecorder captures the response status for logging and metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// instrument wraps a handler with request logging, metrics, and request ID
// propagation.
func (s *Server) instrument(path string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		traceID := s.requestID(r)
		w.Header().Set(requestIDHeader, traceID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)

		s.requests.WithLabelValues(path, strconv.Itoa(rec.status)).Inc()
		s.duration.WithLabelValues(path).Observe(time.Since(start).Seconds())

		s.logger.Info().
			Str("trace_id", traceID).
			Str("method", r.Method).
			Str("path", path).
			Int("status", rec.status).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("request served")
	}
}

// requestID returns the caller-supplied request ID or generates a UUID so
// every log line and error body can be correlated.
func (s *Server) requestID(r *http.Request) string {
	if id := r.Header.Get(requestIDHeader); id != "" {
		return id
	}
	return uuid.New().String()
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte("ok\n")); err != nil {
		s.logger.Error().Err(err).Msg("failed to write health response")
	}
}
