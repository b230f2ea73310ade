package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	json "github.com/goccy/go-json"

	"github.com/sunslope/solarnorm/internal/fleet"
	"github.com/sunslope/solarnorm/internal/norm"
)

// normResponse is the body for GET /v1/norm.
type normResponse struct {
	HourUTC        float64 `json:"hour_utc"`
	Month          int     `json:"month"`
	LatitudeDeg    float64 `json:"latitude"`
	CapacityGW     float64 `json:"capacity_gw"`
	CapacityFactor float64 `json:"capacity_factor"`
	PowerGW        float64 `json:"power_gw_norm"`
}

// curveResponse is the body for GET /v1/curve.
type curveResponse struct {
	Month       int               `json:"month"`
	LatitudeDeg float64           `json:"latitude"`
	CapacityGW  float64           `json:"capacity_gw"`
	Points      []norm.CurvePoint `json:"points"`
}

// fleetNormResponse is the body for GET /v1/fleet/norm.
type fleetNormResponse struct {
	At      time.Time        `json:"at"`
	PowerGW float64          `json:"power_gw_norm"`
	Sites   []fleet.SiteNorm `json:"sites,omitempty"`
}

// errorResponse is the body for all error statuses.
type errorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id"`
}

// handleNorm serves a single point estimate.
// GET /v1/norm?hour=12&month=6&lat=38.5&capacity_gw=100
func (s *Server) handleNorm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, r, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		return
	}

	hour, err := queryFloat(r, "hour")
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	month, err := queryInt(r, "month")
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	lat, err := queryFloat(r, "lat")
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	capacity, err := queryFloat(r, "capacity_gw")
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	power, err := s.estimator.Estimate(hour, month, lat, capacity)
	if err != nil {
		s.rejections.Inc()
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, normResponse{
		HourUTC:        hour,
		Month:          month,
		LatitudeDeg:    lat,
		CapacityGW:     capacity,
		CapacityFactor: s.estimator.CapacityFactor(),
		PowerGW:        power,
	})
}

// handleCurve serves the 24-point norm profile for one month.
// GET /v1/curve?month=6&lat=38.5&capacity_gw=100
func (s *Server) handleCurve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, r, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		return
	}

	month, err := queryInt(r, "month")
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	lat, err := queryFloat(r, "lat")
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	capacity, err := queryFloat(r, "capacity_gw")
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	points, err := s.estimator.HourlyCurve(month, lat, capacity)
	if err != nil {
		s.rejections.Inc()
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, curveResponse{
		Month:       month,
		LatitudeDeg: lat,
		CapacityGW:  capacity,
		Points:      points,
	})
}

// handleFleetNorm serves the fleet-wide aggregate norm.
// GET /v1/fleet/norm?at=2025-06-15T12:00:00Z&breakdown=true
func (s *Server) handleFleetNorm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, r, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		return
	}

	at := time.Now().UTC()
	if raw := r.URL.Query().Get("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			s.writeError(w, r, http.StatusBadRequest, fmt.Errorf("invalid 'at' timestamp: %w", err))
			return
		}
		at = parsed.UTC()
	}

	resp := fleetNormResponse{At: at, PowerGW: s.fleet.NormAt(at)}
	if r.URL.Query().Get("breakdown") == "true" {
		resp.Sites = s.fleet.BreakdownAt(at)
	}

	s.writeJSON(w, r, http.StatusOK, resp)
}

// handleFleetSites serves the site registry with overrides applied.
// GET /v1/fleet/sites
func (s *Server) handleFleetSites(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, r, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		return
	}

	s.writeJSON(w, r, http.StatusOK, s.fleet.Sites())
}

// writeJSON encodes v as the response body with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Str("path", r.URL.Path).Msg("failed to encode response")
	}
}

// writeError encodes a JSON error body carrying the request's trace ID.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	traceID := w.Header().Get(requestIDHeader)
	s.logger.Warn().
		Str("trace_id", traceID).
		Str("path", r.URL.Path).
		Int("status", status).
		Err(err).
		Msg("request rejected")
	s.writeJSON(w, r, status, errorResponse{Error: err.Error(), TraceID: traceID})
}

// queryFloat parses a required float query parameter.
func queryFloat(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("missing required parameter %q", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %q: %q is not a number", name, raw)
	}
	return v, nil
}

// queryInt parses a required integer query parameter.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("missing required parameter %q", name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %q: %q is not an integer", name, raw)
	}
	return v, nil
}
