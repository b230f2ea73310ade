package norm

import (
	"fmt"
	"math"
	"time"
)

// NormEstimator provides seasonal norm power estimation for solar sites.
type NormEstimator interface {
	// Estimate calculates expected power output in GW for the given UTC
	// hour, month, latitude, and installed capacity. Inputs are validated;
	// see the Err* sentinels for the failure taxonomy.
	Estimate(hourUTC float64, month int, latitudeDeg, capacityGW float64) (float64, error)

	// EstimateAt calculates expected power output at a concrete timestamp,
	// normalized to UTC.
	EstimateAt(ts time.Time, latitudeDeg, capacityGW float64) (float64, error)
}

// Estimator implements NormEstimator using the closed-form seasonal model.
// The zero-cost construction carries no state beyond the capacity factor, so
// a single Estimator is safe for unlimited concurrent use.
type Estimator struct {
	capacityFactor float64
}

// Option configures an Estimator.
type Option func(*Estimator)

// WithCapacityFactor overrides DefaultCapacityFactor, e.g. with a
// per-deployment or per-latitude corrected value.
func WithCapacityFactor(f float64) Option {
	return func(e *Estimator) {
		e.capacityFactor = f
	}
}

// NewEstimator creates a new seasonal norm estimator.
func NewEstimator(opts ...Option) *Estimator {
	e := &Estimator{capacityFactor: DefaultCapacityFactor}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CapacityFactor returns the configured capacity factor.
func (e *Estimator) CapacityFactor() float64 {
	return e.capacityFactor
}

// Estimate calculates expected power output for a solar site.
//
// The calculation composes four terms by multiplication:
//  1. Daily pattern = sin²(π(hour − 6)/12) inside 06:00–18:00 UTC, else 0
//  2. Seasonal factor = 0.7 + 0.3 × cos(2π(month − phase)/12),
//     phase 6.5 (northern) or 12.5 (southern) by latitude sign
//  3. Installed capacity (GW)
//  4. Capacity factor (configured, default 0.20)
//
// The result is non-negative and never exceeds capacityGW × capacity factor.
// It is zero at night and at zero capacity.
//
// hourUTC accepts any finite real and is not wrapped: values outside the
// generation window yield 0. month outside [1, 12], latitude outside
// [-90, 90], negative capacity, and non-finite inputs are rejected.
func (e *Estimator) Estimate(hourUTC float64, month int, latitudeDeg, capacityGW float64) (float64, error) {
	if err := validateInputs(hourUTC, month, latitudeDeg, capacityGW); err != nil {
		return 0, err
	}
	return CalculateNormPower(hourUTC, month, latitudeDeg, capacityGW, e.capacityFactor), nil
}

// CalculateNormPower applies the closed-form seasonal norm formula.
//
// Parameters:
//   - hourUTC: hour of day in UTC (fractional hours allowed)
//   - month: calendar month (1-12)
//   - latitudeDeg: site latitude in degrees, sign selects the hemisphere
//   - capacityGW: installed nameplate capacity (GW)
//   - capacityFactor: average ratio of actual to nameplate output
//
// Returns the estimated power output in GW. Unlike Estimator.Estimate this
// performs no validation; out-of-domain inputs follow the raw formulas.
func CalculateNormPower(hourUTC float64, month int, latitudeDeg, capacityGW, capacityFactor float64) float64 {
	return DailyPattern(hourUTC) * SeasonalFactor(month, latitudeDeg) * capacityGW * capacityFactor
}

// validateInputs enforces the input domains for Estimate.
func validateInputs(hourUTC float64, month int, latitudeDeg, capacityGW float64) error {
	if math.IsNaN(hourUTC) || math.IsInf(hourUTC, 0) {
		return fmt.Errorf("%w: hour %v", ErrNonFiniteInput, hourUTC)
	}
	if math.IsNaN(latitudeDeg) || math.IsInf(latitudeDeg, 0) {
		return fmt.Errorf("%w: latitude %v", ErrNonFiniteInput, latitudeDeg)
	}
	if math.IsNaN(capacityGW) || math.IsInf(capacityGW, 0) {
		return fmt.Errorf("%w: capacity %v", ErrNonFiniteInput, capacityGW)
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: got %d", ErrInvalidMonth, month)
	}
	if latitudeDeg < MinLatitudeDeg || latitudeDeg > MaxLatitudeDeg {
		return fmt.Errorf("%w: got %v", ErrInvalidLatitude, latitudeDeg)
	}
	if capacityGW < 0 {
		return fmt.Errorf("%w: got %v", ErrNegativeCapacity, capacityGW)
	}
	return nil
}
