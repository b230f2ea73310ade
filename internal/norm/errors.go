package norm

import "errors"

// Validation failures surfaced by Estimator.Estimate. All are synchronous and
// local; the caller decides whether to skip the sample or substitute a
// default. Wrapped errors carry the offending value, so match with
// errors.Is.
var (
	// ErrInvalidMonth means month is outside [1, 12]. Out-of-range months
	// are rejected rather than wrapped through the cosine's periodicity.
	ErrInvalidMonth = errors.New("month must be in [1, 12]")

	// ErrInvalidLatitude means latitude is outside [-90, 90] degrees.
	ErrInvalidLatitude = errors.New("latitude must be in [-90, 90] degrees")

	// ErrNegativeCapacity means the installed capacity is below zero.
	ErrNegativeCapacity = errors.New("capacity must be non-negative")

	// ErrNonFiniteInput means an input is NaN or infinite.
	ErrNonFiniteInput = errors.New("input must be finite")
)
