// Package norm provides closed-form seasonal norm estimation for solar
// generation: a deterministic transform from (hour, month, latitude,
// installed capacity) to an expected power output in gigawatts.
package norm

const (
	// DefaultCapacityFactor is the global average ratio of actual to
	// nameplate solar output. Used when no per-deployment correction is
	// configured.
	DefaultCapacityFactor = 0.20

	// SunriseHourUTC is the start of the modeled generation window.
	// The daily pattern is zero before this hour.
	SunriseHourUTC = 6.0

	// SunsetHourUTC is the end of the modeled generation window.
	// The daily pattern is zero after this hour.
	SunsetHourUTC = 18.0

	// DaylightHours is the width of the modeled generation window.
	DaylightHours = SunsetHourUTC - SunriseHourUTC

	// SeasonalBase is the floor of the seasonal multiplier (local winter).
	SeasonalBase = 0.7

	// SeasonalAmplitude is the peak-to-base swing of the seasonal
	// multiplier. Base + amplitude is reached in local summer.
	SeasonalAmplitude = 0.3

	// MonthsPerYear is the period of the seasonal cosine.
	MonthsPerYear = 12.0

	// MinLatitudeDeg and MaxLatitudeDeg bound accepted latitudes.
	MinLatitudeDeg = -90.0
	MaxLatitudeDeg = 90.0
)
