package norm

import "math"

// Hemisphere selects the phase of the seasonal cosine. The two cases differ
// only in which month the curve peaks: the hemisphere's local summer.
type Hemisphere int

const (
	// HemisphereNorthern covers latitudes >= 0, equator included.
	HemisphereNorthern Hemisphere = iota

	// HemisphereSouthern covers latitudes < 0.
	HemisphereSouthern
)

// Seasonal peak phase per hemisphere, in months. 6.5 centers the peak on
// late June; 12.5 shifts it six months to late December.
const (
	northernPhaseMonth = 6.5
	southernPhaseMonth = 12.5
)

// HemisphereFor returns the hemisphere for a latitude in degrees.
// The equator is treated as northern by convention.
func HemisphereFor(latitudeDeg float64) Hemisphere {
	if latitudeDeg < 0 {
		return HemisphereSouthern
	}
	return HemisphereNorthern
}

// phaseMonth returns the month on which this hemisphere's seasonal curve
// peaks.
func (h Hemisphere) phaseMonth() float64 {
	if h == HemisphereSouthern {
		return southernPhaseMonth
	}
	return northernPhaseMonth
}

// String returns the hemisphere name.
func (h Hemisphere) String() string {
	if h == HemisphereSouthern {
		return "southern"
	}
	return "northern"
}

// SeasonalFactor returns the annual yield multiplier for the given month and
// latitude: SeasonalBase + SeasonalAmplitude x cos(2pi(month - phase)/12),
// where the phase places the peak in the hemisphere's local summer.
//
// The cosine is periodic with period 12, so the function is mathematically
// defined for any integer month; callers wanting domain enforcement validate
// before calling (see Estimator.Estimate).
func SeasonalFactor(month int, latitudeDeg float64) float64 {
	phase := HemisphereFor(latitudeDeg).phaseMonth()
	return SeasonalBase + SeasonalAmplitude*math.Cos(2*math.Pi*(float64(month)-phase)/MonthsPerYear)
}
