package norm

import "math"

// DailyPattern returns the normalized intraday generation curve at the given
// UTC hour, in [0, 1]: a squared-sine bell between 06:00 and 18:00 UTC,
// zero outside that window.
//
// The input is taken literally. Fractional hours are valid (12.5 is half past
// noon), and values outside the 0-24 daily cycle are not wrapped: hour 30 is
// simply outside the generation window and yields 0.
func DailyPattern(hourUTC float64) float64 {
	if hourUTC < SunriseHourUTC || hourUTC > SunsetHourUTC {
		return 0
	}
	s := math.Sin(math.Pi * (hourUTC - SunriseHourUTC) / DaylightHours)
	return s * s
}
