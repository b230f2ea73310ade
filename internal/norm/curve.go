package norm

import "time"

// CurvePoint is one hourly sample of a norm profile.
type CurvePoint struct {
	// HourUTC is the hour of day in UTC (0-23).
	HourUTC int `json:"hour_utc"`

	// PowerGW is the estimated norm power output in GW.
	PowerGW float64 `json:"power_gw_norm"`
}

// HourlyCurve returns the 24-point norm profile for one month at the given
// site, sampled on whole hours 0 through 23. This is the (month, hour) keying
// that downstream time-series consumers match forecasts against.
func (e *Estimator) HourlyCurve(month int, latitudeDeg, capacityGW float64) ([]CurvePoint, error) {
	points := make([]CurvePoint, 0, 24)
	for hour := 0; hour < 24; hour++ {
		power, err := e.Estimate(float64(hour), month, latitudeDeg, capacityGW)
		if err != nil {
			return nil, err
		}
		points = append(points, CurvePoint{HourUTC: hour, PowerGW: power})
	}
	return points, nil
}

// MonthHourTable returns the full annual norm table for a site: one 24-point
// curve per month, indexed 1 through 12.
func (e *Estimator) MonthHourTable(latitudeDeg, capacityGW float64) (map[int][]CurvePoint, error) {
	table := make(map[int][]CurvePoint, 12)
	for month := 1; month <= 12; month++ {
		curve, err := e.HourlyCurve(month, latitudeDeg, capacityGW)
		if err != nil {
			return nil, err
		}
		table[month] = curve
	}
	return table, nil
}

// EstimateAt calculates the norm power at a concrete timestamp. The timestamp
// is normalized to UTC before the hour and month are derived; minutes
// contribute as a fractional hour.
func (e *Estimator) EstimateAt(ts time.Time, latitudeDeg, capacityGW float64) (float64, error) {
	utc := ts.UTC()
	hour := float64(utc.Hour()) + float64(utc.Minute())/60.0
	return e.Estimate(hour, int(utc.Month()), latitudeDeg, capacityGW)
}
