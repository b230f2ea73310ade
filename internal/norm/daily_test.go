package norm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDailyPattern(t *testing.T) {
	tests := []struct {
		name    string
		hourUTC float64
		want    float64
	}{
		{name: "sunrise boundary", hourUTC: 6, want: 0},
		{name: "solar noon", hourUTC: 12, want: 1.0},
		{name: "sunset boundary", hourUTC: 18, want: 0},
		{name: "mid morning", hourUTC: 9, want: 0.5},
		{name: "mid afternoon", hourUTC: 15, want: 0.5},
		{name: "fractional hour", hourUTC: 12.5, want: 0.982963},
		{name: "midnight", hourUTC: 0, want: 0},
		{name: "before sunrise", hourUTC: 5.99, want: 0},
		{name: "after sunset", hourUTC: 18.01, want: 0},
		{name: "beyond daily cycle is not wrapped", hourUTC: 30, want: 0},
		{name: "negative hour", hourUTC: -3, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DailyPattern(tt.hourUTC)
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}
}

func TestDailyPattern_SymmetricAroundNoon(t *testing.T) {
	for offset := 0.0; offset <= 6.0; offset += 0.5 {
		morning := DailyPattern(12 - offset)
		afternoon := DailyPattern(12 + offset)
		assert.InDelta(t, morning, afternoon, 1e-9,
			"pattern should be symmetric at noon +/- %.1fh", offset)
	}
}

func TestDailyPattern_BoundedUnitInterval(t *testing.T) {
	for hour := -6.0; hour <= 30.0; hour += 0.25 {
		got := DailyPattern(hour)
		assert.GreaterOrEqual(t, got, 0.0, "hour %.2f", hour)
		assert.LessOrEqual(t, got, 1.0, "hour %.2f", hour)
	}
}
