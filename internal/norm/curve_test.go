package norm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimator_HourlyCurve(t *testing.T) {
	e := NewEstimator()

	curve, err := e.HourlyCurve(6, 38.5, 100)
	require.NoError(t, err)
	require.Len(t, curve, 24)

	for i, p := range curve {
		assert.Equal(t, i, p.HourUTC)
	}

	// Nighttime hours are zero, noon is the maximum.
	assert.Equal(t, 0.0, curve[0].PowerGW)
	assert.Equal(t, 0.0, curve[23].PowerGW)
	for _, p := range curve {
		assert.LessOrEqual(t, p.PowerGW, curve[12].PowerGW,
			"hour %d should not exceed noon", p.HourUTC)
	}
	assert.InDelta(t, 19.80, curve[12].PowerGW, 0.1)
}

func TestEstimator_HourlyCurve_InvalidMonth(t *testing.T) {
	e := NewEstimator()

	curve, err := e.HourlyCurve(13, 38.5, 100)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidMonth)
	assert.Nil(t, curve)
}

func TestEstimator_MonthHourTable(t *testing.T) {
	e := NewEstimator()

	table, err := e.MonthHourTable(38.5, 100)
	require.NoError(t, err)
	require.Len(t, table, 12)

	for month := 1; month <= 12; month++ {
		require.Len(t, table[month], 24, "month %d", month)
	}

	// Annual shape: northern June noon beats December noon.
	assert.Greater(t, table[6][12].PowerGW, table[12][12].PowerGW)
}

func TestEstimator_EstimateAt(t *testing.T) {
	e := NewEstimator()

	tests := []struct {
		name string
		ts   time.Time
		want float64
	}{
		{
			name: "summer noon UTC",
			ts:   time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC),
			want: 19.80,
		},
		{
			name: "summer midnight UTC",
			ts:   time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "non-UTC timestamp is normalized",
			ts:   time.Date(2025, time.June, 15, 14, 0, 0, 0, time.FixedZone("CEST", 2*3600)),
			want: 19.80, // 14:00+02:00 is 12:00 UTC
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.EstimateAt(tt.ts, 38.5, 100)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.1)
		})
	}
}

func TestEstimator_EstimateAt_FractionalHour(t *testing.T) {
	e := NewEstimator()

	atNoon, err := e.EstimateAt(time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC), 38.5, 100)
	require.NoError(t, err)
	atHalfPast, err := e.EstimateAt(time.Date(2025, time.June, 15, 12, 30, 0, 0, time.UTC), 38.5, 100)
	require.NoError(t, err)

	assert.Less(t, atHalfPast, atNoon, "12:30 should be past the noon peak")
	assert.Greater(t, atHalfPast, atNoon*0.9, "12:30 should still be near the peak")
}
