package fleet

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunslope/solarnorm/internal/norm"
)

func newTestFleet(t *testing.T, overrides map[string]float64) *Fleet {
	t.Helper()
	return New(norm.NewEstimator(), Sites(), overrides, zerolog.Nop())
}

func TestFleet_NormAt_NoonVersusMidnight(t *testing.T) {
	f := newTestFleet(t, nil)

	noon := f.NormAt(time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC))
	midnight := f.NormAt(time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC))

	assert.Greater(t, noon, 0.0, "global fleet should generate at 12:00 UTC")
	// Without longitude correction every site shares the UTC generation
	// window, so 00:00 UTC is night everywhere.
	assert.Equal(t, 0.0, midnight)
}

func TestFleet_NormAt_MatchesBreakdownSum(t *testing.T) {
	f := newTestFleet(t, nil)
	ts := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	breakdown := f.BreakdownAt(ts)
	require.NotEmpty(t, breakdown)

	var sum float64
	for _, sn := range breakdown {
		sum += sn.PowerGW
	}
	assert.InDelta(t, f.NormAt(ts), sum, 1e-9)
}

func TestFleet_BreakdownAt_SkipsZeroCapacitySites(t *testing.T) {
	f := newTestFleet(t, nil)

	breakdown := f.BreakdownAt(time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC))
	for _, sn := range breakdown {
		assert.NotEqual(t, "IS", sn.Code, "zero-capacity site should be skipped")
		assert.Greater(t, sn.PowerGW, 0.0, "site %s", sn.Code)
	}
}

func TestFleet_CapacityOverrides(t *testing.T) {
	ts := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	base := newTestFleet(t, nil)
	doubled := newTestFleet(t, map[string]float64{"ES": 62.0})

	baseES, err := base.SiteNormAt("ES", ts)
	require.NoError(t, err)
	doubledES, err := doubled.SiteNormAt("ES", ts)
	require.NoError(t, err)

	assert.InDelta(t, 2*baseES, doubledES, 1e-9)
}

func TestFleet_CapacityOverrides_UnknownAndNegativeIgnored(t *testing.T) {
	ts := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	base := newTestFleet(t, nil)
	overridden := newTestFleet(t, map[string]float64{"XX": 10.0, "DE": -5.0})

	assert.InDelta(t, base.NormAt(ts), overridden.NormAt(ts), 1e-9)
}

func TestFleet_SiteNormAt_UnknownSite(t *testing.T) {
	f := newTestFleet(t, nil)

	power, err := f.SiteNormAt("XX", time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC))

	require.Error(t, err)
	assert.Equal(t, 0.0, power)
}

func TestFleet_SeasonalShape(t *testing.T) {
	f := newTestFleet(t, nil)

	june := f.NormAt(time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC))
	december := f.NormAt(time.Date(2025, time.December, 15, 12, 0, 0, 0, time.UTC))

	// Installed capacity is concentrated in the northern hemisphere, so the
	// global aggregate still peaks in northern summer.
	assert.Greater(t, june, december)
}

func TestFleet_SitesReturnsCopy(t *testing.T) {
	f := newTestFleet(t, nil)

	sites := f.Sites()
	require.NotEmpty(t, sites)
	sites[0].CapacityGW = 9999

	assert.NotEqual(t, 9999.0, f.Sites()[0].CapacityGW)
}
