package fleet

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/sunslope/solarnorm/internal/norm"
)

// SiteNorm is one site's contribution to a fleet aggregate.
type SiteNorm struct {
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	PowerGW float64 `json:"power_gw_norm"`
}

// Fleet aggregates seasonal norms over a set of sites. Construction applies
// capacity overrides once; after that the fleet is immutable and safe for
// concurrent use.
type Fleet struct {
	estimator norm.NormEstimator
	sites     []Site
	logger    zerolog.Logger
}

// New creates a Fleet over the given sites. Overrides replace the installed
// capacity of matching sites (unknown codes are logged and ignored), so
// operators can track capacity build-out without recompiling the dataset.
func New(estimator norm.NormEstimator, sites []Site, overrides map[string]float64, logger zerolog.Logger) *Fleet {
	byCode := make(map[string]int, len(sites))
	owned := make([]Site, len(sites))
	copy(owned, sites)
	for i, site := range owned {
		byCode[site.Code] = i
	}

	for code, capacity := range overrides {
		i, ok := byCode[code]
		if !ok {
			logger.Warn().Str("site", code).Msg("capacity override for unknown site ignored")
			continue
		}
		if capacity < 0 {
			logger.Warn().Str("site", code).Float64("capacity_gw", capacity).
				Msg("negative capacity override ignored")
			continue
		}
		owned[i].CapacityGW = capacity
	}

	return &Fleet{estimator: estimator, sites: owned, logger: logger}
}

// Sites returns the fleet's sites with any overrides applied.
func (f *Fleet) Sites() []Site {
	sites := make([]Site, len(f.sites))
	copy(sites, f.sites)
	return sites
}

// NormAt returns the fleet-wide norm power at the given timestamp: the sum
// of every site's estimate. Sites with zero capacity are skipped, and a
// failing site is logged and skipped rather than failing the aggregate.
func (f *Fleet) NormAt(ts time.Time) float64 {
	var total float64
	for _, site := range f.sites {
		if site.CapacityGW == 0 {
			continue
		}
		power, err := f.estimator.EstimateAt(ts, site.LatitudeDeg, site.CapacityGW)
		if err != nil {
			f.logger.Warn().Err(err).Str("site", site.Code).Time("at", ts).
				Msg("skipping site in fleet aggregate")
			continue
		}
		total += power
	}
	return total
}

// BreakdownAt returns each contributing site's norm at the given timestamp,
// in registry order. Zero-capacity and failing sites are omitted, matching
// NormAt.
func (f *Fleet) BreakdownAt(ts time.Time) []SiteNorm {
	breakdown := make([]SiteNorm, 0, len(f.sites))
	for _, site := range f.sites {
		if site.CapacityGW == 0 {
			continue
		}
		power, err := f.estimator.EstimateAt(ts, site.LatitudeDeg, site.CapacityGW)
		if err != nil {
			f.logger.Warn().Err(err).Str("site", site.Code).Time("at", ts).
				Msg("skipping site in fleet breakdown")
			continue
		}
		breakdown = append(breakdown, SiteNorm{Code: site.Code, Name: site.Name, PowerGW: power})
	}
	return breakdown
}

// SiteNormAt returns one site's norm at the given timestamp.
// Returns an error for unknown site codes or estimator rejections.
func (f *Fleet) SiteNormAt(code string, ts time.Time) (float64, error) {
	for _, site := range f.sites {
		if site.Code != code {
			continue
		}
		return f.estimator.EstimateAt(ts, site.LatitudeDeg, site.CapacityGW)
	}
	return 0, fmt.Errorf("unknown site %q", code)
}
