// Package fleet provides the per-country solar site registry and fleet-wide
// norm aggregation: the sum of each site's seasonal norm at a point in time.
package fleet

import (
	_ "embed"
	"encoding/csv"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// CSV column indices for data/solar_sites.csv.
// Capacity values follow Ember's yearly installed-capacity dataset.
const (
	colCode       = 0 // ISO 3166-1 alpha-2 country code
	colName       = 1 // Country name
	colLatitude   = 2 // Centroid latitude (degrees)
	colLongitude  = 3 // Centroid longitude (degrees)
	colCapacityGW = 4 // Installed solar capacity (GW)
)

//go:embed data/solar_sites.csv
var solarSitesCSV string

// Site describes one aggregated country-level solar deployment.
type Site struct {
	// Code is the ISO 3166-1 alpha-2 country code.
	Code string `json:"code" yaml:"code"`

	// Name is the country name.
	Name string `json:"name" yaml:"name"`

	// LatitudeDeg is the country centroid latitude in degrees.
	LatitudeDeg float64 `json:"latitude" yaml:"latitude"`

	// LongitudeDeg is the country centroid longitude in degrees. Carried
	// as data only; the norm model applies no longitude correction.
	LongitudeDeg float64 `json:"longitude" yaml:"longitude"`

	// CapacityGW is the installed nameplate solar capacity in GW.
	CapacityGW float64 `json:"capacity_gw" yaml:"capacity_gw"`
}

var (
	siteIndex     map[string]Site
	siteIndexOnce sync.Once
)

// parseSites parses the embedded CSV into the siteIndex map. It skips the
// header and ignores malformed or incomplete rows rather than failing; the
// dataset is compiled in and verified by tests.
func parseSites() {
	siteIndex = make(map[string]Site)

	r := csv.NewReader(strings.NewReader(solarSitesCSV))
	if _, err := r.Read(); err != nil { // header
		return
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		if len(record) <= colCapacityGW {
			continue
		}

		code := strings.TrimSpace(record[colCode])
		if code == "" {
			continue
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(record[colLatitude]), 64)
		if err != nil {
			continue
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(record[colLongitude]), 64)
		if err != nil {
			continue
		}
		capacity, err := strconv.ParseFloat(strings.TrimSpace(record[colCapacityGW]), 64)
		if err != nil || capacity < 0 {
			continue
		}

		siteIndex[code] = Site{
			Code:         code,
			Name:         strings.TrimSpace(record[colName]),
			LatitudeDeg:  lat,
			LongitudeDeg: lon,
			CapacityGW:   capacity,
		}
	}
}

// GetSite returns the registered site for a country code.
// Returns (Site{}, false) if the code is unknown.
func GetSite(code string) (Site, bool) {
	siteIndexOnce.Do(parseSites)
	site, ok := siteIndex[code]
	return site, ok
}

// Sites returns all registered sites sorted by country code.
func Sites() []Site {
	siteIndexOnce.Do(parseSites)
	sites := make([]Site, 0, len(siteIndex))
	for _, site := range siteIndex {
		sites = append(sites, site)
	}
	sort.Slice(sites, func(i, j int) bool { return sites[i].Code < sites[j].Code })
	return sites
}
