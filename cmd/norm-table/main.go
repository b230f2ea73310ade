// Command norm-table prints the annual month-hour seasonal norm table for a
// registered site or an explicit latitude/capacity pair, as CSV or JSON.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/sunslope/solarnorm/internal/fleet"
	"github.com/sunslope/solarnorm/internal/norm"
)

func main() {
	var (
		siteCode       = flag.String("site", "", "Registered site code (e.g. ES); overrides -lat and -capacity-gw")
		latitudeDeg    = flag.Float64("lat", 0, "Site latitude in degrees")
		capacityGW     = flag.Float64("capacity-gw", 0, "Installed capacity in GW")
		capacityFactor = flag.Float64("capacity-factor", norm.DefaultCapacityFactor, "Capacity factor")
		format         = flag.String("format", "csv", "Output format (csv or json)")
	)
	flag.Parse()

	lat, capacity := *latitudeDeg, *capacityGW
	if *siteCode != "" {
		site, ok := fleet.GetSite(*siteCode)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown site %q\n", *siteCode)
			os.Exit(1)
		}
		lat, capacity = site.LatitudeDeg, site.CapacityGW
	}

	estimator := norm.NewEstimator(norm.WithCapacityFactor(*capacityFactor))
	table, err := estimator.MonthHourTable(lat, capacity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build table: %v\n", err)
		os.Exit(1)
	}

	switch *format {
	case "csv":
		err = writeCSV(os.Stdout, table)
	case "json":
		err = json.NewEncoder(os.Stdout).Encode(table)
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q: must be csv or json\n", *format)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to write table: %v\n", err)
		os.Exit(1)
	}
}

// writeCSV renders the table as month,hour,power_gw_norm rows in month then
// hour order.
func writeCSV(out *os.File, table map[int][]norm.CurvePoint) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"month", "hour", "power_gw_norm"}); err != nil {
		return err
	}

	months := make([]int, 0, len(table))
	for month := range table {
		months = append(months, month)
	}
	sort.Ints(months)

	for _, month := range months {
		for _, p := range table[month] {
			row := []string{
				strconv.Itoa(month),
				strconv.Itoa(p.HourUTC),
				strconv.FormatFloat(p.PowerGW, 'f', 6, 64),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}
