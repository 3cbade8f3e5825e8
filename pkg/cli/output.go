package cli

import (
	"fmt"
	"io"

	"lintang/gridcalc/pkg/datastructure"
	"lintang/gridcalc/pkg/geo"
)

const usageText = `Usage: %[1]s GRID1 GRID2 [OPTIONS]

Calculate distance and bearing between Maidenhead grid squares

Arguments:
  GRID1               First grid square (e.g., FN42, FN42hn)
  GRID2               Second grid square

Options:
  --unit UNIT         Distance unit: km, mi, nm (default: %[2]s)
  -u UNIT             Short form of --unit
  --verbose           Show detailed information
  -v                  Short form of --verbose
  --help              Show this help message
  -h                  Short form of --help

Examples:
  %[1]s FN42 JO01
  %[1]s FN42hn DM13at --unit mi
  %[1]s CN87 CN88 --verbose
`

func printUsage(w io.Writer, defaultUnit string) {
	fmt.Fprintf(w, usageText, progName, defaultUnit)
}

func printSimpleResult(w io.Writer, distance float64, unit geo.Unit) {
	fmt.Fprintf(w, "%.1f %s\n", distance, unit)
}

// printVerboseResult lists the distance in every unit regardless of the one requested.
func printVerboseResult(w io.Writer, from, to string, res datastructure.DistanceResult) {
	fmt.Fprintf(w, "From: %-8s (%8.3f°, %9.3f°)\n", from, res.From.Lat, res.From.Lon)
	fmt.Fprintf(w, "To:   %-8s (%8.3f°, %9.3f°)\n\n", to, res.To.Lat, res.To.Lon)

	fmt.Fprintln(w, "Distance:")
	for _, u := range geo.Units() {
		fmt.Fprintf(w, "  %10.1f %s\n", geo.GreatCircleDistance(res.From, res.To, u), u.Name())
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Bearing:      %5.0f° (%s)\n", res.Bearing, geo.CardinalDirection(res.Bearing))
	fmt.Fprintf(w, "Back Bearing: %5.0f° (%s)\n", res.BackBearing, geo.CardinalDirection(res.BackBearing))
}
