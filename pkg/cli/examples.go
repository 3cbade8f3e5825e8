package cli

import (
	"fmt"
	"io"
	"strings"

	"lintang/gridcalc/pkg/engine"
	"lintang/gridcalc/pkg/geo"

	"github.com/rs/zerolog"
)

type example struct {
	from        string
	to          string
	description string
}

var examples = []example{
	{"FN42", "JO01", "Boston area to London area"},
	{"FN42hn", "DM13at", "Massachusetts to Arizona"},
	{"CN87", "CN88", "Adjacent grid squares"},
	{"JN25", "QF22", "Europe to Australia"},
}

var (
	heavyRule = strings.Repeat("=", 70)
	lightRule = strings.Repeat("-", 70)
)

func runExamples(w io.Writer, logger zerolog.Logger) {
	fmt.Fprintln(w, heavyRule)
	fmt.Fprintln(w, "Maidenhead Grid Square Distance Calculator")
	fmt.Fprintf(w, "%s\n\n", heavyRule)
	fmt.Fprintln(w, "Example Calculations:")
	fmt.Fprintln(w, lightRule)

	for _, ex := range examples {
		printExample(w, logger, ex)
	}

	fmt.Fprintf(w, "\n%s\n", heavyRule)
}

// printExample reports a failing example inline so the remaining ones still run.
func printExample(w io.Writer, logger zerolog.Logger, ex example) {
	res, err := engine.Evaluate(ex.from, ex.to, geo.Kilometers)
	if err != nil {
		logger.Debug().Err(err).Str("from", ex.from).Str("to", ex.to).Msg("example failed")
		fmt.Fprintf(w, "\n%s: Error - %s\n", ex.description, err)
		return
	}
	mi := geo.GreatCircleDistance(res.From, res.To, geo.Miles)
	nm := geo.GreatCircleDistance(res.From, res.To, geo.NauticalMiles)

	fmt.Fprintf(w, "\n%s\n", ex.description)
	fmt.Fprintf(w, "  From: %-8s (%7.3f°, %8.3f°)\n", ex.from, res.From.Lat, res.From.Lon)
	fmt.Fprintf(w, "  To:   %-8s (%7.3f°, %8.3f°)\n", ex.to, res.To.Lat, res.To.Lon)
	fmt.Fprintf(w, "  Distance: %.1f km (%.1f mi, %.1f nm)\n", res.Distance, mi, nm)
	fmt.Fprintf(w, "  Bearing:  %.1f° (%s)\n", res.Bearing, geo.CardinalDirection(res.Bearing))
}
