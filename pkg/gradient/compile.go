package gradient

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/alkime/gradients/pkg/collections"
)

// Transparent is emitted instead of a gradient function when there are no
// stops to draw.
const Transparent = "transparent"

// StopColorString renders a stop as "rgba(r, g, b, opacity) position%".
// Colors that do not parse render as black so one bad stop never breaks
// the whole gradient.
func StopColorString(stop ColorStop) string {
	rgb, ok := HexToRGB(stop.Color)
	if !ok {
		return fmt.Sprintf("rgba(0,0,0,%s) %d%%", formatNumber(stop.Opacity), stop.Position)
	}

	return fmt.Sprintf("rgba(%d, %d, %d, %s) %d%%",
		rgb.R, rgb.G, rgb.B, formatNumber(stop.Opacity), stop.Position)
}

// Compile renders the full CSS gradient for stops under cfg. Stops are
// ordered by ascending position; ties keep their input order.
func Compile(stops []ColorStop, cfg Config) string {
	if len(stops) == 0 {
		return Transparent
	}

	list := joinStops(stops)

	if cfg.Type == Radial {
		return fmt.Sprintf("radial-gradient(%s at %d%% %d%%, %s)", cfg.Shape, cfg.CenterX, cfg.CenterY, list)
	}

	return fmt.Sprintf("linear-gradient(%ddeg, %s)", cfg.Angle, list)
}

// CompileStopsOnly renders stops as a left to right linear gradient,
// ignoring the main configuration. Used for the compact stops preview strip.
func CompileStopsOnly(stops []ColorStop) string {
	if len(stops) == 0 {
		return Transparent
	}

	return "linear-gradient(to right, " + joinStops(stops) + ")"
}

// Declaration wraps a compiled gradient as a CSS background declaration,
// the text placed on the clipboard.
func Declaration(css string) string {
	return "background: " + css + ";"
}

// SortedStops returns a copy of stops ordered by ascending position.
// The sort is stable.
func SortedStops(stops []ColorStop) []ColorStop {
	sorted := slices.Clone(stops)
	slices.SortStableFunc(sorted, func(a, b ColorStop) int {
		return cmp.Compare(a.Position, b.Position)
	})

	return sorted
}

func joinStops(stops []ColorStop) string {
	return strings.Join(collections.Apply(SortedStops(stops), StopColorString), ", ")
}

// formatNumber prints the shortest decimal that round-trips, so 1 stays
// "1" and 0.9 stays "0.9". Negative zero prints as "0".
func formatNumber(f float64) string {
	if f == 0 {
		f = 0
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}
