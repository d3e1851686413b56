// Package export renders a gradient to standalone image files for quick
// previews outside the browser.
package export

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/alkime/gradients/pkg/gradient"
)

// Format is an export file format.
type Format string

const (
	// SVG writes an SVG document with a gradient-filled rect.
	SVG Format = "svg"
	// PNG writes a rasterized preview.
	PNG Format = "png"
)

// ErrUnknownFormat is returned for formats other than svg and png.
var ErrUnknownFormat = errors.New("unknown export format")

// ErrInvalidSize is returned for non-positive image sizes.
var ErrInvalidSize = errors.New("invalid export size")

// ParseFormat maps a name to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case SVG, PNG:
		return Format(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// ContentType is the MIME type of the format.
func (f Format) ContentType() string {
	if f == PNG {
		return "image/png"
	}

	return "image/svg+xml"
}

// Size is the output size in pixels.
type Size struct {
	Width  int
	Height int
}

// DefaultSize matches the editor's main preview aspect.
var DefaultSize = Size{Width: 640, Height: 352}

// MaxDimension bounds either side of an export.
const MaxDimension = 4096

func (s Size) validate() error {
	if s.Width < 1 || s.Height < 1 || s.Width > MaxDimension || s.Height > MaxDimension {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, s.Width, s.Height)
	}

	return nil
}

// Write renders stops under cfg in format f.
func Write(w io.Writer, f Format, stops []gradient.ColorStop, cfg gradient.Config, size Size) error {
	switch f {
	case SVG:
		return WriteSVG(w, stops, cfg, size)
	case PNG:
		return WritePNG(w, stops, cfg, size)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// stopColor is a stop reduced to channels in [0,1], opacity clamped.
type stopColor struct {
	offset     float64
	r, g, b, a float64
	hex        string
}

// resolveStops sorts stops and resolves their colors, black for colors
// that do not parse.
func resolveStops(stops []gradient.ColorStop) []stopColor {
	sorted := gradient.SortedStops(stops)
	out := make([]stopColor, len(sorted))

	for i, stop := range sorted {
		rgb, _ := gradient.HexToRGB(stop.Color)
		out[i] = stopColor{
			offset: float64(stop.Position) / 100,
			r:      float64(rgb.R) / 255,
			g:      float64(rgb.G) / 255,
			b:      float64(rgb.B) / 255,
			a:      gradient.OpacityRange.Clamp(stop.Opacity),
			hex:    fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B),
		}
	}

	return out
}

// direction is the unit vector of a CSS gradient angle: 0deg points up,
// 90deg points right.
func direction(angle int) (dx, dy float64) {
	rad := float64(angle) * math.Pi / 180
	return math.Sin(rad), -math.Cos(rad)
}

// farthestCorner is the distance from (cx, cy) to the farthest corner of a
// w by h box.
func farthestCorner(cx, cy, w, h float64) float64 {
	dx := math.Max(cx, w-cx)
	dy := math.Max(cy, h-cy)

	return math.Hypot(dx, dy)
}
