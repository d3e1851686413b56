// Package swatch provides a TUI component that paints a gradient with
// colored terminal cells.
package swatch

import (
	"image"
	"strings"

	"github.com/alkime/gradients/internal/export"
	"github.com/alkime/gradients/internal/tui/style"
	"github.com/alkime/gradients/pkg/gradient"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// upperHalf paints two pixel rows per cell: the foreground is the top row,
// the background the bottom row.
const upperHalf = "▀"

// emptyCell is drawn when there are no stops.
const emptyCell = "░"

// Backdrop is the color translucent stops are composited over.
var Backdrop = colorful.Color{R: 0.12, G: 0.12, B: 0.14}

// Model displays a gradient preview.
//
// In strip mode it paints the stops left to right, matching the stops-only
// CSS. Otherwise it rasterizes the full gradient, two pixel rows per
// terminal row.
type Model struct {
	stops  []gradient.ColorStop
	config gradient.Config
	strip  bool
	width  int // Display width in characters
	height int // Display height in rows
}

// NewStrip creates a left to right stops preview.
func NewStrip(width, height int) Model {
	return Model{strip: true, width: max(1, width), height: max(1, height)}
}

// NewPreview creates a full gradient preview.
func NewPreview(width, height int) Model {
	return Model{width: max(1, width), height: max(1, height)}
}

// SetGradient replaces the stops and configuration being shown.
func (m Model) SetGradient(stops []gradient.ColorStop, cfg gradient.Config) Model {
	m.stops = stops
	m.config = cfg

	return m
}

// SetSize changes the display size.
func (m Model) SetSize(width, height int) Model {
	m.width = max(1, width)
	m.height = max(1, height)

	return m
}

// Width is the display width in characters.
func (m Model) Width() int {
	return m.width
}

// Height is the display height in rows.
func (m Model) Height() int {
	return m.height
}

// View renders the preview.
func (m Model) View() string {
	if len(m.stops) == 0 {
		return m.renderEmpty()
	}

	if m.strip {
		return m.renderStrip()
	}

	return m.renderPreview()
}

// renderStrip samples the stops once per column and repeats the row.
func (m Model) renderStrip() string {
	ramp := Ramp(m.stops, m.width)

	var row strings.Builder
	for _, c := range ramp {
		row.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render(" "))
	}

	rows := make([]string, m.height)
	for i := range rows {
		rows[i] = row.String()
	}

	return strings.Join(rows, "\n")
}

// renderPreview rasterizes the gradient at width x 2*height pixels.
func (m Model) renderPreview() string {
	img := export.Rasterize(m.stops, m.config, export.Size{Width: m.width, Height: m.height * 2})

	var sb strings.Builder

	for row := 0; row < m.height; row++ {
		if row > 0 {
			sb.WriteString("\n")
		}

		for col := 0; col < m.width; col++ {
			top := composite(img, col, row*2)
			bottom := composite(img, col, row*2+1)

			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top.Hex())).
				Background(lipgloss.Color(bottom.Hex())).
				Render(upperHalf))
		}
	}

	return sb.String()
}

// renderEmpty renders a hatched box for a transparent gradient.
func (m Model) renderEmpty() string {
	row := style.Muted.Render(strings.Repeat(emptyCell, m.width))

	rows := make([]string, m.height)
	for i := range rows {
		rows[i] = row
	}

	return strings.Join(rows, "\n")
}

// Ramp samples the stops at n evenly spaced positions from 0% to 100%,
// composited over Backdrop.
func Ramp(stops []gradient.ColorStop, n int) []colorful.Color {
	sorted := gradient.SortedStops(stops)
	out := make([]colorful.Color, n)

	for i := range out {
		pos := (float64(i) + 0.5) / float64(n) * 100
		c, alpha := sample(sorted, pos)
		out[i] = Backdrop.BlendRgb(c, alpha).Clamped()
	}

	return out
}

// sample interpolates the sorted stops at pos percent.
func sample(sorted []gradient.ColorStop, pos float64) (colorful.Color, float64) {
	first := sorted[0]
	if pos <= float64(first.Position) {
		return stopColor(first)
	}

	for i := 1; i < len(sorted); i++ {
		lo, hi := sorted[i-1], sorted[i]
		if pos > float64(hi.Position) {
			continue
		}

		span := float64(hi.Position - lo.Position)
		if span == 0 {
			return stopColor(hi)
		}

		t := (pos - float64(lo.Position)) / span
		c1, a1 := stopColor(lo)
		c2, a2 := stopColor(hi)

		return c1.BlendRgb(c2, t), a1 + (a2-a1)*t
	}

	return stopColor(sorted[len(sorted)-1])
}

// stopColor resolves a stop, using black for colors that do not parse.
func stopColor(stop gradient.ColorStop) (colorful.Color, float64) {
	rgb, _ := gradient.HexToRGB(stop.Color)
	c := colorful.Color{
		R: float64(rgb.R) / 255,
		G: float64(rgb.G) / 255,
		B: float64(rgb.B) / 255,
	}

	return c, gradient.OpacityRange.Clamp(stop.Opacity)
}

func composite(img *image.NRGBA, x, y int) colorful.Color {
	px := img.NRGBAAt(x, y)
	c := colorful.Color{
		R: float64(px.R) / 255,
		G: float64(px.G) / 255,
		B: float64(px.B) / 255,
	}

	return Backdrop.BlendRgb(c, float64(px.A)/255).Clamped()
}
