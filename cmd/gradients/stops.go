package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alkime/gradients/pkg/gradient"
)

// ErrInvalidStop is returned for --stop values that do not parse.
var ErrInvalidStop = errors.New("invalid stop")

// GradientFlags are the gradient settings shared by compile, export and
// add-stop.
type GradientFlags struct {
	Type    string   `flag:"" default:"linear" enum:"linear,radial" help:"Gradient type: linear or radial"`
	Angle   int      `flag:"" default:"90" help:"Linear gradient angle in degrees (0-360)"`
	Shape   string   `flag:"" default:"circle" enum:"circle,ellipse" help:"Radial shape: circle or ellipse"`
	CenterX int      `flag:"" name:"center-x" default:"50" help:"Radial center x in percent"`
	CenterY int      `flag:"" name:"center-y" default:"50" help:"Radial center y in percent"`
	Stops   []string `flag:"" name:"stop" sep:"none" help:"Color stop as #hex[:opacity[:position]] (repeatable)"`
}

// Config builds and validates the gradient configuration.
func (f GradientFlags) Config() (gradient.Config, error) {
	cfg := gradient.Config{
		Type:    gradient.GradientType(f.Type),
		Angle:   f.Angle,
		Shape:   gradient.RadialShape(f.Shape),
		CenterX: f.CenterX,
		CenterY: f.CenterY,
	}

	if err := cfg.Validate(); err != nil {
		return gradient.Config{}, fmt.Errorf("invalid gradient settings: %w", err)
	}

	return cfg, nil
}

// Store builds a stop store from the flags. The default stops are used when
// no --stop is given.
func (f GradientFlags) Store(opts gradient.StoreOptions) (gradient.Store, error) {
	cfg, err := f.Config()
	if err != nil {
		return gradient.Store{}, err
	}

	if len(f.Stops) == 0 {
		return gradient.NewStore(gradient.DefaultStops(), cfg, opts), nil
	}

	stops, err := parseStops(f.Stops)
	if err != nil {
		return gradient.Store{}, err
	}

	return gradient.NewStore(stops, cfg, opts), nil
}

// parseStops parses --stop values. Stops without a position are spread
// evenly across 0-100% by their place in the list.
func parseStops(values []string) ([]gradient.ColorStop, error) {
	stops := make([]gradient.ColorStop, 0, len(values))

	for i, value := range values {
		stop, hasPosition, err := parseStop(value)
		if err != nil {
			return nil, err
		}

		if !hasPosition {
			stop.Position = evenPosition(i, len(values))
		}

		stops = append(stops, stop)
	}

	return stops, nil
}

// parseStop parses "#hex[:opacity[:position]]".
func parseStop(value string) (gradient.ColorStop, bool, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) > 3 {
		return gradient.ColorStop{}, false, fmt.Errorf("%w %q: want #hex[:opacity[:position]]", ErrInvalidStop, value)
	}

	color := parts[0]
	if !strings.HasPrefix(color, "#") {
		color = "#" + color
	}

	if _, ok := gradient.HexToRGB(color); !ok {
		return gradient.ColorStop{}, false, fmt.Errorf("%w %q: bad color %q", ErrInvalidStop, value, parts[0])
	}

	stop := gradient.ColorStop{Color: strings.ToLower(color), Opacity: 1}

	if len(parts) > 1 && parts[1] != "" {
		opacity, err := strconv.ParseFloat(parts[1], 64)
		if err != nil || !gradient.OpacityRange.Contains(opacity) {
			return gradient.ColorStop{}, false, fmt.Errorf("%w %q: opacity must be 0-1", ErrInvalidStop, value)
		}
		stop.Opacity = opacity
	}

	if len(parts) > 2 && parts[2] != "" {
		position, err := strconv.Atoi(strings.TrimSuffix(parts[2], "%"))
		if err != nil || !gradient.PositionRange.Contains(position) {
			return gradient.ColorStop{}, false, fmt.Errorf("%w %q: position must be 0-100", ErrInvalidStop, value)
		}
		stop.Position = position

		return stop, true, nil
	}

	return stop, false, nil
}

func evenPosition(i, n int) int {
	if n <= 1 {
		return gradient.MinPosition
	}

	return i * gradient.MaxPosition / (n - 1)
}
