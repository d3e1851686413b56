// Package gradient holds the color stop model, the stop store and the CSS
// gradient compiler.
package gradient

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alkime/gradients/pkg/uictl"
)

var (
	// ErrUnknownType is returned for gradient types other than linear or radial.
	ErrUnknownType = errors.New("unknown gradient type")
	// ErrUnknownShape is returned for radial shapes other than circle or ellipse.
	ErrUnknownShape = errors.New("unknown radial shape")
	// ErrUnknownField is returned for stop fields other than color, opacity or position.
	ErrUnknownField = errors.New("unknown stop field")
	// ErrOutOfRange is returned when a numeric setting is outside its range.
	ErrOutOfRange = errors.New("value out of range")
)

// StopID identifies a color stop within a collection.
type StopID string

// ColorStop is a single color in a gradient.
type ColorStop struct {
	ID       StopID  `json:"id"`
	Color    string  `json:"color"`
	Opacity  float64 `json:"opacity"`
	Position int     `json:"position"`
}

// GradientType selects the CSS gradient function.
type GradientType string

const (
	// Linear renders as linear-gradient().
	Linear GradientType = "linear"
	// Radial renders as radial-gradient().
	Radial GradientType = "radial"
)

// ParseGradientType maps a name to a GradientType.
func ParseGradientType(s string) (GradientType, error) {
	switch GradientType(s) {
	case Linear, Radial:
		return GradientType(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
}

// RadialShape is the ending shape of a radial gradient.
type RadialShape string

const (
	// Circle is a circular radial gradient.
	Circle RadialShape = "circle"
	// Ellipse is an elliptical radial gradient.
	Ellipse RadialShape = "ellipse"
)

// ParseRadialShape maps a name to a RadialShape.
func ParseRadialShape(s string) (RadialShape, error) {
	switch RadialShape(s) {
	case Circle, Ellipse:
		return RadialShape(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownShape, s)
	}
}

// Field names an editable property of a ColorStop.
type Field string

const (
	// FieldColor is the hex color string.
	FieldColor Field = "color"
	// FieldOpacity is the alpha value.
	FieldOpacity Field = "opacity"
	// FieldPosition is the percentage offset.
	FieldPosition Field = "position"
)

// ParseField maps a name to a Field.
func ParseField(s string) (Field, error) {
	switch Field(s) {
	case FieldColor, FieldOpacity, FieldPosition:
		return Field(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
	}
}

// Angle, position and center limits.
const (
	MinAngle    = 0
	MaxAngle    = 360
	MinPosition = 0
	MaxPosition = 100
)

var (
	// AngleRange bounds linear gradient angles in degrees.
	AngleRange = uictl.Range[int]{Min: MinAngle, Max: MaxAngle, Step: 1}
	// PositionRange bounds stop positions and radial centers in percent.
	PositionRange = uictl.Range[int]{Min: MinPosition, Max: MaxPosition, Step: 1}
	// OpacityRange is the expected opacity range. The store only enforces it
	// when StoreOptions.ClampOpacity is set.
	OpacityRange = uictl.Range[float64]{Min: 0, Max: 1, Step: 0.01}
)

// Config is the gradient configuration. It is replaced wholesale on every
// change. Angle applies to linear gradients, Shape and the center to radial
// ones.
type Config struct {
	Type    GradientType `json:"type"`
	Angle   int          `json:"angle"`
	Shape   RadialShape  `json:"shape"`
	CenterX int          `json:"centerX"`
	CenterY int          `json:"centerY"`
}

// DefaultConfig returns a 90 degree linear gradient with a centered circle
// for when the type is switched to radial.
func DefaultConfig() Config {
	return Config{
		Type:    Linear,
		Angle:   90,
		Shape:   Circle,
		CenterX: 50,
		CenterY: 50,
	}
}

// Normalize clamps numeric fields into range and replaces unknown type and
// shape values with linear and circle.
func (c Config) Normalize() Config {
	if c.Type != Radial {
		c.Type = Linear
	}
	if c.Shape != Ellipse {
		c.Shape = Circle
	}
	c.Angle = AngleRange.Clamp(c.Angle)
	c.CenterX = PositionRange.Clamp(c.CenterX)
	c.CenterY = PositionRange.Clamp(c.CenterY)

	return c
}

// UnmarshalJSON decodes a config, taking fields missing from data from
// DefaultConfig, so a linear config need not carry the radial settings.
func (c *Config) UnmarshalJSON(data []byte) error {
	type plain Config

	decoded := plain(DefaultConfig())
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	*c = Config(decoded)

	return nil
}

// Validate reports the first unknown or out-of-range field. Angle is only
// checked for linear gradients, shape and center only for radial ones.
func (c Config) Validate() error {
	if _, err := ParseGradientType(string(c.Type)); err != nil {
		return err
	}

	if c.Type == Linear {
		if !AngleRange.Contains(c.Angle) {
			return fmt.Errorf("%w: angle %d not in [%d,%d]", ErrOutOfRange, c.Angle, MinAngle, MaxAngle)
		}

		return nil
	}

	if _, err := ParseRadialShape(string(c.Shape)); err != nil {
		return err
	}
	if !PositionRange.Contains(c.CenterX) {
		return fmt.Errorf("%w: centerX %d not in [%d,%d]", ErrOutOfRange, c.CenterX, MinPosition, MaxPosition)
	}
	if !PositionRange.Contains(c.CenterY) {
		return fmt.Errorf("%w: centerY %d not in [%d,%d]", ErrOutOfRange, c.CenterY, MinPosition, MaxPosition)
	}

	return nil
}

// DefaultStops returns the purple to blue starter gradient. IDs are left
// empty; NewStore assigns them.
func DefaultStops() []ColorStop {
	return []ColorStop{
		{Color: "#6a11cb", Opacity: 1, Position: 0},
		{Color: "#2575fc", Opacity: 0.9, Position: 50},
		{Color: "#c471ed", Opacity: 1, Position: 100},
	}
}
