package export

import (
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/alkime/gradients/pkg/gradient"
)

const gradientID = "g"

// WriteSVG writes an SVG document whose only shape is a rect filled with
// the gradient. Coordinates are in bounding box percentages.
func WriteSVG(w io.Writer, stops []gradient.ColorStop, cfg gradient.Config, size Size) error {
	if err := size.validate(); err != nil {
		return err
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(size.Width, size.Height)
	canvas.Title(gradient.Compile(stops, cfg))

	if len(stops) == 0 {
		canvas.Rect(0, 0, size.Width, size.Height, "fill:none")
		canvas.End()

		return ew.err
	}

	offcolors := offColors(stops)

	canvas.Def()
	if cfg.Type == gradient.Radial {
		cx, cy := uint8(cfg.CenterX), uint8(cfg.CenterY)
		r := percent(farthestCorner(float64(cfg.CenterX), float64(cfg.CenterY), 100, 100))
		canvas.RadialGradient(gradientID, cx, cy, r, cx, cy, offcolors)
	} else {
		dx, dy := direction(cfg.Angle)
		canvas.LinearGradient(gradientID,
			percent(50-50*dx), percent(50-50*dy),
			percent(50+50*dx), percent(50+50*dy),
			offcolors)
	}
	canvas.DefEnd()

	canvas.Rect(0, 0, size.Width, size.Height, "fill:url(#"+gradientID+")")
	canvas.End()

	return ew.err
}

func offColors(stops []gradient.ColorStop) []svg.Offcolor {
	resolved := resolveStops(stops)
	out := make([]svg.Offcolor, len(resolved))

	for i, sc := range resolved {
		out[i] = svg.Offcolor{
			Offset:  uint8(math.Round(sc.offset * 100)),
			Color:   sc.hex,
			Opacity: sc.a,
		}
	}

	return out
}

func percent(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}

	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}

	return n, err
}
