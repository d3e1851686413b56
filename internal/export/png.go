package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"github.com/alkime/gradients/pkg/gradient"
	"github.com/gogpu/gg"
)

// colorSource samples the gradient at a pixel center.
type colorSource interface {
	ColorAt(x, y float64) gg.RGBA
}

// WritePNG rasterizes the gradient and encodes it as PNG. Pixels follow CSS
// geometry: linear gradients run along the angle with the line length
// chosen so the corners get the end colors, radial gradients extend to the
// farthest corner.
func WritePNG(w io.Writer, stops []gradient.ColorStop, cfg gradient.Config, size Size) error {
	if err := size.validate(); err != nil {
		return err
	}

	img := Rasterize(stops, cfg, size)
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}

	return nil
}

// Rasterize renders the gradient into an image of the given size. No stops
// yield a fully transparent image.
func Rasterize(stops []gradient.ColorStop, cfg gradient.Config, size Size) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size.Width, size.Height))
	if len(stops) == 0 {
		return img
	}

	width, height := float64(size.Width), float64(size.Height)
	src, scaleY := brush(stops, cfg, width, height)
	cy := float64(cfg.CenterY) / 100 * height

	for y := 0; y < size.Height; y++ {
		py := float64(y) + 0.5
		if scaleY != 1 {
			py = cy + (py-cy)*scaleY
		}

		for x := 0; x < size.Width; x++ {
			img.Set(x, y, src.ColorAt(float64(x)+0.5, py).Color())
		}
	}

	return img
}

// brush builds the gg gradient brush. Ellipses are drawn as circles in a
// vertically scaled space; scaleY is that factor.
func brush(stops []gradient.ColorStop, cfg gradient.Config, width, height float64) (colorSource, float64) {
	resolved := resolveStops(stops)

	if cfg.Type == gradient.Radial {
		cx := float64(cfg.CenterX) / 100 * width
		cy := float64(cfg.CenterY) / 100 * height

		radius := farthestCorner(cx, cy, width, height)
		scaleY := 1.0

		if cfg.Shape == gradient.Ellipse {
			sideX := max(cx, width-cx)
			sideY := max(cy, height-cy)
			if sideY > 0 {
				// farthest-corner ellipse keeps the farthest-side aspect ratio
				scaleY = sideX / sideY
				radius = sideX * math.Sqrt2
			}
		}

		b := gg.NewRadialGradientBrush(cx, cy, 0, radius)
		for _, sc := range resolved {
			b.AddColorStop(sc.offset, gg.RGBA2(sc.r, sc.g, sc.b, sc.a))
		}

		return b, scaleY
	}

	dx, dy := direction(cfg.Angle)
	half := (math.Abs(width*dx) + math.Abs(height*dy)) / 2
	mx, my := width/2, height/2

	b := gg.NewLinearGradientBrush(mx-dx*half, my-dy*half, mx+dx*half, my+dy*half)
	for _, sc := range resolved {
		b.AddColorStop(sc.offset, gg.RGBA2(sc.r, sc.g, sc.b, sc.a))
	}

	return b, 1
}
