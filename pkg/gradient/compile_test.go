package gradient_test

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/alkime/gradients/pkg/gradient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToRGB(t *testing.T) {
	white := gradient.RGB{R: 255, G: 255, B: 255}

	t.Run("shorthand and full form agree", func(t *testing.T) {
		short, ok := gradient.HexToRGB("#fff")
		require.True(t, ok)
		full, ok := gradient.HexToRGB("#ffffff")
		require.True(t, ok)

		assert.Equal(t, white, short)
		assert.Equal(t, white, full)
	})

	t.Run("hash is optional and case is ignored", func(t *testing.T) {
		rgb, ok := gradient.HexToRGB("6A11cb")
		require.True(t, ok)
		assert.Equal(t, gradient.RGB{R: 106, G: 17, B: 203}, rgb)

		rgb, ok = gradient.HexToRGB("AbC")
		require.True(t, ok)
		assert.Equal(t, gradient.RGB{R: 0xaa, G: 0xbb, B: 0xcc}, rgb)
	})

	t.Run("rejects everything else", func(t *testing.T) {
		for _, in := range []string{"not-a-color", "", "#", "#ff", "#ffff", "#fffffff", "##fff", "#ggg", "#12345z", "+12345"} {
			_, ok := gradient.HexToRGB(in)
			assert.False(t, ok, "input %q", in)
		}
	})
}

func TestStopColorString(t *testing.T) {
	t.Run("parsed color", func(t *testing.T) {
		s := gradient.StopColorString(gradient.ColorStop{Color: "#2575fc", Opacity: 0.9, Position: 50})
		assert.Equal(t, "rgba(37, 117, 252, 0.9) 50%", s)
	})

	t.Run("falls back to black", func(t *testing.T) {
		s := gradient.StopColorString(gradient.ColorStop{Color: "not-a-color", Opacity: 0.35, Position: 12})
		assert.Equal(t, "rgba(0,0,0,0.35) 12%", s)
	})

	t.Run("negative zero opacity", func(t *testing.T) {
		s := gradient.StopColorString(gradient.ColorStop{Color: "#2575fc", Opacity: math.Copysign(0, -1), Position: 50})
		assert.Equal(t, "rgba(37, 117, 252, 0) 50%", s)
	})
}

func scenarioStops() []gradient.ColorStop {
	return []gradient.ColorStop{
		{ID: "a", Color: "#6a11cb", Opacity: 1, Position: 0},
		{ID: "b", Color: "#2575fc", Opacity: 0.9, Position: 50},
		{ID: "c", Color: "#c471ed", Opacity: 1, Position: 100},
	}
}

func TestCompile(t *testing.T) {
	t.Run("linear scenario", func(t *testing.T) {
		css := gradient.Compile(scenarioStops(), gradient.Config{Type: gradient.Linear, Angle: 90})
		assert.Equal(t,
			"linear-gradient(90deg, rgba(106, 17, 203, 1) 0%, rgba(37, 117, 252, 0.9) 50%, rgba(196, 113, 237, 1) 100%)",
			css)
	})

	t.Run("radial", func(t *testing.T) {
		cfg := gradient.Config{Type: gradient.Radial, Shape: gradient.Ellipse, CenterX: 20, CenterY: 75}
		css := gradient.Compile(scenarioStops()[:1], cfg)
		assert.Equal(t, "radial-gradient(ellipse at 20% 75%, rgba(106, 17, 203, 1) 0%)", css)
	})

	t.Run("empty is transparent", func(t *testing.T) {
		assert.Equal(t, "transparent", gradient.Compile(nil, gradient.DefaultConfig()))
		assert.Equal(t, "transparent", gradient.CompileStopsOnly(nil))
	})

	t.Run("output is ordered by position", func(t *testing.T) {
		stops := []gradient.ColorStop{
			{ID: "1", Color: "#000", Opacity: 1, Position: 80},
			{ID: "2", Color: "#fff", Opacity: 1, Position: 10},
			{ID: "3", Color: "#f00", Opacity: 1, Position: 45},
			{ID: "4", Color: "#0f0", Opacity: 1, Position: 10},
		}

		css := gradient.Compile(stops, gradient.DefaultConfig())
		positions := regexp.MustCompile(`\) (\d+)%`).FindAllStringSubmatch(css, -1)
		require.Len(t, positions, 4)

		prev := -1
		for _, m := range positions {
			p, err := strconv.Atoi(m[1])
			require.NoError(t, err)
			assert.GreaterOrEqual(t, p, prev)
			prev = p
		}

		// ties keep input order
		assert.Less(t, strings.Index(css, "rgba(255, 255, 255, 1) 10%"), strings.Index(css, "rgba(0, 255, 0, 1) 10%"))
		// input is not reordered in place
		assert.Equal(t, 80, stops[0].Position)
	})

	t.Run("grammar", func(t *testing.T) {
		re := regexp.MustCompile(`^(linear|radial)-gradient\(.+\)$`)
		for _, cfg := range []gradient.Config{
			gradient.DefaultConfig(),
			{Type: gradient.Radial, Shape: gradient.Circle, CenterX: 50, CenterY: 50},
		} {
			assert.Regexp(t, re, gradient.Compile(scenarioStops(), cfg))
		}
	})
}

func TestCompileStopsOnly(t *testing.T) {
	stops := scenarioStops()
	radial := gradient.Config{Type: gradient.Radial, Shape: gradient.Circle, CenterX: 10, CenterY: 10}

	strip := gradient.CompileStopsOnly(stops)
	assert.Equal(t,
		"linear-gradient(to right, rgba(106, 17, 203, 1) 0%, rgba(37, 117, 252, 0.9) 50%, rgba(196, 113, 237, 1) 100%)",
		strip)

	// per-stop formatting is shared with the main gradient
	main := gradient.Compile(stops, radial)
	assert.Equal(t, strings.TrimPrefix(strip, "linear-gradient(to right, "),
		strings.TrimPrefix(main, "radial-gradient(circle at 10% 10%, "))
}

func TestDeclaration(t *testing.T) {
	assert.Equal(t, "background: transparent;", gradient.Declaration("transparent"))
}
