package gradient_test

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/alkime/gradients/pkg/gradient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequentialIDs returns a generator yielding id-1, id-2, ...
func sequentialIDs() func() gradient.StopID {
	n := 0
	return func() gradient.StopID {
		n++
		return gradient.StopID(fmt.Sprintf("id-%d", n))
	}
}

func newStore(t *testing.T, opts gradient.StoreOptions, stops ...gradient.ColorStop) gradient.Store {
	t.Helper()
	if opts.NewID == nil {
		opts.NewID = sequentialIDs()
	}
	return gradient.NewStore(stops, gradient.DefaultConfig(), opts)
}

func positions(s gradient.Store) []int {
	var out []int
	for _, stop := range s.Stops() {
		out = append(out, stop.Position)
	}
	return out
}

func TestNewStore(t *testing.T) {
	s := newStore(t, gradient.StoreOptions{},
		gradient.ColorStop{ID: "x", Color: "#fff", Opacity: 1, Position: 140},
		gradient.ColorStop{ID: "x", Color: "#000", Opacity: 1, Position: -5},
		gradient.ColorStop{Color: "#f00", Opacity: 1, Position: 50},
	)

	require.Equal(t, 3, s.Len())
	assert.Equal(t, []int{0, 50, 100}, positions(s))

	ids := map[gradient.StopID]bool{}
	for _, stop := range s.Stops() {
		assert.NotEmpty(t, stop.ID)
		assert.False(t, ids[stop.ID], "duplicate id %s", stop.ID)
		ids[stop.ID] = true
	}

	t.Run("default store", func(t *testing.T) {
		d := gradient.DefaultStore(gradient.StoreOptions{})
		assert.Equal(t,
			"linear-gradient(90deg, rgba(106, 17, 203, 1) 0%, rgba(37, 117, 252, 0.9) 50%, rgba(196, 113, 237, 1) 100%)",
			d.CSS())
		assert.Equal(t, "background: "+d.CSS()+";", d.Declaration())
	})
}

func TestStoreAdd(t *testing.T) {
	t.Run("ends only inserts in the middle", func(t *testing.T) {
		s := newStore(t, gradient.StoreOptions{},
			gradient.ColorStop{ID: "a", Color: "#000000", Opacity: 1, Position: 0},
			gradient.ColorStop{ID: "b", Color: "#123456", Opacity: 1, Position: 100},
		)

		next, id := s.Add()
		stop, ok := next.Stop(id)
		require.True(t, ok)
		assert.Equal(t, 50, stop.Position)
		assert.Equal(t, "#ffffff", stop.Color)
		assert.Equal(t, 1.0, stop.Opacity)
		assert.Equal(t, []int{0, 50, 100}, positions(next))

		// receiver unchanged
		assert.Equal(t, 2, s.Len())
	})

	t.Run("single stop goes toward the far end", func(t *testing.T) {
		s := newStore(t, gradient.StoreOptions{},
			gradient.ColorStop{ID: "a", Color: "#abcdef", Opacity: 1, Position: 30})

		next, id := s.Add()
		stop, _ := next.Stop(id)
		assert.Equal(t, 65, stop.Position)
	})

	t.Run("contrasts with a white last stop", func(t *testing.T) {
		s := newStore(t, gradient.StoreOptions{},
			gradient.ColorStop{ID: "a", Color: "#ffffff", Opacity: 1, Position: 10})

		next, id := s.Add()
		stop, _ := next.Stop(id)
		assert.Equal(t, "#000000", stop.Color)
	})

	t.Run("empty store", func(t *testing.T) {
		next, id := newStore(t, gradient.StoreOptions{}).Add()
		stop, ok := next.Stop(id)
		require.True(t, ok)
		assert.Equal(t, 50, stop.Position)
		assert.Equal(t, "#ffffff", stop.Color)
	})

	t.Run("ids are fresh", func(t *testing.T) {
		s := gradient.DefaultStore(gradient.StoreOptions{})
		s, a := s.Add()
		s, b := s.Add()
		assert.NotEqual(t, a, b)
		assert.Equal(t, 5, s.Len())
	})
}

func TestStoreRemove(t *testing.T) {
	t.Run("keeps the last stop", func(t *testing.T) {
		s := newStore(t, gradient.StoreOptions{},
			gradient.ColorStop{ID: "only", Color: "#fff", Opacity: 1, Position: 10})

		next := s.Remove("only")
		assert.Equal(t, 1, next.Len())
	})

	t.Run("removes by id", func(t *testing.T) {
		s := newStore(t, gradient.StoreOptions{}, scenarioStops()...)
		next := s.Remove("b")

		assert.Equal(t, 2, next.Len())
		_, ok := next.Stop("b")
		assert.False(t, ok)
		assert.Equal(t, 3, s.Len())
	})

	t.Run("unknown id", func(t *testing.T) {
		s := newStore(t, gradient.StoreOptions{}, scenarioStops()...)
		assert.Equal(t, s.Stops(), s.Remove("missing").Stops())
	})
}

func TestStoreUpdate(t *testing.T) {
	base := newStore(t, gradient.StoreOptions{}, scenarioStops()...)

	t.Run("color", func(t *testing.T) {
		s := base.Update("a", gradient.FieldColor, "#00ff00")
		stop, _ := s.Stop("a")
		assert.Equal(t, "#00ff00", stop.Color)
	})

	t.Run("opacity from string", func(t *testing.T) {
		s := base.Update("a", gradient.FieldOpacity, "0.25")
		stop, _ := s.Stop("a")
		assert.Equal(t, 0.25, stop.Opacity)
	})

	t.Run("opacity passes through by default", func(t *testing.T) {
		s := base.Update("a", gradient.FieldOpacity, 1.5)
		stop, _ := s.Stop("a")
		assert.Equal(t, 1.5, stop.Opacity)
	})

	t.Run("opacity clamped when enabled", func(t *testing.T) {
		s := newStore(t, gradient.StoreOptions{ClampOpacity: true}, scenarioStops()...)
		s = s.Update("a", gradient.FieldOpacity, 1.5)
		stop, _ := s.Stop("a")
		assert.Equal(t, 1.0, stop.Opacity)
	})

	t.Run("position rounds and clamps", func(t *testing.T) {
		s := base.Update("b", gradient.FieldPosition, "33.6")
		stop, _ := s.Stop("b")
		assert.Equal(t, 34, stop.Position)

		s = base.Update("b", gradient.FieldPosition, 250)
		stop, _ = s.Stop("b")
		assert.Equal(t, 100, stop.Position)
	})

	t.Run("moving past a neighbor reorders", func(t *testing.T) {
		s := base.Update("a", gradient.FieldPosition, 75)
		ids := []gradient.StopID{}
		for _, stop := range s.Stops() {
			ids = append(ids, stop.ID)
		}
		assert.Equal(t, []gradient.StopID{"b", "a", "c"}, ids)
	})

	t.Run("deferred sort keeps order until settled", func(t *testing.T) {
		s := newStore(t, gradient.StoreOptions{DeferSort: true}, scenarioStops()...)
		s = s.Update("a", gradient.FieldPosition, 75)
		assert.Equal(t, []int{75, 50, 100}, positions(s))

		// compiled output is still ordered
		assert.Contains(t, s.CSS(), "50%, rgba(106, 17, 203, 1) 75%")

		s = s.Settle()
		assert.Equal(t, []int{50, 75, 100}, positions(s))
	})

	t.Run("no-ops", func(t *testing.T) {
		assert.Equal(t, base.Stops(), base.Update("missing", gradient.FieldColor, "#fff").Stops())
		assert.Equal(t, base.Stops(), base.Update("a", gradient.Field("id"), "z").Stops())
		assert.Equal(t, base.Stops(), base.Update("a", gradient.FieldOpacity, "abc").Stops())
		assert.Equal(t, base.Stops(), base.Update("a", gradient.FieldPosition, struct{}{}).Stops())
		assert.Equal(t, base.Stops(), base.Update("b", gradient.FieldColor, nil).Stops())
		assert.Equal(t, base.Stops(), base.Update("b", gradient.FieldOpacity, nil).Stops())
	})

	t.Run("negative zero opacity prints as zero", func(t *testing.T) {
		s := base.Update("b", gradient.FieldOpacity, "-0")
		stop, _ := s.Stop("b")
		assert.False(t, math.Signbit(stop.Opacity))
		assert.Contains(t, s.CSS(), "rgba(37, 117, 252, 0) 50%")
	})

	t.Run("receiver is not modified", func(t *testing.T) {
		before := base.Stops()
		_ = base.Update("a", gradient.FieldColor, "#000")
		assert.Equal(t, before, base.Stops())
	})
}

func TestStoreConfig(t *testing.T) {
	s := gradient.DefaultStore(gradient.StoreOptions{})
	s = s.SetConfig(gradient.Config{Type: gradient.Radial, Shape: gradient.Ellipse, Angle: 900, CenterX: 120, CenterY: 30})

	cfg := s.Config()
	assert.Equal(t, gradient.Radial, cfg.Type)
	assert.Equal(t, 360, cfg.Angle)
	assert.Equal(t, 100, cfg.CenterX)
	assert.Contains(t, s.CSS(), "radial-gradient(ellipse at 100% 30%")
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, gradient.DefaultConfig().Validate())

	cfg := gradient.DefaultConfig()
	cfg.Type = "conic"
	require.ErrorIs(t, cfg.Validate(), gradient.ErrUnknownType)

	cfg = gradient.DefaultConfig()
	cfg.Shape = ""
	require.NoError(t, cfg.Validate(), "shape is ignored for linear gradients")

	cfg.Type = gradient.Radial
	cfg.Shape = "square"
	require.ErrorIs(t, cfg.Validate(), gradient.ErrUnknownShape)

	cfg.Shape = gradient.Circle
	cfg.CenterY = 101
	require.ErrorIs(t, cfg.Validate(), gradient.ErrOutOfRange)

	cfg = gradient.DefaultConfig()
	cfg.Angle = 361
	require.ErrorIs(t, cfg.Validate(), gradient.ErrOutOfRange)

	_, err := gradient.ParseField("id")
	require.ErrorIs(t, err, gradient.ErrUnknownField)
}

func TestConfigJSON_MissingFieldsDefault(t *testing.T) {
	var cfg gradient.Config
	require.NoError(t, json.Unmarshal([]byte(`{"type":"linear","angle":45}`), &cfg))

	want := gradient.DefaultConfig()
	want.Angle = 45
	assert.Equal(t, want, cfg)
	require.NoError(t, cfg.Validate())

	require.NoError(t, json.Unmarshal([]byte(`{"type":"radial","centerX":10}`), &cfg))
	assert.Equal(t, gradient.Circle, cfg.Shape)
	assert.Equal(t, 10, cfg.CenterX)
	assert.Equal(t, 50, cfg.CenterY)
}

func TestStoreJSON(t *testing.T) {
	s := newStore(t, gradient.StoreOptions{}, scenarioStops()...)

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var st gradient.State
	require.NoError(t, json.Unmarshal(data, &st))
	assert.Equal(t, s.State(), st)

	back := gradient.FromState(st, gradient.StoreOptions{})
	assert.Equal(t, s.CSS(), back.CSS())
}
