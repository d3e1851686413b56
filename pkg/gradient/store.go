package gradient

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const (
	// placeholderLight is the color given to a new stop unless the last
	// stop already uses it.
	placeholderLight = "#ffffff"
	placeholderDark  = "#000000"
	// emptyLastColor stands in for the last color of an empty collection.
	emptyLastColor = "#cccccc"
)

// StoreOptions tune store behavior. The zero value re-sorts on every update
// and passes opacity through unchanged.
type StoreOptions struct {
	// DeferSort keeps the stop order stable across Update calls until
	// Settle is called, so a dragged stop does not reorder the controls
	// under the pointer.
	DeferSort bool
	// ClampOpacity limits opacity writes to [0,1].
	ClampOpacity bool
	// NewID generates stop identifiers. Defaults to random UUIDs.
	NewID func() StopID
}

// State is the serializable form of a Store.
type State struct {
	Stops  []ColorStop `json:"stops"`
	Config Config      `json:"config"`
}

// Store owns the color stops and the gradient configuration. It is a value:
// every mutating method returns a new Store and leaves the receiver as is.
type Store struct {
	stops  []ColorStop
	config Config
	opts   StoreOptions
}

// NewStore builds a store from stops and cfg. Positions are clamped, the
// config is normalized, and missing or duplicate IDs are replaced.
func NewStore(stops []ColorStop, cfg Config, opts StoreOptions) Store {
	if opts.NewID == nil {
		opts.NewID = newUUID
	}

	s := Store{
		stops:  make([]ColorStop, 0, len(stops)),
		config: cfg.Normalize(),
		opts:   opts,
	}

	seen := make(map[StopID]struct{}, len(stops))
	for _, stop := range stops {
		if _, dup := seen[stop.ID]; dup || stop.ID == "" {
			stop.ID = s.opts.NewID()
		}
		seen[stop.ID] = struct{}{}

		stop.Position = PositionRange.Clamp(stop.Position)
		if opts.ClampOpacity {
			stop.Opacity = OpacityRange.Clamp(stop.Opacity)
		}
		s.stops = append(s.stops, stop)
	}

	s.stops = SortedStops(s.stops)

	return s
}

// DefaultStore returns the starter gradient.
func DefaultStore(opts StoreOptions) Store {
	return NewStore(DefaultStops(), DefaultConfig(), opts)
}

// FromState rebuilds a store from its serialized form.
func FromState(st State, opts StoreOptions) Store {
	return NewStore(st.Stops, st.Config, opts)
}

// State returns a copy of the store contents.
func (s Store) State() State {
	return State{Stops: s.Stops(), Config: s.config}
}

// Stops returns a copy of the stops in collection order.
func (s Store) Stops() []ColorStop {
	return slices.Clone(s.stops)
}

// Len is the number of stops.
func (s Store) Len() int {
	return len(s.stops)
}

// Stop looks up a stop by id.
func (s Store) Stop(id StopID) (ColorStop, bool) {
	i := s.index(id)
	if i < 0 {
		return ColorStop{}, false
	}

	return s.stops[i], true
}

// Config returns the gradient configuration.
func (s Store) Config() Config {
	return s.config
}

// Options returns the options the store was built with.
func (s Store) Options() StoreOptions {
	return s.opts
}

// SetConfig replaces the configuration wholesale.
func (s Store) SetConfig(cfg Config) Store {
	s.config = cfg.Normalize()
	return s
}

// Add inserts a stop at the midpoint of the largest gap and returns its id.
// The new stop is opaque and white, or black when the last stop is white.
func (s Store) Add() (Store, StopID) {
	positions := make([]int, len(s.stops))
	for i, stop := range s.stops {
		positions[i] = stop.Position
	}
	slices.Sort(positions)

	lastColor := emptyLastColor
	if len(s.stops) > 0 {
		lastColor = s.stops[len(s.stops)-1].Color
	}

	color := placeholderLight
	if strings.EqualFold(lastColor, placeholderLight) {
		color = placeholderDark
	}

	stop := ColorStop{
		ID:       s.newID(),
		Color:    color,
		Opacity:  1,
		Position: InsertPosition(positions),
	}

	s.stops = SortedStops(append(slices.Clone(s.stops), stop))

	return s, stop.ID
}

// Remove deletes the stop with the given id. Removing the last remaining
// stop or an unknown id does nothing.
func (s Store) Remove(id StopID) Store {
	if len(s.stops) <= 1 {
		return s
	}

	i := s.index(id)
	if i < 0 {
		return s
	}

	s.stops = slices.Delete(slices.Clone(s.stops), i, i+1)

	return s
}

// Update sets one field of the stop with the given id. value is a string or
// a number. Opacity and position are coerced to numbers; position is then
// rounded and clamped. Unknown ids, unknown fields, nil values and values
// that do not coerce leave the store unchanged.
//
// The stops are re-sorted by position afterwards, so moving a stop past a
// neighbor reorders the collection. With DeferSort the order is kept until
// Settle.
func (s Store) Update(id StopID, field Field, value any) Store {
	i := s.index(id)
	if i < 0 {
		return s
	}

	stop := s.stops[i]

	switch field {
	case FieldColor:
		color, ok := colorValue(value)
		if !ok {
			return s
		}
		stop.Color = color
	case FieldOpacity:
		n, ok := toNumber(value)
		if !ok {
			return s
		}
		if s.opts.ClampOpacity {
			n = OpacityRange.Clamp(n)
		}
		stop.Opacity = n
	case FieldPosition:
		n, ok := toNumber(value)
		if !ok {
			return s
		}
		stop.Position = PositionRange.Clamp(int(math.Round(n)))
	default:
		return s
	}

	stops := slices.Clone(s.stops)
	stops[i] = stop

	if s.opts.DeferSort {
		s.stops = stops
	} else {
		s.stops = SortedStops(stops)
	}

	return s
}

// Settle sorts the stops by position. It completes a drag when DeferSort
// is enabled and is a no-op otherwise.
func (s Store) Settle() Store {
	s.stops = SortedStops(s.stops)
	return s
}

// CSS compiles the main gradient.
func (s Store) CSS() string {
	return Compile(s.stops, s.config)
}

// StopsPreviewCSS compiles the left to right stops strip.
func (s Store) StopsPreviewCSS() string {
	return CompileStopsOnly(s.stops)
}

// Declaration is the "background: ...;" text for the main gradient.
func (s Store) Declaration() string {
	return Declaration(s.CSS())
}

// MarshalJSON encodes the store as its State.
func (s Store) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.State())
}

func (s Store) index(id StopID) int {
	return slices.IndexFunc(s.stops, func(stop ColorStop) bool {
		return stop.ID == id
	})
}

// colorValue stores strings as given and other values in their printed
// form. A nil value is rejected.
func colorValue(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	default:
		return fmt.Sprint(v), true
	}
}

// toNumber coerces form input to a float. Empty strings are zero.
func toNumber(value any) (float64, bool) {
	var n float64

	switch v := value.(type) {
	case float64:
		n = v
	case float32:
		n = float64(v)
	case int:
		n = float64(v)
	case int64:
		n = float64(v)
	case int32:
		n = float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		n = f
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, true
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, false
		}
		n = f
	default:
		return 0, false
	}

	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}

	// "-0" is stored as plain zero
	if n == 0 {
		n = 0
	}

	return n, true
}

func (s Store) newID() StopID {
	if s.opts.NewID == nil {
		return newUUID()
	}

	return s.opts.NewID()
}

func newUUID() StopID {
	return StopID(uuid.NewString())
}
