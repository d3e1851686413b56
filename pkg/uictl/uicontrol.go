// Package uictl provides bounded numeric controls shared by the editor
// surfaces.
package uictl

import "golang.org/x/exp/constraints"

type Number interface {
	constraints.Integer | constraints.Float
}

// Clamp limits v to [lo, hi].
func Clamp[N Number](v, lo, hi N) N {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Range is an inclusive numeric interval with an adjustment step, the model
// behind a slider.
type Range[N Number] struct {
	Min  N
	Max  N
	Step N
}

// Clamp limits v to the range.
func (r Range[N]) Clamp(v N) N {
	return Clamp(v, r.Min, r.Max)
}

// Contains reports whether v lies inside the range.
func (r Range[N]) Contains(v N) bool {
	return v >= r.Min && v <= r.Max
}

// Nudge moves v by steps increments of Step and clamps the result.
// Negative steps move down.
func (r Range[N]) Nudge(v N, steps int) N {
	return r.Clamp(v + N(steps)*r.Step)
}
