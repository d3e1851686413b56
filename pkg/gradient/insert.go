package gradient

import (
	"math"

	"github.com/alkime/gradients/pkg/collections"
)

// DefaultInsertPosition is used when there are no stops yet.
const DefaultInsertPosition = 50

// InsertPosition picks where a new stop goes, given existing positions in
// ascending order.
//
// With no stops it returns 50. With one stop at p it returns the midpoint
// towards the farther end: (p+100)/2 when p < 50, p/2 otherwise. With more
// stops it returns the midpoint of the largest gap, where the gaps from 0
// to the first stop and from the last stop to 100 also count. The earliest
// gap wins ties. The result is rounded and clamped to [0,100].
func InsertPosition(sorted []int) int {
	var pos float64

	switch n := len(sorted); n {
	case 0:
		return DefaultInsertPosition
	case 1:
		p := float64(sorted[0])
		if p < 50 {
			pos = (p + 100) / 2
		} else {
			pos = p / 2
		}
	default:
		pos = largestGapMidpoint(sorted)
	}

	return PositionRange.Clamp(int(math.Round(pos)))
}

func largestGapMidpoint(sorted []int) float64 {
	first := float64(sorted[0])
	last := float64(sorted[len(sorted)-1])

	// Falls through to the end when every gap is empty.
	maxGap, mid := 0.0, float64(MaxPosition)

	if first > MinPosition {
		maxGap = first - MinPosition
		mid = first / 2
	}

	collections.Pairs(sorted, func(lo, hi int) {
		if gap := float64(hi - lo); gap > maxGap {
			maxGap = gap
			mid = float64(lo) + gap/2
		}
	})

	if tail := MaxPosition - last; tail > maxGap {
		mid = last + tail/2
	}

	return mid
}
