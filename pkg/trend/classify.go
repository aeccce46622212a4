package trend

import "math"

// Direction is the trend label assigned to a segment.
type Direction int

const (
	Stable Direction = iota
	Increasing
	Decreasing
)

// String returns the lower-case English name of the direction.
func (d Direction) String() string {
	switch d {
	case Increasing:
		return "increasing"
	case Decreasing:
		return "decreasing"
	default:
		return "stable"
	}
}

// Classify maps a segment slope and the shared threshold to a direction.
// The comparison on the stable branch is non-strict, so a slope landing
// exactly on the threshold boundary is stable.
func Classify(slope, threshold float64) Direction {
	switch {
	case math.Abs(slope) <= threshold:
		return Stable
	case slope > threshold:
		return Increasing
	default:
		return Decreasing
	}
}
