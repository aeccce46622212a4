// Package trend implements the segmented trend classification of a monthly
// indicator series: the series is partitioned into three near-equal
// contiguous segments, an ordinary least-squares line is fitted to each, and
// every segment is labeled stable, increasing, or decreasing against a
// threshold derived from the dispersion of the three slopes.
package trend

import "fmt"

// segmentCount is the fixed number of segments the series is split into.
const segmentCount = 3

// Segment is a contiguous index range [Start, End) into the series.
type Segment struct {
	Start int
	End   int
}

// Len returns the number of observations covered by the segment.
func (s Segment) Len() int {
	return s.End - s.Start
}

// InsufficientDataError reports a series or segment too short to analyze.
type InsufficientDataError struct {
	What string
	Need int
	Got  int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: %s needs at least %d points, got %d", e.What, e.Need, e.Got)
}

// Split partitions [0, n) into three contiguous segments whose lengths
// differ by at most one. The remainder of n/3 is distributed to the earliest
// segments, so the partition is deterministic for a given n.
func Split(n int) ([]Segment, error) {
	if n < segmentCount {
		return nil, &InsufficientDataError{What: "series", Need: segmentCount, Got: n}
	}

	base := n / segmentCount
	rem := n % segmentCount

	segments := make([]Segment, segmentCount)
	start := 0
	for i := range segments {
		length := base
		if i < rem {
			length++
		}
		segments[i] = Segment{Start: start, End: start + length}
		start += length
	}
	return segments, nil
}
