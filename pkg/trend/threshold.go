package trend

import "gonum.org/v1/gonum/stat"

// DefaultSensitivity is the default multiplier applied to the slope
// dispersion when computing the stability threshold. Lower values classify
// almost any change as a trend; higher values tolerate larger swings before
// leaving the stable label.
const DefaultSensitivity = 0.5

// Threshold computes the minimum absolute slope magnitude a segment must
// exceed to be considered trending: k times the sample standard deviation
// (N-1 divisor) of the segment slopes. When all slopes are identical the
// threshold is zero, so any nonzero slope classifies as trending; that is
// deliberate, not an error.
func Threshold(slopes []float64, k float64) float64 {
	if len(slopes) < 2 {
		return 0
	}
	return k * stat.StdDev(slopes, nil)
}
