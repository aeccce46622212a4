package trend

import "gonum.org/v1/gonum/stat"

// Fit performs an ordinary least-squares fit y = slope*x + intercept over a
// segment's values, with x being the local index 0..len-1. A single point
// has no defined slope, so segments shorter than two observations are
// rejected.
func Fit(values []float64) (slope, intercept float64, err error) {
	if len(values) < 2 {
		return 0, 0, &InsufficientDataError{What: "segment", Need: 2, Got: len(values)}
	}

	xs := make([]float64, len(values))
	for i := range xs {
		xs[i] = float64(i)
	}

	intercept, slope = stat.LinearRegression(xs, values, nil, false)
	return slope, intercept, nil
}
