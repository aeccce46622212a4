// Package series provides the monthly indicator sequence consumed by the
// trend analysis pipeline.
package series

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Observation is a single monthly reading of the indicator.
type Observation struct {
	Month string
	Value float64
}

// Series is a chronologically ordered sequence of observations.
type Series []Observation

// New builds a series from parallel month/value slices.
func New(months []string, values []float64) (Series, error) {
	if len(months) != len(values) {
		return nil, fmt.Errorf("months and values must have the same length (%d != %d)", len(months), len(values))
	}
	s := make(Series, len(months))
	for i := range months {
		s[i] = Observation{Month: months[i], Value: values[i]}
	}
	return s, nil
}

// Validate checks the series invariants: non-empty month labels, no
// duplicate labels, and percentage values within [0, 100].
func (s Series) Validate() error {
	seen := make(map[string]struct{}, len(s))
	for i, obs := range s {
		if obs.Month == "" {
			return fmt.Errorf("row %d: empty month label", i+1)
		}
		if _, ok := seen[obs.Month]; ok {
			return fmt.Errorf("duplicate month label %q", obs.Month)
		}
		seen[obs.Month] = struct{}{}
		if math.IsNaN(obs.Value) || obs.Value < 0 || obs.Value > 100 {
			return fmt.Errorf("month %q: value %v outside [0, 100]", obs.Month, obs.Value)
		}
	}
	return nil
}

// Len returns the number of observations.
func (s Series) Len() int {
	return len(s)
}

// Months returns the ordered month labels.
func (s Series) Months() []string {
	months := make([]string, len(s))
	for i, obs := range s {
		months[i] = obs.Month
	}
	return months
}

// Values returns the ordered indicator values.
func (s Series) Values() []float64 {
	values := make([]float64, len(s))
	for i, obs := range s {
		values[i] = obs.Value
	}
	return values
}

// Mean returns the arithmetic mean of the values.
func (s Series) Mean() float64 {
	if len(s) == 0 {
		return math.NaN()
	}
	return stat.Mean(s.Values(), nil)
}

// Min returns the smallest value in the series.
func (s Series) Min() float64 {
	if len(s) == 0 {
		return math.NaN()
	}
	min := s[0].Value
	for _, obs := range s[1:] {
		if obs.Value < min {
			min = obs.Value
		}
	}
	return min
}

// Max returns the largest value in the series.
func (s Series) Max() float64 {
	if len(s) == 0 {
		return math.NaN()
	}
	max := s[0].Value
	for _, obs := range s[1:] {
		if obs.Value > max {
			max = obs.Value
		}
	}
	return max
}
