package trend

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// SegmentFit holds the regression and classification results for one
// segment.
type SegmentFit struct {
	Name      string // Q1, Q2, Q3
	Segment   Segment
	Slope     float64
	Intercept float64
	Mean      float64
	Direction Direction
}

// Report is the complete trend analysis of a series.
type Report struct {
	Segments    []SegmentFit
	Slopes      []float64
	Threshold   float64
	Sensitivity float64
}

// Analyze runs the full pipeline over the ordered indicator values: split
// into three segments, fit a line to each, derive the threshold from the
// slope dispersion, and classify every segment independently.
func Analyze(values []float64, k float64) (*Report, error) {
	segments, err := Split(len(values))
	if err != nil {
		return nil, err
	}

	report := &Report{
		Segments:    make([]SegmentFit, len(segments)),
		Slopes:      make([]float64, len(segments)),
		Sensitivity: k,
	}

	for i, seg := range segments {
		window := values[seg.Start:seg.End]
		slope, intercept, err := Fit(window)
		if err != nil {
			return nil, fmt.Errorf("segment Q%d: %w", i+1, err)
		}
		report.Segments[i] = SegmentFit{
			Name:      fmt.Sprintf("Q%d", i+1),
			Segment:   seg,
			Slope:     slope,
			Intercept: intercept,
			Mean:      stat.Mean(window, nil),
		}
		report.Slopes[i] = slope
	}

	report.Threshold = Threshold(report.Slopes, k)
	for i := range report.Segments {
		report.Segments[i].Direction = Classify(report.Segments[i].Slope, report.Threshold)
	}

	return report, nil
}
