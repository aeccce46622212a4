// Package chart renders the monthly normalidad series with its segment
// trend classification to a PNG image.
package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/UltimoSamurai123/Normalidad-Regresion/pkg/series"
	"github.com/UltimoSamurai123/Normalidad-Regresion/pkg/trend"
)

// segmentColors are the background band colors for Q1, Q2, Q3.
var segmentColors = []color.NRGBA{
	{R: 0x00, G: 0x33, B: 0xA0, A: 0x4D},
	{R: 0xFF, G: 0x6F, B: 0x00, A: 0x4D},
	{R: 0x00, G: 0x7E, B: 0x33, A: 0x4D},
}

const smoothSamples = 300

// Renderer writes the analysis chart to OutputFile, overwriting any
// previous run's image.
type Renderer struct {
	OutputFile string
	Title      string
	Goal       float64
}

// Render plots the observations, the smoothed monthly curve, per-segment
// background bands and fitted trend lines, mean annotations, and a legend
// carrying the trend label of each segment, then saves the image.
func (r *Renderer) Render(s series.Series, report *trend.Report) error {
	n := s.Len()
	values := s.Values()

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s    (Meta de normalidad: %.0f%%)", r.Title, r.Goal)
	p.Y.Label.Text = "% Normalidad"
	p.NominalX(s.Months()...)

	// Pad the vertical range so bands and labels clear the data.
	margin := (s.Max() - s.Min()) * 0.2
	if margin < 1 {
		margin = 1
	}
	p.Y.Min = s.Min() - margin
	p.Y.Max = s.Max() + margin
	p.X.Min = -0.5
	p.X.Max = float64(n) - 0.5

	if err := r.addSegments(p, values, report); err != nil {
		return fmt.Errorf("chart render: %w", err)
	}
	if err := r.addSeries(p, values); err != nil {
		return fmt.Errorf("chart render: %w", err)
	}
	if err := r.addGlobalMean(p, s.Mean(), n); err != nil {
		return fmt.Errorf("chart render: %w", err)
	}
	if err := r.addValueLabels(p, values); err != nil {
		return fmt.Errorf("chart render: %w", err)
	}

	p.Legend.Top = true
	p.Legend.Left = false

	if err := p.Save(14*vg.Inch, 6*vg.Inch, r.OutputFile); err != nil {
		return fmt.Errorf("writing chart to %s: %w", r.OutputFile, err)
	}
	return nil
}

// addSeries draws the monthly observations as black markers under a
// cubic-spline smoothed curve.
func (r *Renderer) addSeries(p *plot.Plot, values []float64) error {
	pts := make(plotter.XYs, len(values))
	for i, v := range values {
		pts[i].X = float64(i)
		pts[i].Y = v
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	scatter.GlyphStyle = draw.GlyphStyle{
		Color:  color.Black,
		Radius: vg.Points(3),
		Shape:  draw.BoxGlyph{},
	}

	smooth, err := smoothedLine(values)
	if err != nil {
		return err
	}
	smooth.LineStyle.Width = vg.Points(1.8)
	smooth.LineStyle.Color = color.Black

	p.Add(scatter, smooth)
	p.Legend.Add("Normalidad mensual", scatter)
	return nil
}

// smoothedLine fits a natural cubic spline through the points and samples
// it densely, mirroring the smoothed overlay of the reference report.
func smoothedLine(values []float64) (*plotter.Line, error) {
	xs := make([]float64, len(values))
	for i := range xs {
		xs[i] = float64(i)
	}

	var spline interp.NaturalCubic
	if err := spline.Fit(xs, values); err != nil {
		return nil, err
	}

	pts := make(plotter.XYs, smoothSamples)
	span := xs[len(xs)-1] - xs[0]
	for i := range pts {
		x := xs[0] + span*float64(i)/float64(smoothSamples-1)
		pts[i].X = x
		pts[i].Y = spline.Predict(x)
	}
	return plotter.NewLine(pts)
}

// addSegments draws each segment's background band, fitted trend line, and
// mean annotation, and registers its trend label in the legend.
func (r *Renderer) addSegments(p *plot.Plot, values []float64, report *trend.Report) error {
	for i, fit := range report.Segments {
		band, err := segmentBand(fit.Segment, p.Y.Min, p.Y.Max, segmentColors[i%len(segmentColors)])
		if err != nil {
			return err
		}
		p.Add(band)

		line, err := fittedLine(fit)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = opaque(segmentColors[i%len(segmentColors)])
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("%s – %s", fit.Name, directionLabel(fit.Direction)), line)

		label, err := meanLabel(fit, values, p.Y.Max)
		if err != nil {
			return err
		}
		p.Add(label)
	}
	return nil
}

// segmentBand builds the translucent rectangle spanning the segment's
// months across the full vertical range.
func segmentBand(seg trend.Segment, yMin, yMax float64, c color.NRGBA) (*plotter.Polygon, error) {
	corners := plotter.XYs{
		{X: float64(seg.Start) - 0.5, Y: yMin},
		{X: float64(seg.End) - 0.5, Y: yMin},
		{X: float64(seg.End) - 0.5, Y: yMax},
		{X: float64(seg.Start) - 0.5, Y: yMax},
	}
	band, err := plotter.NewPolygon(corners)
	if err != nil {
		return nil, err
	}
	band.Color = c
	band.LineStyle.Color = color.Transparent
	return band, nil
}

// fittedLine draws the least-squares line of the segment over its own
// months, converting the fit's local x back to series coordinates.
func fittedLine(fit trend.SegmentFit) (*plotter.Line, error) {
	last := float64(fit.Segment.Len() - 1)
	pts := plotter.XYs{
		{X: float64(fit.Segment.Start), Y: fit.Intercept},
		{X: float64(fit.Segment.Start) + last, Y: fit.Intercept + fit.Slope*last},
	}
	return plotter.NewLine(pts)
}

// meanLabel places the segment's mean normalidad above the band's data.
func meanLabel(fit trend.SegmentFit, values []float64, yMax float64) (*plotter.Labels, error) {
	x := (float64(fit.Segment.Start) + float64(fit.Segment.End-1)) / 2

	high := values[fit.Segment.Start]
	for _, v := range values[fit.Segment.Start:fit.Segment.End] {
		if v > high {
			high = v
		}
	}
	y := high + (yMax-high)*0.4

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: x, Y: y}},
		Labels: []string{fmt.Sprintf("Promedio Normalidad: %.1f%%", fit.Mean)},
	})
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Font.Size = vg.Points(10)
	}
	return labels, nil
}

// addGlobalMean draws the dashed horizontal rule at the series mean.
func (r *Renderer) addGlobalMean(p *plot.Plot, mean float64, n int) error {
	rule, err := plotter.NewLine(plotter.XYs{
		{X: -0.5, Y: mean},
		{X: float64(n) - 0.5, Y: mean},
	})
	if err != nil {
		return err
	}
	rule.LineStyle.Color = color.Gray{Y: 0x80}
	rule.LineStyle.Width = vg.Points(1.5)
	rule.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}

	p.Add(rule)
	p.Legend.Add(fmt.Sprintf("Promedio global: %.1f%%", mean), rule)
	return nil
}

// addValueLabels prints each month's value just above its marker.
func (r *Renderer) addValueLabels(p *plot.Plot, values []float64) error {
	xys := make(plotter.XYs, len(values))
	texts := make([]string, len(values))
	for i, v := range values {
		xys[i].X = float64(i)
		xys[i].Y = v + 0.4
		texts[i] = fmt.Sprintf("%.1f %%", v)
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Font.Size = vg.Points(8.5)
	}
	p.Add(labels)
	return nil
}

// opaque strips the alpha used by the background bands.
func opaque(c color.NRGBA) color.NRGBA {
	c.A = 0xFF
	return c
}

// directionLabel renders a trend direction the way the report legend
// spells it.
func directionLabel(d trend.Direction) string {
	switch d {
	case trend.Increasing:
		return "Tendencia creciente"
	case trend.Decreasing:
		return "Tendencia decreciente"
	default:
		return "Tendencia estable"
	}
}
