// Package app wires the normalidad pipeline: workbook discovery, series
// loading, trend analysis, and chart rendering.
package app

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/UltimoSamurai123/Normalidad-Regresion/internal/chart"
	"github.com/UltimoSamurai123/Normalidad-Regresion/internal/loader"
	"github.com/UltimoSamurai123/Normalidad-Regresion/pkg/config"
	"github.com/UltimoSamurai123/Normalidad-Regresion/pkg/series"
	"github.com/UltimoSamurai123/Normalidad-Regresion/pkg/trend"
)

// Renderer writes the analysis chart artifact.
type Renderer interface {
	Render(series.Series, *trend.Report) error
}

// App represents the main application
type App struct {
	Settings *config.Settings
	// Source supplies the indicator series. When nil, Run discovers the
	// single workbook in Settings.InputDir.
	Source loader.Source
	// Renderer writes the chart. When nil, Run uses the PNG renderer
	// configured from Settings.
	Renderer Renderer

	logger *zap.SugaredLogger
}

// New creates a new application instance
func New(settings *config.Settings, logger *zap.SugaredLogger) *App {
	return &App{
		Settings: settings,
		logger:   logger,
	}
}

// Run executes the pipeline once, sequentially. The first error aborts the
// run; there are no retries, every failure is an input or configuration
// problem for the operator to fix.
func (a *App) Run(ctx context.Context) error {
	logger := a.logger.With("run_id", uuid.NewString())

	source := a.Source
	if source == nil {
		path, err := loader.Discover(a.Settings.InputDir)
		if err != nil {
			return err
		}
		logger.Infow("workbook discovered", "path", path)
		source = &loader.WorkbookSource{
			Path:        path,
			Sheet:       a.Settings.Sheet,
			MonthColumn: a.Settings.MonthColumn,
			ValueColumn: a.Settings.ValueColumn,
		}
	}

	s, err := source.Load()
	if err != nil {
		return err
	}
	logger.Infow("series loaded", "months", s.Len(), "mean", s.Mean())

	report, err := trend.Analyze(s.Values(), a.Settings.Sensitivity)
	if err != nil {
		return err
	}
	logger.Infow("stability threshold computed",
		"threshold", report.Threshold,
		"slopes", report.Slopes,
		"k", report.Sensitivity)
	for _, fit := range report.Segments {
		logger.Infow("segment classified",
			"segment", fit.Name,
			"months", fit.Segment.Len(),
			"slope", fit.Slope,
			"mean", fit.Mean,
			"trend", fit.Direction.String())
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	renderer := a.Renderer
	if renderer == nil {
		renderer = &chart.Renderer{
			OutputFile: a.Settings.OutputFile,
			Title:      a.Settings.Title,
			Goal:       a.Settings.Goal,
		}
	}
	if err := renderer.Render(s, report); err != nil {
		return err
	}
	logger.Infow("chart written", "path", a.Settings.OutputFile)

	return nil
}
