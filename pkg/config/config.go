// Package config holds the runtime settings for the normalidad trend
// analyzer and loads them from an optional YAML file with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"

	"github.com/UltimoSamurai123/Normalidad-Regresion/pkg/trend"
)

// EnvSensitivity is the environment variable that overrides the sensitivity
// coefficient k.
const EnvSensitivity = "NORMALIDAD_K"

// Settings is the complete configuration for one run.
type Settings struct {
	// InputDir is scanned for exactly one .xlsx workbook.
	InputDir string `yaml:"input_dir"`
	// Sheet is the workbook sheet holding the indicator table.
	Sheet string `yaml:"sheet"`
	// MonthColumn and ValueColumn are the required header names,
	// matched case-sensitively.
	MonthColumn string `yaml:"month_column"`
	ValueColumn string `yaml:"value_column"`
	// Sensitivity is the multiplier k applied to the slope dispersion
	// when computing the stability threshold.
	Sensitivity float64 `yaml:"sensitivity"`
	// OutputFile is the chart path, overwritten on every run.
	OutputFile string `yaml:"output_file"`
	// Goal is the target percentage annotated on the chart.
	Goal float64 `yaml:"goal"`
	// Title is the chart heading.
	Title string `yaml:"title"`
}

// Default returns the compiled-in settings, matching the reference report.
func Default() *Settings {
	return &Settings{
		InputDir:    ".",
		Sheet:       "Hoja1",
		MonthColumn: "Mes",
		ValueColumn: "Normalidad",
		Sensitivity: trend.DefaultSensitivity,
		OutputFile:  "Normalidad_01.png",
		Goal:        92.0,
		Title:       "Normalidad Nivel Nacional",
	}
}

// Load returns the default settings overlaid with the YAML file at filename.
// An empty filename yields the defaults unchanged.
func Load(filename string) (*Settings, error) {
	settings := Default()
	if filename == "" {
		return settings, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", filename, err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", filename, err)
	}
	return settings, nil
}

// ApplyEnv overlays settings from the process environment.
func (s *Settings) ApplyEnv() error {
	if raw, ok := os.LookupEnv(EnvSensitivity); ok {
		k, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("%s: invalid sensitivity %q: %w", EnvSensitivity, raw, err)
		}
		s.Sensitivity = k
	}
	return nil
}

// Validate rejects settings that cannot produce a meaningful run.
func (s *Settings) Validate() error {
	if s.Sensitivity < 0 {
		return fmt.Errorf("sensitivity must be non-negative, got %v", s.Sensitivity)
	}
	if s.Sheet == "" {
		return fmt.Errorf("sheet name must not be empty")
	}
	if s.MonthColumn == "" || s.ValueColumn == "" {
		return fmt.Errorf("month and value column names must not be empty")
	}
	if s.OutputFile == "" {
		return fmt.Errorf("output file must not be empty")
	}
	return nil
}
