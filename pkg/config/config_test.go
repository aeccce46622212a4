package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	s := Default()
	if s.Sensitivity != 0.5 {
		t.Errorf("default sensitivity = %v, want 0.5", s.Sensitivity)
	}
	if s.Sheet != "Hoja1" {
		t.Errorf("default sheet = %q, want Hoja1", s.Sheet)
	}
	if s.MonthColumn != "Mes" || s.ValueColumn != "Normalidad" {
		t.Errorf("default columns = %q/%q", s.MonthColumn, s.ValueColumn)
	}
	if s.OutputFile != "Normalidad_01.png" {
		t.Errorf("default output = %q", s.OutputFile)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("default settings invalid: %v", err)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := "sensitivity: 0.8\noutput_file: salida.png\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}
	if s.Sensitivity != 0.8 {
		t.Errorf("sensitivity = %v, want 0.8", s.Sensitivity)
	}
	if s.OutputFile != "salida.png" {
		t.Errorf("output file = %q, want salida.png", s.OutputFile)
	}
	// Untouched keys keep their defaults.
	if s.Sheet != "Hoja1" {
		t.Errorf("sheet = %q, want Hoja1", s.Sheet)
	}
}

func TestLoadEmptyFilenameReturnsDefaults(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): unexpected error: %v", err)
	}
	if *s != *Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", s)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of missing file: expected error")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("sensitivity: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load with negative sensitivity: expected error")
	}
}

func TestApplyEnv(t *testing.T) {
	s := Default()
	t.Setenv(EnvSensitivity, "0.25")
	if err := s.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv: unexpected error: %v", err)
	}
	if s.Sensitivity != 0.25 {
		t.Errorf("sensitivity = %v, want 0.25", s.Sensitivity)
	}

	t.Setenv(EnvSensitivity, "not-a-number")
	if err := s.ApplyEnv(); err == nil {
		t.Error("ApplyEnv with garbage value: expected error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"negative sensitivity", func(s *Settings) { s.Sensitivity = -0.1 }},
		{"empty sheet", func(s *Settings) { s.Sheet = "" }},
		{"empty month column", func(s *Settings) { s.MonthColumn = "" }},
		{"empty value column", func(s *Settings) { s.ValueColumn = "" }},
		{"empty output", func(s *Settings) { s.OutputFile = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(s)
			if err := s.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
