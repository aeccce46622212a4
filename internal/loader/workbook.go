// Package loader locates the input workbook and reads the monthly indicator
// table out of it.
package loader

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/UltimoSamurai123/Normalidad-Regresion/pkg/series"
)

// Source produces the validated indicator series. The analysis pipeline
// depends on this interface rather than on the filesystem, so the core can
// be exercised with synthetic series in tests.
type Source interface {
	Load() (series.Series, error)
}

// WorkbookSource reads the series from a named sheet of an .xlsx workbook.
// Sheet and column names are matched case-sensitively, following the
// reference report layout.
type WorkbookSource struct {
	Path        string
	Sheet       string
	MonthColumn string
	ValueColumn string
}

// Load opens the workbook and reads (month, value) rows until the first
// blank month cell. Values are rounded to one decimal, as the reference
// report displays them.
func (w *WorkbookSource) Load() (series.Series, error) {
	f, err := excelize.OpenFile(w.Path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", w.Path, err)
	}
	defer f.Close()

	if !hasSheet(f, w.Sheet) {
		return nil, &SchemaError{Path: w.Path, Reason: fmt.Sprintf("sheet %q not found", w.Sheet)}
	}

	rows, err := f.GetRows(w.Sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q of %s: %w", w.Sheet, w.Path, err)
	}
	if len(rows) == 0 {
		return nil, &SchemaError{Path: w.Path, Reason: fmt.Sprintf("sheet %q is empty", w.Sheet)}
	}

	monthIdx, valueIdx, err := w.columnIndices(rows[0])
	if err != nil {
		return nil, err
	}

	var s series.Series
	for i, row := range rows[1:] {
		month := cell(row, monthIdx)
		if month == "" {
			break
		}
		raw := cell(row, valueIdx)
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, &SchemaError{
				Path:   w.Path,
				Reason: fmt.Sprintf("row %d: column %q holds non-numeric value %q", i+2, w.ValueColumn, raw),
			}
		}
		s = append(s, series.Observation{
			Month: month,
			Value: math.Round(value*10) / 10,
		})
	}

	if err := s.Validate(); err != nil {
		return nil, &SchemaError{Path: w.Path, Reason: err.Error()}
	}
	return s, nil
}

// columnIndices locates the required headers in the first row.
func (w *WorkbookSource) columnIndices(header []string) (monthIdx, valueIdx int, err error) {
	monthIdx, valueIdx = -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case w.MonthColumn:
			monthIdx = i
		case w.ValueColumn:
			valueIdx = i
		}
	}

	var missing []string
	if monthIdx == -1 {
		missing = append(missing, w.MonthColumn)
	}
	if valueIdx == -1 {
		missing = append(missing, w.ValueColumn)
	}
	if len(missing) > 0 {
		return 0, 0, &SchemaError{
			Path:   w.Path,
			Reason: fmt.Sprintf("required columns missing: %s", strings.Join(missing, ", ")),
		}
	}
	return monthIdx, valueIdx, nil
}

func hasSheet(f *excelize.File, name string) bool {
	for _, sheet := range f.GetSheetList() {
		if sheet == name {
			return true
		}
	}
	return false
}

// cell returns the trimmed cell at idx, tolerating the short rows excelize
// produces when trailing cells are empty.
func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
