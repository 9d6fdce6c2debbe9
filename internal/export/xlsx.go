// Package export writes the user-facing artifacts: the optimal-condition
// summary as a spreadsheet, the merged table as CSV or spreadsheet, and the
// per-variable mean curves as PNG charts.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/njnx/polar-plant-eunjin-dashboard/internal/dataset"
	"github.com/njnx/polar-plant-eunjin-dashboard/internal/logging"
	"github.com/njnx/polar-plant-eunjin-dashboard/internal/optimum"
)

// OptimalSheet is the sheet name of the optimal-condition summary workbook.
const OptimalSheet = "최적환경조건"

// Headers of the optimal-condition summary, matching the downloadable table
// the dashboard shows.
var optimalHeaders = []string{"환경 변수", "최적 값", "최대 평균 생중량(g)"}

// WriteOptimalXLSX writes the optimal-condition summary as an XLSX workbook.
// Values are rounded for presentation: the optimal value to two decimals,
// the mean outcome to three.
func WriteOptimalXLSX(w io.Writer, conditions []optimum.Condition) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", OptimalSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	for i, h := range optimalHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(OptimalSheet, cell, h); err != nil {
			return err
		}
	}
	for i, c := range conditions {
		row := i + 2
		if err := f.SetCellValue(OptimalSheet, fmt.Sprintf("A%d", row), c.Variable); err != nil {
			return err
		}
		if err := f.SetCellValue(OptimalSheet, fmt.Sprintf("B%d", row), round(c.Value, 2)); err != nil {
			return err
		}
		if err := f.SetCellValue(OptimalSheet, fmt.Sprintf("C%d", row), round(c.MeanOutcome, 3)); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	logging.Export("optimal conditions: %d row(s) written", len(conditions))
	return nil
}

// WriteFrameXLSX writes any frame as a single-sheet workbook. Numeric cells
// stay as text, exactly as they appear in the table.
func WriteFrameXLSX(w io.Writer, sheet string, frame *dataset.Frame) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	for i, h := range frame.Columns() {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	for r := 0; r < frame.Len(); r++ {
		for c, v := range frame.Row(r) {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	logging.Export("frame export: sheet %s, %d row(s)", sheet, frame.Len())
	return nil
}

func round(v float64, places int) float64 {
	shift := 1.0
	for i := 0; i < places; i++ {
		shift *= 10
	}
	return float64(int64(v*shift+sign(v)*0.5)) / shift
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
