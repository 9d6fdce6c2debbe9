package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/njnx/polar-plant-eunjin-dashboard/internal/pipeline"
)

// OptimalFilename is the summary workbook name shared with the schools.
const OptimalFilename = "최적환경조건_요약.xlsx"

// MergedFilename is the raw merged-table export.
const MergedFilename = "merged_data.csv"

// MergedXLSXFilename is the merged table as a workbook, for spreadsheet users.
const MergedXLSXFilename = "merged_data.xlsx"

// MergedSheet is the sheet name inside the merged-table workbook.
const MergedSheet = "merged"

// WriteAll writes every artifact for one analysis pass into dir, creating it
// if needed, and returns the paths written.
func WriteAll(dir string, res *pipeline.Result) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export directory: %w", err)
	}

	var written []string

	optPath := filepath.Join(dir, OptimalFilename)
	if err := writeFile(optPath, func(f *os.File) error {
		return WriteOptimalXLSX(f, res.Conditions)
	}); err != nil {
		return written, err
	}
	written = append(written, optPath)

	csvPath := filepath.Join(dir, MergedFilename)
	if err := writeFile(csvPath, func(f *os.File) error {
		return WriteFrameCSV(f, res.Merged)
	}); err != nil {
		return written, err
	}
	written = append(written, csvPath)

	xlsxPath := filepath.Join(dir, MergedXLSXFilename)
	if err := writeFile(xlsxPath, func(f *os.File) error {
		return WriteFrameXLSX(f, MergedSheet, res.Merged)
	}); err != nil {
		return written, err
	}
	written = append(written, xlsxPath)

	for _, p := range res.Profiles {
		pngPath := filepath.Join(dir, fmt.Sprintf("%s_profile.png", p.Variable))
		prof := p
		if err := writeFile(pngPath, func(f *os.File) error {
			return WriteProfilePNG(f, prof, res.Outcome)
		}); err != nil {
			return written, err
		}
		written = append(written, pngPath)
	}

	return written, nil
}

func writeFile(path string, fn func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
