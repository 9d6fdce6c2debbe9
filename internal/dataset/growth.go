package dataset

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/njnx/polar-plant-eunjin-dashboard/internal/locate"
	"github.com/njnx/polar-plant-eunjin-dashboard/internal/logging"
)

// GrowthKeyword marks the single growth-results workbook. One sheet per
// school; sheet names are the school identifiers.
const GrowthKeyword = "생육결과데이터"

// OutcomeColumn is the primary growth outcome, fresh weight in grams. The
// column header is kept verbatim from the source workbook.
const OutcomeColumn = "생중량(g)"

// LoadGrowth locates the growth workbook in dir and parses each sheet into a
// frame keyed by school. A missing workbook is a fatal load error, not an
// empty mapping.
func LoadGrowth(dir string) (map[string]*Frame, error) {
	name, err := locate.Find(dir, GrowthKeyword)
	if err != nil {
		return nil, fmt.Errorf("growth results workbook: %w", err)
	}

	path := filepath.Join(dir, name)
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer wb.Close()

	growth := make(map[string]*Frame)
	for _, sheet := range wb.GetSheetList() {
		rows, err := wb.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("sheet %s: %w", sheet, err)
		}
		if len(rows) == 0 {
			continue
		}

		header := rows[0]
		frame := NewFrame(header)
		for i, row := range rows[1:] {
			// excelize trims trailing empty cells per row; pad back
			// to header arity so short rows still append.
			cells := make([]string, len(header))
			copy(cells, row)
			if err := frame.AppendRow(cells); err != nil {
				return nil, fmt.Errorf("sheet %s row %d: %w", sheet, i+2, err)
			}
		}

		school := locate.Canonical(sheet)
		growth[school] = frame
		logging.DatasetDebug("growth: school %s, %d individuals", school, frame.Len())
	}

	if len(growth) == 0 {
		return nil, fmt.Errorf("workbook %s contains no sheets with data", path)
	}
	logging.Dataset("growth: loaded %d school sheet(s) from %s", len(growth), name)
	return growth, nil
}
