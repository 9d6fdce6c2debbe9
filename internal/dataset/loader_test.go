package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"
)

// writeEnvCSV writes one environment CSV named <school>_환경데이터.csv in the
// given normalization form.
func writeEnvCSV(t *testing.T, dir, school string, form norm.Form, rows []string) {
	t.Helper()
	name := form.String(fmt.Sprintf("%s_환경데이터.csv", school))
	content := "timestamp,temperature,humidity,ph,ec\n"
	for _, r := range rows {
		content += r + "\n"
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

// writeGrowthWorkbook writes a 생육결과데이터 workbook with one sheet per school.
func writeGrowthWorkbook(t *testing.T, dir string, sheets map[string][][]interface{}) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	first := true
	for school, rows := range sheets {
		if first {
			require.NoError(t, f.SetSheetName("Sheet1", school))
			first = false
		} else {
			_, err := f.NewSheet(school)
			require.NoError(t, err)
		}
		for r, row := range rows {
			for c, v := range row {
				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				require.NoError(t, err)
				require.NoError(t, f.SetCellValue(school, cell, v))
			}
		}
	}
	require.NoError(t, f.SaveAs(filepath.Join(dir, "생육결과데이터.xlsx")))
}

func TestLoadEnvironment(t *testing.T) {
	dir := t.TempDir()
	writeEnvCSV(t, dir, "서울고", norm.NFC, []string{
		"2025-05-01,20.1,60.0,6.5,2.0",
		"2025-05-02,21.3,61.5,6.4,2.0",
	})
	// NFD on disk, the macOS case.
	writeEnvCSV(t, dir, "대전고", norm.NFD, []string{
		"2025-05-01,18.0,70.0,7.0,1.0",
	})
	// Unrelated CSV is ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.csv"), []byte("a,b\n1,2\n"), 0o644))

	env, err := LoadEnvironment(dir)
	require.NoError(t, err)
	require.Len(t, env, 2)

	// Keys are NFC regardless of on-disk form.
	require.Contains(t, env, norm.NFC.String("서울고"))
	require.Contains(t, env, norm.NFC.String("대전고"))

	seoul := env[norm.NFC.String("서울고")]
	require.Equal(t, 2, seoul.Len())
	mean, err := seoul.Mean("temperature")
	require.NoError(t, err)
	require.InDelta(t, 20.7, mean, 1e-9)
}

func TestLoadEnvironmentEmptyDirFails(t *testing.T) {
	_, err := LoadEnvironment(t.TempDir())
	require.Error(t, err)
}

func TestLoadGrowth(t *testing.T) {
	dir := t.TempDir()
	writeGrowthWorkbook(t, dir, map[string][][]interface{}{
		"서울고": {
			{"개체번호", "생중량(g)", "잎 수", "줄기 길이"},
			{1, 10.5, 8, 12.0},
			{2, 11.2, 9, 13.1},
		},
		"대전고": {
			{"개체번호", "생중량(g)", "잎 수", "줄기 길이"},
			{1, 9.8, 7, 11.0},
		},
	})

	growth, err := LoadGrowth(dir)
	require.NoError(t, err)
	require.Len(t, growth, 2)

	seoul := growth["서울고"]
	require.Equal(t, 2, seoul.Len())
	mean, err := seoul.Mean("생중량(g)")
	require.NoError(t, err)
	require.InDelta(t, 10.85, mean, 1e-9)
}

func TestLoadGrowthMissingWorkbook(t *testing.T) {
	dir := t.TempDir()
	writeEnvCSV(t, dir, "서울고", norm.NFC, []string{"2025-05-01,20,60,6.5,2.0"})

	_, err := LoadGrowth(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "생육결과데이터")
}

func TestCacheIdempotence(t *testing.T) {
	dir := t.TempDir()
	writeEnvCSV(t, dir, "서울고", norm.NFC, []string{"2025-05-01,20,60,6.5,2.0"})
	writeGrowthWorkbook(t, dir, map[string][][]interface{}{
		"서울고": {
			{"개체번호", "생중량(g)"},
			{1, 10.5},
		},
	})

	cache := NewCache()
	first, err := cache.Load(dir)
	require.NoError(t, err)
	second, err := cache.Load(dir)
	require.NoError(t, err)

	// Same snapshot object: nothing re-read, nothing dropped or duplicated.
	require.Same(t, first, second)
	require.Equal(t, 1, first.Environment["서울고"].Len())
	require.Equal(t, 1, first.Growth["서울고"].Len())

	// Files added after the first load are invisible until a new process.
	writeEnvCSV(t, dir, "대전고", norm.NFC, []string{"2025-05-01,18,70,7.0,1.0"})
	third, err := cache.Load(dir)
	require.NoError(t, err)
	require.Len(t, third.Environment, 1)
}
