package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/njnx/polar-plant-eunjin-dashboard/internal/dataset"
	"github.com/njnx/polar-plant-eunjin-dashboard/internal/optimum"
	"github.com/njnx/polar-plant-eunjin-dashboard/internal/pipeline"
)

func TestWriteAll(t *testing.T) {
	merged := dataset.NewFrame([]string{"school", "ec", "생중량(g)"})
	require.NoError(t, merged.AppendRow([]string{"서울고", "2.0", "10.5"}))

	res := &pipeline.Result{
		Merged:     merged,
		Conditions: sampleConditions(),
		Profiles: []optimum.Profile{
			{
				Variable: "ec",
				Groups: []dataset.Group{
					{Value: 1.0, Mean: 1.2, Count: 2},
					{Value: 2.0, Mean: 3.4, Count: 2},
				},
				Best: 1,
			},
		},
		Outcome: "생중량(g)",
	}

	dir := filepath.Join(t.TempDir(), "export")
	paths, err := WriteAll(dir, res)
	require.NoError(t, err)
	require.Len(t, paths, 4) // optimal xlsx + merged csv + merged xlsx + one profile png

	for _, p := range paths {
		info, err := os.Stat(p)
		require.NoError(t, err)
		require.NotZero(t, info.Size(), "empty artifact %s", p)
	}
	require.FileExists(t, filepath.Join(dir, OptimalFilename))
	require.FileExists(t, filepath.Join(dir, MergedFilename))
	require.FileExists(t, filepath.Join(dir, MergedXLSXFilename))
	require.FileExists(t, filepath.Join(dir, "ec_profile.png"))
}
