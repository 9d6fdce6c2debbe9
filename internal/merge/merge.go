// Package merge joins the per-school environment summaries onto the growth
// records. The join direction is per-individual growth rows × per-school
// mean environment: every growth row for a school is annotated with the mean
// of each environmental column over that school's readings.
package merge

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/njnx/polar-plant-eunjin-dashboard/internal/dataset"
	"github.com/njnx/polar-plant-eunjin-dashboard/internal/logging"
)

// SchoolColumn is the identifier column added to every merged row.
const SchoolColumn = "school"

// ErrNoOverlap is returned when no school appears in both source mappings.
var ErrNoOverlap = fmt.Errorf("no school present in both environment and growth data")

// Summary holds the per-school mean of each environmental column.
type Summary struct {
	School string
	Means  map[string]float64
}

// Summarize computes the mean of each environmental column over one school's
// readings.
func Summarize(school string, env *dataset.Frame) (Summary, error) {
	means := make(map[string]float64, len(dataset.EnvColumns))
	for _, col := range dataset.EnvColumns {
		m, err := env.Mean(col)
		if err != nil {
			return Summary{}, fmt.Errorf("school %s: %w", school, err)
		}
		means[col] = m
	}
	return Summary{School: school, Means: means}, nil
}

// Combine joins growth rows with environment summaries by school. Schools
// missing from either side are dropped silently; asymmetry between the two
// datasets is expected, not an error. Only a join with no overlap at all
// fails, because no output can be produced from it.
//
// Growth schools are visited in sorted order so merged row order is
// deterministic across runs.
func Combine(env, growth map[string]*dataset.Frame) (*dataset.Frame, error) {
	schools := make([]string, 0, len(growth))
	for s := range growth {
		schools = append(schools, s)
	}
	sort.Strings(schools)

	var merged *dataset.Frame
	joined := 0
	for _, school := range schools {
		edf, ok := env[school]
		if !ok {
			logging.Merge("school %s has growth data but no environment data, dropped", school)
			continue
		}

		summary, err := Summarize(school, edf)
		if err != nil {
			return nil, err
		}

		part := growth[school].WithConstant(SchoolColumn, school)
		for _, col := range dataset.EnvColumns {
			part = part.WithConstant(col, formatFloat(summary.Means[col]))
		}

		if merged == nil {
			merged = part
		} else if err := merged.Append(part); err != nil {
			return nil, fmt.Errorf("school %s: growth sheets have inconsistent columns: %w", school, err)
		}
		joined++
	}

	if merged == nil {
		return nil, ErrNoOverlap
	}
	logging.Merge("combined %d school(s), %d rows", joined, merged.Len())
	return merged, nil
}

// formatFloat renders a mean without losing precision; merged cells are
// re-parsed downstream, so the round-trip must be exact.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
