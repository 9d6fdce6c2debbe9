package optimum

import (
	"fmt"
	"testing"

	"github.com/njnx/polar-plant-eunjin-dashboard/internal/dataset"
)

// mergedFixture builds a merged-style frame with one variable column and the
// outcome column, one row per (value, outcome) pair.
func mergedFixture(t *testing.T, variable string, pairs [][2]float64) *dataset.Frame {
	t.Helper()
	f := dataset.NewFrame([]string{variable, "생중량(g)"})
	for _, p := range pairs {
		if err := f.AppendRow([]string{
			fmt.Sprintf("%g", p[0]),
			fmt.Sprintf("%g", p[1]),
		}); err != nil {
			t.Fatal(err)
		}
	}
	return f
}

func TestExtractProfileKnownOptimum(t *testing.T) {
	// EC values {1,2,4,8} with mean fresh weights {1.2, 3.4, 2.1, 0.9}.
	f := mergedFixture(t, "ec", [][2]float64{
		{1.0, 1.2},
		{2.0, 3.4},
		{4.0, 2.1},
		{8.0, 0.9},
	})

	p, err := ExtractProfile(f, "ec", "생중량(g)")
	if err != nil {
		t.Fatal(err)
	}
	best := p.Groups[p.Best]
	if best.Value != 2.0 || best.Mean != 3.4 {
		t.Errorf("optimum = (%v, %v), want (2.0, 3.4)", best.Value, best.Mean)
	}
}

func TestExtractProfileTieBreaksToLowestValue(t *testing.T) {
	f := mergedFixture(t, "ph", [][2]float64{
		{6.0, 3.0},
		{7.0, 3.0},
		{8.0, 1.0},
	})

	p, err := ExtractProfile(f, "ph", "생중량(g)")
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Groups[p.Best].Value; got != 6.0 {
		t.Errorf("tied optimum = %v, want lowest value 6.0", got)
	}
}

func TestExtractProfileSingleGroup(t *testing.T) {
	f := mergedFixture(t, "humidity", [][2]float64{
		{65.0, 10.0},
		{65.0, 12.0},
	})

	p, err := ExtractProfile(f, "humidity", "생중량(g)")
	if err != nil {
		t.Fatal(err)
	}
	best := p.Groups[p.Best]
	if best.Value != 65.0 {
		t.Errorf("single-group optimum = %v, want 65.0", best.Value)
	}
	if best.Mean != 11.0 {
		t.Errorf("single-group mean = %v, want 11.0", best.Mean)
	}
	if best.Count != 2 {
		t.Errorf("single-group count = %d, want 2", best.Count)
	}
}

func TestExtractOneConditionPerVariable(t *testing.T) {
	f := dataset.NewFrame([]string{"temperature", "humidity", "ph", "ec", "생중량(g)"})
	rows := [][]string{
		{"20", "60", "6.5", "1.0", "8.0"},
		{"22", "65", "7.0", "2.0", "12.0"},
		{"20", "60", "6.5", "1.0", "10.0"},
	}
	for _, r := range rows {
		if err := f.AppendRow(r); err != nil {
			t.Fatal(err)
		}
	}

	variables := []string{"temperature", "humidity", "ph", "ec"}
	conditions, err := Extract(f, variables, "생중량(g)")
	if err != nil {
		t.Fatal(err)
	}
	if len(conditions) != 4 {
		t.Fatalf("got %d conditions, want 4", len(conditions))
	}
	for i, c := range conditions {
		if c.Variable != variables[i] {
			t.Errorf("condition[%d].Variable = %q, want %q", i, c.Variable, variables[i])
		}
		// Row {22,65,7.0,2.0} carries the single best outcome 12.0.
		if c.MeanOutcome != 12.0 {
			t.Errorf("condition[%d].MeanOutcome = %v, want 12.0", i, c.MeanOutcome)
		}
	}
}

func TestExtractMissingVariable(t *testing.T) {
	f := mergedFixture(t, "ec", [][2]float64{{1.0, 1.0}})
	if _, err := Extract(f, []string{"temperature"}, "생중량(g)"); err == nil {
		t.Error("expected error for missing variable column")
	}
}
