// Package optimum extracts, for each environmental variable, the variable
// value whose group of merged rows has the highest mean fresh weight.
package optimum

import (
	"fmt"

	"github.com/njnx/polar-plant-eunjin-dashboard/internal/dataset"
	"github.com/njnx/polar-plant-eunjin-dashboard/internal/logging"
)

// Condition is one optimal-condition summary row: the variable, the value at
// which the mean outcome peaks, and that peak mean.
type Condition struct {
	Variable    string
	Value       float64
	MeanOutcome float64
	GroupSize   int
}

// Profile is the full grouped curve for one variable, kept for charting.
type Profile struct {
	Variable string
	Groups   []dataset.Group
	Best     int // index into Groups of the winning group
}

// ExtractProfile groups merged rows by the variable's distinct values and
// finds the group with the maximal mean outcome. Groups come back in
// ascending value order, and the scan takes the first maximum, so a tied
// mean resolves to the lowest variable value. A variable with a single
// distinct value trivially wins with that value.
func ExtractProfile(merged *dataset.Frame, variable, outcome string) (Profile, error) {
	groups, err := merged.GroupMean(variable, outcome)
	if err != nil {
		return Profile{}, fmt.Errorf("group %q by %q: %w", outcome, variable, err)
	}
	if len(groups) == 0 {
		return Profile{}, fmt.Errorf("variable %q: no groups", variable)
	}

	best := 0
	for i, g := range groups {
		if g.Mean > groups[best].Mean {
			best = i
		}
	}
	return Profile{Variable: variable, Groups: groups, Best: best}, nil
}

// Extract produces one Condition per variable, in the given variable order.
func Extract(merged *dataset.Frame, variables []string, outcome string) ([]Condition, error) {
	out := make([]Condition, 0, len(variables))
	for _, v := range variables {
		p, err := ExtractProfile(merged, v, outcome)
		if err != nil {
			return nil, err
		}
		g := p.Groups[p.Best]
		out = append(out, Condition{
			Variable:    v,
			Value:       g.Value,
			MeanOutcome: g.Mean,
			GroupSize:   g.Count,
		})
		logging.Optimum("%s: optimum %v (mean %v over %d rows)", v, g.Value, g.Mean, g.Count)
	}
	return out, nil
}
