// Package pipeline ties the full analysis pass together: locate and load the
// source files (memoized), merge by school, and extract the optimal
// condition per environmental variable. Both the CLI and the dashboard run
// through here; one user interaction triggers one synchronous pass.
package pipeline

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/njnx/polar-plant-eunjin-dashboard/internal/config"
	"github.com/njnx/polar-plant-eunjin-dashboard/internal/dataset"
	"github.com/njnx/polar-plant-eunjin-dashboard/internal/logging"
	"github.com/njnx/polar-plant-eunjin-dashboard/internal/merge"
	"github.com/njnx/polar-plant-eunjin-dashboard/internal/optimum"
)

// Pipeline runs analysis passes over one data directory.
type Pipeline struct {
	cfg   config.Config
	cache *dataset.Cache
}

// Result is the output of one analysis pass.
type Result struct {
	RunID      string
	School     string // "" means all schools
	Merged     *dataset.Frame
	Conditions []optimum.Condition
	Profiles   []optimum.Profile

	// Schools holds the identifiers present in both datasets, sorted.
	// EnvOnly and GrowthOnly name the schools silently dropped from the
	// join because they appeared on one side only.
	Schools    []string
	EnvOnly    []string
	GrowthOnly []string

	Variables []string
	Outcome   string
}

// New creates a pipeline with a fresh load cache.
func New(cfg config.Config) *Pipeline {
	return &Pipeline{cfg: cfg, cache: dataset.NewCache()}
}

// Run executes a full pass over all schools.
func (p *Pipeline) Run() (*Result, error) {
	return p.RunSchool("")
}

// RunSchool executes a pass restricted to one school; an empty school means
// no filter. The filter applies to the merged table before extraction, the
// same pre-filter the dashboard sidebar performs.
func (p *Pipeline) RunSchool(school string) (*Result, error) {
	runID := uuid.NewString()
	rlog := logging.WithRunID(logging.CategoryDataset, runID)
	timer := logging.StartTimer(logging.CategoryDataset, "analysis pass")
	defer timer.Stop()

	snap, err := p.cache.Load(p.cfg.DataDir)
	if err != nil {
		return nil, err
	}
	rlog.Info("snapshot: %d environment school(s), %d growth school(s)",
		len(snap.Environment), len(snap.Growth))

	merged, err := merge.Combine(snap.Environment, snap.Growth)
	if err != nil {
		return nil, err
	}

	if school != "" {
		merged, err = merged.FilterEq(merge.SchoolColumn, school)
		if err != nil {
			return nil, err
		}
		if merged.Len() == 0 {
			return nil, fmt.Errorf("no merged rows for school %q", school)
		}
	}

	conditions, err := optimum.Extract(merged, p.cfg.Variables, p.cfg.OutcomeColumn)
	if err != nil {
		return nil, err
	}
	profiles := make([]optimum.Profile, 0, len(p.cfg.Variables))
	for _, v := range p.cfg.Variables {
		prof, err := optimum.ExtractProfile(merged, v, p.cfg.OutcomeColumn)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, prof)
	}

	res := &Result{
		RunID:      runID,
		School:     school,
		Merged:     merged,
		Conditions: conditions,
		Profiles:   profiles,
		Variables:  append([]string(nil), p.cfg.Variables...),
		Outcome:    p.cfg.OutcomeColumn,
	}
	res.Schools, res.EnvOnly, res.GrowthOnly = schoolSets(snap)
	return res, nil
}

// schoolSets splits the snapshot's school identifiers into the sorted
// overlap and the one-sided leftovers.
func schoolSets(snap *dataset.Snapshot) (both, envOnly, growthOnly []string) {
	for s := range snap.Environment {
		if _, ok := snap.Growth[s]; ok {
			both = append(both, s)
		} else {
			envOnly = append(envOnly, s)
		}
	}
	for s := range snap.Growth {
		if _, ok := snap.Environment[s]; !ok {
			growthOnly = append(growthOnly, s)
		}
	}
	sort.Strings(both)
	sort.Strings(envOnly)
	sort.Strings(growthOnly)
	return both, envOnly, growthOnly
}
