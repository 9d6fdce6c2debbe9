package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/njnx/polar-plant-eunjin-dashboard/internal/locate"
	"github.com/njnx/polar-plant-eunjin-dashboard/internal/logging"
)

// EnvKeyword marks the per-school environment CSVs. Filenames follow the
// pattern <school>_환경데이터.csv, possibly NFD-encoded on disk.
const EnvKeyword = "환경데이터"

// EnvColumns are the environmental variables every environment CSV carries.
// A timestamp column may be present as well; it is kept but unused.
var EnvColumns = []string{"temperature", "humidity", "ph", "ec"}

// LoadEnvironment parses every environment CSV in dir into a frame keyed by
// school identifier. The school is the filename segment before the first
// underscore, in NFC form. Finding no environment file at all is an error;
// the pipeline cannot proceed without the environment side of the join.
func LoadEnvironment(dir string) (map[string]*Frame, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read data directory %s: %w", dir, err)
	}

	env := make(map[string]*Frame)
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			continue
		}
		if !locate.Matches(e.Name(), EnvKeyword) {
			continue
		}

		name := locate.Canonical(e.Name())
		school, _, found := strings.Cut(name, "_")
		if !found {
			logging.Get(logging.CategoryDataset).Warn("environment file %q has no school prefix, skipping", name)
			continue
		}

		frame, err := readCSV(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("environment data for %s: %w", school, err)
		}
		env[school] = frame
		logging.DatasetDebug("environment: school %s, %d readings", school, frame.Len())
	}

	if len(env) == 0 {
		return nil, fmt.Errorf("%w: no environment CSV (keyword %q) in %s", locate.ErrNotFound, EnvKeyword, dir)
	}
	logging.Dataset("environment: loaded %d school(s) from %s", len(env), dir)
	return env, nil
}

// readCSV parses one delimited file into a frame. The first record is the
// header; every following record is one reading.
func readCSV(path string) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: empty file", path)
	}

	frame := NewFrame(records[0])
	for i, rec := range records[1:] {
		if err := frame.AppendRow(rec); err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
	}
	return frame, nil
}
