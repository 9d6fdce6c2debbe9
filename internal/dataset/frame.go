// Package dataset loads the per-school experiment files into in-memory
// tables. Two sources exist: one environment CSV per school and a single
// growth workbook with one sheet per school. Loaded tables are immutable by
// convention; derived tables are always built fresh.
package dataset

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Frame is a small column-oriented table. Cells are kept as strings exactly
// as parsed from the source file; numeric access parses on demand so that a
// malformed cell surfaces as an error at the point of use rather than being
// silently zeroed at load time.
type Frame struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// NewFrame creates an empty frame with the given column names.
func NewFrame(columns []string) *Frame {
	idx := make(map[string]int, len(columns))
	cols := make([]string, len(columns))
	for i, c := range columns {
		c = strings.TrimSpace(c)
		cols[i] = c
		idx[c] = i
	}
	return &Frame{columns: cols, index: idx}
}

// Columns returns the column names in declaration order.
func (f *Frame) Columns() []string {
	out := make([]string, len(f.columns))
	copy(out, f.columns)
	return out
}

// Len returns the number of rows.
func (f *Frame) Len() int { return len(f.rows) }

// HasColumn reports whether the frame has a column with the given name.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.index[name]
	return ok
}

// AppendRow adds one row. The cell count must match the column count.
func (f *Frame) AppendRow(cells []string) error {
	if len(cells) != len(f.columns) {
		return fmt.Errorf("row has %d cells, frame has %d columns", len(cells), len(f.columns))
	}
	row := make([]string, len(cells))
	for i, c := range cells {
		row[i] = strings.TrimSpace(c)
	}
	f.rows = append(f.rows, row)
	return nil
}

// Cell returns the raw cell at row i in the named column.
func (f *Frame) Cell(i int, name string) (string, error) {
	col, ok := f.index[name]
	if !ok {
		return "", fmt.Errorf("no column %q", name)
	}
	if i < 0 || i >= len(f.rows) {
		return "", fmt.Errorf("row %d out of range (%d rows)", i, len(f.rows))
	}
	return f.rows[i][col], nil
}

// Strings returns a copy of the named column as raw cells.
func (f *Frame) Strings(name string) ([]string, error) {
	col, ok := f.index[name]
	if !ok {
		return nil, fmt.Errorf("no column %q", name)
	}
	out := make([]string, len(f.rows))
	for i, row := range f.rows {
		out[i] = row[col]
	}
	return out, nil
}

// Floats returns the named column parsed as float64.
func (f *Frame) Floats(name string) ([]float64, error) {
	raw, err := f.Strings(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(raw))
	for i, cell := range raw {
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("column %q row %d: parse %q: %w", name, i, cell, err)
		}
		out[i] = v
	}
	return out, nil
}

// Mean returns the arithmetic mean of the named numeric column.
func (f *Frame) Mean(name string) (float64, error) {
	vals, err := f.Floats(name)
	if err != nil {
		return 0, err
	}
	if len(vals) == 0 {
		return 0, fmt.Errorf("column %q: mean of empty column", name)
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals)), nil
}

// WithConstant returns a new frame with an extra column holding the same
// value on every row. Used to broadcast per-school summaries onto growth
// rows during the merge.
func (f *Frame) WithConstant(name, value string) *Frame {
	out := NewFrame(append(f.Columns(), name))
	for _, row := range f.rows {
		cells := make([]string, 0, len(row)+1)
		cells = append(cells, row...)
		cells = append(cells, value)
		out.rows = append(out.rows, cells)
	}
	return out
}

// FilterEq returns a new frame containing only the rows whose cell in the
// named column equals value.
func (f *Frame) FilterEq(name, value string) (*Frame, error) {
	col, ok := f.index[name]
	if !ok {
		return nil, fmt.Errorf("no column %q", name)
	}
	out := NewFrame(f.columns)
	for _, row := range f.rows {
		if row[col] == value {
			cells := make([]string, len(row))
			copy(cells, row)
			out.rows = append(out.rows, cells)
		}
	}
	return out, nil
}

// Append concatenates the rows of other onto f. Column sets must match.
func (f *Frame) Append(other *Frame) error {
	if len(f.columns) != len(other.columns) {
		return fmt.Errorf("column count mismatch: %d vs %d", len(f.columns), len(other.columns))
	}
	for i, c := range f.columns {
		if other.columns[i] != c {
			return fmt.Errorf("column %d mismatch: %q vs %q", i, c, other.columns[i])
		}
	}
	for _, row := range other.rows {
		cells := make([]string, len(row))
		copy(cells, row)
		f.rows = append(f.rows, cells)
	}
	return nil
}

// Group is one bucket of a GroupMean: the distinct grouping value, the mean
// of the value column inside the bucket, and the bucket size.
type Group struct {
	Value float64
	Mean  float64
	Count int
}

// GroupMean buckets rows by the distinct numeric values of groupCol and
// returns the mean of valueCol per bucket, ordered by ascending group value.
// The ascending order is what makes the downstream "first maximum wins"
// scan deterministic: on a tied mean the lowest group value is reported.
func (f *Frame) GroupMean(groupCol, valueCol string) ([]Group, error) {
	keys, err := f.Floats(groupCol)
	if err != nil {
		return nil, err
	}
	vals, err := f.Floats(valueCol)
	if err != nil {
		return nil, err
	}

	sums := make(map[float64]float64)
	counts := make(map[float64]int)
	for i, k := range keys {
		sums[k] += vals[i]
		counts[k]++
	}

	order := make([]float64, 0, len(sums))
	for k := range sums {
		order = append(order, k)
	}
	sort.Float64s(order)

	out := make([]Group, 0, len(order))
	for _, k := range order {
		out = append(out, Group{Value: k, Mean: sums[k] / float64(counts[k]), Count: counts[k]})
	}
	return out, nil
}

// Row returns a copy of row i.
func (f *Frame) Row(i int) []string {
	row := make([]string, len(f.rows[i]))
	copy(row, f.rows[i])
	return row
}
