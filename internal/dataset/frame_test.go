package dataset

import (
	"math"
	"testing"
)

func mustAppend(t *testing.T, f *Frame, cells ...string) {
	t.Helper()
	if err := f.AppendRow(cells); err != nil {
		t.Fatalf("AppendRow(%v): %v", cells, err)
	}
}

func TestFrameMean(t *testing.T) {
	f := NewFrame([]string{"ec"})
	mustAppend(t, f, "1.0")
	mustAppend(t, f, "2.0")
	mustAppend(t, f, "3.0")

	got, err := f.Mean("ec")
	if err != nil {
		t.Fatal(err)
	}
	if got != 2.0 {
		t.Errorf("Mean = %v, want 2.0", got)
	}
}

func TestFrameMeanMalformedCell(t *testing.T) {
	f := NewFrame([]string{"ec"})
	mustAppend(t, f, "not-a-number")

	if _, err := f.Mean("ec"); err == nil {
		t.Error("expected parse error for malformed cell")
	}
}

func TestFrameMeanMissingColumn(t *testing.T) {
	f := NewFrame([]string{"ec"})
	if _, err := f.Mean("ph"); err == nil {
		t.Error("expected error for missing column")
	}
}

func TestAppendRowArityMismatch(t *testing.T) {
	f := NewFrame([]string{"a", "b"})
	if err := f.AppendRow([]string{"1"}); err == nil {
		t.Error("expected arity error")
	}
}

func TestGroupMeanAscendingOrder(t *testing.T) {
	f := NewFrame([]string{"ec", "weight"})
	mustAppend(t, f, "4.0", "2.0")
	mustAppend(t, f, "1.0", "1.0")
	mustAppend(t, f, "4.0", "4.0")
	mustAppend(t, f, "2.0", "5.0")

	groups, err := f.GroupMean("ec", "weight")
	if err != nil {
		t.Fatal(err)
	}

	want := []Group{
		{Value: 1.0, Mean: 1.0, Count: 1},
		{Value: 2.0, Mean: 5.0, Count: 1},
		{Value: 4.0, Mean: 3.0, Count: 2},
	}
	if len(groups) != len(want) {
		t.Fatalf("got %d groups, want %d", len(groups), len(want))
	}
	for i, g := range groups {
		if g != want[i] {
			t.Errorf("group[%d] = %+v, want %+v", i, g, want[i])
		}
	}
}

func TestWithConstantBroadcasts(t *testing.T) {
	f := NewFrame([]string{"id"})
	mustAppend(t, f, "1")
	mustAppend(t, f, "2")

	g := f.WithConstant("school", "서울고")
	if g.Len() != 2 {
		t.Fatalf("Len = %d, want 2", g.Len())
	}
	for i := 0; i < g.Len(); i++ {
		cell, err := g.Cell(i, "school")
		if err != nil {
			t.Fatal(err)
		}
		if cell != "서울고" {
			t.Errorf("row %d school = %q", i, cell)
		}
	}
	// Source frame is untouched.
	if f.HasColumn("school") {
		t.Error("WithConstant mutated the source frame")
	}
}

func TestFilterEq(t *testing.T) {
	f := NewFrame([]string{"school", "weight"})
	mustAppend(t, f, "A", "1.0")
	mustAppend(t, f, "B", "2.0")
	mustAppend(t, f, "A", "3.0")

	got, err := f.FilterEq("school", "A")
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 2 {
		t.Fatalf("Len = %d, want 2", got.Len())
	}
	mean, err := got.Mean("weight")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(mean-2.0) > 1e-12 {
		t.Errorf("filtered mean = %v, want 2.0", mean)
	}
}

func TestAppendColumnMismatch(t *testing.T) {
	a := NewFrame([]string{"x"})
	b := NewFrame([]string{"y"})
	if err := a.Append(b); err == nil {
		t.Error("expected column mismatch error")
	}
}
