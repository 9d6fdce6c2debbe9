package ui

import (
	"strings"
	"testing"
)

func TestSimpleTable(t *testing.T) {
	table := NewSimpleTable("최적 환경 조건", []string{"환경 변수", "최적 값"})
	table.AddRow("ec", "2.00")

	styles := NewStyles(LightTheme())
	view := table.View(styles)

	t.Logf("View:\n%q", view)

	if !strings.Contains(view, "최적 환경 조건") {
		t.Error("View missing title")
	}
	if !strings.Contains(view, "ec") {
		t.Error("View missing cell content")
	}
	if !strings.Contains(view, "2.00") {
		t.Error("View missing value cell")
	}
}

func TestSimpleTableEmpty(t *testing.T) {
	table := NewSimpleTable("empty", []string{"a"})
	if got := table.View(NewStyles(LightTheme())); got != "" {
		t.Errorf("empty table should render nothing, got %q", got)
	}
}
