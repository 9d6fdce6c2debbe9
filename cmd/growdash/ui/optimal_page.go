package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/njnx/polar-plant-eunjin-dashboard/internal/optimum"
)

// OptimalPageModel renders the optimal-condition summary table.
type OptimalPageModel struct {
	viewport   viewport.Model
	styles     Styles
	conditions []optimum.Condition
	notice     string
	width      int
	height     int
}

// NewOptimalPageModel creates an empty optimal-condition page.
func NewOptimalPageModel(styles Styles) OptimalPageModel {
	vp := viewport.New(80, 20)
	return OptimalPageModel{viewport: vp, styles: styles}
}

// SetSize updates the viewport size.
func (m *OptimalPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = h
	m.refresh()
}

// SetConditions replaces the table contents.
func (m *OptimalPageModel) SetConditions(conditions []optimum.Condition) {
	m.conditions = conditions
	m.refresh()
}

// SetNotice shows a transient line under the table, e.g. export feedback.
func (m *OptimalPageModel) SetNotice(notice string) {
	m.notice = notice
	m.refresh()
}

func (m *OptimalPageModel) refresh() {
	if len(m.conditions) == 0 {
		m.viewport.SetContent(m.styles.Muted.Render("No data loaded."))
		return
	}

	table := NewSimpleTable("최적 환경 조건", []string{"환경 변수", "최적 값", "최대 평균 생중량(g)", "표본 수"})
	for _, c := range m.conditions {
		table.AddRow(
			c.Variable,
			fmt.Sprintf("%.2f", c.Value),
			fmt.Sprintf("%.3f", c.MeanOutcome),
			fmt.Sprintf("%d", c.GroupSize),
		)
	}

	var sb strings.Builder
	sb.WriteString(table.View(m.styles))
	sb.WriteString(m.styles.Muted.Render("press e to export (xlsx + csv + png)"))
	sb.WriteString("\n")
	if m.notice != "" {
		sb.WriteString(m.styles.Success.Render(m.notice))
		sb.WriteString("\n")
	}
	m.viewport.SetContent(sb.String())
}

// Update handles scrolling.
func (m OptimalPageModel) Update(msg tea.Msg) (OptimalPageModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the page.
func (m OptimalPageModel) View() string {
	return m.viewport.View()
}
