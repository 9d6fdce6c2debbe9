package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/njnx/polar-plant-eunjin-dashboard/internal/optimum"
)

// ChartPageModel renders the per-variable mean fresh-weight profiles as
// horizontal bar charts, with the optimum group starred. The exported PNG
// charts carry the same data for reports.
type ChartPageModel struct {
	viewport viewport.Model
	styles   Styles
	profiles []optimum.Profile
	outcome  string
	width    int
	height   int
}

// NewChartPageModel creates an empty chart page.
func NewChartPageModel(styles Styles) ChartPageModel {
	vp := viewport.New(80, 20)
	return ChartPageModel{viewport: vp, styles: styles}
}

// SetSize updates the viewport size.
func (m *ChartPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = h
	m.refresh()
}

// SetProfiles replaces the charted profiles and refreshes the content.
func (m *ChartPageModel) SetProfiles(profiles []optimum.Profile, outcome string) {
	m.profiles = profiles
	m.outcome = outcome
	m.refresh()
}

func (m *ChartPageModel) refresh() {
	if len(m.profiles) == 0 {
		m.viewport.SetContent(m.styles.Muted.Render("No data loaded."))
		return
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(fmt.Sprintf("환경 변수에 따른 평균 %s 변화", m.outcome)))
	sb.WriteString("\n\n")

	for i, p := range m.profiles {
		sb.WriteString(m.renderProfile(i, p))
		sb.WriteString("\n")
	}
	m.viewport.SetContent(sb.String())
}

// renderProfile draws one variable's grouped means as bars scaled to the
// largest mean in the profile.
func (m *ChartPageModel) renderProfile(idx int, p optimum.Profile) string {
	var sb strings.Builder
	sb.WriteString(m.styles.Bold.Render(p.Variable))
	sb.WriteString("\n")

	maxMean := 0.0
	for _, g := range p.Groups {
		if g.Mean > maxMean {
			maxMean = g.Mean
		}
	}

	barWidth := m.width - 30
	if barWidth < 10 {
		barWidth = 10
	}
	barStyle := lipgloss.NewStyle().Foreground(ChartColor(idx))

	for gi, g := range p.Groups {
		n := 0
		if maxMean > 0 {
			n = int(float64(barWidth) * g.Mean / maxMean)
		}
		if n < 1 {
			n = 1
		}
		marker := "  "
		if gi == p.Best {
			marker = m.styles.Warning.Render("★ ")
		}
		sb.WriteString(fmt.Sprintf("%s%8.2f │%s %s\n",
			marker,
			g.Value,
			barStyle.Render(strings.Repeat("█", n)),
			m.styles.Muted.Render(fmt.Sprintf("%.3f (n=%d)", g.Mean, g.Count)),
		))
	}
	return sb.String()
}

// Update handles scrolling.
func (m ChartPageModel) Update(msg tea.Msg) (ChartPageModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the page.
func (m ChartPageModel) View() string {
	return m.viewport.View()
}
