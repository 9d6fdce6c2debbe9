// This file implements the interactive dashboard using bubbletea: three tabs
// (charts, optimal-condition table, conclusions) over one analysis result,
// with a school filter and an export hotkey.
package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/njnx/polar-plant-eunjin-dashboard/cmd/growdash/ui"
	"github.com/njnx/polar-plant-eunjin-dashboard/internal/config"
	"github.com/njnx/polar-plant-eunjin-dashboard/internal/export"
	"github.com/njnx/polar-plant-eunjin-dashboard/internal/logging"
	"github.com/njnx/polar-plant-eunjin-dashboard/internal/pipeline"
)

const (
	tabCharts = iota
	tabOptimal
	tabConclusions
	tabCount
)

var tabTitles = [tabCount]string{"📈 환경조건별 생중량", "📊 최적 조건 표", "📌 결론 및 한계"}

// dashboardModel is the top-level bubbletea model.
type dashboardModel struct {
	cfg     config.Config
	pipe    *pipeline.Pipeline
	styles  ui.Styles
	spinner spinner.Model

	chartPage      ui.ChartPageModel
	optimalPage    ui.OptimalPageModel
	conclusionPage ui.ConclusionPageModel

	activeTab int
	schools   []string // filter options; index 0 is "all"
	schoolIdx int
	result    *pipeline.Result

	loading bool
	err     error
	width   int
	height  int
	ready   bool
}

// Messages for tea updates.
type (
	resultMsg   *pipeline.Result
	errMsg      struct{ err error }
	exportedMsg struct {
		paths []string
		err   error
	}
)

// newDashboard initializes the dashboard model.
func newDashboard(cfg config.Config) dashboardModel {
	styles := ui.NewStyles(ui.ThemeByName(cfg.Theme))

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Success

	return dashboardModel{
		cfg:            cfg,
		pipe:           pipeline.New(cfg),
		styles:         styles,
		spinner:        sp,
		chartPage:      ui.NewChartPageModel(styles),
		optimalPage:    ui.NewOptimalPageModel(styles),
		conclusionPage: ui.NewConclusionPageModel(styles, conclusionsMarkdown),
		loading:        true,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runCmd(""))
}

// runCmd executes one analysis pass off the update loop.
func (m dashboardModel) runCmd(school string) tea.Cmd {
	pipe := m.pipe
	return func() tea.Msg {
		res, err := pipe.RunSchool(school)
		if err != nil {
			return errMsg{err}
		}
		return resultMsg(res)
	}
}

// exportCmd writes all artifacts for the current result.
func (m dashboardModel) exportCmd() tea.Cmd {
	dir := m.cfg.ExportDir
	res := m.result
	return func() tea.Msg {
		paths, err := export.WriteAll(dir, res)
		return exportedMsg{paths: paths, err: err}
	}
}

func (m dashboardModel) selectedSchool() string {
	if m.schoolIdx == 0 || m.schoolIdx > len(m.schools) {
		return ""
	}
	return m.schools[m.schoolIdx-1]
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil

		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return m, nil

		case "1", "2", "3":
			m.activeTab = int(msg.String()[0] - '1')
			return m, nil

		case "left", "right":
			// Cycle the school filter: all -> each school -> all.
			if m.loading || len(m.schools) == 0 {
				return m, nil
			}
			if msg.String() == "right" {
				m.schoolIdx = (m.schoolIdx + 1) % (len(m.schools) + 1)
			} else {
				m.schoolIdx = (m.schoolIdx + len(m.schools)) % (len(m.schools) + 1)
			}
			m.loading = true
			logging.UI("school filter -> %q", m.selectedSchool())
			return m, tea.Batch(m.spinner.Tick, m.runCmd(m.selectedSchool()))

		case "e":
			if m.result != nil && !m.loading {
				return m, m.exportCmd()
			}
			return m, nil

		case "r":
			if !m.loading {
				m.loading = true
				return m, tea.Batch(m.spinner.Tick, m.runCmd(m.selectedSchool()))
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		contentHeight := msg.Height - 6 // header + tab bar + footer
		if contentHeight < 4 {
			contentHeight = 4
		}
		m.chartPage.SetSize(msg.Width-4, contentHeight)
		m.optimalPage.SetSize(msg.Width-4, contentHeight)
		m.conclusionPage.SetSize(msg.Width-4, contentHeight)
		return m, nil

	case resultMsg:
		m.loading = false
		m.err = nil
		m.result = msg
		if len(m.schools) == 0 {
			m.schools = msg.Schools
		}
		m.chartPage.SetProfiles(msg.Profiles, msg.Outcome)
		m.optimalPage.SetConditions(msg.Conditions)
		m.optimalPage.SetNotice("")
		return m, nil

	case errMsg:
		m.loading = false
		m.err = msg.err
		return m, nil

	case exportedMsg:
		if msg.err != nil {
			m.optimalPage.SetNotice(fmt.Sprintf("export failed: %v", msg.err))
		} else {
			m.optimalPage.SetNotice(fmt.Sprintf("exported %d file(s) to %s", len(msg.paths), m.cfg.ExportDir))
		}
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	// Route remaining messages (scrolling) to the active page.
	var cmd tea.Cmd
	switch m.activeTab {
	case tabCharts:
		m.chartPage, cmd = m.chartPage.Update(msg)
	case tabOptimal:
		m.optimalPage, cmd = m.optimalPage.Update(msg)
	case tabConclusions:
		m.conclusionPage, cmd = m.conclusionPage.Update(msg)
	}
	return m, cmd
}

func (m dashboardModel) View() string {
	if !m.ready {
		return "starting..."
	}

	header := m.styles.Header.Render("🌱 나도수영 생장 최적 환경조건 분석")
	filter := "전체"
	if s := m.selectedSchool(); s != "" {
		filter = s
	}
	header = lipgloss.JoinHorizontal(lipgloss.Top, header, " ", m.styles.Badge.Render("학교: "+filter))

	tabs := make([]string, 0, tabCount)
	for i, title := range tabTitles {
		if i == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(title))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(title))
		}
	}
	tabBar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	var body string
	switch {
	case m.err != nil:
		body = m.styles.Error.Render(fmt.Sprintf("필요한 데이터 파일을 찾을 수 없습니다: %v", m.err))
	case m.loading:
		body = m.spinner.View() + " 데이터를 불러오는 중입니다..."
	default:
		switch m.activeTab {
		case tabCharts:
			body = m.chartPage.View()
		case tabOptimal:
			body = m.optimalPage.View()
		case tabConclusions:
			body = m.conclusionPage.View()
		}
	}

	footer := m.styles.Footer.Render("tab/1-3: switch · ←/→: school filter · e: export · r: reload · q: quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		tabBar,
		m.styles.Content.Render(body),
		footer,
	)
}

// runDashboard launches the interactive dashboard.
func runDashboard(cfg config.Config) error {
	p := tea.NewProgram(newDashboard(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
