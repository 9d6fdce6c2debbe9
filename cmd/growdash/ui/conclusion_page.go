package ui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// ConclusionPageModel renders the research-conclusions narrative from
// markdown via glamour.
type ConclusionPageModel struct {
	viewport viewport.Model
	styles   Styles
	markdown string
	width    int
	height   int
}

// NewConclusionPageModel creates a conclusions page for the given markdown.
func NewConclusionPageModel(styles Styles, markdown string) ConclusionPageModel {
	vp := viewport.New(80, 20)
	m := ConclusionPageModel{viewport: vp, styles: styles, markdown: markdown}
	m.refresh()
	return m
}

// SetSize updates the viewport size and re-wraps the rendering.
func (m *ConclusionPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = h
	m.refresh()
}

func (m *ConclusionPageModel) refresh() {
	wrap := m.width - 4
	if wrap < 40 {
		wrap = 40
	}

	var renderer *glamour.TermRenderer
	var err error
	if m.styles.Theme.IsDark {
		renderer, err = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wrap),
		)
	} else {
		renderer, err = glamour.NewTermRenderer(
			glamour.WithStylePath("light"),
			glamour.WithWordWrap(wrap),
		)
	}
	if err != nil || renderer == nil {
		m.viewport.SetContent(m.markdown)
		return
	}

	out, err := renderer.Render(m.markdown)
	if err != nil {
		m.viewport.SetContent(m.markdown)
		return
	}
	m.viewport.SetContent(out)
}

// Update handles scrolling.
func (m ConclusionPageModel) Update(msg tea.Msg) (ConclusionPageModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the page.
func (m ConclusionPageModel) View() string {
	return m.viewport.View()
}
