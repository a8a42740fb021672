package preview

import (
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/sahilm/fuzzy"

	"github.com/daptify14/tabgeom/internal/geom"
	"github.com/daptify14/tabgeom/internal/tabbar"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.logMsg(msg)

	switch msg := msg.(type) {
	case tea.BackgroundColorMsg:
		SetTheme(ThemeForBackground(msg.IsDark()))
		m.filterInput = m.restyledFilterInput()
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.opts.FitWindow {
			m.fitWindow()
		}
		return m, nil
	case tea.KeyPressMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.showHelp = false
		return m, nil
	}

	m.lastErr = nil
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, Keys.Help):
		m.showHelp = true
	case key.Matches(msg, Keys.Prev):
		m.svc.Step(-1)
		m.logLayout("prev")
	case key.Matches(msg, Keys.Next):
		m.svc.Step(1)
		m.logLayout("next")
	case key.Matches(msg, Keys.ScrollLeft):
		m.svc.Scroll(resizeStepCells * m.svc.Cell().Width)
		m.logLayout("scroll")
	case key.Matches(msg, Keys.ScrollRight):
		m.svc.Scroll(-resizeStepCells * m.svc.Cell().Width)
		m.logLayout("scroll")
	case key.Matches(msg, Keys.Shrink):
		m.resizeBy(-1)
	case key.Matches(msg, Keys.Grow):
		m.resizeBy(1)
	case key.Matches(msg, Keys.Mode):
		mode := tabbar.BarModeScrollable
		if m.svc.Config().Mode == tabbar.BarModeScrollable {
			mode = tabbar.BarModeFixed
		}
		m.svc.SetMode(mode)
		m.logLayout("mode")
	case key.Matches(msg, Keys.Style):
		m.svc.SetLayoutStyle(nextLayoutStyle(m.svc.Config().ScrollableLayoutStyle))
		m.logLayout("style")
	case key.Matches(msg, Keys.Recenter):
		m.svc.Recenter()
		m.logLayout("recenter")
	case key.Matches(msg, Keys.Filter):
		m.filterInput = newFilterInput()
		m.filterInput.Focus()
		m.filtering = true
		m.matches = m.allIndexes()
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) updateFilter(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Back):
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	case key.Matches(msg, Keys.Enter):
		m.filtering = false
		m.filterInput.Blur()
		if len(m.matches) > 0 {
			if _, err := m.svc.Select(m.matches[0]); err != nil {
				m.lastErr = err
			}
			m.logLayout("jump")
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		m.matches = m.matchLabels(m.filterInput.Value())
		return m, cmd
	}
}

// matchLabels returns the indexes of labels fuzzy-matching query, best
// match first.
func (m Model) matchLabels(query string) []int {
	if query == "" {
		return m.allIndexes()
	}
	found := fuzzy.Find(query, m.svc.Labels())
	out := make([]int, len(found))
	for i, match := range found {
		out[i] = match.Index
	}
	return out
}

func (m Model) allIndexes() []int {
	out := make([]int, len(m.svc.Labels()))
	for i := range out {
		out[i] = i
	}
	return out
}

func (m *Model) resizeBy(dir int) {
	cfg := m.svc.Config()
	snap := m.svc.Snapshot()
	cell := m.svc.Cell()
	step := resizeStepCells * cell.Width
	if cfg.Axis == geom.Vertical {
		step = resizeStepCells * cell.Height
	}
	extent := snap.FrameSize.Main(cfg.Axis) + float64(dir)*step
	if _, err := m.svc.Resize(extent); err != nil {
		m.lastErr = err
		return
	}
	m.logLayout("resize")
}

// fitWindow sizes the bar's main axis to the terminal.
func (m *Model) fitWindow() {
	cfg := m.svc.Config()
	cell := m.svc.Cell()
	extent := float64(m.width) * cell.Width
	if cfg.Axis == geom.Vertical {
		extent = float64(max(m.height-chromeRows, 1)) * cell.Height
	}
	if _, err := m.svc.Resize(extent); err != nil {
		m.lastErr = err
		return
	}
	m.logLayout("fit")
}

func (m Model) restyledFilterInput() textinput.Model {
	ti := m.filterInput
	s := ti.Styles()
	s.Focused.Prompt = activeTheme.Title
	s.Blurred.Prompt = activeTheme.Title
	ti.SetStyles(s)
	return ti
}

func nextLayoutStyle(s tabbar.ScrollableLayoutStyle) tabbar.ScrollableLayoutStyle {
	switch s {
	case tabbar.LayoutStyleAlwaysCenter:
		return tabbar.LayoutStyleAlwaysAverageSplit
	case tabbar.LayoutStyleAlwaysAverageSplit:
		return tabbar.LayoutStyleSpaceBetweenOrCenter
	default:
		return tabbar.LayoutStyleAlwaysCenter
	}
}
