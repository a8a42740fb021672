package preview

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/daptify14/tabgeom/internal/geom"
	"github.com/daptify14/tabgeom/internal/tabbar"
)

const appName = "tabgeom"

// chromeRows is the number of lines around the bar: title, ruler, blank,
// status and hint.
const chromeRows = 5

// View implements tea.Model.
func (m Model) View() tea.View {
	var v tea.View
	v.AltScreen = true

	switch {
	case m.showHelp:
		v.Content = m.renderHelp()
	default:
		v.Content = m.render()
	}
	return v
}

func (m Model) render() string {
	c := m.canvas()
	lines := []string{m.renderTitle(), renderRuler(c.cols)}
	lines = append(lines, c.styled(activeTheme)...)
	lines = append(lines, "")
	if m.filtering {
		lines = append(lines, m.renderFilter())
	}
	lines = append(lines, m.renderStatus(), m.renderHint())
	if m.width > 0 {
		for i, l := range lines {
			lines[i] = ansi.Truncate(l, m.width, "…")
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderTitle() string {
	cfg := m.svc.Config()
	parts := []string{activeTheme.Title.Render(appName)}
	if m.opts.Source != "" {
		parts = append(parts, activeTheme.HintText.Render(m.opts.Source))
	}
	parts = append(parts,
		activeTheme.HintText.Render(fmt.Sprintf("%s %s", cfg.Mode, cfg.Axis)),
	)
	if cfg.Mode == tabbar.BarModeScrollable && cfg.Axis == geom.Horizontal {
		parts = append(parts, activeTheme.HintText.Render(cfg.ScrollableLayoutStyle.String()))
	}
	return strings.Join(parts, "  ")
}

// renderRuler marks every tenth cell of a canvas cols wide.
func renderRuler(cols int) string {
	var b strings.Builder
	for col := 0; col < cols; {
		if col%10 == 0 {
			label := fmt.Sprintf("|%d", col)
			if col+len(label) > cols {
				label = "|"
			}
			b.WriteString(label)
			col += len(label)
			continue
		}
		b.WriteString(" ")
		col++
	}
	return activeTheme.Ruler.Render(b.String())
}

func (m Model) canvas() *canvas {
	return rasterize(m.svc.Snapshot(), m.svc.Items(), m.svc.Config().Indicator, m.svc.Cell())
}

func (m Model) renderStatus() string {
	cfg := m.svc.Config()
	snap := m.svc.Snapshot()
	labels := m.svc.Labels()
	var selected string
	if cfg.Indicator >= 0 && cfg.Indicator < len(labels) {
		selected = labels[cfg.Indicator]
	}
	status := fmt.Sprintf("%s (%d/%d)  frame %gx%g  offset %g  children %g  item width %t",
		selected, cfg.Indicator+1, len(labels),
		snap.FrameSize.Width, snap.FrameSize.Height,
		snap.Offset, snap.ChildrenMainSize, snap.UseItemWidth)
	if m.lastErr != nil {
		status += "  " + activeTheme.Error.Render(m.lastErr.Error())
	}
	return activeTheme.StatusBar.Render(status)
}

func (m Model) renderHint() string {
	hints := []string{
		Keys.Prev.Help().Key + "/" + Keys.Next.Help().Key + " select",
		Keys.Shrink.Help().Key + Keys.Grow.Help().Key + " resize",
		Keys.Mode.Help().Key + " mode",
		Keys.Style.Help().Key + " style",
		Keys.Filter.Help().Key + " jump",
		Keys.Help.Help().Key + " keys",
		Keys.Quit.Help().Key + " quit",
	}
	return activeTheme.HintText.Render(strings.Join(hints, "  "))
}

func (m Model) renderFilter() string {
	labels := m.svc.Labels()
	var names []string
	for i, idx := range m.matches {
		if i >= 5 {
			names = append(names, "…")
			break
		}
		name := labels[idx]
		if i == 0 {
			name = activeTheme.Match.Render(name)
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		names = append(names, activeTheme.HintText.Render("no match"))
	}
	return activeTheme.Filter.Render(m.filterInput.View() + "\n" + strings.Join(names, "  "))
}

func (m Model) renderHelp() string {
	bindings := Keys.helpBindings()
	keyWidth := 0
	for _, b := range bindings {
		keyWidth = max(keyWidth, ansi.StringWidth(b.Help().Key))
	}
	var rows []string
	rows = append(rows, activeTheme.Title.Render("Keys"), "")
	for _, b := range bindings {
		h := b.Help()
		pad := strings.Repeat(" ", keyWidth-ansi.StringWidth(h.Key))
		rows = append(rows, activeTheme.Title.Render(h.Key)+pad+"  "+h.Desc)
	}
	box := activeTheme.HelpOverlay.Render(strings.Join(rows, "\n"))
	if m.width <= 0 || m.height <= 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
