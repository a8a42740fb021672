package preview

import (
	"math"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/daptify14/tabgeom/internal/node"
	"github.com/daptify14/tabgeom/internal/tabbar"
)

type role uint8

const (
	roleEmpty role = iota
	roleItem
	roleItemAlt
	roleSelected
	roleSelectedMask
	roleUnselectedMask
)

type cell struct {
	text  string
	role  role
	color string // foreground override, hex
}

// canvas is a grid of terminal cells onto which vp frames are rasterised.
type canvas struct {
	cols, rows int
	cells      []cell
	metrics    node.CellMetrics
}

func newCanvas(frame tabbar.Frame, m node.CellMetrics) *canvas {
	c := &canvas{
		cols:    max(int(math.Ceil(frame.Size.Width/m.Width)), 0),
		rows:    max(int(math.Ceil(frame.Size.Height/m.Height)), 0),
		metrics: m,
	}
	c.cells = make([]cell, c.cols*c.rows)
	for i := range c.cells {
		c.cells[i].text = " "
	}
	return c
}

func (c *canvas) col(x float64) int { return int(math.Round(x / c.metrics.Width)) }
func (c *canvas) row(y float64) int { return int(math.Round(y / c.metrics.Height)) }

func (c *canvas) at(col, row int) *cell {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return nil
	}
	return &c.cells[row*c.cols+col]
}

// span converts a frame to a half-open cell rectangle.
func (c *canvas) span(f tabbar.Frame) (x0, y0, x1, y1 int) {
	x0, y0 = c.col(f.Offset.X), c.row(f.Offset.Y)
	x1 = c.col(f.Offset.X + f.Size.Width)
	y1 = c.row(f.Offset.Y + f.Size.Height)
	return x0, y0, x1, y1
}

func (c *canvas) fill(f tabbar.Frame, r role) {
	x0, y0, x1, y1 := c.span(f)
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			if cl := c.at(col, row); cl != nil {
				cl.role = r
			}
		}
	}
}

// write puts s on row starting at col, clipped to the canvas and to limit.
// The cell roles underneath are kept.
func (c *canvas) write(col, row, limit int, s, color string) {
	for _, ch := range s {
		glyph := string(ch)
		w := ansi.StringWidth(glyph)
		if w == 0 {
			continue
		}
		if col+w > limit {
			return
		}
		if cl := c.at(col, row); cl != nil {
			cl.text = glyph
			cl.color = color
		}
		for i := 1; i < w; i++ {
			if cl := c.at(col+i, row); cl != nil {
				cl.text = ""
			}
		}
		col += w
	}
}

// plain returns the canvas rows without styling.
func (c *canvas) plain() []string {
	lines := make([]string, c.rows)
	for row := range c.rows {
		var b strings.Builder
		for col := range c.cols {
			b.WriteString(c.cells[row*c.cols+col].text)
		}
		lines[row] = b.String()
	}
	return lines
}

// styled renders each row, grouping runs of cells that share a style.
func (c *canvas) styled(t Theme) []string {
	lines := make([]string, c.rows)
	for row := range c.rows {
		var b, run strings.Builder
		var cur cell
		flush := func() {
			if run.Len() == 0 {
				return
			}
			b.WriteString(styleFor(t, cur).Render(run.String()))
			run.Reset()
		}
		for col := range c.cols {
			cl := c.cells[row*c.cols+col]
			if col > 0 && (cl.role != cur.role || cl.color != cur.color) {
				flush()
			}
			cur = cl
			run.WriteString(cl.text)
		}
		flush()
		lines[row] = b.String()
	}
	return lines
}

func styleFor(t Theme, cl cell) lipgloss.Style {
	s := roleStyle(t, cl.role)
	if cl.color != "" {
		s = s.Foreground(lipgloss.Color(cl.color))
	}
	return s
}

func roleStyle(t Theme, r role) lipgloss.Style {
	switch r {
	case roleItem:
		return t.Item
	case roleItemAlt:
		return t.ItemAlt
	case roleSelected:
		return t.Selected
	case roleSelectedMask:
		return t.SelectedMask
	case roleUnselectedMask:
		return t.UnselectedMask
	default:
		return t.Background
	}
}

// rasterize draws the bar frame, every item with its icon and label, and the
// masks. Geometry comes from the last layout pass.
func rasterize(snap tabbar.Snapshot, items []*node.TabItem, indicator int, m node.CellMetrics) *canvas {
	c := newCanvas(tabbar.Frame{Size: snap.FrameSize}, m)
	for i, f := range snap.Items {
		r := roleItem
		if i%2 == 1 {
			r = roleItemAlt
		}
		if i == indicator {
			r = roleSelected
		}
		c.fill(f, r)
	}
	if snap.UnselectedMask.Size.Width > 0 && snap.UnselectedMask.Size.Height > 0 {
		c.fill(snap.UnselectedMask, roleUnselectedMask)
	}
	if snap.SelectedMask.Size.Width > 0 && snap.SelectedMask.Size.Height > 0 {
		c.fill(snap.SelectedMask, roleSelectedMask)
	}

	for i, f := range snap.Items {
		if i >= len(items) || items[i] == nil {
			continue
		}
		item := items[i]
		_, _, limit, _ := c.span(f)
		limit = min(limit, c.cols)
		if item.Icon != "" {
			icon := item.IconFrame()
			c.write(c.col(f.Offset.X+icon.Offset.X), c.row(f.Offset.Y+icon.Offset.Y), limit,
				item.Icon, item.IconColor)
		}
		if item.Label != "" {
			label := item.LabelFrame()
			c.write(c.col(f.Offset.X+label.Offset.X), c.row(f.Offset.Y+label.Offset.Y), limit,
				item.Label, "")
		}
	}
	return c
}
