// Package node provides the layout nodes a tab bar is built from: tab items
// made of an optional icon and a text label, and the mask overlays.
package node

import (
	"github.com/charmbracelet/x/ansi"
	devicons "github.com/epilande/go-devicons"

	"github.com/daptify14/tabgeom/internal/geom"
	"github.com/daptify14/tabgeom/internal/tabbar"
)

// CellMetrics converts terminal cells to vp.
type CellMetrics struct {
	Width  float64
	Height float64
}

// DefaultCellMetrics is an 8x16 vp terminal cell.
var DefaultCellMetrics = CellMetrics{Width: 8, Height: 16}

// TextSize returns the extent of s rendered on one line of cells.
func TextSize(s string, m CellMetrics) geom.SizeF {
	return geom.SizeF{
		Width:  float64(ansi.StringWidth(s)) * m.Width,
		Height: m.Height,
	}
}

// TabItem is an icon + label tab. It satisfies tabbar.Item.
type TabItem struct {
	Label     string
	LabelSize geom.SizeF
	Icon      string
	IconColor string
	IconSize  geom.SizeF
	Padding   geom.Edges

	style       tabbar.ItemStyle
	arrangement tabbar.Arrangement
	margins     tabbar.ContentMargins

	size       geom.SizeF
	offset     geom.OffsetF
	iconFrame  tabbar.Frame
	labelFrame tabbar.Frame
	measures   int
}

type Option func(*TabItem)

// WithStyle sets the item's tab bar style.
func WithStyle(s tabbar.ItemStyle) Option {
	return func(t *TabItem) {
		t.style = s
	}
}

// WithIcon sets an icon glyph and its extent.
func WithIcon(glyph string, size geom.SizeF) Option {
	return func(t *TabItem) {
		t.Icon = glyph
		t.IconSize = size
	}
}

// WithFileIcon picks the icon glyph and colour for a file name.
func WithFileIcon(name string, size geom.SizeF) Option {
	return func(t *TabItem) {
		style := devicons.IconForPath(name)
		t.Icon = style.Icon
		t.IconColor = style.Color
		t.IconSize = size
	}
}

// WithLabelSize overrides the measured label extent.
func WithLabelSize(size geom.SizeF) Option {
	return func(t *TabItem) {
		t.LabelSize = size
	}
}

func WithPadding(p geom.Edges) Option {
	return func(t *TabItem) {
		t.Padding = p
	}
}

// NewTabItem builds a tab whose label extent is measured in cells.
func NewTabItem(label string, m CellMetrics, opts ...Option) *TabItem {
	t := &TabItem{
		Label:     label,
		LabelSize: TextSize(label, m),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	return t
}

func (t *TabItem) ItemStyle() tabbar.ItemStyle { return t.style }

func (t *TabItem) Arrange(a tabbar.Arrangement) { t.arrangement = a }

// Arrangement returns the current icon/label stacking.
func (t *TabItem) Arrangement() tabbar.Arrangement { return t.arrangement }

func (t *TabItem) SetContentMargins(m tabbar.ContentMargins) { t.margins = m }

// ContentMargins returns the current icon and label margins.
func (t *TabItem) ContentMargins() tabbar.ContentMargins { return t.margins }

func (t *TabItem) hasIcon() bool {
	return t.IconSize.Width > 0 && t.IconSize.Height > 0
}

func (t *TabItem) hasLabel() bool {
	return t.LabelSize.Width > 0 && t.LabelSize.Height > 0
}

// parts returns the outer extents of the icon and label including margins.
func (t *TabItem) parts() (icon, label geom.SizeF) {
	if t.hasIcon() {
		icon = geom.SizeF{
			Width:  t.IconSize.Width + t.margins.Icon.Horizontal(),
			Height: t.IconSize.Height + t.margins.Icon.Vertical(),
		}
	}
	if t.hasLabel() {
		label = geom.SizeF{
			Width:  t.LabelSize.Width + t.margins.Label.Horizontal(),
			Height: t.LabelSize.Height + t.margins.Label.Vertical(),
		}
	}
	return icon, label
}

// ContentSize is the natural extent of the icon and label including spacing
// and padding.
func (t *TabItem) ContentSize() geom.SizeF {
	icon, label := t.parts()
	axis := t.arrangement.Axis
	spacing := 0.0
	if t.hasIcon() && t.hasLabel() {
		spacing = t.arrangement.Spacing
	}
	content := geom.AxisSize(axis,
		icon.Main(axis)+spacing+label.Main(axis),
		max(icon.Cross(axis), label.Cross(axis)),
	)
	content.Width += t.Padding.Horizontal()
	content.Height += t.Padding.Vertical()
	return content
}

func (t *TabItem) Measure(c geom.Constraint) {
	t.measures++
	t.size = c.Resolve(t.ContentSize())
}

// Measures returns how often the item was measured.
func (t *TabItem) Measures() int { return t.measures }

func (t *TabItem) Size() geom.SizeF { return t.size }

func (t *TabItem) Offset() geom.OffsetF { return t.offset }

func (t *TabItem) SetOffset(o geom.OffsetF) { t.offset = o }

// Layout centres the icon/label group on the arrangement axis and aligns
// each part on the cross axis. Frames are relative to the item.
func (t *TabItem) Layout() {
	axis := t.arrangement.Axis
	icon, label := t.parts()
	content := t.ContentSize()

	inner := geom.SizeF{
		Width:  geom.NonNegative(t.size.Width - t.Padding.Horizontal()),
		Height: geom.NonNegative(t.size.Height - t.Padding.Vertical()),
	}
	groupMain := content.Main(axis) - t.Padding.Along(axis)
	pos := t.Padding.Leading(axis) + (inner.Main(axis)-groupMain)/2
	crossStart := t.Padding.Leading(axis.Cross())
	crossExtent := inner.Cross(axis)

	place := func(outer, inside geom.SizeF, margin geom.Edges) tabbar.Frame {
		cross := crossStart + align(t.arrangement.Align, crossExtent, outer.Cross(axis))
		off := geom.AxisOffset(axis, pos, cross)
		off.X += margin.Left
		off.Y += margin.Top
		return tabbar.Frame{Offset: off, Size: inside}
	}

	t.iconFrame, t.labelFrame = tabbar.Frame{}, tabbar.Frame{}
	if t.hasIcon() {
		t.iconFrame = place(icon, t.IconSize, t.margins.Icon)
		pos += icon.Main(axis)
		if t.hasLabel() {
			pos += t.arrangement.Spacing
		}
	}
	if t.hasLabel() {
		t.labelFrame = place(label, t.LabelSize, t.margins.Label)
	}
}

// IconFrame is the icon's frame relative to the item after Layout.
func (t *TabItem) IconFrame() tabbar.Frame { return t.iconFrame }

// LabelFrame is the label's frame relative to the item after Layout.
func (t *TabItem) LabelFrame() tabbar.Frame { return t.labelFrame }

func align(a tabbar.Align, extent, size float64) float64 {
	switch a {
	case tabbar.AlignStart:
		return 0
	case tabbar.AlignEnd:
		return extent - size
	default:
		return (extent - size) / 2
	}
}
