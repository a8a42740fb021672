// Package tabbar computes the size and position of every item in a tab bar.
//
// The solver is stateless: an [Algorithm] holds only theme constants and a
// logger, and every pass threads a caller-owned [State] through
// [Algorithm.Measure] and then [Algorithm.Layout]. Degenerate input never
// produces an error; the affected step falls back to a uniform or collapsed
// layout instead.
package tabbar

import (
	"log/slog"
	"math"

	"github.com/daptify14/tabgeom/internal/geom"
)

// Algorithm is the tab bar measure/layout solver.
type Algorithm struct {
	theme  Theme
	logger *slog.Logger
}

type Option func(*Algorithm)

// WithLogger sets the logger that receives fallback diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(a *Algorithm) {
		if l != nil {
			a.logger = l
		}
	}
}

func New(theme Theme, opts ...Option) *Algorithm {
	a := &Algorithm{
		theme:  theme,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	return a
}

// Theme returns the constants the algorithm was built with.
func (a *Algorithm) Theme() Theme { return a.theme }

// Measure resolves the bar frame size and every item's size against c.
// It records the working geometry in st for the following Layout call.
func (a *Algorithm) Measure(bar Bar, cfg Config, c geom.Constraint, st *State) geom.SizeF {
	if st == nil {
		return geom.SizeF{}
	}
	st.measured = false

	frame := a.frameSize(bar, cfg, c)
	st.FrameSize = frame
	st.gridPadding = 0
	if cfg.Axis == geom.Horizontal && cfg.GridAlign != nil {
		st.gridPadding = ApplyBarGridAlign(*cfg.GridAlign, frame, a.theme)
		if st.gridPadding == 0 {
			a.logger.Debug("grid alignment rejected", "breakpoint", a.theme.BreakpointFor(frame.Width).String())
		}
	}
	a.updateContent(cfg, st)

	if len(bar.Items) == 0 {
		st.ItemWidths = st.ItemWidths[:0]
		st.ChildrenMainSize = 0
		st.UseItemWidth = false
		a.measureMasks(bar, cfg, st)
		return frame
	}

	if cfg.Mode == BarModeFixed {
		a.measureFixedMode(bar, cfg, st)
	} else {
		a.measureScrollableMode(bar, cfg, st)
	}

	_, hasIdealHeight := c.SelfIdealSize.Main(geom.Vertical)
	if cfg.AdaptiveHeight && cfg.Axis == geom.Horizontal && !hasIdealHeight {
		st.MaxHeight = a.measureMaxHeight(bar, st)
		frame.Height = c.Constrain(geom.SizeF{
			Width:  frame.Width,
			Height: st.MaxHeight + cfg.Padding.Vertical(),
		}).Height
		st.FrameSize = frame
		a.updateContent(cfg, st)
	}

	a.measureItems(bar, cfg.Axis, st)
	a.measureMasks(bar, cfg, st)
	st.measured = true
	return frame
}

// frameSize picks the bar frame: the ideal size where set, the theme default
// on the cross axis, and the constraint's max on the main axis.
func (a *Algorithm) frameSize(bar Bar, cfg Config, c geom.Constraint) geom.SizeF {
	frame := c.MaxSize
	if w, ok := c.SelfIdealSize.Main(geom.Horizontal); ok {
		frame.Width = w
	} else if cfg.Axis == geom.Vertical {
		frame.Width = a.theme.BarDefaultWidth
	}
	if h, ok := c.SelfIdealSize.Main(geom.Vertical); ok {
		frame.Height = h
	} else if cfg.Axis == geom.Horizontal {
		frame.Height = a.theme.BarDefaultHeight
		if bar.style() == StyleBottomTab {
			frame.Height = a.theme.BottomTabBarDefaultHeight
		}
	}
	if math.IsInf(frame.Width, 1) {
		frame.Width, _ = c.ParentIdealSize.Main(geom.Horizontal)
	}
	if math.IsInf(frame.Height, 1) {
		frame.Height, _ = c.ParentIdealSize.Main(geom.Vertical)
	}
	return c.Constrain(frame)
}

func (a *Algorithm) updateContent(cfg Config, st *State) {
	padding := contentPadding(cfg.Padding, st.gridPadding)
	st.contentStart = geom.OffsetF{X: padding.Left, Y: padding.Top}
	st.contentSize = geom.SizeF{
		Width:  ContentWidth(padding, st.FrameSize.Width),
		Height: ContentHeight(padding, st.FrameSize.Height),
	}
}

func maskIndexValid(index, n int) bool {
	return index >= 0 && index < n
}

func (a *Algorithm) measureMasks(bar Bar, cfg Config, st *State) {
	measure := func(mask Box, index int) {
		if mask == nil {
			return
		}
		if !maskIndexValid(index, len(bar.Items)) || bar.Items[index] == nil {
			mask.Measure(geom.Rigid(geom.SizeF{}))
			return
		}
		mask.Measure(geom.Rigid(bar.Items[index].Size()))
	}
	measure(bar.SelectedMask, cfg.SelectedMask)
	measure(bar.UnselectedMask, cfg.UnselectedMask)
}

// Layout positions every item along the main axis starting at the resolved
// scroll offset, centres it on the cross axis, and places the masks over the
// items they mirror. It returns the committed geometry.
func (a *Algorithm) Layout(bar Bar, cfg Config, st *State) Snapshot {
	if st == nil {
		return Snapshot{}
	}
	axis := cfg.Axis
	if !st.measured || len(bar.Items) == 0 {
		a.layoutMasks(bar, cfg)
		return a.snapshot(bar, st, 0)
	}

	extents := make([]float64, len(bar.Items))
	for i, item := range bar.Items {
		if item != nil {
			extents[i] = item.Size().Main(axis)
		}
	}
	res := resolveScrollOffset(offsetInput{
		mode:           cfg.Mode,
		style:          bar.style(),
		axis:           axis,
		frameExtent:    st.contentSize.Main(axis),
		childrenExtent: st.ChildrenMainSize,
		extents:        extents,
		scrollMargin:   st.ScrollMargin,
		indicator:      cfg.Indicator,
		changed:        a.indicatorChanged(cfg, st),
		current:        st.CurrentOffset,
	})
	st.CurrentOffset = res.current

	pos := st.contentStart.Main(axis) + res.start + st.ScrollMargin
	crossStart := st.contentStart.Main(axis.Cross())
	crossExtent := st.contentSize.Cross(axis)
	for _, item := range bar.Items {
		if item == nil {
			continue
		}
		size := item.Size()
		off := geom.AxisOffset(axis, pos, crossStart+(crossExtent-size.Cross(axis))/2)
		if cfg.RTL && axis == geom.Horizontal {
			off.X = st.FrameSize.Width - off.X - size.Width
		}
		item.SetOffset(off)
		item.Layout()
		pos += size.Main(axis)
	}
	a.layoutMasks(bar, cfg)

	st.Indicator = cfg.Indicator
	st.PreviousChildrenMainSize = st.ChildrenMainSize
	st.RequestRecenter = false
	return a.snapshot(bar, st, res.start)
}

func (a *Algorithm) indicatorChanged(cfg Config, st *State) bool {
	return cfg.Indicator != st.Indicator || st.RequestRecenter ||
		!geom.NearEqual(st.ChildrenMainSize, st.PreviousChildrenMainSize)
}

func (a *Algorithm) layoutMasks(bar Bar, cfg Config) {
	place := func(mask Box, index int) {
		if mask == nil {
			return
		}
		if !maskIndexValid(index, len(bar.Items)) || bar.Items[index] == nil {
			mask.SetOffset(geom.OffsetF{})
		} else {
			mask.SetOffset(bar.Items[index].Offset())
		}
		mask.Layout()
	}
	place(bar.SelectedMask, cfg.SelectedMask)
	place(bar.UnselectedMask, cfg.UnselectedMask)
}

func (a *Algorithm) snapshot(bar Bar, st *State, start float64) Snapshot {
	snap := Snapshot{
		FrameSize:        st.FrameSize,
		Offset:           start,
		ScrollOffset:     st.CurrentOffset,
		ChildrenMainSize: st.ChildrenMainSize,
		UseItemWidth:     st.UseItemWidth,
		Items:            make([]Frame, len(bar.Items)),
	}
	for i, item := range bar.Items {
		if item != nil {
			snap.Items[i] = frameOf(item)
		}
	}
	if bar.SelectedMask != nil {
		snap.SelectedMask = frameOf(bar.SelectedMask)
	}
	if bar.UnselectedMask != nil {
		snap.UnselectedMask = frameOf(bar.UnselectedMask)
	}
	return snap
}

func frameOf(b Box) Frame {
	return Frame{Offset: b.Offset(), Size: b.Size()}
}
