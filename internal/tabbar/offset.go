package tabbar

import "github.com/daptify14/tabgeom/internal/geom"

// offsetInput is everything the scroll offset resolution reads.
type offsetInput struct {
	mode  BarMode
	style Style
	axis  geom.Axis
	// frameExtent is the content extent along the main axis.
	frameExtent    float64
	childrenExtent float64
	extents        []float64
	scrollMargin   float64
	indicator      int
	// changed is set when the indicator moved or a re-centre was requested.
	changed bool
	current float64
}

// offsetResult is the main-axis start of the first item and the scroll
// offset to persist for the next frame.
type offsetResult struct {
	start   float64
	current float64
}

// resolveScrollOffset decides where the first item starts. The rules are
// evaluated in order and the first match wins.
func resolveScrollOffset(in offsetInput) offsetResult {
	switch {
	case in.mode == BarModeFixed && in.style == StyleBottomTab && in.axis == geom.Vertical:
		return offsetResult{start: in.frameExtent / 4}
	case in.mode == BarModeFixed && in.style == StyleSubTab:
		return offsetResult{}
	case in.mode == BarModeScrollable && in.childrenExtent <= in.frameExtent:
		return offsetResult{start: (in.frameExtent - in.childrenExtent) / 2}
	case in.mode == BarModeScrollable && in.changed && in.indicator >= 0 && in.indicator < len(in.extents):
		if in.style == StyleSubTab && in.axis == geom.Horizontal && in.childrenExtent > in.frameExtent {
			cur := clampOffset(in.current, in.childrenExtent, in.frameExtent)
			return offsetResult{start: cur, current: cur}
		}
		cur := selectedOffset(in)
		return offsetResult{start: cur, current: cur}
	case in.mode == BarModeFixed:
		return offsetResult{}
	default:
		cur := clampOffset(in.current, in.childrenExtent, in.frameExtent)
		return offsetResult{start: cur, current: cur}
	}
}

// selectedOffset scrolls so the selected item is visible, centring it when
// there is room on both sides.
func selectedOffset(in offsetInput) float64 {
	selected := in.extents[in.indicator]
	space := (in.frameExtent - selected) / 2
	front := in.scrollMargin
	for _, e := range in.extents[:in.indicator] {
		front += e
	}
	back := in.scrollMargin
	for _, e := range in.extents[in.indicator+1:] {
		back += e
	}

	switch {
	case space < 0:
		return -front
	case front < space:
		return 0
	case back < space:
		return -geom.NonNegative(in.childrenExtent - in.frameExtent)
	default:
		return -(front - space)
	}
}

// clampOffset bounds a scroll offset to [-(children-frame), 0].
func clampOffset(offset, childrenExtent, frameExtent float64) float64 {
	if childrenExtent <= frameExtent {
		return 0
	}
	minOffset := -(childrenExtent - frameExtent)
	if offset < minOffset {
		return minOffset
	}
	if offset > 0 {
		return 0
	}
	return offset
}
