package tabbar

import "github.com/daptify14/tabgeom/internal/geom"

// measureItemWidths measures every item with an unconstrained main axis and
// records the natural extents. Bottom-tab items have their icon and label
// margins reset first so the natural extent only reflects their content.
func (a *Algorithm) measureItemWidths(bar Bar, axis geom.Axis, st *State) {
	cross := st.contentSize.Cross(axis)
	st.ItemWidths = resize(st.ItemWidths, len(bar.Items))
	total := 0.0
	for i, item := range bar.Items {
		if item == nil {
			continue
		}
		style := item.ItemStyle()
		if style.Style == StyleBottomTab {
			item.SetContentMargins(ContentMargins{})
		}

		c := geom.Constraint{MaxSize: geom.AxisSize(axis, geom.Inf, cross)}
		c.SelfIdealSize = idealCross(axis, cross)
		if style.Style == StyleSubTab && axis == geom.Horizontal {
			c.MinSize.Width = a.theme.SubTabBarMinWidth
		}
		item.Measure(c)

		st.ItemWidths[i] = item.Size().Main(axis)
		total += st.ItemWidths[i]
	}
	st.ChildrenMainSize = 2*st.ScrollMargin + total
}

// measureItems commits every item to its resolved main extent and the
// content cross extent.
func (a *Algorithm) measureItems(bar Bar, axis geom.Axis, st *State) {
	cross := st.contentSize.Cross(axis)
	for i, item := range bar.Items {
		if item == nil || i >= len(st.ItemWidths) {
			continue
		}
		item.Measure(geom.Rigid(geom.AxisSize(axis, st.ItemWidths[i], cross)))
	}
}

// measureMaxHeight measures every item at its resolved width with an
// unconstrained height and returns the tallest result.
func (a *Algorithm) measureMaxHeight(bar Bar, st *State) float64 {
	maxHeight := 0.0
	for i, item := range bar.Items {
		if item == nil || i >= len(st.ItemWidths) {
			continue
		}
		c := geom.Constraint{MaxSize: geom.SizeF{Width: st.ItemWidths[i], Height: geom.Inf}}
		c.SelfIdealSize.SetWidth(st.ItemWidths[i])
		item.Measure(c)
		maxHeight = max(maxHeight, item.Size().Height)
	}
	return maxHeight
}

func idealCross(axis geom.Axis, cross float64) geom.OptionalSize {
	var ideal geom.OptionalSize
	if axis == geom.Vertical {
		ideal.SetWidth(cross)
	} else {
		ideal.SetHeight(cross)
	}
	return ideal
}

func resize(s []float64, n int) []float64 {
	if cap(s) < n {
		return make([]float64, n)
	}
	s = s[:n]
	clear(s)
	return s
}

func sum(s []float64) float64 {
	total := 0.0
	for _, v := range s {
		total += v
	}
	return total
}
