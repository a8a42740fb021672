package tabbar

import (
	"math"

	"github.com/daptify14/tabgeom/internal/geom"
)

// measureFixedMode shares the content extent evenly between items, picks the
// stacking of auto bottom-tab items and lets symmetric-extensible items
// borrow width from under-filled neighbours.
func (a *Algorithm) measureFixedMode(bar Bar, cfg Config, st *State) {
	n := len(bar.Items)
	axis := cfg.Axis
	st.ScrollMargin = 0

	mainExtent := st.contentSize.Main(axis)
	if axis == geom.Vertical && bar.style() == StyleBottomTab {
		mainExtent /= 2
	}
	allocated := mainExtent / float64(n)
	st.allocated = allocated

	if axis == geom.Horizontal {
		a.applyLayoutMode(bar, allocated)
	}
	a.measureItemWidths(bar, axis, st)
	if axis == geom.Horizontal {
		a.applySymmetricExtensible(bar, allocated, cfg.RTL, st)
	} else {
		a.uniformWidths(len(bar.Items), allocated, st)
	}
	st.ChildrenMainSize = sum(st.ItemWidths)
}

// applyLayoutMode arranges the icon and label of every bottom-tab item.
// Auto items stack in a row once the allocated width exceeds the theme's
// horizontal minimum.
func (a *Algorithm) applyLayoutMode(bar Bar, allocated float64) {
	for _, item := range bar.Items {
		if item == nil {
			continue
		}
		style := item.ItemStyle()
		if style.Style != StyleBottomTab {
			continue
		}
		mode := style.LayoutMode
		if mode == LayoutModeAuto {
			mode = LayoutModeVertical
			if allocated > a.theme.HorizontalBottomTabMinWidth {
				mode = LayoutModeHorizontal
			}
		}
		if mode == LayoutModeHorizontal {
			item.Arrange(Arrangement{
				Axis:    geom.Horizontal,
				Spacing: a.theme.BottomTabHorizontalSpacing,
				Align:   style.VerticalAlign,
			})
			continue
		}
		item.Arrange(Arrangement{
			Axis:    geom.Vertical,
			Spacing: a.theme.BottomTabVerticalSpacing,
			Align:   AlignCenter,
		})
	}
}

// symmetricSpace is the per-item working set of the redistribution.
type symmetricSpace struct {
	leftBuffers   []float64
	rightBuffers  []float64
	spaceRequests []float64
}

// resolveSymmetricSpace computes what every item can lend and what every
// symmetric-extensible item asks for, then settles each interior claim to
// the smallest of the request and the two neighbouring buffers.
func resolveSymmetricSpace(natural []float64, extensible []bool, allocated float64) symmetricSpace {
	n := len(natural)
	sp := symmetricSpace{
		leftBuffers:   make([]float64, n),
		rightBuffers:  make([]float64, n),
		spaceRequests: make([]float64, n),
	}
	for i, w := range natural {
		if w <= allocated {
			half := (allocated - w) / 2
			sp.leftBuffers[i], sp.rightBuffers[i] = half, half
		} else if extensible[i] && i > 0 && i < n-1 {
			sp.spaceRequests[i] = (w - allocated) / 2
		}
	}
	sp.leftBuffers[0] = 0
	sp.rightBuffers[n-1] = 0

	used := make([]float64, n)
	for i := 1; i < n-1; i++ {
		used[i] = math.Min(math.Min(sp.rightBuffers[i-1], sp.leftBuffers[i+1]), sp.spaceRequests[i])
	}
	for i := range n {
		sp.spaceRequests[i] = used[i]
		if i > 0 {
			sp.rightBuffers[i-1] = used[i]
		}
		if i < n-1 {
			sp.leftBuffers[i+1] = used[i]
		}
	}
	return sp
}

// applySymmetricExtensible resolves the final fixed-mode widths. Buffers are
// computed in logical order, so rtl swaps them before they become visual
// content margins.
func (a *Algorithm) applySymmetricExtensible(bar Bar, allocated float64, rtl bool, st *State) {
	n := len(bar.Items)
	if n <= 2 || len(st.ItemWidths) != n {
		if len(st.ItemWidths) != n {
			a.logger.Debug("item width count mismatch, using uniform width",
				"items", n, "widths", len(st.ItemWidths))
		}
		a.uniformWidths(n, allocated, st)
		return
	}

	extensible := make([]bool, n)
	for i, item := range bar.Items {
		if item == nil {
			continue
		}
		style := item.ItemStyle()
		extensible[i] = style.Style == StyleBottomTab && style.SymmetricExtensible
	}

	sp := resolveSymmetricSpace(st.ItemWidths, extensible, allocated)
	for i, item := range bar.Items {
		switch {
		case sp.spaceRequests[i] > 0:
			st.ItemWidths[i] = allocated + 2*sp.spaceRequests[i]
		case sp.leftBuffers[i] > 0 || sp.rightBuffers[i] > 0:
			left, right := sp.leftBuffers[i], sp.rightBuffers[i]
			st.ItemWidths[i] = allocated - left - right
			if item != nil && item.ItemStyle().Style == StyleBottomTab && left != right {
				if rtl {
					left, right = right, left
				}
				item.SetContentMargins(centeringMargins(left, right))
			}
		default:
			st.ItemWidths[i] = allocated
		}
	}
	st.UseItemWidth = true
}

// centeringMargins keeps content centred on the originally allocated slot
// after an item gave away different amounts on its two sides.
func centeringMargins(left, right float64) ContentMargins {
	var e geom.Edges
	if left > right {
		e.Right = left - right
	} else {
		e.Left = right - left
	}
	return ContentMargins{Icon: e, Label: e}
}

func (a *Algorithm) uniformWidths(n int, allocated float64, st *State) {
	st.ItemWidths = resize(st.ItemWidths, n)
	for i := range st.ItemWidths {
		st.ItemWidths[i] = allocated
	}
	st.UseItemWidth = false
}
