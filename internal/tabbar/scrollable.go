package tabbar

import "github.com/daptify14/tabgeom/internal/geom"

// measureScrollableMode keeps natural item extents and applies the
// configured layout style to horizontal bars.
func (a *Algorithm) measureScrollableMode(bar Bar, cfg Config, st *State) {
	st.ScrollMargin = a.theme.ScrollMargin
	st.UseItemWidth = true
	a.measureItemWidths(bar, cfg.Axis, st)

	contentMain := st.contentSize.Main(cfg.Axis)
	if cfg.Axis == geom.Vertical {
		a.handleAlwaysCenterLayoutStyle(contentMain, st)
	} else {
		switch cfg.ScrollableLayoutStyle {
		case LayoutStyleAlwaysAverageSplit:
			a.handleAlwaysAverageSplitLayoutStyle(contentMain, st)
		case LayoutStyleSpaceBetweenOrCenter:
			a.handleSpaceBetweenOrCenterLayoutStyle(contentMain, st)
		default:
			a.handleAlwaysCenterLayoutStyle(contentMain, st)
		}
	}
	st.ChildrenMainSize = sum(st.ItemWidths) + 2*st.ScrollMargin
}

func naturalTotal(st *State) float64 {
	return st.ChildrenMainSize - 2*st.ScrollMargin
}

// handleAlwaysAverageSplitLayoutStyle gives every short item the same width
// and lets long items keep their natural width. Items are reclassified as
// long until the average over the remaining pool stops changing.
func (a *Algorithm) handleAlwaysAverageSplitLayoutStyle(contentWidth float64, st *State) {
	n := len(st.ItemWidths)
	if n == 0 || naturalTotal(st) > contentWidth {
		st.UseItemWidth = false
		return
	}
	st.ScrollMargin = 0

	long := make([]bool, n)
	pool := n
	budget := contentWidth
	average := budget / float64(pool)
	for {
		reclassified := false
		for i, w := range st.ItemWidths {
			if long[i] || w <= average {
				continue
			}
			long[i] = true
			pool--
			budget -= w
			reclassified = true
		}
		if !reclassified {
			break
		}
		if pool <= 0 || budget <= 0 {
			a.logger.Debug("average split left no room for short items, keeping natural widths",
				"pool", pool, "budget", budget)
			st.UseItemWidth = false
			return
		}
		average = budget / float64(pool)
	}
	if average <= 0 {
		a.logger.Debug("average split produced no width, keeping natural widths",
			"average", average)
		st.UseItemWidth = false
		return
	}

	for i := range st.ItemWidths {
		if !long[i] {
			st.ItemWidths[i] = average
		}
	}
}

// handleSpaceBetweenOrCenterLayoutStyle widens every item equally so the
// items fill half the content width. Items that already need more than half
// keep their natural width.
func (a *Algorithm) handleSpaceBetweenOrCenterLayoutStyle(contentWidth float64, st *State) {
	n := len(st.ItemWidths)
	total := naturalTotal(st)
	if n == 0 || total > contentWidth {
		st.UseItemWidth = false
		return
	}
	st.ScrollMargin = 0
	if total > contentWidth/2 {
		st.UseItemWidth = false
		return
	}
	extra := (contentWidth/2 - total) / float64(n)
	for i := range st.ItemWidths {
		st.ItemWidths[i] += extra
	}
}

// handleAlwaysCenterLayoutStyle drops the scroll margins when the items fit
// so they can be centred; otherwise the bar scrolls.
func (a *Algorithm) handleAlwaysCenterLayoutStyle(contentWidth float64, st *State) {
	if naturalTotal(st) <= contentWidth {
		st.ScrollMargin = 0
	}
}
