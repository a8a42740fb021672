package config

import (
	"fmt"

	"github.com/daptify14/tabgeom/internal/geom"
	"github.com/daptify14/tabgeom/internal/tabbar"
)

func ParseMode(s string) (tabbar.BarMode, error) {
	switch s {
	case "", "fixed":
		return tabbar.BarModeFixed, nil
	case "scrollable":
		return tabbar.BarModeScrollable, nil
	}
	return 0, fmt.Errorf("invalid mode %q (valid: fixed, scrollable)", s)
}

func ParseAxis(s string) (geom.Axis, error) {
	switch s {
	case "", "horizontal":
		return geom.Horizontal, nil
	case "vertical":
		return geom.Vertical, nil
	}
	return 0, fmt.Errorf("invalid axis %q (valid: horizontal, vertical)", s)
}

func ParseLayoutStyle(s string) (tabbar.ScrollableLayoutStyle, error) {
	switch s {
	case "", "always_center":
		return tabbar.LayoutStyleAlwaysCenter, nil
	case "always_average_split":
		return tabbar.LayoutStyleAlwaysAverageSplit, nil
	case "space_between_or_center":
		return tabbar.LayoutStyleSpaceBetweenOrCenter, nil
	}
	return 0, fmt.Errorf("invalid layout_style %q (valid: always_center, always_average_split, space_between_or_center)", s)
}

func ParseStyle(s string) (tabbar.Style, error) {
	switch s {
	case "", "default":
		return tabbar.StyleDefault, nil
	case "subtab", "sub_tab":
		return tabbar.StyleSubTab, nil
	case "bottomtab", "bottom_tab":
		return tabbar.StyleBottomTab, nil
	case "none":
		return tabbar.StyleNone, nil
	}
	return 0, fmt.Errorf("invalid style %q (valid: default, subtab, bottomtab, none)", s)
}

func ParseLayoutMode(s string) (tabbar.LayoutMode, error) {
	switch s {
	case "", "auto":
		return tabbar.LayoutModeAuto, nil
	case "vertical":
		return tabbar.LayoutModeVertical, nil
	case "horizontal":
		return tabbar.LayoutModeHorizontal, nil
	}
	return 0, fmt.Errorf("invalid layout_mode %q (valid: auto, vertical, horizontal)", s)
}

func ParseAlign(s string) (tabbar.Align, error) {
	switch s {
	case "", "center":
		return tabbar.AlignCenter, nil
	case "start", "top":
		return tabbar.AlignStart, nil
	case "end", "bottom":
		return tabbar.AlignEnd, nil
	}
	return 0, fmt.Errorf("invalid vertical_align %q (valid: center, start, end)", s)
}
