package tabbar

// Theme holds the design constants the solver reads during layout.
// All extents are in vp.
type Theme struct {
	BarDefaultHeight          float64
	BottomTabBarDefaultHeight float64
	BarDefaultWidth           float64
	SubTabBarMinWidth         float64
	// HorizontalBottomTabMinWidth is the allocated width above which an auto
	// bottom-tab item stacks icon and label in a row.
	HorizontalBottomTabMinWidth float64
	BottomTabHorizontalSpacing  float64
	BottomTabVerticalSpacing    float64
	ScrollMargin                float64

	// Breakpoints are the frame widths at which the grid switches from
	// small to medium and from medium to large.
	BreakpointMedium float64
	BreakpointLarge  float64
	SmColumns        int
	MdColumns        int
	LgColumns        int
}

// DefaultTheme returns the stock tab bar constants.
func DefaultTheme() Theme {
	return Theme{
		BarDefaultHeight:            56,
		BottomTabBarDefaultHeight:   56,
		BarDefaultWidth:             96,
		SubTabBarMinWidth:           64,
		HorizontalBottomTabMinWidth: 104,
		BottomTabHorizontalSpacing:  8,
		BottomTabVerticalSpacing:    2,
		ScrollMargin:                12,
		BreakpointMedium:            600,
		BreakpointLarge:             840,
		SmColumns:                   4,
		MdColumns:                   8,
		LgColumns:                   12,
	}
}
