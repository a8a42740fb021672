package tabbar

import "github.com/daptify14/tabgeom/internal/geom"

// BarMode selects how the main-axis extent is shared between items.
type BarMode uint8

const (
	// BarModeFixed divides the content extent evenly between items.
	BarModeFixed BarMode = iota
	// BarModeScrollable keeps natural item extents and scrolls on overflow.
	BarModeScrollable
)

func (m BarMode) String() string {
	if m == BarModeScrollable {
		return "scrollable"
	}
	return "fixed"
}

// Style is the per-item tab bar style tag.
type Style uint8

const (
	StyleDefault Style = iota
	StyleSubTab
	StyleBottomTab
	StyleNone
)

func (s Style) String() string {
	switch s {
	case StyleSubTab:
		return "subtab"
	case StyleBottomTab:
		return "bottomtab"
	case StyleNone:
		return "none"
	default:
		return "default"
	}
}

// LayoutMode is the icon/label stacking of a bottom-tab item.
type LayoutMode uint8

const (
	LayoutModeAuto LayoutMode = iota
	LayoutModeVertical
	LayoutModeHorizontal
)

func (m LayoutMode) String() string {
	switch m {
	case LayoutModeVertical:
		return "vertical"
	case LayoutModeHorizontal:
		return "horizontal"
	default:
		return "auto"
	}
}

// Align is a cross-axis alignment inside an item.
type Align uint8

const (
	AlignCenter Align = iota
	AlignStart
	AlignEnd
)

func (a Align) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignEnd:
		return "end"
	default:
		return "center"
	}
}

// ScrollableLayoutStyle selects the scrollable-mode distribution policy.
type ScrollableLayoutStyle uint8

const (
	LayoutStyleAlwaysCenter ScrollableLayoutStyle = iota
	LayoutStyleAlwaysAverageSplit
	LayoutStyleSpaceBetweenOrCenter
)

func (s ScrollableLayoutStyle) String() string {
	switch s {
	case LayoutStyleAlwaysAverageSplit:
		return "always_average_split"
	case LayoutStyleSpaceBetweenOrCenter:
		return "space_between_or_center"
	default:
		return "always_center"
	}
}

// ItemStyle is the style information the solver reads from every item.
// LayoutMode, VerticalAlign and SymmetricExtensible only apply to
// bottom-tab items.
type ItemStyle struct {
	Style               Style
	LayoutMode          LayoutMode
	VerticalAlign       Align
	SymmetricExtensible bool
}

// GridOption configures breakpoint-driven grid alignment of the bar content.
// A column count is valid when it is positive, even, and no larger than the
// breakpoint's column total.
type GridOption struct {
	Sm, Md, Lg int
	Gutter     float64
	Margin     float64
}

// Config is the tab bar's resolved configuration for one layout pass.
type Config struct {
	Axis                  geom.Axis
	Mode                  BarMode
	ScrollableLayoutStyle ScrollableLayoutStyle
	Padding               geom.Edges
	// GridAlign enables grid alignment on horizontal bars when non-nil.
	GridAlign      *GridOption
	AdaptiveHeight bool
	RTL            bool
	// Indicator is the selected item index.
	Indicator int
	// SelectedMask and UnselectedMask are the item indices mirrored by the
	// mask overlays. A negative index collapses the mask.
	SelectedMask   int
	UnselectedMask int
}

// DefaultConfig returns a horizontal fixed bar with both masks collapsed.
func DefaultConfig() Config {
	return Config{SelectedMask: -1, UnselectedMask: -1}
}

// Box is the host contract for any laid-out node.
type Box interface {
	// Measure asks the node to resolve its frame size against c.
	Measure(c geom.Constraint)
	Size() geom.SizeF
	Offset() geom.OffsetF
	SetOffset(geom.OffsetF)
	// Layout commits the node's own children after its offset is known.
	Layout()
}

// Arrangement is the flex arrangement applied to a bottom-tab item's icon and label.
type Arrangement struct {
	Axis    geom.Axis
	Spacing float64
	Align   Align
}

// ContentMargins are the margins of a bottom-tab item's icon and label.
type ContentMargins struct {
	Icon  geom.Edges
	Label geom.Edges
}

// Item is a tab item node.
type Item interface {
	Box
	ItemStyle() ItemStyle
	// Arrange applies the icon/label stacking used by bottom-tab items.
	Arrange(Arrangement)
	// SetContentMargins replaces the icon and label margins.
	SetContentMargins(ContentMargins)
}

// Bar is the set of nodes the solver lays out. Masks may be nil.
type Bar struct {
	Items          []Item
	SelectedMask   Box
	UnselectedMask Box
}

// style returns the bar-level style, taken from the first item.
func (b Bar) style() Style {
	if len(b.Items) == 0 || b.Items[0] == nil {
		return StyleDefault
	}
	return b.Items[0].ItemStyle().Style
}
