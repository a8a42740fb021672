package tabbar

import "github.com/daptify14/tabgeom/internal/geom"

// State is the per-bar layout state threaded from Measure to Layout and
// carried into the next frame. The zero value is ready for the first pass.
type State struct {
	// CurrentOffset is the scroll position along the main axis, always in
	// [-(ChildrenMainSize-frame), 0] after Layout.
	CurrentOffset            float64
	ChildrenMainSize         float64
	PreviousChildrenMainSize float64
	// Indicator is the index laid out by the last pass.
	Indicator    int
	ScrollMargin float64
	// MaxHeight caches the tallest item when adaptive height is on.
	MaxHeight float64
	// UseItemWidth reports whether ItemWidths are honoured as per-item
	// extents or a uniform extent is used instead.
	UseItemWidth bool
	// RequestRecenter forces the next Layout to re-resolve the scroll
	// offset as if the indicator had changed. Layout clears it.
	RequestRecenter bool

	// ItemWidths are the per-item main-axis extents of the current pass.
	ItemWidths []float64
	FrameSize  geom.SizeF

	contentStart geom.OffsetF
	contentSize  geom.SizeF
	gridPadding  float64
	allocated    float64
	measured     bool
}

// Snapshot is the committed geometry of one pass.
type Snapshot struct {
	FrameSize geom.SizeF
	// Offset is the main-axis start applied to the first item, relative
	// to the content origin and before the scroll margin.
	Offset           float64
	ScrollOffset     float64
	ChildrenMainSize float64
	UseItemWidth     bool
	Items            []Frame
	SelectedMask     Frame
	UnselectedMask   Frame
}

// Frame is a node's resolved offset and size.
type Frame struct {
	Offset geom.OffsetF
	Size   geom.SizeF
}
