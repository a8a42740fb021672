package tabbar

import "github.com/daptify14/tabgeom/internal/geom"

// Breakpoint is the width class of a bar frame.
type Breakpoint uint8

const (
	BreakpointSmall Breakpoint = iota
	BreakpointMedium
	BreakpointLarge
)

func (b Breakpoint) String() string {
	switch b {
	case BreakpointMedium:
		return "md"
	case BreakpointLarge:
		return "lg"
	default:
		return "sm"
	}
}

// BreakpointFor returns the width class of a frame width.
func (t Theme) BreakpointFor(width float64) Breakpoint {
	switch {
	case width < t.BreakpointMedium:
		return BreakpointSmall
	case width < t.BreakpointLarge:
		return BreakpointMedium
	default:
		return BreakpointLarge
	}
}

func (t Theme) maxColumns(bp Breakpoint) int {
	switch bp {
	case BreakpointMedium:
		return t.MdColumns
	case BreakpointLarge:
		return t.LgColumns
	default:
		return t.SmColumns
	}
}

func (o GridOption) columns(bp Breakpoint) int {
	switch bp {
	case BreakpointMedium:
		return o.Md
	case BreakpointLarge:
		return o.Lg
	default:
		return o.Sm
	}
}

// ApplyBarGridAlign returns the horizontal padding that centres the bar
// content on the configured number of grid columns. Invalid column counts
// yield zero padding.
func ApplyBarGridAlign(opt GridOption, frame geom.SizeF, theme Theme) float64 {
	bp := theme.BreakpointFor(frame.Width)
	columns := opt.columns(bp)
	maxColumns := theme.maxColumns(bp)
	if columns <= 0 || columns%2 != 0 || columns > maxColumns || maxColumns <= 0 {
		return 0
	}
	gutter := geom.NonNegative(opt.Gutter)
	margin := geom.NonNegative(opt.Margin)
	columnWidth := (frame.Width - 2*margin - float64(maxColumns-1)*gutter) / float64(maxColumns)
	if columnWidth <= 0 {
		return 0
	}
	columnsWidth := float64(columns)*columnWidth + float64(columns-1)*gutter
	return geom.NonNegative((frame.Width - columnsWidth) / 2)
}
