// Package geom holds the float geometry primitives shared by the tab bar
// solver and the host node implementations.
package geom

import "math"

// Inf is the unconstrained extent used when a child may grow freely along an axis.
var Inf = math.Inf(1)

// Axis is the direction along which items are arranged.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Cross returns the perpendicular axis.
func (a Axis) Cross() Axis {
	if a == Vertical {
		return Horizontal
	}
	return Vertical
}

// SizeF is a width/height pair.
type SizeF struct {
	Width, Height float64
}

// Main returns the extent along axis.
func (s SizeF) Main(axis Axis) float64 {
	if axis == Vertical {
		return s.Height
	}
	return s.Width
}

// Cross returns the extent perpendicular to axis.
func (s SizeF) Cross(axis Axis) float64 {
	return s.Main(axis.Cross())
}

// SetMain sets the extent along axis.
func (s *SizeF) SetMain(axis Axis, v float64) {
	if axis == Vertical {
		s.Height = v
		return
	}
	s.Width = v
}

// SetCross sets the extent perpendicular to axis.
func (s *SizeF) SetCross(axis Axis, v float64) {
	s.SetMain(axis.Cross(), v)
}

// AxisSize builds a SizeF from main and cross extents.
func AxisSize(axis Axis, main, cross float64) SizeF {
	var s SizeF
	s.SetMain(axis, main)
	s.SetCross(axis, cross)
	return s
}

// OffsetF is a position relative to the parent's top-left corner.
type OffsetF struct {
	X, Y float64
}

// Main returns the coordinate along axis.
func (o OffsetF) Main(axis Axis) float64 {
	if axis == Vertical {
		return o.Y
	}
	return o.X
}

// AxisOffset builds an OffsetF from main and cross coordinates.
func AxisOffset(axis Axis, main, cross float64) OffsetF {
	if axis == Vertical {
		return OffsetF{X: cross, Y: main}
	}
	return OffsetF{X: main, Y: cross}
}

// Edges is a padding or margin on all four sides.
type Edges struct {
	Left, Top, Right, Bottom float64
}

// Horizontal returns Left+Right.
func (e Edges) Horizontal() float64 { return e.Left + e.Right }

// Vertical returns Top+Bottom.
func (e Edges) Vertical() float64 { return e.Top + e.Bottom }

// Along returns the total edge extent along axis.
func (e Edges) Along(axis Axis) float64 {
	if axis == Vertical {
		return e.Vertical()
	}
	return e.Horizontal()
}

// Leading returns the edge at the start of axis.
func (e Edges) Leading(axis Axis) float64 {
	if axis == Vertical {
		return e.Top
	}
	return e.Left
}

// Uniform returns Edges with v on every side.
func Uniform(v float64) Edges {
	return Edges{Left: v, Top: v, Right: v, Bottom: v}
}

// OptionalSize carries an ideal size whose components may be unset.
type OptionalSize struct {
	Width, Height       float64
	HasWidth, HasHeight bool
}

// Main returns the component along axis and whether it is set.
func (o OptionalSize) Main(axis Axis) (float64, bool) {
	if axis == Vertical {
		return o.Height, o.HasHeight
	}
	return o.Width, o.HasWidth
}

// SetWidth sets the width component.
func (o *OptionalSize) SetWidth(w float64) {
	o.Width, o.HasWidth = w, true
}

// SetHeight sets the height component.
func (o *OptionalSize) SetHeight(h float64) {
	o.Height, o.HasHeight = h, true
}

// Constraint is the layout constraint a parent hands to a child.
type Constraint struct {
	MinSize         SizeF
	MaxSize         SizeF
	SelfIdealSize   OptionalSize
	ParentIdealSize OptionalSize
}

// Loose returns a constraint bounded only by max.
func Loose(max SizeF) Constraint {
	return Constraint{MaxSize: max}
}

// Rigid returns a constraint that can only be satisfied by size.
func Rigid(size SizeF) Constraint {
	c := Constraint{MinSize: size, MaxSize: size}
	c.SelfIdealSize.SetWidth(size.Width)
	c.SelfIdealSize.SetHeight(size.Height)
	return c
}

// Constrain clamps size into [MinSize, MaxSize].
func (c Constraint) Constrain(size SizeF) SizeF {
	return SizeF{
		Width:  clamp(size.Width, c.MinSize.Width, c.MaxSize.Width),
		Height: clamp(size.Height, c.MinSize.Height, c.MaxSize.Height),
	}
}

// Resolve returns the ideal size where set, falling back to natural, then
// constrained to the min/max bounds.
func (c Constraint) Resolve(natural SizeF) SizeF {
	if c.SelfIdealSize.HasWidth {
		natural.Width = c.SelfIdealSize.Width
	}
	if c.SelfIdealSize.HasHeight {
		natural.Height = c.SelfIdealSize.Height
	}
	return c.Constrain(natural)
}

func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// NonNegative clamps v to zero from below.
func NonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// Epsilon is the tolerance used for float comparisons of layout extents.
const Epsilon = 1e-3

// NearEqual reports whether a and b differ by less than Epsilon.
func NearEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
