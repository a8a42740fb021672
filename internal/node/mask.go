package node

import "github.com/daptify14/tabgeom/internal/geom"

// Mask is an overlay box that mirrors the frame of one tab item.
type Mask struct {
	size   geom.SizeF
	offset geom.OffsetF
}

func (m *Mask) Measure(c geom.Constraint) { m.size = c.Resolve(geom.SizeF{}) }

func (m *Mask) Size() geom.SizeF { return m.size }

func (m *Mask) Offset() geom.OffsetF { return m.offset }

func (m *Mask) SetOffset(o geom.OffsetF) { m.offset = o }

func (m *Mask) Layout() {}

// Collapsed reports whether the mask has no visible extent.
func (m *Mask) Collapsed() bool {
	return m.size.Width <= 0 || m.size.Height <= 0
}
