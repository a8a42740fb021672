package tabbar

import (
	"testing"

	"github.com/daptify14/tabgeom/internal/geom"
)

// ── Fake Nodes ──────────────────────────────────────────────────────

type fakeItem struct {
	natural     geom.SizeF
	style       ItemStyle
	arrangement Arrangement
	arranged    bool
	margins     ContentMargins
	size        geom.SizeF
	offset      geom.OffsetF
	layouts     int
}

func (f *fakeItem) Measure(c geom.Constraint)          { f.size = c.Resolve(f.natural) }
func (f *fakeItem) Size() geom.SizeF                   { return f.size }
func (f *fakeItem) Offset() geom.OffsetF               { return f.offset }
func (f *fakeItem) SetOffset(o geom.OffsetF)           { f.offset = o }
func (f *fakeItem) Layout()                            { f.layouts++ }
func (f *fakeItem) ItemStyle() ItemStyle               { return f.style }
func (f *fakeItem) SetContentMargins(m ContentMargins) { f.margins = m }
func (f *fakeItem) Arrange(a Arrangement) {
	f.arrangement = a
	f.arranged = true
}

type fakeBox struct {
	size   geom.SizeF
	offset geom.OffsetF
}

func (b *fakeBox) Measure(c geom.Constraint) { b.size = c.Resolve(geom.SizeF{}) }
func (b *fakeBox) Size() geom.SizeF          { return b.size }
func (b *fakeBox) Offset() geom.OffsetF      { return b.offset }
func (b *fakeBox) SetOffset(o geom.OffsetF)  { b.offset = o }
func (b *fakeBox) Layout()                   {}

// ── Builders ────────────────────────────────────────────────────────

type barOption func(*fakeItem)

func withStyle(s Style) barOption {
	return func(f *fakeItem) { f.style.Style = s }
}

// newBar builds fake items with the given natural widths and a height of 40.
func newBar(widths []float64, opts ...barOption) (Bar, []*fakeItem) {
	items := make([]*fakeItem, len(widths))
	bar := Bar{Items: make([]Item, len(widths))}
	for i, w := range widths {
		f := &fakeItem{natural: geom.SizeF{Width: w, Height: 40}}
		for _, opt := range opts {
			opt(f)
		}
		items[i] = f
		bar.Items[i] = f
	}
	return bar, items
}

// fixedFrame is a constraint with both ideal extents set.
func fixedFrame(w, h float64) geom.Constraint {
	c := geom.Loose(geom.SizeF{Width: 10000, Height: 10000})
	c.SelfIdealSize.SetWidth(w)
	c.SelfIdealSize.SetHeight(h)
	return c
}

func testTheme() Theme {
	th := DefaultTheme()
	th.ScrollMargin = 0
	return th
}

func run(t *testing.T, a *Algorithm, bar Bar, cfg Config, c geom.Constraint, st *State) Snapshot {
	t.Helper()
	a.Measure(bar, cfg, c, st)
	return a.Layout(bar, cfg, st)
}

func assertNear(t *testing.T, what string, got, want float64) {
	t.Helper()
	if !geom.NearEqual(got, want) {
		t.Fatalf("%s: expected %.3f, got %.3f", what, want, got)
	}
}
