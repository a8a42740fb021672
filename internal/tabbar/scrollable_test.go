package tabbar

import (
	"testing"

	"github.com/daptify14/tabgeom/internal/geom"
)

func scrollableConfig(style ScrollableLayoutStyle) Config {
	cfg := DefaultConfig()
	cfg.Mode = BarModeScrollable
	cfg.ScrollableLayoutStyle = style
	return cfg
}

func TestAverageSplitOverflowKeepsNaturalWidths(t *testing.T) {
	a := New(DefaultTheme())
	bar, items := newBar([]float64{50, 50, 500, 50})
	st := &State{}

	snap := run(t, a, bar, scrollableConfig(LayoutStyleAlwaysAverageSplit), fixedFrame(400, 56), st)

	if st.UseItemWidth {
		t.Fatalf("expected overflow to disable per-item widths")
	}
	want := []float64{50, 50, 500, 50}
	for i, item := range items {
		assertNear(t, "width", item.size.Width, want[i])
	}
	margin := DefaultTheme().ScrollMargin
	assertNear(t, "scroll margin", st.ScrollMargin, margin)
	assertNear(t, "children main size", snap.ChildrenMainSize, 650+2*margin)
	assertNear(t, "first item x", items[0].offset.X, margin)
}

func TestAverageSplitGivesShortItemsTheAverage(t *testing.T) {
	a := New(DefaultTheme())
	bar, items := newBar([]float64{20, 200, 30, 50})
	st := &State{}

	snap := run(t, a, bar, scrollableConfig(LayoutStyleAlwaysAverageSplit), fixedFrame(400, 56), st)

	if !st.UseItemWidth {
		t.Fatalf("expected per-item widths to be honoured")
	}
	if st.ScrollMargin != 0 {
		t.Fatalf("expected scroll margin to be dropped, got %v", st.ScrollMargin)
	}
	short := 200.0 / 3
	want := []float64{short, 200, short, short}
	wantX := []float64{0, short, short + 200, 2*short + 200}
	for i, item := range items {
		assertNear(t, "width", item.size.Width, want[i])
		assertNear(t, "x", item.offset.X, wantX[i])
		if item.size.Width <= 0 {
			t.Fatalf("item %d has non-positive width", i)
		}
	}
	assertNear(t, "children main size", snap.ChildrenMainSize, 400)
}

func TestAverageSplitReclassifiesAcrossPasses(t *testing.T) {
	a := New(DefaultTheme())
	st := &State{
		ItemWidths:       []float64{10, 150, 95, 45},
		ChildrenMainSize: 300 + 2*a.theme.ScrollMargin,
		ScrollMargin:     a.theme.ScrollMargin,
		UseItemWidth:     true,
	}

	a.handleAlwaysAverageSplitLayoutStyle(300, st)

	if !st.UseItemWidth {
		t.Fatalf("expected per-item widths to be honoured")
	}
	want := []float64{10, 150, 95, 45}
	for i, w := range st.ItemWidths {
		assertNear(t, "width", w, want[i])
	}
}

func TestAverageSplitGuardsEmptyPool(t *testing.T) {
	a := New(testTheme())
	st := &State{
		ItemWidths:       []float64{100, 0},
		ChildrenMainSize: 100,
		UseItemWidth:     true,
	}

	a.handleAlwaysAverageSplitLayoutStyle(100, st)

	if st.UseItemWidth {
		t.Fatalf("expected exhausted budget to disable per-item widths")
	}
	if st.ItemWidths[0] != 100 || st.ItemWidths[1] != 0 {
		t.Fatalf("expected natural widths to be kept, got %v", st.ItemWidths)
	}
}

func TestAverageSplitZeroAverageKeepsNaturalWidths(t *testing.T) {
	a := New(testTheme())
	st := &State{
		ItemWidths:   []float64{0, 0, 0},
		UseItemWidth: true,
	}

	a.handleAlwaysAverageSplitLayoutStyle(0, st)

	if st.UseItemWidth {
		t.Fatalf("expected zero average to disable per-item widths")
	}
	for i, w := range st.ItemWidths {
		if w != 0 {
			t.Fatalf("expected width %d to stay 0, got %v", i, w)
		}
	}
}

func TestSpaceBetweenOrCenterWidensItems(t *testing.T) {
	a := New(DefaultTheme())
	bar, items := newBar([]float64{40, 40, 40})
	st := &State{}

	snap := run(t, a, bar, scrollableConfig(LayoutStyleSpaceBetweenOrCenter), fixedFrame(400, 56), st)

	w := 40 + 80.0/3
	for i, item := range items {
		assertNear(t, "width", item.size.Width, w)
		assertNear(t, "x", item.offset.X, 100+float64(i)*w)
	}
	assertNear(t, "children main size", snap.ChildrenMainSize, 200)
	assertNear(t, "start", snap.Offset, 100)
}

func TestSpaceBetweenOrCenterOverHalfKeepsNatural(t *testing.T) {
	a := New(DefaultTheme())
	bar, items := newBar([]float64{100, 100, 50})
	st := &State{}

	snap := run(t, a, bar, scrollableConfig(LayoutStyleSpaceBetweenOrCenter), fixedFrame(400, 56), st)

	if st.UseItemWidth {
		t.Fatalf("expected natural widths above half the content width")
	}
	assertNear(t, "children main size", snap.ChildrenMainSize, 250)
	assertNear(t, "first item x", items[0].offset.X, 75)
}

func TestAlwaysCenter(t *testing.T) {
	t.Run("fits", func(t *testing.T) {
		a := New(DefaultTheme())
		bar, items := newBar([]float64{50, 50})
		st := &State{}
		run(t, a, bar, scrollableConfig(LayoutStyleAlwaysCenter), fixedFrame(400, 56), st)

		if st.ScrollMargin != 0 {
			t.Fatalf("expected no scroll margin, got %v", st.ScrollMargin)
		}
		assertNear(t, "first item x", items[0].offset.X, 150)
	})

	t.Run("overflows", func(t *testing.T) {
		a := New(DefaultTheme())
		bar, _ := newBar([]float64{300, 300})
		st := &State{}
		snap := run(t, a, bar, scrollableConfig(LayoutStyleAlwaysCenter), fixedFrame(400, 56), st)

		margin := DefaultTheme().ScrollMargin
		assertNear(t, "children main size", snap.ChildrenMainSize, 600+2*margin)
	})
}

func TestScrollableChildrenMainSizeMatchesWidths(t *testing.T) {
	styles := []ScrollableLayoutStyle{
		LayoutStyleAlwaysCenter,
		LayoutStyleAlwaysAverageSplit,
		LayoutStyleSpaceBetweenOrCenter,
	}
	for _, style := range styles {
		for _, widths := range [][]float64{{30, 40, 50}, {200, 300, 400}, {10, 380}} {
			a := New(DefaultTheme())
			bar, _ := newBar(widths)
			st := &State{}
			a.Measure(bar, scrollableConfig(style), fixedFrame(400, 56), st)

			assertNear(t, style.String(), sum(st.ItemWidths), st.ChildrenMainSize-2*st.ScrollMargin)
		}
	}
}

func TestScrollableSubTabMinimumWidth(t *testing.T) {
	a := New(testTheme())
	bar, items := newBar([]float64{10, 10, 10, 10, 10, 10, 10, 10}, withStyle(StyleSubTab))
	run(t, a, bar, scrollableConfig(LayoutStyleAlwaysCenter), fixedFrame(400, 56), &State{})

	for _, item := range items {
		assertNear(t, "width", item.size.Width, testTheme().SubTabBarMinWidth)
	}
}

func TestScrollableVerticalCentersWhenItFits(t *testing.T) {
	a := New(DefaultTheme())
	bar, items := newBar([]float64{40, 40})
	cfg := scrollableConfig(LayoutStyleAlwaysAverageSplit)
	cfg.Axis = geom.Vertical
	st := &State{}

	run(t, a, bar, cfg, fixedFrame(100, 400), st)

	assertNear(t, "first item y", items[0].offset.Y, 160)
	assertNear(t, "item width", items[0].size.Width, 100)
}
