package tabbar

import (
	"bytes"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/daptify14/tabgeom/internal/geom"
)

func TestLayoutScrollsToSelectedItem(t *testing.T) {
	a := New(testTheme())
	bar, items := newBar([]float64{100, 150, 250, 100})
	cfg := scrollableConfig(LayoutStyleAlwaysCenter)
	st := &State{}

	snap := run(t, a, bar, cfg, fixedFrame(300, 56), st)
	assertNear(t, "initial offset", snap.ScrollOffset, 0)

	cfg.Indicator = 2
	snap = run(t, a, bar, cfg, fixedFrame(300, 56), st)

	assertNear(t, "offset", snap.ScrollOffset, -225)
	assertNear(t, "selected x", items[2].offset.X, 25)
	if st.Indicator != 2 {
		t.Fatalf("expected state indicator 2, got %d", st.Indicator)
	}
}

func TestLayoutIsIdempotent(t *testing.T) {
	configs := map[string]Config{
		"fixed":      DefaultConfig(),
		"scrollable": scrollableConfig(LayoutStyleAlwaysCenter),
		"average":    scrollableConfig(LayoutStyleAlwaysAverageSplit),
	}
	for name, cfg := range configs {
		t.Run(name, func(t *testing.T) {
			a := New(DefaultTheme())
			bar, _ := newBar([]float64{120, 80, 200, 60, 90}, withStyle(StyleBottomTab))
			cfg.Indicator = 3
			cfg.SelectedMask = 3
			bar.SelectedMask = &fakeBox{}
			st := &State{}

			first := run(t, a, bar, cfg, fixedFrame(320, 56), st)
			second := run(t, a, bar, cfg, fixedFrame(320, 56), st)

			if !reflect.DeepEqual(first, second) {
				t.Fatalf("layout drifted between passes:\nfirst:  %+v\nsecond: %+v", first, second)
			}
		})
	}
}

func TestScrollOffsetStaysClamped(t *testing.T) {
	widths := []float64{90, 40, 300, 70, 150, 20, 260, 80}
	for _, style := range []Style{StyleDefault, StyleSubTab, StyleBottomTab} {
		a := New(DefaultTheme())
		bar, _ := newBar(widths, withStyle(style))
		cfg := scrollableConfig(LayoutStyleAlwaysCenter)
		st := &State{}
		for _, indicator := range []int{0, 7, 2, 5, 1, 6, 3, 4, 0} {
			cfg.Indicator = indicator
			snap := run(t, a, bar, cfg, fixedFrame(400, 56), st)

			frame := 400.0
			if st.ChildrenMainSize > frame {
				if st.CurrentOffset > 0 || st.CurrentOffset < -(st.ChildrenMainSize-frame) {
					t.Fatalf("style %s indicator %d: offset %v outside [-%v, 0]",
						style, indicator, st.CurrentOffset, st.ChildrenMainSize-frame)
				}
			} else if st.CurrentOffset != 0 {
				t.Fatalf("expected zero offset when content fits, got %v", st.CurrentOffset)
			}
			if snap.ScrollOffset != st.CurrentOffset {
				t.Fatalf("snapshot offset %v does not match state %v", snap.ScrollOffset, st.CurrentOffset)
			}
		}
	}
}

func TestLayoutReclampsAfterFrameGrows(t *testing.T) {
	a := New(testTheme())
	bar, _ := newBar([]float64{100, 150, 250, 100})
	cfg := scrollableConfig(LayoutStyleAlwaysCenter)
	cfg.Indicator = 3
	st := &State{}

	run(t, a, bar, cfg, fixedFrame(300, 56), st)
	assertNear(t, "offset", st.CurrentOffset, -300)

	run(t, a, bar, cfg, fixedFrame(500, 56), st)
	assertNear(t, "offset after resize", st.CurrentOffset, -100)
}

func TestRequestRecenter(t *testing.T) {
	a := New(testTheme())
	bar, _ := newBar([]float64{100, 150, 250, 100})
	cfg := scrollableConfig(LayoutStyleAlwaysCenter)
	cfg.Indicator = 2
	st := &State{}
	run(t, a, bar, cfg, fixedFrame(300, 56), st)

	st.CurrentOffset = -10
	run(t, a, bar, cfg, fixedFrame(300, 56), st)
	assertNear(t, "kept offset", st.CurrentOffset, -10)

	st.RequestRecenter = true
	run(t, a, bar, cfg, fixedFrame(300, 56), st)
	assertNear(t, "recentred offset", st.CurrentOffset, -225)
	if st.RequestRecenter {
		t.Fatalf("expected layout to clear the recentre request")
	}
}

func TestMasksMirrorItems(t *testing.T) {
	a := New(testTheme())
	bar, items := newBar([]float64{40, 40, 40})
	selected, unselected := &fakeBox{}, &fakeBox{}
	bar.SelectedMask, bar.UnselectedMask = selected, unselected
	cfg := DefaultConfig()
	cfg.SelectedMask = 1

	snap := run(t, a, bar, cfg, fixedFrame(300, 56), &State{})

	if selected.offset != items[1].offset || selected.size != items[1].size {
		t.Fatalf("selected mask %+v/%+v does not mirror item 1 %+v/%+v",
			selected.offset, selected.size, items[1].offset, items[1].size)
	}
	if unselected.size != (geom.SizeF{}) || unselected.offset != (geom.OffsetF{}) {
		t.Fatalf("expected collapsed unselected mask, got %+v at %+v", unselected.size, unselected.offset)
	}
	if snap.SelectedMask.Size != items[1].size {
		t.Fatalf("snapshot selected mask size %+v, want %+v", snap.SelectedMask.Size, items[1].size)
	}
}

func TestMaskIndexOutOfRangeCollapses(t *testing.T) {
	a := New(testTheme())
	bar, _ := newBar([]float64{40, 40, 40})
	mask := &fakeBox{size: geom.SizeF{Width: 9, Height: 9}}
	bar.SelectedMask = mask
	cfg := DefaultConfig()
	cfg.SelectedMask = 7

	run(t, a, bar, cfg, fixedFrame(300, 56), &State{})

	if mask.size != (geom.SizeF{}) {
		t.Fatalf("expected collapsed mask, got %+v", mask.size)
	}
}

func TestAdaptiveHeight(t *testing.T) {
	a := New(testTheme())
	bar, items := newBar([]float64{50, 50, 50})
	items[0].natural.Height = 30
	items[1].natural.Height = 70
	items[2].natural.Height = 50
	cfg := DefaultConfig()
	cfg.AdaptiveHeight = true
	cfg.Padding = geom.Edges{Top: 4, Bottom: 4}
	c := geom.Loose(geom.SizeF{Width: 1000, Height: 200})
	c.SelfIdealSize.SetWidth(300)
	st := &State{}

	snap := run(t, a, bar, cfg, c, st)

	assertNear(t, "max height", st.MaxHeight, 70)
	assertNear(t, "frame height", snap.FrameSize.Height, 78)
	for _, item := range items {
		assertNear(t, "item height", item.size.Height, 70)
		assertNear(t, "item y", item.offset.Y, 4)
	}
}

func TestDefaultFrameHeight(t *testing.T) {
	a := New(testTheme())
	bar, _ := newBar([]float64{40, 40, 40})
	c := geom.Loose(geom.SizeF{Width: 300, Height: 500})

	size := a.Measure(bar, DefaultConfig(), c, &State{})

	if size != (geom.SizeF{Width: 300, Height: testTheme().BarDefaultHeight}) {
		t.Fatalf("unexpected frame size %+v", size)
	}
}

func TestCrossAxisCentering(t *testing.T) {
	a := New(testTheme())
	bar, items := newBar([]float64{40, 40, 40})
	cfg := scrollableConfig(LayoutStyleAlwaysCenter)
	cfg.Padding = geom.Edges{Left: 10, Top: 6, Bottom: 2}

	run(t, a, bar, cfg, fixedFrame(300, 56), &State{})

	assertNear(t, "item height", items[0].size.Height, 48)
	assertNear(t, "item y", items[0].offset.Y, 6)
	assertNear(t, "first item x", items[0].offset.X, 10+(290-120)/2.0)
}

func TestRTLMirrorsOffsets(t *testing.T) {
	a := New(testTheme())
	bar, items := newBar([]float64{40, 40, 40})
	cfg := DefaultConfig()
	cfg.RTL = true

	run(t, a, bar, cfg, fixedFrame(300, 56), &State{})

	want := []float64{200, 100, 0}
	for i, item := range items {
		assertNear(t, "x", item.offset.X, want[i])
	}
}

func TestEmptyBar(t *testing.T) {
	a := New(testTheme())
	mask := &fakeBox{size: geom.SizeF{Width: 5, Height: 5}}
	bar := Bar{SelectedMask: mask}
	cfg := DefaultConfig()
	cfg.SelectedMask = 0
	st := &State{}

	snap := run(t, a, bar, cfg, fixedFrame(300, 56), st)

	if len(snap.Items) != 0 || snap.ChildrenMainSize != 0 {
		t.Fatalf("unexpected snapshot for empty bar: %+v", snap)
	}
	if mask.size != (geom.SizeF{}) {
		t.Fatalf("expected collapsed mask, got %+v", mask.size)
	}
}

func TestNilStateIsIgnored(t *testing.T) {
	a := New(testTheme())
	bar, _ := newBar([]float64{40})
	if size := a.Measure(bar, DefaultConfig(), fixedFrame(300, 56), nil); size != (geom.SizeF{}) {
		t.Fatalf("expected zero size without state, got %+v", size)
	}
	if snap := a.Layout(bar, DefaultConfig(), nil); len(snap.Items) != 0 {
		t.Fatalf("expected empty snapshot without state")
	}
}

func TestFallbacksAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	a := New(testTheme(), WithLogger(logger))
	bar, _ := newBar([]float64{40, 40, 40})
	cfg := DefaultConfig()
	cfg.GridAlign = &GridOption{Lg: -2}

	run(t, a, bar, cfg, fixedFrame(900, 56), &State{})

	if !strings.Contains(buf.String(), "grid alignment rejected") {
		t.Fatalf("expected grid fallback to be logged, got %q", buf.String())
	}
}
