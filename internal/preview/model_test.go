package preview

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/daptify14/tabgeom/internal/config"
	"github.com/daptify14/tabgeom/internal/scenario"
	"github.com/daptify14/tabgeom/internal/tabbar"
)

type modelOption func(*config.Config)

func withLabels(labels ...string) modelOption {
	return func(c *config.Config) {
		c.Items = c.Items[:0]
		for _, l := range labels {
			c.Items = append(c.Items, config.Item{Label: l})
		}
	}
}

func withMode(mode string) modelOption {
	return func(c *config.Config) { c.Mode = mode }
}

func newTestModel(t *testing.T, opts ...modelOption) Model {
	t.Helper()
	cfg := config.Default()
	withLabels("Home", "Files", "Settings")(&cfg)
	for _, opt := range opts {
		opt(&cfg)
	}
	svc, err := scenario.New(cfg)
	if err != nil {
		t.Fatalf("scenario.New: %v", err)
	}
	return NewModel(Options{Service: svc})
}

func press(t *testing.T, m Model, keys ...tea.KeyPressMsg) Model {
	t.Helper()
	for _, k := range keys {
		updated, _ := m.Update(k)
		var ok bool
		m, ok = updated.(Model)
		if !ok {
			t.Fatalf("Update returned %T", updated)
		}
	}
	return m
}

func char(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestNextPrevWrap(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, char('l'))
	if got := m.svc.Config().Indicator; got != 1 {
		t.Fatalf("indicator after l = %d, want 1", got)
	}
	m = press(t, m, char('h'), char('h'))
	if got := m.svc.Config().Indicator; got != 2 {
		t.Fatalf("indicator after h h = %d, want 2", got)
	}
}

func TestResizeKeys(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, char(']'))
	if got := m.svc.Snapshot().FrameSize.Width; got != 392 {
		t.Fatalf("width after ] = %v, want 392", got)
	}
	m = press(t, m, char('['), char('['))
	if got := m.svc.Snapshot().FrameSize.Width; got != 328 {
		t.Fatalf("width after [ [ = %v, want 328", got)
	}
}

func TestModeAndStyleKeys(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, char('m'))
	if m.svc.Config().Mode != tabbar.BarModeScrollable {
		t.Fatalf("mode = %v, want scrollable", m.svc.Config().Mode)
	}
	m = press(t, m, char('s'))
	if got := m.svc.Config().ScrollableLayoutStyle; got != tabbar.LayoutStyleAlwaysAverageSplit {
		t.Fatalf("style = %v, want always_average_split", got)
	}
	if !strings.Contains(ansi.Strip(m.renderTitle()), "always_average_split") {
		t.Fatalf("title should name the layout style: %q", ansi.Strip(m.renderTitle()))
	}
	m = press(t, m, char('m'))
	if m.svc.Config().Mode != tabbar.BarModeFixed {
		t.Fatal("second m should switch back to fixed")
	}
}

func TestNextLayoutStyleCycles(t *testing.T) {
	s := tabbar.LayoutStyleAlwaysCenter
	seen := map[tabbar.ScrollableLayoutStyle]bool{}
	for range 3 {
		seen[s] = true
		s = nextLayoutStyle(s)
	}
	if len(seen) != 3 || s != tabbar.LayoutStyleAlwaysCenter {
		t.Fatalf("cycle visited %v and ended on %v", seen, s)
	}
}

func TestFilterJump(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, char('/'))
	if !m.filtering {
		t.Fatal("expected filter mode")
	}
	m = press(t, m, char('s'), char('e'), char('t'))
	if len(m.matches) != 1 || m.matches[0] != 2 {
		t.Fatalf("matches = %v, want [2]", m.matches)
	}
	m = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.filtering {
		t.Fatal("enter should close the filter")
	}
	if got := m.svc.Config().Indicator; got != 2 {
		t.Fatalf("indicator = %d, want 2", got)
	}
}

func TestFilterEscKeepsSelection(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, char('/'), char('f'), tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.filtering {
		t.Fatal("esc should close the filter")
	}
	if got := m.svc.Config().Indicator; got != 0 {
		t.Fatalf("indicator = %d, want 0", got)
	}
}

func TestHelpOverlay(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, char('?'))
	if !m.showHelp {
		t.Fatal("expected help overlay")
	}
	out := ansi.Strip(m.View().Content)
	for _, want := range []string{"Keys", "Previous tab", "Cycle layout style", "Jump to tab"} {
		if !strings.Contains(out, want) {
			t.Fatalf("help missing %q:\n%s", want, out)
		}
	}
	m = press(t, m, char('x'))
	if m.showHelp {
		t.Fatal("any key should close help")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(char('q'))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q should quit")
	}
}

func TestViewShowsBarAndStatus(t *testing.T) {
	m := newTestModel(t)
	out := ansi.Strip(m.View().Content)
	for _, want := range []string{"tabgeom", "fixed horizontal", "Home", "Settings", "Home (1/3)", "frame 360x56"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
}

func TestViewRulerMatchesBarWidth(t *testing.T) {
	m := newTestModel(t)
	lines := strings.Split(ansi.Strip(m.View().Content), "\n")
	if len(lines) < 6 {
		t.Fatalf("expected title, ruler and 4 bar rows, got %d lines", len(lines))
	}
	if got := ansi.StringWidth(lines[1]); got != 45 {
		t.Fatalf("ruler width = %d, want 45: %q", got, lines[1])
	}
	if !strings.HasPrefix(lines[1], "|0") || !strings.Contains(lines[1], "|40") {
		t.Fatalf("ruler missing column marks: %q", lines[1])
	}
	for i, row := range lines[2:6] {
		if got := ansi.StringWidth(row); got != 45 {
			t.Fatalf("bar row %d width = %d, want 45", i, got)
		}
	}
}

func TestViewTruncatesToWindow(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 10})
	m = updated.(Model)
	for line := range strings.SplitSeq(m.View().Content, "\n") {
		if w := ansi.StringWidth(line); w > 20 {
			t.Fatalf("line width %d exceeds window: %q", w, ansi.Strip(line))
		}
	}
}

func TestFitWindow(t *testing.T) {
	m := newTestModel(t)
	m.opts.FitWindow = true
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = updated.(Model)
	if got := m.svc.Snapshot().FrameSize.Width; got != 480 {
		t.Fatalf("frame width = %v, want 480", got)
	}
}

func TestScrollKeys(t *testing.T) {
	labels := make([]string, 12)
	for i := range labels {
		labels[i] = "Tab " + string(rune('A'+i)) + "x"
	}
	m := newTestModel(t, withLabels(labels...), withMode("scrollable"))
	m = press(t, m, char('L'))
	if got := m.svc.Snapshot().ScrollOffset; got != -32 {
		t.Fatalf("scroll offset = %v, want -32", got)
	}
	m = press(t, m, char('H'), char('H'))
	if got := m.svc.Snapshot().ScrollOffset; got != 0 {
		t.Fatalf("scroll offset = %v, want 0", got)
	}
}

func TestDebugLog(t *testing.T) {
	var buf bytes.Buffer
	m := newTestModel(t)
	m.debugLog = slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	press(t, m, char('l'))
	out := buf.String()
	if !strings.Contains(out, `"detail":"l"`) || !strings.Contains(out, `"action":"next"`) {
		t.Fatalf("debug log = %s", out)
	}
}

func TestThemeForBackground(t *testing.T) {
	t.Cleanup(func() { SetTheme(ThemeDark()) })
	SetTheme(ThemeDark())
	if activeTheme.ChromaStyleName != "catppuccin-mocha" {
		t.Fatalf("dark chroma style = %q", activeTheme.ChromaStyleName)
	}
	SetTheme(ThemeForBackground(false))
	if activeTheme.ChromaStyleName != "catppuccin-latte" {
		t.Fatalf("light chroma style = %q", activeTheme.ChromaStyleName)
	}
}
