// Package scenario runs the tab bar solver over a configured set of tabs and
// keeps the bar's layout state between frames.
package scenario

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/daptify14/tabgeom/internal/config"
	"github.com/daptify14/tabgeom/internal/geom"
	"github.com/daptify14/tabgeom/internal/node"
	"github.com/daptify14/tabgeom/internal/tabbar"
)

// Sentinel errors for selection and sizing.
var (
	ErrIndexOutOfRange = errors.New("tab index out of range")
	ErrInvalidSize     = errors.New("frame size must be positive")
)

// maxExtent bounds the unset frame extent handed to the solver.
const maxExtent = 1 << 16

// Service owns one tab bar: its nodes, its configuration and the layout
// state carried between passes.
type Service struct {
	algo   *tabbar.Algorithm
	cfg    tabbar.Config
	cell   node.CellMetrics
	width  float64
	height float64

	items      []*node.TabItem
	selected   *node.Mask
	unselected *node.Mask
	bar        tabbar.Bar

	state tabbar.State
	last  tabbar.Snapshot
}

type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger forwards solver diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// New builds the nodes described by cfg and runs the first layout pass.
func New(cfg config.Config, opts ...Option) (*Service, error) {
	o := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	barCfg, err := cfg.BarConfig()
	if err != nil {
		return nil, err
	}

	s := &Service{
		algo:       tabbar.New(cfg.TabbarTheme(), tabbar.WithLogger(o.logger)),
		cfg:        barCfg,
		cell:       node.CellMetrics{Width: cfg.Cell.Width, Height: cfg.Cell.Height},
		width:      cfg.Width,
		height:     cfg.Height,
		selected:   &node.Mask{},
		unselected: &node.Mask{},
	}
	for i, it := range cfg.Items {
		item, err := s.buildItem(it)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		s.items = append(s.items, item)
	}

	s.bar = tabbar.Bar{
		Items:          make([]tabbar.Item, len(s.items)),
		SelectedMask:   s.selected,
		UnselectedMask: s.unselected,
	}
	for i, item := range s.items {
		s.bar.Items[i] = item
	}
	s.Relayout()
	return s, nil
}

func (s *Service) buildItem(it config.Item) (*node.TabItem, error) {
	style, err := it.ItemStyle()
	if err != nil {
		return nil, err
	}
	iconSize := geom.SizeF{Width: 2 * s.cell.Width, Height: s.cell.Height}
	opts := []node.Option{node.WithStyle(style)}
	switch {
	case it.File != "":
		opts = append(opts, node.WithFileIcon(it.File, iconSize))
	case it.Icon != "":
		opts = append(opts, node.WithIcon(it.Icon, iconSize))
	}
	return node.NewTabItem(it.Label, s.cell, opts...), nil
}

func (s *Service) constraint() geom.Constraint {
	c := geom.Loose(geom.SizeF{Width: maxExtent, Height: maxExtent})
	if s.width > 0 {
		c.SelfIdealSize.SetWidth(s.width)
	}
	if s.height > 0 {
		c.SelfIdealSize.SetHeight(s.height)
	}
	return c
}

// Relayout runs one measure and layout pass with the current settings.
func (s *Service) Relayout() tabbar.Snapshot {
	s.algo.Measure(s.bar, s.cfg, s.constraint(), &s.state)
	s.last = s.algo.Layout(s.bar, s.cfg, &s.state)
	return s.last
}

// Select moves the indicator to index and lays the bar out again. The
// selected mask follows the indicator when it was tracking it.
func (s *Service) Select(index int) (tabbar.Snapshot, error) {
	if index < 0 || index >= len(s.items) {
		return s.last, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	if s.cfg.SelectedMask == s.cfg.Indicator {
		s.cfg.SelectedMask = index
	}
	s.cfg.Indicator = index
	return s.Relayout(), nil
}

// Step moves the indicator by delta, wrapping around both ends.
func (s *Service) Step(delta int) tabbar.Snapshot {
	n := len(s.items)
	next := ((s.cfg.Indicator+delta)%n + n) % n
	snap, _ := s.Select(next)
	return snap
}

// Resize changes the frame extent along the bar's main axis.
func (s *Service) Resize(extent float64) (tabbar.Snapshot, error) {
	if extent <= 0 {
		return s.last, fmt.Errorf("%w: %v", ErrInvalidSize, extent)
	}
	if s.cfg.Axis == geom.Vertical {
		s.height = extent
	} else {
		s.width = extent
	}
	return s.Relayout(), nil
}

// SetMode switches between fixed and scrollable distribution.
func (s *Service) SetMode(mode tabbar.BarMode) tabbar.Snapshot {
	s.cfg.Mode = mode
	s.state.RequestRecenter = true
	return s.Relayout()
}

// SetLayoutStyle changes the scrollable layout style.
func (s *Service) SetLayoutStyle(style tabbar.ScrollableLayoutStyle) tabbar.Snapshot {
	s.cfg.ScrollableLayoutStyle = style
	s.state.RequestRecenter = true
	return s.Relayout()
}

// Recenter scrolls the selected tab back into view on the next pass.
func (s *Service) Recenter() tabbar.Snapshot {
	s.state.RequestRecenter = true
	return s.Relayout()
}

// Scroll moves the stored scroll offset by delta; the next pass clamps it.
func (s *Service) Scroll(delta float64) tabbar.Snapshot {
	s.state.CurrentOffset += delta
	return s.Relayout()
}

func (s *Service) Snapshot() tabbar.Snapshot { return s.last }

func (s *Service) Config() tabbar.Config { return s.cfg }

func (s *Service) State() tabbar.State { return s.state }

func (s *Service) Cell() node.CellMetrics { return s.cell }

func (s *Service) Items() []*node.TabItem { return s.items }

func (s *Service) Theme() tabbar.Theme { return s.algo.Theme() }

// Labels returns the tab labels in order.
func (s *Service) Labels() []string {
	labels := make([]string, len(s.items))
	for i, item := range s.items {
		labels[i] = item.Label
	}
	return labels
}
