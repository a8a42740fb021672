// Package report renders the geometry of a laid-out tab bar and checks
// directories of scenario files.
package report

import (
	"strconv"

	"github.com/daptify14/tabgeom/internal/scenario"
	"github.com/daptify14/tabgeom/internal/tabbar"
)

// Document is the serialisable geometry of one layout pass.
type Document struct {
	Mode             string  `yaml:"mode"`
	Axis             string  `yaml:"axis"`
	LayoutStyle      string  `yaml:"layout_style"`
	Indicator        int     `yaml:"indicator"`
	Frame            Size    `yaml:"frame"`
	Offset           float64 `yaml:"offset"`
	ScrollOffset     float64 `yaml:"scroll_offset"`
	ChildrenMainSize float64 `yaml:"children_main_size"`
	UseItemWidth     bool    `yaml:"use_item_width"`
	Items            []Item  `yaml:"items"`
	SelectedMask     *Rect   `yaml:"selected_mask"`
	UnselectedMask   *Rect   `yaml:"unselected_mask"`
}

type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type Rect struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type Item struct {
	Label string `yaml:"label"`
	Rect  `yaml:",inline"`
}

// FromService captures the service's latest snapshot.
func FromService(s *scenario.Service) Document {
	return New(s.Labels(), s.Config(), s.Snapshot())
}

// New builds a document from a snapshot. Collapsed masks are left nil.
func New(labels []string, cfg tabbar.Config, snap tabbar.Snapshot) Document {
	doc := Document{
		Mode:             cfg.Mode.String(),
		Axis:             cfg.Axis.String(),
		LayoutStyle:      cfg.ScrollableLayoutStyle.String(),
		Indicator:        cfg.Indicator,
		Frame:            Size{Width: snap.FrameSize.Width, Height: snap.FrameSize.Height},
		Offset:           snap.Offset,
		ScrollOffset:     snap.ScrollOffset,
		ChildrenMainSize: snap.ChildrenMainSize,
		UseItemWidth:     snap.UseItemWidth,
		Items:            make([]Item, len(snap.Items)),
		SelectedMask:     maskRect(snap.SelectedMask),
		UnselectedMask:   maskRect(snap.UnselectedMask),
	}
	for i, f := range snap.Items {
		var label string
		if i < len(labels) {
			label = labels[i]
		}
		doc.Items[i] = Item{Label: label, Rect: rectOf(f)}
	}
	return doc
}

func rectOf(f tabbar.Frame) Rect {
	return Rect{X: f.Offset.X, Y: f.Offset.Y, Width: f.Size.Width, Height: f.Size.Height}
}

func maskRect(f tabbar.Frame) *Rect {
	if f.Size.Width <= 0 || f.Size.Height <= 0 {
		return nil
	}
	r := rectOf(f)
	return &r
}

// num formats a vp value with the fewest digits that round-trip.
func num(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
