package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/daptify14/tabgeom/internal/geom"
	"github.com/daptify14/tabgeom/internal/tabbar"
)

// ErrNoItems is returned by Validate when a scenario declares no tabs.
var ErrNoItems = errors.New("scenario has no items")

type Config struct {
	Mode           string  `yaml:"mode"`             // "fixed" (default), "scrollable"
	Axis           string  `yaml:"axis"`             // "horizontal" (default), "vertical"
	LayoutStyle    string  `yaml:"layout_style"`     // scrollable layout style
	Width          float64 `yaml:"width,omitempty"`  // 0 uses the theme default on vertical bars
	Height         float64 `yaml:"height,omitempty"` // 0 uses the theme default on horizontal bars
	Padding        Edges   `yaml:"padding,omitempty"`
	AdaptiveHeight bool    `yaml:"adaptive_height,omitempty"`
	RTL            bool    `yaml:"rtl,omitempty"`
	Indicator      int     `yaml:"indicator"`
	SelectedMask   *int    `yaml:"selected_mask,omitempty"`
	UnselectedMask *int    `yaml:"unselected_mask,omitempty"`
	Grid           *Grid   `yaml:"grid,omitempty"`
	Cell           Cell    `yaml:"cell"`
	Theme          Theme   `yaml:"theme,omitempty"`
	Items          []Item  `yaml:"items"`
}

type Edges struct {
	Left   float64 `yaml:"left,omitempty"`
	Top    float64 `yaml:"top,omitempty"`
	Right  float64 `yaml:"right,omitempty"`
	Bottom float64 `yaml:"bottom,omitempty"`
}

type Grid struct {
	Sm     int     `yaml:"sm"`
	Md     int     `yaml:"md"`
	Lg     int     `yaml:"lg"`
	Gutter float64 `yaml:"gutter,omitempty"`
	Margin float64 `yaml:"margin,omitempty"`
}

// Cell is the vp extent of one terminal cell.
type Cell struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Theme overrides individual tab bar constants. Nil fields keep the default.
type Theme struct {
	BarDefaultHeight            *float64 `yaml:"bar_default_height,omitempty"`
	BottomTabBarDefaultHeight   *float64 `yaml:"bottom_tab_bar_default_height,omitempty"`
	BarDefaultWidth             *float64 `yaml:"bar_default_width,omitempty"`
	SubTabBarMinWidth           *float64 `yaml:"sub_tab_bar_min_width,omitempty"`
	HorizontalBottomTabMinWidth *float64 `yaml:"horizontal_bottom_tab_min_width,omitempty"`
	BottomTabHorizontalSpacing  *float64 `yaml:"bottom_tab_horizontal_spacing,omitempty"`
	BottomTabVerticalSpacing    *float64 `yaml:"bottom_tab_vertical_spacing,omitempty"`
	ScrollMargin                *float64 `yaml:"scroll_margin,omitempty"`
}

type Item struct {
	Label               string `yaml:"label"`
	Icon                string `yaml:"icon,omitempty"`
	File                string `yaml:"file,omitempty"` // picks a file-type icon
	Style               string `yaml:"style,omitempty"`
	LayoutMode          string `yaml:"layout_mode,omitempty"`
	VerticalAlign       string `yaml:"vertical_align,omitempty"`
	SymmetricExtensible bool   `yaml:"symmetric_extensible,omitempty"`
}

func Default() Config {
	return Config{
		Mode:        "fixed",
		Axis:        "horizontal",
		LayoutStyle: "always_center",
		Width:       360,
		Cell:        Cell{Width: 8, Height: 16},
	}
}

func (c *Config) Normalize() {
	c.Mode = normalizeEnum(c.Mode, "fixed")
	c.Axis = normalizeEnum(c.Axis, "horizontal")
	c.LayoutStyle = normalizeEnum(c.LayoutStyle, "always_center")
	if c.Cell.Width <= 0 {
		c.Cell.Width = 8
	}
	if c.Cell.Height <= 0 {
		c.Cell.Height = 16
	}
	for i := range c.Items {
		it := &c.Items[i]
		it.Label = strings.TrimSpace(it.Label)
		it.File = strings.TrimSpace(it.File)
		it.Style = normalizeEnum(it.Style, "default")
		it.LayoutMode = normalizeEnum(it.LayoutMode, "auto")
		it.VerticalAlign = normalizeEnum(it.VerticalAlign, "center")
	}
}

func (c Config) Validate() error {
	if _, err := ParseMode(c.Mode); err != nil {
		return err
	}
	if _, err := ParseAxis(c.Axis); err != nil {
		return err
	}
	if _, err := ParseLayoutStyle(c.LayoutStyle); err != nil {
		return err
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("invalid size %vx%v (must not be negative)", c.Width, c.Height)
	}
	if c.Axis == "vertical" {
		if c.Height <= 0 {
			return fmt.Errorf("invalid height %v (vertical bars need a positive height)", c.Height)
		}
	} else if c.Width <= 0 {
		return fmt.Errorf("invalid width %v (horizontal bars need a positive width)", c.Width)
	}
	if len(c.Items) == 0 {
		return ErrNoItems
	}
	for i, it := range c.Items {
		if _, err := it.ItemStyle(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	if c.Indicator < 0 || c.Indicator >= len(c.Items) {
		return fmt.Errorf("indicator %d out of range (0..%d)", c.Indicator, len(c.Items)-1)
	}
	return nil
}

// ItemStyle parses the item's style fields.
func (it Item) ItemStyle() (tabbar.ItemStyle, error) {
	style, err := ParseStyle(it.Style)
	if err != nil {
		return tabbar.ItemStyle{}, err
	}
	mode, err := ParseLayoutMode(it.LayoutMode)
	if err != nil {
		return tabbar.ItemStyle{}, err
	}
	align, err := ParseAlign(it.VerticalAlign)
	if err != nil {
		return tabbar.ItemStyle{}, err
	}
	return tabbar.ItemStyle{
		Style:               style,
		LayoutMode:          mode,
		VerticalAlign:       align,
		SymmetricExtensible: it.SymmetricExtensible,
	}, nil
}

// BarConfig converts the scenario into the solver's configuration.
func (c Config) BarConfig() (tabbar.Config, error) {
	cfg := tabbar.DefaultConfig()
	var err error
	if cfg.Mode, err = ParseMode(c.Mode); err != nil {
		return cfg, err
	}
	if cfg.Axis, err = ParseAxis(c.Axis); err != nil {
		return cfg, err
	}
	if cfg.ScrollableLayoutStyle, err = ParseLayoutStyle(c.LayoutStyle); err != nil {
		return cfg, err
	}
	cfg.Padding = geom.Edges(c.Padding)
	cfg.AdaptiveHeight = c.AdaptiveHeight
	cfg.RTL = c.RTL
	cfg.Indicator = c.Indicator
	if c.SelectedMask != nil {
		cfg.SelectedMask = *c.SelectedMask
	}
	if c.UnselectedMask != nil {
		cfg.UnselectedMask = *c.UnselectedMask
	}
	if c.Grid != nil {
		cfg.GridAlign = &tabbar.GridOption{
			Sm:     c.Grid.Sm,
			Md:     c.Grid.Md,
			Lg:     c.Grid.Lg,
			Gutter: c.Grid.Gutter,
			Margin: c.Grid.Margin,
		}
	}
	return cfg, nil
}

// TabbarTheme applies the overrides to the default constants.
func (c Config) TabbarTheme() tabbar.Theme {
	th := tabbar.DefaultTheme()
	override := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	override(&th.BarDefaultHeight, c.Theme.BarDefaultHeight)
	override(&th.BottomTabBarDefaultHeight, c.Theme.BottomTabBarDefaultHeight)
	override(&th.BarDefaultWidth, c.Theme.BarDefaultWidth)
	override(&th.SubTabBarMinWidth, c.Theme.SubTabBarMinWidth)
	override(&th.HorizontalBottomTabMinWidth, c.Theme.HorizontalBottomTabMinWidth)
	override(&th.BottomTabHorizontalSpacing, c.Theme.BottomTabHorizontalSpacing)
	override(&th.BottomTabVerticalSpacing, c.Theme.BottomTabVerticalSpacing)
	override(&th.ScrollMargin, c.Theme.ScrollMargin)
	return th
}

func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "tabgeom", "scenario.yaml")
}

func Load() (Config, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom returns Default() if path doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	return Parse(data)
}

// Parse decodes, normalizes and validates a scenario document.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes the scenario as YAML, creating parent directories.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func normalizeEnum(s, fallback string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.ReplaceAll(s, "-", "_")
	if s == "" {
		return fallback
	}
	return s
}
