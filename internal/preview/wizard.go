package preview

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"charm.land/huh/v2"

	"github.com/daptify14/tabgeom/internal/config"
)

// ErrWizardAborted is returned when the user leaves the wizard early.
var ErrWizardAborted = errors.New("wizard aborted")

// WizardAnswers collects the fields asked by the new-scenario wizard.
type WizardAnswers struct {
	Mode        string
	Axis        string
	LayoutStyle string
	Style       string
	Extent      string
	Labels      string // comma separated
}

// DefaultWizardAnswers pre-fills the form.
func DefaultWizardAnswers() WizardAnswers {
	return WizardAnswers{
		Mode:        "fixed",
		Axis:        "horizontal",
		LayoutStyle: "always_center",
		Style:       "default",
		Extent:      "360",
		Labels:      "Home, Search, Library, Settings",
	}
}

// NewWizardForm builds the form that fills a.
func NewWizardForm(a *WizardAnswers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Bar mode").
				Options(
					huh.NewOption("Fixed", "fixed"),
					huh.NewOption("Scrollable", "scrollable"),
				).
				Value(&a.Mode),
			huh.NewSelect[string]().
				Title("Axis").
				Options(
					huh.NewOption("Horizontal", "horizontal"),
					huh.NewOption("Vertical", "vertical"),
				).
				Value(&a.Axis),
			huh.NewSelect[string]().
				Title("Scrollable layout style").
				Options(
					huh.NewOption("Always center", "always_center"),
					huh.NewOption("Always average split", "always_average_split"),
					huh.NewOption("Space between or center", "space_between_or_center"),
				).
				Value(&a.LayoutStyle),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Tab style").
				Options(
					huh.NewOption("Default", "default"),
					huh.NewOption("Sub tab", "subtab"),
					huh.NewOption("Bottom tab", "bottomtab"),
				).
				Value(&a.Style),
			huh.NewInput().
				Title("Frame extent (vp)").
				Placeholder("360").
				Validate(validateExtent).
				Value(&a.Extent),
			huh.NewInput().
				Title("Tab labels").
				Placeholder("Home, Search, Settings").
				Validate(validateLabels).
				Value(&a.Labels),
		),
	).WithTheme(huh.ThemeFunc(huh.ThemeCatppuccin)).
		WithWidth(56).
		WithShowHelp(false)
}

// RunWizard asks for a scenario interactively.
func RunWizard() (config.Config, error) {
	a := DefaultWizardAnswers()
	if err := NewWizardForm(&a).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return config.Config{}, ErrWizardAborted
		}
		return config.Config{}, fmt.Errorf("wizard: %w", err)
	}
	return a.Config()
}

func validateExtent(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("extent must be a positive number")
	}
	return nil
}

func validateLabels(s string) error {
	if len(splitLabels(s)) == 0 {
		return fmt.Errorf("at least one label is required")
	}
	return nil
}

func splitLabels(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if label := strings.TrimSpace(part); label != "" {
			out = append(out, label)
		}
	}
	return out
}

// Config turns the answers into a validated scenario. The extent is the
// frame width on horizontal bars and the frame height on vertical ones.
func (a WizardAnswers) Config() (config.Config, error) {
	if err := validateExtent(a.Extent); err != nil {
		return config.Config{}, err
	}
	extent, _ := strconv.ParseFloat(strings.TrimSpace(a.Extent), 64)

	cfg := config.Default()
	cfg.Mode = a.Mode
	cfg.Axis = a.Axis
	cfg.LayoutStyle = a.LayoutStyle
	if strings.EqualFold(a.Axis, "vertical") {
		cfg.Width = 0
		cfg.Height = extent
	} else {
		cfg.Width = extent
	}
	for _, label := range splitLabels(a.Labels) {
		cfg.Items = append(cfg.Items, config.Item{Label: label, Style: a.Style})
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
