package preview

import (
	"image/color"

	"charm.land/lipgloss/v2"
	catppuccin "github.com/catppuccin/go"
)

// Theme holds the preview palette and its pre-computed styles.
type Theme struct {
	Primary color.Color
	Accent  color.Color
	Dim     color.Color

	Item           lipgloss.Style
	ItemAlt        lipgloss.Style
	Selected       lipgloss.Style
	SelectedMask   lipgloss.Style
	UnselectedMask lipgloss.Style
	Background     lipgloss.Style

	Title     lipgloss.Style
	Ruler     lipgloss.Style
	HintText  lipgloss.Style
	StatusBar lipgloss.Style
	Error     lipgloss.Style
	Match     lipgloss.Style

	HelpOverlay lipgloss.Style
	Filter      lipgloss.Style

	ChromaStyleName string
}

var activeTheme = ThemeDark()

// SetTheme sets the active global theme.
func SetTheme(t Theme) { activeTheme = t }

// ThemeDark returns the dark theme (Catppuccin Mocha palette).
func ThemeDark() Theme { return newTheme(catppuccin.Mocha, true) }

// ThemeLight returns the light theme (Catppuccin Latte palette).
func ThemeLight() Theme { return newTheme(catppuccin.Latte, false) }

// ThemeForBackground returns the appropriate theme for the terminal background.
func ThemeForBackground(isDark bool) Theme {
	if isDark {
		return ThemeDark()
	}
	return ThemeLight()
}

func newTheme(flavor catppuccin.Flavor, isDark bool) Theme {
	primary := lipgloss.Color(flavor.Sapphire().Hex)
	accent := lipgloss.Color(flavor.Yellow().Hex)
	dim := lipgloss.Color(flavor.Overlay1().Hex)
	if !isDark {
		dim = lipgloss.Color(flavor.Subtext0().Hex)
	}
	text := lipgloss.Color(flavor.Text().Hex)
	crust := lipgloss.Color(flavor.Crust().Hex)

	chromaStyle := "catppuccin-mocha"
	if !isDark {
		chromaStyle = "catppuccin-latte"
	}

	t := Theme{
		Primary:         primary,
		Accent:          accent,
		Dim:             dim,
		ChromaStyleName: chromaStyle,
	}

	t.Item = lipgloss.NewStyle().
		Background(lipgloss.Color(flavor.Surface0().Hex)).
		Foreground(text)
	t.ItemAlt = lipgloss.NewStyle().
		Background(lipgloss.Color(flavor.Surface1().Hex)).
		Foreground(text)
	t.Selected = lipgloss.NewStyle().
		Background(primary).
		Foreground(crust).
		Bold(true)
	t.SelectedMask = lipgloss.NewStyle().
		Background(lipgloss.Color(flavor.Mauve().Hex)).
		Foreground(crust).
		Bold(true)
	t.UnselectedMask = lipgloss.NewStyle().
		Background(lipgloss.Color(flavor.Overlay0().Hex)).
		Foreground(crust)
	t.Background = lipgloss.NewStyle().
		Background(lipgloss.Color(flavor.Mantle().Hex))

	t.Title = lipgloss.NewStyle().Bold(true).Foreground(primary)
	t.Ruler = lipgloss.NewStyle().Foreground(dim)
	t.HintText = lipgloss.NewStyle().Foreground(lipgloss.Color(flavor.Subtext0().Hex))
	t.StatusBar = lipgloss.NewStyle().
		Background(lipgloss.Color(flavor.Mantle().Hex)).
		Foreground(text).
		Padding(0, 1)
	t.Error = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(flavor.Red().Hex))
	t.Match = lipgloss.NewStyle().Bold(true).Foreground(accent)

	t.HelpOverlay = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(primary).
		Padding(1, 2)
	t.Filter = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(primary).
		Padding(0, 1)
	return t
}
