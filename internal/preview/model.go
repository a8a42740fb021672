// Package preview is an interactive terminal view of a laid-out tab bar.
package preview

import (
	"log/slog"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/daptify14/tabgeom/internal/scenario"
)

// resizeStepCells is how many terminal cells [ and ] change the frame by.
const resizeStepCells = 4

// Model previews one scenario and lets the user drive the solver.
type Model struct {
	svc  *scenario.Service
	opts Options

	width  int
	height int

	showHelp    bool
	filtering   bool
	filterInput textinput.Model
	matches     []int

	lastErr  error
	debugLog *slog.Logger
}

func newFilterInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Jump to tab..."
	ti.Prompt = "> "
	s := ti.Styles()
	s.Focused.Prompt = activeTheme.Title
	s.Blurred.Prompt = activeTheme.Title
	ti.SetStyles(s)
	ti.CharLimit = 60
	ti.SetWidth(30)
	return ti
}

// NewModel creates a preview model with the given options.
func NewModel(opts Options) Model {
	if opts.Service == nil {
		panic("NewModel: Service must be provided")
	}
	return Model{
		svc:         opts.Service,
		opts:        opts,
		filterInput: newFilterInput(),
		debugLog:    opts.DebugLog,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.RequestBackgroundColor
}
