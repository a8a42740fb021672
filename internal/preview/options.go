package preview

import (
	"log/slog"

	"github.com/daptify14/tabgeom/internal/scenario"
)

// Options configures the preview model.
type Options struct {
	// Service is the laid-out tab bar being previewed.
	Service *scenario.Service

	// Source names the scenario file in the title line.
	Source string

	// FitWindow resizes the bar frame to the terminal whenever the window
	// size changes.
	FitWindow bool

	// DebugLog, when non-nil, receives structured JSON logs of every tea.Msg
	// processed by Update(). Set via the TABGEOM_DEBUG environment variable.
	DebugLog *slog.Logger
}
