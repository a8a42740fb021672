package preview

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
)

// logMsg logs a tea.Msg to the debug logger if one is configured.
func (m Model) logMsg(msg tea.Msg) {
	if m.debugLog == nil {
		return
	}
	m.debugLog.Info("msg",
		"type", fmt.Sprintf("%T", msg),
		"detail", formatMsgDetail(msg),
	)
}

// formatMsgDetail extracts key fields from known message types. Unknown
// types log their type name only.
func formatMsgDetail(msg tea.Msg) string {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return msg.String()
	case tea.WindowSizeMsg:
		return fmt.Sprintf("%dx%d", msg.Width, msg.Height)
	case tea.BackgroundColorMsg:
		return fmt.Sprintf("dark=%t", msg.IsDark())
	default:
		return ""
	}
}

// logLayout records the geometry committed by the last pass.
func (m Model) logLayout(action string) {
	if m.debugLog == nil {
		return
	}
	snap := m.svc.Snapshot()
	m.debugLog.Debug("layout",
		"action", action,
		"indicator", m.svc.Config().Indicator,
		"frame", fmt.Sprintf("%gx%g", snap.FrameSize.Width, snap.FrameSize.Height),
		"offset", snap.Offset,
		"children", snap.ChildrenMainSize,
		"use_item_width", snap.UseItemWidth,
	)
}
