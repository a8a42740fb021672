package preview

import "charm.land/bubbles/v2/key"

type KeyMap struct {
	Prev        key.Binding
	Next        key.Binding
	ScrollLeft  key.Binding
	ScrollRight key.Binding
	Shrink      key.Binding
	Grow        key.Binding
	Mode        key.Binding
	Style       key.Binding
	Recenter    key.Binding
	Filter      key.Binding
	Enter       key.Binding
	Back        key.Binding
	Help        key.Binding
	Quit        key.Binding
}

var Keys = KeyMap{
	Prev: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "Previous tab"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "Next tab"),
	),
	ScrollLeft: key.NewBinding(
		key.WithKeys("H"),
		key.WithHelp("H", "Scroll left"),
	),
	ScrollRight: key.NewBinding(
		key.WithKeys("L"),
		key.WithHelp("L", "Scroll right"),
	),
	Shrink: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "Shrink frame"),
	),
	Grow: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "Grow frame"),
	),
	Mode: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "Fixed/scrollable"),
	),
	Style: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "Cycle layout style"),
	),
	Recenter: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "Recentre"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "Jump to tab"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "Select"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "Back"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "Keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "Quit"),
	),
}

// helpBindings lists the bindings shown in the help overlay, in order.
func (k KeyMap) helpBindings() []key.Binding {
	return []key.Binding{
		k.Prev, k.Next, k.ScrollLeft, k.ScrollRight,
		k.Shrink, k.Grow, k.Mode, k.Style, k.Recenter,
		k.Filter, k.Help, k.Quit,
	}
}
