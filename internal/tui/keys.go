package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Decrement  key.Binding
	Increment  key.Binding
	Confirm    key.Binding
	Copy       key.Binding
	Regenerate key.Binding
	Quit       key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Decrement: key.NewBinding(
		key.WithKeys("left", "h", "-"),
		key.WithHelp("←/h/-", "decrease"),
	),
	Increment: key.NewBinding(
		key.WithKeys("right", "l", "+", "="),
		key.WithHelp("→/l/+", "increase"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("g", "enter"),
		key.WithHelp("g/enter", "generate"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c", "C"),
		key.WithHelp("c", "copy"),
	),
	Regenerate: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "regenerate"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc"),
		key.WithHelp("q/esc", "quit"),
	),
}
