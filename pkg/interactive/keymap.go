package interactive

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the pan/zoom keybindings of the interactive viewer.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	ZoomIn  key.Binding
	ZoomOut key.Binding
	Reset   key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the vi-style bindings: h/j/k/l (or arrows) pan,
// u/n zoom, r resets the view, q or escape quits.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h", "pan left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l", "pan right"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k", "pan up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j", "pan down"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "zoom out"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset view"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
