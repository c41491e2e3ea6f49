package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/prism-arcade/internal/core"
)

// KeyMap defines the in-game key bindings.
// It doubles as the help.KeyMap for the footer.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Fire       key.Binding
	Magnet     key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Magnet, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Fire, k.Magnet},
		{k.Pause, k.Restart, k.Screenshot},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "fire"),
		),
		Magnet: key.NewBinding(
			key.WithKeys("m", "down", "s"),
			key.WithHelp("m", "magnet"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action maps a key press to a game action. Keys that only concern the host
// (help, screenshot) map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Fire):
		return core.ActionFire
	case key.Matches(msg, k.Magnet):
		return core.ActionMagnet
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}
