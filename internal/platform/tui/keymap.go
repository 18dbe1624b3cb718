package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/abhijitkoch19060-lgtm/Flappy-bird-2.0/internal/core"
)

// KeyMapper translates Bubble Tea input messages to game actions.
// This centralizes the bindings and makes them testable.
type KeyMapper struct {
	Flap    key.Binding
	Restart key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		Flap: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "flap"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it is a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.Flap):
		return core.ActionPrimary, false
	case key.Matches(msg, km.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, km.Back):
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// MapMouse translates a mouse message to an action. Any button press
// counts as the primary action, same as a screen tap.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) core.Action {
	if msg.Action == tea.MouseActionPress && msg.Button != tea.MouseButtonNone {
		return core.ActionPrimary
	}
	return core.ActionNone
}

// ShortHelp returns the bindings shown in the footer.
func (km *KeyMapper) ShortHelp() []key.Binding {
	return []key.Binding{km.Flap, km.Restart, km.Quit}
}

// FullHelp returns all bindings grouped for the expanded help view.
func (km *KeyMapper) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Flap, km.Restart},
		{km.Back, km.Quit},
	}
}
