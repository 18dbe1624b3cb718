package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abhijitkoch19060-lgtm/Flappy-bird-2.0/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key      string
		expected core.Action
		quit     bool
	}{
		{" ", core.ActionPrimary, false},
		{"up", core.ActionPrimary, false},
		{"w", core.ActionPrimary, false},
		{"r", core.ActionRestart, false},
		{"enter", core.ActionRestart, false},
		{"esc", core.ActionBack, false},
		{"b", core.ActionBack, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"x", core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			action, isQuit := km.MapKey(keyMsg(tc.key))
			if action != tc.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.key, action, tc.expected)
			}
			if isQuit != tc.quit {
				t.Errorf("MapKey(%q) quit = %v, expected %v", tc.key, isQuit, tc.quit)
			}
		})
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()

	press := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	if got := km.MapMouse(press); got != core.ActionPrimary {
		t.Errorf("button press = %v, expected primary action", got)
	}

	release := tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	if got := km.MapMouse(release); got != core.ActionNone {
		t.Errorf("button release = %v, expected none", got)
	}

	motion := tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
	if got := km.MapMouse(motion); got != core.ActionNone {
		t.Errorf("motion = %v, expected none", got)
	}
}
