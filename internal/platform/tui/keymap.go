package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// Arrow keys and / (brake) drive Player 1, WASD and E drive Player 2; everything else
// (confirm, pause, drop, rotate) is filed under Player 1 since the games
// accept those from either player.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a player and action.
// Returns ActionNone for unbound keys and isQuit for quit requests.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (player core.PlayerID, action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.Player1, core.ActionQuit, true

	case "up":
		return core.Player1, core.ActionUp, false
	case "down":
		return core.Player1, core.ActionDown, false
	case "left":
		return core.Player1, core.ActionLeft, false
	case "right":
		return core.Player1, core.ActionRight, false

	case "w":
		return core.Player2, core.ActionUp, false
	case "s":
		return core.Player2, core.ActionDown, false
	case "a":
		return core.Player2, core.ActionLeft, false
	case "d":
		return core.Player2, core.ActionRight, false

	case "/":
		return core.Player1, core.ActionBrake, false
	case "e":
		return core.Player2, core.ActionBrake, false

	case " ":
		return core.Player1, core.ActionDrop, false
	case "x", "z":
		return core.Player1, core.ActionRotate, false
	case "enter":
		return core.Player1, core.ActionConfirm, false
	case "b", "esc":
		return core.Player1, core.ActionBack, false
	case "p":
		return core.Player1, core.ActionPause, false
	case "r":
		return core.Player1, core.ActionRestart, false
	}

	return core.NoPlayer, core.ActionNone, false
}

// MapKeyToMultiFrame records a key message in a multi-input frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToMultiFrame(msg tea.KeyMsg, frame *core.MultiInputFrame) bool {
	player, action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(player, action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
