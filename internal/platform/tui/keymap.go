package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tank-arcade/internal/config"
	"github.com/vovakirdan/tank-arcade/internal/core"
)

// KeyMapper translates Bubble Tea key messages to per-seat game actions.
// Gameplay keys come from one ControlScheme per seat. With a single
// player both schemes drive Player 1.
type KeyMapper struct {
	schemes map[core.PlayerID]core.ControlScheme
	players int
}

// NewKeyMapper creates a mapper from the configured bindings.
func NewKeyMapper(in config.InputConfig, players int) *KeyMapper {
	return &KeyMapper{
		schemes: map[core.PlayerID]core.ControlScheme{
			core.Player1: in.Player1.Scheme(),
			core.Player2: in.Player2.Scheme(),
		},
		players: players,
	}
}

// DefaultKeyMapper uses the built-in bindings for one player.
func DefaultKeyMapper() *KeyMapper {
	return NewKeyMapper(config.DefaultBattleConfig().Input, 1)
}

// MapKey translates a key message. Session keys (pause, restart, back,
// confirm) are reported for Player 1. Unbound keys yield ActionNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (seat core.PlayerID, action core.Action, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.Player1, core.ActionQuit, true
	case "p":
		return core.Player1, core.ActionPause, false
	case "r":
		return core.Player1, core.ActionRestart, false
	case "b", "esc":
		return core.Player1, core.ActionBack, false
	}

	for _, s := range []core.PlayerID{core.Player1, core.Player2} {
		if a, ok := km.schemes[s].Lookup(key); ok {
			if km.players < 2 {
				s = core.Player1
			}
			return s, a, false
		}
	}

	if key == "enter" {
		return core.Player1, core.ActionConfirm, false
	}
	return core.Player1, core.ActionNone, false
}

// MapKeyToMultiFrame records a key message in the frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToMultiFrame(msg tea.KeyMsg, frame *core.MultiInputFrame) bool {
	seat, action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		f := frame.Player(seat)
		f.Set(action)
		frame.SetPlayer(seat, f)
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
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
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
