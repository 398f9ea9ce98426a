package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tank-arcade/internal/config"
	"github.com/vovakirdan/tank-arcade/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyTwoPlayers(t *testing.T) {
	km := NewKeyMapper(config.DefaultBattleConfig().Input, 2)

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		seat   core.PlayerID
		action core.Action
		quit   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.Player1, core.ActionUp, false},
		{"space fires", tea.KeyMsg{Type: tea.KeySpace}, core.Player1, core.ActionFire, false},
		{"w is player 2", runeKey('w'), core.Player2, core.ActionUp, false},
		{"f is player 2 fire", runeKey('f'), core.Player2, core.ActionFire, false},
		{"a is player 2 left", runeKey('a'), core.Player2, core.ActionLeft, false},
		{"pause", runeKey('p'), core.Player1, core.ActionPause, false},
		{"restart", runeKey('r'), core.Player1, core.ActionRestart, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.Player1, core.ActionConfirm, false},
		{"quit", runeKey('q'), core.Player1, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.Player1, core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			seat, action, quit := km.MapKey(tc.msg)
			if seat != tc.seat || action != tc.action || quit != tc.quit {
				t.Errorf("MapKey() = %v, %v, %v, expected %v, %v, %v", seat, action, quit, tc.seat, tc.action, tc.quit)
			}
		})
	}
}

func TestMapKeySinglePlayerFoldsSchemes(t *testing.T) {
	km := DefaultKeyMapper()
	seat, action, _ := km.MapKey(runeKey('d'))
	if seat != core.Player1 || action != core.ActionRight {
		t.Errorf("MapKey(d) = %v, %v, expected P1 Right", seat, action)
	}
}

func TestMapKeyToMultiFrame(t *testing.T) {
	km := NewKeyMapper(config.DefaultBattleConfig().Input, 2)
	frame := core.NewMultiInputFrame()

	km.MapKeyToMultiFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame)
	km.MapKeyToMultiFrame(runeKey('s'), &frame)

	if !frame.Player(core.Player1).Has(core.ActionLeft) {
		t.Error("P1 should have Left")
	}
	if !frame.Player(core.Player2).Has(core.ActionDown) {
		t.Error("P2 should have Down")
	}
	if frame.Player(core.Player1).Has(core.ActionDown) {
		t.Error("P1 should not have P2's Down")
	}
	if !km.MapKeyToMultiFrame(tea.KeyMsg{Type: tea.KeyCtrlC}, &frame) {
		t.Error("ctrl+c should quit")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := DefaultKeyMapper()
	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}
	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}
