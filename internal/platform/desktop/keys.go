package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tank-arcade/internal/config"
	"github.com/vovakirdan/tank-arcade/internal/core"
)

// keyNames maps scheme key names to keyboard keys.
var keyNames = map[string]ebiten.Key{
	"up": ebiten.KeyArrowUp, "down": ebiten.KeyArrowDown,
	"left": ebiten.KeyArrowLeft, "right": ebiten.KeyArrowRight,
	"space": ebiten.KeySpace, "enter": ebiten.KeyEnter, "tab": ebiten.KeyTab,
	"a": ebiten.KeyA, "b": ebiten.KeyB, "c": ebiten.KeyC, "d": ebiten.KeyD,
	"e": ebiten.KeyE, "f": ebiten.KeyF, "g": ebiten.KeyG, "h": ebiten.KeyH,
	"i": ebiten.KeyI, "j": ebiten.KeyJ, "k": ebiten.KeyK, "l": ebiten.KeyL,
	"m": ebiten.KeyM, "n": ebiten.KeyN, "o": ebiten.KeyO, "p": ebiten.KeyP,
	"q": ebiten.KeyQ, "r": ebiten.KeyR, "s": ebiten.KeyS, "t": ebiten.KeyT,
	"u": ebiten.KeyU, "v": ebiten.KeyV, "w": ebiten.KeyW, "x": ebiten.KeyX,
	"y": ebiten.KeyY, "z": ebiten.KeyZ,
	"0": ebiten.KeyDigit0, "1": ebiten.KeyDigit1, "2": ebiten.KeyDigit2,
	"3": ebiten.KeyDigit3, "4": ebiten.KeyDigit4, "5": ebiten.KeyDigit5,
	"6": ebiten.KeyDigit6, "7": ebiten.KeyDigit7, "8": ebiten.KeyDigit8,
	"9": ebiten.KeyDigit9,
}

// binding is one physical key driving one seat's action.
type binding struct {
	key    ebiten.Key
	seat   core.PlayerID
	action core.Action
}

// bindingsFor resolves the configured schemes to keyboard keys. Names
// without a keyboard key are skipped. With one player both schemes drive
// Player 1.
func bindingsFor(in config.InputConfig, players int) []binding {
	var out []binding
	schemes := []struct {
		seat   core.PlayerID
		scheme core.ControlScheme
	}{
		{core.Player1, in.Player1.Scheme()},
		{core.Player2, in.Player2.Scheme()},
	}
	for _, s := range schemes {
		seat := s.seat
		if players < 2 {
			seat = core.Player1
		}
		for _, action := range []core.Action{core.ActionFire, core.ActionUp, core.ActionRight, core.ActionDown, core.ActionLeft} {
			name, ok := s.scheme.Keys()[action]
			if !ok {
				continue
			}
			if k, ok := keyNames[name]; ok {
				out = append(out, binding{key: k, seat: seat, action: action})
			}
		}
	}
	return out
}
