package desktop

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tank-arcade/internal/config"
	"github.com/vovakirdan/tank-arcade/internal/core"
)

func TestBindingsForTwoPlayers(t *testing.T) {
	got := bindingsFor(config.DefaultBattleConfig().Input, 2)
	if len(got) != 10 {
		t.Fatalf("bindingsFor() = %d bindings, expected 10", len(got))
	}

	want := map[ebiten.Key]binding{
		ebiten.KeySpace:   {ebiten.KeySpace, core.Player1, core.ActionFire},
		ebiten.KeyArrowUp: {ebiten.KeyArrowUp, core.Player1, core.ActionUp},
		ebiten.KeyF:       {ebiten.KeyF, core.Player2, core.ActionFire},
		ebiten.KeyA:       {ebiten.KeyA, core.Player2, core.ActionLeft},
	}
	for _, b := range got {
		if w, ok := want[b.key]; ok && w != b {
			t.Errorf("binding for %v = %+v, expected %+v", b.key, b, w)
		}
	}
}

func TestBindingsForSinglePlayer(t *testing.T) {
	for _, b := range bindingsFor(config.DefaultBattleConfig().Input, 1) {
		if b.seat != core.Player1 {
			t.Errorf("binding %+v should drive player 1", b)
		}
	}
}

func TestBindingsSkipUnknownNames(t *testing.T) {
	in := config.DefaultBattleConfig().Input
	in.Player1.Fire = "f13"
	for _, b := range bindingsFor(in, 2) {
		if b.seat == core.Player1 && b.action == core.ActionFire {
			t.Errorf("unknown key name should be skipped, got %+v", b)
		}
	}
}

func TestLayout(t *testing.T) {
	a := &App{}
	w, h := a.Layout(1920, 1080)
	if w != 576 || h != 448 {
		t.Errorf("Layout() = %d, %d, expected 576, 448", w, h)
	}
}
