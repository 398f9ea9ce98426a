package battle

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tank-arcade/internal/core"
)

func TestRenderPlaying(t *testing.T) {
	g := New(1)
	g.Reset(testRuntime(t))
	s := core.NewScreen(MinWidth, MinHeight)
	g.Render(s)

	if s.Get(0, 0) != '┌' || s.Get(fieldCols+1, fieldRows+1) != '┘' {
		t.Errorf("field border missing:\n%s", s.String())
	}
	// Player 1 starts facing up at pixel (131, 387).
	if got := s.Get(fieldX+16, fieldY+24); got != '▐' {
		t.Errorf("tank cell = %q, expected '▐'", got)
	}
	if got := s.Get(fieldX+17, fieldY+24); got != '▲' {
		t.Errorf("tank turret = %q, expected '▲'", got)
	}
	if got := s.Get(fieldX+24, fieldY+24); got != '╔' {
		t.Errorf("castle cell = %q, expected '╔'", got)
	}

	out := s.String()
	for _, want := range []string{"HI-SCORE", "1P SCORE", "STAGE 1", "ENEMIES"} {
		if !strings.Contains(out, want) {
			t.Errorf("sidebar missing %q", want)
		}
	}
}

func TestRenderPaused(t *testing.T) {
	g := New(1)
	g.Reset(testRuntime(t))
	g.Step(press(core.ActionPause))

	s := core.NewScreen(MinWidth, MinHeight)
	g.Render(s)
	if !strings.Contains(s.String(), "PAUSED") {
		t.Error("paused session should say so")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New(1)
	g.Reset(testRuntime(t))
	s := core.NewScreen(40, 10)
	g.Render(s)
	if !strings.Contains(s.String(), "too small") {
		t.Errorf("Render() = %q, expected size warning", s.String())
	}
}

func TestRenderTallyAndGameOver(t *testing.T) {
	configureHiScore(t)
	g := New(2)
	g.Reset(testRuntime(t))
	g.enterTally(true)

	s := core.NewScreen(MinWidth, MinHeight)
	g.Render(s)
	out := s.String()
	for _, want := range []string{"STAGE 1", "1-PLAYER", "2-PLAYER", "HI-SCORE"} {
		if !strings.Contains(out, want) {
			t.Errorf("tally missing %q", want)
		}
	}

	g.Step(press(core.ActionConfirm))
	if g.Phase() != PhaseGameOver {
		t.Fatalf("Phase() = %v, expected game over", g.Phase())
	}
	g.Render(s)
	if !strings.ContainsRune(s.String(), '▓') || !strings.Contains(s.String(), "R restart") {
		t.Errorf("game over screen:\n%s", s.String())
	}
}
