package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tank-arcade/internal/core"
)

type stubGame struct {
	id      string
	players int
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }
func (g *stubGame) Players() int                         { return g.players }

func (g *stubGame) StepMulti(core.MultiInputFrame) core.StepResult {
	return core.StepResult{}
}

func TestRegisterListCreate(t *testing.T) {
	Register("zz_stub_duo", func() Game { return &stubGame{id: "zz_stub_duo", players: 2} })

	if !Exists("zz_stub_duo") {
		t.Fatal("Exists() = false after Register")
	}

	var found GameInfo
	for _, info := range List() {
		if info.ID == "zz_stub_duo" {
			found = info
		}
	}
	if found.Players != 2 || found.Title != "Stub zz_stub_duo" {
		t.Errorf("List() entry = %+v", found)
	}

	g, err := Create("zz_stub_duo")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, ok := g.(MultiPlayerGame); !ok {
		t.Error("created game should implement MultiPlayerGame")
	}

	if _, err := Create("zz_missing"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create() of unknown id error = %v, expected ErrUnknownGame", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_stub_once", func() Game { return &stubGame{id: "zz_stub_once", players: 1} })

	defer func() {
		if recover() == nil {
			t.Error("second Register() with same id should panic")
		}
	}()
	Register("zz_stub_once", func() Game { return &stubGame{id: "zz_stub_once", players: 1} })
}
