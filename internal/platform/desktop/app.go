// Package desktop runs the tank battle in a window. Unlike a terminal it
// sees real key-down and key-up events, so held directions are reported
// every tick and released the moment the key goes up.
package desktop

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tank-arcade/internal/config"
	"github.com/vovakirdan/tank-arcade/internal/core"
	"github.com/vovakirdan/tank-arcade/internal/games/battle"
	"github.com/vovakirdan/tank-arcade/internal/storage"
)

// Options configures a window session.
type Options struct {
	Runtime core.RuntimeConfig
	Players int
	Scale   int // window zoom, 2 when unset
	Store   *storage.Store
	Logger  *log.Logger
}

// App implements ebiten.Game around a battle session.
type App struct {
	game       *battle.Game
	runtime    core.RuntimeConfig
	bindings   []binding
	store      *storage.Store
	logger     *log.Logger
	scoreSaved bool
}

// New creates the session and resets it.
func New(opts Options) (*App, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	bc, err := config.LoadBattle(opts.Runtime.ConfigPath)
	if err != nil {
		return nil, err
	}

	a := &App{
		game:     battle.New(opts.Players),
		runtime:  opts.Runtime,
		bindings: bindingsFor(bc.Input, opts.Players),
		store:    opts.Store,
		logger:   opts.Logger,
	}
	a.game.Reset(a.runtime)
	return a, nil
}

// Update advances the session by one tick.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	in := core.NewMultiInputFrame()
	for _, b := range a.bindings {
		f := in.Player(b.seat)
		switch {
		case b.action == core.ActionFire:
			if inpututil.IsKeyJustPressed(b.key) {
				f.Set(b.action)
			}
		case ebiten.IsKeyPressed(b.key):
			f.Set(b.action)
		case inpututil.IsKeyJustReleased(b.key):
			f.Release(b.action)
		}
		in.SetPlayer(b.seat, f)
	}

	session := in.Player(core.Player1)
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		session.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		session.Set(core.ActionConfirm)
	}
	in.SetPlayer(core.Player1, session)

	if a.game.State().GameOver && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.runtime.Seed = time.Now().UnixNano()
		a.game.Reset(a.runtime)
		a.scoreSaved = false
		return nil
	}

	st := a.game.StepMulti(in).State
	if st.GameOver && !a.scoreSaved && st.Score > 0 {
		a.scoreSaved = true
		if a.store != nil {
			if _, err := a.store.SaveScore(a.game.ID(), st.Score, st.Stage, st.Kills); err != nil {
				a.logger.Warn("could not save score", "err", err)
			}
		}
	}
	return nil
}

// Layout reports the fixed logical screen size.
func (a *App) Layout(_, _ int) (int, int) {
	return screenW, screenH
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	app, err := New(opts)
	if err != nil {
		return err
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 2
	}
	ebiten.SetWindowSize(screenW*scale, screenH*scale)
	ebiten.SetWindowTitle(app.game.Title())
	ebiten.SetTPS(max(opts.Runtime.TickRate, 1))

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
