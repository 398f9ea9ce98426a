// Package battle adapts the tank battle simulation to the arcade platform:
// stage flow, the score tally between stages, the high score file and the
// translation of input frames into control events.
package battle

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tank-arcade/internal/config"
	"github.com/vovakirdan/tank-arcade/internal/core"
	"github.com/vovakirdan/tank-arcade/internal/games/battle/levels"
	"github.com/vovakirdan/tank-arcade/internal/games/battle/sim"
	"github.com/vovakirdan/tank-arcade/internal/registry"
	"github.com/vovakirdan/tank-arcade/internal/storage"
)

// Phase is the session screen currently shown.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseTally
	PhaseGameOver
	PhaseError
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseTally:
		return "tally"
	case PhaseGameOver:
		return "game-over"
	default:
		return "error"
	}
}

// Tally timing: one row per enemy kind is revealed, then the totals, then
// the screen holds before moving on.
const (
	tallyRowMs  = 500
	tallyHoldMs = 2000
	tallyRows   = int(sim.EnemyKindCount) + 1
	tallyMs     = tallyRowMs*tallyRows + tallyHoldMs
)

// Settings carries process-wide collaborators for games created through
// the registry.
type Settings struct {
	Logger      *log.Logger
	HiScorePath string // empty disables the high score file
}

var (
	settingsMu sync.RWMutex
	settings   Settings
)

// Configure sets the collaborators used by games created after the call.
func Configure(s Settings) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = s
}

func currentSettings() Settings {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}

func init() {
	registry.Register("battle", func() registry.Game {
		return New(1)
	})
	registry.Register("battle_2p", func() registry.Game {
		return New(2)
	})
}

// TallyRow is one player's column on the score tally screen.
type TallyRow struct {
	Seat  core.PlayerID
	Kills [sim.EnemyKindCount]int
	Bonus int
	Score int
}

// Tally is the summary shown after a stage ends.
type Tally struct {
	Stage    int
	Rows     []TallyRow
	HiScore  int
	GameOver bool
}

// Game is a tank battle session for one or two local players.
type Game struct {
	players int
	seats   []core.PlayerID
	logger  *log.Logger
	hiscore *storage.HiScoreFile
	hiScore int

	runtime  core.RuntimeConfig
	cfg      config.BattleConfig
	levels   *levels.Source
	world    *sim.World
	controls *Controls

	phase   Phase
	err     error
	stage   int
	paused  bool
	phaseMs int
	tally   Tally
	ticks   uint64
}

// New creates a session for the given number of players (1 or 2).
func New(players int) *Game {
	players = core.Clamp(players, 1, 2)
	g := &Game{players: players, hiScore: storage.DefaultHiScore}
	for seat := core.Player1; int(seat) <= players; seat++ {
		g.seats = append(g.seats, seat)
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.players == 2 {
		return "battle_2p"
	}
	return "battle"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.players == 2 {
		return "Battle City (2 players)"
	}
	return "Battle City"
}

// Players implements registry.MultiPlayerGame.
func (g *Game) Players() int {
	return g.players
}

// Reset loads configuration, stages and the high score and starts the
// first stage. Failures leave the session in PhaseError.
func (g *Game) Reset(rc core.RuntimeConfig) {
	s := currentSettings()
	g.logger = s.Logger
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	g.runtime = rc
	g.ticks = 0
	g.paused = false
	g.err = nil
	g.tally = Tally{}

	g.hiscore = nil
	g.hiScore = storage.DefaultHiScore
	if s.HiScorePath != "" {
		hf, err := storage.NewHiScoreFile(s.HiScorePath)
		if err != nil {
			g.logger.Warn("high score file unavailable", "path", s.HiScorePath, "err", err)
		} else {
			g.hiscore = hf
			g.hiScore = hf.Load()
		}
	}

	bc, err := config.LoadBattle(rc.ConfigPath)
	if err != nil {
		g.fail(err)
		return
	}
	if rc.Difficulty != "" {
		preset, ok := config.ParsePreset(rc.Difficulty)
		if !ok {
			g.fail(fmt.Errorf("unknown difficulty %q", rc.Difficulty))
			return
		}
		config.ApplyBattlePreset(&bc, preset)
	}
	g.cfg = bc

	src, err := levels.Open(rc.LevelsDir)
	if err != nil {
		g.fail(err)
		return
	}
	g.levels = src

	g.world = sim.New(bc,
		sim.WithLogger(g.logger),
		sim.WithSeed(rc.Seed),
		sim.WithPlayers(g.players),
		sim.WithLevels(src),
	)
	g.controls = NewControls(bc.Input.HoldReleaseMs)
	g.logger.Info("session started", "game", g.ID(), "levels", src.Where(), "seed", rc.Seed)
	g.startStage(max(bc.Gameplay.StartStage, 1))
}

func (g *Game) startStage(n int) {
	g.stage = n
	if err := g.world.StartStage(n); err != nil {
		g.fail(err)
		return
	}
	g.phase = PhasePlaying
	g.phaseMs = 0
	g.controls.Reset()
}

func (g *Game) fail(err error) {
	g.err = err
	g.phase = PhaseError
	g.logger.Error("battle stopped", "err", err)
}

// Step advances the session with Player 1 input only.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	multi := core.NewMultiInputFrame()
	multi.SetPlayer(core.Player1, in)
	return g.StepMulti(multi)
}

// StepMulti advances the session by one tick.
func (g *Game) StepMulti(in core.MultiInputFrame) core.StepResult {
	g.ticks++
	merged := in.Merged()
	tickMs := g.runtime.TickMs()
	var sounds []string

	switch g.phase {
	case PhasePlaying:
		if merged.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if g.paused {
			break
		}
		events := g.controls.Translate(in, g.seats, tickMs)
		g.world.Tick(tickMs, events)
		for _, s := range g.world.DrainSounds() {
			sounds = append(sounds, string(s))
		}
		switch g.world.Outcome() {
		case sim.OutcomeStageCleared:
			g.enterTally(false)
		case sim.OutcomeGameOver:
			g.enterTally(true)
		}

	case PhaseTally:
		g.phaseMs += tickMs
		if merged.Has(core.ActionConfirm) || merged.Has(core.ActionFire) {
			g.phaseMs = tallyMs
		}
		if g.phaseMs < tallyMs {
			break
		}
		if g.tally.GameOver {
			g.phase = PhaseGameOver
			g.phaseMs = 0
		} else {
			g.startStage(g.stage + 1)
		}

	case PhaseGameOver, PhaseError:
		g.phaseMs += tickMs
	}

	return core.StepResult{State: g.State(), Sounds: sounds}
}

// enterTally records the stage summary and updates the high score.
func (g *Game) enterTally(gameOver bool) {
	t := Tally{Stage: g.stage, GameOver: gameOver}
	best := 0
	for _, p := range g.world.Players() {
		t.Rows = append(t.Rows, TallyRow{
			Seat:  p.Seat,
			Kills: p.Trophies.Kills,
			Bonus: p.Trophies.Bonus,
			Score: p.Score,
		})
		best = max(best, p.Score)
	}
	if best > g.hiScore {
		g.hiScore = best
		if g.hiscore != nil {
			if err := g.hiscore.Save(best); err != nil {
				g.logger.Warn("could not save high score", "path", g.hiscore.Path(), "err", err)
			}
		}
	}
	t.HiScore = g.hiScore

	g.tally = t
	g.phase = PhaseTally
	g.phaseMs = 0
	g.logger.Info("stage finished", "stage", g.stage, "score", g.world.Score(), "game_over", gameOver)
}

// State returns the platform-facing state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		GameOver: g.phase == PhaseGameOver || g.phase == PhaseError,
		Paused:   g.paused,
		Stage:    g.stage,
	}
	if g.world != nil {
		st.Score = g.world.Score()
		for _, p := range g.world.Players() {
			st.Kills += p.Kills
		}
	}
	return st
}

// Phase returns the current session screen.
func (g *Game) Phase() Phase { return g.phase }

// Err returns the error that stopped the session, if any.
func (g *Game) Err() error { return g.err }

// World exposes the simulation for frontends that draw it themselves.
func (g *Game) World() *sim.World { return g.world }

// Tally returns the last stage summary.
func (g *Game) Tally() Tally { return g.tally }

// HiScore returns the best score known to this session.
func (g *Game) HiScore() int { return g.hiScore }

// TallyRevealed returns how many tally rows are visible so far.
func (g *Game) TallyRevealed() int {
	return min(g.phaseMs/tallyRowMs, tallyRows)
}

// Ticks returns the number of steps since Reset.
func (g *Game) Ticks() uint64 { return g.ticks }
