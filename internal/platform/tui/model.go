package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tank-arcade/internal/config"
	"github.com/vovakirdan/tank-arcade/internal/core"
	"github.com/vovakirdan/tank-arcade/internal/registry"
	"github.com/vovakirdan/tank-arcade/internal/storage"
)

// GameOptions are the collaborators of a GameModel. Every field is optional.
type GameOptions struct {
	Store       *storage.Store
	Logger      *log.Logger
	Input       *config.InputConfig // key bindings; built-in defaults when nil
	Clipboard   bool                // ctrl+y copies the frame to the local clipboard
	Screenshots bool                // ctrl+s writes the frame to ShotDir
	ShotDir     string              // ~/.arcade/screenshots when empty
}

// GameModel runs one game inside a Bubble Tea program. It is used on its
// own by `battle play` and embedded in SessionModel for menus and SSH.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	opts       GameOptions
	config     core.RuntimeConfig
	inputFrame core.MultiInputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
	scoreSaved bool
	status     string // last screenshot/clipboard result
	chain      uint64
}

// NewGameModel creates a model for game. A zero seed is replaced by the clock.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	input := config.DefaultBattleConfig().Input
	if opts.Input != nil {
		input = *opts.Input
	}
	players := 1
	if mp, ok := game.(registry.MultiPlayerGame); ok {
		players = mp.Players()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		inputFrame: core.NewMultiInputFrame(),
		keyMapper:  NewKeyMapper(input, players),
		chain:      newTickChain(),
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.chain)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		if msg.Chain != m.chain {
			return m, nil
		}
		return m.handleTick()
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.status = m.saveScreenshot()
		return m, nil
	case "ctrl+y":
		m.status = m.copyFrame()
		return m, nil
	}

	if m.keyMapper.MapKeyToMultiFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.keyMapper.MapKeyToMenuAction(msg) == MenuActionBack && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
	}
	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	merged := m.inputFrame.Merged()
	if merged.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate, m.chain)
	}

	var result core.StepResult
	if mp, ok := m.game.(registry.MultiPlayerGame); ok {
		result = mp.StepMulti(m.inputFrame)
	} else {
		result = m.game.Step(m.inputFrame.Player(core.Player1))
	}
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		m.saveScore()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.chain)
}

func (m GameModel) saveScore() {
	if m.opts.Store == nil {
		return
	}
	st := m.gameState
	if _, err := m.opts.Store.SaveScore(m.game.ID(), st.Score, st.Stage, st.Kills); err != nil {
		m.opts.Logger.Warn("could not save score", "game", m.game.ID(), "err", err)
		return
	}
	m.opts.Logger.Info("score saved", "game", m.game.ID(), "score", st.Score, "stage", st.Stage)
}

// saveScreenshot writes the current frame as text and returns a status line.
func (m GameModel) saveScreenshot() string {
	if !m.opts.Screenshots {
		return "screenshots disabled"
	}
	m.game.Render(m.screen)

	dir := m.opts.ShotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "screenshot failed"
		}
		dir = filepath.Join(home, ".arcade", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot failed", "err", err)
		return "screenshot failed"
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "err", err)
		return "screenshot failed"
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
	return "saved " + path
}

// copyFrame puts the current frame on the clipboard.
func (m GameModel) copyFrame() string {
	if !m.opts.Clipboard {
		return "clipboard unavailable"
	}
	m.game.Render(m.screen)
	if err := clipboard.WriteAll(m.screen.String()); err != nil {
		m.opts.Logger.Warn("clipboard copy failed", "err", err)
		return "clipboard unavailable"
	}
	return "frame copied"
}

// View renders the game, with the last status message on the bottom row.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	if m.status != "" {
		m.screen.DrawTextColored(0, m.screen.Height()-1, m.status, core.ColorGray)
	}
	return RenderScreen(m.screen)
}

// State returns the game state after the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the terminal.
func Run(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) error {
	p := tea.NewProgram(NewGameModel(game, cfg, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
