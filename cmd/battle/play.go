package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tank-arcade/internal/config"
	"github.com/vovakirdan/tank-arcade/internal/platform/tui"
	"github.com/vovakirdan/tank-arcade/internal/registry"
	"github.com/vovakirdan/tank-arcade/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [1|2]",
	Short: "Play in the terminal",
	Long: `Start a battle in the terminal. Without an argument a menu lets you
pick the number of players and browse the score history.

Controls (player 1 / player 2):
  Arrows / W A S D   - Move
  Space  / F         - Fire
  P                  - Pause
  Enter              - Skip the score tally
  R                  - Restart (after game over)
  B/Esc              - Back to menu (paused or after game over)
  Ctrl+S             - Save a screenshot
  Ctrl+Y             - Copy the screen to the clipboard
  Q/Ctrl+C           - Quit

Key bindings can be changed in the input section of battle.yaml.

Examples:
  battle play
  battle play 1 --difficulty easy
  battle play 2 --levels ./my-stages
  battle play --config ./my-battle.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	logger, err := newLogger(nil)
	if err != nil {
		return err
	}
	defer logger.Close()
	configureGame(logger.Logger)

	bc, err := config.LoadBattle(flagConfig)
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 28
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	cfg := runtimeConfig(width, height)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	} else {
		defer store.Close()
	}

	opts := tui.GameOptions{
		Store:       store,
		Logger:      logger.Logger,
		Input:       &bc.Input,
		Clipboard:   true,
		Screenshots: true,
	}

	if len(args) == 0 {
		return tui.RunSession(cfg, opts)
	}

	id, err := gameID(args)
	if err != nil {
		return err
	}
	game, err := registry.Create(id)
	if err != nil {
		return err
	}
	return tui.Run(game, cfg, opts)
}
