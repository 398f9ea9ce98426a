package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tank-arcade/internal/platform/desktop"
	"github.com/vovakirdan/tank-arcade/internal/storage"
)

var flagScale int

var desktopCmd = &cobra.Command{
	Use:   "desktop [1|2]",
	Short: "Play in a window",
	Long: `Open the battle in a desktop window. Keys are read as real presses and
releases, so a tank stops the moment its direction key goes up.

Examples:
  battle desktop
  battle desktop 2 --scale 3`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDesktop,
}

func init() {
	desktopCmd.Flags().IntVar(&flagScale, "scale", 2, "Window zoom factor")
}

func runDesktop(_ *cobra.Command, args []string) error {
	id, err := gameID(args)
	if err != nil {
		return err
	}
	players := 1
	if id == "battle_2p" {
		players = 2
	}

	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer logger.Close()
	configureGame(logger.Logger)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	} else {
		defer store.Close()
	}

	return desktop.Run(desktop.Options{
		Runtime: runtimeConfig(0, 0),
		Players: players,
		Scale:   flagScale,
		Store:   store,
		Logger:  logger.Logger,
	})
}
