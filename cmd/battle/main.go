// battle is a tank battle for one or two players, in the terminal, in a
// window or over SSH.
//
// Usage:
//
//	battle play [1|2]        - Play directly, or pick the mode from a menu
//	battle desktop [1|2]     - Play in a window
//	battle levels            - List, validate and show stages
//	battle scores [mode]     - Show high scores
//	battle serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 50)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--hiscore <path>      - High score file (default: ~/.arcade/battle_hiscore)
//	--config <path>       - Custom battle.yaml
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--levels <dir>        - Directory of stage files instead of the built-in set
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tank-arcade/internal/core"
	"github.com/vovakirdan/tank-arcade/internal/games/battle"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagHiScore    string
	flagConfig     string
	flagDifficulty string
	flagLevels     string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "battle",
	Short: "Battle City style tank battle",
	Long: `Defend the castle against waves of enemy tanks, alone or with a friend
on the same keyboard.

Available commands:
  play     - Play in the terminal
  desktop  - Play in a window
  levels   - Inspect stage files
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  battle play
  battle play 2 --difficulty hard
  battle desktop
  battle levels validate --levels ./stages
  battle serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 50, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	pf.StringVar(&flagHiScore, "hiscore", "~/.arcade/battle_hiscore", "Path to the high score file")
	pf.StringVar(&flagConfig, "config", "", "Path to custom battle config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLevels, "levels", "", "Directory of stage files (built-in stages when empty)")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(desktopCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// runtimeConfig builds the per-game configuration from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		LevelsDir:  flagLevels,
	}
}

// gameID returns the registry id for a player count argument.
func gameID(args []string) (string, error) {
	if len(args) == 0 || args[0] == "1" {
		return "battle", nil
	}
	if args[0] == "2" {
		return "battle_2p", nil
	}
	return "", fmt.Errorf("player count must be 1 or 2, got %q", args[0])
}

// configureGame wires the shared collaborators into the battle package.
func configureGame(logger *log.Logger) {
	battle.Configure(battle.Settings{
		Logger:      logger,
		HiScorePath: flagHiScore,
	})
}
