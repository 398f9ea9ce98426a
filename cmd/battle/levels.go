package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tank-arcade/internal/games/battle/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List, validate and show stages",
	Long: `Inspect the stage set used by the game: the built-in stages, or the
directory given with --levels.

Examples:
  battle levels list
  battle levels validate --levels ./my-stages
  battle levels show 3`,
}

var levelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stage files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		src, err := levels.Open(flagLevels)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Stages (%s):\n\n", src.Where())
		for stage := 1; stage <= src.Count(); stage++ {
			fmt.Fprintf(out, "  %3d  %s\n", stage, src.Name(stage))
		}
		return nil
	},
}

var levelsValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every stage file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		src, err := levels.Open(flagLevels)
		if err != nil {
			return err
		}
		problems := src.Validate()
		out := cmd.OutOrStdout()
		for _, p := range problems {
			fmt.Fprintf(out, "  %v\n", p)
		}
		if len(problems) > 0 {
			return fmt.Errorf("%d problem(s) in %s", len(problems), src.Where())
		}
		fmt.Fprintf(out, "%d stages OK (%s)\n", src.Count(), src.Where())
		return nil
	},
}

var levelsShowCmd = &cobra.Command{
	Use:   "show <stage>",
	Short: "Print a stage grid",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stage, err := strconv.Atoi(args[0])
		if err != nil || stage < 1 {
			return fmt.Errorf("stage must be a positive number, got %q", args[0])
		}
		src, err := levels.Open(flagLevels)
		if err != nil {
			return err
		}
		data, err := src.Load(stage)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Stage %d (%s)\n\n", stage, src.Name(stage))
		fmt.Fprint(out, string(data))
		return nil
	},
}

func init() {
	levelsCmd.AddCommand(levelsListCmd)
	levelsCmd.AddCommand(levelsValidateCmd)
	levelsCmd.AddCommand(levelsShowCmd)
}
