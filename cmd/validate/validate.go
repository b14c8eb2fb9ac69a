// Package validate provides the "validate" subcommand: structural checks
// over a puzzle's instructions plus an optional budgeted solvability check.
package validate

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/eng618/nonosolve/pkg/common"
	"github.com/eng618/nonosolve/pkg/loader"
	"github.com/eng618/nonosolve/pkg/model"
	"github.com/eng618/nonosolve/pkg/ui"
	"github.com/eng618/nonosolve/pkg/validator"
)

var (
	checkSolvability bool
	deadline         time.Duration
)

var validateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Validate a puzzle's structure and, optionally, its solvability",
	Args:  cobra.ExactArgs(1),
	RunE:  run,
}

func init() {
	validateCmd.Flags().BoolVar(&checkSolvability, "solvability", false, "also run a budgeted solvability check")
	validateCmd.Flags().DurationVar(&deadline, "deadline", 10*time.Second, "solvability check deadline")
}

// GetCommand returns the validate command for registration with root.
func GetCommand() *cobra.Command {
	return validateCmd
}

func run(cmd *cobra.Command, args []string) error {
	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	defer file.Close()

	rows, columns, err := loader.ParseInstructions(file)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	board := model.NewBoard(rows, columns)

	structErrs := validator.ValidateStructural(board)
	for _, e := range structErrs {
		common.Warning("structural: %v", e)
	}
	if len(structErrs) > 0 {
		return fmt.Errorf("validate: %d structural error(s)", len(structErrs))
	}
	common.Info("structural check passed")

	if !checkSolvability {
		return nil
	}

	spinner := ui.New("checking solvability...")
	spinner.Start()
	result := validator.CheckSolvability(board, deadline)
	spinner.Stop()
	common.Info("solvability: %s (steps=%d guesses=%d duration=%s)",
		result.Outcome, result.Metrics.Steps, result.Metrics.Guesses, result.Metrics.Duration)
	if !result.Solvable {
		return fmt.Errorf("validate: not solvable within budget (%s)", result.Outcome)
	}
	return nil
}
