// Package fixtures provides the "fixtures" subcommand: run every built-in
// reference puzzle end-to-end (instructions -> solve -> compare to
// reference) and report pass/fail, as a solver regression test.
package fixtures

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eng618/nonosolve/pkg/common"
	fixturespkg "github.com/eng618/nonosolve/pkg/fixtures"
	"github.com/eng618/nonosolve/pkg/solve"
)

var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "Run every built-in reference puzzle and report pass/fail",
	RunE:  run,
}

// GetCommand returns the fixtures command for registration with root.
func GetCommand() *cobra.Command {
	return fixturesCmd
}

func run(cmd *cobra.Command, args []string) error {
	failures := 0
	for _, puzzle := range fixturespkg.All() {
		outcome, metrics := solve.NewByOrderSolver().Solve(puzzle.Board)
		matches := outcome == solve.Solved && puzzle.Board.Grid.Equal(puzzle.Board.Solution)
		status := "ok"
		if !matches {
			status = "FAIL"
			failures++
		}
		common.Info("%s: %s (%s, steps=%d guesses=%d)", puzzle.Name, status, outcome, metrics.Steps, metrics.Guesses)
	}
	if failures > 0 {
		return fmt.Errorf("fixtures: %d fixture(s) failed", failures)
	}
	return nil
}
