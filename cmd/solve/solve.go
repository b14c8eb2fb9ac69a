// Package solve provides the "solve" subcommand: load a puzzle from an
// instruction file or monochrome image and run the backtracking solver
// against it.
package solve

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/eng618/nonosolve/pkg/common"
	"github.com/eng618/nonosolve/pkg/loader"
	"github.com/eng618/nonosolve/pkg/model"
	"github.com/eng618/nonosolve/pkg/render"
	"github.com/eng618/nonosolve/pkg/solve"
	"github.com/eng618/nonosolve/pkg/ui"
)

var (
	strategy   string
	sweep      string
	deadline   time.Duration
	fromImage  bool
	printBoard bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <path>",
	Short: "Solve a puzzle from an instruction file or monochrome image",
	Args:  cobra.ExactArgs(1),
	RunE:  run,
}

func init() {
	solveCmd.Flags().StringVar(&strategy, "strategy", "by-order", "guess locator: 'by-order' or 'most-info'")
	solveCmd.Flags().StringVar(&sweep, "sweep", "full", "propagation sweep: 'full' or 'dirty'")
	solveCmd.Flags().DurationVar(&deadline, "deadline", 0, "cooperative solve deadline (0 = unbounded)")
	solveCmd.Flags().BoolVar(&fromImage, "image", false, "treat <path> as a monochrome PNG instead of an instruction file")
	solveCmd.Flags().BoolVar(&printBoard, "render", true, "print the board after the solve attempt, whatever its outcome")
}

// GetCommand returns the solve command for registration with root.
func GetCommand() *cobra.Command {
	return solveCmd
}

func run(cmd *cobra.Command, args []string) error {
	board, err := loadBoard(args[0])
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	solver, err := buildSolver(strategy, sweep, deadline)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	spinner := ui.New(fmt.Sprintf("solving %s...", args[0]))
	spinner.Start()
	outcome, metrics := solver.Solve(board)
	spinner.Stop()

	common.Info("outcome: %s (steps=%d guesses=%d sweeps=%d duration=%s)",
		outcome, metrics.Steps, metrics.Guesses, metrics.Sweeps, metrics.Duration)

	if printBoard {
		render.Board(os.Stdout, board, render.Unicode)
	}

	if outcome != solve.Solved {
		return fmt.Errorf("solve: puzzle %s", outcome)
	}
	return nil
}

func loadBoard(path string) (*model.Board, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	if fromImage {
		board, err := loader.LoadImage(file)
		if err != nil {
			return nil, err
		}
		return board, nil
	}

	rows, columns, err := loader.ParseInstructions(file)
	if err != nil {
		return nil, err
	}
	return model.NewBoard(rows, columns), nil
}

func buildSolver(strategy, sweep string, deadline time.Duration) (*solve.Solver, error) {
	var solver *solve.Solver
	switch strategy {
	case "by-order":
		solver = solve.NewByOrderSolver()
	case "most-info":
		solver = solve.NewMostInfoSolver()
	default:
		return nil, fmt.Errorf("unknown --strategy %q (want 'by-order' or 'most-info')", strategy)
	}

	switch sweep {
	case "full":
	case "dirty":
		solver = solver.WithDirtySweep()
	default:
		return nil, fmt.Errorf("unknown --sweep %q (want 'full' or 'dirty')", sweep)
	}

	if deadline > 0 {
		solver = solver.WithDeadline(deadline)
	}
	return solver, nil
}
