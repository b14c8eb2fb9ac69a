// Package validator implements structural checks over a board's
// instructions plus an optional budgeted solvability check, using a
// budgeted run of this repo's own backtracking solver rather than a
// reachability search.
package validator

import (
	"fmt"
	"time"

	"github.com/eng618/nonosolve/pkg/model"
	"github.com/eng618/nonosolve/pkg/solve"
)

// StructuralError is one structural defect found in a board's instructions.
type StructuralError struct {
	Dimension string // "row" or "column"
	Index     int
	Message   string
}

func (e StructuralError) Error() string {
	return fmt.Sprintf("%s %d: %s", e.Dimension, e.Index, e.Message)
}

// ValidateStructural checks that every row and column instruction list's
// min_length fits the grid, reporting every violation rather than
// stopping at the first.
func ValidateStructural(board *model.Board) []error {
	var errs []error
	rows, columns := board.Size()

	for r := 0; r < rows; r++ {
		ins := board.RowInstructions(r)
		if ins.MinLength() > columns {
			errs = append(errs, StructuralError{
				Dimension: "row", Index: r,
				Message: fmt.Sprintf("min_length %d exceeds row width %d", ins.MinLength(), columns),
			})
		}
	}
	for c := 0; c < columns; c++ {
		ins := board.ColumnInstructions(c)
		if ins.MinLength() > rows {
			errs = append(errs, StructuralError{
				Dimension: "column", Index: c,
				Message: fmt.Sprintf("min_length %d exceeds column height %d", ins.MinLength(), rows),
			})
		}
	}

	total := sumRuns(board, rows, columns)
	if total.rowFillCells != total.columnFillCells {
		errs = append(errs, StructuralError{
			Dimension: "board", Index: -1,
			Message: fmt.Sprintf("total filled cells implied by rows (%d) disagrees with columns (%d)",
				total.rowFillCells, total.columnFillCells),
		})
	}

	return errs
}

type fillTotals struct {
	rowFillCells, columnFillCells int
}

func sumRuns(board *model.Board, rows, columns int) fillTotals {
	var t fillTotals
	for r := 0; r < rows; r++ {
		ins := board.RowInstructions(r)
		for i := 0; i < ins.Len(); i++ {
			t.rowFillCells += ins.At(i)
		}
	}
	for c := 0; c < columns; c++ {
		ins := board.ColumnInstructions(c)
		for i := 0; i < ins.Len(); i++ {
			t.columnFillCells += ins.At(i)
		}
	}
	return t
}

// SolvabilityResult reports whether a board solves within a deadline
// budget, without mutating the caller's board (it solves a clone). No step
// budget is applied.
type SolvabilityResult struct {
	Solvable bool
	Outcome  solve.Outcome
	Metrics  solve.Metrics
}

// CheckSolvability runs the by-order backtracking solver against a clone of
// board, bounded by deadline (zero means unbounded).
func CheckSolvability(board *model.Board, deadline time.Duration) SolvabilityResult {
	attempt := board.Clone()
	solver := solve.NewByOrderSolver()
	if deadline > 0 {
		solver = solver.WithDeadline(deadline)
	}
	outcome, metrics := solver.Solve(attempt)
	return SolvabilityResult{
		Solvable: outcome == solve.Solved,
		Outcome:  outcome,
		Metrics:  metrics,
	}
}
