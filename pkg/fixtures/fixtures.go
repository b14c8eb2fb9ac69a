// Package fixtures holds a small set of built-in reference puzzles with
// known solutions, used to regression-test the solver.
package fixtures

import "github.com/eng618/nonosolve/pkg/model"

// Puzzle is a named fixture: its board (instructions only, Grid Unset) and
// its reference solution, attached to Board.Solution.
type Puzzle struct {
	Name  string
	Board *model.Board
}

// letterNDiagonal is the column each row's diagonal stroke occupies,
// monotonically non-decreasing from the top-left to the bottom-right of
// the N.
var letterNDiagonal = [10]int{2, 2, 3, 3, 4, 4, 5, 5, 6, 7}

// LetterN returns the 10x10 letter-N fixture: two vertical bars (columns
// 0-1 and 8-9) joined by a diagonal stroke.
func LetterN() Puzzle {
	const size = 10
	solution := model.NewGrid(size, size)
	for r := 0; r < size; r++ {
		for _, c := range []int{0, 1, letterNDiagonal[r], 8, 9} {
			solution.SetState(model.Location{Row: r, Column: c}, model.Fill)
		}
		for c := 0; c < size; c++ {
			if solution.State(model.Location{Row: r, Column: c}) != model.Fill {
				solution.SetState(model.Location{Row: r, Column: c}, model.Empty)
			}
		}
	}

	rowIns := make([]model.RunInstructions, size)
	for r := 0; r < size; r++ {
		rowIns[r] = model.RunInstructionsFromLine(solution.Row(r))
	}
	colIns := make([]model.RunInstructions, size)
	for c := 0; c < size; c++ {
		colIns[c] = model.RunInstructionsFromLine(solution.Column(c))
	}

	board := model.NewBoard(rowIns, colIns)
	board.Solution = solution
	return Puzzle{Name: "letter-N", Board: board}
}

// All returns every built-in fixture.
func All() []Puzzle {
	return []Puzzle{LetterN()}
}
