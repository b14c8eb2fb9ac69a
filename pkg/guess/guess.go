// Package guess implements two guess locators: picking an Unset cell and
// a tentative state to branch on when propagation stalls.
package guess

import (
	"github.com/eng618/nonosolve/pkg/model"
	"github.com/eng618/nonosolve/pkg/propagate"
)

// Guess is a tentative (location, state) assignment.
type Guess struct {
	Location model.Location
	State    model.CellState
}

// Flip returns the same location with the opposite tentative state.
func (g Guess) Flip() Guess {
	if g.State == model.Fill {
		return Guess{Location: g.Location, State: model.Empty}
	}
	return Guess{Location: g.Location, State: model.Fill}
}

// ByOrder scans the board row-major starting just after last's location,
// returning the next Unset cell paired with Fill. Returns (Guess{}, false)
// if every cell is set. Pass a Guess whose Location has a negative Row
// (e.g. Location{-1, -1}) to start from the beginning; the zero Guess
// (Location{0, 0}) starts the scan after cell (0, 0).
func ByOrder(board *model.Board, last Guess) (Guess, bool) {
	rows, columns := board.Size()
	row, column := last.Location.Row, last.Location.Column
	if row < 0 {
		row, column = 0, -1
	}
	for {
		column++
		if column == columns {
			column = 0
			row++
		}
		if row == rows {
			return Guess{}, false
		}
		loc := model.Location{Row: row, Column: column}
		if board.Grid.State(loc) == model.Unset {
			return Guess{Location: loc, State: model.Fill}, true
		}
	}
}

// MostInfo tries both tentative states of every Unset cell, simulating a
// full propagation sweep for each, and returns the (location, state) that
// produced the most forced updates. Ties are broken by row-major scan
// order. It leaves the board in exactly the state it received: every
// simulated assignment and every forced update from its propagation is
// undone before MostInfo returns.
func MostInfo(board *model.Board) (Guess, bool) {
	rows, columns := board.Size()
	best := Guess{}
	found := false
	bestCount := -1

	for r := 0; r < rows; r++ {
		for c := 0; c < columns; c++ {
			loc := model.Location{Row: r, Column: c}
			if board.Grid.State(loc) != model.Unset {
				continue
			}
			for _, state := range []model.CellState{model.Fill, model.Empty} {
				board.Grid.SetState(loc, state)
				result := propagate.FullSweep(board)
				count := len(result.Updates)
				if !result.Contradiction && count > bestCount {
					bestCount = count
					best = Guess{Location: loc, State: state}
					found = true
				}
				propagate.Undo(board, result)
				board.Grid.SetState(loc, model.Unset)
			}
		}
	}
	return best, found
}
