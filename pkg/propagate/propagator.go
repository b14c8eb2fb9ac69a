// Package propagate implements the board-level propagation loop:
// repeatedly running the line analyzer and info adder over every row and
// column until no new deductions are made, or a line is found
// unsatisfiable.
package propagate

import (
	"github.com/eng618/nonosolve/pkg/lineanalysis"
	"github.com/eng618/nonosolve/pkg/model"
)

// Update is one cell write the propagator applied, recorded so a caller
// (the backtracking solver) can undo it in reverse order.
type Update struct {
	Loc      model.Location
	Previous model.CellState
	Applied  model.CellState
}

// Result is the outcome of a propagation run.
type Result struct {
	// Contradiction is true if some line was found unsatisfiable.
	Contradiction bool
	// Updates are every cell write applied, in application order.
	Updates []Update
}

func applyForced(grid *model.Grid, loc model.Location, state model.CellState, result *Result) {
	previous := grid.State(loc)
	grid.SetState(loc, state)
	result.Updates = append(result.Updates, Update{Loc: loc, Previous: previous, Applied: state})
}

func rowUpdates(board *model.Board, row int, result *Result) bool {
	line := board.Row(row)
	if line.IsFullySet() {
		return true
	}
	placement := lineanalysis.Analyze(line, board.RowInstructions(row))
	if !placement.Satisfiable {
		return false
	}
	for _, u := range lineanalysis.ForcedUpdates(line, placement) {
		applyForced(board.Grid, model.Location{Row: row, Column: u.Index}, u.State, result)
	}
	return true
}

func columnUpdates(board *model.Board, column int, result *Result) bool {
	line := board.Column(column)
	if line.IsFullySet() {
		return true
	}
	placement := lineanalysis.Analyze(line, board.ColumnInstructions(column))
	if !placement.Satisfiable {
		return false
	}
	for _, u := range lineanalysis.ForcedUpdates(line, placement) {
		applyForced(board.Grid, model.Location{Row: u.Index, Column: column}, u.State, result)
	}
	return true
}

// FullSweep repeatedly scans every row then every column, applying forced
// updates, until a sweep makes no change or the board is solved. If the
// analyzer finds a line unsatisfiable it aborts immediately, returning
// Contradiction true and the updates applied so far (for the caller to
// roll back). Lines with no Unset cell are not analyzed, so a fully-set
// line that disagrees with its instructions does not set Contradiction.
func FullSweep(board *model.Board) Result {
	var result Result
	rows, columns := board.Size()
	for {
		if board.IsSolved() {
			return result
		}
		changed := false
		before := len(result.Updates)
		for r := 0; r < rows; r++ {
			if !rowUpdates(board, r, &result) {
				result.Contradiction = true
				return result
			}
		}
		for c := 0; c < columns; c++ {
			if !columnUpdates(board, c, &result) {
				result.Contradiction = true
				return result
			}
		}
		if len(result.Updates) > before {
			changed = true
		}
		if !changed {
			return result
		}
	}
}

// DirtySweep is the dirty-set variant: it only re-analyzes rows and
// columns a prior sweep actually touched, seeding every row and column as
// dirty initially. It produces the same grid as FullSweep but usually
// does less work on large boards.
func DirtySweep(board *model.Board) Result {
	var result Result
	rows, columns := board.Size()

	dirtyRows := make([]bool, rows)
	dirtyColumns := make([]bool, columns)
	for r := range dirtyRows {
		dirtyRows[r] = true
	}
	for c := range dirtyColumns {
		dirtyColumns[c] = true
	}

	anyDirty := func() bool {
		for _, d := range dirtyRows {
			if d {
				return true
			}
		}
		for _, d := range dirtyColumns {
			if d {
				return true
			}
		}
		return false
	}

	for anyDirty() {
		for r := 0; r < rows; r++ {
			if !dirtyRows[r] {
				continue
			}
			dirtyRows[r] = false
			before := len(result.Updates)
			if !rowUpdates(board, r, &result) {
				result.Contradiction = true
				return result
			}
			for _, u := range result.Updates[before:] {
				dirtyColumns[u.Loc.Column] = true
			}
		}
		for c := 0; c < columns; c++ {
			if !dirtyColumns[c] {
				continue
			}
			dirtyColumns[c] = false
			before := len(result.Updates)
			if !columnUpdates(board, c, &result) {
				result.Contradiction = true
				return result
			}
			for _, u := range result.Updates[before:] {
				dirtyRows[u.Loc.Row] = true
			}
		}
	}
	return result
}

// Undo reverts every update in result, in reverse order, resetting each
// cell to its previous state. Used by the backtracking solver on
// contradiction or guess failure.
func Undo(board *model.Board, result Result) {
	for i := len(result.Updates) - 1; i >= 0; i-- {
		u := result.Updates[i]
		board.Grid.SetState(u.Loc, u.Previous)
	}
}
