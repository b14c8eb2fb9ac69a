package propagate

import (
	"testing"

	"github.com/eng618/nonosolve/pkg/model"
)

func crossBoard() *model.Board {
	// A 5x5 plus-sign: full middle row and middle column.
	rows := make([]model.RunInstructions, 5)
	cols := make([]model.RunInstructions, 5)
	for i := 0; i < 5; i++ {
		if i == 2 {
			rows[i] = model.NewRunInstructions(5)
			cols[i] = model.NewRunInstructions(5)
		} else {
			rows[i] = model.NewRunInstructions(1)
			cols[i] = model.NewRunInstructions(1)
		}
	}
	return model.NewBoard(rows, cols)
}

func TestFullSweepSolvesCross(t *testing.T) {
	board := crossBoard()
	result := FullSweep(board)
	if result.Contradiction {
		t.Fatal("cross board should not contradict")
	}
	if !board.IsSolved() {
		t.Fatal("FullSweep should fully determine the cross board")
	}
}

func TestDirtySweepAgreesWithFullSweep(t *testing.T) {
	full := crossBoard()
	dirty := crossBoard()

	FullSweep(full)
	DirtySweep(dirty)

	if !full.Grid.Equal(dirty.Grid) {
		t.Fatal("DirtySweep must reach the same grid as FullSweep (confluence)")
	}
}

func TestFullSweepDetectsContradiction(t *testing.T) {
	rows := []model.RunInstructions{model.NewRunInstructions(2), model.NewRunInstructions()}
	cols := []model.RunInstructions{model.NewRunInstructions(1), model.NewRunInstructions(1)}
	board := model.NewBoard(rows, cols)
	// Row 0 needs both cells Fill, but force column 0 to Empty: contradiction.
	board.Grid.SetState(model.Location{Row: 0, Column: 0}, model.Empty)

	result := FullSweep(board)
	if !result.Contradiction {
		t.Fatal("forcing a cell against its row's only satisfying run should contradict")
	}
}

func TestUndoRevertsAppliedUpdates(t *testing.T) {
	board := crossBoard()
	before := board.Grid.Clone()

	result := FullSweep(board)
	if len(result.Updates) == 0 {
		t.Fatal("expected FullSweep to apply at least one update on a fresh board")
	}
	Undo(board, result)

	if !board.Grid.Equal(before) {
		t.Fatal("Undo should restore the grid to its pre-sweep state")
	}
}
