package loader

import (
	"bytes"
	"testing"

	"github.com/eng618/nonosolve/pkg/model"
)

func checkerboardGrid(size int) *model.Grid {
	grid := model.NewGrid(size, size)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			state := model.Empty
			if (r+c)%2 == 0 {
				state = model.Fill
			}
			grid.SetState(model.Location{Row: r, Column: c}, state)
		}
	}
	return grid
}

func TestDumpImageThenLoadImageRoundTrips(t *testing.T) {
	grid := checkerboardGrid(4)

	var buf bytes.Buffer
	if err := DumpImage(&buf, grid); err != nil {
		t.Fatalf("unexpected error dumping: %v", err)
	}

	board, err := LoadImage(&buf)
	if err != nil {
		t.Fatalf("unexpected error loading: %v", err)
	}
	if !board.Solution.Equal(grid) {
		t.Fatal("loading a dumped image should reconstruct the exact pixel grid")
	}
}

func TestLoadImageDerivesInstructionsFromPixels(t *testing.T) {
	grid := model.NewGrid(1, 5)
	for _, c := range []int{0, 1, 3} {
		grid.SetState(model.Location{Row: 0, Column: c}, model.Fill)
	}
	grid.SetState(model.Location{Row: 0, Column: 2}, model.Empty)
	grid.SetState(model.Location{Row: 0, Column: 4}, model.Empty)

	var buf bytes.Buffer
	if err := DumpImage(&buf, grid); err != nil {
		t.Fatalf("unexpected error dumping: %v", err)
	}
	board, err := LoadImage(&buf)
	if err != nil {
		t.Fatalf("unexpected error loading: %v", err)
	}
	if !board.RowInstructions(0).Equal(model.NewRunInstructions(2, 1)) {
		t.Fatalf("derived row instructions = %v, want [2 1]", board.RowInstructions(0).Runs())
	}
}

func TestLoadImageBoardSolvedOnlyOnceSolutionCopied(t *testing.T) {
	grid := checkerboardGrid(3)
	var buf bytes.Buffer
	if err := DumpImage(&buf, grid); err != nil {
		t.Fatalf("unexpected error dumping: %v", err)
	}
	board, err := LoadImage(&buf)
	if err != nil {
		t.Fatalf("unexpected error loading: %v", err)
	}
	if board.IsSolved() {
		t.Fatal("a freshly loaded image board starts with an Unset Grid, not matching instructions yet")
	}
	board.Grid = grid.Clone()
	if !board.IsSolved() {
		t.Fatal("copying the solution into the live grid should satisfy every derived instruction")
	}
}
