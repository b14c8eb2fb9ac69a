package model

import "testing"

func newTwoByTwoBoard() *Board {
	rows := []RunInstructions{NewRunInstructions(2), NewRunInstructions()}
	cols := []RunInstructions{NewRunInstructions(1), NewRunInstructions(1)}
	return NewBoard(rows, cols)
}

func TestBoardIsSolved(t *testing.T) {
	b := newTwoByTwoBoard()
	if b.IsSolved() {
		t.Fatal("fresh board with Unset cells should not be solved")
	}
	b.Grid.SetState(Location{Row: 0, Column: 0}, Fill)
	b.Grid.SetState(Location{Row: 0, Column: 1}, Fill)
	b.Grid.SetState(Location{Row: 1, Column: 0}, Empty)
	b.Grid.SetState(Location{Row: 1, Column: 1}, Empty)
	if !b.IsSolved() {
		t.Fatal("board matching its instructions should report solved")
	}
}

func TestBoardHasMistakeWithoutSolutionIsFalse(t *testing.T) {
	b := newTwoByTwoBoard()
	b.Grid.SetState(Location{Row: 0, Column: 0}, Empty)
	if b.HasMistake() {
		t.Fatal("HasMistake must be false when no reference Solution is attached")
	}
}

func TestBoardHasMistakeAgainstSolution(t *testing.T) {
	b := newTwoByTwoBoard()
	solution := NewGrid(2, 2)
	solution.SetState(Location{Row: 0, Column: 0}, Fill)
	solution.SetState(Location{Row: 0, Column: 1}, Fill)
	solution.SetState(Location{Row: 1, Column: 0}, Empty)
	solution.SetState(Location{Row: 1, Column: 1}, Empty)
	b.Solution = solution

	b.Grid.SetState(Location{Row: 0, Column: 0}, Empty)
	if !b.HasMistake() {
		t.Fatal("a set cell disagreeing with Solution should be a mistake")
	}
}

func TestBoardCloneIndependence(t *testing.T) {
	b := newTwoByTwoBoard()
	b.Grid.SetState(Location{Row: 0, Column: 0}, Fill)
	clone := b.Clone()
	clone.Grid.SetState(Location{Row: 1, Column: 1}, Empty)
	if b.Grid.State(Location{Row: 1, Column: 1}) == Empty {
		t.Fatal("cloning a board must not share grid storage")
	}
}
