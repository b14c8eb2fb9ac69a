package model

// Line is a read/write view over an ordered sequence of cells. Grid row and
// column views, and the reversed view of either, all implement Line so the
// line analyzer can treat every direction uniformly.
type Line interface {
	// Len returns the number of cells in the line.
	Len() int
	// At returns the state of the cell at index i.
	At(i int) CellState
	// Set writes state to the cell at index i.
	Set(i int, state CellState)
	// CellAt returns the underlying cell reference at index i, for callers
	// that need to write through a forced-update list (e.g. the info adder).
	CellAt(i int) *Cell
	// Reverse returns a view of the same underlying cells in reverse order;
	// index i of the reversed view maps to Len()-1-i of the original.
	Reverse() Line
	// IsFullySet reports whether every cell in the line is non-Unset.
	IsFullySet() bool
}

// sliceLine is a Line view backed by a slice of *Cell pointers. Grid row and
// column views, as well as reversed views, are all sliceLines — reversing
// just walks the slice backwards, it never copies cell storage.
type sliceLine struct {
	cells    []*Cell
	reversed bool
}

func newSliceLine(cells []*Cell) *sliceLine {
	return &sliceLine{cells: cells}
}

func (l *sliceLine) index(i int) int {
	if l.reversed {
		return len(l.cells) - 1 - i
	}
	return i
}

func (l *sliceLine) Len() int {
	return len(l.cells)
}

func (l *sliceLine) At(i int) CellState {
	return l.cells[l.index(i)].State()
}

func (l *sliceLine) Set(i int, state CellState) {
	l.cells[l.index(i)].SetState(state)
}

func (l *sliceLine) CellAt(i int) *Cell {
	return l.cells[l.index(i)]
}

func (l *sliceLine) Reverse() Line {
	return &sliceLine{cells: l.cells, reversed: !l.reversed}
}

func (l *sliceLine) IsFullySet() bool {
	for _, c := range l.cells {
		if c.State() == Unset {
			return false
		}
	}
	return true
}
