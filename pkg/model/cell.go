// Package model defines the grid substrate a nonogram solver reads and
// mutates: cells, lines, the rectangular grid, run instructions, and the
// board that ties them together.
package model

// CellState is the three-valued tag a cell can carry.
type CellState int

const (
	// Unset is the unique initial state of every cell.
	Unset CellState = iota
	// Fill marks a cell that is part of a run.
	Fill
	// Empty marks a cell that is not part of any run.
	Empty
)

// String renders a CellState the way the solver's debug output does.
func (s CellState) String() string {
	switch s {
	case Fill:
		return "██"
	case Empty:
		return "X"
	default:
		return " "
	}
}

// Cell is a single grid position: its state plus a monotonically
// non-decreasing change counter used only for diagnostics.
type Cell struct {
	state   CellState
	changes int
}

// State returns the cell's current state.
func (c *Cell) State() CellState {
	return c.state
}

// Changes returns how many times SetState has been called on this cell.
func (c *Cell) Changes() int {
	return c.changes
}

// SetState transitions the cell to state, bumping the change counter.
// UNSET -> FILL and UNSET -> EMPTY are the only transitions the solver
// produces; backtracking always reverts to Unset before a cell is
// reassigned to the opposite state.
func (c *Cell) SetState(state CellState) {
	c.changes++
	c.state = state
}

// Equal compares two cells by state only; change counters are metadata.
func (c *Cell) Equal(other *Cell) bool {
	return c.state == other.state
}
