package model

import "fmt"

// Location addresses a single cell by (row, column).
type Location struct {
	Row    int
	Column int
}

// Grid is a rectangular R x C array of cells, addressable by (row, column)
// and exposing row/column Line views. Row and column views share the same
// underlying cells: a write through one is immediately visible through the
// other.
type Grid struct {
	rows, columns int
	cells         [][]*Cell
}

// NewGrid allocates an R x C grid with every cell Unset.
func NewGrid(rows, columns int) *Grid {
	g := &Grid{rows: rows, columns: columns, cells: make([][]*Cell, rows)}
	for r := 0; r < rows; r++ {
		row := make([]*Cell, columns)
		for c := 0; c < columns; c++ {
			row[c] = &Cell{}
		}
		g.cells[r] = row
	}
	return g
}

// Size returns (rows, columns).
func (g *Grid) Size() (rows, columns int) {
	return g.rows, g.columns
}

// assertLocation is the fail-fast programmer-error check for out-of-bounds
// access: it panics rather than returning an error, since an out-of-range
// Location is always a caller bug, never recoverable input.
func (g *Grid) assertLocation(loc Location) {
	if loc.Row < 0 || loc.Row >= g.rows || loc.Column < 0 || loc.Column >= g.columns {
		panic(fmt.Sprintf("model: location %v out of bounds for %dx%d grid", loc, g.rows, g.columns))
	}
}

// CellAt returns the cell reference at loc.
func (g *Grid) CellAt(loc Location) *Cell {
	g.assertLocation(loc)
	return g.cells[loc.Row][loc.Column]
}

// State returns the state of the cell at loc.
func (g *Grid) State(loc Location) CellState {
	return g.CellAt(loc).State()
}

// SetState sets the state of the cell at loc.
func (g *Grid) SetState(loc Location, state CellState) {
	g.CellAt(loc).SetState(state)
}

// Row returns a Line view of row r.
func (g *Grid) Row(r int) Line {
	if r < 0 || r >= g.rows {
		panic(fmt.Sprintf("model: row %d out of bounds for %d rows", r, g.rows))
	}
	return newSliceLine(g.cells[r])
}

// Column returns a Line view of column c.
func (g *Grid) Column(c int) Line {
	if c < 0 || c >= g.columns {
		panic(fmt.Sprintf("model: column %d out of bounds for %d columns", c, g.columns))
	}
	cells := make([]*Cell, g.rows)
	for r := 0; r < g.rows; r++ {
		cells[r] = g.cells[r][c]
	}
	return newSliceLine(cells)
}

// Steps sums every cell's change counter, a diagnostics-only metric.
func (g *Grid) Steps() int {
	total := 0
	for _, row := range g.cells {
		for _, c := range row {
			total += c.Changes()
		}
	}
	return total
}

// Equal compares two grids cell-by-cell (state only). Used by the
// confluence and backtracking-undo tests.
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.columns != other.columns {
		return false
	}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.columns; c++ {
			if !g.cells[r][c].Equal(other.cells[r][c]) {
				return false
			}
		}
	}
	return true
}

// Clone makes a deep copy of the grid's cell states (not its change
// counters), used by Board.Clone and by tests that snapshot a grid.
func (g *Grid) Clone() *Grid {
	clone := NewGrid(g.rows, g.columns)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.columns; c++ {
			if s := g.cells[r][c].State(); s != Unset {
				clone.cells[r][c].SetState(s)
			}
		}
	}
	return clone
}
