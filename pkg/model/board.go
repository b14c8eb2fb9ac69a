package model

// Board ties a Grid substrate to its row and column instructions, plus an
// optional reference solution used only by test/verification paths — never
// by the solver itself.
type Board struct {
	Grid *Grid

	rowInstructions    []RunInstructions
	columnInstructions []RunInstructions

	// Solution is an optional fully-determined grid the board was derived
	// from (e.g. loaded from an image). Nil unless explicitly attached.
	Solution *Grid
}

// NewBoard builds a board sized to the instruction lists: len(rowIns) rows,
// len(colIns) columns.
func NewBoard(rowIns, colIns []RunInstructions) *Board {
	return &Board{
		Grid:               NewGrid(len(rowIns), len(colIns)),
		rowInstructions:    rowIns,
		columnInstructions: colIns,
	}
}

// Size returns (rows, columns).
func (b *Board) Size() (rows, columns int) {
	return b.Grid.Size()
}

// RowInstructions returns the instructions for row r.
func (b *Board) RowInstructions(r int) RunInstructions {
	return b.rowInstructions[r]
}

// ColumnInstructions returns the instructions for column c.
func (b *Board) ColumnInstructions(c int) RunInstructions {
	return b.columnInstructions[c]
}

// RowInstructionsList returns every row's instructions, in row order.
// Callers must not mutate the returned slice.
func (b *Board) RowInstructionsList() []RunInstructions {
	return b.rowInstructions
}

// ColumnInstructionsList returns every column's instructions, in column
// order. Callers must not mutate the returned slice.
func (b *Board) ColumnInstructionsList() []RunInstructions {
	return b.columnInstructions
}

// Row returns a Line view of row r.
func (b *Board) Row(r int) Line {
	return b.Grid.Row(r)
}

// Column returns a Line view of column c.
func (b *Board) Column(c int) Line {
	return b.Grid.Column(c)
}

// IsRowSolved reports whether row r's current cell states, run-length
// encoded, equal its instructions exactly.
func (b *Board) IsRowSolved(r int) bool {
	return RunInstructionsFromLine(b.Row(r)).Equal(b.rowInstructions[r])
}

// IsColumnSolved reports whether column c's current cell states, run-length
// encoded, equal its instructions exactly.
func (b *Board) IsColumnSolved(c int) bool {
	return RunInstructionsFromLine(b.Column(c)).Equal(b.columnInstructions[c])
}

// IsSolved reports whether every row and every column matches its
// instructions exactly.
func (b *Board) IsSolved() bool {
	rows, columns := b.Size()
	for r := 0; r < rows; r++ {
		if !b.IsRowSolved(r) {
			return false
		}
	}
	for c := 0; c < columns; c++ {
		if !b.IsColumnSolved(c) {
			return false
		}
	}
	return true
}

// HasMistake reports whether any set cell disagrees with the board's
// attached reference solution. Returns false if there is no solution
// attached — this is a verification helper, not something the solver
// consults.
func (b *Board) HasMistake() bool {
	if b.Solution == nil {
		return false
	}
	rows, columns := b.Size()
	for r := 0; r < rows; r++ {
		for c := 0; c < columns; c++ {
			loc := Location{Row: r, Column: c}
			state := b.Grid.State(loc)
			if state != Unset && state != b.Solution.State(loc) {
				return true
			}
		}
	}
	return false
}

// Steps returns the total number of cell-state changes applied to the
// board so far (diagnostics only).
func (b *Board) Steps() int {
	return b.Grid.Steps()
}

// Clone makes a deep copy of the board's grid, sharing the same
// instruction lists and reference solution.
func (b *Board) Clone() *Board {
	return &Board{
		Grid:               b.Grid.Clone(),
		rowInstructions:    b.rowInstructions,
		columnInstructions: b.columnInstructions,
		Solution:           b.Solution,
	}
}
