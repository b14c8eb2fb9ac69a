// Package generator produces random solvable nonogram boards for fixtures
// and benchmarking, using difficulty-tier tables and a generate-then-
// validate-then-retry shape.
package generator

import (
	"fmt"
	"math/rand"

	"github.com/eng618/nonosolve/pkg/model"
	"github.com/eng618/nonosolve/pkg/solve"
)

// GridSizeRange bounds the width/height a difficulty tier may generate.
type GridSizeRange struct {
	MinSize, MaxSize int
}

// DifficultySpec constrains how densely a tier fills its grid.
type DifficultySpec struct {
	MinDensity, MaxDensity float64
	MaxSolveSteps          int
}

// DifficultySpecs maps tier names to their fill-density constraints.
var DifficultySpecs = map[string]DifficultySpec{
	"easy":   {MinDensity: 0.35, MaxDensity: 0.45, MaxSolveSteps: 50_000},
	"medium": {MinDensity: 0.40, MaxDensity: 0.55, MaxSolveSteps: 200_000},
	"hard":   {MinDensity: 0.45, MaxDensity: 0.65, MaxSolveSteps: 1_000_000},
}

// GridSizeRanges maps tier names to the grid sizes generated for them.
var GridSizeRanges = map[string]GridSizeRange{
	"easy":   {MinSize: 5, MaxSize: 10},
	"medium": {MinSize: 10, MaxSize: 20},
	"hard":   {MinSize: 15, MaxSize: 30},
}

// Config parameterizes one Generate call, which makes up to MaxAttempts
// generation attempts.
type Config struct {
	Difficulty   string
	Seed         int64
	MaxAttempts  int
	RowsOverride int // 0 means pick from the tier's GridSizeRange
	ColsOverride int
}

// Result is a generated, solver-confirmed board plus the attempt metadata.
type Result struct {
	Board    *model.Board
	Attempts int
	Seed     int64
}

// Generate fills a random board at the requested difficulty and confirms
// it solves within the tier's step budget, retrying with a new seed on
// failure.
func Generate(cfg Config) (*Result, error) {
	spec, ok := DifficultySpecs[cfg.Difficulty]
	if !ok {
		return nil, fmt.Errorf("generator: unknown difficulty %q", cfg.Difficulty)
	}
	sizeRange, ok := GridSizeRanges[cfg.Difficulty]
	if !ok {
		return nil, fmt.Errorf("generator: no grid size range for difficulty %q", cfg.Difficulty)
	}

	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 10
	}

	seed := cfg.Seed
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		rows, columns := cfg.RowsOverride, cfg.ColsOverride
		rng := rand.New(rand.NewSource(seed))
		if rows == 0 {
			rows = sizeRange.MinSize + rng.Intn(sizeRange.MaxSize-sizeRange.MinSize+1)
		}
		if columns == 0 {
			columns = sizeRange.MinSize + rng.Intn(sizeRange.MaxSize-sizeRange.MinSize+1)
		}

		board := randomBoard(rng, rows, columns, spec.MinDensity, spec.MaxDensity)
		if solvableWithinBudget(board, spec.MaxSolveSteps) {
			return &Result{Board: board, Attempts: attempt, Seed: seed}, nil
		}
		seed++
	}
	return nil, fmt.Errorf("generator: failed to produce a solvable %s board after %d attempts", cfg.Difficulty, maxAttempts)
}

// randomBoard fills an RxC grid of Fill/Empty at a random density in
// [minDensity, maxDensity], then derives a Board from the run-length
// encoding of each row and column — the board returned has no Unset cells
// in its Solution, and the caller's working Grid starts fully Unset.
func randomBoard(rng *rand.Rand, rows, columns int, minDensity, maxDensity float64) *model.Board {
	density := minDensity + rng.Float64()*(maxDensity-minDensity)
	solution := model.NewGrid(rows, columns)
	for r := 0; r < rows; r++ {
		for c := 0; c < columns; c++ {
			state := model.Empty
			if rng.Float64() < density {
				state = model.Fill
			}
			solution.SetState(model.Location{Row: r, Column: c}, state)
		}
	}

	rowIns := make([]model.RunInstructions, rows)
	for r := 0; r < rows; r++ {
		rowIns[r] = model.RunInstructionsFromLine(solution.Row(r))
	}
	colIns := make([]model.RunInstructions, columns)
	for c := 0; c < columns; c++ {
		colIns[c] = model.RunInstructionsFromLine(solution.Column(c))
	}

	board := model.NewBoard(rowIns, colIns)
	board.Solution = solution
	return board
}

func solvableWithinBudget(board *model.Board, maxSteps int) bool {
	attempt := board.Clone()
	solver := solve.NewByOrderSolver()
	outcome, metrics := solver.Solve(attempt)
	return outcome == solve.Solved && metrics.Steps <= maxSteps
}
