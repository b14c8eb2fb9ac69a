// Package solve implements the backtracking search engine: it composes
// the propagator with a guess locator, undoing derived deductions on
// failure, until the board is solved or shown unsatisfiable.
package solve

import (
	"time"

	"github.com/eng618/nonosolve/pkg/guess"
	"github.com/eng618/nonosolve/pkg/model"
	"github.com/eng618/nonosolve/pkg/propagate"
)

// Outcome is the first-class result of a solve attempt.
type Outcome int

const (
	// Solved means every row and column matches its instructions.
	Solved Outcome = iota
	// Unsatisfiable means the search exhausted every branch without success.
	Unsatisfiable
	// TimedOut means the deadline expired before a result was reached.
	TimedOut
)

func (o Outcome) String() string {
	switch o {
	case Solved:
		return "solved"
	case Unsatisfiable:
		return "unsatisfiable"
	case TimedOut:
		return "timeout"
	default:
		return "unknown"
	}
}

// Metrics are diagnostics-only counters gathered during a solve, per spec
// §3's "change counter used only for diagnostics/metrics".
type Metrics struct {
	Guesses  int
	Sweeps   int
	Steps    int
	Duration time.Duration
}

// SweepFunc runs one quiescence loop over a board (FullSweep or
// DirtySweep); both produce the same resulting grid.
type SweepFunc func(*model.Board) propagate.Result

// LocateFunc picks the next guess given the previous one; ByOrder and
// MostInfo both satisfy this shape (MostInfo ignores `last`).
type LocateFunc func(*model.Board, guess.Guess) (guess.Guess, bool)

// Solver composes a sweep policy and a guess locator under an optional
// deadline. The zero value is not usable; build one with NewByOrderSolver
// or NewMostInfoSolver.
type Solver struct {
	Sweep    SweepFunc
	Locate   LocateFunc
	Deadline time.Time // zero means no deadline
}

// NewByOrderSolver builds a solver using full-sweep propagation and the
// by-order guess locator — the cheapest combination.
func NewByOrderSolver() *Solver {
	return &Solver{Sweep: propagate.FullSweep, Locate: guess.ByOrder}
}

// NewMostInfoSolver builds a solver using full-sweep propagation and the
// most-info guess locator, which does more work per guess but tends to
// need fewer guesses.
func NewMostInfoSolver() *Solver {
	return &Solver{
		Sweep: propagate.FullSweep,
		Locate: func(board *model.Board, _ guess.Guess) (guess.Guess, bool) {
			return guess.MostInfo(board)
		},
	}
}

// WithDirtySweep swaps in the dirty-set propagation variant.
func (s *Solver) WithDirtySweep() *Solver {
	s.Sweep = propagate.DirtySweep
	return s
}

// WithDeadline sets a cooperatively-checked deadline, relative to now.
func (s *Solver) WithDeadline(d time.Duration) *Solver {
	s.Deadline = time.Now().Add(d)
	return s
}

func (s *Solver) deadlineExpired() bool {
	return !s.Deadline.IsZero() && time.Now().After(s.Deadline)
}

// startLocation is the sentinel "no previous guess" location, scanned from
// the very start of the board.
var startLocation = guess.Guess{Location: model.Location{Row: -1, Column: -1}}

// Solve runs the propagator, then — if propagation is quiescent but the
// board is unsolved — the guess/backtrack recursion, until the board is
// solved, shown unsatisfiable, or the deadline expires.
func (s *Solver) Solve(board *model.Board) (Outcome, Metrics) {
	start := time.Now()
	metrics := Metrics{}
	outcome := s.solve(board, startLocation, &metrics)
	metrics.Duration = time.Since(start)
	metrics.Steps = board.Steps()
	return outcome, metrics
}

func (s *Solver) solve(board *model.Board, last guess.Guess, metrics *Metrics) Outcome {
	if s.deadlineExpired() {
		return TimedOut
	}

	result := s.Sweep(board)
	metrics.Sweeps++
	if result.Contradiction {
		propagate.Undo(board, result)
		return Unsatisfiable
	}
	if board.IsSolved() {
		return Solved
	}
	if s.deadlineExpired() {
		propagate.Undo(board, result)
		return TimedOut
	}

	g, ok := s.Locate(board, last)
	if !ok {
		// Quiescent, every cell set, yet the board doesn't match its
		// instructions: no branch to take, this state is unsatisfiable.
		propagate.Undo(board, result)
		return Unsatisfiable
	}

	metrics.Guesses++
	board.Grid.SetState(g.Location, g.State)
	outcome := s.solve(board, g, metrics)
	if outcome == Solved {
		return Solved
	}
	if outcome == TimedOut {
		board.Grid.SetState(g.Location, model.Unset)
		propagate.Undo(board, result)
		return TimedOut
	}

	// outcome == Unsatisfiable. Revert to Unset before trying the flipped
	// state: a direct Fill<->Empty transition is forbidden.
	board.Grid.SetState(g.Location, model.Unset)
	flipped := g.Flip()
	board.Grid.SetState(g.Location, flipped.State)
	outcome = s.solve(board, flipped, metrics)
	if outcome == Solved {
		return Solved
	}

	board.Grid.SetState(g.Location, model.Unset)
	propagate.Undo(board, result)
	if outcome == TimedOut {
		return TimedOut
	}
	return Unsatisfiable
}
