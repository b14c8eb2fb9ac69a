package lineanalysis

import "github.com/eng618/nonosolve/pkg/model"

// Placement is the line analyzer's output: either the line is
// unsatisfiable, or every run has a leftmost and a rightmost feasible
// placement.
type Placement struct {
	Satisfiable bool
	LeftMost    []Interval
	RightMost   []Interval
}

// Analyze computes satisfiability and the leftmost/rightmost placements
// for one line against its run instructions, via backtracking search
// rather than an iterative min/max fixed point. It is pure with respect
// to cells: it only reads line, never mutates it.
func Analyze(line model.Line, instructions model.RunInstructions) Placement {
	gaps, _ := Extract(line)
	left, ok := leftmostPlacements(line, gaps, instructions.Runs())
	if !ok {
		return Placement{Satisfiable: false}
	}

	reversedLine := line.Reverse()
	reversedGaps, _ := Extract(reversedLine)
	rightReversed, ok := leftmostPlacements(reversedLine, reversedGaps, instructions.Reverse().Runs())
	if !ok {
		// The two directions of a satisfiable line must agree; this would
		// indicate a bug in the search, not a legitimately unsatisfiable
		// line (we already know `left` exists).
		return Placement{Satisfiable: false}
	}

	length := line.Len()
	n := len(rightReversed)
	right := make([]Interval, n)
	for i, iv := range rightReversed {
		right[n-1-i] = Interval{Start: length - iv.Stop, Stop: length - iv.Start}
	}
	return Placement{Satisfiable: true, LeftMost: left, RightMost: right}
}

// leftmostPlacements runs the backtracking search over runs in order,
// returning the leftmost feasible placement of each.
func leftmostPlacements(line model.Line, gaps []Gap, runs []int) ([]Interval, bool) {
	var placements []Interval
	if solveFrom(line, gaps, runs, 0, 0, &placements) {
		return placements, true
	}
	return nil, false
}

// solveFrom tries to place runs[runIdx:] starting no earlier than
// locationIndex, recording each placement into acc.
func solveFrom(line model.Line, gaps []Gap, runs []int, runIdx, locationIndex int, acc *[]Interval) bool {
	if runIdx == len(runs) {
		return !hasFillInRemainder(line, locationIndex)
	}
	length := line.Len()
	k := runs[runIdx]
	for start := locationIndex; start <= length-k; start++ {
		if !indexInSomeGap(gaps, start) {
			continue
		}
		placement, ok := leftmostRangeForRun(line, gaps, start, k)
		if !ok {
			// A forced Fill cell in this neighborhood can never be covered
			// by this run; no later start index can fix that either.
			return false
		}
		*acc = append(*acc, placement)
		if solveFrom(line, gaps, runs, runIdx+1, placement.Stop+1, acc) {
			return true
		}
		*acc = (*acc)[:len(*acc)-1]
		if line.At(placement.Start) == model.Fill {
			// This run's leftmost placement starting at `start` necessarily
			// covers a forced Fill cell at its own start; abandoning this
			// start index would abandon that cell, so fail outright.
			return false
		}
	}
	return false
}

// leftmostRangeForRun finds the earliest placement of a run of length k
// that starts at or after index, fits in a single gap, and doesn't abandon
// any Fill cell that precedes it within that gap.
func leftmostRangeForRun(line model.Line, gaps []Gap, index, k int) (Interval, bool) {
	length := line.Len()
	for _, gap := range gaps {
		if gap.Stop <= index {
			continue
		}
		start := index
		if gap.Start > start {
			start = gap.Start
		}
		candidate := Interval{Start: start, Stop: start + k}
		if candidate.Stop > gap.Stop {
			if hasFillInRange(line, candidate, gap) {
				return Interval{}, false
			}
			continue
		}
		for candidate.Stop < length && line.At(candidate.Stop) == model.Fill {
			if line.At(candidate.Start) == model.Fill {
				// The run cannot be advanced without abandoning a Fill
				// cell at its own start index.
				return Interval{}, false
			}
			candidate = Interval{Start: candidate.Start + 1, Stop: candidate.Stop + 1}
			if candidate.Stop > gap.Stop {
				return Interval{}, false
			}
		}
		return candidate, true
	}
	return Interval{}, false
}

func indexInSomeGap(gaps []Gap, index int) bool {
	for _, g := range gaps {
		if g.Contains(index) {
			return true
		}
	}
	return false
}

// hasFillInRange reports whether candidate contains a Fill cell, scanning
// only the portion of candidate that still lies within gap.
func hasFillInRange(line model.Line, candidate Interval, gap Gap) bool {
	length := line.Len()
	for i := candidate.Start; i < candidate.Stop; i++ {
		if i == length || !gap.Contains(i) {
			return false
		}
		if line.At(i) == model.Fill {
			return true
		}
	}
	return false
}

func hasFillInRemainder(line model.Line, startIndex int) bool {
	for i := startIndex; i < line.Len(); i++ {
		if line.At(i) == model.Fill {
			return true
		}
	}
	return false
}
