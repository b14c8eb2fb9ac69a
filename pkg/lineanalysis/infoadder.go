package lineanalysis

import "github.com/eng618/nonosolve/pkg/model"

// ForcedUpdate is one deduction the info adder emits: a cell reference and
// the state every satisfying completion of the line agrees it must hold.
type ForcedUpdate struct {
	Cell  *model.Cell
	Index int
	State model.CellState
}

// ForcedUpdates derives forced Fill/Empty cells from a line's placement
// using three rules: cells where every run's leftmost and rightmost
// placement overlap are forced Fill; cells in a boundary-blocked gap
// between two adjacent runs are forced Fill; cells outside every run's
// placement window are forced Empty. It does not mutate cells; the caller
// (the board propagator) decides when to apply them. Returns nil if the
// line is unsatisfiable or already fully set.
func ForcedUpdates(line model.Line, placement Placement) []ForcedUpdate {
	if !placement.Satisfiable || line.IsFullySet() {
		return nil
	}

	var updates []ForcedUpdate
	seen := make(map[int]bool)
	emit := func(index int, state model.CellState) {
		if seen[index] {
			return
		}
		if line.At(index) != model.Unset {
			return
		}
		seen[index] = true
		updates = append(updates, ForcedUpdate{Cell: line.CellAt(index), Index: index, State: state})
	}

	n := len(placement.LeftMost)

	// Rule 1: overlap within a run forces Fill.
	for i := 0; i < n; i++ {
		overlap := placement.LeftMost[i].Intersect(placement.RightMost[i])
		for idx := overlap.Start; idx < overlap.Stop; idx++ {
			emit(idx, model.Fill)
		}
	}

	// Rule 2: a forced gap between runs i, i+1 also forces Fill, when a
	// block straddles the boundary in a way that can't be anything but
	// that run-pair's shared cells.
	for i := 0; i+1 < n; i++ {
		left := placement.LeftMost[i+1]
		right := placement.RightMost[i]
		if mutualRangesBlocked(line, left, right) {
			overlap := left.Intersect(right)
			for idx := overlap.Start; idx < overlap.Stop; idx++ {
				emit(idx, model.Fill)
			}
		}
	}

	// Rule 3: cells outside every run's placement window must be Empty.
	length := line.Len()
	lefts := append(append([]Interval{}, placement.LeftMost...), Interval{Start: length, Stop: -1})
	rights := append([]Interval{{Start: -1, Stop: 0}}, placement.RightMost...)
	for i := 0; i < len(lefts); i++ {
		for idx := rights[i].Stop; idx < lefts[i].Start; idx++ {
			emit(idx, model.Empty)
		}
	}

	return updates
}

// mutualRangesBlocked inspects only the immediate boundary cells of the
// two placements, not their full intersection.
func mutualRangesBlocked(line model.Line, leftNext, rightPrev Interval) bool {
	length := line.Len()
	if rightPrev.Stop < length &&
		line.At(rightPrev.Stop) == model.Empty &&
		line.At(rightPrev.Stop-1) == model.Fill {
		return true
	}
	if leftNext.Start > 0 &&
		line.At(leftNext.Start-1) == model.Empty &&
		line.At(leftNext.Start) == model.Fill {
		return true
	}
	return false
}
