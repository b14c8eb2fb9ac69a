package lineanalysis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eng618/nonosolve/pkg/model"
)

// TestForcedUpdatesRule1Overlap exercises rule 1: where a run's leftmost
// and rightmost placements overlap, the overlapping cells are forced Fill.
func TestForcedUpdatesRule1Overlap(t *testing.T) {
	l := line(model.Unset, model.Unset, model.Unset, model.Unset, model.Unset)
	ins := model.NewRunInstructions(5)
	placement := Analyze(l, ins)

	updates := ForcedUpdates(l, placement)
	require.Len(t, updates, 5)
	for _, u := range updates {
		require.Equal(t, model.Fill, u.State)
	}
}

// TestForcedUpdatesRule3OutsideEveryWindow exercises rule 3 where no cell
// falls outside every run's placement window: a single run of 2 can sit
// anywhere in an all-Unset 7-cell line, so neither rule 3 nor rule 1 emits
// an update.
func TestForcedUpdatesRule3OutsideEveryWindow(t *testing.T) {
	l := line(model.Unset, model.Unset, model.Unset, model.Unset, model.Unset, model.Unset, model.Unset)
	ins := model.NewRunInstructions(2)
	placement := Analyze(l, ins)
	require.True(t, placement.Satisfiable)

	updates := ForcedUpdates(l, placement)
	require.Empty(t, updates, "a single run of 2 in a 7-cell line forces nothing")
}

// TestForcedUpdatesSkipsAlreadySetCells ensures ForcedUpdates never
// re-emits a deduction for a cell that already carries a determined state.
func TestForcedUpdatesSkipsAlreadySetCells(t *testing.T) {
	l := line(model.Fill, model.Unset, model.Unset, model.Unset, model.Unset)
	ins := model.NewRunInstructions(5)
	placement := Analyze(l, ins)

	updates := ForcedUpdates(l, placement)
	for _, u := range updates {
		require.NotEqual(t, 0, u.Index, "cell 0 is already Fill and must not be re-emitted")
	}
}

// TestForcedUpdatesUnsatisfiableReturnsNil: an unsatisfiable placement
// yields no forced updates, leaving contradiction detection to the
// propagator.
func TestForcedUpdatesUnsatisfiableReturnsNil(t *testing.T) {
	placement := Placement{Satisfiable: false}
	l := line(model.Unset, model.Unset)
	require.Nil(t, ForcedUpdates(l, placement))
}

// TestForcedUpdatesFullyDeterminedLine covers the early-exit when a line
// has no Unset cells left; there is nothing further to deduce.
func TestForcedUpdatesFullyDeterminedLine(t *testing.T) {
	l := line(model.Fill, model.Empty)
	placement := Analyze(l, model.NewRunInstructions(1))
	require.Nil(t, ForcedUpdates(l, placement))
}

// TestForcedUpdatesCenteredGapForcesNothing: a centered Empty cell confines
// each single-cell run to one two-cell gap, but each run can still take
// either cell of its gap, so no rule forces anything.
func TestForcedUpdatesCenteredGapForcesNothing(t *testing.T) {
	l := line(model.Unset, model.Unset, model.Empty, model.Unset, model.Unset)
	ins := model.NewRunInstructions(1, 1)
	placement := Analyze(l, ins)

	updates := ForcedUpdates(l, placement)
	require.Empty(t, updates, "each run's leftmost and rightmost windows are disjoint, and the only cell between windows is already Empty")
}
