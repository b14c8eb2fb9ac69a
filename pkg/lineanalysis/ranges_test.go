package lineanalysis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eng618/nonosolve/pkg/model"
)

func line(states ...model.CellState) model.Line {
	cells := make([]*model.Cell, len(states))
	for i, s := range states {
		cells[i] = &model.Cell{}
		if s != model.Unset {
			cells[i].SetState(s)
		}
	}
	g := model.NewGrid(1, len(states))
	for i, c := range cells {
		g.SetState(model.Location{Row: 0, Column: i}, c.State())
	}
	return g.Row(0)
}

func TestExtractEmptyLine(t *testing.T) {
	gaps, blocks := Extract(line())
	require.Empty(t, gaps)
	require.Empty(t, blocks)
}

func TestExtractAllEmpty(t *testing.T) {
	gaps, blocks := Extract(line(model.Empty, model.Empty, model.Empty))
	require.Empty(t, gaps)
	require.Empty(t, blocks)
}

func TestExtractSingleGapNoBlocks(t *testing.T) {
	gaps, blocks := Extract(line(model.Unset, model.Unset, model.Unset))
	require.Len(t, gaps, 1)
	require.Equal(t, Interval{Start: 0, Stop: 3}, gaps[0].Interval)
	require.Empty(t, blocks)
}

func TestExtractGapsAndBlocks(t *testing.T) {
	// U U E F F U E U
	// 0 1 2 3 4 5 6 7
	gaps, blocks := Extract(line(
		model.Unset, model.Unset, model.Empty,
		model.Fill, model.Fill, model.Unset,
		model.Empty, model.Unset,
	))
	require.Len(t, gaps, 3)
	require.Equal(t, Interval{Start: 0, Stop: 2}, gaps[0].Interval)
	require.Equal(t, Interval{Start: 3, Stop: 6}, gaps[1].Interval)

	require.Len(t, blocks, 1)
	require.Equal(t, Interval{Start: 3, Stop: 5}, blocks[0].Interval)
	require.Equal(t, gaps[1].Interval, blocks[0].ContainingGap.Interval)
}

func TestIntervalContainsAndIntersect(t *testing.T) {
	a := Interval{Start: 2, Stop: 5}
	require.True(t, a.Contains(2))
	require.True(t, a.Contains(4))
	require.False(t, a.Contains(5))

	b := Interval{Start: 4, Stop: 8}
	require.Equal(t, Interval{Start: 4, Stop: 5}, a.Intersect(b))

	disjoint := Interval{Start: 10, Stop: 12}
	result := a.Intersect(disjoint)
	require.LessOrEqual(t, result.Stop, result.Start)
}
