package model

import "testing"

func TestGridRowColumnShareCells(t *testing.T) {
	g := NewGrid(3, 3)
	g.Row(1).Set(1, Fill)
	if g.Column(1).At(1) != Fill {
		t.Fatal("write through a row view must be visible through the column view")
	}
}

func TestGridAssertLocationPanics(t *testing.T) {
	g := NewGrid(2, 2)
	defer func() {
		if recover() == nil {
			t.Fatal("out-of-bounds access should panic")
		}
	}()
	g.State(Location{Row: 5, Column: 0})
}

func TestGridStepsCountsChanges(t *testing.T) {
	g := NewGrid(2, 2)
	if g.Steps() != 0 {
		t.Fatalf("fresh grid steps = %d, want 0", g.Steps())
	}
	g.SetState(Location{Row: 0, Column: 0}, Fill)
	g.SetState(Location{Row: 0, Column: 0}, Unset)
	g.SetState(Location{Row: 1, Column: 1}, Empty)
	if g.Steps() != 3 {
		t.Fatalf("steps = %d, want 3", g.Steps())
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid(2, 2)
	g.SetState(Location{Row: 0, Column: 0}, Fill)
	clone := g.Clone()

	if !g.Equal(clone) {
		t.Fatal("clone should start equal to its source")
	}
	clone.SetState(Location{Row: 0, Column: 1}, Fill)
	if g.Equal(clone) {
		t.Fatal("mutating the clone must not affect the source")
	}
}

func TestGridCloneDropsChangeCounters(t *testing.T) {
	g := NewGrid(1, 1)
	g.SetState(Location{Row: 0, Column: 0}, Fill)
	g.SetState(Location{Row: 0, Column: 0}, Unset)
	g.SetState(Location{Row: 0, Column: 0}, Fill)
	clone := g.Clone()
	if clone.Steps() != 1 {
		t.Fatalf("clone steps = %d, want 1 (one SetState call to reach Fill)", clone.Steps())
	}
}
