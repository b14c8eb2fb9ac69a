package batch

import (
	"testing"
	"time"

	"github.com/eng618/nonosolve/pkg/model"
	"github.com/eng618/nonosolve/pkg/solve"
)

func trivialBoard() *model.Board {
	rows := []model.RunInstructions{model.NewRunInstructions(2), model.NewRunInstructions()}
	cols := []model.RunInstructions{model.NewRunInstructions(1), model.NewRunInstructions(1)}
	return model.NewBoard(rows, cols)
}

func TestRunSolvesAllJobs(t *testing.T) {
	jobs := []Job{
		{Path: "a.txt", Board: trivialBoard()},
		{Path: "b.txt", Board: trivialBoard()},
		{Path: "c.txt", Board: trivialBoard()},
	}
	summary := Run(jobs, Config{Workers: 2})

	if summary.SolvedCount != 3 {
		t.Fatalf("SolvedCount = %d, want 3", summary.SolvedCount)
	}
	if summary.FailureCount != 0 {
		t.Fatalf("FailureCount = %d, want 0", summary.FailureCount)
	}
	if len(summary.Results) != 3 {
		t.Fatalf("Results has %d entries, want 3", len(summary.Results))
	}
	for i, r := range summary.Results {
		if r.Path != jobs[i].Path {
			t.Errorf("result %d path = %q, want %q (results must preserve job order)", i, r.Path, jobs[i].Path)
		}
	}
}

func TestRunDefaultsToOneWorker(t *testing.T) {
	jobs := []Job{{Path: "only.txt", Board: trivialBoard()}}
	summary := Run(jobs, Config{Workers: 0})
	if summary.Results[0].Outcome != solve.Solved {
		t.Fatal("expected the single job to solve with the default worker count")
	}
}

func TestRunWithPerJobDeadlineCompletes(t *testing.T) {
	jobs := []Job{{Path: "slow.txt", Board: trivialBoard()}}
	summary := Run(jobs, Config{Workers: 1, Deadline: time.Nanosecond})
	// The solver checks the deadline before its first sweep, so a
	// one-nanosecond deadline usually yields TimedOut; which outcome comes
	// back depends on timing, so only a completed run without a panic or
	// hang is required here.
	_ = summary.Results[0].Outcome
}
