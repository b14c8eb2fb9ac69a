// Package batch solves many puzzle files concurrently, one worker per
// file, across a fixed-size worker pool.
package batch

import (
	"sync"
	"time"

	"github.com/eng618/nonosolve/pkg/model"
	"github.com/eng618/nonosolve/pkg/solve"
)

// Job is one file to solve.
type Job struct {
	Path  string
	Board *model.Board
}

// Result is one job's outcome.
type Result struct {
	Path    string
	Outcome solve.Outcome
	Metrics solve.Metrics
	Board   *model.Board
	Err     error
}

// Summary aggregates a batch run.
type Summary struct {
	Results      []Result
	TotalTime    time.Duration
	SolvedCount  int
	FailureCount int
}

// Config parameterizes a batch run.
type Config struct {
	Workers  int
	Deadline time.Duration // per-job deadline, zero means unbounded
}

// Run solves every job concurrently across cfg.Workers goroutines (at
// least 1), returning results in job order.
func Run(jobs []Job, cfg Config) Summary {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	start := time.Now()

	results := make([]Result, len(jobs))
	jobIndices := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobIndices {
				results[idx] = solveOne(jobs[idx], cfg.Deadline)
			}
		}()
	}
	for i := range jobs {
		jobIndices <- i
	}
	close(jobIndices)
	wg.Wait()

	summary := Summary{Results: results, TotalTime: time.Since(start)}
	for _, r := range results {
		if r.Outcome == solve.Solved {
			summary.SolvedCount++
		} else {
			summary.FailureCount++
		}
	}
	return summary
}

func solveOne(job Job, deadline time.Duration) Result {
	solver := solve.NewByOrderSolver()
	if deadline > 0 {
		solver = solver.WithDeadline(deadline)
	}
	outcome, metrics := solver.Solve(job.Board)
	return Result{Path: job.Path, Outcome: outcome, Metrics: metrics, Board: job.Board}
}
