// Package metrics aggregates solver diagnostics across many runs: success
// rate, and average guesses/sweeps per solve.
package metrics

import (
	"time"

	"github.com/eng618/nonosolve/pkg/solve"
)

// Aggregate summarizes a collection of solve.Metrics.
type Aggregate struct {
	Count         int
	SolvedCount   int
	TotalSteps    int
	TotalGuesses  int
	TotalSweeps   int
	TotalDuration time.Duration
}

// Add folds one outcome/metrics pair into the aggregate.
func (a *Aggregate) Add(outcome solve.Outcome, m solve.Metrics) {
	a.Count++
	if outcome == solve.Solved {
		a.SolvedCount++
	}
	a.TotalSteps += m.Steps
	a.TotalGuesses += m.Guesses
	a.TotalSweeps += m.Sweeps
	a.TotalDuration += m.Duration
}

// SuccessRate is SolvedCount/Count, or 0 if nothing was added.
func (a *Aggregate) SuccessRate() float64 {
	if a.Count == 0 {
		return 0
	}
	return float64(a.SolvedCount) / float64(a.Count)
}

// AverageGuesses is TotalGuesses/Count, or 0 if nothing was added.
func (a *Aggregate) AverageGuesses() float64 {
	if a.Count == 0 {
		return 0
	}
	return float64(a.TotalGuesses) / float64(a.Count)
}

// AverageSweeps is TotalSweeps/Count, or 0 if nothing was added.
func (a *Aggregate) AverageSweeps() float64 {
	if a.Count == 0 {
		return 0
	}
	return float64(a.TotalSweeps) / float64(a.Count)
}
