// Package batch provides the "batch" subcommand: solve every instruction
// file in a directory concurrently, one worker per file.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/eng618/nonosolve/pkg/batch"
	"github.com/eng618/nonosolve/pkg/common"
	"github.com/eng618/nonosolve/pkg/loader"
	"github.com/eng618/nonosolve/pkg/metrics"
	"github.com/eng618/nonosolve/pkg/model"
	"github.com/eng618/nonosolve/pkg/ui"
)

var (
	dir      string
	pattern  string
	deadline time.Duration
	workers  int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Solve every puzzle in a directory concurrently",
	RunE:  run,
}

func init() {
	batchCmd.Flags().StringVar(&dir, "dir", ".", "directory of instruction files to solve")
	batchCmd.Flags().StringVar(&pattern, "pattern", "*.txt", "glob pattern for instruction files within --dir")
	batchCmd.Flags().DurationVar(&deadline, "deadline", 10*time.Second, "per-puzzle solve deadline")
	batchCmd.Flags().IntVar(&workers, "workers", 0, "worker count (values below 1 use one worker; the root --workers value is not consulted)")
}

// GetCommand returns the batch command for registration with root.
func GetCommand() *cobra.Command {
	return batchCmd
}

func run(cmd *cobra.Command, args []string) error {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("batch: no files matched %s in %s", pattern, dir)
	}

	jobs := make([]batch.Job, 0, len(matches))
	for _, path := range matches {
		board, err := loadBoard(path)
		if err != nil {
			common.Warning("skipping %s: %v", path, err)
			continue
		}
		jobs = append(jobs, batch.Job{Path: path, Board: board})
	}

	w := workers
	if w <= 0 {
		w = 1
	}
	spinner := ui.New(fmt.Sprintf("solving %d puzzle(s) across %d worker(s)...", len(jobs), w))
	spinner.Start()
	summary := batch.Run(jobs, batch.Config{Workers: w, Deadline: deadline})
	spinner.Stop()

	var aggregate metrics.Aggregate
	for _, r := range summary.Results {
		common.Info("%s: %s (steps=%d guesses=%d)", r.Path, r.Outcome, r.Metrics.Steps, r.Metrics.Guesses)
		aggregate.Add(r.Outcome, r.Metrics)
	}
	common.Info("batch complete: %d/%d solved in %s (success rate %.1f%%, avg guesses %.1f, avg sweeps %.1f)",
		summary.SolvedCount, len(summary.Results), summary.TotalTime,
		aggregate.SuccessRate()*100, aggregate.AverageGuesses(), aggregate.AverageSweeps())

	if summary.FailureCount > 0 {
		return fmt.Errorf("batch: %d puzzle(s) failed", summary.FailureCount)
	}
	return nil
}

func loadBoard(path string) (*model.Board, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	rows, columns, err := loader.ParseInstructions(file)
	if err != nil {
		return nil, err
	}
	return model.NewBoard(rows, columns), nil
}
