// Package cmd wires the nonosolve CLI surface: a cobra root command plus
// the solve/generate/validate/render/batch/repair/clean/fixtures
// subcommands, sharing a set of persistent flags for verbosity and config.
package cmd

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eng618/nonosolve/cmd/batch"
	"github.com/eng618/nonosolve/cmd/clean"
	"github.com/eng618/nonosolve/cmd/fixtures"
	"github.com/eng618/nonosolve/cmd/generate"
	"github.com/eng618/nonosolve/cmd/render"
	"github.com/eng618/nonosolve/cmd/repair"
	"github.com/eng618/nonosolve/cmd/solve"
	"github.com/eng618/nonosolve/cmd/validate"
	"github.com/eng618/nonosolve/pkg/common"
)

var (
	verbose    bool
	workers    string
	workingDir string

	// WorkersCount is the parsed --workers value, set before any subcommand
	// runs. No subcommand package reads it.
	WorkersCount int
)

var rootCmd = &cobra.Command{
	Use:   "nonosolve",
	Short: "Nonogram (picross) line solver and search engine",
	Long: `nonosolve solves nonogram puzzles: rectangular grids where each row
and column carries a run-length instruction list describing consecutive
filled cells.

It provides commands for:
  - Solving a puzzle from an instruction file or monochrome image
  - Generating new solvable puzzles at a difficulty tier
  - Validating a puzzle's structure and solvability
  - Rendering a board as ASCII/Unicode text
  - Repairing an instruction file from its source image
  - Batch-solving every puzzle in a directory concurrently`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		common.VerboseEnabled = verbose

		count, err := parseWorkers(workers)
		if err != nil {
			return fmt.Errorf("invalid --workers value: %w", err)
		}
		WorkersCount = count
		common.Verbose("workers: %d (from flag: %s)", WorkersCount, workers)

		if workingDir != "" {
			common.Verbose("changing working directory to: %s", workingDir)
			if err := os.Chdir(workingDir); err != nil {
				return fmt.Errorf("failed to change working directory: %w", err)
			}
		}
		return nil
	},
}

// Execute runs the root command; called once by main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output for debugging")
	rootCmd.PersistentFlags().StringVarP(&workers, "workers", "j", "half", "number of concurrent workers (integer, 'half', or 'full')")
	rootCmd.PersistentFlags().StringVarP(&workingDir, "working-dir", "w", "", "working directory (default: current directory)")

	rootCmd.AddCommand(solve.GetCommand())
	rootCmd.AddCommand(generate.GetCommand())
	rootCmd.AddCommand(validate.GetCommand())
	rootCmd.AddCommand(render.GetCommand())
	rootCmd.AddCommand(batch.GetCommand())
	rootCmd.AddCommand(repair.GetCommand())
	rootCmd.AddCommand(clean.GetCommand())
	rootCmd.AddCommand(fixtures.GetCommand())
}

// parseWorkers accepts "full" -> NumCPU(), "half" -> NumCPU()/2, or an
// integer string -> that value.
func parseWorkers(value string) (int, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	switch value {
	case "full":
		return runtime.NumCPU(), nil
	case "half":
		count := runtime.NumCPU() / 2
		if count < 1 {
			count = 1
		}
		return count, nil
	default:
		count, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("must be 'full', 'half', or a positive integer (got: %s)", value)
		}
		if count < 1 {
			return 0, fmt.Errorf("must be at least 1 (got: %d)", count)
		}
		return count, nil
	}
}
