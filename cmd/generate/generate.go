// Package generate provides the "generate" subcommand: produce a random
// solvable puzzle at a difficulty tier and write it to an instruction file
// (and optionally a PNG dump of its reference solution).
package generate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/eng618/nonosolve/pkg/common"
	"github.com/eng618/nonosolve/pkg/generator"
	"github.com/eng618/nonosolve/pkg/loader"
	"github.com/eng618/nonosolve/pkg/ui"
)

var (
	difficulty  string
	seed        int64
	maxAttempts int
	out         string
	dumpImage   bool
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate a new solvable puzzle",
	Long: `Generate fills a random board at the requested difficulty tier and
confirms it solves within the tier's step budget, retrying with a new seed
on failure.`,
	RunE: run,
}

func init() {
	generateCmd.Flags().StringVarP(&difficulty, "difficulty", "d", "medium", "difficulty tier: easy, medium, or hard")
	generateCmd.Flags().Int64VarP(&seed, "seed", "s", 1, "base seed for generation")
	generateCmd.Flags().IntVar(&maxAttempts, "max-attempts", 10, "attempts, each with an incremented seed, before giving up")
	generateCmd.Flags().StringVarP(&out, "out", "o", "puzzle.txt", "instruction-file output path")
	generateCmd.Flags().BoolVar(&dumpImage, "dump-image", false, "also write a PNG dump of the reference solution")
}

// GetCommand returns the generate command for registration with root.
func GetCommand() *cobra.Command {
	return generateCmd
}

func run(cmd *cobra.Command, args []string) error {
	spinner := ui.New(fmt.Sprintf("generating a %s puzzle (seed %d)...", difficulty, seed))
	spinner.Start()
	result, err := generator.Generate(generator.Config{
		Difficulty:  difficulty,
		Seed:        seed,
		MaxAttempts: maxAttempts,
	})
	spinner.Stop()
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	common.Verbose("solvable after %d attempt(s), final seed %d", result.Attempts, result.Seed)

	if err := common.EnsureDir(filepath.Dir(out)); err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("generate: creating %s: %w", out, err)
	}
	defer file.Close()

	board := result.Board
	if err := loader.WriteInstructions(file, board.RowInstructionsList(), board.ColumnInstructionsList()); err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	common.Info("wrote instructions to %s", out)

	if dumpImage {
		imgPath := common.WithExt(out, ".png")
		imgFile, err := os.Create(imgPath)
		if err != nil {
			return fmt.Errorf("generate: creating %s: %w", imgPath, err)
		}
		defer imgFile.Close()
		if err := loader.DumpImage(imgFile, board.Solution); err != nil {
			return fmt.Errorf("generate: %w", err)
		}
		common.Info("wrote reference image to %s", imgPath)
	}

	return nil
}
