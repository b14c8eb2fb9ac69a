// Package repair provides the "repair" subcommand: re-derive an
// instruction file from its source monochrome image when the instruction
// file is missing or fails to parse, rather than deleting it.
package repair

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/eng618/nonosolve/pkg/common"
	"github.com/eng618/nonosolve/pkg/loader"
)

var out string

var repairCmd = &cobra.Command{
	Use:   "repair <image>",
	Short: "Re-derive an instruction file from its source image",
	Args:  cobra.ExactArgs(1),
	RunE:  run,
}

func init() {
	repairCmd.Flags().StringVarP(&out, "out", "o", "", "instruction-file output path (default: <image> with .txt extension)")
}

// GetCommand returns the repair command for registration with root.
func GetCommand() *cobra.Command {
	return repairCmd
}

func run(cmd *cobra.Command, args []string) error {
	imagePath := args[0]
	imageFile, err := os.Open(imagePath)
	if err != nil {
		return fmt.Errorf("repair: %w", err)
	}
	defer imageFile.Close()

	board, err := loader.LoadImage(imageFile)
	if err != nil {
		return fmt.Errorf("repair: deriving instructions from %s: %w", imagePath, err)
	}

	outPath := out
	if outPath == "" {
		outPath = common.WithExt(imagePath, ".txt")
	}
	if err := common.EnsureDir(filepath.Dir(outPath)); err != nil {
		return fmt.Errorf("repair: %w", err)
	}
	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("repair: creating %s: %w", outPath, err)
	}
	defer outFile.Close()

	if err := loader.WriteInstructions(outFile, board.RowInstructionsList(), board.ColumnInstructionsList()); err != nil {
		return fmt.Errorf("repair: %w", err)
	}
	common.Info("repaired %s -> %s", imagePath, outPath)
	return nil
}
