// Package render provides the "render" subcommand: print a puzzle's
// instructions (unsolved) or solve it first and print the solved board.
package render

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eng618/nonosolve/pkg/loader"
	"github.com/eng618/nonosolve/pkg/model"
	renderpkg "github.com/eng618/nonosolve/pkg/render"
	"github.com/eng618/nonosolve/pkg/solve"
)

var (
	style   string
	solveIt bool
)

var renderCmd = &cobra.Command{
	Use:   "render <path>",
	Short: "Render a puzzle as ASCII/Unicode text",
	Args:  cobra.ExactArgs(1),
	RunE:  run,
}

func init() {
	renderCmd.Flags().StringVar(&style, "style", "unicode", "glyph set: 'ascii' or 'unicode'")
	renderCmd.Flags().BoolVar(&solveIt, "solve", false, "solve the puzzle before rendering")
}

// GetCommand returns the render command for registration with root.
func GetCommand() *cobra.Command {
	return renderCmd
}

func run(cmd *cobra.Command, args []string) error {
	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer file.Close()

	rows, columns, err := loader.ParseInstructions(file)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	board := model.NewBoard(rows, columns)

	if solveIt {
		outcome, _ := solve.NewByOrderSolver().Solve(board)
		if outcome != solve.Solved {
			return fmt.Errorf("render: puzzle %s", outcome)
		}
	}

	glyphs := renderpkg.Unicode
	if style == "ascii" {
		glyphs = renderpkg.ASCII
	}
	renderpkg.Board(os.Stdout, board, glyphs)
	return nil
}
