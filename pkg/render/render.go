// Package render prints a board's current cell states and its row/column
// instruction gutters as ASCII or Unicode text.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/eng618/nonosolve/pkg/model"
)

// Style selects the glyph set used for cells.
type Style int

const (
	ASCII Style = iota
	Unicode
)

func glyphs(style Style) (fill, empty, unset string) {
	if style == ASCII {
		return "#", ".", "?"
	}
	return "█", "·", "?"
}

// Board writes board to w: a left gutter of row instructions, a top gutter
// of column instructions, and the grid body in between.
func Board(w io.Writer, board *model.Board, style Style) {
	rows, columns := board.Size()
	fill, empty, unset := glyphs(style)

	rowLabels := make([]string, rows)
	maxRowLabel := 0
	for r := 0; r < rows; r++ {
		rowLabels[r] = formatRuns(board.RowInstructions(r))
		if len(rowLabels[r]) > maxRowLabel {
			maxRowLabel = len(rowLabels[r])
		}
	}

	colLabels := make([][]string, columns)
	maxColHeight := 0
	for c := 0; c < columns; c++ {
		ins := board.ColumnInstructions(c)
		labels := make([]string, ins.Len())
		for i := 0; i < ins.Len(); i++ {
			labels[i] = strconv.Itoa(ins.At(i))
		}
		if len(labels) == 0 {
			labels = []string{"0"}
		}
		colLabels[c] = labels
		if len(labels) > maxColHeight {
			maxColHeight = len(labels)
		}
	}

	gutter := strings.Repeat(" ", maxRowLabel+1)
	for row := 0; row < maxColHeight; row++ {
		fmt.Fprint(w, gutter)
		for c := 0; c < columns; c++ {
			labels := colLabels[c]
			idx := row - (maxColHeight - len(labels))
			if idx < 0 {
				fmt.Fprint(w, "   ")
				continue
			}
			fmt.Fprintf(w, "%2s ", labels[idx])
		}
		fmt.Fprintln(w)
	}

	for r := 0; r < rows; r++ {
		fmt.Fprintf(w, "%*s ", maxRowLabel, rowLabels[r])
		for c := 0; c < columns; c++ {
			var glyph string
			switch board.Grid.State(model.Location{Row: r, Column: c}) {
			case model.Fill:
				glyph = fill
			case model.Empty:
				glyph = empty
			default:
				glyph = unset
			}
			fmt.Fprintf(w, "%2s ", glyph)
		}
		fmt.Fprintln(w)
	}
}

func formatRuns(ins model.RunInstructions) string {
	if ins.Len() == 0 {
		return "0"
	}
	parts := make([]string, ins.Len())
	for i := 0; i < ins.Len(); i++ {
		parts[i] = strconv.Itoa(ins.At(i))
	}
	return strings.Join(parts, " ")
}
