// Package loader implements two board loaders and one dumper: a plain-text
// instruction-file parser and a monochrome-image loader/dumper. Both are
// external collaborators — neither is consulted by the solver core.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/eng618/nonosolve/pkg/model"
)

// colToken switches the parser from row instructions to column
// instructions. Case-sensitive.
const colToken = "COL"

// ParseInstructions reads the text instruction-file grammar: whitespace-
// separated positive integers, one line's runs per text line; the literal
// line "COL" switches from rows to columns; a line with no integers is a
// legal empty-instruction line.
func ParseInstructions(r io.Reader) (rows, columns []model.RunInstructions, err error) {
	scanner := bufio.NewScanner(r)
	inColumns := false
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == colToken {
			inColumns = true
			continue
		}
		runs, perr := parseRunLine(text)
		if perr != nil {
			return nil, nil, fmt.Errorf("loader: line %d: %w", lineNo, perr)
		}
		if inColumns {
			columns = append(columns, runs)
		} else {
			rows = append(rows, runs)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("loader: reading instructions: %w", err)
	}
	return rows, columns, nil
}

func parseRunLine(text string) (model.RunInstructions, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return model.NewRunInstructions(), nil
	}
	runs := make([]int, len(fields))
	for i, f := range fields {
		k, err := strconv.Atoi(f)
		if err != nil {
			return model.RunInstructions{}, fmt.Errorf("malformed run value %q: %w", f, err)
		}
		if k <= 0 {
			return model.RunInstructions{}, fmt.Errorf("run value %d must be positive", k)
		}
		runs[i] = k
	}
	return model.NewRunInstructions(runs...), nil
}

// WriteInstructions serializes rows then a "COL" marker then columns, the
// format ParseInstructions reads back.
func WriteInstructions(w io.Writer, rows, columns []model.RunInstructions) error {
	if err := writeRunLines(w, rows); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, colToken); err != nil {
		return fmt.Errorf("loader: writing COL marker: %w", err)
	}
	return writeRunLines(w, columns)
}

func writeRunLines(w io.Writer, lines []model.RunInstructions) error {
	for _, line := range lines {
		parts := make([]string, line.Len())
		for i := 0; i < line.Len(); i++ {
			parts[i] = strconv.Itoa(line.At(i))
		}
		if _, err := fmt.Fprintln(w, strings.Join(parts, " ")); err != nil {
			return fmt.Errorf("loader: writing instruction line: %w", err)
		}
	}
	return nil
}
