package loader

import (
	"bytes"
	"strings"
	"testing"

	"github.com/eng618/nonosolve/pkg/model"
)

func TestParseInstructionsBasic(t *testing.T) {
	text := "2 1\n3\n\nCOL\n1\n1 1\n"
	rows, columns, err := ParseInstructions(strings.NewReader(text))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 3 || len(columns) != 2 {
		t.Fatalf("got %d rows, %d columns; want 3, 2", len(rows), len(columns))
	}
	if !rows[0].Equal(model.NewRunInstructions(2, 1)) {
		t.Errorf("row 0 = %v, want [2 1]", rows[0].Runs())
	}
	if rows[2].Len() != 0 {
		t.Errorf("row 2 should be empty, got %v", rows[2].Runs())
	}
	if !columns[1].Equal(model.NewRunInstructions(1, 1)) {
		t.Errorf("column 1 = %v, want [1 1]", columns[1].Runs())
	}
}

func TestParseInstructionsRejectsNonPositive(t *testing.T) {
	_, _, err := ParseInstructions(strings.NewReader("2 0\nCOL\n1\n"))
	if err == nil {
		t.Fatal("expected an error for a zero run value")
	}
}

func TestParseInstructionsRejectsMalformed(t *testing.T) {
	_, _, err := ParseInstructions(strings.NewReader("2 x\nCOL\n1\n"))
	if err == nil {
		t.Fatal("expected an error for a non-integer token")
	}
}

func TestWriteInstructionsRoundTrip(t *testing.T) {
	rows := []model.RunInstructions{model.NewRunInstructions(2, 1), model.NewRunInstructions()}
	columns := []model.RunInstructions{model.NewRunInstructions(3)}

	var buf bytes.Buffer
	if err := WriteInstructions(&buf, rows, columns); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gotRows, gotColumns, err := ParseInstructions(&buf)
	if err != nil {
		t.Fatalf("unexpected error re-parsing: %v", err)
	}
	if len(gotRows) != len(rows) || len(gotColumns) != len(columns) {
		t.Fatal("round trip changed the number of lines")
	}
	for i, r := range rows {
		if !gotRows[i].Equal(r) {
			t.Errorf("row %d round trip = %v, want %v", i, gotRows[i].Runs(), r.Runs())
		}
	}
}

func TestParseInstructionsColBeforeAnyRows(t *testing.T) {
	rows, columns, err := ParseInstructions(strings.NewReader("COL\n1\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
	if len(columns) != 1 {
		t.Errorf("expected one column, got %d", len(columns))
	}
}
