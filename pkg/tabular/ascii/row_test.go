package ascii

import (
	"testing"

	"github.com/beaufort/cmrc-tabular/pkg/tabular/table"
	"github.com/beaufort/cmrc-tabular/pkg/tabular/term"
)

func testHeader(labels ...string) *table.FieldMapHeader[int] {
	h := table.NewFieldMapHeader[int]()
	for i, label := range labels {
		h.Put(term.New(label), i)
	}
	return h
}

func TestNewRow(t *testing.T) {
	row := NewRow(testHeader("id", "name"), "1,Alice", DefaultOptions())

	if v := row.FieldIntValue(term.New("id")); v == nil || *v != 1 {
		t.Errorf("id = %v, want 1", v)
	}
	if v := row.FieldStringValue(term.New("name")); v == nil || *v != "Alice" {
		t.Errorf("name = %v, want Alice", v)
	}
}

func TestNewRowShortLine(t *testing.T) {
	row := NewRow(testHeader("id", "name"), "1", DefaultOptions())

	if got := row.Cells(term.New("name")); len(got) != 0 {
		t.Errorf("Cells(name) = %v, want none for a short line", got)
	}
	if v := row.FieldStringValue(term.New("name")); v != nil {
		t.Errorf("name = %q, want nil", *v)
	}
	if v := row.FieldIntValue(term.New("id")); v == nil || *v != 1 {
		t.Errorf("id = %v, want 1", v)
	}
}

func TestNewRowExtraTokensIgnored(t *testing.T) {
	row := NewRow(testHeader("id"), "1,spare,tokens", DefaultOptions())

	if row.Header().Size() != 1 {
		t.Errorf("row stores %d cells, want 1", row.Header().Size())
	}
}

func TestNewRowBlankToken(t *testing.T) {
	row := NewRow(testHeader("a", "b", "c"), "x,,z", DefaultOptions())

	// The middle cell is present but blank.
	cells := row.Cells(term.New("b"))
	if len(cells) != 1 {
		t.Fatalf("Cells(b) has %d entries, want 1", len(cells))
	}
	if !cells[0].IsEmpty() {
		t.Error("blank token should produce an empty cell")
	}
	if v := cells[0].StringValue(); v == nil || *v != "" {
		t.Errorf("blank token StringValue = %v, want empty string", v)
	}
}

func TestNewRowTrailingBlankTokenKept(t *testing.T) {
	row := NewRow(testHeader("a", "b"), "x,", DefaultOptions())

	cells := row.Cells(term.New("b"))
	if len(cells) != 1 {
		t.Fatalf("Cells(b) has %d entries, want 1", len(cells))
	}
	if !cells[0].IsEmpty() {
		t.Error("trailing blank token should produce an empty cell")
	}
}

func TestRowCellFirstNonEmpty(t *testing.T) {
	// Duplicate columns: the first non-empty cell wins.
	h := table.NewFieldMapHeader[int]()
	h.Put(term.New("v"), 0)
	h.Put(term.New("v"), 1)
	row := NewRow(h, ",x", DefaultOptions())

	c := row.Cell(term.New("v"))
	if c.IsEmpty() {
		t.Fatal("Cell(v) picked the blank cell, want the first non-empty one")
	}
	if v := c.StringValue(); v == nil || *v != "x" {
		t.Errorf("Cell(v) = %v, want x", v)
	}
}

func TestRowCellAllBlank(t *testing.T) {
	h := table.NewFieldMapHeader[int]()
	h.Put(term.New("v"), 0)
	h.Put(term.New("v"), 1)
	row := NewRow(h, ",", DefaultOptions())

	c := row.Cell(term.New("v"))
	if !c.IsEmpty() {
		t.Error("Cell(v) over all-blank cells should be empty")
	}
	if v := c.StringValue(); v != nil {
		t.Errorf("fallback cell StringValue = %q, want nil", *v)
	}
}

func TestRowCellMissingField(t *testing.T) {
	row := NewRow(testHeader("id"), "1", DefaultOptions())

	c := row.Cell(term.New("missing"))
	if !c.IsEmpty() || c.StringValue() != nil {
		t.Error("Cell(missing) should be the empty cell")
	}
}

func TestNewRowTrim(t *testing.T) {
	opts := DefaultOptions()
	opts.TrimSpace = true
	row := NewRow(testHeader("id", "name"), " 1 , Alice ", opts)

	if v := row.FieldStringValue(term.New("name")); v == nil || *v != "Alice" {
		t.Errorf("trimmed name = %v, want Alice", v)
	}

	// Without trimming the padding stays in the string value.
	raw := NewRow(testHeader("id", "name"), " 1 , Alice ", DefaultOptions())
	if v := raw.FieldStringValue(term.New("name")); v == nil || *v != " Alice " {
		t.Errorf("untrimmed name = %v, want \" Alice \"", v)
	}
	// Numeric parsing trims on its own either way.
	if v := raw.FieldIntValue(term.New("id")); v == nil || *v != 1 {
		t.Errorf("untrimmed id = %v, want 1", v)
	}
}

func TestNewRowEmptyHeader(t *testing.T) {
	row := NewRow(table.NewFieldMapHeader[int](), "1,2,3", DefaultOptions())

	if !row.Header().IsEmpty() {
		t.Error("row over an empty header should store nothing")
	}

	nilRow := NewRow(nil, "1", DefaultOptions())
	if !nilRow.Header().IsEmpty() {
		t.Error("row over a nil header should store nothing")
	}
}

func TestNewRowMultiCharSeparator(t *testing.T) {
	opts := DefaultOptions()
	opts.Separator = "::"
	row := NewRow(testHeader("id", "name"), "1::Alice", opts)

	if v := row.FieldStringValue(term.New("name")); v == nil || *v != "Alice" {
		t.Errorf("name = %v, want Alice", v)
	}
}
