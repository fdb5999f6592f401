package ascii

import (
	"strings"

	"github.com/beaufort/cmrc-tabular/pkg/tabular/table"
	"github.com/beaufort/cmrc-tabular/pkg/tabular/term"
)

var _ table.Row = (*Row)(nil)

// Row is one parsed line. The line is split eagerly at construction
// and every token that falls under a header column is stored as a
// cell, keyed by the column's field.
type Row struct {
	cells *table.FieldMapHeader[table.Cell]
}

// NewRow parses line against the table header. Every column index
// registered for a field yields a cell when the line has a token at
// that index; indices beyond the end of the line yield nothing.
// Options must match the ones the header was parsed with.
func NewRow(header *table.FieldMapHeader[int], line string, opts Options) *Row {
	r := &Row{cells: table.NewFieldMapHeader[table.Cell]()}
	if header == nil || header.IsEmpty() {
		return r
	}
	opts = opts.normalized()
	tokens := strings.Split(line, opts.Separator)
	for _, field := range header.Fields() {
		for _, col := range header.Values(field) {
			if col < 0 || col >= len(tokens) {
				continue
			}
			value := tokens[col]
			if opts.TrimSpace {
				value = strings.TrimSpace(value)
			}
			r.cells.Put(field, NewCell(value))
		}
	}
	return r
}

// Header returns the row's fields with their parsed cells.
func (r *Row) Header() table.Header {
	return r.cells
}

// Cell returns the first non-empty cell matching the field, falling
// back to the empty cell when every match is blank or the field has
// no cell at all.
func (r *Row) Cell(field term.Term) table.Cell {
	for _, c := range r.cells.Values(field) {
		if !c.IsEmpty() {
			return c
		}
	}
	return table.EmptyCell()
}

// Cells returns every cell matching the exact field, in column order.
func (r *Row) Cells(field term.Term) []table.Cell {
	return r.cells.Values(field)
}

// NameCells returns the cells of every field sharing the bare name,
// grouped by language.
func (r *Row) NameCells(name string) *term.Multimap[string, table.Cell] {
	return r.cells.NameValues(name)
}

// FieldStringValue returns the first non-blank string value among the
// field's cells.
func (r *Row) FieldStringValue(field term.Term) *string {
	return table.FirstStringValue(r.Cells(field))
}

// FieldIntValue returns the first integer value among the field's
// cells.
func (r *Row) FieldIntValue(field term.Term) *int {
	return table.FirstIntValue(r.Cells(field))
}

// FieldFloatValue returns the first floating-point value among the
// field's cells.
func (r *Row) FieldFloatValue(field term.Term) *float64 {
	return table.FirstFloatValue(r.Cells(field))
}

// FieldBoolValue returns the first boolean value among the field's
// cells.
func (r *Row) FieldBoolValue(field term.Term) *bool {
	return table.FirstBoolValue(r.Cells(field))
}
