package excel

import (
	"github.com/xuri/excelize/v2"

	"github.com/beaufort/cmrc-tabular/pkg/tabular/table"
	"github.com/beaufort/cmrc-tabular/pkg/tabular/term"
)

var _ table.Row = (*Row)(nil)

// Row is one sheet row. Cells are read lazily from the workbook when
// a field is resolved, so a row is cheap to produce and only the
// columns actually asked for are materialized.
type Row struct {
	f      *excelize.File
	sheet  string
	rowNum int // 1-based sheet row
	header *table.FieldMapHeader[int]
}

func newRow(f *excelize.File, sheet string, rowNum int, header *table.FieldMapHeader[int]) *Row {
	return &Row{f: f, sheet: sheet, rowNum: rowNum, header: header}
}

// Header returns the table header shared by all rows.
func (r *Row) Header() table.Header {
	return r.header
}

// cellAt reads the cell at the 0-based column index of this row.
func (r *Row) cellAt(col int) table.Cell {
	ref, err := excelize.CoordinatesToCellName(col+1, r.rowNum)
	if err != nil {
		return table.EmptyCell()
	}
	return newCell(r.f, r.sheet, ref)
}

// Cell returns the cell at the field's first registered column,
// whether or not that cell holds a value. Fields with no column yield
// the empty cell.
func (r *Row) Cell(field term.Term) table.Cell {
	col, ok := r.header.Value(field)
	if !ok {
		return table.EmptyCell()
	}
	return r.cellAt(col)
}

// Cells returns one cell per column registered for the exact field,
// in column order.
func (r *Row) Cells(field term.Term) []table.Cell {
	cols := r.header.Values(field)
	if len(cols) == 0 {
		return nil
	}
	cells := make([]table.Cell, 0, len(cols))
	for _, col := range cols {
		cells = append(cells, r.cellAt(col))
	}
	return cells
}

// NameCells returns the cells of every field sharing the bare name,
// grouped by language.
func (r *Row) NameCells(name string) *term.Multimap[string, table.Cell] {
	out := term.NewMultimap[string, table.Cell]()
	byLang := r.header.NameValues(name)
	for _, lang := range byLang.Keys() {
		for _, col := range byLang.Values(lang) {
			out.Put(lang, r.cellAt(col))
		}
	}
	return out
}

// FieldStringValue returns the first non-blank string value among the
// field's columns.
func (r *Row) FieldStringValue(field term.Term) *string {
	return table.FirstStringValue(r.Cells(field))
}

// FieldIntValue returns the first integer value among the field's
// columns.
func (r *Row) FieldIntValue(field term.Term) *int {
	return table.FirstIntValue(r.Cells(field))
}

// FieldFloatValue returns the first floating-point value among the
// field's columns.
func (r *Row) FieldFloatValue(field term.Term) *float64 {
	return table.FirstFloatValue(r.Cells(field))
}

// FieldBoolValue returns the first boolean value among the field's
// columns.
func (r *Row) FieldBoolValue(field term.Term) *bool {
	return table.FirstBoolValue(r.Cells(field))
}
