// Package excel adapts Excel workbooks to the tabular data
// interfaces using excelize. Every sheet is a table whose first row
// is the header.
//
// Values are read in their formatted form, so what a cell yields here
// is what a spreadsheet application would display. Numbers stored as
// text stay text and are parsed on demand by the typed accessors.
package excel

import (
	"github.com/xuri/excelize/v2"

	"github.com/beaufort/cmrc-tabular/pkg/tabular/table"
)

var _ table.Dataset = (*Dataset)(nil)

// Dataset exposes an open workbook as a collection of tables, one per
// sheet.
type Dataset struct {
	f *excelize.File
}

// NewDataset wraps the given workbook. The dataset takes ownership of
// the handle: closing the dataset closes the workbook.
func NewDataset(f *excelize.File) *Dataset {
	return &Dataset{f: f}
}

// Table returns the table for the sheet with exactly the given name,
// or nil when no such sheet exists. Sheet names match
// case-sensitively.
func (d *Dataset) Table(name string) table.Table {
	if d.f == nil {
		return nil
	}
	for _, sheet := range d.f.GetSheetList() {
		if sheet == name {
			return NewTable(d.f, name)
		}
	}
	return nil
}

// TableNames lists the sheet names in workbook order.
func (d *Dataset) TableNames() []string {
	if d.f == nil {
		return nil
	}
	return d.f.GetSheetList()
}

// Close releases the workbook handle. Tables obtained from the
// dataset stop producing rows afterwards.
func (d *Dataset) Close() error {
	if d.f == nil {
		return nil
	}
	return d.f.Close()
}
