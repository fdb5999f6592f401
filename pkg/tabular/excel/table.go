package excel

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/beaufort/cmrc-tabular/pkg/tabular/table"
	"github.com/beaufort/cmrc-tabular/pkg/tabular/term"
)

var _ table.Table = (*Table)(nil)

// Table wraps one worksheet. The header is parsed from the first
// sheet row at construction; data rows are addressed lazily through
// the recorded column indices.
type Table struct {
	f       *excelize.File
	sheet   string
	header  *table.FieldMapHeader[int]
	records int
	next    int
}

// NewTable wraps the named sheet of the workbook. Construction never
// fails: a missing or unreadable sheet yields a table with an empty
// header and no records.
func NewTable(f *excelize.File, sheet string) *Table {
	t := &Table{f: f, sheet: sheet, header: table.NewFieldMapHeader[int]()}
	if f == nil {
		return t
	}
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) == 0 {
		return t
	}
	for i, label := range rows[0] {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		t.header.Put(term.New(label), i)
	}
	t.records = len(rows) - 1
	return t
}

// Header returns the table header.
func (t *Table) Header() table.Header {
	return t.header
}

// Name returns the sheet name.
func (t *Table) Name() string {
	return t.sheet
}

// NumRecords returns the number of data rows below the header.
func (t *Table) NumRecords() int {
	return t.records
}

// NumColumns returns the number of distinct header fields.
func (t *Table) NumColumns() int {
	return t.header.NumFields()
}

// IsEmpty reports whether the table has no header fields or no data
// rows.
func (t *Table) IsEmpty() bool {
	return t.header.IsEmpty() || t.records == 0
}

// row returns the row at the 0-based record index, or nil when the
// index is out of range. Record k lives at sheet row k+2, below the
// header row.
func (t *Table) row(index int) table.Row {
	if index < 0 || index >= t.records {
		return nil
	}
	return newRow(t.f, t.sheet, index+2, t.header)
}

// NextRow returns the record at the cursor and advances it. Once
// every record has been returned it keeps returning nil without
// advancing.
func (t *Table) NextRow() table.Row {
	row := t.row(t.next)
	if t.next < t.records {
		t.next++
	}
	return row
}

// Reset rewinds the cursor to the first record.
func (t *Table) Reset() {
	t.next = 0
}

// Close is a no-op: the workbook handle belongs to the dataset.
func (t *Table) Close() error {
	return nil
}
