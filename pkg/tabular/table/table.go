// Package table defines the format-independent contracts for tabular
// data access: headers, cells, rows, tables and datasets. Concrete
// adapters translate a physical source, such as a workbook sheet or a
// delimited text file, into these interfaces.
//
// Construction-time failures are reported as errors by the factory
// functions; once a table is open, every read operation is total.
// Absent fields yield empty collections, missing values yield nil
// pointers, and the cursor simply stops producing rows at the end.
package table

import "github.com/beaufort/cmrc-tabular/pkg/tabular/term"

// Header is a read-only view of a table's or row's fields.
//
// Lookups by bare name span every language variant of that name.
// Absent names yield empty results, which is also what a present but
// empty field yields, so existence must be tested with the
// containment methods.
type Header interface {
	// Fields returns the distinct field terms, grouped by bare name
	// in insertion order.
	Fields() []term.Term
	// NameFields returns one term per occurrence of the given bare
	// name, in insertion order. Duplicate columns yield duplicate
	// terms.
	NameFields(name string) []term.Term
	// Field returns the first field term carrying the given bare
	// name.
	Field(name string) (term.Term, bool)
	// NameLanguages returns the language of every occurrence of the
	// bare name, one entry per occurrence.
	NameLanguages(name string) []string
	// Languages returns the distinct languages across all fields.
	Languages() []string
	// FieldNames returns the distinct bare field names in insertion
	// order.
	FieldNames() []string
	// ContainsField reports whether the exact field term is present.
	ContainsField(field term.Term) bool
	// ContainsName reports whether any field carries the bare name.
	ContainsName(name string) bool
	// NumFields returns the number of distinct field terms.
	NumFields() int
	// Size returns the total number of field occurrences, duplicates
	// included.
	Size() int
	// IsEmpty reports whether the header has no fields.
	IsEmpty() bool
}

// Cell is a single stored value exposed through typed accessors.
//
// Accessors never fail: a value that cannot be produced under the
// requested type is a nil pointer. A blank cell still has the empty
// string as its string value, which keeps "present but blank"
// distinct from "absent".
type Cell interface {
	// StringValue returns the textual value, or nil when the cell
	// holds nothing usable as text.
	StringValue() *string
	// IntValue returns the integer value, or nil. Textual values are
	// trimmed and parsed base 10; fractional numerics are truncated.
	IntValue() *int
	// FloatValue returns the floating-point value, or nil. Textual
	// values are trimmed before parsing.
	FloatValue() *float64
	// BoolValue returns the boolean value, or nil. Textual values are
	// matched against the vocabulary of ParseBool; numeric values map
	// only from exactly 0 and 1.
	BoolValue() *bool
	// IsEmpty reports whether the cell holds no value or a blank one.
	IsEmpty() bool
}

// Row is one data record resolved against a header.
type Row interface {
	// Header returns the header describing this row's fields.
	Header() Header
	// Cell returns a cell matching the field. When several columns
	// match, the adapter's documented tie-break picks one. The result
	// is never nil: a field with no usable cell yields EmptyCell, so
	// chained calls like row.Cell(f).StringValue() are always safe.
	Cell(field term.Term) Cell
	// Cells returns every cell matching the exact field, in column
	// order.
	Cells(field term.Term) []Cell
	// NameCells returns the cells of every field sharing the bare
	// name, grouped by language. The result is never nil.
	NameCells(name string) *term.Multimap[string, Cell]

	// FieldStringValue returns the first non-empty string value among
	// the field's cells, falling back to the first present but blank
	// one.
	FieldStringValue(field term.Term) *string
	// FieldIntValue returns the first integer value among the field's
	// non-empty cells.
	FieldIntValue(field term.Term) *int
	// FieldFloatValue returns the first floating-point value among
	// the field's non-empty cells.
	FieldFloatValue(field term.Term) *float64
	// FieldBoolValue returns the first boolean value among the
	// field's non-empty cells.
	FieldBoolValue(field term.Term) *bool
}

// Table is a named sequence of records behind a forward-only cursor.
// The first physical record of the source is the header; it is not
// counted as data.
type Table interface {
	// Header returns the table header.
	Header() Header
	// Name returns the table name.
	Name() string
	// NumRecords returns the number of data records.
	NumRecords() int
	// NextRow returns the record at the cursor and advances it, or
	// nil once every record has been returned. The cursor never moves
	// past the record count, so repeated calls at the end keep
	// returning nil.
	NextRow() Row
	// Reset rewinds the cursor to the first record.
	Reset()
	// Close releases the table's underlying resource, if it owns one.
	Close() error
}

// Dataset is a collection of named tables backed by one physical
// source.
type Dataset interface {
	// Table opens the named table, or returns nil when the source has
	// no table of that name.
	Table(name string) Table
	// TableNames lists every available table in source order. Each
	// returned name resolves through Table.
	TableNames() []string
	// Close releases the dataset's underlying resource.
	Close() error
}
