package ascii

import (
	"bufio"
	"os"
	"strings"

	"github.com/beaufort/cmrc-tabular/pkg/tabular/table"
	"github.com/beaufort/cmrc-tabular/pkg/tabular/term"
)

// maxLineSize caps a single line read from a delimited file.
const maxLineSize = 1024 * 1024

var _ table.Table = (*Table)(nil)

// Table reads one delimited text file. The first line is the header;
// every later line, blank ones included, is one record.
//
// Construction never fails: a missing or unreadable file yields a
// table with an empty header and zero records, so every read stays
// total. The record count is taken in a dedicated pass at open time
// and is not revisited while reading.
type Table struct {
	path    string
	name    string
	opts    Options
	header  *table.FieldMapHeader[int]
	records int
	pos     int
	file    *os.File
	scanner *bufio.Scanner
}

// NewTable opens the delimited file at path under the given table
// name.
func NewTable(path, name string, opts Options) *Table {
	t := &Table{
		path:   path,
		name:   name,
		opts:   opts.normalized(),
		header: table.NewFieldMapHeader[int](),
	}
	t.countRecords()
	t.openReader()
	return t
}

// countRecords parses the header from the first line and counts the
// remaining lines in one pass over the file.
func (t *Table) countRecords() {
	f, err := os.Open(t.path)
	if err != nil {
		return
	}
	defer f.Close()

	sc := newScanner(f)
	if !sc.Scan() {
		return
	}
	t.parseHeader(sc.Text())
	for sc.Scan() {
		t.records++
	}
}

// parseHeader registers each non-blank label of the header line under
// its 0-based source index. Labels are always trimmed; blank labels
// are skipped without shifting later indices.
func (t *Table) parseHeader(line string) {
	if line == "" {
		return
	}
	for i, label := range strings.Split(line, t.opts.Separator) {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		t.header.Put(term.New(label), i)
	}
}

// openReader opens the data stream positioned after the header line.
func (t *Table) openReader() {
	f, err := os.Open(t.path)
	if err != nil {
		return
	}
	t.file = f
	t.scanner = newScanner(f)
	t.scanner.Scan() // skip header
}

func newScanner(f *os.File) *bufio.Scanner {
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return sc
}

// Header returns the table header.
func (t *Table) Header() table.Header {
	return t.header
}

// Name returns the table name.
func (t *Table) Name() string {
	return t.name
}

// NumRecords returns the number of data lines counted at open time.
func (t *Table) NumRecords() int {
	return t.records
}

// NextRow returns the record at the cursor and advances it, or nil
// once every record has been returned. A read failure pins the cursor
// at the record count, so later calls keep returning nil.
func (t *Table) NextRow() table.Row {
	if t.scanner == nil || t.pos >= t.records {
		return nil
	}
	if !t.scanner.Scan() {
		t.pos = t.records
		return nil
	}
	t.pos++
	return NewRow(t.header, t.scanner.Text(), t.opts)
}

// Reset rewinds the cursor to the first record by reopening the
// stream and skipping the header line again.
func (t *Table) Reset() {
	t.closeReader()
	t.openReader()
	t.pos = 0
}

// Close releases the file handle. The table stops producing rows but
// its header and record count stay readable.
func (t *Table) Close() error {
	return t.closeReader()
}

func (t *Table) closeReader() error {
	if t.file == nil {
		return nil
	}
	err := t.file.Close()
	t.file = nil
	t.scanner = nil
	return err
}
