// Package ascii adapts directories of delimiter-separated text files
// to the tabular data interfaces. Every matching file in the
// directory is a table; the first line of a file is its header.
//
// The separator is applied as a literal string, so multi-character
// separators work and no character needs escaping. Splitting carries
// no quoting rules: a separator inside a quoted token still splits.
package ascii

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/beaufort/cmrc-tabular/pkg/tabular/table"
)

var _ table.Dataset = (*Dataset)(nil)

// Dataset exposes a directory of delimited files as a collection of
// tables, one per file matching the extension filter.
type Dataset struct {
	dir  string
	opts Options
}

// NewDataset wraps the directory at dir. Options are normalized once
// here and shared by every table the dataset opens.
func NewDataset(dir string, opts Options) *Dataset {
	return &Dataset{dir: dir, opts: opts.normalized()}
}

// Table opens the table stored as name plus the configured extension
// inside the directory, or returns nil when no such regular file
// exists.
func (d *Dataset) Table(name string) table.Table {
	path := filepath.Join(d.dir, name+d.opts.Extension)
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil
	}
	return NewTable(path, name, d.opts)
}

// TableNames lists the regular files matching the extension filter,
// in directory order, with the extension stripped so that every
// returned name resolves back through Table.
func (d *Dataset) TableNames() []string {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		name := e.Name()
		if d.opts.Extension != "" && !strings.HasSuffix(name, d.opts.Extension) {
			continue
		}
		names = append(names, strings.TrimSuffix(name, d.opts.Extension))
	}
	return names
}

// Close is a no-op: the dataset holds no handle between calls.
func (d *Dataset) Close() error {
	return nil
}
