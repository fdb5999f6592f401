// Package tabular opens tabular datasets stored as Excel workbooks or
// as directories of delimiter-separated text files, and exposes them
// through the format-independent interfaces of the table package.
//
// Opening a source is the only fallible step. Every failure wraps one
// of the package's sentinel errors; once a dataset is open, all reads
// degrade to empty results instead of failing.
package tabular

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/beaufort/cmrc-tabular/pkg/tabular/ascii"
	"github.com/beaufort/cmrc-tabular/pkg/tabular/excel"
	"github.com/beaufort/cmrc-tabular/pkg/tabular/table"
)

// OpenExcel opens the workbook at path as a dataset with one table
// per sheet. It fails with ErrNoPath for an empty path,
// ErrFileNotFound when nothing exists at path, and ErrInvalidFormat
// when path is not a regular file or its bytes do not parse as a
// workbook.
func OpenExcel(path string) (table.Dataset, error) {
	if path == "" {
		return nil, ErrNoPath
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewOpenError(path, ErrFileNotFound)
		}
		return nil, NewOpenError(path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, NewOpenError(path, fmt.Errorf("%w: source is not a file", ErrInvalidFormat))
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewOpenError(path, fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	return excel.NewDataset(f), nil
}

// OpenDelimitedDir opens the directory at path as a dataset with one
// table per delimited file. The error contract matches OpenExcel with
// the kinds reversed: ErrInvalidFormat reports a path that exists but
// is not a directory.
func OpenDelimitedDir(path string, opts ascii.Options) (table.Dataset, error) {
	if path == "" {
		return nil, ErrNoPath
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewOpenError(path, ErrFileNotFound)
		}
		return nil, NewOpenError(path, err)
	}
	if !info.IsDir() {
		return nil, NewOpenError(path, fmt.Errorf("%w: source is not a directory", ErrInvalidFormat))
	}
	return ascii.NewDataset(path, opts), nil
}
