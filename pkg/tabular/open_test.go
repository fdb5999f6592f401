package tabular

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/beaufort/cmrc-tabular/pkg/tabular/ascii"
	"github.com/beaufort/cmrc-tabular/pkg/tabular/term"
)

// writeWorkbook saves a small people workbook and returns its path.
func writeWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", "id")
	f.SetCellValue("Sheet1", "B1", "name")
	f.SetCellValue("Sheet1", "A2", 1)
	f.SetCellValue("Sheet1", "B2", "Alice")

	path := filepath.Join(t.TempDir(), "people.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestOpenExcel(t *testing.T) {
	ds, err := OpenExcel(writeWorkbook(t))
	require.NoError(t, err)
	defer ds.Close()

	assert.Equal(t, []string{"Sheet1"}, ds.TableNames())

	tbl := ds.Table("Sheet1")
	require.NotNil(t, tbl)
	assert.Equal(t, 1, tbl.NumRecords())

	row := tbl.NextRow()
	require.NotNil(t, row)
	name := row.FieldStringValue(term.New("name"))
	require.NotNil(t, name)
	assert.Equal(t, "Alice", *name)
	assert.Nil(t, tbl.NextRow())
}

func TestOpenExcelNoPath(t *testing.T) {
	ds, err := OpenExcel("")
	assert.Nil(t, ds)
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestOpenExcelNotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.xlsx")
	ds, err := OpenExcel(missing)
	assert.Nil(t, ds)
	require.ErrorIs(t, err, ErrFileNotFound)

	var openErr *OpenError
	require.ErrorAs(t, err, &openErr)
	assert.Equal(t, missing, openErr.Path)
}

func TestOpenExcelDirectory(t *testing.T) {
	ds, err := OpenExcel(t.TempDir())
	assert.Nil(t, ds)
	assert.ErrorIs(t, err, ErrInvalidFormat)
	assert.NotErrorIs(t, err, ErrFileNotFound)
}

func TestOpenExcelBadContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("this is not a workbook"), 0o644))

	ds, err := OpenExcel(path)
	assert.Nil(t, ds)
	require.ErrorIs(t, err, ErrInvalidFormat)
	// The parser's own message survives in the chain.
	assert.NotEqual(t, ErrInvalidFormat.Error(), errors.Unwrap(err).Error())
}

func TestOpenDelimitedDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "people.csv"),
		[]byte("id,name\n1,Alice\n2,Bob\n"), 0o644))

	ds, err := OpenDelimitedDir(dir, ascii.Options{Separator: ",", Extension: ".csv"})
	require.NoError(t, err)
	defer ds.Close()

	assert.Equal(t, []string{"people"}, ds.TableNames())

	tbl := ds.Table("people")
	require.NotNil(t, tbl)
	defer tbl.Close()
	assert.Equal(t, 2, tbl.NumRecords())

	row := tbl.NextRow()
	require.NotNil(t, row)
	name := row.FieldStringValue(term.New("name"))
	require.NotNil(t, name)
	assert.Equal(t, "Alice", *name)
}

func TestOpenDelimitedDirNoPath(t *testing.T) {
	ds, err := OpenDelimitedDir("", ascii.DefaultOptions())
	assert.Nil(t, ds)
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestOpenDelimitedDirNotFound(t *testing.T) {
	ds, err := OpenDelimitedDir(filepath.Join(t.TempDir(), "nope"), ascii.DefaultOptions())
	assert.Nil(t, ds)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestOpenDelimitedDirOnFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.csv")
	require.NoError(t, os.WriteFile(path, []byte("id\n1\n"), 0o644))

	ds, err := OpenDelimitedDir(path, ascii.DefaultOptions())
	assert.Nil(t, ds)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestOpenErrorMessage(t *testing.T) {
	err := NewOpenError("/data/people.xlsx", ErrFileNotFound)
	assert.Contains(t, err.Error(), "/data/people.xlsx")
	assert.Contains(t, err.Error(), "file not found")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

// Both adapters expose the same logical content through the same
// interface, whatever the physical storage.
func TestAdaptersAgree(t *testing.T) {
	xlsxPath := filepath.Join(t.TempDir(), "people.xlsx")
	f := excelize.NewFile()
	// NewFile starts from Sheet1; rename it so both sources share a
	// table name.
	require.NoError(t, f.SetSheetName("Sheet1", "people"))
	f.SetCellValue("people", "A1", "id")
	f.SetCellValue("people", "B1", "name")
	f.SetCellValue("people", "C1", "score")
	f.SetCellValue("people", "A2", 7)
	f.SetCellValue("people", "B2", "Alice")
	f.SetCellValue("people", "C2", 3.5)
	require.NoError(t, f.SaveAs(xlsxPath))
	f.Close()

	csvDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(csvDir, "people.csv"),
		[]byte("id,name,score\n7,Alice,3.5\n"), 0o644))

	xds, err := OpenExcel(xlsxPath)
	require.NoError(t, err)
	defer xds.Close()
	ads, err := OpenDelimitedDir(csvDir, ascii.Options{Separator: ",", Extension: ".csv"})
	require.NoError(t, err)
	defer ads.Close()

	xtbl := xds.Table("people")
	atbl := ads.Table("people")
	require.NotNil(t, xtbl)
	require.NotNil(t, atbl)

	assert.Equal(t, xtbl.NumRecords(), atbl.NumRecords())
	assert.Equal(t, xtbl.Header().FieldNames(), atbl.Header().FieldNames())

	xrow := xtbl.NextRow()
	arow := atbl.NextRow()
	require.NotNil(t, xrow)
	require.NotNil(t, arow)

	for _, field := range []string{"id", "name", "score"} {
		ft := term.New(field)
		assert.Equal(t, xrow.FieldStringValue(ft), arow.FieldStringValue(ft), field)
	}
	assert.Equal(t, xrow.FieldIntValue(term.New("id")), arow.FieldIntValue(term.New("id")))
	assert.Equal(t, xrow.FieldFloatValue(term.New("score")), arow.FieldFloatValue(term.New("score")))
}
