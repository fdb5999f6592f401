// Package main provides the CLI entry point for cmrc-tabular.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/beaufort/cmrc-tabular/pkg/tabular"
	"github.com/beaufort/cmrc-tabular/pkg/tabular/ascii"
	"github.com/beaufort/cmrc-tabular/pkg/tabular/table"
	"github.com/beaufort/cmrc-tabular/pkg/tabular/term"
)

var (
	separator  string
	extension  string
	trimCells  bool
	maxRows    int
	asJSON     bool
	fieldNames string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tabular",
		Short: "Inspect tabular datasets stored as Excel workbooks or delimited text directories",
		Long: `tabular reads datasets stored as Excel workbooks or as directories of
delimiter-separated text files and prints their tables, fields and records.

A source that is a directory is read with the delimited-text adapter;
anything else is read as an Excel workbook.`,
	}

	rootCmd.PersistentFlags().StringVar(&separator, "sep", ascii.DefaultSeparator, "Field separator for delimited text files")
	rootCmd.PersistentFlags().StringVar(&extension, "ext", "", "File extension filter for delimited directories (default: accept all files)")
	rootCmd.PersistentFlags().BoolVar(&trimCells, "trim", false, "Trim whitespace around delimited text cells")

	tablesCmd := &cobra.Command{
		Use:   "tables [source]",
		Short: "List the tables of a dataset",
		Args:  cobra.ExactArgs(1),
		RunE:  runTables,
	}

	fieldsCmd := &cobra.Command{
		Use:   "fields [source] [table]",
		Short: "List the header fields of a table",
		Args:  cobra.ExactArgs(2),
		RunE:  runFields,
	}

	dumpCmd := &cobra.Command{
		Use:   "dump [source] [table]",
		Short: "Print the records of a table",
		Args:  cobra.ExactArgs(2),
		RunE:  runDump,
	}
	dumpCmd.Flags().IntVar(&maxRows, "max-rows", 0, "Maximum number of records to print (0: all)")
	dumpCmd.Flags().BoolVar(&asJSON, "json", false, "Print one JSON object per record")
	dumpCmd.Flags().StringVar(&fieldNames, "fields", "", "Comma-separated fields to print, as name or name@language (default: all)")

	rootCmd.AddCommand(tablesCmd, fieldsCmd, dumpCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openDataset opens the source with the adapter matching what is on
// disk: directories are delimited-text datasets, files are workbooks.
func openDataset(path string) (table.Dataset, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		opts := ascii.Options{Separator: separator, Extension: extension, TrimSpace: trimCells}
		return tabular.OpenDelimitedDir(path, opts)
	}
	return tabular.OpenExcel(path)
}

// openTable resolves one named table of the source.
func openTable(source, name string) (table.Dataset, table.Table, error) {
	ds, err := openDataset(source)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "opening dataset %s", source)
	}
	tbl := ds.Table(name)
	if tbl == nil {
		ds.Close()
		return nil, nil, errors.Errorf("no table %q in %s", name, source)
	}
	return ds, tbl, nil
}

func runTables(cmd *cobra.Command, args []string) error {
	ds, err := openDataset(args[0])
	if err != nil {
		return errors.Wrapf(err, "opening dataset %s", args[0])
	}
	defer ds.Close()

	for _, name := range ds.TableNames() {
		fmt.Println(name)
	}
	return nil
}

func runFields(cmd *cobra.Command, args []string) error {
	ds, tbl, err := openTable(args[0], args[1])
	if err != nil {
		return err
	}
	defer ds.Close()
	defer tbl.Close()

	hdr := tbl.Header()
	for _, f := range hdr.Fields() {
		if n := occurrences(hdr, f); n > 1 {
			fmt.Printf("%s (x%d)\n", f, n)
		} else {
			fmt.Println(f)
		}
	}
	fmt.Printf("%d fields, %d records\n", hdr.NumFields(), tbl.NumRecords())
	return nil
}

// selectFields resolves a comma-separated field list against the
// header. Each entry matches first as a verbatim label, then in its
// qualified name@language form, then as a bare name picking the first
// language variant.
func selectFields(hdr table.Header, list string) ([]term.Term, error) {
	var fields []term.Term
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f, ok := resolveField(hdr, part)
		if !ok {
			return nil, errors.Errorf("no field %q", part)
		}
		fields = append(fields, f)
	}
	if len(fields) == 0 {
		return nil, errors.New("no fields selected")
	}
	return fields, nil
}

func resolveField(hdr table.Header, name string) (term.Term, bool) {
	if f := term.New(name); hdr.ContainsField(f) {
		return f, true
	}
	if f := term.Parse(name); hdr.ContainsField(f) {
		return f, true
	}
	return hdr.Field(name)
}

// occurrences counts how many header columns carry the exact field.
func occurrences(hdr table.Header, f term.Term) int {
	n := 0
	for _, lang := range hdr.NameLanguages(f.Name) {
		if lang == f.Language {
			n++
		}
	}
	return n
}

func runDump(cmd *cobra.Command, args []string) error {
	ds, tbl, err := openTable(args[0], args[1])
	if err != nil {
		return err
	}
	defer ds.Close()
	defer tbl.Close()

	fields := tbl.Header().Fields()
	if fieldNames != "" {
		fields, err = selectFields(tbl.Header(), fieldNames)
		if err != nil {
			return errors.Wrapf(err, "table %s", tbl.Name())
		}
	}
	if !asJSON {
		names := make([]string, 0, len(fields))
		for _, f := range fields {
			names = append(names, f.String())
		}
		fmt.Println(strings.Join(names, "\t"))
	}

	enc := json.NewEncoder(os.Stdout)
	for n := 0; maxRows == 0 || n < maxRows; n++ {
		row := tbl.NextRow()
		if row == nil {
			break
		}
		if asJSON {
			if err := enc.Encode(recordObject(fields, row)); err != nil {
				return errors.Wrap(err, "encoding record")
			}
			continue
		}
		fmt.Println(strings.Join(recordValues(fields, row), "\t"))
	}
	return nil
}

// recordValues renders one printable value per field, blank when the
// record has no usable value for it.
func recordValues(fields []term.Term, row table.Row) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if v := row.Cell(f).StringValue(); v != nil {
			out = append(out, *v)
		} else {
			out = append(out, "")
		}
	}
	return out
}

// recordObject maps each field's qualified name to its string value,
// null for fields with no usable value.
func recordObject(fields []term.Term, row table.Row) map[string]*string {
	obj := make(map[string]*string, len(fields))
	for _, f := range fields {
		obj[f.String()] = row.Cell(f).StringValue()
	}
	return obj
}
