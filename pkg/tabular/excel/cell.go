package excel

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/beaufort/cmrc-tabular/pkg/tabular/table"
)

// CellKind discriminates the stored type of a workbook cell.
type CellKind int

const (
	// KindBlank marks a cell with no stored value.
	KindBlank CellKind = iota
	// KindString marks a text cell.
	KindString
	// KindNumeric marks a numeric cell, dates included.
	KindNumeric
	// KindBool marks a boolean cell.
	KindBool
	// KindOther marks formula and error cells, which expose no usable
	// value.
	KindOther
)

// String returns the kind name.
func (k CellKind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindString:
		return "string"
	case KindNumeric:
		return "numeric"
	case KindBool:
		return "bool"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

var _ table.Cell = Cell{}

// Cell is a workbook cell with its kind and formatted value resolved
// once at construction. Boolean cells normalize their value to "true"
// or "false".
type Cell struct {
	kind CellKind
	raw  string
}

// newCell reads and classifies the cell at ref. Read failures degrade
// to a blank cell so row access stays total.
func newCell(f *excelize.File, sheet, ref string) Cell {
	raw, err := f.GetCellValue(sheet, ref)
	if err != nil {
		return Cell{kind: KindBlank}
	}
	ct, err := f.GetCellType(sheet, ref)
	if err != nil {
		return Cell{kind: KindBlank}
	}
	c := Cell{kind: classify(ct, raw), raw: raw}
	if c.kind == KindBool {
		if strings.EqualFold(raw, "true") || raw == "1" {
			c.raw = "true"
		} else {
			c.raw = "false"
		}
	}
	return c
}

// classify maps a stored cell type to a kind. Plain numeric cells
// carry no type attribute in the sheet XML and come back unset, so an
// unset type falls back to inferring the kind from the formatted
// value.
func classify(ct excelize.CellType, raw string) CellKind {
	switch ct {
	case excelize.CellTypeBool:
		return KindBool
	case excelize.CellTypeInlineString, excelize.CellTypeSharedString:
		return KindString
	case excelize.CellTypeNumber, excelize.CellTypeDate:
		return KindNumeric
	case excelize.CellTypeError, excelize.CellTypeFormula:
		return KindOther
	default:
		if raw == "" {
			return KindBlank
		}
		if _, err := strconv.ParseFloat(raw, 64); err == nil {
			return KindNumeric
		}
		return KindString
	}
}

// Kind returns the cell's kind.
func (c Cell) Kind() CellKind {
	return c.kind
}

// IsEmpty reports whether the cell is blank or its value is the empty
// string.
func (c Cell) IsEmpty() bool {
	return c.kind == KindBlank || c.raw == ""
}

// StringValue returns the cell text: the formatted value for string
// and numeric cells, "true" or "false" for boolean cells, "" for
// blank cells and nil for formula and error cells.
func (c Cell) StringValue() *string {
	switch c.kind {
	case KindString, KindNumeric, KindBool:
		v := c.raw
		return &v
	case KindBlank:
		v := ""
		return &v
	default:
		return nil
	}
}

// IntValue returns the cell's integer value: numeric values are
// truncated toward zero, text is trimmed and parsed base 10, booleans
// map to 1 and 0. Nil when no integer can be produced.
func (c Cell) IntValue() *int {
	switch c.kind {
	case KindNumeric:
		f, err := strconv.ParseFloat(c.raw, 64)
		if err != nil {
			return nil
		}
		v := int(f)
		return &v
	case KindString:
		v, err := strconv.Atoi(strings.TrimSpace(c.raw))
		if err != nil {
			return nil
		}
		return &v
	case KindBool:
		v := 0
		if c.raw == "true" {
			v = 1
		}
		return &v
	default:
		return nil
	}
}

// FloatValue returns the cell's floating-point value: text is trimmed
// before parsing, booleans map to 1 and 0. Nil when no float can be
// produced.
func (c Cell) FloatValue() *float64 {
	switch c.kind {
	case KindNumeric:
		v, err := strconv.ParseFloat(c.raw, 64)
		if err != nil {
			return nil
		}
		return &v
	case KindString:
		v, err := strconv.ParseFloat(strings.TrimSpace(c.raw), 64)
		if err != nil {
			return nil
		}
		return &v
	case KindBool:
		v := 0.0
		if c.raw == "true" {
			v = 1
		}
		return &v
	default:
		return nil
	}
}

// BoolValue returns the cell's boolean value: booleans map directly,
// text is matched against the shared vocabulary and numerics map only
// from exactly 0 and 1. Nil when no boolean can be produced.
func (c Cell) BoolValue() *bool {
	switch c.kind {
	case KindBool:
		v := c.raw == "true"
		return &v
	case KindString:
		return table.ParseBool(c.raw)
	case KindNumeric:
		f, err := strconv.ParseFloat(c.raw, 64)
		if err != nil {
			return nil
		}
		switch f {
		case 0:
			v := false
			return &v
		case 1:
			v := true
			return &v
		default:
			return nil
		}
	default:
		return nil
	}
}
