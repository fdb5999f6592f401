package ascii

import (
	"strconv"
	"strings"

	"github.com/beaufort/cmrc-tabular/pkg/tabular/table"
)

var _ table.Cell = Cell{}

// Cell is a single delimited-text token. Typed values are parsed on
// demand from the token.
type Cell struct {
	value string
}

// NewCell wraps a token as a cell.
func NewCell(value string) Cell {
	return Cell{value: value}
}

// IsEmpty reports whether the token is the empty string.
func (c Cell) IsEmpty() bool {
	return c.value == ""
}

// StringValue returns the token. A blank token yields the empty
// string, never nil: the cell exists, it is just blank.
func (c Cell) StringValue() *string {
	v := c.value
	return &v
}

// IntValue returns the token parsed as a base-10 integer after
// trimming, or nil when it does not parse.
func (c Cell) IntValue() *int {
	v, err := strconv.Atoi(strings.TrimSpace(c.value))
	if err != nil {
		return nil
	}
	return &v
}

// FloatValue returns the token parsed as a floating-point literal
// after trimming, or nil when it does not parse.
func (c Cell) FloatValue() *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(c.value), 64)
	if err != nil {
		return nil
	}
	return &v
}

// BoolValue returns the token matched against the shared boolean
// vocabulary, or nil when it matches nothing.
func (c Cell) BoolValue() *bool {
	return table.ParseBool(c.value)
}
