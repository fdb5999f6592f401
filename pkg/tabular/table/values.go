package table

// emptyCell is the stand-in for fields that resolve to no cell.
type emptyCell struct{}

func (emptyCell) StringValue() *string { return nil }
func (emptyCell) IntValue() *int       { return nil }
func (emptyCell) FloatValue() *float64 { return nil }
func (emptyCell) BoolValue() *bool     { return nil }
func (emptyCell) IsEmpty() bool        { return true }

// EmptyCell returns the shared empty cell: every typed accessor
// yields nil and IsEmpty reports true.
func EmptyCell() Cell {
	return emptyCell{}
}

// FirstStringValue returns the first non-nil, non-blank string value
// among the non-empty candidate cells. When every usable value is
// blank, the first blank one is returned instead, so a present cell
// still wins over nothing.
func FirstStringValue(cells []Cell) *string {
	var blank *string
	for _, c := range cells {
		if c == nil || c.IsEmpty() {
			continue
		}
		v := c.StringValue()
		if v == nil {
			continue
		}
		if *v != "" {
			return v
		}
		if blank == nil {
			blank = v
		}
	}
	return blank
}

// FirstIntValue returns the first integer value produced by a
// non-empty candidate cell, or nil when none produces one.
func FirstIntValue(cells []Cell) *int {
	for _, c := range cells {
		if c == nil || c.IsEmpty() {
			continue
		}
		if v := c.IntValue(); v != nil {
			return v
		}
	}
	return nil
}

// FirstFloatValue returns the first floating-point value produced by
// a non-empty candidate cell, or nil when none produces one.
func FirstFloatValue(cells []Cell) *float64 {
	for _, c := range cells {
		if c == nil || c.IsEmpty() {
			continue
		}
		if v := c.FloatValue(); v != nil {
			return v
		}
	}
	return nil
}

// FirstBoolValue returns the first boolean value produced by a
// non-empty candidate cell, or nil when none produces one.
func FirstBoolValue(cells []Cell) *bool {
	for _, c := range cells {
		if c == nil || c.IsEmpty() {
			continue
		}
		if v := c.BoolValue(); v != nil {
			return v
		}
	}
	return nil
}
