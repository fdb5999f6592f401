package table

import "strings"

// boolWords is the fixed vocabulary for boolean parsing. It is never
// mutated after initialization.
var boolWords = map[string]bool{
	"true":  true,
	"yes":   true,
	"y":     true,
	"t":     true,
	"1":     true,
	"false": false,
	"no":    false,
	"n":     false,
	"f":     false,
	"0":     false,
}

// ParseBool parses a boolean from its text form. Matching is
// case-insensitive after trimming surrounding whitespace: "true",
// "yes", "y", "t" and "1" parse to true; "false", "no", "n", "f" and
// "0" parse to false. Anything else yields nil.
func ParseBool(s string) *bool {
	v, ok := boolWords[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return nil
	}
	return &v
}
