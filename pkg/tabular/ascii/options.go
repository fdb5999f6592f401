package ascii

import "strings"

// DefaultSeparator is the field separator used when none is
// configured.
const DefaultSeparator = ","

// Options configures how a directory of delimited files is read.
type Options struct {
	// Separator is the literal string that splits a line into fields.
	// It is not a pattern: any characters, and any number of them,
	// are matched verbatim. Empty means DefaultSeparator.
	Separator string
	// Extension filters directory entries and is appended to table
	// names when resolving files. It may be given with or without the
	// leading dot. Empty accepts every file.
	Extension string
	// TrimSpace trims surrounding whitespace from data cells. Header
	// labels are always trimmed.
	TrimSpace bool
}

// DefaultOptions returns the default reading options: comma-separated
// fields, no extension filter, no trimming.
func DefaultOptions() Options {
	return Options{Separator: DefaultSeparator}
}

// normalized returns the options with defaults applied: an empty
// separator becomes DefaultSeparator and a non-blank extension gains
// its leading dot.
func (o Options) normalized() Options {
	if o.Separator == "" {
		o.Separator = DefaultSeparator
	}
	o.Extension = strings.TrimSpace(o.Extension)
	if o.Extension != "" && !strings.HasPrefix(o.Extension, ".") {
		o.Extension = "." + o.Extension
	}
	return o
}
