// Package term provides composite field identifiers and the ordered
// multi-valued maps used to index tabular fields by name and language.
package term

import "strings"

// Term identifies a field by name and an optional language tag. An
// empty Language means the term carries no language. Terms are plain
// comparable values and can be used as map keys; two terms are equal
// iff both parts are equal, case-sensitively.
type Term struct {
	// Name is the field name.
	Name string
	// Language is the language tag, or "" for a language-less term.
	Language string
}

// New returns a language-less term for the given field name.
func New(name string) Term {
	return Term{Name: name}
}

// NewTagged returns a term for the given field name and language tag.
func NewTagged(name, language string) Term {
	return Term{Name: name, Language: language}
}

// Parse builds a term from its qualified string form. The language tag
// is everything after the last '@'; a string without '@' yields a
// language-less term.
func Parse(s string) Term {
	if i := strings.LastIndex(s, "@"); i >= 0 {
		return Term{Name: s[:i], Language: s[i+1:]}
	}
	return Term{Name: s}
}

// String returns the qualified form of the term: the bare name, or
// "name@language" for a tagged term.
func (t Term) String() string {
	if t.Language == "" {
		return t.Name
	}
	return t.Name + "@" + t.Language
}
