package table

import "github.com/beaufort/cmrc-tabular/pkg/tabular/term"

// FieldMapHeader associates fields with values of type V and
// implements the Header contract on top of the association. The
// adapters use it with V = int to record the column indices of each
// field; delimited rows reuse it with V = Cell as their cell store.
//
// Mutation happens only while a header is being parsed. Readers
// obtained afterwards treat it as immutable.
type FieldMapHeader[V comparable] struct {
	fields *term.Map[V]
}

var _ Header = (*FieldMapHeader[int])(nil)

// NewFieldMapHeader returns an empty header.
func NewFieldMapHeader[V comparable]() *FieldMapHeader[V] {
	return &FieldMapHeader[V]{fields: term.NewMap[V]()}
}

// Put appends value under the given field.
func (h *FieldMapHeader[V]) Put(field term.Term, value V) {
	h.fields.Put(field, value)
}

// Value returns the first value associated with the exact field.
func (h *FieldMapHeader[V]) Value(field term.Term) (V, bool) {
	return h.fields.Value(field)
}

// NonZeroValue returns the first value under the exact field that is
// not the zero value of V.
func (h *FieldMapHeader[V]) NonZeroValue(field term.Term) (V, bool) {
	return h.fields.NonZeroValue(field)
}

// Values returns every value under the exact field, in insertion
// order.
func (h *FieldMapHeader[V]) Values(field term.Term) []V {
	return h.fields.Values(field)
}

// NameValues returns the values of every field sharing the bare name,
// grouped by language. The result is never nil.
func (h *FieldMapHeader[V]) NameValues(name string) *term.Multimap[string, V] {
	return h.fields.NameValues(name)
}

// Remove deletes one occurrence of value under the exact field and
// reports whether the header changed.
func (h *FieldMapHeader[V]) Remove(field term.Term, value V) bool {
	return h.fields.Remove(field, value)
}

// RemoveAll deletes every value under the exact field and returns the
// removed values.
func (h *FieldMapHeader[V]) RemoveAll(field term.Term) []V {
	return h.fields.RemoveAll(field)
}

// RemoveName deletes every language variant of the bare name and
// returns the removed values grouped by language.
func (h *FieldMapHeader[V]) RemoveName(name string) *term.Multimap[string, V] {
	return h.fields.RemoveName(name)
}

// Fields returns the distinct field terms.
func (h *FieldMapHeader[V]) Fields() []term.Term {
	return h.fields.Terms()
}

// NameFields returns one term per occurrence of the bare name.
func (h *FieldMapHeader[V]) NameFields(name string) []term.Term {
	langs := h.fields.NameLanguages(name)
	if len(langs) == 0 {
		return nil
	}
	fields := make([]term.Term, 0, len(langs))
	for _, lang := range langs {
		fields = append(fields, term.Term{Name: name, Language: lang})
	}
	return fields
}

// Field returns the first field term carrying the bare name.
func (h *FieldMapHeader[V]) Field(name string) (term.Term, bool) {
	langs := h.fields.NameLanguages(name)
	if len(langs) == 0 {
		return term.Term{}, false
	}
	return term.Term{Name: name, Language: langs[0]}, true
}

// NameLanguages returns the language of every occurrence of the bare
// name.
func (h *FieldMapHeader[V]) NameLanguages(name string) []string {
	return h.fields.NameLanguages(name)
}

// Languages returns the distinct languages across all fields.
func (h *FieldMapHeader[V]) Languages() []string {
	return h.fields.Languages()
}

// FieldNames returns the distinct bare field names.
func (h *FieldMapHeader[V]) FieldNames() []string {
	return h.fields.Names()
}

// ContainsField reports whether the exact field term is present.
func (h *FieldMapHeader[V]) ContainsField(field term.Term) bool {
	return h.fields.ContainsTerm(field)
}

// ContainsName reports whether any field carries the bare name.
func (h *FieldMapHeader[V]) ContainsName(name string) bool {
	return h.fields.ContainsName(name)
}

// NumFields returns the number of distinct field terms.
func (h *FieldMapHeader[V]) NumFields() int {
	return h.fields.NumTerms()
}

// Size returns the total number of field occurrences.
func (h *FieldMapHeader[V]) Size() int {
	return h.fields.Size()
}

// IsEmpty reports whether the header has no fields.
func (h *FieldMapHeader[V]) IsEmpty() bool {
	return h.fields.IsEmpty()
}
