package term

// Map associates terms with ordered lists of values of type V. Values
// are retrievable by exact term or by bare name across every language
// variant of that name. All lookups are total: absent keys yield empty
// results, never errors.
//
// The zero Map is not ready for use; construct with NewMap.
type Map[V comparable] struct {
	// entries groups the values of each bare name by language.
	entries map[string]*Multimap[string, V]
	// names records the first-insertion order of bare names.
	names []string
	// langSeq records, per bare name, the language of every value in
	// put order. Its length always equals the number of values stored
	// under the name, duplicates included.
	langSeq map[string][]string
}

// NewMap returns an empty term map.
func NewMap[V comparable]() *Map[V] {
	return &Map[V]{
		entries: make(map[string]*Multimap[string, V]),
		langSeq: make(map[string][]string),
	}
}

// Put appends value under the exact term and indexes it under the
// term's bare name.
func (m *Map[V]) Put(field Term, value V) {
	mm, ok := m.entries[field.Name]
	if !ok {
		mm = NewMultimap[string, V]()
		m.entries[field.Name] = mm
		m.names = append(m.names, field.Name)
	}
	mm.Put(field.Language, value)
	m.langSeq[field.Name] = append(m.langSeq[field.Name], field.Language)
}

// Value returns the first value associated with the exact term.
func (m *Map[V]) Value(field Term) (V, bool) {
	var zero V
	mm, ok := m.entries[field.Name]
	if !ok {
		return zero, false
	}
	vs := mm.entries[field.Language]
	if len(vs) == 0 {
		return zero, false
	}
	return vs[0], true
}

// NonZeroValue returns the first value under the exact term that is
// not the zero value of V. For pointer or interface value types this
// is the first non-nil entry.
func (m *Map[V]) NonZeroValue(field Term) (V, bool) {
	var zero V
	mm, ok := m.entries[field.Name]
	if !ok {
		return zero, false
	}
	for _, v := range mm.entries[field.Language] {
		if v != zero {
			return v, true
		}
	}
	return zero, false
}

// Values returns a copy of the values under the exact term, in
// insertion order.
func (m *Map[V]) Values(field Term) []V {
	mm, ok := m.entries[field.Name]
	if !ok {
		return nil
	}
	return mm.Values(field.Language)
}

// NameValues returns the values of every term sharing the given bare
// name, grouped by language in first-insertion order. The result is a
// copy and is never nil.
func (m *Map[V]) NameValues(name string) *Multimap[string, V] {
	out := NewMultimap[string, V]()
	mm, ok := m.entries[name]
	if !ok {
		return out
	}
	for _, lang := range mm.keys {
		for _, v := range mm.entries[lang] {
			out.Put(lang, v)
		}
	}
	return out
}

// Terms returns the distinct key terms, grouped by bare name in
// name-insertion order; within a name, languages keep their own
// insertion order.
func (m *Map[V]) Terms() []Term {
	var out []Term
	for _, name := range m.names {
		for _, lang := range m.entries[name].keys {
			out = append(out, Term{Name: name, Language: lang})
		}
	}
	return out
}

// Names returns the distinct bare names in first-insertion order.
func (m *Map[V]) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// NameLanguages returns the language of every value stored under the
// given bare name, one entry per value in put order. Duplicates are
// preserved, so the result length equals the number of occurrences of
// the name.
func (m *Map[V]) NameLanguages(name string) []string {
	seq := m.langSeq[name]
	if len(seq) == 0 {
		return nil
	}
	out := make([]string, len(seq))
	copy(out, seq)
	return out
}

// Languages returns the distinct languages across all names, in
// first-seen order.
func (m *Map[V]) Languages() []string {
	var out []string
	seen := make(map[string]bool)
	for _, name := range m.names {
		for _, lang := range m.entries[name].keys {
			if !seen[lang] {
				seen[lang] = true
				out = append(out, lang)
			}
		}
	}
	return out
}

// ContainsTerm reports whether the exact term has at least one value.
func (m *Map[V]) ContainsTerm(field Term) bool {
	mm, ok := m.entries[field.Name]
	return ok && mm.Contains(field.Language)
}

// ContainsName reports whether any term with the given bare name has
// at least one value.
func (m *Map[V]) ContainsName(name string) bool {
	_, ok := m.entries[name]
	return ok
}

// NumTerms returns the number of distinct key terms.
func (m *Map[V]) NumTerms() int {
	n := 0
	for _, name := range m.names {
		n += m.entries[name].NumKeys()
	}
	return n
}

// Size returns the total number of stored values.
func (m *Map[V]) Size() int {
	n := 0
	for _, name := range m.names {
		n += len(m.langSeq[name])
	}
	return n
}

// IsEmpty reports whether the map holds no values.
func (m *Map[V]) IsEmpty() bool {
	return len(m.names) == 0
}

// Remove deletes the first occurrence of value under the exact term
// and reports whether the map changed.
func (m *Map[V]) Remove(field Term, value V) bool {
	mm, ok := m.entries[field.Name]
	if !ok {
		return false
	}
	if !mm.Remove(field.Language, value) {
		return false
	}
	m.dropLangOccurrence(field.Name, field.Language)
	if mm.IsEmpty() {
		m.deleteName(field.Name)
	}
	return true
}

// RemoveAll deletes every value under the exact term and returns the
// removed values, or nil if the term was absent.
func (m *Map[V]) RemoveAll(field Term) []V {
	mm, ok := m.entries[field.Name]
	if !ok {
		return nil
	}
	removed := mm.RemoveAll(field.Language)
	if removed == nil {
		return nil
	}
	m.dropLang(field.Name, field.Language)
	if mm.IsEmpty() {
		m.deleteName(field.Name)
	}
	return removed
}

// RemoveName deletes every language variant of the given bare name.
// The returned multimap groups the removed values by language; it is
// empty, never nil, when nothing matched.
func (m *Map[V]) RemoveName(name string) *Multimap[string, V] {
	mm, ok := m.entries[name]
	if !ok {
		return NewMultimap[string, V]()
	}
	m.deleteName(name)
	return mm
}

// dropLangOccurrence removes one entry for lang from the name's
// language sequence.
func (m *Map[V]) dropLangOccurrence(name, lang string) {
	seq := m.langSeq[name]
	for i, l := range seq {
		if l == lang {
			m.langSeq[name] = append(seq[:i], seq[i+1:]...)
			return
		}
	}
}

// dropLang removes every entry for lang from the name's language
// sequence.
func (m *Map[V]) dropLang(name, lang string) {
	seq := m.langSeq[name]
	kept := seq[:0]
	for _, l := range seq {
		if l != lang {
			kept = append(kept, l)
		}
	}
	m.langSeq[name] = kept
}

func (m *Map[V]) deleteName(name string) {
	delete(m.entries, name)
	delete(m.langSeq, name)
	for i, n := range m.names {
		if n == name {
			m.names = append(m.names[:i], m.names[i+1:]...)
			return
		}
	}
}
