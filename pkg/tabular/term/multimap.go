package term

// Multimap associates each key with an ordered list of values. Keys
// keep the order in which they were first inserted and values keep
// append order. Lookups on absent keys return empty results rather
// than errors.
type Multimap[K comparable, V comparable] struct {
	entries map[K][]V
	keys    []K
}

// NewMultimap returns an empty multimap.
func NewMultimap[K comparable, V comparable]() *Multimap[K, V] {
	return &Multimap[K, V]{entries: make(map[K][]V)}
}

// Put appends value to the list associated with key.
func (m *Multimap[K, V]) Put(key K, value V) {
	if _, ok := m.entries[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.entries[key] = append(m.entries[key], value)
}

// Values returns a copy of the values associated with key, in
// insertion order. An absent key yields an empty result.
func (m *Multimap[K, V]) Values(key K) []V {
	vs := m.entries[key]
	if len(vs) == 0 {
		return nil
	}
	out := make([]V, len(vs))
	copy(out, vs)
	return out
}

// Keys returns the keys in first-insertion order.
func (m *Multimap[K, V]) Keys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)
	return out
}

// Contains reports whether key has at least one value.
func (m *Multimap[K, V]) Contains(key K) bool {
	_, ok := m.entries[key]
	return ok
}

// Remove deletes the first occurrence of value under key and reports
// whether the multimap changed. A key whose last value is removed
// disappears entirely.
func (m *Multimap[K, V]) Remove(key K, value V) bool {
	vs, ok := m.entries[key]
	if !ok {
		return false
	}
	for i, v := range vs {
		if v == value {
			vs = append(vs[:i], vs[i+1:]...)
			if len(vs) == 0 {
				m.deleteKey(key)
			} else {
				m.entries[key] = vs
			}
			return true
		}
	}
	return false
}

// RemoveAll deletes every value under key and returns the removed
// values, or nil if the key was absent.
func (m *Multimap[K, V]) RemoveAll(key K) []V {
	vs, ok := m.entries[key]
	if !ok {
		return nil
	}
	m.deleteKey(key)
	return vs
}

// NumKeys returns the number of distinct keys.
func (m *Multimap[K, V]) NumKeys() int {
	return len(m.keys)
}

// Size returns the total number of stored values across all keys.
func (m *Multimap[K, V]) Size() int {
	n := 0
	for _, vs := range m.entries {
		n += len(vs)
	}
	return n
}

// IsEmpty reports whether the multimap holds no values.
func (m *Multimap[K, V]) IsEmpty() bool {
	return len(m.keys) == 0
}

func (m *Multimap[K, V]) deleteKey(key K) {
	delete(m.entries, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			return
		}
	}
}
