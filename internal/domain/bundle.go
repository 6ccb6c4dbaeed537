package domain

// PropertyMap is an ordered string-to-string map loaded from one resource file.
// Keys are unique; Keys returns them in load order.
type PropertyMap struct {
	keys   []string
	values map[string]string
}

// NewPropertyMap creates an empty PropertyMap.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{values: make(map[string]string)}
}

// Set stores value under key. A key seen before keeps its original position.
func (m *PropertyMap) Set(key, value string) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key and whether the key is present.
func (m *PropertyMap) Get(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m *PropertyMap) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

func (m *PropertyMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Pair is one key/value entry of a PropertyMap.
type Pair struct {
	Key   string
	Value string
}

// Pairs returns all entries in insertion order.
func (m *PropertyMap) Pairs() []Pair {
	if m == nil {
		return nil
	}
	out := make([]Pair, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, Pair{Key: k, Value: m.values[k]})
	}
	return out
}

// BundleEntry pairs a resource file path with its loaded properties.
type BundleEntry struct {
	Path       string
	Properties *PropertyMap
}

// BundleSet holds the reference entry followed by the comparison entries,
// in the order they were loaded.
type BundleSet struct {
	reference   BundleEntry
	comparisons []BundleEntry
}

// NewBundleSet creates a set whose reference entry is ref.
func NewBundleSet(ref BundleEntry) *BundleSet {
	return &BundleSet{reference: ref}
}

// Add appends a comparison entry.
func (s *BundleSet) Add(e BundleEntry) {
	s.comparisons = append(s.comparisons, e)
}

func (s *BundleSet) Reference() BundleEntry { return s.reference }

// Comparisons returns the comparison entries; the reference is never included.
func (s *BundleSet) Comparisons() []BundleEntry {
	out := make([]BundleEntry, len(s.comparisons))
	copy(out, s.comparisons)
	return out
}
