package ini

import (
	"strings"
	"unicode"
)

// =========================
// Ordered Storage
// =========================

// orderedMap keeps keys in insertion order. Overwriting a key keeps its
// original position.
type orderedMap struct {
	keys  []string
	items map[string]Node
}

func newOrderedMap() orderedMap {
	return orderedMap{items: make(map[string]Node)}
}

func (m *orderedMap) set(key string, n Node) {
	if _, ok := m.items[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.items[key] = n
}

func (m *orderedMap) get(key string) (Node, bool) {
	n, ok := m.items[key]
	return n, ok
}

func (m *orderedMap) del(key string) {
	if _, ok := m.items[key]; !ok {
		return
	}
	delete(m.items, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Pair is one key/value item used to build sections and documents from
// loosely typed data.
type Pair struct {
	Key   any
	Value any
}

// =========================
// Section
// =========================

// Section is an ordered key -> entry store. Name is empty for the implicit
// top-level section.
type Section struct {
	Name string
	orderedMap
}

// NewSection builds a section from pairs, validating every key and value.
func NewSection(name string, pairs ...Pair) (*Section, error) {
	if name != "" {
		if err := checkSectionName(name); err != nil {
			return nil, err
		}
	}
	s := &Section{Name: name, orderedMap: newOrderedMap()}
	for _, p := range pairs {
		key, ok := p.Key.(string)
		if !ok {
			return nil, invalidKey(p.Key, "expected string keys")
		}
		if err := s.Set(key, p.Value); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (*Section) Kind() ValueKind { return iniValueKinds.ValueSection }

func (*Section) Value() any { return nil }

// Set stores v under key, converting native Go scalars and slices.
func (s *Section) Set(key string, v any) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if s.items == nil {
		s.orderedMap = newOrderedMap()
	}
	n, err := toEntry(v)
	if err != nil {
		return err
	}
	s.set(key, n)
	return nil
}

func (s *Section) Get(key string) (Node, bool) { return s.get(key) }

func (s *Section) Delete(key string) { s.del(key) }

func (s *Section) Keys() []string { return append([]string(nil), s.keys...) }

func (s *Section) Len() int { return len(s.keys) }

// Equal compares names, key order and values.
func (s *Section) Equal(o *Section) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.Name != o.Name || len(s.keys) != len(o.keys) {
		return false
	}
	for i, k := range s.keys {
		if o.keys[i] != k {
			return false
		}
		if !nodeEqual(s.items[k], o.items[k]) {
			return false
		}
	}
	return true
}

// =========================
// Document
// =========================

// Document is the top-level mapping: entries and named sections in
// insertion order.
type Document struct {
	orderedMap
}

func NewDocument() *Document {
	return &Document{orderedMap: newOrderedMap()}
}

// DocumentFrom builds a document from pairs. Values that are *Section are
// stored as sections named after their key; everything else must be an entry.
func DocumentFrom(pairs ...Pair) (*Document, error) {
	d := NewDocument()
	for _, p := range pairs {
		key, ok := p.Key.(string)
		if !ok {
			return nil, invalidKey(p.Key, "expected string keys")
		}
		if err := d.Set(key, p.Value); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Set stores an entry or a section under key. A section's Name is set to key.
func (d *Document) Set(key string, v any) error {
	if d.items == nil {
		d.orderedMap = newOrderedMap()
	}
	if sec, ok := v.(*Section); ok {
		if sec == nil {
			return invalidValue(v, "expected a section")
		}
		if err := checkSectionName(key); err != nil {
			return err
		}
		for _, k := range sec.keys {
			if _, err := toEntry(sec.items[k]); err != nil {
				return err
			}
		}
		sec.Name = key
		d.set(key, sec)
		return nil
	}
	if err := checkKey(key); err != nil {
		return err
	}
	n, err := toEntry(v)
	if err != nil {
		return err
	}
	d.set(key, n)
	return nil
}

func (d *Document) Get(key string) (Node, bool) { return d.get(key) }

func (d *Document) Delete(key string) { d.del(key) }

func (d *Document) Keys() []string { return append([]string(nil), d.keys...) }

func (d *Document) Len() int { return len(d.keys) }

// Section returns the named section, if key holds one.
func (d *Document) Section(name string) (*Section, bool) {
	n, ok := d.get(name)
	if !ok {
		return nil, false
	}
	sec, ok := n.(*Section)
	return sec, ok
}

// EntryKeys lists the keys holding plain entries, in order.
func (d *Document) EntryKeys() []string {
	var out []string
	for _, k := range d.keys {
		if _, ok := d.items[k].(*Section); !ok {
			out = append(out, k)
		}
	}
	return out
}

// Sections lists the sections in order.
func (d *Document) Sections() []*Section {
	var out []*Section
	for _, k := range d.keys {
		if sec, ok := d.items[k].(*Section); ok {
			out = append(out, sec)
		}
	}
	return out
}

// Equal compares the relative order of entries, the relative order of
// sections, and every value. This is the equality preserved by Dumps/Loads.
func (d *Document) Equal(o *Document) bool {
	if d == nil || o == nil {
		return d == o
	}
	if len(d.keys) != len(o.keys) {
		return false
	}
	a, b := d.EntryKeys(), o.EntryKeys()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] || !nodeEqual(d.items[a[i]], o.items[b[i]]) {
			return false
		}
	}
	sa, sb := d.Sections(), o.Sections()
	if len(sa) != len(sb) {
		return false
	}
	for i := range sa {
		if !sa[i].Equal(sb[i]) {
			return false
		}
	}
	return true
}

func nodeEqual(a, b Node) bool {
	switch x := a.(type) {
	case *Value:
		y, ok := b.(*Value)
		return ok && x.Equal(y)
	case *List:
		y, ok := b.(*List)
		return ok && x.Equal(y)
	case *Section:
		y, ok := b.(*Section)
		return ok && x.Equal(y)
	}
	return false
}

// =========================
// Validation
// =========================

func checkKey(key string) error {
	if key == "" {
		return invalidKey(`""`, "expected non-empty keys")
	}
	if strings.IndexFunc(key, unicode.IsSpace) >= 0 {
		return invalidKey(key, "keys cannot contain whitespace")
	}
	if strings.HasPrefix(key, "[") {
		return invalidKey(key, "keys cannot start with '['")
	}
	return nil
}

func checkSectionName(name string) error {
	if strings.TrimSpace(name) == "" {
		return invalidKey(`""`, "expected non-blank section names")
	}
	if strings.ContainsAny(name, "\r\n") {
		return invalidKey(name, "section names cannot contain line breaks")
	}
	return nil
}
