package uiv

import (
	"fmt"
	"strings"

	"github.com/wgbowley/PicoUnits/picounits"
)

// Document is the parsed form of a .uiv file: named sections holding
// key to entry mappings. Entry values are picounits packets for
// numeric data and plain strings or bools for everything else. Section
// and key order is preserved for rendering.
type Document struct {
	sections map[string]*Section
	order    []string
}

// Section is one [name] block of a document.
type Section struct {
	name    string
	entries map[string]any
	order   []string
}

func newDocument() *Document {
	return &Document{sections: map[string]*Section{}}
}

func (d *Document) section(name string) *Section {
	if s, ok := d.sections[name]; ok {
		return s
	}
	s := &Section{name: name, entries: map[string]any{}}
	d.sections[name] = s
	d.order = append(d.order, name)
	return s
}

// Sections returns the section names in document order.
func (d *Document) Sections() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Section returns the named section.
func (d *Document) Section(name string) (*Section, bool) {
	s, ok := d.sections[name]
	return s, ok
}

// Lookup resolves a dotted "section.key" path to an entry value.
func (d *Document) Lookup(path string) (any, bool) {
	section, key, ok := strings.Cut(path, ".")
	if !ok {
		s, found := d.sections[section]
		return s, found
	}
	s, found := d.sections[section]
	if !found {
		return nil, false
	}
	return s.Get(key)
}

// Packet resolves a dotted path to a packet entry, failing when the
// path is missing or the entry is not numeric.
func (d *Document) Packet(path string) (picounits.Packet, error) {
	v, ok := d.Lookup(path)
	if !ok {
		return nil, fmt.Errorf("%w: no entry %q", ErrParse, path)
	}
	p, ok := v.(picounits.Packet)
	if !ok {
		return nil, fmt.Errorf("%w: entry %q is %T, not a quantity", ErrParse, path, v)
	}
	return p, nil
}

// Find collects every entry stored under the given key, across all
// sections, in document order.
func (d *Document) Find(key string) []any {
	var out []any
	for _, name := range d.order {
		if v, ok := d.sections[name].Get(key); ok {
			out = append(out, v)
		}
	}
	return out
}

// Name returns the section's header name.
func (s *Section) Name() string { return s.name }

// Keys returns the section's keys in file order.
func (s *Section) Keys() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Get returns the entry stored under key.
func (s *Section) Get(key string) (any, bool) {
	v, ok := s.entries[key]
	return v, ok
}

// Packet returns the entry under key as a packet, failing when it is
// missing or not numeric.
func (s *Section) Packet(key string) (picounits.Packet, error) {
	v, ok := s.entries[key]
	if !ok {
		return nil, fmt.Errorf("%w: no entry %q in section %q", ErrParse, key, s.name)
	}
	p, ok := v.(picounits.Packet)
	if !ok {
		return nil, fmt.Errorf("%w: entry %q is %T, not a quantity", ErrParse, key, v)
	}
	return p, nil
}

func (s *Section) set(key string, value any) {
	if _, exists := s.entries[key]; !exists {
		s.order = append(s.order, key)
	}
	s.entries[key] = value
}
