package uiv

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/wgbowley/PicoUnits/picounits"
)

// Loader reads .uiv documents from disk. The zero value is usable; an
// injected logger reports what was loaded.
type Loader struct {
	log *zap.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the loader's logger.
func WithLogger(log *zap.Logger) Option {
	return func(l *Loader) { l.log = log }
}

// NewLoader creates a loader. Logging defaults to a no-op logger.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{log: zap.NewNop()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadFile reads and parses one .uiv file.
func (l *Loader) LoadFile(path string) (*Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	doc, err := ParseNamed(filepath.Base(path), string(src))
	if err != nil {
		return nil, err
	}

	entries := 0
	for _, name := range doc.Sections() {
		s, _ := doc.Section(name)
		entries += len(s.Keys())
	}
	l.log.Debug("loaded uiv document",
		zap.String("path", path),
		zap.Int("sections", len(doc.Sections())),
		zap.Int("entries", entries))
	return doc, nil
}

// LoadFile reads and parses one .uiv file with the default loader.
func LoadFile(path string) (*Document, error) {
	return NewLoader().LoadFile(path)
}

// Quantities flattens a document into dotted-path packet entries,
// skipping strings and bools. Useful for feeding whole documents into
// calculations or rendering them as tables.
func Quantities(doc *Document) map[string]picounits.Packet {
	out := map[string]picounits.Packet{}
	for _, name := range doc.Sections() {
		s, _ := doc.Section(name)
		for _, key := range s.Keys() {
			if v, ok := s.Get(key); ok {
				if p, isPacket := v.(picounits.Packet); isPacket {
					out[name+"."+key] = p
				}
			}
		}
	}
	return out
}
