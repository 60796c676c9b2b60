// Package config loads project display preferences from a .picounits
// file. Preferences change only how units are rendered at the tool
// surface; the core library always computes in fixed SI terms.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wgbowley/PicoUnits/picounits"
)

// FileName is the project preference file searched for upward from the
// working directory.
const FileName = ".picounits"

// Preferences holds per-project display settings: the symbol printed
// for each base quantity and the order bases appear in composed unit
// names. Keys are upper-case base names ("TIME", "MASS", ...).
type Preferences struct {
	Symbols map[string]string `yaml:"symbols"`
	Order   map[string]int    `yaml:"order"`
}

// Default returns the standard SI preferences.
func Default() *Preferences {
	p := &Preferences{
		Symbols: map[string]string{},
		Order:   map[string]int{},
	}
	for _, b := range picounits.Bases() {
		p.Symbols[b.String()] = b.Symbol()
		p.Order[b.String()] = b.Order()
	}
	return p
}

// Load reads preferences from a file. Settings missing from the file
// fall back to the SI defaults; unknown base names are rejected.
func Load(path string) (*Preferences, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	var file Preferences
	if err := yaml.Unmarshal(src, &file); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	p := Default()
	for name, symbol := range file.Symbols {
		name = strings.ToUpper(strings.TrimSpace(name))
		base, ok := picounits.BaseFromName(name)
		if !ok {
			return nil, fmt.Errorf("config: %s: unknown base %q in symbols", path, name)
		}
		p.Symbols[base.String()] = strings.TrimSpace(symbol)
	}
	for name, position := range file.Order {
		name = strings.ToUpper(strings.TrimSpace(name))
		base, ok := picounits.BaseFromName(name)
		if !ok {
			return nil, fmt.Errorf("config: %s: unknown base %q in order", path, name)
		}
		p.Order[base.String()] = position
	}
	return p, nil
}

// Find searches upward from dir for a .picounits file.
func Find(dir string) (string, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Discover finds and loads the nearest project preferences, falling
// back to SI defaults when no file exists.
func Discover(dir string) (*Preferences, error) {
	path, ok := Find(dir)
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Symbol returns the configured symbol for a base quantity.
func (p *Preferences) Symbol(base picounits.Base) string {
	if s, ok := p.Symbols[base.String()]; ok && s != "" {
		return s
	}
	return base.Symbol()
}

// position returns the configured display position for a base.
func (p *Preferences) position(base picounits.Base) int {
	if n, ok := p.Order[base.String()]; ok {
		return n
	}
	return base.Order()
}

// UnitName renders a unit with the configured symbols and ordering.
// The algebraic identity of the unit is untouched; only the spelling
// changes.
func (p *Preferences) UnitName(u picounits.Unit) string {
	dims := u.Dimensions()
	sort.SliceStable(dims, func(i, j int) bool {
		return p.position(dims[i].Base) < p.position(dims[j].Base)
	})

	parts := make([]string, len(dims))
	for i, d := range dims {
		if d.Exponent == 1 {
			parts[i] = p.Symbol(d.Base)
		} else {
			parts[i] = p.Symbol(d.Base) + picounits.Superscript(d.Exponent)
		}
	}
	return strings.Join(parts, " ")
}

// PacketName renders a packet the way Packet.Name does, substituting
// the configured unit spelling.
func (p *Preferences) PacketName(packet picounits.Packet) string {
	name := packet.Name()
	plain := packet.Unit().Name()
	custom := p.UnitName(packet.Unit())
	if plain == custom {
		return name
	}
	return strings.Replace(name, "("+plain+")", "("+custom+")", 1)
}

// DefaultFile is the annotated starter configuration written by the
// generate command.
const DefaultFile = `# picounits project configuration
# Drop this file in your project root (or any parent folder) and the
# tools will pick it up automatically.

symbols:
  # Analytical style alternatives are commented out. Uncomment and
  # edit to taste.
  # time: t
  # length: l
  # mass: m
  time: s
  length: m
  mass: kg
  current: A
  temperature: K
  amount: mol
  luminosity: cd

order:
  # Lower numbers print first.
  mass: 0
  length: 1
  time: 2
  current: 3
  temperature: 4
  amount: 5
  luminosity: 6
  dimensionless: 7
`

// Generate writes the starter configuration into dir. It refuses to
// overwrite an existing file unless force is set.
func Generate(dir string, force bool) (string, error) {
	target := filepath.Join(dir, FileName)
	if _, err := os.Stat(target); err == nil && !force {
		return target, fmt.Errorf("config: %s already exists", target)
	}
	if err := os.WriteFile(target, []byte(DefaultFile), 0o644); err != nil {
		return target, fmt.Errorf("config: %w", err)
	}
	return target, nil
}
