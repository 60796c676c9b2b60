package picounits

import "fmt"

// Base is one of the seven SI base quantities, plus Dimensionless for
// pure numbers and fully cancelled units.
type Base int

const (
	BaseDimensionless Base = iota
	BaseTime
	BaseLength
	BaseMass
	BaseCurrent
	BaseThermal
	BaseAmount
	BaseLuminosity

	numBases
)

// baseSymbols holds the standard SI symbol for each base.
var baseSymbols = [numBases]string{
	BaseDimensionless: "∅",
	BaseTime:          "s",
	BaseLength:        "m",
	BaseMass:          "kg",
	BaseCurrent:       "A",
	BaseThermal:       "K",
	BaseAmount:        "mol",
	BaseLuminosity:    "cd",
}

// baseOrder fixes the display position of each base in a composed unit
// name. Mass first, then length, time, and so on; dimensionless last.
var baseOrder = [numBases]int{
	BaseMass:          0,
	BaseLength:        1,
	BaseTime:          2,
	BaseCurrent:       3,
	BaseThermal:       4,
	BaseAmount:        5,
	BaseLuminosity:    6,
	BaseDimensionless: 7,
}

var baseNames = [numBases]string{
	BaseDimensionless: "DIMENSIONLESS",
	BaseTime:          "TIME",
	BaseLength:        "LENGTH",
	BaseMass:          "MASS",
	BaseCurrent:       "CURRENT",
	BaseThermal:       "THERMAL",
	BaseAmount:        "AMOUNT",
	BaseLuminosity:    "LUMINOSITY",
}

// Valid reports whether b is one of the defined base quantities.
func (b Base) Valid() bool {
	return b >= 0 && b < numBases
}

// Symbol returns the SI symbol for the base ("m", "kg", ...).
func (b Base) Symbol() string {
	if !b.Valid() {
		return "?"
	}
	return baseSymbols[b]
}

// Order returns the base's position in canonical unit notation.
func (b Base) Order() int {
	if !b.Valid() {
		return int(numBases)
	}
	return baseOrder[b]
}

func (b Base) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Base(%d)", int(b))
	}
	return baseNames[b]
}

// BaseFromSymbol resolves a base quantity from its SI symbol. The second
// return is false when the symbol is unknown.
func BaseFromSymbol(symbol string) (Base, bool) {
	for b := Base(0); b < numBases; b++ {
		if baseSymbols[b] == symbol {
			return b, true
		}
	}
	return BaseDimensionless, false
}

// BaseFromName resolves a base quantity from its upper-case name, such
// as "TIME" or "MASS". TEMPERATURE is accepted as an alias for THERMAL.
func BaseFromName(name string) (Base, bool) {
	if name == "TEMPERATURE" {
		return BaseThermal, true
	}
	for b := Base(0); b < numBases; b++ {
		if baseNames[b] == name {
			return b, true
		}
	}
	return BaseDimensionless, false
}

// Bases returns every defined base quantity in declaration order.
func Bases() []Base {
	out := make([]Base, numBases)
	for b := Base(0); b < numBases; b++ {
		out[b] = b
	}
	return out
}

// Superscript renders an integer with unicode superscript digits, the
// notation used for exponents in unit names.
func Superscript(n int) string {
	return superscript(n)
}
