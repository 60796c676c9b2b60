package picounits

import "math"

// Prefix is a decade power-of-ten multiplier (kilo = 10³, milli = 10⁻³).
// Prefixes are consumed once at packet construction, where they rebase
// the raw value to unscaled BASE storage, and again at display time to
// pick the most legible rendering. They are never part of Unit identity.
type Prefix int

const (
	PrefixYocto Prefix = -24
	PrefixZepto Prefix = -21
	PrefixAtto  Prefix = -18
	PrefixFemto Prefix = -15
	PrefixPico  Prefix = -12
	PrefixNano  Prefix = -9
	PrefixMicro Prefix = -6
	PrefixMilli Prefix = -3
	PrefixCenti Prefix = -2
	PrefixDeci  Prefix = -1
	PrefixBase  Prefix = 0
	PrefixDeka  Prefix = 1
	PrefixHecto Prefix = 2
	PrefixKilo  Prefix = 3
	PrefixMega  Prefix = 6
	PrefixGiga  Prefix = 9
	PrefixTera  Prefix = 12
	PrefixPeta  Prefix = 15
	PrefixExa   Prefix = 18
	PrefixZetta Prefix = 21
	PrefixYotta Prefix = 24
)

// prefixes lists every member in ascending decade order. The nearest
// lookup relies on this ordering for its tie-break.
var prefixes = []Prefix{
	PrefixYocto, PrefixZepto, PrefixAtto, PrefixFemto, PrefixPico,
	PrefixNano, PrefixMicro, PrefixMilli, PrefixCenti, PrefixDeci,
	PrefixBase, PrefixDeka, PrefixHecto, PrefixKilo, PrefixMega,
	PrefixGiga, PrefixTera, PrefixPeta, PrefixExa, PrefixZetta,
	PrefixYotta,
}

var prefixSymbols = map[Prefix]string{
	PrefixYocto: "y",
	PrefixZepto: "z",
	PrefixAtto:  "a",
	PrefixFemto: "f",
	PrefixPico:  "p",
	PrefixNano:  "n",
	PrefixMicro: "u",
	PrefixMilli: "m",
	PrefixCenti: "c",
	PrefixDeci:  "d",
	PrefixBase:  "",
	PrefixDeka:  "da",
	PrefixHecto: "h",
	PrefixKilo:  "k",
	PrefixMega:  "M",
	PrefixGiga:  "G",
	PrefixTera:  "T",
	PrefixPeta:  "P",
	PrefixExa:   "E",
	PrefixZetta: "Z",
	PrefixYotta: "Y",
}

var prefixNames = map[Prefix]string{
	PrefixYocto: "YOCTO",
	PrefixZepto: "ZEPTO",
	PrefixAtto:  "ATTO",
	PrefixFemto: "FEMTO",
	PrefixPico:  "PICO",
	PrefixNano:  "NANO",
	PrefixMicro: "MICRO",
	PrefixMilli: "MILLI",
	PrefixCenti: "CENTI",
	PrefixDeci:  "DECI",
	PrefixBase:  "BASE",
	PrefixDeka:  "DEKA",
	PrefixHecto: "HECTO",
	PrefixKilo:  "KILO",
	PrefixMega:  "MEGA",
	PrefixGiga:  "GIGA",
	PrefixTera:  "TERA",
	PrefixPeta:  "PETA",
	PrefixExa:   "EXA",
	PrefixZetta: "ZETTA",
	PrefixYotta: "YOTTA",
}

// Valid reports whether p is an enumerated prefix.
func (p Prefix) Valid() bool {
	_, ok := prefixSymbols[p]
	return ok
}

// Power returns the decade exponent of the prefix.
func (p Prefix) Power() int {
	return int(p)
}

// Factor returns the multiplier 10^p.
func (p Prefix) Factor() float64 {
	return math.Pow(10, float64(p))
}

// Symbol returns the display symbol ("k", "m", "" for BASE, ...).
func (p Prefix) Symbol() string {
	return prefixSymbols[p]
}

func (p Prefix) String() string {
	if name, ok := prefixNames[p]; ok {
		return name
	}
	return "BASE"
}

// PrefixFromPower returns the prefix closest to the given power of ten.
// Ties break toward the smaller decade: the scan walks the members in
// ascending order and only a strictly better match replaces the current
// candidate.
func PrefixFromPower(power int) Prefix {
	closest := prefixes[0]
	best := abs(int(closest) - power)
	for _, p := range prefixes[1:] {
		if d := abs(int(p) - power); d < best {
			closest = p
			best = d
		}
	}
	return closest
}

// PrefixFromSymbol resolves a prefix from its display symbol. The empty
// symbol maps to BASE. The second return is false when the symbol is
// unknown.
func PrefixFromSymbol(symbol string) (Prefix, bool) {
	for _, p := range prefixes {
		if prefixSymbols[p] == symbol {
			return p, true
		}
	}
	return PrefixBase, false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// normalizePrefix rescales a raw BASE value to the most legible prefix
// for display. The decade is floor(log10(|value|)), corrected down by
// one when the resulting mantissa would still be below 1. Zero always
// normalizes to BASE.
func normalizePrefix(value float64) (float64, Prefix) {
	if value == 0 {
		return 0, PrefixBase
	}

	magnitude := math.Abs(value)
	power := int(math.Floor(math.Log10(magnitude)))
	if magnitude/math.Pow(10, float64(power)) < 1.0 {
		power--
	}

	closest := PrefixFromPower(power)
	return value / closest.Factor(), closest
}
