package picounits

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxExponent bounds the magnitude of a dimension's exponent.
const MaxExponent = 10

// Dimension is a single base quantity raised to a signed integer power.
// Values are canonicalized at construction and never mutated afterwards:
// exponent 0 collapses to dimensionless, and dimensionless always carries
// exponent 1.
type Dimension struct {
	Base     Base
	Exponent int
}

// NewDimension builds a canonical dimension from a base and exponent.
func NewDimension(base Base, exponent int) (Dimension, error) {
	if !base.Valid() {
		return Dimension{}, fmt.Errorf("%w: unknown base %d", ErrValidation, int(base))
	}
	if exponent > MaxExponent || exponent < -MaxExponent {
		return Dimension{}, fmt.Errorf(
			"%w: exponent %d exceeds limit ±%d", ErrValidation, exponent, MaxExponent)
	}

	// x^0 = 1, so a zero exponent is dimensionless regardless of base.
	if exponent == 0 {
		return Dimension{Base: BaseDimensionless, Exponent: 1}, nil
	}

	// Dimensionless has no meaningful exponent.
	if base == BaseDimensionless {
		return Dimension{Base: BaseDimensionless, Exponent: 1}, nil
	}

	return Dimension{Base: base, Exponent: exponent}, nil
}

// Dim is shorthand for a first-power dimension of the given base.
func Dim(base Base) Dimension {
	d, err := NewDimension(base, 1)
	if err != nil {
		panic(err)
	}
	return d
}

// DimensionlessDim returns the canonical dimensionless dimension.
func DimensionlessDim() Dimension {
	return Dimension{Base: BaseDimensionless, Exponent: 1}
}

// Name renders the dimension as its base symbol with a unicode
// superscript exponent. The exponent is omitted when it equals 1.
func (d Dimension) Name() string {
	if d.Exponent == 1 {
		return d.Base.Symbol()
	}
	return d.Base.Symbol() + superscript(d.Exponent)
}

func (d Dimension) String() string {
	return d.Name()
}

// superscriptDigits maps ASCII exponent characters to their unicode
// superscript forms.
var superscriptDigits = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'+': '⁺', '-': '⁻',
}

func superscript(n int) string {
	var sb strings.Builder
	for _, r := range strconv.Itoa(n) {
		if s, ok := superscriptDigits[r]; ok {
			sb.WriteRune(s)
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
