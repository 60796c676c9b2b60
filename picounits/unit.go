package picounits

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Unit is an ordered, duplicate-free composite of Dimensions. Units are
// immutable; every algebraic operation returns a new Unit. Identity is
// order-independent: two units composed from the same (base, exponent)
// pairs are equal no matter the construction order.
type Unit struct {
	dims []Dimension
}

// Dimensionless is the identity unit, used for pure numbers and as the
// result of fully cancelled dimensions.
func Dimensionless() Unit {
	return Unit{dims: []Dimension{DimensionlessDim()}}
}

// NewUnit composes a unit from dimensions. With no arguments it returns
// the dimensionless unit. Dimensionless members are stripped when other
// dimensions are present, and two dimensions sharing a base are rejected
// even when their exponents differ.
func NewUnit(dimensions ...Dimension) (Unit, error) {
	if len(dimensions) == 0 {
		return Dimensionless(), nil
	}

	dims := make([]Dimension, 0, len(dimensions))
	for _, d := range dimensions {
		if !d.Base.Valid() {
			return Unit{}, fmt.Errorf("%w: unknown base %d", ErrValidation, int(d.Base))
		}
		dims = append(dims, d)
	}

	// Strip dimensionless members once other dimensions exist.
	if len(dims) > 1 {
		kept := dims[:0]
		for _, d := range dims {
			if d.Base != BaseDimensionless {
				kept = append(kept, d)
			}
		}
		dims = kept
		if len(dims) == 0 {
			return Dimensionless(), nil
		}
	}

	seen := make(map[Base]struct{}, len(dims))
	for _, d := range dims {
		if _, dup := seen[d.Base]; dup {
			return Unit{}, fmt.Errorf("%w: %s", ErrDuplicateBase, d.Base)
		}
		seen[d.Base] = struct{}{}
	}

	sort.SliceStable(dims, func(i, j int) bool {
		return dims[i].Base.Order() < dims[j].Base.Order()
	})

	return Unit{dims: dims}, nil
}

// mustUnit is used for the predefined constants, whose composition is
// known to be valid.
func mustUnit(u Unit, err error) Unit {
	if err != nil {
		panic(err)
	}
	return u
}

// Dimensions returns a copy of the unit's canonical dimension list.
func (u Unit) Dimensions() []Dimension {
	out := make([]Dimension, len(u.dims))
	copy(out, u.dims)
	return out
}

// Len returns the number of dimensions in the unit.
func (u Unit) Len() int {
	return len(u.dims)
}

// IsDimensionless reports whether the unit is the identity unit. The
// zero value Unit{} counts as dimensionless so uninitialized units stay
// safe to use.
func (u Unit) IsDimensionless() bool {
	if len(u.dims) == 0 {
		return true
	}
	return len(u.dims) == 1 && u.dims[0].Base == BaseDimensionless
}

// analysis merges the per-base exponent maps of two units, adding the
// other unit's exponents for multiplication and subtracting them for
// division. Bases whose exponents cancel are dropped; an empty result
// collapses to the dimensionless unit.
func (u Unit) analysis(other Unit, division bool) (Unit, error) {
	exponents := make(map[Base]int, len(u.dims)+len(other.dims))
	for _, d := range u.dims {
		if d.Base != BaseDimensionless {
			exponents[d.Base] = d.Exponent
		}
	}
	for _, d := range other.dims {
		if d.Base == BaseDimensionless {
			continue
		}
		change := d.Exponent
		if division {
			change = -change
		}
		exponents[d.Base] += change
	}

	dims := make([]Dimension, 0, len(exponents))
	for base, exponent := range exponents {
		if exponent == 0 {
			continue
		}
		d, err := NewDimension(base, exponent)
		if err != nil {
			return Unit{}, err
		}
		dims = append(dims, d)
	}

	if len(dims) == 0 {
		return Dimensionless(), nil
	}
	return NewUnit(dims...)
}

// Mul combines two units by adding per-base exponents.
func (u Unit) Mul(other Unit) (Unit, error) {
	return u.analysis(other, false)
}

// Div combines two units by subtracting the other's per-base exponents.
func (u Unit) Div(other Unit) (Unit, error) {
	return u.analysis(other, true)
}

// Pow scales every dimension's exponent by n, rounded to the nearest
// integer. Raising to the zeroth power yields the dimensionless unit.
func (u Unit) Pow(n float64) (Unit, error) {
	dims := make([]Dimension, 0, len(u.dims))
	for _, d := range u.dims {
		exponent := int(math.Round(float64(d.Exponent) * n))
		if exponent == 0 {
			continue
		}
		scaled, err := NewDimension(d.Base, exponent)
		if err != nil {
			return Unit{}, err
		}
		dims = append(dims, scaled)
	}
	if len(dims) == 0 {
		return Dimensionless(), nil
	}
	return NewUnit(dims...)
}

// Equal reports order-independent equality over the set of
// (base, exponent) pairs.
func (u Unit) Equal(other Unit) bool {
	return u.Key() == other.Key()
}

// Key returns a canonical string identity for the unit, suitable for
// keying caches and maps. Equal units always produce the same key
// because dimensions are stored in canonical order.
func (u Unit) Key() string {
	if len(u.dims) == 0 {
		return Dimensionless().Key()
	}
	var sb strings.Builder
	for i, d := range u.dims {
		if i > 0 {
			sb.WriteByte('|')
		}
		fmt.Fprintf(&sb, "%d:%d", int(d.Base), d.Exponent)
	}
	return sb.String()
}

// Name renders the unit's dimensions in canonical display order,
// separated by spaces (for example "kg m² s⁻²").
func (u Unit) Name() string {
	if len(u.dims) == 0 {
		return Dimensionless().Name()
	}
	parts := make([]string, len(u.dims))
	for i, d := range u.dims {
		parts[i] = d.Name()
	}
	return strings.Join(parts, " ")
}

func (u Unit) String() string {
	return u.Name()
}
