package picounits

import "fmt"

// orderRel enumerates the ordering relations backed by a single
// three-way comparison.
type orderRel int

const (
	orderLess orderRel = iota
	orderLessEq
	orderGreater
	orderGreaterEq
)

// equalOp implements Packet.Equal. Unit identity is checked before any
// value comparison, so 5 m and 5 s are unequal even though the payloads
// match. A real and a complex packet are equal when the complex value
// has a zero imaginary part and the same real part. Unsupported
// operands compare unequal rather than failing.
func equalOp(a Packet, other any) bool {
	b, err := coerce(other)
	if err != nil {
		return false
	}
	if !a.Unit().Equal(b.Unit()) {
		return false
	}
	switch x := a.(type) {
	case *Real:
		switch y := b.(type) {
		case *Real:
			return x.value == y.value
		case *Complex:
			return imag(y.value) == 0 && x.value == real(y.value)
		}
	case *Complex:
		switch y := b.(type) {
		case *Real:
			return imag(x.value) == 0 && real(x.value) == y.value
		case *Complex:
			return x.value == y.value
		}
	case *Vector:
		y, ok := b.(*Vector)
		if !ok || len(x.elems) != len(y.elems) {
			return false
		}
		for i := range x.elems {
			if x.elems[i] != y.elems[i] {
				return false
			}
		}
		return true
	}
	return false
}

// orderOp implements the four ordering comparisons. Ordering is defined
// only between real scalars of the same unit: complex and vector
// packets have no natural order.
func orderOp(a Packet, other any, rel orderRel) (bool, error) {
	b, err := coerce(other)
	if err != nil {
		return false, err
	}

	x, ok := a.(*Real)
	if !ok {
		return false, fmt.Errorf("%w: %s values", ErrUnorderable, a.Category())
	}
	y, ok := b.(*Real)
	if !ok {
		return false, fmt.Errorf("%w: %s values", ErrUnorderable, b.Category())
	}
	if err := unitCheck(x, y); err != nil {
		return false, err
	}

	switch rel {
	case orderLess:
		return x.value < y.value, nil
	case orderLessEq:
		return x.value <= y.value, nil
	case orderGreater:
		return x.value > y.value, nil
	default:
		return x.value >= y.value, nil
	}
}
