package picounits

import (
	"fmt"
	"math"
)

// Real is a scalar packet carrying a float64 payload. The stored value
// is always rebased to BASE scale; a construction prefix is consumed
// once and discarded.
type Real struct {
	value float64
	unit  Unit
}

// NewReal builds a real packet at BASE scale.
func NewReal(value float64, unit Unit) *Real {
	if len(unit.dims) == 0 {
		unit = Dimensionless()
	}
	return &Real{value: value, unit: unit}
}

// NewRealWithPrefix builds a real packet, rebasing the raw value from
// the supplied prefix to BASE storage.
func NewRealWithPrefix(value float64, unit Unit, prefix Prefix) (*Real, error) {
	if !prefix.Valid() {
		return nil, fmt.Errorf("%w: unknown prefix %d", ErrValidation, int(prefix))
	}
	return NewReal(value*prefix.Factor(), unit), nil
}

// Number is shorthand for a dimensionless real packet, the entry point
// of the literal bridge: Number(10).Mul(PrefixKilo).Mul(Length).
func Number(value float64) *Real {
	return NewReal(value, Dimensionless())
}

// Value returns the BASE-scaled payload.
func (r *Real) Value() float64 { return r.value }

func (r *Real) Unit() Unit         { return r.unit }
func (r *Real) Category() Category { return CategoryScalar }
func (r *Real) Payload() any       { return r.value }

// Magnitude returns the absolute value of the payload.
func (r *Real) Magnitude() float64 { return math.Abs(r.value) }

// Name renders the packet as "<value> <prefix>(<unit name>)" with the
// value normalized to the most legible prefix.
func (r *Real) Name() string {
	value, prefix := normalizePrefix(r.value)
	return fmt.Sprintf("%v %s(%s)", value, prefix.Symbol(), r.unit.Name())
}

func (r *Real) String() string { return r.Name() }

// In returns the payload rescaled to the given prefix.
func (r *Real) In(prefix Prefix) (float64, error) {
	if !prefix.Valid() {
		return 0, fmt.Errorf("%w: unknown prefix %d", ErrValidation, int(prefix))
	}
	return r.value / prefix.Factor(), nil
}

func (r *Real) UnitCheck(other Packet) error { return unitCheck(r, other) }

func (r *Real) Add(other any) (Packet, error) { return addOp(r, other) }
func (r *Real) Sub(other any) (Packet, error) { return subOp(r, other) }
func (r *Real) Mul(other any) (Packet, error) { return mulOp(r, other) }
func (r *Real) Div(other any) (Packet, error) { return divOp(r, other) }
func (r *Real) Pow(other any) (Packet, error) { return powOp(r, other) }

// Sqrt is the square root, by the fractional exponent law.
func (r *Real) Sqrt() (Packet, error) { return powOp(r, 1.0/2.0) }

// Cbrt is the cubic root, by the fractional exponent law.
func (r *Real) Cbrt() (Packet, error) { return powOp(r, 1.0/3.0) }

func (r *Real) Neg() Packet { return NewReal(-r.value, r.unit) }
func (r *Real) Abs() Packet { return NewReal(math.Abs(r.value), r.unit) }

// Ceil rounds the payload up to the nearest integer, keeping the unit.
func (r *Real) Ceil() *Real { return NewReal(math.Ceil(r.value), r.unit) }

func (r *Real) Equal(other any) bool { return equalOp(r, other) }

func (r *Real) Less(other any) (bool, error)      { return orderOp(r, other, orderLess) }
func (r *Real) LessEq(other any) (bool, error)    { return orderOp(r, other, orderLessEq) }
func (r *Real) Greater(other any) (bool, error)   { return orderOp(r, other, orderGreater) }
func (r *Real) GreaterEq(other any) (bool, error) { return orderOp(r, other, orderGreaterEq) }
