package picounits

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Complex is a scalar packet carrying a complex128 payload. It shares
// the scalar category with Real; mixed Real/Complex arithmetic promotes
// the real operand to complex.
type Complex struct {
	value complex128
	unit  Unit
}

// NewComplex builds a complex packet at BASE scale.
func NewComplex(value complex128, unit Unit) *Complex {
	if len(unit.dims) == 0 {
		unit = Dimensionless()
	}
	return &Complex{value: value, unit: unit}
}

// NewComplexWithPrefix builds a complex packet, rebasing both components
// from the supplied prefix to BASE storage.
func NewComplexWithPrefix(value complex128, unit Unit, prefix Prefix) (*Complex, error) {
	if !prefix.Valid() {
		return nil, fmt.Errorf("%w: unknown prefix %d", ErrValidation, int(prefix))
	}
	return NewComplex(value*complex(prefix.Factor(), 0), unit), nil
}

// Value returns the BASE-scaled payload.
func (c *Complex) Value() complex128 { return c.value }

func (c *Complex) Unit() Unit         { return c.unit }
func (c *Complex) Category() Category { return CategoryScalar }
func (c *Complex) Payload() any       { return c.value }

// Magnitude returns the modulus of the payload.
func (c *Complex) Magnitude() float64 { return cmplx.Abs(c.value) }

// Real returns the real component as a packet with the same unit.
func (c *Complex) Real() *Real { return NewReal(real(c.value), c.unit) }

// Imag returns the imaginary component as a packet with the same unit.
func (c *Complex) Imag() *Real { return NewReal(imag(c.value), c.unit) }

// Conjugate flips the sign of the imaginary component.
func (c *Complex) Conjugate() *Complex { return NewComplex(cmplx.Conj(c.value), c.unit) }

// Phase returns the argument of the payload in degrees, as a
// dimensionless packet.
func (c *Complex) Phase() *Real {
	return NewReal(cmplx.Phase(c.value)*180/math.Pi, Dimensionless())
}

// Name renders the packet with both components normalized by the
// modulus of the value.
func (c *Complex) Name() string {
	_, prefix := normalizePrefix(cmplx.Abs(c.value))
	scaled := c.value / complex(prefix.Factor(), 0)
	return fmt.Sprintf("%v %s(%s)", scaled, prefix.Symbol(), c.unit.Name())
}

func (c *Complex) String() string { return c.Name() }

// In returns the payload rescaled to the given prefix.
func (c *Complex) In(prefix Prefix) (complex128, error) {
	if !prefix.Valid() {
		return 0, fmt.Errorf("%w: unknown prefix %d", ErrValidation, int(prefix))
	}
	return c.value / complex(prefix.Factor(), 0), nil
}

func (c *Complex) UnitCheck(other Packet) error { return unitCheck(c, other) }

func (c *Complex) Add(other any) (Packet, error) { return addOp(c, other) }
func (c *Complex) Sub(other any) (Packet, error) { return subOp(c, other) }
func (c *Complex) Mul(other any) (Packet, error) { return mulOp(c, other) }
func (c *Complex) Div(other any) (Packet, error) { return divOp(c, other) }
func (c *Complex) Pow(other any) (Packet, error) { return powOp(c, other) }

// Sqrt is the principal square root.
func (c *Complex) Sqrt() (Packet, error) { return powOp(c, 1.0/2.0) }

func (c *Complex) Neg() Packet { return NewComplex(-c.value, c.unit) }

// Abs returns the modulus as a real packet with the same unit.
func (c *Complex) Abs() Packet { return NewReal(cmplx.Abs(c.value), c.unit) }

func (c *Complex) Equal(other any) bool { return equalOp(c, other) }

func (c *Complex) Less(other any) (bool, error)      { return orderOp(c, other, orderLess) }
func (c *Complex) LessEq(other any) (bool, error)    { return orderOp(c, other, orderLessEq) }
func (c *Complex) Greater(other any) (bool, error)   { return orderOp(c, other, orderGreater) }
func (c *Complex) GreaterEq(other any) (bool, error) { return orderOp(c, other, orderGreaterEq) }
