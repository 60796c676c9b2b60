package picounits

import (
	"fmt"
	"math"
	"math/cmplx"
)

// arithOp enumerates the binary operators shared by all packet kinds.
type arithOp int

const (
	opAdd arithOp = iota
	opSub
	opMul
	opDiv
)

func (op arithOp) String() string {
	switch op {
	case opAdd:
		return "+"
	case opSub:
		return "-"
	case opMul:
		return "*"
	default:
		return "/"
	}
}

// coerce lifts a raw operand into a packet. Bare numbers become
// dimensionless scalars, float slices become dimensionless vectors, and
// packets pass through untouched.
func coerce(other any) (Packet, error) {
	switch v := other.(type) {
	case Packet:
		return v, nil
	case float64:
		return Number(v), nil
	case float32:
		return Number(float64(v)), nil
	case int:
		return Number(float64(v)), nil
	case int64:
		return Number(float64(v)), nil
	case complex128:
		return NewComplex(v, Dimensionless()), nil
	case complex64:
		return NewComplex(complex128(v), Dimensionless()), nil
	case []float64:
		return NewVector(v, Dimensionless())
	case []int:
		elems := make([]float64, len(v))
		for i, n := range v {
			elems[i] = float64(n)
		}
		return NewVector(elems, Dimensionless())
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, other)
	}
}

// addOp implements Packet.Add: units must match exactly, the result
// keeps the shared unit.
func addOp(a Packet, other any) (Packet, error) {
	b, err := coerce(other)
	if err != nil {
		return nil, err
	}
	if err := unitCheck(a, b); err != nil {
		return nil, err
	}
	return binary(a, b, opAdd, a.Unit())
}

// subOp implements Packet.Sub under the same unit rule as addition.
func subOp(a Packet, other any) (Packet, error) {
	b, err := coerce(other)
	if err != nil {
		return nil, err
	}
	if err := unitCheck(a, b); err != nil {
		return nil, err
	}
	return binary(a, b, opSub, a.Unit())
}

// mulOp implements Packet.Mul. Beyond packet and numeric operands it
// accepts a bare Unit, which multiplies as an implicit 1·unit packet
// (the literal bridge for dimensionless receivers), and a bare Prefix,
// which rescales the value by its decade factor.
func mulOp(a Packet, other any) (Packet, error) {
	switch v := other.(type) {
	case Unit:
		other = NewReal(1, v)
	case Prefix:
		if !v.Valid() {
			return nil, fmt.Errorf("%w: unknown prefix %d", ErrValidation, int(v))
		}
		return scalePacket(a, v.Factor()), nil
	}

	b, err := coerce(other)
	if err != nil {
		return nil, err
	}
	unit, err := a.Unit().Mul(b.Unit())
	if err != nil {
		return nil, err
	}
	return binary(a, b, opMul, unit)
}

// divOp implements Packet.Div. A bare Unit divides as an implicit
// 1·unit packet and a bare Prefix rescales by its inverse factor. Any
// zero in the divisor fails with ErrDivisionByZero.
func divOp(a Packet, other any) (Packet, error) {
	switch v := other.(type) {
	case Unit:
		other = NewReal(1, v)
	case Prefix:
		if !v.Valid() {
			return nil, fmt.Errorf("%w: unknown prefix %d", ErrValidation, int(v))
		}
		return scalePacket(a, 1/v.Factor()), nil
	}

	b, err := coerce(other)
	if err != nil {
		return nil, err
	}
	if hasZero(b) {
		return nil, fmt.Errorf("%w: %s / %s", ErrDivisionByZero, a.Name(), b.Name())
	}
	unit, err := a.Unit().Div(b.Unit())
	if err != nil {
		return nil, err
	}
	return binary(a, b, opDiv, unit)
}

// powOp implements Packet.Pow. The exponent must be a real
// dimensionless scalar; a zero exponent collapses any packet to the
// pure number 1. A negative real base with a fractional exponent is
// rejected rather than promoted to complex, and a zero base with a
// negative exponent is division by zero.
func powOp(a Packet, other any) (Packet, error) {
	p, err := coerce(other)
	if err != nil {
		return nil, err
	}
	exp, ok := p.(*Real)
	if !ok {
		return nil, fmt.Errorf("%w: exponent must be a real scalar, got %s",
			ErrDomain, p.Category())
	}
	if !exp.unit.IsDimensionless() {
		return nil, fmt.Errorf("%w: exponent must be dimensionless, got %s",
			ErrDomain, exp.unit)
	}
	n := exp.value
	if n == 0 {
		return Number(1), nil
	}

	unit, err := a.Unit().Pow(n)
	if err != nil {
		return nil, err
	}

	fractional := n != math.Trunc(n)
	switch base := a.(type) {
	case *Real:
		if base.value < 0 && fractional {
			return nil, fmt.Errorf(
				"%w: fractional power of negative value %v", ErrDomain, base.value)
		}
		if base.value == 0 && n < 0 {
			return nil, fmt.Errorf("%w: negative power of zero", ErrDivisionByZero)
		}
		return NewReal(math.Pow(base.value, n), unit), nil
	case *Complex:
		if base.value == 0 && n < 0 {
			return nil, fmt.Errorf("%w: negative power of zero", ErrDivisionByZero)
		}
		return NewComplex(cmplx.Pow(base.value, complex(n, 0)), unit), nil
	case *Vector:
		out := make([]float64, len(base.elems))
		for i, e := range base.elems {
			if e < 0 && fractional {
				return nil, fmt.Errorf(
					"%w: fractional power of negative element %v", ErrDomain, e)
			}
			if e == 0 && n < 0 {
				return nil, fmt.Errorf(
					"%w: negative power of zero element", ErrDivisionByZero)
			}
			out[i] = math.Pow(e, n)
		}
		return NewVector(out, unit)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, a)
	}
}

// binary computes the value part of a two-packet operation, dispatching
// exhaustively over the closed scalar/vector pair space. The vector
// side, when present, dictates the result shape.
func binary(a, b Packet, op arithOp, unit Unit) (Packet, error) {
	if hi, _, _ := reallocate(a, b); hi.Category() == CategoryScalar {
		return scalarBinary(a, b, op, unit)
	}
	return vectorBinary(a, b, op, unit)
}

// scalarBinary combines two scalar packets. Two reals stay real;
// anything touching a complex operand promotes to complex.
func scalarBinary(a, b Packet, op arithOp, unit Unit) (Packet, error) {
	x, xIsReal := scalarValue(a)
	y, yIsReal := scalarValue(b)
	if xIsReal && yIsReal {
		return NewReal(applyFloat(real(x), real(y), op), unit), nil
	}
	return NewComplex(applyComplex(x, y, op), unit), nil
}

// vectorBinary combines packet pairs with at least one vector side.
// Scalar operands broadcast elementwise; two vectors must match in
// length. Complex scalars cannot combine with real-valued vectors.
func vectorBinary(a, b Packet, op arithOp, unit Unit) (Packet, error) {
	switch x := a.(type) {
	case *Vector:
		switch y := b.(type) {
		case *Vector:
			if len(x.elems) != len(y.elems) {
				return nil, fmt.Errorf("%w: vector length mismatch %d != %d",
					ErrValidation, len(x.elems), len(y.elems))
			}
			out := make([]float64, len(x.elems))
			for i := range x.elems {
				out[i] = applyFloat(x.elems[i], y.elems[i], op)
			}
			return NewVector(out, unit)
		case *Real:
			out := make([]float64, len(x.elems))
			for i, e := range x.elems {
				out[i] = applyFloat(e, y.value, op)
			}
			return NewVector(out, unit)
		case *Complex:
			return nil, fmt.Errorf(
				"%w: complex scalar cannot combine with a vector", ErrUnsupportedValue)
		}
	case *Real:
		y, ok := b.(*Vector)
		if !ok {
			break
		}
		out := make([]float64, len(y.elems))
		for i, e := range y.elems {
			out[i] = applyFloat(x.value, e, op)
		}
		return NewVector(out, unit)
	case *Complex:
		if _, ok := b.(*Vector); ok {
			return nil, fmt.Errorf(
				"%w: complex scalar cannot combine with a vector", ErrUnsupportedValue)
		}
	}
	return nil, fmt.Errorf("%w: %T %s %T", ErrUnsupportedValue, a, op, b)
}

// scalarValue extracts a scalar payload as complex128, reporting
// whether the source was real.
func scalarValue(p Packet) (complex128, bool) {
	switch v := p.(type) {
	case *Real:
		return complex(v.value, 0), true
	case *Complex:
		return v.value, false
	default:
		return 0, false
	}
}

func applyFloat(x, y float64, op arithOp) float64 {
	switch op {
	case opAdd:
		return x + y
	case opSub:
		return x - y
	case opMul:
		return x * y
	default:
		return x / y
	}
}

func applyComplex(x, y complex128, op arithOp) complex128 {
	switch op {
	case opAdd:
		return x + y
	case opSub:
		return x - y
	case opMul:
		return x * y
	default:
		return x / y
	}
}

// scalePacket multiplies every component of a packet by a bare factor,
// keeping the unit untouched.
func scalePacket(a Packet, factor float64) Packet {
	switch v := a.(type) {
	case *Real:
		return NewReal(v.value*factor, v.unit)
	case *Complex:
		return NewComplex(v.value*complex(factor, 0), v.unit)
	case *Vector:
		out := make([]float64, len(v.elems))
		for i, e := range v.elems {
			out[i] = e * factor
		}
		return mustVector(NewVector(out, v.unit))
	default:
		return a
	}
}

// hasZero reports whether any component of the divisor is exactly zero.
func hasZero(p Packet) bool {
	switch v := p.(type) {
	case *Real:
		return v.value == 0
	case *Complex:
		return v.value == 0
	case *Vector:
		for _, e := range v.elems {
			if e == 0 {
				return true
			}
		}
	}
	return false
}
