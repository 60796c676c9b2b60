package picounits

import (
	"fmt"
	"math"
	"strings"
)

// Vector is a packet carrying a fixed-length []float64 payload. All
// elements share one Unit. Scalar operands broadcast elementwise;
// vector operands must match in length.
type Vector struct {
	elems []float64
	unit  Unit
}

// NewVector builds a vector packet at BASE scale. The input slice is
// copied; an empty vector is rejected.
func NewVector(elems []float64, unit Unit) (*Vector, error) {
	if len(elems) == 0 {
		return nil, fmt.Errorf("%w: empty vector", ErrValidation)
	}
	if len(unit.dims) == 0 {
		unit = Dimensionless()
	}
	out := make([]float64, len(elems))
	copy(out, elems)
	return &Vector{elems: out, unit: unit}, nil
}

// NewVectorWithPrefix builds a vector packet, rebasing every element
// from the supplied prefix to BASE storage.
func NewVectorWithPrefix(elems []float64, unit Unit, prefix Prefix) (*Vector, error) {
	if !prefix.Valid() {
		return nil, fmt.Errorf("%w: unknown prefix %d", ErrValidation, int(prefix))
	}
	v, err := NewVector(elems, unit)
	if err != nil {
		return nil, err
	}
	for i := range v.elems {
		v.elems[i] *= prefix.Factor()
	}
	return v, nil
}

// mustVector wraps construction known to be valid, such as results of
// elementwise operations on an already valid vector.
func mustVector(v *Vector, err error) *Vector {
	if err != nil {
		panic(err)
	}
	return v
}

// Values returns a copy of the BASE-scaled elements.
func (v *Vector) Values() []float64 {
	out := make([]float64, len(v.elems))
	copy(out, v.elems)
	return out
}

// Len returns the number of elements.
func (v *Vector) Len() int { return len(v.elems) }

func (v *Vector) Unit() Unit         { return v.unit }
func (v *Vector) Category() Category { return CategoryVector }
func (v *Vector) Payload() any       { return v.Values() }

// Magnitude returns the Euclidean norm of the elements.
func (v *Vector) Magnitude() float64 {
	var sum float64
	for _, e := range v.elems {
		sum += e * e
	}
	return math.Sqrt(sum)
}

// Norm returns the Euclidean norm as a real packet carrying the
// vector's unit.
func (v *Vector) Norm() *Real { return NewReal(v.Magnitude(), v.unit) }

// Normalize returns the unit-length direction of the vector as a
// dimensionless vector. A zero vector has no direction.
func (v *Vector) Normalize() (*Vector, error) {
	magnitude := v.Magnitude()
	if magnitude == 0 {
		return nil, fmt.Errorf("%w: cannot normalize a zero vector", ErrDivisionByZero)
	}
	out := make([]float64, len(v.elems))
	for i, e := range v.elems {
		out[i] = e / magnitude
	}
	return NewVector(out, Dimensionless())
}

// Dot returns the inner product with another vector of the same length.
// The result unit is the product of the operand units.
func (v *Vector) Dot(other any) (*Real, error) {
	w, err := v.coerceVector(other, "dot product")
	if err != nil {
		return nil, err
	}
	unit, err := v.unit.Mul(w.unit)
	if err != nil {
		return nil, err
	}
	var sum float64
	for i := range v.elems {
		sum += v.elems[i] * w.elems[i]
	}
	return NewReal(sum, unit), nil
}

// Cross returns the cross product. Both operands must have exactly
// three elements; the result unit is the product of the operand units.
func (v *Vector) Cross(other any) (*Vector, error) {
	w, err := v.coerceVector(other, "cross product")
	if err != nil {
		return nil, err
	}
	if len(v.elems) != 3 {
		return nil, fmt.Errorf(
			"%w: cross product requires 3 elements, got %d", ErrValidation, len(v.elems))
	}
	unit, err := v.unit.Mul(w.unit)
	if err != nil {
		return nil, err
	}
	a, b := v.elems, w.elems
	return NewVector([]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}, unit)
}

// AngleBetween returns the angle to another vector of the same unit, in
// radians, as a dimensionless packet. The cosine is clamped to [-1, 1]
// so floating point drift never escapes the Acos domain. Callers
// wanting degrees convert with ToDegrees.
func (v *Vector) AngleBetween(other any) (*Real, error) {
	w, err := v.coerceVector(other, "angle")
	if err != nil {
		return nil, err
	}
	if err := unitCheck(v, w); err != nil {
		return nil, err
	}
	mv, mw := v.Magnitude(), w.Magnitude()
	if mv == 0 || mw == 0 {
		return nil, fmt.Errorf("%w: angle with a zero vector is undefined", ErrDomain)
	}
	dot, err := v.Dot(w)
	if err != nil {
		return nil, err
	}
	cosine := dot.Value() / (mv * mw)
	cosine = math.Max(-1, math.Min(1, cosine))
	return NewReal(math.Acos(cosine), Dimensionless()), nil
}

// coerceVector resolves an operand that must be a vector of matching
// length.
func (v *Vector) coerceVector(other any, op string) (*Vector, error) {
	p, err := coerce(other)
	if err != nil {
		return nil, err
	}
	w, ok := p.(*Vector)
	if !ok {
		return nil, fmt.Errorf("%w: %s requires a vector operand, got %s",
			ErrValidation, op, p.Category())
	}
	if len(v.elems) != len(w.elems) {
		return nil, fmt.Errorf("%w: %s length mismatch %d != %d",
			ErrValidation, op, len(v.elems), len(w.elems))
	}
	return w, nil
}

// Name renders the packet with every element rescaled by the prefix of
// the peak-magnitude element.
func (v *Vector) Name() string {
	peak := 0.0
	for _, e := range v.elems {
		if a := math.Abs(e); a > peak {
			peak = a
		}
	}
	_, prefix := normalizePrefix(peak)

	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range v.elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", e/prefix.Factor())
	}
	sb.WriteByte(']')
	return fmt.Sprintf("%s %s(%s)", sb.String(), prefix.Symbol(), v.unit.Name())
}

func (v *Vector) String() string { return v.Name() }

// In returns the elements rescaled to the given prefix.
func (v *Vector) In(prefix Prefix) ([]float64, error) {
	if !prefix.Valid() {
		return nil, fmt.Errorf("%w: unknown prefix %d", ErrValidation, int(prefix))
	}
	out := make([]float64, len(v.elems))
	for i, e := range v.elems {
		out[i] = e / prefix.Factor()
	}
	return out, nil
}

func (v *Vector) UnitCheck(other Packet) error { return unitCheck(v, other) }

func (v *Vector) Add(other any) (Packet, error) { return addOp(v, other) }
func (v *Vector) Sub(other any) (Packet, error) { return subOp(v, other) }
func (v *Vector) Mul(other any) (Packet, error) { return mulOp(v, other) }
func (v *Vector) Div(other any) (Packet, error) { return divOp(v, other) }
func (v *Vector) Pow(other any) (Packet, error) { return powOp(v, other) }

func (v *Vector) Neg() Packet {
	out := make([]float64, len(v.elems))
	for i, e := range v.elems {
		out[i] = -e
	}
	return mustVector(NewVector(out, v.unit))
}

func (v *Vector) Abs() Packet {
	out := make([]float64, len(v.elems))
	for i, e := range v.elems {
		out[i] = math.Abs(e)
	}
	return mustVector(NewVector(out, v.unit))
}

func (v *Vector) Equal(other any) bool { return equalOp(v, other) }

func (v *Vector) Less(other any) (bool, error)      { return orderOp(v, other, orderLess) }
func (v *Vector) LessEq(other any) (bool, error)    { return orderOp(v, other, orderLessEq) }
func (v *Vector) Greater(other any) (bool, error)   { return orderOp(v, other, orderGreater) }
func (v *Vector) GreaterEq(other any) (bool, error) { return orderOp(v, other, orderGreaterEq) }
