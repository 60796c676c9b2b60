package picounits

import "fmt"

// Category groups packet kinds by the shape of their payload. Real and
// Complex packets are scalars; array packets are vectors.
type Category int

const (
	CategoryScalar Category = iota
	CategoryVector

	numCategories
)

func (c Category) String() string {
	switch c {
	case CategoryScalar:
		return "SCALAR"
	case CategoryVector:
		return "VECTOR"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// categoryPriority resolves operator dispatch when the two operands
// belong to different categories: the higher-priority operand receives
// the operation and the other operand's value is coerced into its
// domain. The table is populated once and validated at init; it must be
// a genuine total order with no ties.
var categoryPriority = map[Category]int{
	CategoryScalar: 1,
	CategoryVector: 2,
}

func init() {
	seen := make(map[int]Category, len(categoryPriority))
	for c := Category(0); c < numCategories; c++ {
		priority, ok := categoryPriority[c]
		if !ok {
			panic(fmt.Sprintf("picounits: category %s missing from priority table", c))
		}
		if other, dup := seen[priority]; dup {
			panic(fmt.Sprintf(
				"picounits: categories %s and %s share priority %d", other, c, priority))
		}
		seen[priority] = c
	}
}

// Packet is an immutable (value, Unit) pair. Every operation returns a
// fresh packet; no method mutates its receiver. Arithmetic, comparison
// and transcendental behavior is implemented by the shared logic in
// arithmetic.go, compare.go and transcend.go.
//
// Operand arguments are typed any so that the literal bridge works: a
// plain number coerces to a dimensionless packet, and multiplying a
// dimensionless packet by a bare Unit reinterprets the number as
// carrying that unit. Anything else fails with ErrUnsupportedValue.
type Packet interface {
	// Unit returns the packet's unit.
	Unit() Unit

	// Category returns the packet's dispatch category.
	Category() Category

	// Magnitude returns the absolute physical size of the value: |x|
	// for reals, the modulus for complex values, the Euclidean norm
	// for vectors.
	Magnitude() float64

	// Payload returns the stored BASE-scaled value (float64,
	// complex128 or []float64).
	Payload() any

	// Name renders the packet as "<value> <prefix>(<unit name>)" after
	// display normalization.
	Name() string

	// UnitCheck fails with ErrDimensionMismatch unless the other
	// packet carries exactly the same unit.
	UnitCheck(other Packet) error

	Add(other any) (Packet, error)
	Sub(other any) (Packet, error)
	Mul(other any) (Packet, error)
	Div(other any) (Packet, error)
	Pow(other any) (Packet, error)

	Neg() Packet
	Abs() Packet

	// Equal reports equality; unit equality is checked before values.
	Equal(other any) bool

	// Ordering comparisons require equal units and a real scalar on
	// both sides; complex and vector packets fail with ErrUnorderable.
	Less(other any) (bool, error)
	LessEq(other any) (bool, error)
	Greater(other any) (bool, error)
	GreaterEq(other any) (bool, error)
}

// unitCheck is the shared implementation behind Packet.UnitCheck.
func unitCheck(a, b Packet) error {
	if a.Unit().Equal(b.Unit()) {
		return nil
	}
	return fmt.Errorf("%w: %s != %s", ErrDimensionMismatch, a.Unit(), b.Unit())
}

// reallocate orders two packets of differing categories by priority.
// The first return receives the operation; swapped reports that the
// original argument order was reversed, which matters for the
// non-commutative operators.
func reallocate(a, b Packet) (hi, lo Packet, swapped bool) {
	if categoryPriority[a.Category()] >= categoryPriority[b.Category()] {
		return a, b, false
	}
	return b, a, true
}
