package picounits

import (
	"fmt"
	"math"
)

// Transcendental functions operate on real dimensionless scalars, in
// radians, and return dimensionless results. An operand that still
// carries dimensions fails with ErrDomain, as does an input outside the
// mathematical domain of the function.

func transcendInput(x *Real, fn string) error {
	if x.unit.IsDimensionless() {
		return nil
	}
	return fmt.Errorf("%w: %s requires a dimensionless operand, got %s",
		ErrDomain, fn, x.unit)
}

// ToRadians converts a value in degrees to radians.
func ToRadians(x *Real) (*Real, error) {
	if err := transcendInput(x, "ToRadians"); err != nil {
		return nil, err
	}
	return Number(x.value * math.Pi / 180), nil
}

// ToDegrees converts a value in radians to degrees.
func ToDegrees(x *Real) (*Real, error) {
	if err := transcendInput(x, "ToDegrees"); err != nil {
		return nil, err
	}
	return Number(x.value * 180 / math.Pi), nil
}

func Sin(x *Real) (*Real, error) {
	if err := transcendInput(x, "Sin"); err != nil {
		return nil, err
	}
	return Number(math.Sin(x.value)), nil
}

func Cos(x *Real) (*Real, error) {
	if err := transcendInput(x, "Cos"); err != nil {
		return nil, err
	}
	return Number(math.Cos(x.value)), nil
}

func Tan(x *Real) (*Real, error) {
	if err := transcendInput(x, "Tan"); err != nil {
		return nil, err
	}
	return Number(math.Tan(x.value)), nil
}

// Csc is the cosecant, 1/sin. Fails where the sine is zero.
func Csc(x *Real) (*Real, error) {
	s, err := Sin(x)
	if err != nil {
		return nil, err
	}
	if s.value == 0 {
		return nil, fmt.Errorf("%w: Csc undefined at %v", ErrDomain, x.value)
	}
	return Number(1 / s.value), nil
}

// Sec is the secant, 1/cos. Fails where the cosine is zero.
func Sec(x *Real) (*Real, error) {
	c, err := Cos(x)
	if err != nil {
		return nil, err
	}
	if c.value == 0 {
		return nil, fmt.Errorf("%w: Sec undefined at %v", ErrDomain, x.value)
	}
	return Number(1 / c.value), nil
}

// Cot is the cotangent, cos/sin. Fails where the sine is zero.
func Cot(x *Real) (*Real, error) {
	if err := transcendInput(x, "Cot"); err != nil {
		return nil, err
	}
	s := math.Sin(x.value)
	if s == 0 {
		return nil, fmt.Errorf("%w: Cot undefined at %v", ErrDomain, x.value)
	}
	return Number(math.Cos(x.value) / s), nil
}

// Asin requires its input in [-1, 1].
func Asin(x *Real) (*Real, error) {
	if err := transcendInput(x, "Asin"); err != nil {
		return nil, err
	}
	if x.value < -1 || x.value > 1 {
		return nil, fmt.Errorf("%w: Asin requires input in [-1, 1], got %v",
			ErrDomain, x.value)
	}
	return Number(math.Asin(x.value)), nil
}

// Acos requires its input in [-1, 1].
func Acos(x *Real) (*Real, error) {
	if err := transcendInput(x, "Acos"); err != nil {
		return nil, err
	}
	if x.value < -1 || x.value > 1 {
		return nil, fmt.Errorf("%w: Acos requires input in [-1, 1], got %v",
			ErrDomain, x.value)
	}
	return Number(math.Acos(x.value)), nil
}

func Atan(x *Real) (*Real, error) {
	if err := transcendInput(x, "Atan"); err != nil {
		return nil, err
	}
	return Number(math.Atan(x.value)), nil
}

// Atan2 returns the quadrant-aware arc tangent of y/x. Both operands
// must carry the same unit, which cancels in the ratio.
func Atan2(y, x *Real) (*Real, error) {
	if err := unitCheck(y, x); err != nil {
		return nil, err
	}
	return Number(math.Atan2(y.value, x.value)), nil
}

// Acsc is the inverse cosecant, asin(1/x). Requires |x| >= 1.
func Acsc(x *Real) (*Real, error) {
	if err := transcendInput(x, "Acsc"); err != nil {
		return nil, err
	}
	if x.value > -1 && x.value < 1 {
		return nil, fmt.Errorf("%w: Acsc requires |input| >= 1, got %v",
			ErrDomain, x.value)
	}
	return Number(math.Asin(1 / x.value)), nil
}

// Asec is the inverse secant, acos(1/x). Requires |x| >= 1.
func Asec(x *Real) (*Real, error) {
	if err := transcendInput(x, "Asec"); err != nil {
		return nil, err
	}
	if x.value > -1 && x.value < 1 {
		return nil, fmt.Errorf("%w: Asec requires |input| >= 1, got %v",
			ErrDomain, x.value)
	}
	return Number(math.Acos(1 / x.value)), nil
}

// Acot is the inverse cotangent, atan(1/x). Undefined at zero.
func Acot(x *Real) (*Real, error) {
	if err := transcendInput(x, "Acot"); err != nil {
		return nil, err
	}
	if x.value == 0 {
		return nil, fmt.Errorf("%w: Acot undefined at 0", ErrDomain)
	}
	return Number(math.Atan(1 / x.value)), nil
}

func Sinh(x *Real) (*Real, error) {
	if err := transcendInput(x, "Sinh"); err != nil {
		return nil, err
	}
	return Number(math.Sinh(x.value)), nil
}

func Cosh(x *Real) (*Real, error) {
	if err := transcendInput(x, "Cosh"); err != nil {
		return nil, err
	}
	return Number(math.Cosh(x.value)), nil
}

func Tanh(x *Real) (*Real, error) {
	if err := transcendInput(x, "Tanh"); err != nil {
		return nil, err
	}
	return Number(math.Tanh(x.value)), nil
}

// Csch is the hyperbolic cosecant, 1/sinh. Undefined at zero.
func Csch(x *Real) (*Real, error) {
	if err := transcendInput(x, "Csch"); err != nil {
		return nil, err
	}
	if x.value == 0 {
		return nil, fmt.Errorf("%w: Csch undefined at 0", ErrDomain)
	}
	return Number(1 / math.Sinh(x.value)), nil
}

// Sech is the hyperbolic secant, 1/cosh.
func Sech(x *Real) (*Real, error) {
	if err := transcendInput(x, "Sech"); err != nil {
		return nil, err
	}
	return Number(1 / math.Cosh(x.value)), nil
}

// Coth is the hyperbolic cotangent, cosh/sinh. Undefined at zero.
func Coth(x *Real) (*Real, error) {
	if err := transcendInput(x, "Coth"); err != nil {
		return nil, err
	}
	if x.value == 0 {
		return nil, fmt.Errorf("%w: Coth undefined at 0", ErrDomain)
	}
	return Number(math.Cosh(x.value) / math.Sinh(x.value)), nil
}

func Asinh(x *Real) (*Real, error) {
	if err := transcendInput(x, "Asinh"); err != nil {
		return nil, err
	}
	return Number(math.Asinh(x.value)), nil
}

// Acosh requires its input >= 1.
func Acosh(x *Real) (*Real, error) {
	if err := transcendInput(x, "Acosh"); err != nil {
		return nil, err
	}
	if x.value < 1 {
		return nil, fmt.Errorf("%w: Acosh requires input >= 1, got %v",
			ErrDomain, x.value)
	}
	return Number(math.Acosh(x.value)), nil
}

// Atanh requires its input strictly inside (-1, 1).
func Atanh(x *Real) (*Real, error) {
	if err := transcendInput(x, "Atanh"); err != nil {
		return nil, err
	}
	if x.value <= -1 || x.value >= 1 {
		return nil, fmt.Errorf("%w: Atanh requires input in (-1, 1), got %v",
			ErrDomain, x.value)
	}
	return Number(math.Atanh(x.value)), nil
}

// Acsch is the inverse hyperbolic cosecant, asinh(1/x). Undefined at
// zero.
func Acsch(x *Real) (*Real, error) {
	if err := transcendInput(x, "Acsch"); err != nil {
		return nil, err
	}
	if x.value == 0 {
		return nil, fmt.Errorf("%w: Acsch undefined at 0", ErrDomain)
	}
	return Number(math.Asinh(1 / x.value)), nil
}

// Asech is the inverse hyperbolic secant, acosh(1/x). Requires input in
// (0, 1].
func Asech(x *Real) (*Real, error) {
	if err := transcendInput(x, "Asech"); err != nil {
		return nil, err
	}
	if x.value <= 0 || x.value > 1 {
		return nil, fmt.Errorf("%w: Asech requires input in (0, 1], got %v",
			ErrDomain, x.value)
	}
	return Number(math.Acosh(1 / x.value)), nil
}

// Acoth is the inverse hyperbolic cotangent, atanh(1/x). Requires
// |input| > 1.
func Acoth(x *Real) (*Real, error) {
	if err := transcendInput(x, "Acoth"); err != nil {
		return nil, err
	}
	if x.value >= -1 && x.value <= 1 {
		return nil, fmt.Errorf("%w: Acoth requires |input| > 1, got %v",
			ErrDomain, x.value)
	}
	return Number(math.Atanh(1 / x.value)), nil
}

// Exp raises e to the operand.
func Exp(x *Real) (*Real, error) {
	if err := transcendInput(x, "Exp"); err != nil {
		return nil, err
	}
	return Number(math.Exp(x.value)), nil
}

func logInput(x *Real, base float64, fn string) error {
	if err := transcendInput(x, fn); err != nil {
		return err
	}
	if x.value <= 0 {
		return fmt.Errorf("%w: %s requires input > 0, got %v", ErrDomain, fn, x.value)
	}
	if base <= 0 || base == 1 {
		return fmt.Errorf("%w: %s requires base > 0 and != 1, got %v",
			ErrDomain, fn, base)
	}
	return nil
}

// Log is the logarithm in an arbitrary base.
func Log(x *Real, base float64) (*Real, error) {
	if err := logInput(x, base, "Log"); err != nil {
		return nil, err
	}
	return Number(math.Log(x.value) / math.Log(base)), nil
}

func Log2(x *Real) (*Real, error) {
	if err := logInput(x, 2, "Log2"); err != nil {
		return nil, err
	}
	return Number(math.Log2(x.value)), nil
}

func Log10(x *Real) (*Real, error) {
	if err := logInput(x, 10, "Log10"); err != nil {
		return nil, err
	}
	return Number(math.Log10(x.value)), nil
}

// Ln is the natural logarithm.
func Ln(x *Real) (*Real, error) {
	if err := logInput(x, math.E, "Ln"); err != nil {
		return nil, err
	}
	return Number(math.Log(x.value)), nil
}
