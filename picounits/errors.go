package picounits

import "errors"

// Sentinel errors for the failure taxonomy. Callers distinguish causes
// with errors.Is; every error raised by this package wraps one of these.
var (
	// ErrValidation covers wrong types and out-of-range inputs at
	// construction time (exponent bounds, bad symbols, bad payloads).
	ErrValidation = errors.New("validation failed")

	// ErrDimensionMismatch is returned when an operation requires two
	// operands to carry exactly equal units and they do not.
	ErrDimensionMismatch = errors.New("units are not the same")

	// ErrDuplicateBase is returned when a unit is defined with two
	// dimensions of the same base, regardless of their exponents.
	ErrDuplicateBase = errors.New("duplicated base in unit")

	// ErrDomain is returned when a transcendental function receives an
	// input outside its mathematical domain, or when a power exponent
	// is not itself dimensionless.
	ErrDomain = errors.New("out of domain")

	// ErrDivisionByZero is returned when the divisor packet is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUnorderable is returned when an ordering comparison is
	// attempted on complex or vector packets. No total order exists.
	ErrUnorderable = errors.New("no natural ordering")

	// ErrUnsupportedValue is returned by the factory when no packet
	// kind exists for the payload type.
	ErrUnsupportedValue = errors.New("unsupported value type")
)
