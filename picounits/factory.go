package picounits

import "fmt"

// New dispatches a raw value to the packet kind matching its type:
// integers and floats become Real, complex values become Complex, and
// numeric slices become Vector. Anything else fails with
// ErrUnsupportedValue.
func New(value any, unit Unit) (Packet, error) {
	return NewWithPrefix(value, unit, PrefixBase)
}

// NewWithPrefix dispatches like New, rebasing the raw value from the
// supplied prefix to BASE storage.
func NewWithPrefix(value any, unit Unit, prefix Prefix) (Packet, error) {
	switch v := value.(type) {
	case float64:
		return NewRealWithPrefix(v, unit, prefix)
	case float32:
		return NewRealWithPrefix(float64(v), unit, prefix)
	case int:
		return NewRealWithPrefix(float64(v), unit, prefix)
	case int64:
		return NewRealWithPrefix(float64(v), unit, prefix)
	case complex128:
		return NewComplexWithPrefix(v, unit, prefix)
	case complex64:
		return NewComplexWithPrefix(complex128(v), unit, prefix)
	case []float64:
		return NewVectorWithPrefix(v, unit, prefix)
	case []int:
		elems := make([]float64, len(v))
		for i, n := range v {
			elems[i] = float64(n)
		}
		return NewVectorWithPrefix(elems, unit, prefix)
	default:
		return nil, fmt.Errorf("%w: no packet for value type %T", ErrUnsupportedValue, value)
	}
}

// Create is the loader-facing entry point: it resolves a prefix symbol
// and a textual unit expression before dispatching on the value type.
func Create(value any, prefixSymbol, unitExpr string) (Packet, error) {
	prefix, ok := PrefixFromSymbol(prefixSymbol)
	if !ok {
		return nil, fmt.Errorf("%w: unknown prefix symbol %q", ErrValidation, prefixSymbol)
	}
	unit, err := ParseUnit(unitExpr)
	if err != nil {
		return nil, err
	}
	return NewWithPrefix(value, unit, prefix)
}
