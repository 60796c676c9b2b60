package picounits

import "fmt"

// Convert rescales a raw value expressed at one prefix into the same
// physical value expressed at another. Round trips are exact in the
// decade algebra: milli to kilo and back recovers the original value up
// to float rounding.
func Convert(value float64, from, to Prefix) (float64, error) {
	if !from.Valid() {
		return 0, fmt.Errorf("%w: unknown prefix %d", ErrValidation, int(from))
	}
	if !to.Valid() {
		return 0, fmt.Errorf("%w: unknown prefix %d", ErrValidation, int(to))
	}
	return value * from.Factor() / to.Factor(), nil
}

// Rebase returns the BASE-scale value of a raw value carrying a prefix.
func Rebase(value float64, prefix Prefix) (float64, error) {
	return Convert(value, prefix, PrefixBase)
}
