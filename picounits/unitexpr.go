package picounits

import (
	"fmt"
	"strings"
	"unicode"
)

// ParseUnit parses a textual unit expression into a Unit. Symbols are
// the spellings known to UnitFromSymbol; whitespace and the characters
// '*', '·', '∙' (and a standalone 'x') multiply, '/' and '÷' divide the
// whole term that follows, '^' introduces a signed integer exponent,
// and unicode superscripts attach directly to a symbol. Parentheses
// group. The empty expression and "1" are dimensionless.
//
//	"m/s^2"      acceleration
//	"kg m² s⁻²"  energy
//	"N*m"        torque
func ParseUnit(expr string) (Unit, error) {
	p := &unitParser{src: expr, input: []rune(strings.TrimSpace(expr))}
	if len(p.input) == 0 {
		return Dimensionless(), nil
	}
	u, err := p.parseExpr()
	if err != nil {
		return Unit{}, err
	}
	p.skipSpace()
	if p.pos < len(p.input) {
		return Unit{}, fmt.Errorf("%w: unexpected %q in unit expression %q",
			ErrValidation, string(p.input[p.pos]), p.src)
	}
	return u, nil
}

// MustParseUnit is ParseUnit for expressions known to be valid, such as
// compiled-in defaults. It panics on error.
func MustParseUnit(expr string) Unit {
	u, err := ParseUnit(expr)
	if err != nil {
		panic(err)
	}
	return u
}

type unitParser struct {
	src   string
	input []rune
	pos   int
}

func (p *unitParser) skipSpace() {
	for p.pos < len(p.input) && unicode.IsSpace(p.input[p.pos]) {
		p.pos++
	}
}

func (p *unitParser) peek() rune {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

// parseExpr handles division, left associative. The divisor is a whole
// term, so "J/kg K" reads as J/(kg·K).
func (p *unitParser) parseExpr() (Unit, error) {
	u, err := p.parseTerm()
	if err != nil {
		return Unit{}, err
	}
	for {
		p.skipSpace()
		r := p.peek()
		if r != '/' && r != '÷' {
			return u, nil
		}
		p.pos++
		v, err := p.parseTerm()
		if err != nil {
			return Unit{}, err
		}
		u, err = u.Div(v)
		if err != nil {
			return Unit{}, err
		}
	}
}

// parseTerm handles multiplication, explicit or by juxtaposition.
func (p *unitParser) parseTerm() (Unit, error) {
	u, err := p.parseFactor()
	if err != nil {
		return Unit{}, err
	}
	for {
		p.skipSpace()
		switch r := p.peek(); {
		case r == '*' || r == '·' || r == '∙':
			p.pos++
		case r == 'x' && !p.letterAt(p.pos+1):
			// A lone x is a multiplication sign, not a symbol.
			p.pos++
		case r == '(' || r == '1' || unicode.IsLetter(r) || r == 'Ω':
			// Juxtaposition multiplies.
		default:
			return u, nil
		}
		v, err := p.parseFactor()
		if err != nil {
			return Unit{}, err
		}
		u, err = u.Mul(v)
		if err != nil {
			return Unit{}, err
		}
	}
}

func (p *unitParser) letterAt(i int) bool {
	return i < len(p.input) && unicode.IsLetter(p.input[i])
}

// parseFactor is a primary with an optional exponent, written either as
// ^n or as attached unicode superscripts.
func (p *unitParser) parseFactor() (Unit, error) {
	u, err := p.parsePrimary()
	if err != nil {
		return Unit{}, err
	}

	p.skipSpace()
	if p.peek() == '^' {
		p.pos++
		p.skipSpace()
		n, err := p.parseInt()
		if err != nil {
			return Unit{}, err
		}
		return u.Pow(float64(n))
	}

	if n, ok := p.parseSuperscript(); ok {
		return u.Pow(float64(n))
	}
	return u, nil
}

func (p *unitParser) parsePrimary() (Unit, error) {
	p.skipSpace()
	r := p.peek()
	switch {
	case r == 0:
		return Unit{}, fmt.Errorf("%w: unexpected end of unit expression %q",
			ErrValidation, p.src)
	case r == '(':
		p.pos++
		u, err := p.parseExpr()
		if err != nil {
			return Unit{}, err
		}
		p.skipSpace()
		if p.peek() != ')' {
			return Unit{}, fmt.Errorf("%w: missing ) in unit expression %q",
				ErrValidation, p.src)
		}
		p.pos++
		return u, nil
	case r == '1':
		p.pos++
		return Dimensionless(), nil
	case r == 'Ω':
		p.pos++
		return Impedance, nil
	case unicode.IsLetter(r):
		start := p.pos
		for p.pos < len(p.input) && unicode.IsLetter(p.input[p.pos]) && p.input[p.pos] != 'Ω' {
			p.pos++
		}
		symbol := string(p.input[start:p.pos])
		u, ok := UnitFromSymbol(symbol)
		if !ok {
			return Unit{}, fmt.Errorf("%w: unknown unit symbol %q in %q",
				ErrValidation, symbol, p.src)
		}
		return u, nil
	default:
		return Unit{}, fmt.Errorf("%w: unexpected %q in unit expression %q",
			ErrValidation, string(r), p.src)
	}
}

// parseInt reads a signed decimal integer.
func (p *unitParser) parseInt() (int, error) {
	sign := 1
	switch p.peek() {
	case '-':
		sign = -1
		p.pos++
	case '+':
		p.pos++
	}
	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return 0, fmt.Errorf("%w: missing exponent in unit expression %q",
			ErrValidation, p.src)
	}
	n := 0
	for _, d := range p.input[start:p.pos] {
		n = n*10 + int(d-'0')
	}
	return sign * n, nil
}

// superscriptValues inverts superscriptDigits for the lexer.
var superscriptValues = func() map[rune]rune {
	out := make(map[rune]rune, len(superscriptDigits))
	for plain, sup := range superscriptDigits {
		out[sup] = plain
	}
	return out
}()

// parseSuperscript reads a run of unicode superscript characters as a
// signed integer. The second return is false when none are present.
func (p *unitParser) parseSuperscript() (int, bool) {
	sign := 1
	digits := make([]rune, 0, 4)
	start := p.pos
	for p.pos < len(p.input) {
		plain, ok := superscriptValues[p.input[p.pos]]
		if !ok {
			break
		}
		switch plain {
		case '-':
			sign = -1
		case '+':
		default:
			digits = append(digits, plain)
		}
		p.pos++
	}
	if p.pos == start || len(digits) == 0 {
		p.pos = start
		return 0, false
	}
	n := 0
	for _, d := range digits {
		n = n*10 + int(d-'0')
	}
	return sign * n, true
}
