package uiv

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/wgbowley/PicoUnits/picounits"
)

// ErrParse reports a malformed .uiv document.
var ErrParse = errors.New("uiv parse error")

// Parser turns a token stream into a Document. Numeric values, bare or
// bracketed, become picounits packets through the factory; quoted
// strings and bools pass through untouched.
type Parser struct {
	lexer *Lexer
	name  string
}

// Parse parses .uiv source.
func Parse(input string) (*Document, error) {
	return ParseNamed("uiv", input)
}

// ParseNamed parses .uiv source, using name in error positions.
func ParseNamed(name, input string) (*Document, error) {
	p := &Parser{lexer: NewLexer(input), name: name}
	if err := p.lexer.Lex(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, name, err)
	}
	return p.parse()
}

func (p *Parser) errorf(tok Token, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%w: %s:%d: %s", ErrParse, p.name, tok.Line, msg)
}

func (p *Parser) parse() (*Document, error) {
	doc := newDocument()
	var current *Section

	for {
		tok := p.lexer.NextToken()
		switch tok.Type {
		case TokenEOF:
			return doc, nil
		case TokenNewline:
			continue
		case TokenLeftBracket:
			name, err := p.parseSectionHeader(tok)
			if err != nil {
				return nil, err
			}
			current = doc.section(name)
		case TokenAtom:
			// Entries outside any section have no home and are dropped,
			// matching the line format's forgiving read semantics.
			key := tok.Value
			if colon := p.lexer.NextToken(); colon.Type != TokenColon {
				return nil, p.errorf(colon, "expected ':' after key %q", key)
			}
			value, err := p.parseValue(tok)
			if err != nil {
				return nil, err
			}
			if current != nil {
				current.set(key, value)
			}
		default:
			return nil, p.errorf(tok, "unexpected %s", tok)
		}
	}
}

func (p *Parser) parseSectionHeader(open Token) (string, error) {
	name := p.lexer.NextToken()
	if name.Type != TokenAtom {
		return "", p.errorf(open, "expected section name, got %s", name)
	}
	if closing := p.lexer.NextToken(); closing.Type != TokenRightBracket {
		return "", p.errorf(open, "unclosed section header [%s", name.Value)
	}
	return name.Value, nil
}

// parseValue reads one entry value: a scalar or bracketed vector with
// optional prefix and unit, a quoted string, or a bare word.
func (p *Parser) parseValue(at Token) (any, error) {
	tok := p.lexer.NextToken()
	switch tok.Type {
	case TokenString:
		return tok.Value, nil
	case TokenLeftBracket:
		elems, err := p.parseVector(tok)
		if err != nil {
			return nil, err
		}
		prefix, unit, err := p.parseQualities()
		if err != nil {
			return nil, p.errorf(tok, "%v", err)
		}
		return p.createPacket(at, elems, prefix, unit)
	case TokenAtom:
		if b, ok := parseBool(tok.Value); ok {
			return b, nil
		}
		value, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			// Not numeric: the bare word is the value.
			return tok.Value, nil
		}
		prefix, unit, err := p.parseQualities()
		if err != nil {
			return nil, p.errorf(tok, "%v", err)
		}
		return p.createPacket(at, value, prefix, unit)
	default:
		return nil, p.errorf(tok, "unexpected %s in value", tok)
	}
}

// parseVector reads the numbers of a bracketed list.
func (p *Parser) parseVector(open Token) ([]float64, error) {
	var elems []float64
	for {
		tok := p.lexer.NextToken()
		switch tok.Type {
		case TokenRightBracket:
			return elems, nil
		case TokenComma, TokenNewline:
			continue
		case TokenAtom:
			v, err := strconv.ParseFloat(tok.Value, 64)
			if err != nil {
				return nil, p.errorf(tok, "non-numeric vector element %q", tok.Value)
			}
			elems = append(elems, v)
		default:
			return nil, p.errorf(open, "unclosed vector")
		}
	}
}

// parseQualities reads the optional trailing prefix symbol and unit
// expression of a numeric value. A prefix is only meaningful ahead of
// a unit.
func (p *Parser) parseQualities() (prefix, unit string, err error) {
	tok := p.lexer.PeekToken()
	switch tok.Type {
	case TokenUnit:
		p.lexer.NextToken()
		return "", tok.Value, nil
	case TokenAtom:
		p.lexer.NextToken()
		unitTok := p.lexer.NextToken()
		if unitTok.Type != TokenUnit {
			return "", "", fmt.Errorf("prefix %q must be followed by a (unit)", tok.Value)
		}
		return tok.Value, unitTok.Value, nil
	default:
		return "", "", nil
	}
}

func (p *Parser) createPacket(at Token, value any, prefix, unit string) (any, error) {
	packet, err := picounits.Create(value, prefix, unit)
	if err != nil {
		return nil, p.errorf(at, "%v", err)
	}
	return packet, nil
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}
