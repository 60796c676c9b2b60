// Package uiv reads .uiv (Unit-Informed Values) documents: a
// line-oriented text format of [section] headers and key: value
// entries whose values carry an optional prefix symbol and unit
// expression, such as
//
//	[projectile]
//	mass:     8.5 m(kg)
//	velocity: [120, 0, 35] (m/s)
//	label:    "test shot"
//
// Parsed entries become picounits packets, so values loaded from disk
// enter dimensional pipelines with their units already enforced.
package uiv

import "fmt"

// TokenType represents the type of a .uiv token.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenNewline
	TokenAtom
	TokenString
	TokenColon
	TokenComma
	TokenLeftBracket
	TokenRightBracket
	TokenUnit
)

// Token represents a lexical token in a .uiv document. Unit tokens
// carry the raw expression between parentheses, left for the unit
// parser to interpret.
type Token struct {
	Type  TokenType
	Value string
	Line  int
	Col   int
}

// String returns a string representation of the token.
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return fmt.Sprintf("EOF[%d:%d]", t.Line, t.Col)
	case TokenNewline:
		return fmt.Sprintf("Newline[%d:%d]", t.Line, t.Col)
	case TokenAtom:
		return fmt.Sprintf("Atom[%d:%d]:%s", t.Line, t.Col, t.Value)
	case TokenString:
		return fmt.Sprintf("String[%d:%d]:%q", t.Line, t.Col, t.Value)
	case TokenColon:
		return fmt.Sprintf("Colon[%d:%d]", t.Line, t.Col)
	case TokenComma:
		return fmt.Sprintf("Comma[%d:%d]", t.Line, t.Col)
	case TokenLeftBracket:
		return fmt.Sprintf("LeftBracket[%d:%d]", t.Line, t.Col)
	case TokenRightBracket:
		return fmt.Sprintf("RightBracket[%d:%d]", t.Line, t.Col)
	case TokenUnit:
		return fmt.Sprintf("Unit[%d:%d]:(%s)", t.Line, t.Col, t.Value)
	default:
		return fmt.Sprintf("Unknown[%d:%d]:%s", t.Line, t.Col, t.Value)
	}
}
