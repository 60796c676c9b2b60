package uiv

import (
	"fmt"
	"strings"
	"unicode"
)

// Lexer tokenizes .uiv input. Newlines are significant because the
// format is line oriented, so they are emitted as tokens rather than
// skipped with the rest of the whitespace.
type Lexer struct {
	input   string
	pos     int
	line    int
	col     int
	tokens  []Token
	current int
}

// NewLexer creates a new lexer for the given input.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		line:   1,
		col:    1,
		tokens: []Token{},
	}
}

// Lex tokenizes the entire input.
func (l *Lexer) Lex() error {
	for l.pos < len(l.input) {
		l.skipSpacesAndComments()
		if l.pos >= len(l.input) {
			break
		}

		startLine := l.line
		startCol := l.col

		switch ch := l.peek(); ch {
		case '\n':
			l.advance()
			l.emit(Token{Type: TokenNewline, Line: startLine, Col: startCol})
		case '"', '\'':
			str, err := l.readString(ch)
			if err != nil {
				return err
			}
			l.emit(Token{Type: TokenString, Value: str, Line: startLine, Col: startCol})
		case ':':
			l.advance()
			l.emit(Token{Type: TokenColon, Line: startLine, Col: startCol})
		case ',':
			l.advance()
			l.emit(Token{Type: TokenComma, Line: startLine, Col: startCol})
		case '[':
			l.advance()
			l.emit(Token{Type: TokenLeftBracket, Line: startLine, Col: startCol})
		case ']':
			l.advance()
			l.emit(Token{Type: TokenRightBracket, Line: startLine, Col: startCol})
		case '(':
			expr, err := l.readUnit()
			if err != nil {
				return err
			}
			l.emit(Token{Type: TokenUnit, Value: expr, Line: startLine, Col: startCol})
		default:
			atom := l.readAtom()
			if atom == "" {
				return fmt.Errorf("unexpected character %q at line %d, col %d",
					string(l.input[l.pos]), l.line, l.col)
			}
			l.emit(Token{Type: TokenAtom, Value: atom, Line: startLine, Col: startCol})
		}
	}

	l.emit(Token{Type: TokenEOF, Line: l.line, Col: l.col})
	return nil
}

// NextToken returns the next token and advances.
func (l *Lexer) NextToken() Token {
	if l.current >= len(l.tokens) {
		return Token{Type: TokenEOF, Line: l.line, Col: l.col}
	}
	tok := l.tokens[l.current]
	l.current++
	return tok
}

// PeekToken returns the next token without advancing.
func (l *Lexer) PeekToken() Token {
	if l.current >= len(l.tokens) {
		return Token{Type: TokenEOF, Line: l.line, Col: l.col}
	}
	return l.tokens[l.current]
}

func (l *Lexer) emit(tok Token) {
	l.tokens = append(l.tokens, tok)
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) advance() {
	if l.pos < len(l.input) {
		if l.input[l.pos] == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
		l.pos++
	}
}

// skipSpacesAndComments consumes horizontal whitespace and # comments.
// Newlines stay in the stream.
func (l *Lexer) skipSpacesAndComments() {
	for l.pos < len(l.input) {
		ch := l.peek()
		if ch == ' ' || ch == '\t' || ch == '\r' {
			l.advance()
			continue
		}
		if ch == '#' {
			for l.pos < len(l.input) && l.peek() != '\n' {
				l.advance()
			}
			continue
		}
		break
	}
}

// readString reads a quoted string, honoring backslash escapes.
func (l *Lexer) readString(quote byte) (string, error) {
	l.advance()

	var sb strings.Builder
	for l.pos < len(l.input) {
		ch := l.peek()
		switch ch {
		case quote:
			l.advance()
			return sb.String(), nil
		case '\\':
			l.advance()
			if l.pos >= len(l.input) {
				return "", fmt.Errorf("unterminated escape at line %d", l.line)
			}
			switch esc := l.peek(); esc {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			default:
				sb.WriteByte(esc)
			}
			l.advance()
		case '\n':
			return "", fmt.Errorf("unterminated string at line %d", l.line)
		default:
			sb.WriteByte(ch)
			l.advance()
		}
	}
	return "", fmt.Errorf("unterminated string at line %d", l.line)
}

// readUnit captures the raw expression between parentheses. Nested
// parentheses are allowed, so "(J/(kg K))" survives intact.
func (l *Lexer) readUnit() (string, error) {
	startLine := l.line
	l.advance()

	depth := 1
	var sb strings.Builder
	for l.pos < len(l.input) {
		ch := l.peek()
		switch ch {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				l.advance()
				return sb.String(), nil
			}
		case '\n':
			return "", fmt.Errorf("unterminated unit expression at line %d", startLine)
		}
		sb.WriteByte(ch)
		l.advance()
	}
	return "", fmt.Errorf("unterminated unit expression at line %d", startLine)
}

// readAtom reads a bare word: a key, a number, a bool or a prefix
// symbol. Atoms may contain dots for dotted keys and signs and dots for
// numbers.
func (l *Lexer) readAtom() string {
	start := l.pos
	for l.pos < len(l.input) {
		ch := rune(l.peek())
		if ch >= 0x80 {
			// Multi-byte runes never appear in atoms.
			break
		}
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) ||
			ch == '_' || ch == '.' || ch == '-' || ch == '+' {
			l.advance()
			continue
		}
		break
	}
	return l.input[start:l.pos]
}
