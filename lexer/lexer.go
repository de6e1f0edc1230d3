/*
File    : PeanutScript/lexer/lexer.go
Package : lexer
*/
package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gapples2/PeanutScript/position"
)

const digits = "0123456789"

func isLetter(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return strings.IndexByte(digits, c) >= 0
}

func isLetterOrDigit(c byte) bool {
	return isLetter(c) || isDigit(c)
}

// Error is a lexical-analysis failure: an illegal character or a malformed
// multi-character operator. Par mirrors spec.md §6's entry-point error
// format ("<name>: <details>\nTrace: File <fn>, line <L>\n\n<source-line>\n<caret-span>").
type Error struct {
	Name     string
	Details  string
	PosStart position.Position
	PosEnd   position.Position
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Name, e.Details)
	msg += fmt.Sprintf("\nTrace: File %s, line %d", e.PosStart.FileName, e.PosStart.Line+1)
	msg += "\n\n" + position.CaretSpan(e.PosStart, e.PosEnd)
	return msg
}

func illegalCharError(details string, start, end position.Position) *Error {
	return &Error{Name: "Illegal Character", Details: details, PosStart: start, PosEnd: end}
}

func expectedCharError(details string, start, end position.Position) *Error {
	return &Error{Name: "Expected Character", Details: details, PosStart: start, PosEnd: end}
}

// Interpolator re-enters the full lex→parse→evaluate pipeline to resolve a
// `${...}` fragment against the global context, and stringifies the
// result. The interp package installs this hook (see interp.Init) before
// lexing a program, so the lexer itself never imports parser/interp and no
// import cycle is created. A nil Interpolator makes string interpolation
// fail with a lexer Error, which is what happens if the lexer is driven in
// isolation (e.g. lexer package tests).
var Interpolator func(fragment string) (string, error)

// Lexer performs lexical analysis of Peanut source text, producing a
// stream of Tokens terminated by EOF.
type Lexer struct {
	text    string
	pos     position.Position
	current byte // 0 at end of input
}

// New creates a Lexer over text, attributing positions to fileName.
func New(fileName, text string) *Lexer {
	l := &Lexer{text: text, pos: position.New(fileName, text)}
	l.advance()
	return l
}

func (l *Lexer) advance() {
	l.pos = l.pos.Advance(l.current)
	if l.pos.Index < len(l.text) {
		l.current = l.text[l.pos.Index]
	} else {
		l.current = 0
	}
}

func (l *Lexer) peek() byte {
	if l.pos.Index+1 < len(l.text) {
		return l.text[l.pos.Index+1]
	}
	return 0
}

// MakeTokens lexes the entire source, returning the token list (terminated
// by an EOF token) or the first lexical error encountered.
func (l *Lexer) MakeTokens() ([]Token, error) {
	tokens := make([]Token, 0, 64)
	for l.current != 0 {
		switch {
		case l.current == ' ' || l.current == '\t':
			l.advance()
		case l.current == '#':
			for l.current != 0 && l.current != '\n' {
				l.advance()
			}
		case l.current == ';' || l.current == '\n':
			start := l.pos.Copy()
			l.advance()
			tokens = append(tokens, NewToken(NEWLINE, nil, start))
		case isDigit(l.current):
			tok, err := l.makeNumber()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		case isLetter(l.current):
			tokens = append(tokens, l.makeIdentifier())
		case l.current == '"':
			tok, err := l.makeString()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		case l.current == '+':
			start := l.pos.Copy()
			l.advance()
			tokens = append(tokens, NewToken(PLUS, nil, start))
		case l.current == '-':
			start := l.pos.Copy()
			l.advance()
			tokens = append(tokens, NewToken(MINUS, nil, start))
		case l.current == '*':
			start := l.pos.Copy()
			l.advance()
			tokens = append(tokens, NewToken(MUL, nil, start))
		case l.current == '/':
			start := l.pos.Copy()
			l.advance()
			tokens = append(tokens, NewToken(DIV, nil, start))
		case l.current == '%':
			start := l.pos.Copy()
			l.advance()
			tokens = append(tokens, NewToken(MOD, nil, start))
		case l.current == '^':
			start := l.pos.Copy()
			l.advance()
			tokens = append(tokens, NewToken(POW, nil, start))
		case l.current == '(':
			start := l.pos.Copy()
			l.advance()
			tokens = append(tokens, NewToken(LPAREN, nil, start))
		case l.current == ')':
			start := l.pos.Copy()
			l.advance()
			tokens = append(tokens, NewToken(RPAREN, nil, start))
		case l.current == '[':
			start := l.pos.Copy()
			l.advance()
			tokens = append(tokens, NewToken(LSQUARE, nil, start))
		case l.current == ']':
			start := l.pos.Copy()
			l.advance()
			tokens = append(tokens, NewToken(RSQUARE, nil, start))
		case l.current == '{':
			start := l.pos.Copy()
			l.advance()
			tokens = append(tokens, NewToken(LCURLY, nil, start))
		case l.current == '}':
			start := l.pos.Copy()
			l.advance()
			tokens = append(tokens, NewToken(RCURLY, nil, start))
		case l.current == ',':
			start := l.pos.Copy()
			l.advance()
			tokens = append(tokens, NewToken(COMMA, nil, start))
		case l.current == ':':
			start := l.pos.Copy()
			l.advance()
			tokens = append(tokens, NewToken(COLON, nil, start))
		case l.current == '?':
			start := l.pos.Copy()
			l.advance()
			tokens = append(tokens, NewToken(QUESTION, nil, start))
		case l.current == '=':
			tokens = append(tokens, l.makeEqualsOrArrow())
		case l.current == '!':
			tok, err := l.makeNotEquals()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		case l.current == '<':
			tokens = append(tokens, l.makeLessThan())
		case l.current == '>':
			tokens = append(tokens, l.makeGreaterThan())
		default:
			start := l.pos.Copy()
			c := l.current
			l.advance()
			return nil, illegalCharError(fmt.Sprintf("'%c'", c), start, l.pos)
		}
	}
	tokens = append(tokens, NewToken(EOF, nil, l.pos.Copy()))
	return tokens, nil
}

func (l *Lexer) makeNumber() (Token, error) {
	start := l.pos.Copy()
	var sb strings.Builder
	dotCount := 0
	for l.current != 0 && (isDigit(l.current) || l.current == '.') {
		if l.current == '.' {
			if dotCount == 1 {
				break
			}
			dotCount++
		}
		sb.WriteByte(l.current)
		l.advance()
	}
	text := sb.String()
	if dotCount == 0 {
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Token{}, illegalCharError("malformed integer literal", start, l.pos)
		}
		return NewToken(INT, v, start, l.pos.Copy()), nil
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Token{}, illegalCharError("malformed float literal", start, l.pos)
	}
	return NewToken(FLOAT, v, start, l.pos.Copy()), nil
}

func (l *Lexer) makeIdentifier() Token {
	start := l.pos.Copy()
	var sb strings.Builder
	for l.current != 0 && isLetterOrDigit(l.current) {
		sb.WriteByte(l.current)
		l.advance()
	}
	lexeme := sb.String()
	return NewToken(lookupIdentifier(lexeme), lexeme, start, l.pos.Copy())
}

// makeString scans a double-quoted string literal, honoring \n \t \$
// escapes (any other escaped character passes through literally) and
// splicing in the stringified value of ${...} interpolation fragments.
func (l *Lexer) makeString() (Token, error) {
	start := l.pos.Copy()
	l.advance() // consume opening quote
	var sb strings.Builder
	escapeChars := map[byte]byte{'n': '\n', 't': '\t', '$': '$'}
	for l.current != 0 && l.current != '"' {
		if l.current == '\\' {
			l.advance()
			if repl, ok := escapeChars[l.current]; ok {
				sb.WriteByte(repl)
			} else {
				sb.WriteByte(l.current)
			}
			l.advance()
			continue
		}
		if l.current == '$' && l.peek() == '{' {
			l.advance() // consume '$'
			l.advance() // consume '{'
			var frag strings.Builder
			for l.current != 0 && l.current != '}' {
				frag.WriteByte(l.current)
				l.advance()
			}
			if l.current != '}' {
				return Token{}, expectedCharError("'}'", l.pos.Copy(), l.pos.Copy())
			}
			l.advance() // consume '}'
			if Interpolator == nil {
				return Token{}, illegalCharError("string interpolation is unavailable outside an interpreter run", start, l.pos)
			}
			val, err := Interpolator(frag.String())
			if err != nil {
				return Token{}, illegalCharError(fmt.Sprintf("interpolation failed: %s", err.Error()), start, l.pos)
			}
			sb.WriteString(val)
			continue
		}
		sb.WriteByte(l.current)
		l.advance()
	}
	if l.current != '"' {
		return Token{}, expectedCharError("'\"'", start, l.pos.Copy())
	}
	l.advance() // consume closing quote
	return NewToken(STRING, sb.String(), start, l.pos.Copy()), nil
}

func (l *Lexer) makeEqualsOrArrow() Token {
	start := l.pos.Copy()
	l.advance()
	if l.current == '=' {
		l.advance()
		return NewToken(EE, nil, start, l.pos.Copy())
	}
	if l.current == '>' {
		l.advance()
		return NewToken(ARROW, nil, start, l.pos.Copy())
	}
	return NewToken(EQ, nil, start, l.pos.Copy())
}

func (l *Lexer) makeNotEquals() (Token, error) {
	start := l.pos.Copy()
	l.advance()
	if l.current == '=' {
		l.advance()
		return NewToken(NE, nil, start, l.pos.Copy()), nil
	}
	return Token{}, expectedCharError("'=' (after '!')", start, l.pos.Copy())
}

func (l *Lexer) makeLessThan() Token {
	start := l.pos.Copy()
	l.advance()
	if l.current == '=' {
		l.advance()
		return NewToken(LTE, nil, start, l.pos.Copy())
	}
	return NewToken(LT, nil, start, l.pos.Copy())
}

func (l *Lexer) makeGreaterThan() Token {
	start := l.pos.Copy()
	l.advance()
	if l.current == '=' {
		l.advance()
		return NewToken(GTE, nil, start, l.pos.Copy())
	}
	return NewToken(GT, nil, start, l.pos.Copy())
}
