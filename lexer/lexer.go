// Package lexer converts source bytes into a flat slice of [ast.Token] values.
//
// Call [Lex] for the whole input, or create a [Lexer] with [New] when the
// caller also needs to know how far scanning got.
//
// Design notes:
//   - Single left-to-right pass with no lookback.
//   - At each position the sub-scanners are tried in a fixed order:
//     whitespace, identifier/keyword, number, string, symbol. The first one
//     that matches wins and the position moves past the match.
//   - Whitespace is consumed silently; no token is emitted.
//   - When no sub-scanner matches, lexing stops and the tokens gathered so far
//     are returned. This is not an error. An unterminated string therefore
//     ends the token stream without producing a token.
//   - Identifiers keep their original case; only the keyword lookup key is
//     lowered (see [ast.LookupIdent]).
//   - Line and column numbers are tracked for every token (1-based).
package lexer

import (
	"unicode"

	"github.com/metaphox/vbnorm/ast"
)

// Lexer holds all state required to tokenise one input.
// Create one with [New]; never copy a Lexer after first use.
type Lexer struct {
	input  []byte
	pos    int // index of the next unread byte
	line   int // 1-based line of input[pos]
	col    int // 1-based column of input[pos]
	tokens []ast.Token
	done   bool
}

// New creates a [Lexer] over input.
func New(input []byte) *Lexer {
	return &Lexer{input: input, line: 1, col: 1}
}

// Lex tokenises input in one call.
func Lex(input []byte) []ast.Token {
	return New(input).Tokens()
}

// Tokens scans the remaining input and returns every token produced so far.
// Calling it again returns the same slice.
func (l *Lexer) Tokens() []ast.Token {
	for !l.done && l.pos < len(l.input) {
		// Order matters: the first scanner to match consumes the input.
		if l.scanWhitespace() || l.scanIdentifier() || l.scanNumber() ||
			l.scanString() || l.scanSymbol() {
			continue
		}
		l.done = true
	}
	l.done = true
	return l.tokens
}

// Offset returns the number of input bytes consumed. After [Lexer.Tokens],
// an Offset smaller than the input length means scanning stopped early.
func (l *Lexer) Offset() int {
	return l.pos
}

// ── Internal helpers ──────────────────────────────────────────────────────────

// peek returns the byte n positions ahead of pos, or 0 past the end.
func (l *Lexer) peek(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

// advance moves pos forward by n bytes, keeping line and col in step.
func (l *Lexer) advance(n int) {
	for i := 0; i < n; i++ {
		if l.input[l.pos] == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
		l.pos++
	}
}

// emit appends a token starting at the current position and then consumes
// length bytes.
func (l *Lexer) emit(tt ast.TokenType, length int) {
	tok := ast.Token{Type: tt, Line: l.line, Col: l.col}
	if tt.HasPayload() {
		tok.Literal = string(l.input[l.pos : l.pos+length])
	}
	l.tokens = append(l.tokens, tok)
	l.advance(length)
}

// ── Sub-scanners ──────────────────────────────────────────────────────────────

func (l *Lexer) scanWhitespace() bool {
	n := 0
	for l.pos+n < len(l.input) && isSpace(l.input[l.pos+n]) {
		n++
	}
	if n == 0 {
		return false
	}
	l.advance(n)
	return true
}

// scanIdentifier scans [letter_][letter digit _]* and classifies the result as
// a keyword or an IDENT.
func (l *Lexer) scanIdentifier() bool {
	if !isLetter(l.input[l.pos]) {
		return false
	}
	n := 1
	for l.pos+n < len(l.input) && (isLetter(l.input[l.pos+n]) || isDigit(l.input[l.pos+n])) {
		n++
	}
	l.emit(ast.LookupIdent(string(l.input[l.pos:l.pos+n])), n)
	return true
}

// scanNumber scans digits with an optional fractional part. The '.' is only
// taken when at least one digit follows it, so "123." yields NUMBER then DOT.
func (l *Lexer) scanNumber() bool {
	n := digitsAt(l.input, l.pos)
	if n == 0 {
		return false
	}
	if l.peek(n) == '.' {
		if frac := digitsAt(l.input, l.pos+n+1); frac > 0 {
			n += 1 + frac
		}
	}
	l.emit(ast.NUMBER, n)
	return true
}

// scanString scans from '"' to the next '"' inclusive. Without a closing quote
// it does not match.
func (l *Lexer) scanString() bool {
	if l.input[l.pos] != '"' {
		return false
	}
	for n := 1; l.pos+n < len(l.input); n++ {
		if l.input[l.pos+n] == '"' {
			l.emit(ast.STRING, n+1)
			return true
		}
	}
	return false
}

// scanSymbol scans single-character punctuation, plus "<=" and ">=".
func (l *Lexer) scanSymbol() bool {
	var tt ast.TokenType
	switch l.input[l.pos] {
	case '(':
		tt = ast.LPAREN
	case ')':
		tt = ast.RPAREN
	case '[':
		tt = ast.LBRACKET
	case ']':
		tt = ast.RBRACKET
	case '+':
		tt = ast.PLUS
	case '-':
		tt = ast.MINUS
	case '*':
		tt = ast.ASTERISK
	case '/':
		tt = ast.SLASH
	case '=':
		tt = ast.ASSIGN
	case '.':
		tt = ast.DOT
	case ',':
		tt = ast.COMMA
	case '<':
		if l.peek(1) == '=' {
			l.emit(ast.LTE, 2)
			return true
		}
		tt = ast.LT
	case '>':
		if l.peek(1) == '=' {
			l.emit(ast.GTE, 2)
			return true
		}
		tt = ast.GT
	default:
		return false
	}
	l.emit(tt, 1)
	return true
}

// isSpace treats each byte as a Latin-1 character, so 0x85 and 0xA0 count as
// whitespace alongside the ASCII set.
func isSpace(b byte) bool {
	return unicode.IsSpace(rune(b))
}

// isLetter reports whether b may start an identifier: a Latin-1 letter or '_'.
func isLetter(b byte) bool {
	return b == '_' || unicode.IsLetter(rune(b))
}

// isDigit reports whether b is an ASCII decimal digit (0–9).
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// digitsAt counts the decimal digits starting at input[i].
func digitsAt(input []byte, i int) int {
	n := 0
	for i+n < len(input) && isDigit(input[i+n]) {
		n++
	}
	return n
}
