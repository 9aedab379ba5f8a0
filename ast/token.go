// Package ast defines the token types, the Token struct and the statement tree
// shared by the lexer, parser, transformer and generator.
//
// Tokens are the smallest meaningful units of a source file. Keyword and
// punctuation tokens carry no payload: their lexeme is a fixed constant.
// IDENT, NUMBER and STRING tokens keep the exact bytes they were scanned from.
// Position is 1-based: the first character of a file is Line 1, Col 1.
package ast

import "strings"

// TokenType identifies the category of a scanned token.
// The parser matches tokens by TokenType alone, never by payload.
type TokenType int

const (
	// ── Special ────────────────────────────────────────────────────────────────

	// ILLEGAL is the zero value. The lexer never emits it; it stops instead.
	ILLEGAL TokenType = iota

	// ── Payload-carrying ───────────────────────────────────────────────────────

	// IDENT is an identifier: [letter_][letter digit _]*, original case kept.
	IDENT
	// NUMBER is a decimal literal with an optional fractional part: 42, 3.14
	NUMBER
	// STRING is a double-quoted literal. The literal includes both quotes.
	STRING

	// ── Scopes ─────────────────────────────────────────────────────────────────

	PUBLIC
	PRIVATE
	STATIC
	DIM

	// ── Argument modifiers ─────────────────────────────────────────────────────

	BYVAL
	BYREF

	// ── Declarations and blocks ────────────────────────────────────────────────

	AS
	IF
	SUB
	FUNCTION
	TYPE
	ENUM
	CONST
	END
	EXIT
	RETURN

	// ── Loops (lexed, never parsed) ────────────────────────────────────────────

	DO
	LOOP
	WHILE
	WEND
	FOR
	NEXT

	// ── Logical operators ──────────────────────────────────────────────────────

	AND
	OR
	XOR

	// ── Directives ─────────────────────────────────────────────────────────────

	// ATTRIBUTE introduces a metadata line: Attribute VB_Name = "Module1"
	ATTRIBUTE
	// OPTION introduces a module configuration line: Option Explicit
	OPTION
	EXPLICIT
	BASE
	COMPARE
	MODULE

	// ── Symbols ────────────────────────────────────────────────────────────────

	LPAREN
	RPAREN
	LBRACKET
	RBRACKET
	PLUS
	MINUS
	ASTERISK
	SLASH
	LT
	LTE
	GT
	GTE
	ASSIGN
	DOT
	COMMA
)

// keywords maps the lowercase text of every keyword to its TokenType.
// Lookup is case-insensitive: callers lower the key, not the lexeme.
var keywords = map[string]TokenType{
	"public":    PUBLIC,
	"private":   PRIVATE,
	"static":    STATIC,
	"dim":       DIM,
	"byval":     BYVAL,
	"byref":     BYREF,
	"as":        AS,
	"if":        IF,
	"sub":       SUB,
	"function":  FUNCTION,
	"type":      TYPE,
	"enum":      ENUM,
	"const":     CONST,
	"end":       END,
	"exit":      EXIT,
	"return":    RETURN,
	"do":        DO,
	"loop":      LOOP,
	"while":     WHILE,
	"wend":      WEND,
	"for":       FOR,
	"next":      NEXT,
	"and":       AND,
	"or":        OR,
	"xor":       XOR,
	"attribute": ATTRIBUTE,
	"option":    OPTION,
	"explicit":  EXPLICIT,
	"base":      BASE,
	"compare":   COMPARE,
	"module":    MODULE,
}

// lexemes holds the fixed lexeme of every payload-free token type.
var lexemes = map[TokenType]string{
	LPAREN:   "(",
	RPAREN:   ")",
	LBRACKET: "[",
	RBRACKET: "]",
	PLUS:     "+",
	MINUS:    "-",
	ASTERISK: "*",
	SLASH:    "/",
	LT:       "<",
	LTE:      "<=",
	GT:       ">",
	GTE:      ">=",
	ASSIGN:   "=",
	DOT:      ".",
	COMMA:    ",",
}

func init() {
	for text, tt := range keywords {
		lexemes[tt] = text
	}
}

// LookupIdent reports whether word is a keyword, ignoring case, and returns
// the corresponding TokenType. If it is not a keyword, IDENT is returned.
func LookupIdent(word string) TokenType {
	if tt, ok := keywords[strings.ToLower(word)]; ok {
		return tt
	}
	return IDENT
}

// HasPayload reports whether tokens of this type carry their source bytes.
func (tt TokenType) HasPayload() bool {
	return tt == IDENT || tt == NUMBER || tt == STRING
}

// String returns a readable name for the token type, used in dumps and test
// failure messages.
func (tt TokenType) String() string {
	switch tt {
	case ILLEGAL:
		return "ILLEGAL"
	case IDENT:
		return "IDENT"
	case NUMBER:
		return "NUMBER"
	case STRING:
		return "STRING"
	}
	if lx, ok := lexemes[tt]; ok {
		return lx
	}
	return "?"
}

// Token is a single lexical unit produced by the lexer.
//
// Fields:
//   - Type    the category of this token (see TokenType constants)
//   - Literal the exact source bytes, set only for IDENT, NUMBER and STRING
//   - Line    1-based source line number
//   - Col     1-based column of the first character of this token
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Col     int
}

// NewToken builds a token with no position. Payload-free types ignore literal.
func NewToken(tt TokenType, literal string) Token {
	if !tt.HasPayload() {
		literal = ""
	}
	return Token{Type: tt, Literal: literal}
}

// Lexeme returns the canonical text of the token: the scanned bytes for
// IDENT, NUMBER and STRING, and the fixed lowercase lexeme otherwise.
func (t Token) Lexeme() string {
	if t.Type.HasPayload() {
		return t.Literal
	}
	return lexemes[t.Type]
}

// Is reports whether the token has the given type. Payload is not compared.
func (t Token) Is(tt TokenType) bool {
	return t.Type == tt
}

// String returns the lexeme, useful for debugging and error messages.
func (t Token) String() string {
	return t.Lexeme()
}
