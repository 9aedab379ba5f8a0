// Package parser builds a statement tree from a token slice.
//
// The parser is a backtracking recursive descent built from one combinator:
// ordered choice. Each construct has a sub-parser that either returns a
// statement (the tokens it read stay consumed) or returns nil, in which case
// the enclosing choice restores the position saved before the attempt and
// tries the next alternative. The first alternative to succeed wins.
//
// Usage:
//
//	toks := lexer.Lex(src)
//	stmts := parser.Parse(toks)
//
// There is no error recovery and no diagnostics. When no alternative matches
// at the current position, parsing stops and the statements built so far are
// returned; [Parser.Remaining] reports how many tokens were left unread.
//
// A malformed argument list is different: once '(' has been read only
// arguments or ')' can follow, so anything else is reported as an
// internal-consistency violation (see package invariant).
package parser

import (
	"github.com/metaphox/vbnorm/ast"
	"github.com/metaphox/vbnorm/internal/invariant"
)

// ── Grammar tables ────────────────────────────────────────────────────────────

// parseFn parses one construct. It returns nil, never a typed nil, for "no match".
type parseFn func(p *Parser) ast.Statement

// topLevel lists the module-level alternatives in priority order.
var topLevel = []parseFn{
	(*Parser).parseType,
	(*Parser).parseVariable,
	(*Parser).parseConstant,
	(*Parser).parseSubroutine,
	(*Parser).parseFunction,
	(*Parser).parseEnum,
	(*Parser).parseAttribute,
	(*Parser).parseOption,
}

// callableBody lists the alternatives accepted inside a Sub or Function.
var callableBody = []parseFn{
	(*Parser).parseVariable,
	(*Parser).parseConstant,
	(*Parser).parseAssignment,
	(*Parser).parseExit,
	(*Parser).parseReturn,
	(*Parser).parseAttribute,
}

var (
	variableScopes = []ast.TokenType{ast.PUBLIC, ast.PRIVATE, ast.STATIC, ast.DIM}
	callableScopes = []ast.TokenType{ast.PUBLIC, ast.PRIVATE, ast.STATIC}
	enumScopes     = []ast.TokenType{ast.PUBLIC, ast.PRIVATE}
	modifiers      = []ast.TokenType{ast.BYVAL, ast.BYREF}
	valueTypes     = []ast.TokenType{ast.IDENT, ast.NUMBER, ast.STRING}
	optionConfigs  = []ast.TokenType{ast.EXPLICIT, ast.BASE, ast.COMPARE, ast.PRIVATE}

	// exitBlocks are the blocks an Exit statement may leave.
	exitBlocks = []ast.TokenType{ast.SUB, ast.FUNCTION}
)

// ── Parser ────────────────────────────────────────────────────────────────────

// Parser holds the token slice and the read position.
// Create one with [New] and call [Parser.Parse].
type Parser struct {
	tokens []ast.Token
	pos    int

	// callable is SUB or FUNCTION while a body is being parsed, ILLEGAL otherwise.
	callable ast.TokenType
}

// New creates a Parser positioned at the first token.
func New(tokens []ast.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses tokens from the start and returns the top-level statements.
func Parse(tokens []ast.Token) []ast.Statement {
	return New(tokens).Parse()
}

// Parse reads top-level statements until the tokens run out or no
// alternative matches.
func (p *Parser) Parse() []ast.Statement {
	return p.many(topLevel)
}

// Remaining returns the number of tokens not consumed by a successful parse.
func (p *Parser) Remaining() int {
	return len(p.tokens) - p.pos
}

// ── Combinators ───────────────────────────────────────────────────────────────

// attempt runs fn and restores the position if it does not match.
func (p *Parser) attempt(fn parseFn) ast.Statement {
	saved := p.pos
	if s := fn(p); s != nil {
		return s
	}
	p.pos = saved
	return nil
}

// choice returns the result of the first alternative that matches.
func (p *Parser) choice(alts []parseFn) ast.Statement {
	for _, fn := range alts {
		if s := p.attempt(fn); s != nil {
			return s
		}
	}
	return nil
}

// many applies choice until the input is exhausted or nothing matches.
func (p *Parser) many(alts []parseFn) []ast.Statement {
	var out []ast.Statement
	for p.pos < len(p.tokens) {
		s := p.choice(alts)
		if s == nil {
			break
		}
		out = append(out, s)
	}
	return out
}

// repeat collects items from fn until it returns nil, rewinding the
// unfinished attempt.
func repeat[T any](p *Parser, fn func(*Parser) *T) []*T {
	var out []*T
	for {
		saved := p.pos
		item := fn(p)
		if item == nil {
			p.pos = saved
			return out
		}
		out = append(out, item)
	}
}

// ── Token management ──────────────────────────────────────────────────────────

// consume returns the current token and advances if its type is tt.
// Only the type is compared; the returned token carries the real payload.
func (p *Parser) consume(tt ast.TokenType) (ast.Token, bool) {
	if p.pos >= len(p.tokens) || p.tokens[p.pos].Type != tt {
		return ast.Token{}, false
	}
	p.pos++
	return p.tokens[p.pos-1], true
}

// consumeAny consumes the first of tts that matches the current token.
func (p *Parser) consumeAny(tts ...ast.TokenType) (ast.Token, bool) {
	for _, tt := range tts {
		if tok, ok := p.consume(tt); ok {
			return tok, true
		}
	}
	return ast.Token{}, false
}

// skip consumes a token of type tt and reports whether it was there.
func (p *Parser) skip(tt ast.TokenType) bool {
	_, ok := p.consume(tt)
	return ok
}

// optional consumes one of tts if present and returns it, or nil.
func (p *Parser) optional(tts ...ast.TokenType) *ast.Token {
	if tok, ok := p.consumeAny(tts...); ok {
		return &tok
	}
	return nil
}

// peekIs reports whether the current token has type tt.
func (p *Parser) peekIs(tt ast.TokenType) bool {
	return p.pos < len(p.tokens) && p.tokens[p.pos].Type == tt
}

// describe names the current token for violation messages.
func (p *Parser) describe() string {
	if p.pos >= len(p.tokens) {
		return "end of input"
	}
	t := p.tokens[p.pos]
	return t.Type.String() + " " + t.Lexeme()
}

// ── Declarations ──────────────────────────────────────────────────────────────

// parseType parses:
//
//	Type Name
//	    Member As Kind ...
//	End Type
func (p *Parser) parseType() ast.Statement {
	if !p.skip(ast.TYPE) {
		return nil
	}
	name, ok := p.consume(ast.IDENT)
	if !ok {
		return nil
	}
	attrs := repeat(p, (*Parser).parseTypeAttribute)
	if !p.skip(ast.END) || !p.skip(ast.TYPE) {
		return nil
	}
	return &ast.TypeDecl{Name: name, Attributes: attrs}
}

func (p *Parser) parseTypeAttribute() *ast.TypeAttribute {
	name, ok := p.consume(ast.IDENT)
	if !ok || !p.skip(ast.AS) {
		return nil
	}
	kind, ok := p.consume(ast.IDENT)
	if !ok {
		return nil
	}
	return &ast.TypeAttribute{Name: name, Kind: kind}
}

// parseEnum parses an enum with an optional Public/Private scope:
//
//	[Scope] Enum Name
//	    Member [= Number] ...
//	End Enum
func (p *Parser) parseEnum() ast.Statement {
	scope := p.optional(enumScopes...)
	if !p.skip(ast.ENUM) {
		return nil
	}
	name, ok := p.consume(ast.IDENT)
	if !ok {
		return nil
	}
	attrs := repeat(p, (*Parser).parseEnumAttribute)
	if !p.skip(ast.END) || !p.skip(ast.ENUM) {
		return nil
	}
	return &ast.EnumDecl{Scope: scope, Name: name, Attributes: attrs}
}

func (p *Parser) parseEnumAttribute() *ast.EnumAttribute {
	name, ok := p.consume(ast.IDENT)
	if !ok {
		return nil
	}
	attr := &ast.EnumAttribute{Name: name}
	if p.skip(ast.ASSIGN) {
		if attr.Value = p.optional(ast.NUMBER); attr.Value == nil {
			return nil
		}
	}
	return attr
}

// parseVariable parses: Scope Name As Kind
func (p *Parser) parseVariable() ast.Statement {
	scope, ok := p.consumeAny(variableScopes...)
	if !ok {
		return nil
	}
	name, ok := p.consume(ast.IDENT)
	if !ok || !p.skip(ast.AS) {
		return nil
	}
	kind, ok := p.consume(ast.IDENT)
	if !ok {
		return nil
	}
	return &ast.Variable{Scope: scope, Name: name, Kind: kind}
}

// parseConstant parses: Scope Const Name [As Kind] [* Length] = Value
func (p *Parser) parseConstant() ast.Statement {
	scope, ok := p.consumeAny(variableScopes...)
	if !ok || !p.skip(ast.CONST) {
		return nil
	}
	name, ok := p.consume(ast.IDENT)
	if !ok {
		return nil
	}
	c := &ast.Constant{Scope: scope, Name: name}
	if p.skip(ast.AS) {
		if c.Kind = p.optional(ast.IDENT); c.Kind == nil {
			return nil
		}
	}
	if p.skip(ast.ASTERISK) {
		if c.Length = p.optional(ast.NUMBER); c.Length == nil {
			return nil
		}
	}
	if !p.skip(ast.ASSIGN) {
		return nil
	}
	if c.Value, ok = p.consumeAny(valueTypes...); !ok {
		return nil
	}
	return c
}

// ── Callables ─────────────────────────────────────────────────────────────────

// parseSubroutine parses:
//
//	Scope Sub Name(Arguments)
//	    Body
//	End Sub
func (p *Parser) parseSubroutine() ast.Statement {
	scope, ok := p.consumeAny(callableScopes...)
	if !ok || !p.skip(ast.SUB) {
		return nil
	}
	name, ok := p.consume(ast.IDENT)
	if !ok || !p.skip(ast.LPAREN) {
		return nil
	}
	args := p.parseArguments()
	body := p.parseBody(ast.SUB)
	if !p.skip(ast.END) || !p.skip(ast.SUB) {
		return nil
	}
	return &ast.Subroutine{Scope: scope, Name: name, Arguments: args, Body: body}
}

// parseFunction parses:
//
//	Scope Function Name(Arguments) [As Kind]
//	    Body
//	End Function
func (p *Parser) parseFunction() ast.Statement {
	scope, ok := p.consumeAny(callableScopes...)
	if !ok || !p.skip(ast.FUNCTION) {
		return nil
	}
	name, ok := p.consume(ast.IDENT)
	if !ok || !p.skip(ast.LPAREN) {
		return nil
	}
	fn := &ast.Function{Scope: scope, Name: name, Arguments: p.parseArguments()}
	if p.skip(ast.AS) {
		if fn.Kind = p.optional(ast.IDENT); fn.Kind == nil {
			return nil
		}
	}
	fn.Body = p.parseBody(ast.FUNCTION)
	if !p.skip(ast.END) || !p.skip(ast.FUNCTION) {
		return nil
	}
	return fn
}

// parseArguments parses the argument list after '(' up to and including ')'.
// Each argument may be followed by a comma.
func (p *Parser) parseArguments() []*ast.Argument {
	var args []*ast.Argument
	for !p.peekIs(ast.RPAREN) {
		arg := p.parseArgument()
		invariant.Invariant(arg != nil, "malformed argument list at token %d (%s)", p.pos, p.describe())
		args = append(args, arg)
		p.skip(ast.COMMA)
	}
	p.skip(ast.RPAREN)
	return args
}

// parseArgument parses: [ByVal|ByRef] Name As Kind
func (p *Parser) parseArgument() *ast.Argument {
	modifier := p.optional(modifiers...)
	name, ok := p.consume(ast.IDENT)
	if !ok || !p.skip(ast.AS) {
		return nil
	}
	kind, ok := p.consume(ast.IDENT)
	if !ok {
		return nil
	}
	return &ast.Argument{Modifier: modifier, Name: name, Kind: kind}
}

// parseBody parses callable-body statements for a block of kind SUB or FUNCTION.
func (p *Parser) parseBody(kind ast.TokenType) []ast.Statement {
	outer := p.callable
	p.callable = kind
	defer func() { p.callable = outer }()
	return p.many(callableBody)
}

// ── Control ───────────────────────────────────────────────────────────────────

// parseAssignment parses: Name = Value
func (p *Parser) parseAssignment() ast.Statement {
	left, ok := p.consume(ast.IDENT)
	if !ok || !p.skip(ast.ASSIGN) {
		return nil
	}
	right, ok := p.consumeAny(valueTypes...)
	if !ok {
		return nil
	}
	return &ast.Assignment{Left: left, Right: right}
}

// parseExit parses: Exit Block
func (p *Parser) parseExit() ast.Statement {
	if !p.skip(ast.EXIT) {
		return nil
	}
	block, ok := p.consumeAny(exitBlocks...)
	if !ok {
		return nil
	}
	return &ast.Exit{Block: block}
}

// parseReturn parses: Return [Value]
// A bare Return is only a match inside a subroutine; a function must return
// a value, so the transformer never sees a bare Return in a function body.
func (p *Parser) parseReturn() ast.Statement {
	if !p.skip(ast.RETURN) {
		return nil
	}
	value := p.optional(valueTypes...)
	if value == nil && p.callable == ast.FUNCTION {
		return nil
	}
	return &ast.Return{Value: value}
}

// ── Directives ────────────────────────────────────────────────────────────────

// parseAttribute parses: Attribute Name = Value
func (p *Parser) parseAttribute() ast.Statement {
	if !p.skip(ast.ATTRIBUTE) {
		return nil
	}
	name, ok := p.consume(ast.IDENT)
	if !ok || !p.skip(ast.ASSIGN) {
		return nil
	}
	value, ok := p.consumeAny(valueTypes...)
	if !ok {
		return nil
	}
	return &ast.Attribute{Name: name, Value: value}
}

// parseOption parses one of:
//
//	Option Explicit
//	Option Base Number
//	Option Compare Identifier
//	Option Private Module
func (p *Parser) parseOption() ast.Statement {
	if !p.skip(ast.OPTION) {
		return nil
	}
	config, ok := p.consumeAny(optionConfigs...)
	if !ok {
		return nil
	}
	opt := &ast.Option{Config: config}
	switch config.Type {
	case ast.EXPLICIT:
	case ast.BASE:
		opt.Value = p.optional(ast.NUMBER)
	case ast.COMPARE:
		opt.Value = p.optional(ast.IDENT)
	case ast.PRIVATE:
		opt.Value = p.optional(ast.MODULE)
	default:
		invariant.Unreachable("option configuration %s is not in the accepted set", config.Type)
	}
	if config.Type != ast.EXPLICIT && opt.Value == nil {
		return nil
	}
	return opt
}
