// Package generator serialises a statement tree into legacy-dialect text.
//
// Output is one block per statement, concatenated in order. Every construct
// ends with its own newline; nothing else separates statements. Keywords are
// written in lowercase, numbers and strings exactly as scanned, and
// identifiers lowercased unless [Options.PreserveCase] is set. Attribute
// directive names are metadata keys and are always written as scanned.
//
// A statement kind the legacy dialect has no form for (Return, which the
// transformer removes from functions) is written as the [Placeholder] line
// so unsupported input shows up in the output instead of stopping generation.
package generator

import (
	"strings"
	"unicode"

	"github.com/metaphox/vbnorm/ast"
	"github.com/metaphox/vbnorm/cursor"
)

// Placeholder is written in place of a statement with no legacy form.
const Placeholder = "__POLYFILL__\n"

// Options configures a Generator. The zero value is the canonical form.
type Options struct {
	// PreserveCase writes identifiers as scanned instead of lowercasing them.
	PreserveCase bool
}

// Generator writes statements. Create one with [New]; a Generator holds no
// state between calls to [Generator.Generate].
type Generator struct {
	opts Options
}

// New creates a Generator.
func New(opts Options) *Generator {
	return &Generator{opts: opts}
}

// Generate serialises statements with the default options.
func Generate(statements []ast.Statement) string {
	return New(Options{}).Generate(statements)
}

// Generate serialises statements.
func (g *Generator) Generate(statements []ast.Statement) string {
	var b strings.Builder
	g.block(&b, statements)
	return b.String()
}

// block writes each statement of a sequence in order.
func (g *Generator) block(b *strings.Builder, statements []ast.Statement) {
	c := cursor.New(statements)
	for {
		s, ok := c.Next()
		if !ok {
			return
		}
		g.statement(b, s)
	}
}

func (g *Generator) statement(b *strings.Builder, s ast.Statement) {
	switch s := s.(type) {
	case *ast.Function:
		g.function(b, s)
	case *ast.Subroutine:
		g.subroutine(b, s)
	case *ast.TypeDecl:
		g.typeDecl(b, s)
	case *ast.TypeAttribute:
		g.line(b, g.word(s.Name), " as ", g.word(s.Kind))
	case *ast.EnumDecl:
		g.enumDecl(b, s)
	case *ast.EnumAttribute:
		g.enumAttribute(b, s)
	case *ast.Argument:
		g.argument(b, s)
	case *ast.Variable:
		g.line(b, g.word(s.Scope), " ", g.word(s.Name), " as ", g.word(s.Kind))
	case *ast.Constant:
		g.constant(b, s)
	case *ast.Assignment:
		g.line(b, g.word(s.Left), " = ", g.word(s.Right))
	case *ast.Exit:
		g.line(b, "exit ", g.word(s.Block))
	case *ast.Option:
		g.option(b, s)
	case *ast.Attribute:
		g.line(b, "Attribute ", s.Name.Lexeme(), " = ", g.word(s.Value))
	default:
		b.WriteString(Placeholder)
	}
}

// ── Callables ─────────────────────────────────────────────────────────────────

// function writes:
//
//	<scope> function <name>(<args>)[ as <kind>]
//	<body>end function
func (g *Generator) function(b *strings.Builder, fn *ast.Function) {
	b.WriteString(g.signature(fn.Scope, "function", fn.Name, fn.Arguments))
	if fn.Kind != nil {
		b.WriteString(" as ")
		b.WriteString(g.word(*fn.Kind))
	}
	b.WriteByte('\n')
	g.block(b, fn.Body)
	b.WriteString("end function\n")
}

func (g *Generator) subroutine(b *strings.Builder, sub *ast.Subroutine) {
	b.WriteString(g.signature(sub.Scope, "sub", sub.Name, sub.Arguments))
	b.WriteByte('\n')
	g.block(b, sub.Body)
	b.WriteString("end sub\n")
}

// signature renders "<scope> <keyword> <name>(<args>)". Every argument ends
// with ", "; the last one is cut off so the list has no trailing separator.
func (g *Generator) signature(scope ast.Token, keyword string, name ast.Token, args []*ast.Argument) string {
	var sig strings.Builder
	sig.WriteString(g.word(scope))
	sig.WriteString(" ")
	sig.WriteString(keyword)
	sig.WriteString(" ")
	sig.WriteString(g.word(name))
	sig.WriteString("(")
	for _, a := range args {
		g.argument(&sig, a)
	}
	out := sig.String()
	if len(args) > 0 {
		out = out[:len(out)-2]
	}
	return out + ")"
}

// argument writes "[<modifier> ]<name> as <kind>, ".
func (g *Generator) argument(b *strings.Builder, a *ast.Argument) {
	if a.Modifier != nil {
		b.WriteString(g.word(*a.Modifier))
		b.WriteString(" ")
	}
	b.WriteString(g.word(a.Name))
	b.WriteString(" as ")
	b.WriteString(g.word(a.Kind))
	b.WriteString(", ")
}

// ── Declarations ──────────────────────────────────────────────────────────────

func (g *Generator) typeDecl(b *strings.Builder, td *ast.TypeDecl) {
	g.line(b, "type ", g.word(td.Name))
	for _, a := range td.Attributes {
		g.statement(b, a)
	}
	b.WriteString("end type\n")
}

func (g *Generator) enumDecl(b *strings.Builder, ed *ast.EnumDecl) {
	if ed.Scope != nil {
		b.WriteString(g.word(*ed.Scope))
		b.WriteString(" ")
	}
	g.line(b, "enum ", g.word(ed.Name))
	for _, a := range ed.Attributes {
		g.enumAttribute(b, a)
	}
	b.WriteString("end enum\n")
}

func (g *Generator) enumAttribute(b *strings.Builder, a *ast.EnumAttribute) {
	b.WriteString(g.word(a.Name))
	if a.Value != nil {
		b.WriteString(" = ")
		b.WriteString(g.word(*a.Value))
	}
	b.WriteByte('\n')
}

// constant writes "<scope> const <name>[ as <kind>][ * <length>] = <value>".
func (g *Generator) constant(b *strings.Builder, c *ast.Constant) {
	b.WriteString(g.word(c.Scope))
	b.WriteString(" const ")
	b.WriteString(g.word(c.Name))
	if c.Kind != nil {
		b.WriteString(" as ")
		b.WriteString(g.word(*c.Kind))
	}
	if c.Length != nil {
		b.WriteString(" * ")
		b.WriteString(g.word(*c.Length))
	}
	g.line(b, " = ", g.word(c.Value))
}

// ── Directives ────────────────────────────────────────────────────────────────

func (g *Generator) option(b *strings.Builder, o *ast.Option) {
	b.WriteString("option ")
	b.WriteString(g.word(o.Config))
	if o.Value != nil {
		b.WriteString(" ")
		b.WriteString(g.word(*o.Value))
	}
	b.WriteByte('\n')
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// word returns the text written for a token.
func (g *Generator) word(t ast.Token) string {
	if t.Type == ast.IDENT && !g.opts.PreserveCase {
		return lower(t.Literal)
	}
	return t.Lexeme()
}

// lower lowercases s one byte at a time, reading each byte as a Latin-1
// character the way the lexer does.
func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if r := unicode.ToLower(rune(c)); r < 0x100 {
			b[i] = byte(r)
		}
	}
	return string(b)
}

// line writes parts followed by a newline.
func (g *Generator) line(b *strings.Builder, parts ...string) {
	for _, p := range parts {
		b.WriteString(p)
	}
	b.WriteByte('\n')
}
