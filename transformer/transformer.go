// Package transformer rewrites a statement tree before code generation.
//
// Its one rewrite desugars "return a value" inside a function into the form
// the legacy dialect understands:
//
//	Return x          →   F = x
//	                      Exit Function
//
// where F is the name of the lexically enclosing function. The enclosing
// function is tracked with an explicit block stack: a frame is pushed before
// a function body is processed and popped after it.
//
// The input tree is never modified. Rewritten functions are rebuilt and every
// other statement is passed through as is.
package transformer

import (
	"github.com/metaphox/vbnorm/ast"
	"github.com/metaphox/vbnorm/cursor"
	"github.com/metaphox/vbnorm/internal/invariant"
)

// block is one frame of the lexical block stack.
type block struct {
	kind ast.TokenType // FUNCTION
	name ast.Token
}

// Transformer holds the state of one pass. Create one with [New].
type Transformer struct {
	statements *cursor.Cursor[ast.Statement]
	blocks     []block
}

// New creates a Transformer over statements.
func New(statements []ast.Statement) *Transformer {
	return &Transformer{statements: cursor.New(statements)}
}

// Transform runs the pass over statements and returns the new tree.
func Transform(statements []ast.Statement) []ast.Statement {
	return New(statements).Transform()
}

// Transform processes the remaining top-level statements.
func (t *Transformer) Transform() []ast.Statement {
	var out []ast.Statement
	for {
		stmt, ok := t.statements.Next()
		if !ok {
			return out
		}
		if fn, isFn := stmt.(*ast.Function); isFn {
			stmt = t.transformFunction(fn)
		}
		out = append(out, stmt)
	}
}

func (t *Transformer) push(b block) { t.blocks = append(t.blocks, b) }

func (t *Transformer) pop() {
	invariant.Invariant(len(t.blocks) > 0, "block stack underflow")
	t.blocks = t.blocks[:len(t.blocks)-1]
}

// enclosing returns the innermost block frame.
func (t *Transformer) enclosing() block {
	invariant.Precondition(len(t.blocks) > 0, "no enclosing block")
	return t.blocks[len(t.blocks)-1]
}

// transformFunction returns a copy of fn with its body rewritten.
func (t *Transformer) transformFunction(fn *ast.Function) *ast.Function {
	t.push(block{kind: ast.FUNCTION, name: fn.Name})
	body := t.transformFunctionBody(fn.Body)
	t.pop()

	return &ast.Function{
		Scope:     fn.Scope,
		Name:      fn.Name,
		Arguments: fn.Arguments,
		Kind:      fn.Kind,
		Body:      body,
	}
}

func (t *Transformer) transformFunctionBody(body []ast.Statement) []ast.Statement {
	out := make([]ast.Statement, 0, len(body))
	c := cursor.New(body)
	for {
		stmt, ok := c.Next()
		if !ok {
			return out
		}
		if ret, isRet := stmt.(*ast.Return); isRet {
			out = append(out, t.transformFunctionReturn(ret)...)
			continue
		}
		out = append(out, stmt)
	}
}

// transformFunctionReturn replaces Return V with an assignment to the
// enclosing function's name followed by Exit Function.
func (t *Transformer) transformFunctionReturn(ret *ast.Return) []ast.Statement {
	invariant.Precondition(ret.Value != nil, "return without a value inside a function body")
	b := t.enclosing()
	return []ast.Statement{
		&ast.Assignment{Left: b.name, Right: *ret.Value},
		&ast.Exit{Block: ast.NewToken(b.kind, "")},
	}
}
