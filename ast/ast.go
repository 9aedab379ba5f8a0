package ast

// The statement tree. The hierarchy is:
//
//	Statement (interface)
//	  Declarations:  TypeDecl, TypeAttribute, EnumDecl, EnumAttribute,
//	                 Variable, Constant
//	  Callables:     Subroutine, Function, Argument
//	  Control:       Exit, Assignment, Return
//	  Directives:    Option, Attribute
//
// The tree is owned: every node has exactly one parent and slices model
// parent→child ownership. Passes that rewrite the tree build new nodes and
// never mutate a node reachable from their input.
//
// Optional parts are *Token; nil means "not written in the source".

import (
	"fmt"
	"strings"
)

// Statement is implemented by every node of the statement tree.
type Statement interface {
	// String returns a compact, human-readable representation of the node.
	// It is intended for debugging and test output, not for code generation.
	String() string
	statementNode()
}

// ── Declarations ──────────────────────────────────────────────────────────────

// TypeDecl is a user-defined record type.
//
//	Type Point
//	    X As Integer
//	    Y As Integer
//	End Type
type TypeDecl struct {
	Name       Token
	Attributes []*TypeAttribute
}

// TypeAttribute is one member line of a TypeDecl: X As Integer
type TypeAttribute struct {
	Name Token
	Kind Token
}

// EnumDecl is an enumeration. Scope is nil for module-default visibility,
// which is distinct from an explicit Public or Private.
//
//	Private Enum Color
//	    Red = 1
//	    Green
//	End Enum
type EnumDecl struct {
	Scope      *Token
	Name       Token
	Attributes []*EnumAttribute
}

// EnumAttribute is one member of an EnumDecl. Value is nil when no explicit
// number was written.
type EnumAttribute struct {
	Name  Token
	Value *Token
}

// Variable declares a variable: Dim count As Long
type Variable struct {
	Scope Token // Public, Private, Static or Dim
	Name  Token
	Kind  Token
}

// Constant declares a constant. Kind and Length are independent:
//
//	Private Const Name As String * 8 = "abc"
type Constant struct {
	Scope  Token
	Name   Token
	Kind   *Token
	Length *Token
	Value  Token
}

// ── Callables ─────────────────────────────────────────────────────────────────

// Subroutine is a Sub definition.
type Subroutine struct {
	Scope     Token
	Name      Token
	Arguments []*Argument
	Body      []Statement
}

// Function is a Function definition. Kind is nil when no return type was written.
type Function struct {
	Scope     Token
	Name      Token
	Arguments []*Argument
	Kind      *Token
	Body      []Statement
}

// Argument is one parameter of a callable: ByVal count As Long
// Modifier is nil when neither ByVal nor ByRef was written.
type Argument struct {
	Modifier *Token
	Name     Token
	Kind     Token
}

// ── Control ───────────────────────────────────────────────────────────────────

// Exit leaves the enclosing block named by Block: Exit Function
type Exit struct {
	Block Token
}

// Assignment stores a single value token: total = 10
type Assignment struct {
	Left  Token
	Right Token
}

// Return leaves the enclosing callable. Value is nil for a bare Return,
// which the parser only produces inside subroutine bodies.
type Return struct {
	Value *Token
}

// ── Directives ────────────────────────────────────────────────────────────────

// Option is a module configuration line. Value is nil for Option Explicit.
//
//	Option Base 1
//	Option Compare Text
//	Option Private Module
type Option struct {
	Config Token
	Value  *Token
}

// Attribute is a metadata line: Attribute VB_Name = "Module1"
type Attribute struct {
	Name  Token
	Value Token
}

func (*TypeDecl) statementNode()      {}
func (*TypeAttribute) statementNode() {}
func (*EnumDecl) statementNode()      {}
func (*EnumAttribute) statementNode() {}
func (*Variable) statementNode()      {}
func (*Constant) statementNode()      {}
func (*Subroutine) statementNode()    {}
func (*Function) statementNode()      {}
func (*Argument) statementNode()      {}
func (*Exit) statementNode()          {}
func (*Assignment) statementNode()    {}
func (*Return) statementNode()        {}
func (*Option) statementNode()        {}
func (*Attribute) statementNode()     {}

// ── Debug strings ─────────────────────────────────────────────────────────────

func (s *TypeDecl) String() string {
	return fmt.Sprintf("Type %s { %d attributes }", s.Name, len(s.Attributes))
}

func (s *TypeAttribute) String() string {
	return fmt.Sprintf("%s As %s", s.Name, s.Kind)
}

func (s *EnumDecl) String() string {
	return fmt.Sprintf("%sEnum %s { %d attributes }", optPrefix(s.Scope), s.Name, len(s.Attributes))
}

func (s *EnumAttribute) String() string {
	if s.Value == nil {
		return s.Name.String()
	}
	return fmt.Sprintf("%s = %s", s.Name, s.Value)
}

func (s *Variable) String() string {
	return fmt.Sprintf("%s %s As %s", s.Scope, s.Name, s.Kind)
}

func (s *Constant) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Const %s", s.Scope, s.Name)
	if s.Kind != nil {
		fmt.Fprintf(&b, " As %s", s.Kind)
	}
	if s.Length != nil {
		fmt.Fprintf(&b, " * %s", s.Length)
	}
	fmt.Fprintf(&b, " = %s", s.Value)
	return b.String()
}

func (s *Subroutine) String() string {
	return fmt.Sprintf("%s Sub %s(%s) { %d statements }", s.Scope, s.Name, argList(s.Arguments), len(s.Body))
}

func (s *Function) String() string {
	ret := ""
	if s.Kind != nil {
		ret = " As " + s.Kind.String()
	}
	return fmt.Sprintf("%s Function %s(%s)%s { %d statements }", s.Scope, s.Name, argList(s.Arguments), ret, len(s.Body))
}

func (s *Argument) String() string {
	return fmt.Sprintf("%s%s As %s", optPrefix(s.Modifier), s.Name, s.Kind)
}

func (s *Exit) String() string { return "Exit " + s.Block.String() }

func (s *Assignment) String() string { return fmt.Sprintf("%s = %s", s.Left, s.Right) }

func (s *Return) String() string {
	if s.Value == nil {
		return "Return"
	}
	return "Return " + s.Value.String()
}

func (s *Option) String() string {
	if s.Value == nil {
		return "Option " + s.Config.String()
	}
	return fmt.Sprintf("Option %s %s", s.Config, s.Value)
}

func (s *Attribute) String() string { return fmt.Sprintf("Attribute %s = %s", s.Name, s.Value) }

// optPrefix renders an optional token followed by a space, or "" when absent.
func optPrefix(t *Token) string {
	if t == nil {
		return ""
	}
	return t.String() + " "
}

func argList(args []*Argument) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return strings.Join(parts, ", ")
}

// TokenPtr returns a pointer to a copy of t. It is a convenience for building
// optional fields without sharing a token between two nodes.
func TokenPtr(t Token) *Token {
	return &t
}
