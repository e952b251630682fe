// Package ast defines the expression tree produced by the parser.
//
// Every node that carries a token points into the lexer's output slice, so a
// tree is only valid while that slice is alive. Nodes are never modified once
// the parser returns them. Interpretation of a tree is done by visitors (see
// visitor.go), never by methods on the nodes themselves.
package ast

import (
	"github.com/zamotany/lunatic/internal/lexer"
	"github.com/zamotany/lunatic/internal/position"
)

// Node is the base interface for all AST nodes
type Node interface {
	// GetSpan returns the source span covered by this node
	GetSpan() position.Span
	// String returns the debug printer rendering of the node
	String() string
}

// Expression represents all expression nodes in the AST
type Expression interface {
	Node
	expressionNode()
}

// Prefix is an expression that may start a call or member access chain.
type Prefix interface {
	Expression
	prefixNode()
}

// Variable is a prefix that names a storage location.
type Variable interface {
	Prefix
	variableNode()
}

// FunctionCall is a prefix that invokes a function or method.
type FunctionCall interface {
	Prefix
	functionCallNode()
}

// Args are the arguments of a call.
type Args interface {
	Node
	argsNode()
}

// Field is one entry of a table constructor.
type Field interface {
	Node
	fieldNode()
}

// ===== Expressions =====

// Literal is nil, true, false, a numeral, a string or "...".
type Literal struct {
	Token *lexer.Token
}

func (l *Literal) GetSpan() position.Span { return l.Token.Span() }
func (l *Literal) String() string         { return Debug(l) }
func (l *Literal) expressionNode()        {}

// Unary is a prefix operator applied to an operand: not # - ~
type Unary struct {
	Operator *lexer.Token
	Right    Expression
}

func (u *Unary) GetSpan() position.Span { return u.Operator.Span().Union(u.Right.GetSpan()) }
func (u *Unary) String() string         { return Debug(u) }
func (u *Unary) expressionNode()        {}

// Binary is an infix operation.
type Binary struct {
	Left     Expression
	Operator *lexer.Token
	Right    Expression
}

func (b *Binary) GetSpan() position.Span { return b.Left.GetSpan().Union(b.Right.GetSpan()) }
func (b *Binary) String() string         { return Debug(b) }
func (b *Binary) expressionNode()        {}

// TableConstructor is a { ... } literal. Fields keep source order.
type TableConstructor struct {
	LBrace *lexer.Token
	Fields []Field
	RBrace *lexer.Token
}

func (t *TableConstructor) GetSpan() position.Span {
	return t.LBrace.Span().Union(t.RBrace.Span())
}
func (t *TableConstructor) String() string { return Debug(t) }
func (t *TableConstructor) expressionNode() {}

// ===== Prefixes =====

// Group is a parenthesized expression.
type Group struct {
	LParen     *lexer.Token
	Expression Expression
	RParen     *lexer.Token
}

func (g *Group) GetSpan() position.Span { return g.LParen.Span().Union(g.RParen.Span()) }
func (g *Group) String() string         { return Debug(g) }
func (g *Group) expressionNode()        {}
func (g *Group) prefixNode()            {}

// Identifier is a name. Used on its own it is a variable; it also appears
// as a member name, a method name and a table field key.
type Identifier struct {
	Token *lexer.Token
}

// Name returns the identifier text.
func (i *Identifier) Name() string { return i.Token.Lexeme }

func (i *Identifier) GetSpan() position.Span { return i.Token.Span() }
func (i *Identifier) String() string         { return Debug(i) }
func (i *Identifier) expressionNode()        {}
func (i *Identifier) prefixNode()            {}
func (i *Identifier) variableNode()          {}

// MemberAccess is reference.member
type MemberAccess struct {
	Reference Prefix
	Member    *Identifier
}

func (m *MemberAccess) GetSpan() position.Span {
	return m.Reference.GetSpan().Union(m.Member.GetSpan())
}
func (m *MemberAccess) String() string { return Debug(m) }
func (m *MemberAccess) expressionNode() {}
func (m *MemberAccess) prefixNode()     {}
func (m *MemberAccess) variableNode()   {}

// ExpressionMemberAccess is reference[member]
type ExpressionMemberAccess struct {
	Reference Prefix
	Member    Expression
	RBracket  *lexer.Token
}

func (e *ExpressionMemberAccess) GetSpan() position.Span {
	return e.Reference.GetSpan().Union(e.RBracket.Span())
}
func (e *ExpressionMemberAccess) String() string { return Debug(e) }
func (e *ExpressionMemberAccess) expressionNode() {}
func (e *ExpressionMemberAccess) prefixNode()     {}
func (e *ExpressionMemberAccess) variableNode()   {}

// Call is callee args
type Call struct {
	Callee Prefix
	Args   Args
}

func (c *Call) GetSpan() position.Span { return c.Callee.GetSpan().Union(c.Args.GetSpan()) }
func (c *Call) String() string         { return Debug(c) }
func (c *Call) expressionNode()        {}
func (c *Call) prefixNode()            {}
func (c *Call) functionCallNode()      {}

// MethodCall is callee:method args
type MethodCall struct {
	Callee Prefix
	Method *Identifier
	Args   Args
}

func (m *MethodCall) GetSpan() position.Span { return m.Callee.GetSpan().Union(m.Args.GetSpan()) }
func (m *MethodCall) String() string         { return Debug(m) }
func (m *MethodCall) expressionNode()        {}
func (m *MethodCall) prefixNode()            {}
func (m *MethodCall) functionCallNode()      {}

// ===== Call arguments =====

// ExpressionListArgs is a parenthesized, possibly empty, argument list.
type ExpressionListArgs struct {
	LParen      *lexer.Token
	Expressions []Expression
	RParen      *lexer.Token
}

func (e *ExpressionListArgs) GetSpan() position.Span {
	return e.LParen.Span().Union(e.RParen.Span())
}
func (e *ExpressionListArgs) String() string { return DebugArgs(e) }
func (e *ExpressionListArgs) argsNode()      {}

// TableArgs is a table constructor passed as the only argument: f{...}
type TableArgs struct {
	Table *TableConstructor
}

func (t *TableArgs) GetSpan() position.Span { return t.Table.GetSpan() }
func (t *TableArgs) String() string         { return DebugArgs(t) }
func (t *TableArgs) argsNode()              {}

// StringArgs is a string literal passed as the only argument: f"..."
type StringArgs struct {
	Token *lexer.Token
}

func (s *StringArgs) GetSpan() position.Span { return s.Token.Span() }
func (s *StringArgs) String() string         { return DebugArgs(s) }
func (s *StringArgs) argsNode()              {}

// ===== Table fields =====

// ExpressionField is [key] = value
type ExpressionField struct {
	LBracket *lexer.Token
	Key      Expression
	Value    Expression
}

func (e *ExpressionField) GetSpan() position.Span {
	return e.LBracket.Span().Union(e.Value.GetSpan())
}
func (e *ExpressionField) String() string { return DebugField(e) }
func (e *ExpressionField) fieldNode()     {}

// NamedField is name = value
type NamedField struct {
	Key   *Identifier
	Value Expression
}

func (n *NamedField) GetSpan() position.Span { return n.Key.GetSpan().Union(n.Value.GetSpan()) }
func (n *NamedField) String() string         { return DebugField(n) }
func (n *NamedField) fieldNode()             {}

// AnonymousField is a positional value.
type AnonymousField struct {
	Value Expression
}

func (a *AnonymousField) GetSpan() position.Span { return a.Value.GetSpan() }
func (a *AnonymousField) String() string         { return DebugField(a) }
func (a *AnonymousField) fieldNode()             {}
