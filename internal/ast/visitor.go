package ast

import "fmt"

// The visitor interfaces mirror how the sum types nest, so a single value
// implementing Visitor[T] can interpret a whole tree. Dispatch goes through
// the Accept* functions because Go methods cannot take type parameters.

// VariableVisitor handles every Variable variant.
type VariableVisitor[T any] interface {
	VisitIdentifier(node *Identifier) T
	VisitMemberAccess(node *MemberAccess) T
	VisitExpressionMemberAccess(node *ExpressionMemberAccess) T
}

// FunctionCallVisitor handles every FunctionCall variant.
type FunctionCallVisitor[T any] interface {
	VisitCall(node *Call) T
	VisitMethodCall(node *MethodCall) T
}

// PrefixVisitor handles every Prefix variant.
type PrefixVisitor[T any] interface {
	VariableVisitor[T]
	FunctionCallVisitor[T]
	VisitGroup(node *Group) T
}

// FieldVisitor handles every Field variant.
type FieldVisitor[T any] interface {
	VisitExpressionField(node *ExpressionField) T
	VisitNamedField(node *NamedField) T
	VisitAnonymousField(node *AnonymousField) T
}

// TableConstructorVisitor handles a table constructor and its fields.
type TableConstructorVisitor[T any] interface {
	FieldVisitor[T]
	VisitTableConstructor(node *TableConstructor) T
}

// ArgsVisitor handles every Args variant.
type ArgsVisitor[T any] interface {
	VisitExpressionListArgs(node *ExpressionListArgs) T
	VisitTableArgs(node *TableArgs) T
	VisitStringArgs(node *StringArgs) T
}

// Visitor handles every node in an expression tree.
type Visitor[T any] interface {
	PrefixVisitor[T]
	TableConstructorVisitor[T]
	ArgsVisitor[T]
	VisitLiteral(node *Literal) T
	VisitUnary(node *Unary) T
	VisitBinary(node *Binary) T
}

// AcceptExpression dispatches node to the matching method of v.
func AcceptExpression[T any](node Expression, v Visitor[T]) T {
	switch n := node.(type) {
	case *Literal:
		return v.VisitLiteral(n)
	case *Unary:
		return v.VisitUnary(n)
	case *Binary:
		return v.VisitBinary(n)
	case *TableConstructor:
		return v.VisitTableConstructor(n)
	case Prefix:
		return AcceptPrefix[T](n, v)
	}
	panic(fmt.Sprintf("ast: unexpected expression %T", node))
}

// AcceptPrefix dispatches node to the matching method of v.
func AcceptPrefix[T any](node Prefix, v PrefixVisitor[T]) T {
	switch n := node.(type) {
	case *Group:
		return v.VisitGroup(n)
	case Variable:
		return AcceptVariable[T](n, v)
	case FunctionCall:
		return AcceptFunctionCall[T](n, v)
	}
	panic(fmt.Sprintf("ast: unexpected prefix %T", node))
}

// AcceptVariable dispatches node to the matching method of v.
func AcceptVariable[T any](node Variable, v VariableVisitor[T]) T {
	switch n := node.(type) {
	case *Identifier:
		return v.VisitIdentifier(n)
	case *MemberAccess:
		return v.VisitMemberAccess(n)
	case *ExpressionMemberAccess:
		return v.VisitExpressionMemberAccess(n)
	}
	panic(fmt.Sprintf("ast: unexpected variable %T", node))
}

// AcceptFunctionCall dispatches node to the matching method of v.
func AcceptFunctionCall[T any](node FunctionCall, v FunctionCallVisitor[T]) T {
	switch n := node.(type) {
	case *Call:
		return v.VisitCall(n)
	case *MethodCall:
		return v.VisitMethodCall(n)
	}
	panic(fmt.Sprintf("ast: unexpected function call %T", node))
}

// AcceptArgs dispatches node to the matching method of v.
func AcceptArgs[T any](node Args, v ArgsVisitor[T]) T {
	switch n := node.(type) {
	case *ExpressionListArgs:
		return v.VisitExpressionListArgs(n)
	case *TableArgs:
		return v.VisitTableArgs(n)
	case *StringArgs:
		return v.VisitStringArgs(n)
	}
	panic(fmt.Sprintf("ast: unexpected args %T", node))
}

// AcceptField dispatches node to the matching method of v.
func AcceptField[T any](node Field, v FieldVisitor[T]) T {
	switch n := node.(type) {
	case *ExpressionField:
		return v.VisitExpressionField(n)
	case *NamedField:
		return v.VisitNamedField(n)
	case *AnonymousField:
		return v.VisitAnonymousField(n)
	}
	panic(fmt.Sprintf("ast: unexpected field %T", node))
}

// AcceptTableConstructor hands node to v.
func AcceptTableConstructor[T any](node *TableConstructor, v TableConstructorVisitor[T]) T {
	return v.VisitTableConstructor(node)
}

// Inspect walks the tree rooted at node in depth-first order, calling f for
// each node before its children. Children are skipped when f returns false.
func Inspect(node Node, f func(Node) bool) {
	w := &inspector{f: f}
	w.node(node)
}

type inspector struct {
	f func(Node) bool
}

func (w *inspector) node(node Node) {
	switch n := node.(type) {
	case Expression:
		AcceptExpression[struct{}](n, w)
	case Args:
		AcceptArgs[struct{}](n, w)
	case Field:
		AcceptField[struct{}](n, w)
	}
}

func (w *inspector) VisitLiteral(node *Literal) struct{} {
	w.f(node)
	return struct{}{}
}

func (w *inspector) VisitUnary(node *Unary) struct{} {
	if w.f(node) {
		w.node(node.Right)
	}
	return struct{}{}
}

func (w *inspector) VisitBinary(node *Binary) struct{} {
	if w.f(node) {
		w.node(node.Left)
		w.node(node.Right)
	}
	return struct{}{}
}

func (w *inspector) VisitTableConstructor(node *TableConstructor) struct{} {
	if w.f(node) {
		for _, field := range node.Fields {
			w.node(field)
		}
	}
	return struct{}{}
}

func (w *inspector) VisitGroup(node *Group) struct{} {
	if w.f(node) {
		w.node(node.Expression)
	}
	return struct{}{}
}

func (w *inspector) VisitIdentifier(node *Identifier) struct{} {
	w.f(node)
	return struct{}{}
}

func (w *inspector) VisitMemberAccess(node *MemberAccess) struct{} {
	if w.f(node) {
		w.node(node.Reference)
		w.node(node.Member)
	}
	return struct{}{}
}

func (w *inspector) VisitExpressionMemberAccess(node *ExpressionMemberAccess) struct{} {
	if w.f(node) {
		w.node(node.Reference)
		w.node(node.Member)
	}
	return struct{}{}
}

func (w *inspector) VisitCall(node *Call) struct{} {
	if w.f(node) {
		w.node(node.Callee)
		w.node(node.Args)
	}
	return struct{}{}
}

func (w *inspector) VisitMethodCall(node *MethodCall) struct{} {
	if w.f(node) {
		w.node(node.Callee)
		w.node(node.Method)
		w.node(node.Args)
	}
	return struct{}{}
}

func (w *inspector) VisitExpressionListArgs(node *ExpressionListArgs) struct{} {
	if w.f(node) {
		for _, e := range node.Expressions {
			w.node(e)
		}
	}
	return struct{}{}
}

func (w *inspector) VisitTableArgs(node *TableArgs) struct{} {
	if w.f(node) {
		w.node(node.Table)
	}
	return struct{}{}
}

func (w *inspector) VisitStringArgs(node *StringArgs) struct{} {
	w.f(node)
	return struct{}{}
}

func (w *inspector) VisitExpressionField(node *ExpressionField) struct{} {
	if w.f(node) {
		w.node(node.Key)
		w.node(node.Value)
	}
	return struct{}{}
}

func (w *inspector) VisitNamedField(node *NamedField) struct{} {
	if w.f(node) {
		w.node(node.Key)
		w.node(node.Value)
	}
	return struct{}{}
}

func (w *inspector) VisitAnonymousField(node *AnonymousField) struct{} {
	if w.f(node) {
		w.node(node.Value)
	}
	return struct{}{}
}
