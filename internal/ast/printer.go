package ast

import (
	"fmt"
	"strings"
)

// DebugPrinter renders a tree in a compact bracketed form, e.g.
//
//	1 + 2 * x      ->  [+ l=`1` r=[* l=`2` r=x]]
//	{ a = 1, 2 }   ->  Tc[`a`=`1` ?=`2` ]
//	obj:m(1)       ->  [obj:m a:`1`]
//
// The format is stable and is what the tests compare against.
type DebugPrinter struct{}

var _ Visitor[string] = DebugPrinter{}

// Debug renders an expression with DebugPrinter.
func Debug(node Expression) string {
	return AcceptExpression[string](node, DebugPrinter{})
}

// DebugArgs renders call arguments with DebugPrinter.
func DebugArgs(node Args) string {
	return AcceptArgs[string](node, DebugPrinter{})
}

// DebugField renders a table field with DebugPrinter.
func DebugField(node Field) string {
	return AcceptField[string](node, DebugPrinter{})
}

func (p DebugPrinter) VisitLiteral(node *Literal) string {
	return "`" + node.Token.Lexeme + "`"
}

func (p DebugPrinter) VisitUnary(node *Unary) string {
	return fmt.Sprintf("[%s r=%s]", node.Operator.Lexeme, AcceptExpression[string](node.Right, p))
}

func (p DebugPrinter) VisitBinary(node *Binary) string {
	return fmt.Sprintf("[%s l=%s r=%s]",
		node.Operator.Lexeme,
		AcceptExpression[string](node.Left, p),
		AcceptExpression[string](node.Right, p))
}

func (p DebugPrinter) VisitTableConstructor(node *TableConstructor) string {
	var sb strings.Builder
	sb.WriteString("Tc[")
	for _, field := range node.Fields {
		sb.WriteString(AcceptField[string](field, p))
	}
	sb.WriteString("]")
	return sb.String()
}

func (p DebugPrinter) VisitExpressionField(node *ExpressionField) string {
	return fmt.Sprintf("%s=%s ", AcceptExpression[string](node.Key, p), AcceptExpression[string](node.Value, p))
}

func (p DebugPrinter) VisitNamedField(node *NamedField) string {
	return fmt.Sprintf("`%s`=%s ", node.Key.Name(), AcceptExpression[string](node.Value, p))
}

func (p DebugPrinter) VisitAnonymousField(node *AnonymousField) string {
	return fmt.Sprintf("?=%s ", AcceptExpression[string](node.Value, p))
}

func (p DebugPrinter) VisitGroup(node *Group) string {
	return "(" + AcceptExpression[string](node.Expression, p) + ")"
}

func (p DebugPrinter) VisitIdentifier(node *Identifier) string {
	return node.Name()
}

func (p DebugPrinter) VisitMemberAccess(node *MemberAccess) string {
	return AcceptPrefix[string](node.Reference, p) + "." + node.Member.Name()
}

func (p DebugPrinter) VisitExpressionMemberAccess(node *ExpressionMemberAccess) string {
	return fmt.Sprintf("%s[%s]", AcceptPrefix[string](node.Reference, p), AcceptExpression[string](node.Member, p))
}

func (p DebugPrinter) VisitCall(node *Call) string {
	return fmt.Sprintf("[%s a:%s]", AcceptPrefix[string](node.Callee, p), AcceptArgs[string](node.Args, p))
}

func (p DebugPrinter) VisitMethodCall(node *MethodCall) string {
	return fmt.Sprintf("[%s:%s a:%s]",
		AcceptPrefix[string](node.Callee, p),
		node.Method.Name(),
		AcceptArgs[string](node.Args, p))
}

func (p DebugPrinter) VisitExpressionListArgs(node *ExpressionListArgs) string {
	parts := make([]string, 0, len(node.Expressions))
	for _, e := range node.Expressions {
		parts = append(parts, AcceptExpression[string](e, p))
	}
	return strings.Join(parts, ", ")
}

func (p DebugPrinter) VisitTableArgs(node *TableArgs) string {
	return AcceptTableConstructor[string](node.Table, p)
}

func (p DebugPrinter) VisitStringArgs(node *StringArgs) string {
	return "`" + node.Token.Lexeme + "`"
}
