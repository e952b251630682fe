package ast

import (
	"encoding/json"

	"github.com/zamotany/lunatic/internal/position"
)

// JSONEncoder converts a tree into generic JSON values. Every object has a
// "type" key naming the node and a "span" key with its source range.
type JSONEncoder struct {
	// OmitSpans drops the "span" keys, which keeps golden output short.
	OmitSpans bool
}

var _ Visitor[map[string]any] = JSONEncoder{}

// Value returns the JSON value of an expression.
func (e JSONEncoder) Value(node Expression) map[string]any {
	return AcceptExpression[map[string]any](node, e)
}

// Marshal encodes an expression as JSON.
func (e JSONEncoder) Marshal(node Expression) ([]byte, error) {
	return json.Marshal(e.Value(node))
}

// MarshalIndent encodes an expression as indented JSON.
func (e JSONEncoder) MarshalIndent(node Expression) ([]byte, error) {
	return json.MarshalIndent(e.Value(node), "", "  ")
}

func (e JSONEncoder) object(nodeType string, node Node) map[string]any {
	obj := map[string]any{"type": nodeType}
	if !e.OmitSpans {
		obj["span"] = spanValue(node.GetSpan())
	}
	return obj
}

func spanValue(span position.Span) map[string]any {
	return map[string]any{
		"start": map[string]int{"line": span.Start.Line, "column": span.Start.Column, "offset": span.Start.Offset},
		"end":   map[string]int{"line": span.End.Line, "column": span.End.Column, "offset": span.End.Offset},
	}
}

func (e JSONEncoder) expressions(nodes []Expression) []any {
	out := make([]any, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, e.Value(n))
	}
	return out
}

func (e JSONEncoder) VisitLiteral(node *Literal) map[string]any {
	obj := e.object("Literal", node)
	obj["kind"] = node.Token.Type.String()
	obj["lexeme"] = node.Token.Lexeme
	if node.Token.HasLiteral() {
		obj["value"] = node.Token.Literal
	}
	return obj
}

func (e JSONEncoder) VisitUnary(node *Unary) map[string]any {
	obj := e.object("Unary", node)
	obj["operator"] = node.Operator.Lexeme
	obj["right"] = e.Value(node.Right)
	return obj
}

func (e JSONEncoder) VisitBinary(node *Binary) map[string]any {
	obj := e.object("Binary", node)
	obj["operator"] = node.Operator.Lexeme
	obj["left"] = e.Value(node.Left)
	obj["right"] = e.Value(node.Right)
	return obj
}

func (e JSONEncoder) VisitTableConstructor(node *TableConstructor) map[string]any {
	obj := e.object("TableConstructor", node)
	fields := make([]any, 0, len(node.Fields))
	for _, f := range node.Fields {
		fields = append(fields, AcceptField[map[string]any](f, e))
	}
	obj["fields"] = fields
	return obj
}

func (e JSONEncoder) VisitExpressionField(node *ExpressionField) map[string]any {
	obj := e.object("ExpressionField", node)
	obj["key"] = e.Value(node.Key)
	obj["value"] = e.Value(node.Value)
	return obj
}

func (e JSONEncoder) VisitNamedField(node *NamedField) map[string]any {
	obj := e.object("NamedField", node)
	obj["key"] = node.Key.Name()
	obj["value"] = e.Value(node.Value)
	return obj
}

func (e JSONEncoder) VisitAnonymousField(node *AnonymousField) map[string]any {
	obj := e.object("AnonymousField", node)
	obj["value"] = e.Value(node.Value)
	return obj
}

func (e JSONEncoder) VisitGroup(node *Group) map[string]any {
	obj := e.object("Group", node)
	obj["expression"] = e.Value(node.Expression)
	return obj
}

func (e JSONEncoder) VisitIdentifier(node *Identifier) map[string]any {
	obj := e.object("Identifier", node)
	obj["name"] = node.Name()
	return obj
}

func (e JSONEncoder) VisitMemberAccess(node *MemberAccess) map[string]any {
	obj := e.object("MemberAccess", node)
	obj["reference"] = e.Value(node.Reference)
	obj["member"] = node.Member.Name()
	return obj
}

func (e JSONEncoder) VisitExpressionMemberAccess(node *ExpressionMemberAccess) map[string]any {
	obj := e.object("ExpressionMemberAccess", node)
	obj["reference"] = e.Value(node.Reference)
	obj["member"] = e.Value(node.Member)
	return obj
}

func (e JSONEncoder) VisitCall(node *Call) map[string]any {
	obj := e.object("Call", node)
	obj["callee"] = e.Value(node.Callee)
	obj["args"] = AcceptArgs[map[string]any](node.Args, e)
	return obj
}

func (e JSONEncoder) VisitMethodCall(node *MethodCall) map[string]any {
	obj := e.object("MethodCall", node)
	obj["callee"] = e.Value(node.Callee)
	obj["method"] = node.Method.Name()
	obj["args"] = AcceptArgs[map[string]any](node.Args, e)
	return obj
}

func (e JSONEncoder) VisitExpressionListArgs(node *ExpressionListArgs) map[string]any {
	obj := e.object("ExpressionListArgs", node)
	obj["expressions"] = e.expressions(node.Expressions)
	return obj
}

func (e JSONEncoder) VisitTableArgs(node *TableArgs) map[string]any {
	obj := e.object("TableArgs", node)
	obj["table"] = e.Value(node.Table)
	return obj
}

func (e JSONEncoder) VisitStringArgs(node *StringArgs) map[string]any {
	obj := e.object("StringArgs", node)
	obj["lexeme"] = node.Token.Lexeme
	obj["value"] = node.Token.Literal
	return obj
}
