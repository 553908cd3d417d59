package ast

import (
	"bytes"
	"strings"

	"github.com/mlclang/mlc/internal/source"
)

// LiteralKind classifies a Literal expression.
type LiteralKind int

const (
	LitInteger LiteralKind = iota
	LitFloat
	LitString
	LitCharacter
	LitBoolean
	LitNull
)

var literalKindNames = [...]string{
	LitInteger:   "Integer",
	LitFloat:     "Float",
	LitString:    "String",
	LitCharacter: "Character",
	LitBoolean:   "Boolean",
	LitNull:      "Null",
}

func (k LiteralKind) String() string {
	if k < 0 || int(k) >= len(literalKindNames) {
		return "Unknown"
	}
	return literalKindNames[k]
}

// BinaryExpression is an infix operation: left <op> right.
type BinaryExpression struct {
	Left     Expression
	Operator string
	Right    Expression
	Loc      source.Span
}

func (e *BinaryExpression) expressionNode()   {}
func (e *BinaryExpression) Span() source.Span { return e.Loc }
func (e *BinaryExpression) Accept(v Visitor)  { v.VisitBinary(e) }
func (e *BinaryExpression) String() string {
	return "(" + e.Left.String() + " " + e.Operator + " " + e.Right.String() + ")"
}

// UnaryExpression is a prefix or postfix operation on one operand.
type UnaryExpression struct {
	Operator string
	Operand  Expression
	Prefix   bool
	Loc      source.Span
}

func (e *UnaryExpression) expressionNode()   {}
func (e *UnaryExpression) Span() source.Span { return e.Loc }
func (e *UnaryExpression) Accept(v Visitor)  { v.VisitUnary(e) }
func (e *UnaryExpression) String() string {
	if e.Prefix {
		return "(" + e.Operator + e.Operand.String() + ")"
	}
	return "(" + e.Operand.String() + e.Operator + ")"
}

// Literal is a literal value. Value holds the raw lexeme, including the
// quotes for string and character literals.
type Literal struct {
	Kind  LiteralKind
	Value string
	Loc   source.Span
}

func (e *Literal) expressionNode()   {}
func (e *Literal) Span() source.Span { return e.Loc }
func (e *Literal) Accept(v Visitor)  { v.VisitLiteral(e) }
func (e *Literal) String() string    { return e.Value }

// Identifier is a name reference. `this` parses to an Identifier named
// "this".
type Identifier struct {
	Name string
	Loc  source.Span
}

func (e *Identifier) expressionNode()   {}
func (e *Identifier) Span() source.Span { return e.Loc }
func (e *Identifier) Accept(v Visitor)  { v.VisitIdentifier(e) }
func (e *Identifier) String() string    { return e.Name }

// ArrayIdentifier is an array type expression: an element type name with
// a size expression. An unsized array records the literal -1.
type ArrayIdentifier struct {
	ElementType string
	Size        Expression
	Loc         source.Span
}

func (e *ArrayIdentifier) expressionNode()   {}
func (e *ArrayIdentifier) Span() source.Span { return e.Loc }
func (e *ArrayIdentifier) Accept(v Visitor)  { v.VisitArrayIdentifier(e) }
func (e *ArrayIdentifier) String() string {
	return e.ElementType + "[" + e.Size.String() + "]"
}

// IndexExpression is a subscript: array[index].
type IndexExpression struct {
	Array Expression
	Index Expression
	Loc   source.Span
}

func (e *IndexExpression) expressionNode()   {}
func (e *IndexExpression) Span() source.Span { return e.Loc }
func (e *IndexExpression) Accept(v Visitor)  { v.VisitIndex(e) }
func (e *IndexExpression) String() string {
	return e.Array.String() + "[" + e.Index.String() + "]"
}

// ArrayLiteral is a bracketed element list: [a, b, c].
type ArrayLiteral struct {
	Elements []Expression
	Loc      source.Span
}

func (e *ArrayLiteral) expressionNode()   {}
func (e *ArrayLiteral) Span() source.Span { return e.Loc }
func (e *ArrayLiteral) Accept(v Visitor)  { v.VisitArrayLiteral(e) }
func (e *ArrayLiteral) String() string {
	parts := make([]string, len(e.Elements))
	for i, el := range e.Elements {
		parts[i] = el.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// CallExpression is an invocation: callee(arguments).
type CallExpression struct {
	Callee    Expression
	Arguments []Expression
	Loc       source.Span
}

func (e *CallExpression) expressionNode()   {}
func (e *CallExpression) Span() source.Span { return e.Loc }
func (e *CallExpression) Accept(v Visitor)  { v.VisitCall(e) }
func (e *CallExpression) String() string {
	var out bytes.Buffer
	out.WriteString(e.Callee.String())
	out.WriteString("(")
	for i, arg := range e.Arguments {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(arg.String())
	}
	out.WriteString(")")
	return out.String()
}

// AttributeExpression is member access: object.attribute. The attribute
// is itself an expression, either an Identifier (field access) or a
// CallExpression (method call).
type AttributeExpression struct {
	Object    Expression
	Attribute Expression
	Loc       source.Span
}

func (e *AttributeExpression) expressionNode()   {}
func (e *AttributeExpression) Span() source.Span { return e.Loc }
func (e *AttributeExpression) Accept(v Visitor)  { v.VisitAttribute(e) }
func (e *AttributeExpression) String() string {
	return e.Object.String() + "." + e.Attribute.String()
}
