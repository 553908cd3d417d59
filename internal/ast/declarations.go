package ast

import (
	"bytes"

	"github.com/mlclang/mlc/internal/source"
)

// VariableDecl declares a variable, record field, class field, or
// function parameter. Type is an Identifier or ArrayIdentifier type
// expression; Value is the optional initializer.
type VariableDecl struct {
	Name      string
	Type      Expression
	Modifiers *ModifierStatement
	Value     Expression // nil when uninitialized
	Loc       source.Span
}

func (d *VariableDecl) statementNode()    {}
func (d *VariableDecl) declarationNode()  {}
func (d *VariableDecl) Span() source.Span { return d.Loc }
func (d *VariableDecl) Accept(v Visitor)  { v.VisitVariable(d) }
func (d *VariableDecl) String() string {
	var out bytes.Buffer
	out.WriteString("let ")
	out.WriteString(d.Name)
	if d.Type != nil {
		out.WriteString(": ")
		out.WriteString(d.Type.String())
	}
	if d.Value != nil {
		out.WriteString(" = ")
		out.WriteString(d.Value.String())
	}
	out.WriteString(";")
	return out.String()
}

// FunctionDecl declares a function or method. Params are variable
// declarations without `let` or trailing semicolons. A constructor is a
// FunctionDecl named "init" with the Init modifier set.
type FunctionDecl struct {
	Name       string
	ReturnType Expression // nil means no annotation
	Modifiers  *ModifierStatement
	Params     []*VariableDecl
	Body       *BlockStatement
	Loc        source.Span
}

func (d *FunctionDecl) statementNode()    {}
func (d *FunctionDecl) declarationNode()  {}
func (d *FunctionDecl) Span() source.Span { return d.Loc }
func (d *FunctionDecl) Accept(v Visitor)  { v.VisitFunction(d) }
func (d *FunctionDecl) String() string {
	var out bytes.Buffer
	out.WriteString("fn ")
	out.WriteString(d.Name)
	out.WriteString("(")
	for i, p := range d.Params {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(p.Name)
		if p.Type != nil {
			out.WriteString(": ")
			out.WriteString(p.Type.String())
		}
	}
	out.WriteString(")")
	if d.ReturnType != nil {
		out.WriteString(": ")
		out.WriteString(d.ReturnType.String())
	}
	out.WriteString(" ")
	out.WriteString(d.Body.String())
	return out.String()
}

// RecordDecl declares a record: a named, field-only aggregate.
type RecordDecl struct {
	Name      string
	Modifiers *ModifierStatement
	Fields    []*VariableDecl
	Loc       source.Span
}

func (d *RecordDecl) statementNode()    {}
func (d *RecordDecl) declarationNode()  {}
func (d *RecordDecl) Span() source.Span { return d.Loc }
func (d *RecordDecl) Accept(v Visitor)  { v.VisitRecord(d) }
func (d *RecordDecl) String() string {
	var out bytes.Buffer
	out.WriteString("rec ")
	out.WriteString(d.Name)
	out.WriteString(" { ")
	for _, f := range d.Fields {
		out.WriteString(f.String())
		out.WriteString(" ")
	}
	out.WriteString("}")
	return out.String()
}

// ClassDecl declares a class with fields and methods.
type ClassDecl struct {
	Name      string
	Modifiers *ModifierStatement
	Fields    []*VariableDecl
	Methods   []*FunctionDecl
	Loc       source.Span
}

func (d *ClassDecl) statementNode()    {}
func (d *ClassDecl) declarationNode()  {}
func (d *ClassDecl) Span() source.Span { return d.Loc }
func (d *ClassDecl) Accept(v Visitor)  { v.VisitClass(d) }
func (d *ClassDecl) String() string {
	var out bytes.Buffer
	out.WriteString("cls ")
	out.WriteString(d.Name)
	out.WriteString(" { ")
	for _, f := range d.Fields {
		out.WriteString(f.String())
		out.WriteString(" ")
	}
	for _, m := range d.Methods {
		out.WriteString(m.String())
		out.WriteString(" ")
	}
	out.WriteString("}")
	return out.String()
}
