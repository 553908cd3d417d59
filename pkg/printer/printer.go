// Package printer renders an AST as an indented tree for debugging and
// learning. It is a pure consumer of the AST: it traverses through the
// visitor interface and never modifies a node.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/mlclang/mlc/internal/ast"
)

// Printer renders AST nodes as a branch-drawn tree.
type Printer struct {
	showSpans bool
}

// Option configures a Printer.
type Option func(*Printer)

// WithSpans appends each node's source span to its line.
func WithSpans(show bool) Option {
	return func(p *Printer) {
		p.showSpans = show
	}
}

// New creates a Printer.
func New(opts ...Option) *Printer {
	p := &Printer{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Print writes the tree rendering of node to w.
func (p *Printer) Print(w io.Writer, node ast.Node) error {
	b := &builder{showSpans: p.showSpans}
	root := b.build(node)
	var sb strings.Builder
	renderTree(&sb, root, "", true, true)
	_, err := io.WriteString(w, sb.String())
	return err
}

// Sprint returns the tree rendering of node as a string.
func (p *Printer) Sprint(node ast.Node) string {
	var sb strings.Builder
	p.Print(&sb, node)
	return sb.String()
}

// Print renders node to w with default options.
func Print(w io.Writer, node ast.Node) error {
	return New().Print(w, node)
}

// treeNode is the intermediate shape the visitor builds: a label plus
// ordered children.
type treeNode struct {
	label    string
	children []*treeNode
}

// builder implements ast.Visitor by converting each variant into a
// treeNode. Children are gathered by calling Accept on them, so the
// traversal skeleton lives in the AST, not here.
type builder struct {
	current   *treeNode
	showSpans bool
}

func (b *builder) build(node ast.Node) *treeNode {
	if node == nil {
		return &treeNode{label: "<nil>"}
	}
	holder := &treeNode{}
	prev := b.current
	b.current = holder
	node.Accept(b)
	b.current = prev
	if len(holder.children) == 1 {
		return holder.children[0]
	}
	return holder
}

// add records one rendered node: a label line plus its child subtrees.
func (b *builder) add(node ast.Node, label string, children ...*treeNode) {
	if b.showSpans && node != nil {
		label += " [" + node.Span().String() + "]"
	}
	b.current.children = append(b.current.children, &treeNode{label: label, children: children})
}

// child builds a subtree for an AST child, or a placeholder for nil.
func (b *builder) child(node ast.Node) *treeNode {
	if node == nil || isNilNode(node) {
		return &treeNode{label: "<none>"}
	}
	return b.build(node)
}

// tag wraps a subtree under a role label like "cond:" or "then:".
func tag(label string, child *treeNode) *treeNode {
	return &treeNode{label: label, children: []*treeNode{child}}
}

func (b *builder) VisitProgram(n *ast.Program) {
	children := make([]*treeNode, 0, len(n.Statements))
	for _, stmt := range n.Statements {
		children = append(children, b.child(stmt))
	}
	b.add(n, "Program", children...)
}

func (b *builder) VisitBinary(n *ast.BinaryExpression) {
	b.add(n, fmt.Sprintf("Binary %q", n.Operator), b.child(n.Left), b.child(n.Right))
}

func (b *builder) VisitUnary(n *ast.UnaryExpression) {
	position := "postfix"
	if n.Prefix {
		position = "prefix"
	}
	b.add(n, fmt.Sprintf("Unary %q (%s)", n.Operator, position), b.child(n.Operand))
}

func (b *builder) VisitLiteral(n *ast.Literal) {
	b.add(n, fmt.Sprintf("Literal %s %s", n.Kind, n.Value))
}

func (b *builder) VisitIdentifier(n *ast.Identifier) {
	b.add(n, "Identifier "+n.Name)
}

func (b *builder) VisitArrayIdentifier(n *ast.ArrayIdentifier) {
	b.add(n, "ArrayIdentifier "+n.ElementType, tag("size:", b.child(n.Size)))
}

func (b *builder) VisitIndex(n *ast.IndexExpression) {
	b.add(n, "Index", b.child(n.Array), tag("index:", b.child(n.Index)))
}

func (b *builder) VisitArrayLiteral(n *ast.ArrayLiteral) {
	children := make([]*treeNode, 0, len(n.Elements))
	for _, el := range n.Elements {
		children = append(children, b.child(el))
	}
	b.add(n, "Array", children...)
}

func (b *builder) VisitCall(n *ast.CallExpression) {
	children := []*treeNode{b.child(n.Callee)}
	for _, arg := range n.Arguments {
		children = append(children, tag("arg:", b.child(arg)))
	}
	b.add(n, "Call", children...)
}

func (b *builder) VisitAttribute(n *ast.AttributeExpression) {
	b.add(n, "Attribute", b.child(n.Object), b.child(n.Attribute))
}

func (b *builder) VisitReturn(n *ast.ReturnStatement) {
	if n.Value == nil {
		b.add(n, "Return")
		return
	}
	b.add(n, "Return", b.child(n.Value))
}

func (b *builder) VisitBreak(n *ast.BreakStatement) {
	b.add(n, "Break")
}

func (b *builder) VisitContinue(n *ast.ContinueStatement) {
	b.add(n, "Continue")
}

func (b *builder) VisitExpressionStatement(n *ast.ExpressionStatement) {
	b.add(n, "ExpressionStatement", b.child(n.Expr))
}

func (b *builder) VisitBlock(n *ast.BlockStatement) {
	children := make([]*treeNode, 0, len(n.Statements))
	for _, stmt := range n.Statements {
		children = append(children, b.child(stmt))
	}
	b.add(n, "Block", children...)
}

func (b *builder) VisitModifier(n *ast.ModifierStatement) {
	b.add(n, "Modifier "+n.String())
}

func (b *builder) VisitVariable(n *ast.VariableDecl) {
	children := []*treeNode{}
	if n.Type != nil {
		children = append(children, tag("type:", b.child(n.Type)))
	}
	if n.Value != nil {
		children = append(children, tag("value:", b.child(n.Value)))
	}
	b.add(n, "Variable "+n.Name+modifierSuffix(n.Modifiers), children...)
}

func (b *builder) VisitFunction(n *ast.FunctionDecl) {
	children := []*treeNode{}
	for _, param := range n.Params {
		children = append(children, tag("param:", b.child(param)))
	}
	if n.ReturnType != nil {
		children = append(children, tag("returns:", b.child(n.ReturnType)))
	}
	children = append(children, b.child(n.Body))
	b.add(n, "Function "+n.Name+modifierSuffix(n.Modifiers), children...)
}

func (b *builder) VisitRecord(n *ast.RecordDecl) {
	children := make([]*treeNode, 0, len(n.Fields))
	for _, field := range n.Fields {
		children = append(children, b.child(field))
	}
	b.add(n, "Record "+n.Name, children...)
}

func (b *builder) VisitClass(n *ast.ClassDecl) {
	children := make([]*treeNode, 0, len(n.Fields)+len(n.Methods))
	for _, field := range n.Fields {
		children = append(children, b.child(field))
	}
	for _, method := range n.Methods {
		children = append(children, b.child(method))
	}
	b.add(n, "Class "+n.Name, children...)
}

func (b *builder) VisitIf(n *ast.IfStatement) {
	children := []*treeNode{
		tag("cond:", b.child(n.Condition)),
		tag("then:", b.child(n.Then)),
	}
	for _, elif := range n.Elifs {
		children = append(children, tag("elif:", b.build(elif)))
	}
	if n.Else != nil {
		children = append(children, tag("else:", b.child(n.Else)))
	}
	b.add(n, "If", children...)
}

func (b *builder) VisitSwitch(n *ast.SwitchStatement) {
	children := []*treeNode{tag("value:", b.child(n.Value))}
	for _, c := range n.Cases {
		if c.Value == nil {
			children = append(children, tag("default:", b.child(c.Body)))
			continue
		}
		children = append(children, &treeNode{
			label:    "case:",
			children: []*treeNode{b.child(c.Value), b.child(c.Body)},
		})
	}
	b.add(n, "Switch", children...)
}

func (b *builder) VisitWhile(n *ast.WhileStatement) {
	b.add(n, "While", tag("cond:", b.child(n.Condition)), b.child(n.Body))
}

func (b *builder) VisitFor(n *ast.ForStatement) {
	children := []*treeNode{}
	if n.Init != nil {
		children = append(children, tag("init:", b.child(n.Init)))
	}
	if n.Condition != nil {
		children = append(children, tag("cond:", b.child(n.Condition)))
	}
	if n.Post != nil {
		children = append(children, tag("post:", b.child(n.Post)))
	}
	children = append(children, b.child(n.Body))
	b.add(n, "For", children...)
}

// renderTree draws the label and recurses with branch glyphs.
func renderTree(sb *strings.Builder, node *treeNode, prefix string, isLast, isRoot bool) {
	if !isRoot {
		sb.WriteString(prefix)
		if isLast {
			sb.WriteString("└── ")
			prefix += "    "
		} else {
			sb.WriteString("├── ")
			prefix += "│   "
		}
	}
	sb.WriteString(node.label)
	sb.WriteString("\n")
	for i, child := range node.children {
		renderTree(sb, child, prefix, i == len(node.children)-1, false)
	}
}

func modifierSuffix(mods *ast.ModifierStatement) string {
	if mods == nil {
		return ""
	}
	s := mods.String()
	if s == "pub" {
		return ""
	}
	return " (" + s + ")"
}

// isNilNode guards against typed-nil interface values from optional AST
// slots.
func isNilNode(node ast.Node) bool {
	switch n := node.(type) {
	case *ast.BlockStatement:
		return n == nil
	case *ast.Identifier:
		return n == nil
	case *ast.VariableDecl:
		return n == nil
	default:
		return false
	}
}
