package parser

import (
	"testing"

	"github.com/mlclang/mlc/internal/ast"
	"github.com/mlclang/mlc/internal/diag"
	"github.com/mlclang/mlc/internal/lexer"
)

// parseProgram lexes and parses input, failing the test on lexer errors.
func parseProgram(t *testing.T, input string) (*ast.Program, *Parser) {
	t.Helper()
	l := lexer.New(input)
	tokens := l.Lex()
	if diag.HasErrors(l.Diagnostics()) {
		t.Fatalf("lexer errors in test input: %v", l.Diagnostics()[0].Message)
	}
	p := New(tokens, input)
	return p.ParseProgram(), p
}

// parseClean parses input and requires zero parser diagnostics.
func parseClean(t *testing.T, input string) *ast.Program {
	t.Helper()
	program, p := parseProgram(t, input)
	if len(p.Diagnostics()) != 0 {
		t.Fatalf("unexpected diagnostics: %s", p.Diagnostics()[0].Message)
	}
	return program
}

func TestParseVariableDeclaration(t *testing.T) {
	program := parseClean(t, "let x: i32 = 5;")

	if len(program.Statements) != 1 {
		t.Fatalf("statement count wrong. expected=1, got=%d", len(program.Statements))
	}
	decl, ok := program.Statements[0].(*ast.VariableDecl)
	if !ok {
		t.Fatalf("statement is %T, want *ast.VariableDecl", program.Statements[0])
	}
	if decl.Name != "x" {
		t.Errorf("name wrong. expected=%q, got=%q", "x", decl.Name)
	}

	typeIdent, ok := decl.Type.(*ast.Identifier)
	if !ok || typeIdent.Name != "i32" {
		t.Fatalf("type is %v, want Identifier i32", decl.Type)
	}
	lit, ok := decl.Value.(*ast.Literal)
	if !ok || lit.Kind != ast.LitInteger || lit.Value != "5" {
		t.Fatalf("initializer is %v, want Integer literal 5", decl.Value)
	}
}

func TestParseFunctionDeclaration(t *testing.T) {
	program := parseClean(t, "fn add(a: i32, b: i32): i32 { return a + b; }")

	decl, ok := program.Statements[0].(*ast.FunctionDecl)
	if !ok {
		t.Fatalf("statement is %T, want *ast.FunctionDecl", program.Statements[0])
	}
	if decl.Name != "add" {
		t.Errorf("name wrong. expected=%q, got=%q", "add", decl.Name)
	}
	if len(decl.Params) != 2 {
		t.Fatalf("param count wrong. expected=2, got=%d", len(decl.Params))
	}
	if decl.Params[0].Name != "a" || decl.Params[1].Name != "b" {
		t.Errorf("param names wrong. got %q, %q", decl.Params[0].Name, decl.Params[1].Name)
	}
	ret, ok := decl.ReturnType.(*ast.Identifier)
	if !ok || ret.Name != "i32" {
		t.Fatalf("return type is %v, want Identifier i32", decl.ReturnType)
	}

	if len(decl.Body.Statements) != 1 {
		t.Fatalf("body statement count wrong. got=%d", len(decl.Body.Statements))
	}
	retStmt, ok := decl.Body.Statements[0].(*ast.ReturnStatement)
	if !ok {
		t.Fatalf("body statement is %T, want *ast.ReturnStatement", decl.Body.Statements[0])
	}
	bin, ok := retStmt.Value.(*ast.BinaryExpression)
	if !ok || bin.Operator != "+" {
		t.Fatalf("return value is %v, want Binary +", retStmt.Value)
	}
}

// a + b * c - d / e parses as ((a + (b * c)) - (d / e)).
func TestParsePrecedenceClimbing(t *testing.T) {
	program := parseClean(t, "a + b * c - d / e;")

	stmt := program.Statements[0].(*ast.ExpressionStatement)
	root, ok := stmt.Expr.(*ast.BinaryExpression)
	if !ok || root.Operator != "-" {
		t.Fatalf("root is %v, want Binary -", stmt.Expr)
	}

	left, ok := root.Left.(*ast.BinaryExpression)
	if !ok || left.Operator != "+" {
		t.Fatalf("root.Left is %v, want Binary +", root.Left)
	}
	if ident, ok := left.Left.(*ast.Identifier); !ok || ident.Name != "a" {
		t.Fatalf("left.Left is %v, want Identifier a", left.Left)
	}
	mul, ok := left.Right.(*ast.BinaryExpression)
	if !ok || mul.Operator != "*" {
		t.Fatalf("left.Right is %v, want Binary *", left.Right)
	}

	div, ok := root.Right.(*ast.BinaryExpression)
	if !ok || div.Operator != "/" {
		t.Fatalf("root.Right is %v, want Binary /", root.Right)
	}
	if ident, ok := div.Left.(*ast.Identifier); !ok || ident.Name != "d" {
		t.Fatalf("div.Left is %v, want Identifier d", div.Left)
	}
}

func TestParseExpressionForms(t *testing.T) {
	tests := []struct {
		input    string
		expected string // via the debug String rendering
	}{
		{"1 + 2 * 3;", "(1 + (2 * 3))"},
		{"(1 + 2) * 3;", "((1 + 2) * 3)"},
		{"a = b = c;", "(a = (b = c))"},     // right associative
		{"a || b && c;", "(a || (b && c))"}, // and binds tighter
		{"a == b != c;", "((a == b) != c)"}, // left associative
		{"a < b <= c;", "((a < b) <= c)"},
		{"0..10;", "(0 .. 10)"},
		{"!a;", "(!a)"},
		{"-a + b;", "((-a) + b)"},
		{"!-a;", "(!(-a))"},
		{"a++;", "(a++)"},
		{"a--;", "(a--)"},
		{"f(1, 2);", "f(1, 2)"},
		{"f()(2);", "f()(2)"},
		{"xs[0];", "xs[0]"},
		{"xs[i + 1];", "xs[(i + 1)]"},
		{"p.x;", "p.x"},
		{"p.area();", "p.area()"},
		{"a.b.c;", "a.b.c"},
		{"[1, 2, 3];", "[1, 2, 3]"},
		{"[];", "[]"},
		{"this.x;", "this.x"},
		{"true;", "true"},
		{"null;", "null"},
		{`"s";`, `"s"`},
		{"'c';", "'c'"},
		{"3.5;", "3.5"},
	}

	for i, tt := range tests {
		program := parseClean(t, tt.input)
		if len(program.Statements) != 1 {
			t.Fatalf("tests[%d] - statement count wrong. got=%d", i, len(program.Statements))
		}
		stmt, ok := program.Statements[0].(*ast.ExpressionStatement)
		if !ok {
			t.Fatalf("tests[%d] - statement is %T", i, program.Statements[0])
		}
		if got := stmt.Expr.String(); got != tt.expected {
			t.Errorf("tests[%d] - String() = %q, want %q", i, got, tt.expected)
		}
	}
}

func TestParseStatementKinds(t *testing.T) {
	tests := []struct {
		input    string
		expected string // reflected statement type
	}{
		{"return;", "*ast.ReturnStatement"},
		{"return 1;", "*ast.ReturnStatement"},
		{"break;", "*ast.BreakStatement"},
		{"continue;", "*ast.ContinueStatement"},
		{"{ let x: i8; }", "*ast.BlockStatement"},
		{"let y: i8;", "*ast.VariableDecl"},
		{"fn f() { }", "*ast.FunctionDecl"},
		{"pub fn g() { }", "*ast.FunctionDecl"},
		{"rec R { }", "*ast.RecordDecl"},
		{"cls C { }", "*ast.ClassDecl"},
		{"if a { }", "*ast.IfStatement"},
		{"switch a { }", "*ast.SwitchStatement"},
		{"while a { }", "*ast.WhileStatement"},
		{"for (0..3) { }", "*ast.ForStatement"},
		{"x;", "*ast.ExpressionStatement"},
		{"pub static;", "*ast.ModifierStatement"},
	}

	for i, tt := range tests {
		program := parseClean(t, tt.input)
		if len(program.Statements) != 1 {
			t.Fatalf("tests[%d] - statement count wrong. got=%d", i, len(program.Statements))
		}
		if got := typeName(program.Statements[0]); got != tt.expected {
			t.Errorf("tests[%d] - statement type = %s, want %s", i, got, tt.expected)
		}
	}
}

func typeName(v interface{}) string {
	switch v.(type) {
	case *ast.ReturnStatement:
		return "*ast.ReturnStatement"
	case *ast.BreakStatement:
		return "*ast.BreakStatement"
	case *ast.ContinueStatement:
		return "*ast.ContinueStatement"
	case *ast.BlockStatement:
		return "*ast.BlockStatement"
	case *ast.VariableDecl:
		return "*ast.VariableDecl"
	case *ast.FunctionDecl:
		return "*ast.FunctionDecl"
	case *ast.RecordDecl:
		return "*ast.RecordDecl"
	case *ast.ClassDecl:
		return "*ast.ClassDecl"
	case *ast.IfStatement:
		return "*ast.IfStatement"
	case *ast.SwitchStatement:
		return "*ast.SwitchStatement"
	case *ast.WhileStatement:
		return "*ast.WhileStatement"
	case *ast.ForStatement:
		return "*ast.ForStatement"
	case *ast.ExpressionStatement:
		return "*ast.ExpressionStatement"
	case *ast.ModifierStatement:
		return "*ast.ModifierStatement"
	default:
		return "unknown"
	}
}

// Every node's span must contain its children's spans.
func TestSpansNest(t *testing.T) {
	input := "fn add(a: i32, b: i32): i32 { return a + b * 2; }"
	program := parseClean(t, input)

	decl := program.Statements[0].(*ast.FunctionDecl)
	if !program.Loc.Contains(decl.Span()) {
		t.Error("program span does not contain the declaration")
	}
	if !decl.Span().Contains(decl.Body.Span()) {
		t.Error("declaration span does not contain the body")
	}
	ret := decl.Body.Statements[0].(*ast.ReturnStatement)
	if !decl.Body.Span().Contains(ret.Span()) {
		t.Error("body span does not contain the return")
	}
	bin := ret.Value.(*ast.BinaryExpression)
	if !ret.Span().Contains(bin.Span()) {
		t.Error("return span does not contain its value")
	}
	if !bin.Span().Contains(bin.Left.Span()) || !bin.Span().Contains(bin.Right.Span()) {
		t.Error("binary span does not contain its operands")
	}
}

func TestParseEmptyProgram(t *testing.T) {
	program := parseClean(t, "")
	if len(program.Statements) != 0 {
		t.Fatalf("statement count wrong. expected=0, got=%d", len(program.Statements))
	}
}
