package parser

import (
	"testing"

	"github.com/mlclang/mlc/internal/ast"
	"github.com/mlclang/mlc/internal/diag"
)

func TestParseVariableModifiers(t *testing.T) {
	tests := []struct {
		input            string
		expectedAccessor ast.Accessor
		expectedFlags    ast.Modifiers
	}{
		{"let x: i32;", ast.Public, 0},
		{"let pub x: i32;", ast.Public, 0},
		{"let pri x: i32;", ast.Private, 0},
		{"let pro x: i32;", ast.Protected, 0},
		{"let pri static x: i32;", ast.Private, ast.ModStatic},
		{"let const x: i32;", ast.Public, ast.ModConstant},
		{"let pub static const x: i32;", ast.Public, ast.ModStatic | ast.ModConstant},
		{"let x: i32?;", ast.Public, ast.ModNullable},
		{"let x: i32[4];", ast.Public, ast.ModArray},
		{"let x: i32[];", ast.Public, ast.ModArray},
	}

	for i, tt := range tests {
		program := parseClean(t, tt.input)
		decl := program.Statements[0].(*ast.VariableDecl)
		if decl.Modifiers.Accessor != tt.expectedAccessor {
			t.Errorf("tests[%d] - accessor wrong. expected=%v, got=%v",
				i, tt.expectedAccessor, decl.Modifiers.Accessor)
		}
		if decl.Modifiers.Flags != tt.expectedFlags {
			t.Errorf("tests[%d] - flags wrong. expected=%b, got=%b",
				i, tt.expectedFlags, decl.Modifiers.Flags)
		}
	}
}

func TestParseArrayTypeAnnotation(t *testing.T) {
	program := parseClean(t, "let xs: i32[3];")
	decl := program.Statements[0].(*ast.VariableDecl)

	arr, ok := decl.Type.(*ast.ArrayIdentifier)
	if !ok {
		t.Fatalf("type is %T, want *ast.ArrayIdentifier", decl.Type)
	}
	if arr.ElementType != "i32" {
		t.Errorf("element type wrong. expected=%q, got=%q", "i32", arr.ElementType)
	}
	size, ok := arr.Size.(*ast.Literal)
	if !ok || size.Value != "3" {
		t.Fatalf("size is %v, want literal 3", arr.Size)
	}
}

// Empty brackets record the size as the literal -1, meaning unsized.
func TestParseUnsizedArrayType(t *testing.T) {
	program := parseClean(t, "let xs: i32[];")
	decl := program.Statements[0].(*ast.VariableDecl)

	arr := decl.Type.(*ast.ArrayIdentifier)
	size, ok := arr.Size.(*ast.Literal)
	if !ok || size.Kind != ast.LitInteger || size.Value != "-1" {
		t.Fatalf("size is %v, want literal -1", arr.Size)
	}
}

// A missing colon before an identifier-looking type is recovered with a
// warning; the declaration still gets its type.
func TestParseMissingTypeColonWarns(t *testing.T) {
	program, p := parseProgram(t, "let x i32 = 5;")

	decl, ok := program.Statements[0].(*ast.VariableDecl)
	if !ok {
		t.Fatalf("statement is %T, want *ast.VariableDecl", program.Statements[0])
	}
	typeIdent, ok := decl.Type.(*ast.Identifier)
	if !ok || typeIdent.Name != "i32" {
		t.Fatalf("type is %v, want Identifier i32", decl.Type)
	}

	diags := p.Diagnostics()
	if len(diags) != 1 {
		t.Fatalf("diagnostic count wrong. expected=1, got=%d", len(diags))
	}
	if diags[0].Level != diag.Warning {
		t.Errorf("level wrong. expected=Warning, got=%v", diags[0].Level)
	}
	if diags[0].Message != "Missing ':' before type annotation" {
		t.Errorf("message wrong. got=%q", diags[0].Message)
	}
}

func TestParseFunctionShapes(t *testing.T) {
	tests := []struct {
		input          string
		expectedName   string
		expectedParams int
		hasReturnType  bool
	}{
		{"fn f() { }", "f", 0, false},
		{"fn f(a: i32) { }", "f", 1, false},
		{"fn f(a: i32, b: str, c: bool) { }", "f", 3, false},
		{"fn f(): i32 { }", "f", 0, true},
		{"fn f(): i32[] { }", "f", 0, true},
		{"pub static fn f() { }", "f", 0, false},
		{"init fn (a: i32) { }", "init", 1, false},
		{"fn init(a: i32) { }", "init", 1, false},
	}

	for i, tt := range tests {
		program := parseClean(t, tt.input)
		decl, ok := program.Statements[0].(*ast.FunctionDecl)
		if !ok {
			t.Fatalf("tests[%d] - statement is %T", i, program.Statements[0])
		}
		if decl.Name != tt.expectedName {
			t.Errorf("tests[%d] - name wrong. expected=%q, got=%q", i, tt.expectedName, decl.Name)
		}
		if len(decl.Params) != tt.expectedParams {
			t.Errorf("tests[%d] - param count wrong. expected=%d, got=%d",
				i, tt.expectedParams, len(decl.Params))
		}
		if (decl.ReturnType != nil) != tt.hasReturnType {
			t.Errorf("tests[%d] - return type presence wrong", i)
		}
	}
}

func TestParseConstructorCarriesInitFlag(t *testing.T) {
	program := parseClean(t, "fn init() { }")
	decl := program.Statements[0].(*ast.FunctionDecl)
	if !decl.Modifiers.Flags.Has(ast.ModInit) {
		t.Error("init-named function must carry the Init modifier")
	}
}

func TestParseRecordDeclaration(t *testing.T) {
	program := parseClean(t, "rec Point { x: f32; y: f32; }")

	decl, ok := program.Statements[0].(*ast.RecordDecl)
	if !ok {
		t.Fatalf("statement is %T, want *ast.RecordDecl", program.Statements[0])
	}
	if decl.Name != "Point" {
		t.Errorf("name wrong. expected=%q, got=%q", "Point", decl.Name)
	}
	if len(decl.Fields) != 2 {
		t.Fatalf("field count wrong. expected=2, got=%d", len(decl.Fields))
	}
	if decl.Fields[0].Name != "x" || decl.Fields[1].Name != "y" {
		t.Errorf("field names wrong. got %q, %q", decl.Fields[0].Name, decl.Fields[1].Name)
	}
}

func TestParseClassMembers(t *testing.T) {
	input := `cls Counter {
	count: i64;
	pri step: i64;
	pub fn init(start: i64) { }
	fn bump(): i64 { return count; }
	pri static fn reset() { }
}`
	program := parseClean(t, input)

	decl, ok := program.Statements[0].(*ast.ClassDecl)
	if !ok {
		t.Fatalf("statement is %T, want *ast.ClassDecl", program.Statements[0])
	}
	if len(decl.Fields) != 2 {
		t.Fatalf("field count wrong. expected=2, got=%d", len(decl.Fields))
	}
	if len(decl.Methods) != 3 {
		t.Fatalf("method count wrong. expected=3, got=%d", len(decl.Methods))
	}
	if decl.Methods[0].Name != "init" {
		t.Errorf("first method wrong. expected=%q, got=%q", "init", decl.Methods[0].Name)
	}
	if decl.Fields[1].Modifiers.Accessor != ast.Private {
		t.Error("pri field accessor lost")
	}
	if decl.Methods[2].Modifiers.Accessor != ast.Private ||
		!decl.Methods[2].Modifiers.Flags.Has(ast.ModStatic) {
		t.Error("pri static method modifiers lost")
	}
}
