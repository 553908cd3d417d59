package semantic

import (
	"fmt"

	"github.com/mlclang/mlc/internal/ast"
	"github.com/mlclang/mlc/internal/diag"
	"github.com/mlclang/mlc/internal/types"
)

// accessorOf converts a parse-side modifier statement's accessor into
// the semantic enum.
func accessorOf(mods *ast.ModifierStatement) types.Accessor {
	if mods == nil {
		return types.Public
	}
	switch mods.Accessor {
	case ast.Private:
		return types.Private
	case ast.Protected:
		return types.Protected
	default:
		return types.Public
	}
}

// modifiersOf converts a parse-side flag set into the semantic bitset.
func modifiersOf(mods *ast.ModifierStatement) types.ModifierSet {
	if mods == nil {
		return 0
	}
	var set types.ModifierSet
	if mods.Flags.Has(ast.ModStatic) {
		set = types.WithModifier(set, types.ModStatic)
	}
	if mods.Flags.Has(ast.ModConstant) {
		set = types.WithModifier(set, types.ModConstant)
	}
	if mods.Flags.Has(ast.ModArray) {
		set = types.WithModifier(set, types.ModArray)
	}
	if mods.Flags.Has(ast.ModInit) {
		set = types.WithModifier(set, types.ModInit)
	}
	if mods.Flags.Has(ast.ModNullable) {
		set = types.WithModifier(set, types.ModNullable)
	}
	return set
}

// resolveTypeExpr resolves a parsed type expression to a semantic type.
// A nil annotation means void; an unresolvable name returns nil.
func (a *Analyzer) resolveTypeExpr(expr ast.Expression) types.Type {
	switch te := expr.(type) {
	case nil:
		return types.Void
	case *ast.Identifier:
		return a.scope.GetType(te.Name)
	case *ast.ArrayIdentifier:
		elem := a.scope.GetType(te.ElementType)
		if elem == nil {
			return nil
		}
		return &types.Array{Elem: elem}
	default:
		return nil
	}
}

// declaredType resolves a declaration's type expression, reporting an
// invalid or unknown type and substituting none so analysis continues.
func (a *Analyzer) declaredType(expr ast.Expression, d ast.Node) types.Type {
	t := a.resolveTypeExpr(expr)
	if t == nil || !a.scope.IsValidType(t) {
		span := d.Span()
		name := "<missing>"
		if expr != nil {
			span = expr.Span()
			name = expr.String()
		}
		a.report(diag.Error, diag.CodeInvalidType,
			fmt.Sprintf("Invalid type '%s'", name),
			"the type must be a primitive or a declared cls or rec", span)
		return types.None
	}
	return t
}

// analyzeVariableDecl resolves the declared type, registers the
// variable, and checks the initializer's assignability. An integer
// literal initializer is accepted for any integer binding, so
// `let x: i32 = 5;` is valid although the literal infers to i64.
func (a *Analyzer) analyzeVariableDecl(d *ast.VariableDecl) {
	declared := a.declaredType(d.Type, d)

	a.scope.DefineVariable(&types.Variable{
		VarName: d.Name,
		Elem:    declared,
		Access:  accessorOf(d.Modifiers),
		Mods:    modifiersOf(d.Modifiers),
	})

	if d.Value == nil {
		return
	}
	value := a.inferExpression(d.Value)
	if types.IsNone(value) {
		return // already reported by inference
	}
	if lit, ok := d.Value.(*ast.Literal); ok && lit.Kind == ast.LitInteger && types.IsInteger(declared) {
		return
	}
	if !types.CanAssign(declared, value) {
		a.report(diag.Error, diag.CodeTypeMismatch,
			"Type mismatch in variable initializer",
			fmt.Sprintf("cannot assign '%s' to a binding of type '%s'",
				value.Name(), declared.Name()), d.Value.Span())
	}
}

// functionSignature resolves a function declaration's return and
// parameter types into a semantic Function.
func (a *Analyzer) functionSignature(d *ast.FunctionDecl) *types.Function {
	ret := a.declaredType(d.ReturnType, d)
	if d.ReturnType == nil {
		ret = types.Void
	}

	fn := &types.Function{
		FnName: d.Name,
		Return: ret,
		Access: accessorOf(d.Modifiers),
		Mods:   modifiersOf(d.Modifiers),
	}
	for _, param := range d.Params {
		fn.Params = append(fn.Params, &types.Variable{
			VarName: param.Name,
			Elem:    a.declaredType(param.Type, param),
			Access:  accessorOf(param.Modifiers),
			Mods:    modifiersOf(param.Modifiers),
		})
	}
	return fn
}

// analyzeFunctionDecl registers the function, then analyzes its body in
// a Function scope with the parameters defined as variables.
func (a *Analyzer) analyzeFunctionDecl(d *ast.FunctionDecl) {
	fn := a.functionSignature(d)
	a.scope.DefineFunction(fn)
	a.analyzeFunctionBody(d, fn)
}

// analyzeFunctionBody analyzes a function's body in a Function scope
// with the resolved parameters defined as variables.
func (a *Analyzer) analyzeFunctionBody(d *ast.FunctionDecl, fn *types.Function) {
	a.enterScope(d.Name, ScopeFunction)
	defer a.exitScope()

	for _, param := range fn.Params {
		a.scope.DefineVariable(param)
	}
	if d.Body != nil {
		for _, stmt := range d.Body.Statements {
			a.analyzeStatement(stmt)
		}
	}
}

// analyzeRecordDecl builds the record type from its fields and registers
// it. Record bodies are field-only.
func (a *Analyzer) analyzeRecordDecl(d *ast.RecordDecl) {
	rec := &types.Record{RecName: d.Name}
	for _, field := range d.Fields {
		rec.Fields = append(rec.Fields, &types.Variable{
			VarName: field.Name,
			Elem:    a.declaredType(field.Type, field),
			Access:  accessorOf(field.Modifiers),
			Mods:    modifiersOf(field.Modifiers),
		})
	}
	a.scope.DefineRecord(rec)
}

// analyzeClassDecl builds the class type, registers it, then analyzes
// the methods as function declarations inside a Class scope where the
// fields and `this` are visible.
func (a *Analyzer) analyzeClassDecl(d *ast.ClassDecl) {
	cls := &types.Class{ClsName: d.Name}
	// Register before resolving members so fields and methods may refer
	// to the class itself.
	a.scope.DefineClass(cls)

	for _, field := range d.Fields {
		cls.Fields = append(cls.Fields, &types.Variable{
			VarName: field.Name,
			Elem:    a.declaredType(field.Type, field),
			Access:  accessorOf(field.Modifiers),
			Mods:    modifiersOf(field.Modifiers),
		})
	}
	for _, method := range d.Methods {
		cls.Methods = append(cls.Methods, a.functionSignature(method))
	}

	a.enterScope(d.Name, ScopeClass)
	defer a.exitScope()

	a.scope.DefineVariable(&types.Variable{VarName: "this", Elem: cls, Access: types.Private})
	for _, field := range cls.Fields {
		a.scope.DefineVariable(field)
	}
	for _, method := range cls.Methods {
		a.scope.DefineFunction(method)
	}
	for i, method := range d.Methods {
		a.analyzeFunctionBody(method, cls.Methods[i])
	}
}
