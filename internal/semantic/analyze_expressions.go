package semantic

import (
	"fmt"

	"github.com/mlclang/mlc/internal/ast"
	"github.com/mlclang/mlc/internal/diag"
	"github.com/mlclang/mlc/internal/types"
)

// inferExpression computes an expression's type. Failures are reported
// and yield none so callers keep going; inference itself never aborts.
func (a *Analyzer) inferExpression(expr ast.Expression) types.Type {
	switch e := expr.(type) {
	case nil:
		return types.None
	case *ast.BinaryExpression:
		return a.inferBinary(e)
	case *ast.UnaryExpression:
		return a.inferExpression(e.Operand)
	case *ast.Literal:
		return literalType(e.Kind)
	case *ast.Identifier:
		return a.inferIdentifier(e)
	case *ast.ArrayIdentifier:
		if elem := a.scope.GetType(e.ElementType); elem != nil {
			return &types.Array{Elem: elem}
		}
		a.report(diag.Error, diag.CodeInvalidType,
			fmt.Sprintf("Invalid type '%s'", e.ElementType),
			"the element type must be a primitive or a declared cls or rec", e.Span())
		return types.None
	case *ast.ArrayLiteral:
		return a.inferArrayLiteral(e)
	case *ast.IndexExpression:
		return a.inferIndex(e)
	case *ast.CallExpression:
		return a.inferCall(e)
	case *ast.AttributeExpression:
		return a.inferAttribute(e)
	default:
		return types.None
	}
}

// literalType maps literal kinds to their default types.
func literalType(kind ast.LiteralKind) types.Type {
	switch kind {
	case ast.LitInteger:
		return types.I64
	case ast.LitFloat:
		return types.F64
	case ast.LitString:
		return types.String
	case ast.LitCharacter:
		return types.Char
	case ast.LitBoolean:
		return types.Bool
	case ast.LitNull:
		return types.Null
	default:
		return types.None
	}
}

// inferBinary promotes the operand types; the result inherits the
// promoted type. Comparisons and logical operators follow the same rule,
// which suffices because truthiness is only checked at condition
// positions.
func (a *Analyzer) inferBinary(e *ast.BinaryExpression) types.Type {
	left := a.inferExpression(e.Left)
	right := a.inferExpression(e.Right)
	if types.IsNone(left) || types.IsNone(right) {
		return types.None
	}
	return types.Promote(left, right)
}

// inferIdentifier resolves a name in the order variable, function,
// class, record, primitive type.
func (a *Analyzer) inferIdentifier(e *ast.Identifier) types.Type {
	if v := a.scope.GetVariable(e.Name); v != nil {
		return v.Elem
	}
	if f := a.scope.GetFunction(e.Name); f != nil {
		return f
	}
	if c := a.scope.GetClass(e.Name); c != nil {
		return c
	}
	if r := a.scope.GetRecord(e.Name); r != nil {
		return r
	}
	if t := a.scope.GetType(e.Name); t != nil {
		return t
	}
	a.report(diag.Error, diag.CodeUndeclared,
		fmt.Sprintf("Undeclared identifier '%s'", e.Name),
		"declare the name before using it", e.Span())
	return types.None
}

// inferArrayLiteral derives the element type from the first element.
// Later elements are inferred for their own diagnostics but not matched
// against the first.
func (a *Analyzer) inferArrayLiteral(e *ast.ArrayLiteral) types.Type {
	if len(e.Elements) == 0 {
		return &types.Array{Elem: types.None}
	}
	elem := a.inferExpression(e.Elements[0])
	for _, rest := range e.Elements[1:] {
		a.inferExpression(rest)
	}
	if types.IsNone(elem) {
		return types.None
	}
	return &types.Array{Elem: elem}
}

// inferIndex requires an array operand and an integer index. The result
// is the element type when the operand is a resolved array.
func (a *Analyzer) inferIndex(e *ast.IndexExpression) types.Type {
	arr := a.inferExpression(e.Array)
	idx := a.inferExpression(e.Index)

	if types.IsNone(arr) {
		return types.None
	}
	if arr.TypeKind() != types.KindArray {
		a.report(diag.Error, diag.CodeTypeMismatch,
			fmt.Sprintf("Cannot index type '%s'", arr.Name()),
			"only arrays can be indexed", e.Array.Span())
		return types.None
	}
	if !types.IsNone(idx) && !types.IsInteger(idx) {
		a.report(diag.Error, diag.CodeTypeMismatch,
			fmt.Sprintf("Array index has type '%s'", idx.Name()),
			"an index must be an integer", e.Index.Span())
	}
	if at, ok := arr.(*types.Array); ok {
		return at.Elem
	}
	return arr
}

// checkArguments verifies arity and per-parameter compatibility: each
// argument must be kind-similar to its parameter or both numeric.
func (a *Analyzer) checkArguments(fn *types.Function, e *ast.CallExpression, what string) {
	if len(e.Arguments) != len(fn.Params) {
		a.report(diag.Error, diag.CodeInvalidArguments,
			fmt.Sprintf("Invalid arguments to %s '%s'", what, fn.FnName),
			fmt.Sprintf("expected %d argument(s), found %d", len(fn.Params), len(e.Arguments)),
			e.Span())
		return
	}
	for i, arg := range e.Arguments {
		at := a.inferExpression(arg)
		if types.IsNone(at) {
			continue
		}
		pt := fn.Params[i].Elem
		if types.IsSimilar(at, pt) || (types.IsNumeric(at) && types.IsNumeric(pt)) {
			continue
		}
		a.report(diag.Error, diag.CodeInvalidArguments,
			fmt.Sprintf("Invalid arguments to %s '%s'", what, fn.FnName),
			fmt.Sprintf("argument %d has type '%s', parameter '%s' expects '%s'",
				i+1, at.Name(), fn.Params[i].VarName, pt.Name()), arg.Span())
	}
}

// inferCall handles function calls and class construction. Calling a
// class resolves its init method as the constructor, which must exist
// and be public.
func (a *Analyzer) inferCall(e *ast.CallExpression) types.Type {
	callee := a.inferExpression(e.Callee)
	if types.IsNone(callee) {
		return types.None
	}

	switch c := callee.(type) {
	case *types.Function:
		a.checkArguments(c, e, "function")
		return c.Return
	case *types.Class:
		ctor := c.Constructor()
		if ctor == nil || !types.CanAccess(ctor.Access, types.Public) {
			a.report(diag.Error, diag.CodeNoConstructor,
				fmt.Sprintf("Class '%s' has no accessible constructor", c.ClsName),
				"declare a public init method to construct the class", e.Span())
			return types.None
		}
		a.checkArguments(ctor, e, "constructor")
		return c
	default:
		a.report(diag.Error, diag.CodeInvalidArguments,
			fmt.Sprintf("Cannot call type '%s'", callee.Name()),
			"only functions and classes are callable", e.Callee.Span())
		return types.None
	}
}

// inferAttribute resolves object.attr against the object's fields, or a
// method call against a class's methods. Only public members are visible
// at this layer.
func (a *Analyzer) inferAttribute(e *ast.AttributeExpression) types.Type {
	object := a.inferExpression(e.Object)
	if types.IsNone(object) {
		return types.None
	}

	switch attr := e.Attribute.(type) {
	case *ast.Identifier:
		return a.inferFieldAccess(object, attr)
	case *ast.CallExpression:
		return a.inferMethodCall(object, attr, e)
	default:
		a.report(diag.Error, diag.CodeUnknownAttribute,
			"Invalid attribute expression",
			"an attribute must be a field name or a method call", e.Attribute.Span())
		return types.None
	}
}

func (a *Analyzer) inferFieldAccess(object types.Type, attr *ast.Identifier) types.Type {
	var field *types.Variable
	switch obj := object.(type) {
	case *types.Class:
		field = obj.Field(attr.Name)
	case *types.Record:
		field = obj.Field(attr.Name)
	default:
		a.report(diag.Error, diag.CodeUnknownAttribute,
			fmt.Sprintf("Type '%s' has no attributes", object.Name()),
			"only cls and rec values have fields", attr.Span())
		return types.None
	}

	if field == nil {
		a.report(diag.Error, diag.CodeUnknownAttribute,
			fmt.Sprintf("Unknown attribute '%s' on type '%s'", attr.Name, object.Name()),
			"the field is not declared on the type", attr.Span())
		return types.None
	}
	if !types.CanAccess(field.Access, types.Public) {
		a.report(diag.Error, diag.CodeAccessViolation,
			fmt.Sprintf("Cannot access field '%s' on type '%s'", attr.Name, object.Name()),
			"the field is not public", attr.Span())
		return types.None
	}
	return field.Elem
}

func (a *Analyzer) inferMethodCall(object types.Type, call *ast.CallExpression, e *ast.AttributeExpression) types.Type {
	name, ok := call.Callee.(*ast.Identifier)
	if !ok {
		a.report(diag.Error, diag.CodeUnknownAttribute,
			"Invalid attribute expression",
			"a method call must name the method directly", call.Span())
		return types.None
	}

	cls, ok := object.(*types.Class)
	if !ok {
		a.report(diag.Error, diag.CodeUnknownAttribute,
			fmt.Sprintf("Type '%s' has no methods", object.Name()),
			"only cls values have methods", e.Attribute.Span())
		return types.None
	}

	method := cls.Method(name.Name)
	if method == nil {
		a.report(diag.Error, diag.CodeUnknownAttribute,
			fmt.Sprintf("Unknown method '%s' on class '%s'", name.Name, cls.ClsName),
			"the method is not declared on the class", e.Attribute.Span())
		return types.None
	}
	if !types.CanAccess(method.Access, types.Public) {
		a.report(diag.Error, diag.CodeAccessViolation,
			fmt.Sprintf("Cannot access method '%s' on class '%s'", name.Name, cls.ClsName),
			"the method is not public", e.Attribute.Span())
		return types.None
	}
	a.checkArguments(method, call, "method")
	return method.Return
}
