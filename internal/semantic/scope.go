// Package semantic implements symbol resolution and type checking for ML
// programs: a chain of named scopes plus an analyzer that walks the AST,
// infers expression types, and verifies declarations and control-flow
// context.
package semantic

import (
	"github.com/mlclang/mlc/internal/types"
)

// ScopeKind is a bit set, not a singleton: a scope's kind is the OR of
// its own kind with its parent's, so Has answers ancestor questions like
// "am I anywhere inside a loop" in O(1), crossing intervening blocks.
type ScopeKind uint8

const (
	ScopeGlobal ScopeKind = 1 << iota
	ScopeBlock
	ScopeFunction
	ScopeLoop
	ScopeClass
	ScopeRecord
)

// Has reports whether flag is set in k.
func (k ScopeKind) Has(flag ScopeKind) bool {
	return k&flag == flag
}

// Scope is a named lexical environment. It owns the variables,
// functions, classes, and records declared in it, borrows the canonical
// primitive list, and links to its parent. Scopes form a strict tree and
// are opened and closed LIFO by the analyzer.
type Scope struct {
	Name       string
	Kind       ScopeKind
	Parent     *Scope
	Variables  []*types.Variable
	Functions  []*types.Function
	Classes    []*types.Class
	Records    []*types.Record
	primitives []types.Type
}

// NewGlobalScope creates the root scope with the primitive list.
func NewGlobalScope() *Scope {
	return &Scope{
		Name:       "global",
		Kind:       ScopeGlobal,
		primitives: types.Primitives(),
	}
}

// NewScope creates a child scope. The child's kind is the OR of its own
// kind with the parent's; the primitive list is shared.
func NewScope(name string, kind ScopeKind, parent *Scope) *Scope {
	return &Scope{
		Name:       name,
		Kind:       kind | parent.Kind,
		Parent:     parent,
		primitives: parent.primitives,
	}
}

// Insertion is append-only; redeclaration detection is an analyzer
// concern, not a scope concern.

// DefineVariable appends a variable to the scope.
func (s *Scope) DefineVariable(v *types.Variable) {
	s.Variables = append(s.Variables, v)
}

// DefineFunction appends a function to the scope.
func (s *Scope) DefineFunction(f *types.Function) {
	s.Functions = append(s.Functions, f)
}

// DefineClass appends a class to the scope.
func (s *Scope) DefineClass(c *types.Class) {
	s.Classes = append(s.Classes, c)
}

// DefineRecord appends a record to the scope.
func (s *Scope) DefineRecord(r *types.Record) {
	s.Records = append(s.Records, r)
}

// GetVariable resolves a variable by name, walking parent scopes.
func (s *Scope) GetVariable(name string) *types.Variable {
	for _, v := range s.Variables {
		if v.VarName == name {
			return v
		}
	}
	if s.Parent != nil {
		return s.Parent.GetVariable(name)
	}
	return nil
}

// GetFunction resolves a function by name, walking parent scopes.
func (s *Scope) GetFunction(name string) *types.Function {
	for _, f := range s.Functions {
		if f.FnName == name {
			return f
		}
	}
	if s.Parent != nil {
		return s.Parent.GetFunction(name)
	}
	return nil
}

// GetClass resolves a class by name, walking parent scopes.
func (s *Scope) GetClass(name string) *types.Class {
	for _, c := range s.Classes {
		if c.ClsName == name {
			return c
		}
	}
	if s.Parent != nil {
		return s.Parent.GetClass(name)
	}
	return nil
}

// GetRecord resolves a record by name, walking parent scopes.
func (s *Scope) GetRecord(name string) *types.Record {
	for _, r := range s.Records {
		if r.RecName == name {
			return r
		}
	}
	if s.Parent != nil {
		return s.Parent.GetRecord(name)
	}
	return nil
}

// HasVariable reports whether name resolves to a variable.
func (s *Scope) HasVariable(name string) bool { return s.GetVariable(name) != nil }

// HasFunction reports whether name resolves to a function.
func (s *Scope) HasFunction(name string) bool { return s.GetFunction(name) != nil }

// HasClass reports whether name resolves to a class.
func (s *Scope) HasClass(name string) bool { return s.GetClass(name) != nil }

// HasRecord reports whether name resolves to a record.
func (s *Scope) HasRecord(name string) bool { return s.GetRecord(name) != nil }

// GetType resolves a type name: primitives first, then user classes,
// then user records, then the parent scope.
func (s *Scope) GetType(name string) types.Type {
	for _, p := range s.primitives {
		if p.Name() == name {
			return p
		}
	}
	for _, c := range s.Classes {
		if c.ClsName == name {
			return c
		}
	}
	for _, r := range s.Records {
		if r.RecName == name {
			return r
		}
	}
	if s.Parent != nil {
		return s.Parent.GetType(name)
	}
	return nil
}

// IsValidType reports whether t may be used as a declared type: scalar
// primitives, str, void and null, any resolved class or record, and
// arrays of a valid element type. none is never valid.
func (s *Scope) IsValidType(t types.Type) bool {
	if t == nil {
		return false
	}
	switch t.TypeKind() {
	case types.KindVoid, types.KindNull:
		return true
	case types.KindClass:
		return s.HasClass(t.Name())
	case types.KindRecord:
		return s.HasRecord(t.Name())
	case types.KindArray:
		arr, ok := t.(*types.Array)
		return ok && s.IsValidType(arr.Elem)
	case types.KindNone, types.KindVariable, types.KindFunction:
		return false
	default:
		return types.IsPrimitive(t) || t.TypeKind() == types.KindString
	}
}
