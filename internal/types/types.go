// Package types implements the ML type model: primitive singletons,
// composite kinds (array, record, class, variable, function), and the
// promotion and assignability rules the analyzer applies.
//
// Primitive types are defined exactly once, as package-level singletons;
// every scope exposes the same instances. Composite types are identified
// by name, similarity by kind.
package types

// Kind discriminates types.
type Kind int

const (
	KindNone Kind = iota
	KindVoid
	KindNull
	KindBool
	KindI8
	KindI16
	KindI32
	KindI64
	KindI128
	KindU8
	KindU16
	KindU32
	KindU64
	KindU128
	KindF16
	KindF32
	KindF64
	KindF128
	KindString
	KindChar
	KindArray
	KindClass
	KindRecord
	KindVariable
	KindFunction
)

// Type is the common interface over primitive and composite types.
type Type interface {
	// TypeKind returns the type's kind tag.
	TypeKind() Kind

	// Name returns the type's textual name. Composite identity is by
	// name; primitive names are fixed ("i64", "str", ...).
	Name() string

	// Size returns the byte width. Non-primitive types have width 0 in
	// this model; no layout is computed.
	Size() int
}

// Accessor is the resolved visibility of a member.
type Accessor int

const (
	Public Accessor = iota
	Private
	Protected
)

// ModifierSet is the resolved modifier bitset of a declaration.
type ModifierSet uint8

const (
	ModStatic ModifierSet = 1 << iota
	ModConstant
	ModArray
	ModInit
	ModNullable
)

// HasModifier reports whether set contains m.
func HasModifier(set, m ModifierSet) bool {
	return set&m == m
}

// WithModifier returns set with m added.
func WithModifier(set, m ModifierSet) ModifierSet {
	return set | m
}

// Primitive is a built-in scalar type. All instances are the package
// singletons below.
type Primitive struct {
	kind Kind
	name string
	size int
}

func (p *Primitive) TypeKind() Kind { return p.kind }
func (p *Primitive) Name() string   { return p.name }
func (p *Primitive) Size() int      { return p.size }

// The primitive singletons. Byte widths follow the numeric suffix;
// bool and char are one byte; none/void/null and str carry no width.
var (
	None = &Primitive{KindNone, "none", 0}
	Void = &Primitive{KindVoid, "void", 0}
	Null = &Primitive{KindNull, "null", 0}
	Bool = &Primitive{KindBool, "bool", 1}

	I8   = &Primitive{KindI8, "i8", 1}
	I16  = &Primitive{KindI16, "i16", 2}
	I32  = &Primitive{KindI32, "i32", 4}
	I64  = &Primitive{KindI64, "i64", 8}
	I128 = &Primitive{KindI128, "i128", 16}

	U8   = &Primitive{KindU8, "u8", 1}
	U16  = &Primitive{KindU16, "u16", 2}
	U32  = &Primitive{KindU32, "u32", 4}
	U64  = &Primitive{KindU64, "u64", 8}
	U128 = &Primitive{KindU128, "u128", 16}

	F16  = &Primitive{KindF16, "f16", 2}
	F32  = &Primitive{KindF32, "f32", 4}
	F64  = &Primitive{KindF64, "f64", 8}
	F128 = &Primitive{KindF128, "f128", 16}

	Char   = &Primitive{KindChar, "char", 1}
	String = &Primitive{KindString, "str", 0}
)

// Primitives returns the canonical primitive list shared by every scope.
// The slice is freshly allocated; the elements are the singletons.
func Primitives() []Type {
	return []Type{
		None, Void, Null, Bool,
		I8, I16, I32, I64, I128,
		U8, U16, U32, U64, U128,
		F16, F32, F64, F128,
		Char, String,
	}
}

// Variable is the semantic type of a declared binding: its element type
// plus the resolved accessor and modifiers.
type Variable struct {
	VarName string
	Elem    Type
	Access  Accessor
	Mods    ModifierSet
}

func (v *Variable) TypeKind() Kind { return KindVariable }
func (v *Variable) Name() string   { return v.VarName }
func (v *Variable) Size() int      { return 0 }

// Function is the semantic type of a declared function or method.
type Function struct {
	FnName string
	Return Type
	Params []*Variable
	Access Accessor
	Mods   ModifierSet
}

func (f *Function) TypeKind() Kind { return KindFunction }
func (f *Function) Name() string   { return f.FnName }
func (f *Function) Size() int      { return 0 }

// Record is a named, field-only aggregate type.
type Record struct {
	RecName string
	Fields  []*Variable
}

func (r *Record) TypeKind() Kind { return KindRecord }
func (r *Record) Name() string   { return r.RecName }
func (r *Record) Size() int      { return 0 }

// Field returns the named field, or nil.
func (r *Record) Field(name string) *Variable {
	for _, f := range r.Fields {
		if f.VarName == name {
			return f
		}
	}
	return nil
}

// Class is a named aggregate with fields and methods.
type Class struct {
	ClsName string
	Fields  []*Variable
	Methods []*Function
}

func (c *Class) TypeKind() Kind { return KindClass }
func (c *Class) Name() string   { return c.ClsName }
func (c *Class) Size() int      { return 0 }

// Field returns the named field, or nil.
func (c *Class) Field(name string) *Variable {
	for _, f := range c.Fields {
		if f.VarName == name {
			return f
		}
	}
	return nil
}

// Method returns the named method, or nil.
func (c *Class) Method(name string) *Function {
	for _, m := range c.Methods {
		if m.FnName == name {
			return m
		}
	}
	return nil
}

// Constructor returns the class's init method, or nil when the class has
// none.
func (c *Class) Constructor() *Function {
	return c.Method("init")
}

// Array is a homogeneous sequence type. Its name is "array" plus the
// element type's name.
type Array struct {
	Elem Type
}

func (a *Array) TypeKind() Kind { return KindArray }
func (a *Array) Name() string   { return "array" + a.Elem.Name() }
func (a *Array) Size() int      { return 0 }

// CanAccess reports whether a member with the given accessor is visible
// to a requester with the given accessor: Public always, Private only to
// Private, Protected to Private or Protected.
func CanAccess(member, requester Accessor) bool {
	switch member {
	case Public:
		return true
	case Private:
		return requester == Private
	case Protected:
		return requester == Private || requester == Protected
	default:
		return false
	}
}
