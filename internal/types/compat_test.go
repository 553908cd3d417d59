package types

import "testing"

func TestKindPredicates(t *testing.T) {
	ints := []Type{I8, I16, I32, I64, I128, U8, U16, U32, U64, U128}
	floats := []Type{F16, F32, F64, F128}

	for _, typ := range ints {
		if !IsInteger(typ) || IsFloat(typ) || !IsNumeric(typ) || !IsPrimitive(typ) {
			t.Errorf("%s misclassified as non-integer", typ.Name())
		}
	}
	for _, typ := range floats {
		if IsInteger(typ) || !IsFloat(typ) || !IsNumeric(typ) || !IsPrimitive(typ) {
			t.Errorf("%s misclassified as non-float", typ.Name())
		}
	}

	if IsNumeric(Bool) || IsNumeric(String) || IsNumeric(Null) {
		t.Error("non-numeric type classified numeric")
	}
	if !IsPrimitive(Bool) || !IsPrimitive(Char) {
		t.Error("bool and char are primitives")
	}
	if IsPrimitive(String) {
		t.Error("str is not a scalar primitive")
	}
}

func TestIsPointer(t *testing.T) {
	pointers := []Type{
		String,
		&Array{Elem: I32},
		&Class{ClsName: "C"},
		&Record{RecName: "R"},
	}
	for _, typ := range pointers {
		if !IsPointer(typ) {
			t.Errorf("%s should be a pointer type", typ.Name())
		}
	}
	for _, typ := range []Type{I64, F64, Bool, Char, Null} {
		if IsPointer(typ) {
			t.Errorf("%s should not be a pointer type", typ.Name())
		}
	}
}

func TestIsTruthy(t *testing.T) {
	for _, typ := range []Type{None, Void, Null} {
		if IsTruthy(typ) {
			t.Errorf("%s must not be truthy", typ.Name())
		}
	}
	for _, typ := range []Type{Bool, I64, F32, String, Char, &Array{Elem: I8}} {
		if !IsTruthy(typ) {
			t.Errorf("%s must be truthy", typ.Name())
		}
	}
}

func TestPromote(t *testing.T) {
	tests := []struct {
		a, b     Type
		expected Type
	}{
		{I32, I32, I32},     // matching kinds
		{I32, I64, I64},     // integer widening
		{I8, I128, I128},    // integer widening
		{U16, U32, U32},     // unsigned widening
		{F32, F64, F64},     // float widening
		{F16, F128, F128},   // float widening
		{I64, F32, F32},     // int + float -> the float
		{F64, I8, F64},      // float + int -> the float
		{Bool, Bool, Bool},  // matching non-numeric kinds
		{I64, String, None}, // incompatible
		{Bool, I32, None},   // incompatible
		{Null, F64, None},   // incompatible
	}

	for i, tt := range tests {
		if got := Promote(tt.a, tt.b); got != tt.expected {
			t.Errorf("tests[%d] - Promote(%s, %s) = %s, want %s",
				i, tt.a.Name(), tt.b.Name(), got.Name(), tt.expected.Name())
		}
	}
}

// Promotion commutes up to kind for every primitive pair.
func TestPromoteCommutative(t *testing.T) {
	prims := Primitives()
	for _, a := range prims {
		for _, b := range prims {
			ab := Promote(a, b)
			ba := Promote(b, a)
			if ab.TypeKind() != ba.TypeKind() {
				t.Errorf("Promote(%s, %s) kind %v != Promote(%s, %s) kind %v",
					a.Name(), b.Name(), ab.TypeKind(), b.Name(), a.Name(), ba.TypeKind())
			}
		}
	}
}

func TestCanAssign(t *testing.T) {
	tests := []struct {
		to, from Type
		expected bool
	}{
		{I32, I32, true},   // identical
		{I64, I32, true},   // integer widening
		{I32, I64, false},  // no narrowing
		{I64, U32, true},   // widening across signedness by size
		{F64, I64, true},   // int to float
		{F32, I8, true},    // int to float
		{I64, F32, false},  // no float to int
		{F64, F32, false},  // float kinds differ, no rule applies
		{Bool, Bool, true}, // identical
		{Bool, I8, false},
		{String, Char, false},
	}

	for i, tt := range tests {
		if got := CanAssign(tt.to, tt.from); got != tt.expected {
			t.Errorf("tests[%d] - CanAssign(%s, %s) = %v, want %v",
				i, tt.to.Name(), tt.from.Name(), got, tt.expected)
		}
	}
}

// Assignability is reflexive for every primitive type.
func TestCanAssignReflexive(t *testing.T) {
	for _, typ := range Primitives() {
		if !CanAssign(typ, typ) {
			t.Errorf("CanAssign(%s, %s) = false, want true", typ.Name(), typ.Name())
		}
	}
}

func TestEqualsAndSimilar(t *testing.T) {
	a := &Record{RecName: "Point"}
	b := &Record{RecName: "Point"}
	c := &Record{RecName: "Size"}

	if !Equals(a, b) {
		t.Error("records with the same name must be equal")
	}
	if Equals(a, c) {
		t.Error("records with different names must not be equal")
	}
	if !IsSimilar(a, c) {
		t.Error("records are kind-similar regardless of name")
	}
	if IsSimilar(a, I64) {
		t.Error("record and integer are not similar")
	}
}
