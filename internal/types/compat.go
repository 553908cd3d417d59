package types

// Kind predicates and the promotion/assignability rules.

// IsInteger reports whether t is a signed or unsigned integer type.
func IsInteger(t Type) bool {
	switch t.TypeKind() {
	case KindI8, KindI16, KindI32, KindI64, KindI128,
		KindU8, KindU16, KindU32, KindU64, KindU128:
		return true
	}
	return false
}

// IsFloat reports whether t is a floating-point type.
func IsFloat(t Type) bool {
	switch t.TypeKind() {
	case KindF16, KindF32, KindF64, KindF128:
		return true
	}
	return false
}

// IsNumeric reports whether t is integer or floating-point.
func IsNumeric(t Type) bool {
	return IsInteger(t) || IsFloat(t)
}

// IsPointer reports whether t is held indirectly: arrays, classes,
// records, and strings.
func IsPointer(t Type) bool {
	switch t.TypeKind() {
	case KindArray, KindClass, KindRecord, KindString:
		return true
	}
	return false
}

// IsTruthy reports whether t may appear in a condition position:
// every kind except none, void, and null.
func IsTruthy(t Type) bool {
	switch t.TypeKind() {
	case KindNone, KindVoid, KindNull:
		return false
	}
	return true
}

// IsPrimitive reports whether t is a scalar built-in: numeric, bool, or
// char.
func IsPrimitive(t Type) bool {
	return IsNumeric(t) || t.TypeKind() == KindBool || t.TypeKind() == KindChar
}

// IsNone reports whether t is the none type.
func IsNone(t Type) bool { return t.TypeKind() == KindNone }

// IsVoid reports whether t is the void type.
func IsVoid(t Type) bool { return t.TypeKind() == KindVoid }

// IsNull reports whether t is the null type.
func IsNull(t Type) bool { return t.TypeKind() == KindNull }

// Equals reports type equality, which is by name.
func Equals(a, b Type) bool {
	return a.Name() == b.Name()
}

// IsSimilar reports type similarity, which is by kind.
func IsSimilar(a, b Type) bool {
	return a.TypeKind() == b.TypeKind()
}

// Promote picks the common arithmetic type of a binary operation:
// matching kinds keep the left type; two floats or two integers widen to
// the larger byte width, and an equal-width signed/unsigned pair widens
// to the unsigned type; a float and an integer promote to the float;
// anything else yields none, a type error. Promote is commutative.
func Promote(a, b Type) Type {
	if a.TypeKind() == b.TypeKind() {
		return a
	}
	switch {
	case IsFloat(a) && IsFloat(b):
		return wider(a, b)
	case IsInteger(a) && IsInteger(b):
		return wider(a, b)
	case IsFloat(a) && IsInteger(b):
		return a
	case IsInteger(a) && IsFloat(b):
		return b
	}
	return None
}

func wider(a, b Type) Type {
	if b.Size() > a.Size() || (b.Size() == a.Size() && b.TypeKind() > a.TypeKind()) {
		return b
	}
	return a
}

// CanAssign reports whether a value of type from may flow into a binding
// of type to: identical kinds, integer-to-float widening, or integer
// widening where the source is no wider than the destination. There is
// no implicit narrowing and no float-to-integer conversion.
func CanAssign(to, from Type) bool {
	if to.TypeKind() == from.TypeKind() {
		return true
	}
	if IsFloat(to) && IsInteger(from) {
		return true
	}
	if IsInteger(to) && IsInteger(from) && from.Size() <= to.Size() {
		return true
	}
	return false
}
