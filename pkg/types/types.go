// Package types defines the lambari type system: the primitive types, the
// value shapes (scalar, array, pointer, reference), and the implicit
// coercion rule shared by every semantic check in the compiler.
package types

// Primitive is one of the closed set of base types. Any marks an
// unrecoverable type error and suppresses cascading diagnostics; Void marks
// non-expression statements.
type Primitive int

const (
	Int Primitive = iota
	Float
	Bool
	Void
	Any
)

// Shape distinguishes how a value of some primitive is held.
type Shape int

const (
	Scalar Shape = iota
	Array
	Pointer
	Reference
)

// Type pairs a primitive with a shape. The zero value is a scalar int.
type Type struct {
	Prim  Primitive
	Shape Shape
}

// Of returns the scalar type for a primitive.
func Of(p Primitive) Type {
	return Type{Prim: p}
}

// ArrayOf returns the array type over a primitive.
func ArrayOf(p Primitive) Type {
	return Type{Prim: p, Shape: Array}
}

// PointerTo returns the pointer-flavored version of a type.
func PointerTo(t Type) Type {
	return Type{Prim: t.Prim, Shape: Pointer}
}

// ReferenceTo returns the reference-flavored version of a type.
func ReferenceTo(t Type) Type {
	return Type{Prim: t.Prim, Shape: Reference}
}

// Elem returns the element type of an array type.
func (t Type) Elem() Type {
	return Type{Prim: t.Prim}
}

// Matches reports exact type equality. Coercion is never implied.
func Matches(target, source Type) bool {
	return target == source
}

// CanCoerce reports whether source may be implicitly widened to target.
// The only permitted coercion is scalar int to scalar float.
func CanCoerce(target, source Type) bool {
	return target == Of(Float) && source == Of(Int)
}

// String returns the spelled form used in rendered target code.
func (t Type) String() string {
	return t.Prim.String()
}

func (p Primitive) String() string {
	switch p {
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case Void:
		return "void"
	default:
		return "any"
	}
}

// Printable returns the human-readable form used in diagnostics.
func (t Type) Printable() string {
	return t.Prim.Printable()
}

func (p Primitive) Printable() string {
	switch p {
	case Int:
		return "integer"
	case Float:
		return "float"
	case Bool:
		return "boolean"
	case Void:
		return "void"
	default:
		return "any"
	}
}

// Literal is a raw lexeme paired with its syntactic type, as handed over by
// the scanner before any semantic validation.
type Literal struct {
	Text string
	Type Type
}
