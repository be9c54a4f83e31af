package ir

import "strconv"

// Type represents a type in the IR. Scalar, vector, and matrix types are
// shared references into the builtin root scope and must never be copied;
// array and struct types are constructed during decode and owned by the
// scope that declared them. Type identity is pointer identity.
type Type struct {
	TypeName string
	Inner    TypeInner
}

func (t *Type) Name() string { return t.TypeName }

func (t *Type) String() string { return t.TypeName }

func (*Type) symbol() {}

// TypeInner represents the inner type kind.
type TypeInner interface {
	typeInner()
}

// VoidType is the type of functions returning nothing.
type VoidType struct{}

func (VoidType) typeInner() {}

// ScalarType represents scalar types.
type ScalarType struct {
	Kind ScalarKind
	Bits uint8 // nominal precision in bits

	// Priority orders scalars for implicit coercion; a larger value is a
	// wider type. See CoercionCost.
	Priority uint8
}

func (ScalarType) typeInner() {}

// ScalarKind represents scalar type kinds.
type ScalarKind uint8

const (
	ScalarSint  ScalarKind = iota // Signed integer
	ScalarUint                    // Unsigned integer
	ScalarFloat                   // Floating point
	ScalarBool                    // Boolean
)

// VectorType represents vector types such as float4.
type VectorType struct {
	Component *Type // scalar component type
	Size      uint8 // 2..4
}

func (VectorType) typeInner() {}

// MatrixType represents matrix types such as float3x4.
type MatrixType struct {
	Component  *Type // scalar component type
	ColumnType *Type // vector type produced by indexing one column
	Columns    uint8
	Rows       uint8
}

func (MatrixType) typeInner() {}

// UnsizedArray is the array size of an array type with no fixed length.
const UnsizedArray = -1

// ArrayType represents array types.
type ArrayType struct {
	Component *Type
	Size      int // element count, or UnsizedArray
}

func (ArrayType) typeInner() {}

// StructType represents struct types.
type StructType struct {
	Fields         []StructField
	InterfaceBlock bool
}

func (StructType) typeInner() {}

// StructField represents one field of a struct type.
type StructField struct {
	Modifiers Modifiers
	FieldName string
	Type      *Type
}

// MakeArrayType builds an array type over component, synthesizing the name
// from the component's name ("float[4]", or "float[]" when unsized).
func MakeArrayType(component *Type, size int) *Type {
	name := component.TypeName + "["
	if size != UnsizedArray {
		name += strconv.Itoa(size)
	}
	name += "]"

	return &Type{
		TypeName: name,
		Inner:    ArrayType{Component: component, Size: size},
	}
}

// IsUnsigned reports whether t is an unsigned integer scalar. Integer
// literal payloads of unsigned type are read as unsigned 32-bit values.
func (t *Type) IsUnsigned() bool {
	s, ok := t.Inner.(ScalarType)
	return ok && s.Kind == ScalarUint
}

// Fields returns the struct fields of t, looking through one level of
// array (interface blocks may be arrays of their struct type).
func (t *Type) Fields() []StructField {
	switch inner := t.Inner.(type) {
	case StructType:
		return inner.Fields
	case ArrayType:
		return inner.Component.Fields()
	}

	return nil
}

// CoercionCost returns the cost of implicitly converting a value of type t
// to target, and whether the conversion is allowed at all. Identical types
// cost 0; scalar widening costs 1 plus the priority distance; vectors and
// matrices coerce componentwise when their shapes match.
func (t *Type) CoercionCost(target *Type) (int, bool) {
	if t == target {
		return 0, true
	}

	switch from := t.Inner.(type) {
	case ScalarType:
		to, ok := target.Inner.(ScalarType)
		if !ok {
			return 0, false
		}

		return scalarCoercionCost(from, to)
	case VectorType:
		to, ok := target.Inner.(VectorType)
		if !ok || from.Size != to.Size {
			return 0, false
		}

		return from.Component.CoercionCost(to.Component)
	case MatrixType:
		to, ok := target.Inner.(MatrixType)
		if !ok || from.Columns != to.Columns || from.Rows != to.Rows {
			return 0, false
		}

		return from.Component.CoercionCost(to.Component)
	}

	return 0, false
}

func scalarCoercionCost(from, to ScalarType) (int, bool) {
	ok := from.Kind == to.Kind ||
		((from.Kind == ScalarSint || from.Kind == ScalarUint) && to.Kind == ScalarFloat)
	if !ok {
		return 0, false
	}

	d := int(to.Priority) - int(from.Priority)
	if d < 0 {
		d = -d
	}

	return 1 + d, true
}
