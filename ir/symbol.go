package ir

import "strings"

// Symbol is a named entity declared in a Scope: a type, a variable, a
// struct field, or a function declaration.
type Symbol interface {
	Name() string
	symbol()
}

// StorageClass describes where a variable lives.
type StorageClass uint8

const (
	StorageGlobal StorageClass = iota
	StorageInterfaceBlock
	StorageLocal
	StorageParameter
)

// Variable represents a declared variable, including function parameters
// and interface-block backing variables.
type Variable struct {
	VarName   string
	Modifiers Modifiers
	Type      *Type
	Storage   StorageClass

	// Builtin is true for variables declared in a builtin module scope.
	Builtin bool
}

func (v *Variable) Name() string { return v.VarName }

func (*Variable) symbol() {}

// Field is a purely descriptive symbol naming one field of a struct-typed
// variable. It owns nothing; Owner and the field index fully identify it.
type Field struct {
	Owner      *Variable
	FieldIndex int
}

// Name returns the field's name as declared in the owner's struct type.
func (f *Field) Name() string {
	fields := f.Owner.Type.Fields()
	if f.FieldIndex < 0 || f.FieldIndex >= len(fields) {
		return ""
	}
	return fields[f.FieldIndex].FieldName
}

func (*Field) symbol() {}

// FunctionDeclaration is an immutable function signature. A body, if any,
// lives in a separate FunctionDefinition element referencing the
// declaration.
//
// Declarations sharing a name within one scope form an overload chain:
// inserting a new declaration links it to the previously visible one via
// NextOverload. See FindBestOverload.
type FunctionDeclaration struct {
	FuncName   string
	Modifiers  Modifiers
	Parameters []*Variable
	ReturnType *Type

	// Builtin is true for declarations from a builtin module scope.
	Builtin bool

	NextOverload *FunctionDeclaration
}

func (f *FunctionDeclaration) Name() string { return f.FuncName }

func (*FunctionDeclaration) symbol() {}

// Description renders the signature, e.g. "float clamp(float x, float lo, float hi)".
func (f *FunctionDeclaration) Description() string {
	var sb strings.Builder

	sb.WriteString(f.ReturnType.TypeName)
	sb.WriteByte(' ')
	sb.WriteString(f.FuncName)
	sb.WriteByte('(')

	for i, p := range f.Parameters {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Type.TypeName)
		if p.VarName != "" {
			sb.WriteByte(' ')
			sb.WriteString(p.VarName)
		}
	}

	sb.WriteByte(')')

	return sb.String()
}
