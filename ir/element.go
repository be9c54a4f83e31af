package ir

// ProgramElement is a top-level declaration of a program.
type ProgramElement interface {
	programElement()
}

// FunctionDefinition pairs a previously declared function with its body.
// The declaration itself stays immutable; the definition is a separate
// record referencing it.
type FunctionDefinition struct {
	Declaration *FunctionDeclaration
	Body        Statement
	Builtin     bool
}

func (*FunctionDefinition) programElement() {}

// FunctionPrototype is a forward declaration without a body. Builtin
// prototypes are never serialized, so rehydrated prototypes are never
// builtin.
type FunctionPrototype struct {
	Declaration *FunctionDeclaration
	Builtin     bool
}

func (*FunctionPrototype) programElement() {}

// GlobalVarDeclaration wraps a variable declaration appearing at program
// scope.
type GlobalVarDeclaration struct {
	Declaration *VarDeclaration
}

func (*GlobalVarDeclaration) programElement() {}

// InterfaceBlock binds a struct type to a storage variable, e.g. a uniform
// block. ArraySize is 0 unless the block is arrayed.
type InterfaceBlock struct {
	Variable     *Variable
	TypeName     string
	InstanceName string
	ArraySize    int
}

func (*InterfaceBlock) programElement() {}

// StructDefinition declares a struct type at program scope.
type StructDefinition struct {
	Type *Type
}

func (*StructDefinition) programElement() {}

// ProgramKind identifies the flavor of program being compiled.
type ProgramKind uint8

const (
	ProgramFragment ProgramKind = iota
	ProgramVertex
	ProgramCompute
	ProgramRuntimeColorFilter
	ProgramRuntimeShader
	ProgramRuntimeBlender
)

var programKindNames = [...]string{
	ProgramFragment:           "fragment",
	ProgramVertex:             "vertex",
	ProgramCompute:            "compute",
	ProgramRuntimeColorFilter: "runtime-colorfilter",
	ProgramRuntimeShader:      "runtime-shader",
	ProgramRuntimeBlender:     "runtime-blender",
}

func (k ProgramKind) String() string {
	if int(k) < len(programKindNames) {
		return programKindNames[k]
	}

	return "unknown"
}

// LanguageVersion is the minimum source-language version a program
// requires.
type LanguageVersion uint8

const (
	Version100 LanguageVersion = iota // ES2-level feature set
	Version300                        // ES3-level feature set
)

// ProgramInputs flags runtime inputs the program depends on.
type ProgramInputs struct {
	// UseFlipRTUniform is set when the program reads the uniform that
	// flips coordinates for bottom-up render targets.
	UseFlipRTUniform bool
}

// Program is a fully type-checked program: the root result of rehydration.
// It owns its scope tree and elements and is immutable once built.
type Program struct {
	Kind     ProgramKind
	Version  LanguageVersion
	Elements []ProgramElement
	Symbols  *Scope
	Inputs   ProgramInputs
}
