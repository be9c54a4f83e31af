package builtins

import (
	"strconv"
	"sync"

	"github.com/gogpu/sksl/ir"
)

// Builtin ids carried in layout(builtin=...) on predeclared variables.
const (
	positionBuiltin   = 0
	fragCoordBuiltin  = 15
	vertexIDBuiltin   = 42
	instanceIDBuiltin = 43
)

var (
	mu    sync.Mutex
	roots = map[ir.ProgramKind]*ir.Scope{}
)

// RootScope returns the builtin root scope for kind, building it on first
// use. The scope and every symbol in it are shared between all programs of
// the kind and must not be mutated.
func RootScope(kind ir.ProgramKind) *ir.Scope {
	mu.Lock()
	defer mu.Unlock()

	s, ok := roots[kind]
	if !ok {
		s = build(kind)
		roots[kind] = s
	}

	return s
}

func build(kind ir.ProgramKind) *ir.Scope {
	b := &builder{scope: ir.NewScope(nil, true)}

	b.coreTypes()
	b.intrinsics()
	b.programVariables(kind)

	return b.scope
}

type builder struct {
	scope *ir.Scope

	voidType  *ir.Type
	boolType  *ir.Type
	intType   *ir.Type
	uintType  *ir.Type
	floatType *ir.Type
	halfType  *ir.Type
}

func (b *builder) declare(t *ir.Type) *ir.Type {
	b.scope.Insert(t)
	b.scope.TakeOwnership(t)

	return t
}

func (b *builder) scalar(name string, kind ir.ScalarKind, bits, priority uint8) *ir.Type {
	return b.declare(&ir.Type{
		TypeName: name,
		Inner:    ir.ScalarType{Kind: kind, Bits: bits, Priority: priority},
	})
}

func (b *builder) findType(name string) *ir.Type {
	return b.scope.Find(name).(*ir.Type)
}

func (b *builder) coreTypes() {
	b.voidType = b.declare(&ir.Type{TypeName: "void", Inner: ir.VoidType{}})

	// Priority orders scalars for implicit coercion; float is widest.
	b.boolType = b.scalar("bool", ir.ScalarBool, 1, 0)
	b.intType = b.scalar("int", ir.ScalarSint, 32, 1)
	b.uintType = b.scalar("uint", ir.ScalarUint, 32, 1)
	b.halfType = b.scalar("half", ir.ScalarFloat, 16, 2)
	b.floatType = b.scalar("float", ir.ScalarFloat, 32, 3)

	for _, c := range []*ir.Type{b.boolType, b.intType, b.uintType, b.halfType, b.floatType} {
		for size := uint8(2); size <= 4; size++ {
			b.declare(&ir.Type{
				TypeName: c.TypeName + strconv.Itoa(int(size)),
				Inner:    ir.VectorType{Component: c, Size: size},
			})
		}
	}

	for _, c := range []*ir.Type{b.halfType, b.floatType} {
		for cols := uint8(2); cols <= 4; cols++ {
			for rows := uint8(2); rows <= 4; rows++ {
				column := b.findType(c.TypeName + strconv.Itoa(int(rows)))

				b.declare(&ir.Type{
					TypeName: c.TypeName + strconv.Itoa(int(cols)) + "x" + strconv.Itoa(int(rows)),
					Inner: ir.MatrixType{
						Component:  c,
						ColumnType: column,
						Columns:    cols,
						Rows:       rows,
					},
				})
			}
		}
	}
}

var paramNames = [...]string{"x", "y", "z"}

func (b *builder) function(name string, ret *ir.Type, params ...*ir.Type) {
	f := &ir.FunctionDeclaration{
		FuncName:   name,
		Modifiers:  ir.DefaultModifiers(),
		Parameters: make([]*ir.Variable, len(params)),
		ReturnType: ret,
		Builtin:    true,
	}

	for i, p := range params {
		f.Parameters[i] = &ir.Variable{
			VarName:   paramNames[i],
			Modifiers: ir.DefaultModifiers(),
			Type:      p,
			Storage:   ir.StorageParameter,
			Builtin:   true,
		}
	}

	b.scope.Insert(f)
	b.scope.TakeOwnership(f)
}

// genTypes lists the scalar and vector forms an intrinsic is overloaded
// over, for one component type.
func (b *builder) genTypes(component *ir.Type) []*ir.Type {
	gen := []*ir.Type{component}
	for size := 2; size <= 4; size++ {
		gen = append(gen, b.findType(component.TypeName+strconv.Itoa(size)))
	}

	return gen
}

func (b *builder) intrinsics() {
	floats := append(b.genTypes(b.floatType), b.genTypes(b.halfType)...)
	numeric := append(floats, b.genTypes(b.intType)...)

	for _, t := range floats {
		b.function("sin", t, t)
		b.function("cos", t, t)
		b.function("sqrt", t, t)
		b.function("mix", t, t, t)
		b.function("saturate", t, t)

		scalar := t
		if v, ok := t.Inner.(ir.VectorType); ok {
			scalar = v.Component

			b.function("dot", scalar, t, t)
			b.function("normalize", t, t)
		}

		b.function("length", scalar, t)
	}

	for _, t := range numeric {
		b.function("abs", t, t)
		b.function("min", t, t, t)
		b.function("max", t, t, t)
		b.function("clamp", t, t, t, t)
	}
}

func (b *builder) builtinVariable(name string, t *ir.Type, builtinID int, flags ir.ModifierFlags) {
	layout := ir.DefaultLayout()
	if builtinID >= 0 {
		layout.Flags |= ir.LayoutBuiltin
		layout.Builtin = builtinID
	}

	v := &ir.Variable{
		VarName:   name,
		Modifiers: ir.Modifiers{Layout: layout, Flags: flags},
		Type:      t,
		Storage:   ir.StorageGlobal,
		Builtin:   true,
	}

	b.scope.Insert(v)
	b.scope.TakeOwnership(v)
}

func (b *builder) programVariables(kind ir.ProgramKind) {
	float4 := b.findType("float4")

	switch kind {
	case ir.ProgramFragment:
		b.builtinVariable("sk_FragCoord", float4, fragCoordBuiltin, ir.ModifierIn)
		b.builtinVariable("sk_FragColor", b.findType("half4"), -1, ir.ModifierOut)
	case ir.ProgramVertex:
		b.builtinVariable("sk_Position", float4, positionBuiltin, ir.ModifierOut)
		b.builtinVariable("sk_VertexID", b.intType, vertexIDBuiltin, ir.ModifierIn)
		b.builtinVariable("sk_InstanceID", b.intType, instanceIDBuiltin, ir.ModifierIn)
	case ir.ProgramRuntimeColorFilter, ir.ProgramRuntimeShader, ir.ProgramRuntimeBlender:
		b.builtinVariable("sk_FragCoord", float4, fragCoordBuiltin, ir.ModifierIn)
	}
}
