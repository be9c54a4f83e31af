package builtins

import (
	"testing"

	"github.com/gogpu/sksl/ir"
)

func TestRootScopeShared(t *testing.T) {
	a := RootScope(ir.ProgramFragment)
	b := RootScope(ir.ProgramFragment)

	if a != b {
		t.Fatalf("RootScope returned distinct scopes for the same kind")
	}

	if a.Find("float") != b.Find("float") {
		t.Errorf("float resolved to distinct types in the same kind")
	}

	other := RootScope(ir.ProgramVertex)
	if a == other {
		t.Errorf("fragment and vertex share a root scope")
	}
}

func TestRootScopeCoreTypes(t *testing.T) {
	s := RootScope(ir.ProgramFragment)

	for _, name := range []string{
		"void", "bool", "int", "uint", "half", "float",
		"bool3", "int2", "uint4", "half2", "float4",
		"float2x2", "float3x3", "float4x4", "float3x4", "half2x2",
	} {
		sym := s.Find(name)
		if sym == nil {
			t.Errorf("Find(%q) = nil", name)
			continue
		}

		if _, ok := sym.(*ir.Type); !ok {
			t.Errorf("Find(%q) = %T, want a type", name, sym)
		}
	}

	float4, ok := s.Find("float4").(*ir.Type)
	if !ok {
		t.Fatalf("float4 missing")
	}

	v, ok := float4.Inner.(ir.VectorType)
	if !ok || v.Size != 4 || v.Component != s.Find("float").(*ir.Type) {
		t.Errorf("float4 = %+v, want a 4-vector of the shared float type", float4.Inner)
	}

	m, ok := s.Find("float3x4").(*ir.Type).Inner.(ir.MatrixType)
	if !ok || m.Columns != 3 || m.Rows != 4 {
		t.Fatalf("float3x4 = %+v", m)
	}

	if m.ColumnType != s.Find("float4").(*ir.Type) {
		t.Errorf("float3x4 column type = %v, want the shared float4", m.ColumnType)
	}
}

func TestRootScopeIntrinsics(t *testing.T) {
	s := RootScope(ir.ProgramFragment)

	sin, ok := s.Find("sin").(*ir.FunctionDeclaration)
	if !ok {
		t.Fatalf("sin missing")
	}

	n := 0
	for f := sin; f != nil; f = f.NextOverload {
		if !f.Builtin {
			t.Errorf("%s is not marked builtin", f.Description())
		}

		if len(f.Parameters) != 1 {
			t.Errorf("%s has %d parameters, want 1", f.Description(), len(f.Parameters))
		}

		n++
	}

	// Scalar plus three vector widths, for float and half.
	if n != 8 {
		t.Errorf("sin has %d overloads, want 8", n)
	}

	clamp, ok := s.Find("clamp").(*ir.FunctionDeclaration)
	if !ok {
		t.Fatalf("clamp missing")
	}

	for f := clamp; f != nil; f = f.NextOverload {
		if len(f.Parameters) != 3 {
			t.Errorf("%s has %d parameters, want 3", f.Description(), len(f.Parameters))
		}
	}

	dot, ok := s.Find("dot").(*ir.FunctionDeclaration)
	if !ok {
		t.Fatalf("dot missing")
	}

	for f := dot; f != nil; f = f.NextOverload {
		if _, ok := f.Parameters[0].Type.Inner.(ir.VectorType); !ok {
			t.Errorf("%s takes a non-vector", f.Description())
		}

		if _, ok := f.ReturnType.Inner.(ir.ScalarType); !ok {
			t.Errorf("%s returns a non-scalar", f.Description())
		}
	}
}

func TestRootScopeProgramVariables(t *testing.T) {
	frag := RootScope(ir.ProgramFragment)

	coord, ok := frag.Find("sk_FragCoord").(*ir.Variable)
	if !ok {
		t.Fatalf("sk_FragCoord missing from fragment scope")
	}

	if coord.Type != frag.Find("float4").(*ir.Type) {
		t.Errorf("sk_FragCoord type = %v, want float4", coord.Type)
	}

	if coord.Modifiers.Layout.Flags&ir.LayoutBuiltin == 0 || coord.Modifiers.Layout.Builtin != fragCoordBuiltin {
		t.Errorf("sk_FragCoord layout = %+v, want builtin %d", coord.Modifiers.Layout, fragCoordBuiltin)
	}

	color, ok := frag.Find("sk_FragColor").(*ir.Variable)
	if !ok {
		t.Fatalf("sk_FragColor missing from fragment scope")
	}

	if color.Modifiers.Flags&ir.ModifierOut == 0 {
		t.Errorf("sk_FragColor is not an out variable")
	}

	vert := RootScope(ir.ProgramVertex)

	if vert.Find("sk_Position") == nil || vert.Find("sk_VertexID") == nil {
		t.Errorf("vertex scope is missing its predeclared variables")
	}

	if vert.Find("sk_FragColor") != nil {
		t.Errorf("sk_FragColor leaked into the vertex scope")
	}

	shader := RootScope(ir.ProgramRuntimeShader)

	if shader.Find("sk_FragCoord") == nil {
		t.Errorf("runtime shader scope is missing sk_FragCoord")
	}
}
