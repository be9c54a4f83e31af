package rehydrate

import (
	"math"
	"strconv"

	"github.com/gogpu/sksl/ir"
)

func (r *Rehydrator) expressionArray() []ir.Expression {
	out := make([]ir.Expression, int(r.read.u8()))
	for i := range out {
		out[i] = r.expression()
	}

	return out
}

func (r *Rehydrator) singleArgument() ir.Expression {
	args := r.expressionArray()
	if len(args) != 1 {
		fail(ErrCorruptStream, "constructor takes one argument, got %d", len(args))
	}

	return args[0]
}

func (r *Rehydrator) expression() ir.Expression {
	cmd := r.read.u8()
	switch cmd {
	case cmdBinary:
		left := r.expression()
		op := ir.Operator(r.read.u8())
		right := r.expression()

		return &ir.BinaryExpression{Left: left, Op: op, Right: right, ResultType: r.binaryType(op, left, right)}
	case cmdBoolLiteral:
		return &ir.Literal{Type: r.builtinType("bool"), Value: ir.LiteralBool(r.read.u8() != 0)}
	case cmdConstructorArray:
		t := r.typeSymbol()
		return &ir.ConstructorArray{Type: t, Arguments: r.expressionArray()}
	case cmdConstructorArrayCast:
		t := r.typeSymbol()
		return &ir.ConstructorArrayCast{Type: t, Argument: r.singleArgument()}
	case cmdConstructorCompound:
		t := r.typeSymbol()
		return &ir.ConstructorCompound{Type: t, Arguments: r.expressionArray()}
	case cmdConstructorCompoundCast:
		t := r.typeSymbol()
		return &ir.ConstructorCompoundCast{Type: t, Argument: r.singleArgument()}
	case cmdConstructorDiagonalMatrix:
		t := r.typeSymbol()
		return &ir.ConstructorDiagonalMatrix{Type: t, Argument: r.singleArgument()}
	case cmdConstructorMatrixResize:
		t := r.typeSymbol()
		return &ir.ConstructorMatrixResize{Type: t, Argument: r.singleArgument()}
	case cmdConstructorScalarCast:
		t := r.typeSymbol()
		return &ir.ConstructorScalarCast{Type: t, Argument: r.singleArgument()}
	case cmdConstructorSplat:
		t := r.typeSymbol()
		return &ir.ConstructorSplat{Type: t, Argument: r.singleArgument()}
	case cmdConstructorStruct:
		t := r.typeSymbol()
		return &ir.ConstructorStruct{Type: t, Arguments: r.expressionArray()}
	case cmdFieldAccess:
		base := r.expression()
		index := int(r.read.u8())
		owner := ir.FieldAccessOwner(r.read.u8())

		return &ir.FieldAccess{Base: base, FieldIndex: index, Owner: owner}
	case cmdFloatLiteral:
		t := r.typeSymbol()
		bits := r.read.u32()

		return &ir.Literal{Type: t, Value: ir.LiteralFloat(math.Float32frombits(bits))}
	case cmdFunctionCall:
		t := r.typeSymbol()
		f := r.functionRef()
		args := r.expressionArray()

		// The recorded function may be one of several overloads; pick the
		// one the argument types select, the way the original compile did.
		best := ir.FindBestOverload(f, args)
		if best == nil {
			fail(ErrCorruptStream, "no matching overload calling %q", f.FuncName)
		}

		return &ir.FunctionCall{Type: t, Function: best, Arguments: args}
	case cmdIndex:
		base := r.expression()
		index := r.expression()

		return &ir.IndexExpression{Base: base, Index: index}
	case cmdIntLiteral:
		t := r.typeSymbol()

		// Unsigned payloads zero-extend, signed ones sign-extend; the u32
		// 0xFFFFFFFF round-trips as 4294967295 or -1 depending on type.
		var v int64
		if t.IsUnsigned() {
			v = int64(r.read.u32())
		} else {
			v = int64(int32(r.read.u32()))
		}

		return &ir.Literal{Type: t, Value: ir.LiteralInt(v)}
	case cmdPostfix:
		op := ir.Operator(r.read.u8())
		return &ir.PostfixExpression{Operand: r.expression(), Op: op}
	case cmdPrefix:
		op := ir.Operator(r.read.u8())
		return &ir.PrefixExpression{Op: op, Operand: r.expression()}
	case cmdSetting:
		name := r.readString()
		return &ir.Setting{SettingName: name, Type: r.settingType(name)}
	case cmdSwizzle:
		base := r.expression()

		components := make([]uint8, int(r.read.u8()))
		for i := range components {
			components[i] = r.read.u8()
		}

		return &ir.Swizzle{Base: base, Components: components, ResultType: r.swizzleType(base, len(components))}
	case cmdTernary:
		test := r.expression()
		ifTrue := r.expression()
		ifFalse := r.expression()

		return &ir.TernaryExpression{Test: test, IfTrue: ifTrue, IfFalse: ifFalse}
	case cmdVariableReference:
		v := r.variableRef()
		kind := ir.RefKind(r.read.u8())

		return &ir.VariableReference{Variable: v, RefKind: kind}
	case cmdVoid:
		return nil
	}

	fail(ErrCorruptStream, "unsupported expression command %d", cmd)
	return nil
}

func (r *Rehydrator) builtinType(name string) *ir.Type {
	t, ok := r.symbols.Root().Find(name).(*ir.Type)
	if !ok {
		fail(ErrCorruptStream, "builtin type %q not found", name)
	}

	return t
}

func (r *Rehydrator) binaryType(op ir.Operator, left, right ir.Expression) *ir.Type {
	if op.IsComparison() || op.IsLogical() {
		return r.builtinType("bool")
	}

	// An assignment keeps the type of its target.
	if op.IsAssignment() {
		return ir.TypeOf(left)
	}

	t := ir.BinaryResultType(ir.TypeOf(left), ir.TypeOf(right))
	if t == nil {
		fail(ErrCorruptStream, "operands of %v do not combine", op)
	}

	return t
}

func (r *Rehydrator) swizzleType(base ir.Expression, count int) *ir.Type {
	t := ir.TypeOf(base)
	if t == nil {
		fail(ErrCorruptStream, "swizzle of an untyped expression")
	}

	v, ok := t.Inner.(ir.VectorType)
	if !ok {
		fail(ErrCorruptStream, "swizzle of non-vector type %v", t)
	}

	if count == 1 {
		return v.Component
	}

	return r.builtinType(v.Component.TypeName + strconv.Itoa(count))
}

// settingNames lists the capability settings a module may refer to, one
// per shader-caps field. All current settings are boolean.
var settingNames = map[string]bool{
	"allowNarrowingConversions":                   true,
	"atan2ImplementedAsAtanYOverX":                true,
	"builtinDeterminantSupport":                   true,
	"builtinFMASupport":                           true,
	"canUseFractForNegativeValues":                true,
	"canUseMinAndAbsTogether":                     true,
	"emulateAbsIntFunction":                       true,
	"floatIs32Bits":                               true,
	"halfIs32Bits":                                true,
	"integerSupport":                              true,
	"mustDoOpBetweenFloorAndAbs":                  true,
	"mustForceNegatedAtanParamToFloat":            true,
	"mustForceNegatedLdexpParamToMultiply":        true,
	"mustGuardDivisionEvenAfterExplicitZeroCheck": true,
	"noDefaultPrecisionForExternalSamplers":       true,
	"removePowWithConstantExponent":               true,
	"rewriteMatrixComparisons":                    true,
	"rewriteMatrixVectorMultiply":                 true,
}

func (r *Rehydrator) settingType(name string) *ir.Type {
	if !settingNames[name] {
		fail(ErrCorruptStream, "unknown setting %q", name)
	}

	return r.builtinType("bool")
}
