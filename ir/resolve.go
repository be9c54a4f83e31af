package ir

// TypeOf returns the static type of an expression, or nil for the absent
// expression.
func TypeOf(e Expression) *Type {
	switch e := e.(type) {
	case nil:
		return nil
	case *BinaryExpression:
		return e.ResultType
	case *Literal:
		return e.Type
	case *ConstructorArray:
		return e.Type
	case *ConstructorArrayCast:
		return e.Type
	case *ConstructorCompound:
		return e.Type
	case *ConstructorCompoundCast:
		return e.Type
	case *ConstructorDiagonalMatrix:
		return e.Type
	case *ConstructorMatrixResize:
		return e.Type
	case *ConstructorScalarCast:
		return e.Type
	case *ConstructorSplat:
		return e.Type
	case *ConstructorStruct:
		return e.Type
	case *FieldAccess:
		base := TypeOf(e.Base)
		if base == nil {
			return nil
		}

		fields := base.Fields()
		if e.FieldIndex < 0 || e.FieldIndex >= len(fields) {
			return nil
		}

		return fields[e.FieldIndex].Type
	case *FunctionCall:
		return e.Type
	case *IndexExpression:
		base := TypeOf(e.Base)
		if base == nil {
			return nil
		}

		switch inner := base.Inner.(type) {
		case ArrayType:
			return inner.Component
		case VectorType:
			return inner.Component
		case MatrixType:
			return inner.ColumnType
		}

		return nil
	case *PostfixExpression:
		return TypeOf(e.Operand)
	case *PrefixExpression:
		return TypeOf(e.Operand)
	case *Setting:
		return e.Type
	case *Swizzle:
		return e.ResultType
	case *TernaryExpression:
		return TypeOf(e.IfTrue)
	case *VariableReference:
		return e.Variable.Type
	}

	return nil
}

// BinaryResultType returns the static type of an arithmetic or bitwise
// binary expression over operands of the given types: a vector or matrix
// operand wins over a scalar one, and between two coercible operands of
// the same shape the higher-priority component wins. It returns nil when
// the operands cannot combine.
func BinaryResultType(left, right *Type) *Type {
	if left == nil || right == nil {
		return nil
	}

	if left == right {
		return left
	}

	_, leftScalar := left.Inner.(ScalarType)
	_, rightScalar := right.Inner.(ScalarType)

	if leftScalar != rightScalar {
		if leftScalar {
			return right
		}

		return left
	}

	_, leftCoerces := left.CoercionCost(right)
	_, rightCoerces := right.CoercionCost(left)

	switch {
	case leftCoerces && rightCoerces:
		lc, _ := componentScalar(left)
		rc, _ := componentScalar(right)

		if rc.Priority > lc.Priority {
			return right
		}

		return left
	case leftCoerces:
		return right
	case rightCoerces:
		return left
	}

	return nil
}

func componentScalar(t *Type) (ScalarType, bool) {
	switch inner := t.Inner.(type) {
	case ScalarType:
		return inner, true
	case VectorType:
		return componentScalar(inner.Component)
	case MatrixType:
		return componentScalar(inner.Component)
	}

	return ScalarType{}, false
}

// FindBestOverload selects, among the overloads reachable from decl, the
// declaration whose parameter types best match the argument list: an exact
// match wins, otherwise the cheapest total implicit conversion does. It
// returns nil when no overload accepts the arguments or when two overloads
// tie, both of which indicate an unresolvable call.
//
// A declaration with no overload chain is returned as-is: the call was
// resolved against it when the program was first compiled.
func FindBestOverload(decl *FunctionDeclaration, args []Expression) *FunctionDeclaration {
	if decl.NextOverload == nil {
		return decl
	}

	argTypes := make([]*Type, len(args))
	for i, a := range args {
		argTypes[i] = TypeOf(a)
	}

	var best *FunctionDeclaration

	bestCost := 0
	ambiguous := false

	for f := decl; f != nil; f = f.NextOverload {
		cost, ok := callCost(f, argTypes)
		if !ok {
			continue
		}

		switch {
		case best == nil || cost < bestCost:
			best, bestCost, ambiguous = f, cost, false
		case cost == bestCost:
			ambiguous = true
		}
	}

	if ambiguous {
		return nil
	}

	return best
}

func callCost(f *FunctionDeclaration, argTypes []*Type) (int, bool) {
	if len(f.Parameters) != len(argTypes) {
		return 0, false
	}

	total := 0

	for i, p := range f.Parameters {
		if argTypes[i] == nil {
			return 0, false
		}

		cost, ok := argTypes[i].CoercionCost(p.Type)
		if !ok {
			return 0, false
		}

		total += cost
	}

	return total, true
}
