package ir

import (
	"math"

	"tlog.app/go/errors"
)

// loopTerminationLimit caps the trip count a loop may have and still be
// considered unrollable.
const loopTerminationLimit = 100000

// LoopUnrollInfo describes a for loop whose trip count is statically
// known: the index variable, its starting value, the per-iteration delta,
// and the number of iterations.
type LoopUnrollInfo struct {
	Index *Variable
	Start float64
	Delta float64
	Count int
}

// GetLoopUnrollInfo determines whether a for loop with the given
// components qualifies for unrolling, using the ES2 strict-loop rules:
// the initializer declares a scalar numeric index with a constant value,
// the test compares the index against a constant, the increment adjusts
// the index by a constant amount, and the body never writes the index.
// The result is pure metadata derived deterministically from the four
// components; an error only means the loop stays on the ordinary code
// path.
func GetLoopUnrollInfo(init Statement, test, next Expression, body Statement) (*LoopUnrollInfo, error) {
	decl, ok := init.(*VarDeclaration)
	if !ok {
		return nil, errors.New("loop initializer is not a variable declaration")
	}

	index := decl.Var

	s, ok := index.Type.Inner.(ScalarType)
	if !ok || s.Kind == ScalarBool {
		return nil, errors.New("loop index %q is not a scalar numeric variable", index.VarName)
	}

	start, ok := constantValue(decl.Value)
	if !ok {
		return nil, errors.New("loop start value is not constant")
	}

	cond, ok := test.(*BinaryExpression)
	if !ok {
		return nil, errors.New("loop test is not a comparison")
	}

	if !refersTo(cond.Left, index) {
		return nil, errors.New("loop test does not compare the index")
	}

	end, ok := constantValue(cond.Right)
	if !ok {
		return nil, errors.New("loop bound is not constant")
	}

	delta, err := incrementDelta(next, index)
	if err != nil {
		return nil, err
	}

	count, err := tripCount(start, end, delta, cond.Op)
	if err != nil {
		return nil, err
	}

	if count > loopTerminationLimit {
		return nil, errors.New("loop runs for %d iterations, limit is %d", count, loopTerminationLimit)
	}

	if statementWritesVariable(body, index) {
		return nil, errors.New("loop body modifies index %q", index.VarName)
	}

	return &LoopUnrollInfo{Index: index, Start: start, Delta: delta, Count: count}, nil
}

func constantValue(e Expression) (float64, bool) {
	lit, ok := e.(*Literal)
	if !ok {
		return 0, false
	}

	switch v := lit.Value.(type) {
	case LiteralInt:
		return float64(v), true
	case LiteralFloat:
		return float64(v), true
	}

	return 0, false
}

func refersTo(e Expression, v *Variable) bool {
	ref, ok := e.(*VariableReference)
	return ok && ref.Variable == v
}

func incrementDelta(next Expression, index *Variable) (float64, error) {
	switch n := next.(type) {
	case *PrefixExpression:
		return stepDelta(n.Op, n.Operand, index)
	case *PostfixExpression:
		return stepDelta(n.Op, n.Operand, index)
	case *BinaryExpression:
		if !refersTo(n.Left, index) {
			return 0, errors.New("loop increment does not modify the index")
		}

		step, ok := constantValue(n.Right)
		if !ok {
			return 0, errors.New("loop increment amount is not constant")
		}

		switch n.Op {
		case OpPlusAssign:
			return step, nil
		case OpMinusAssign:
			return -step, nil
		}

		return 0, errors.New("unsupported loop increment operator %v", n.Op)
	}

	return 0, errors.New("unsupported loop increment")
}

func stepDelta(op Operator, operand Expression, index *Variable) (float64, error) {
	if !refersTo(operand, index) {
		return 0, errors.New("loop increment does not modify the index")
	}

	switch op {
	case OpPlusPlus:
		return 1, nil
	case OpMinusMinus:
		return -1, nil
	}

	return 0, errors.New("unsupported loop increment operator %v", op)
}

func tripCount(start, end, delta float64, op Operator) (int, error) {
	if delta == 0 {
		return 0, errors.New("loop increment is zero")
	}

	forwards := delta > 0

	var inclusive bool

	switch op {
	case OpLt:
		inclusive = false

		if !forwards {
			return 0, errors.New("loop moves away from its bound")
		}
	case OpLtEq:
		inclusive = true

		if !forwards {
			return 0, errors.New("loop moves away from its bound")
		}
	case OpGt:
		inclusive = false

		if forwards {
			return 0, errors.New("loop moves away from its bound")
		}
	case OpGtEq:
		inclusive = true

		if forwards {
			return 0, errors.New("loop moves away from its bound")
		}
	case OpNotEq:
		iters := (end - start) / delta
		if iters < 0 || iters != math.Trunc(iters) {
			return 0, errors.New("loop never hits its bound exactly")
		}

		return int(iters), nil
	default:
		return 0, errors.New("unsupported loop comparison %v", op)
	}

	if forwards != (start < end) {
		return 0, nil
	}

	iters := (end - start) / delta

	count := math.Ceil(iters)
	if inclusive && count == iters {
		count++
	}

	return int(count), nil
}

// statementWritesVariable reports whether any reference to v inside s is a
// write.
func statementWritesVariable(s Statement, v *Variable) bool {
	switch s := s.(type) {
	case nil:
		return false
	case *Block:
		for _, c := range s.Statements {
			if statementWritesVariable(c, v) {
				return true
			}
		}
	case *DoStatement:
		return statementWritesVariable(s.Body, v) || expressionWritesVariable(s.Test, v)
	case *ExpressionStatement:
		return expressionWritesVariable(s.Expr, v)
	case *ForStatement:
		return statementWritesVariable(s.Init, v) ||
			expressionWritesVariable(s.Test, v) ||
			expressionWritesVariable(s.Next, v) ||
			statementWritesVariable(s.Body, v)
	case *IfStatement:
		return expressionWritesVariable(s.Test, v) ||
			statementWritesVariable(s.IfTrue, v) ||
			statementWritesVariable(s.IfFalse, v)
	case *ReturnStatement:
		return expressionWritesVariable(s.Value, v)
	case *SwitchStatement:
		if expressionWritesVariable(s.Value, v) {
			return true
		}

		for _, c := range s.Cases {
			if statementWritesVariable(c, v) {
				return true
			}
		}
	case *SwitchCase:
		return statementWritesVariable(s.Body, v)
	case *VarDeclaration:
		return expressionWritesVariable(s.Value, v)
	}

	return false
}

func expressionWritesVariable(e Expression, v *Variable) bool {
	switch e := e.(type) {
	case nil:
		return false
	case *VariableReference:
		return e.Variable == v && e.RefKind != RefRead
	case *BinaryExpression:
		return expressionWritesVariable(e.Left, v) || expressionWritesVariable(e.Right, v)
	case *ConstructorArray:
		return anyExpressionWritesVariable(e.Arguments, v)
	case *ConstructorArrayCast:
		return expressionWritesVariable(e.Argument, v)
	case *ConstructorCompound:
		return anyExpressionWritesVariable(e.Arguments, v)
	case *ConstructorCompoundCast:
		return expressionWritesVariable(e.Argument, v)
	case *ConstructorDiagonalMatrix:
		return expressionWritesVariable(e.Argument, v)
	case *ConstructorMatrixResize:
		return expressionWritesVariable(e.Argument, v)
	case *ConstructorScalarCast:
		return expressionWritesVariable(e.Argument, v)
	case *ConstructorSplat:
		return expressionWritesVariable(e.Argument, v)
	case *ConstructorStruct:
		return anyExpressionWritesVariable(e.Arguments, v)
	case *FieldAccess:
		return expressionWritesVariable(e.Base, v)
	case *FunctionCall:
		return anyExpressionWritesVariable(e.Arguments, v)
	case *IndexExpression:
		return expressionWritesVariable(e.Base, v) || expressionWritesVariable(e.Index, v)
	case *PostfixExpression:
		return expressionWritesVariable(e.Operand, v)
	case *PrefixExpression:
		return expressionWritesVariable(e.Operand, v)
	case *Swizzle:
		return expressionWritesVariable(e.Base, v)
	case *TernaryExpression:
		return expressionWritesVariable(e.Test, v) ||
			expressionWritesVariable(e.IfTrue, v) ||
			expressionWritesVariable(e.IfFalse, v)
	}

	return false
}

func anyExpressionWritesVariable(args []Expression, v *Variable) bool {
	for _, a := range args {
		if expressionWritesVariable(a, v) {
			return true
		}
	}

	return false
}
