package ir

import "testing"

// countedLoop builds the pieces of `for (int i = start; i OP end; i++/--)`.
func countedLoop(start, end int64, op Operator, delta float64) (*Variable, Statement, Expression, Expression) {
	integer := testIntType()

	i := &Variable{VarName: "i", Type: integer, Storage: StorageLocal}

	init := &VarDeclaration{
		Var:      i,
		BaseType: integer,
		Value:    &Literal{Type: integer, Value: LiteralInt(start)},
	}

	test := &BinaryExpression{
		Left:  &VariableReference{Variable: i},
		Op:    op,
		Right: &Literal{Type: integer, Value: LiteralInt(end)},
	}

	var next Expression
	switch delta {
	case 1:
		next = &PostfixExpression{Operand: &VariableReference{Variable: i, RefKind: RefReadWrite}, Op: OpPlusPlus}
	case -1:
		next = &PostfixExpression{Operand: &VariableReference{Variable: i, RefKind: RefReadWrite}, Op: OpMinusMinus}
	default:
		op := OpPlusAssign
		if delta < 0 {
			op, delta = OpMinusAssign, -delta
		}

		next = &BinaryExpression{
			Left:  &VariableReference{Variable: i, RefKind: RefReadWrite},
			Op:    op,
			Right: &Literal{Type: integer, Value: LiteralInt(int64(delta))},
		}
	}

	return i, init, test, next
}

func TestGetLoopUnrollInfo(t *testing.T) {
	for _, tc := range []struct {
		name       string
		start, end int64
		op         Operator
		delta      float64
		count      int
	}{
		{"forward exclusive", 0, 10, OpLt, 1, 10},
		{"forward inclusive", 0, 10, OpLtEq, 1, 11},
		{"backward exclusive", 10, 0, OpGt, -1, 10},
		{"backward inclusive", 10, 0, OpGtEq, -1, 11},
		{"stride", 0, 10, OpLt, 2, 5},
		{"stride uneven", 0, 9, OpLt, 2, 5},
		{"not equal exact", 0, 10, OpNotEq, 2, 5},
		{"empty range", 10, 0, OpLt, 1, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			idx, init, test, next := countedLoop(tc.start, tc.end, tc.op, tc.delta)

			info, err := GetLoopUnrollInfo(init, test, next, &Block{})
			if err != nil {
				t.Fatalf("GetLoopUnrollInfo: %v", err)
			}

			if info.Index != idx {
				t.Errorf("Index = %v, want the loop variable", info.Index)
			}

			if info.Count != tc.count {
				t.Errorf("Count = %v, want %v", info.Count, tc.count)
			}

			if info.Start != float64(tc.start) || info.Delta != tc.delta {
				t.Errorf("Start, Delta = %v, %v, want %v, %v", info.Start, info.Delta, tc.start, tc.delta)
			}
		})
	}
}

func TestGetLoopUnrollInfoRejects(t *testing.T) {
	integer := testIntType()

	t.Run("not equal inexact", func(t *testing.T) {
		_, init, test, next := countedLoop(0, 9, OpNotEq, 2)

		if info, err := GetLoopUnrollInfo(init, test, next, &Block{}); err == nil {
			t.Errorf("GetLoopUnrollInfo = %+v, want error: bound is never hit", info)
		}
	})

	t.Run("wrong direction", func(t *testing.T) {
		_, init, test, next := countedLoop(0, 10, OpLt, -1)

		if info, err := GetLoopUnrollInfo(init, test, next, &Block{}); err == nil {
			t.Errorf("GetLoopUnrollInfo = %+v, want error: loop diverges", info)
		}
	})

	t.Run("over limit", func(t *testing.T) {
		_, init, test, next := countedLoop(0, loopTerminationLimit+1, OpLt, 1)

		if info, err := GetLoopUnrollInfo(init, test, next, &Block{}); err == nil {
			t.Errorf("GetLoopUnrollInfo = %+v, want error: too many iterations", info)
		}
	})

	t.Run("non-literal bound", func(t *testing.T) {
		idx, init, _, next := countedLoop(0, 10, OpLt, 1)

		n := &Variable{VarName: "n", Type: integer}
		test := &BinaryExpression{
			Left:  &VariableReference{Variable: idx},
			Op:    OpLt,
			Right: &VariableReference{Variable: n},
		}

		if info, err := GetLoopUnrollInfo(init, test, next, &Block{}); err == nil {
			t.Errorf("GetLoopUnrollInfo = %+v, want error: bound is not constant", info)
		}
	})

	t.Run("no initializer", func(t *testing.T) {
		_, _, test, next := countedLoop(0, 10, OpLt, 1)

		if info, err := GetLoopUnrollInfo(nil, test, next, &Block{}); err == nil {
			t.Errorf("GetLoopUnrollInfo = %+v, want error: no index declaration", info)
		}
	})

	t.Run("bool index", func(t *testing.T) {
		boolean := testBoolType()

		b := &Variable{VarName: "b", Type: boolean}
		init := &VarDeclaration{
			Var:      b,
			BaseType: boolean,
			Value:    &Literal{Type: boolean, Value: LiteralBool(false)},
		}

		_, _, test, next := countedLoop(0, 10, OpLt, 1)

		if info, err := GetLoopUnrollInfo(init, test, next, &Block{}); err == nil {
			t.Errorf("GetLoopUnrollInfo = %+v, want error: index is not numeric", info)
		}
	})

	t.Run("body writes index", func(t *testing.T) {
		idx, init, test, next := countedLoop(0, 10, OpLt, 1)

		body := &Block{Statements: []Statement{
			&ExpressionStatement{Expr: &BinaryExpression{
				Left:  &VariableReference{Variable: idx, RefKind: RefWrite},
				Op:    OpAssign,
				Right: &Literal{Type: integer, Value: LiteralInt(0)},
			}},
		}}

		if info, err := GetLoopUnrollInfo(init, test, next, body); err == nil {
			t.Errorf("GetLoopUnrollInfo = %+v, want error: body writes the index", info)
		}
	})

	t.Run("body reads index", func(t *testing.T) {
		idx, init, test, next := countedLoop(0, 10, OpLt, 1)

		body := &Block{Statements: []Statement{
			&ExpressionStatement{Expr: &VariableReference{Variable: idx, RefKind: RefRead}},
		}}

		if _, err := GetLoopUnrollInfo(init, test, next, body); err != nil {
			t.Errorf("GetLoopUnrollInfo: %v, reads of the index are fine", err)
		}
	})
}
