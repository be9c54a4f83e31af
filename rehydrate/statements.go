package rehydrate

import "github.com/gogpu/sksl/ir"

func (r *Rehydrator) statement() ir.Statement {
	cmd := r.read.u8()
	switch cmd {
	case cmdBlock:
		defer r.enterScope()()

		statements := make([]ir.Statement, int(r.read.u8()))
		for i := range statements {
			statements[i] = r.statement()
		}

		kind := ir.BlockKind(r.read.u8())

		return &ir.Block{Statements: statements, Kind: kind, Scope: r.symbols}
	case cmdBreak:
		return &ir.BreakStatement{}
	case cmdContinue:
		return &ir.ContinueStatement{}
	case cmdDiscard:
		return &ir.DiscardStatement{}
	case cmdDo:
		body := r.statement()
		test := r.expression()

		return &ir.DoStatement{Body: body, Test: test}
	case cmdExpressionStatement:
		return &ir.ExpressionStatement{Expr: r.expression()}
	case cmdFor:
		defer r.enterScope()()

		init := r.statement()
		test := r.expression()
		next := r.expression()
		body := r.statement()

		unroll, err := ir.GetLoopUnrollInfo(init, test, next, body)
		if err != nil {
			// Not unrollable, the loop just stays on the ordinary path.
			r.log.Printw("loop does not unroll", "err", err)

			unroll = nil
		}

		return &ir.ForStatement{Init: init, Test: test, Next: next, Body: body, Scope: r.symbols, Unroll: unroll}
	case cmdIf:
		isStatic := r.read.u8() != 0
		test := r.expression()
		ifTrue := r.statement()
		ifFalse := r.statement()

		return &ir.IfStatement{IsStatic: isStatic, Test: test, IfTrue: ifTrue, IfFalse: ifFalse}
	case cmdNop:
		return &ir.Nop{}
	case cmdReturn:
		return &ir.ReturnStatement{Value: r.expression()}
	case cmdSwitch:
		isStatic := r.read.u8() != 0

		defer r.enterScope()()

		value := r.expression()

		cases := make([]*ir.SwitchCase, int(r.read.u8()))
		for i := range cases {
			c := &ir.SwitchCase{}

			c.IsDefault = r.read.u8() != 0
			if !c.IsDefault {
				c.Value = int64(r.read.s32())
			}

			c.Body = r.statement()

			cases[i] = c
		}

		return &ir.SwitchStatement{IsStatic: isStatic, Value: value, Cases: cases, Scope: r.symbols}
	case cmdVarDeclaration:
		v := r.variableRef()
		baseType := r.typeSymbol()
		arraySize := int(r.read.u8())
		value := r.expression()

		return &ir.VarDeclaration{Var: v, BaseType: baseType, ArraySize: arraySize, Value: value}
	case cmdVoid:
		return nil
	}

	fail(ErrCorruptStream, "unsupported statement command %d", cmd)
	return nil
}
