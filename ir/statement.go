package ir

// Statement represents a statement of a function body. The set of kinds is
// closed; consumers dispatch with a type switch. A nil Statement is the
// explicit "no statement" value (an omitted for-loop initializer, a missing
// else branch), distinct from Nop only in how it was written.
type Statement interface {
	statement()
}

// BlockKind distinguishes a braced scope from statements merely grouped
// together during lowering.
type BlockKind uint8

const (
	BlockBracedScope BlockKind = iota
	BlockUnbraced
)

// Block is a sequence of statements with its own lexical scope.
type Block struct {
	Statements []Statement
	Kind       BlockKind
	Scope      *Scope
}

func (*Block) statement() {}

// BreakStatement exits the innermost enclosing loop or switch.
type BreakStatement struct{}

func (*BreakStatement) statement() {}

// ContinueStatement skips to the next iteration of the innermost loop.
type ContinueStatement struct{}

func (*ContinueStatement) statement() {}

// DiscardStatement aborts the current fragment.
type DiscardStatement struct{}

func (*DiscardStatement) statement() {}

// DoStatement executes Body, then repeats while Test holds.
type DoStatement struct {
	Body Statement
	Test Expression
}

func (*DoStatement) statement() {}

// ExpressionStatement evaluates an expression for its side effects.
type ExpressionStatement struct {
	Expr Expression
}

func (*ExpressionStatement) statement() {}

// ForStatement is a C-style loop. Init, Test, and Next may each be absent.
// Unroll carries loop-unrolling eligibility metadata derived from the four
// components; it is nil when the loop does not qualify, which only forfeits
// the unrolled code path.
type ForStatement struct {
	Init   Statement
	Test   Expression
	Next   Expression
	Body   Statement
	Scope  *Scope
	Unroll *LoopUnrollInfo
}

func (*ForStatement) statement() {}

// IfStatement branches on Test. IfFalse may be nil. IsStatic marks a test
// the front end proved constant.
type IfStatement struct {
	IsStatic bool
	Test     Expression
	IfTrue   Statement
	IfFalse  Statement
}

func (*IfStatement) statement() {}

// Nop is an explicitly written empty statement.
type Nop struct{}

func (*Nop) statement() {}

// ReturnStatement returns from the function; Value is nil for a bare
// return.
type ReturnStatement struct {
	Value Expression
}

func (*ReturnStatement) statement() {}

// SwitchStatement selects among cases on an integer value. The case list
// lives in its own lexical scope.
type SwitchStatement struct {
	IsStatic bool
	Value    Expression
	Cases    []*SwitchCase
	Scope    *Scope
}

func (*SwitchStatement) statement() {}

// SwitchCase is one arm of a switch statement. Value is meaningful only
// when IsDefault is false.
type SwitchCase struct {
	IsDefault bool
	Value     int64
	Body      Statement
}

func (*SwitchCase) statement() {}

// VarDeclaration declares Var, optionally with an initializer. BaseType is
// the declared type before array suffixes; ArraySize is 0 for non-array
// declarations.
type VarDeclaration struct {
	Var       *Variable
	BaseType  *Type
	ArraySize int
	Value     Expression
}

func (*VarDeclaration) statement() {}
