package ir

// Expression represents a node of the typed expression tree. The set of
// kinds is closed; consumers dispatch with a type switch. A nil Expression
// is the explicit "no expression here" value (an omitted loop test, an
// empty return).
type Expression interface {
	expression()
}

// Operator identifies the operator of a binary, prefix, or postfix
// expression.
type Operator uint8

const (
	// Arithmetic
	OpPlus Operator = iota
	OpMinus
	OpStar
	OpSlash
	OpPercent
	OpShl
	OpShr

	// Logical
	OpLogicalNot
	OpLogicalAnd
	OpLogicalOr
	OpLogicalXor

	// Bitwise
	OpBitwiseNot
	OpBitwiseAnd
	OpBitwiseOr
	OpBitwiseXor

	// Relational and equality
	OpEqEq
	OpNotEq
	OpLt
	OpGt
	OpLtEq
	OpGtEq

	// Assignment
	OpAssign
	OpPlusAssign
	OpMinusAssign
	OpStarAssign
	OpSlashAssign
	OpPercentAssign
	OpShlAssign
	OpShrAssign
	OpBitwiseAndAssign
	OpBitwiseOrAssign
	OpBitwiseXorAssign

	// Increment/decrement and sequencing
	OpPlusPlus
	OpMinusMinus
	OpComma
)

var operatorNames = [...]string{
	OpPlus: "+", OpMinus: "-", OpStar: "*", OpSlash: "/", OpPercent: "%",
	OpShl: "<<", OpShr: ">>",
	OpLogicalNot: "!", OpLogicalAnd: "&&", OpLogicalOr: "||", OpLogicalXor: "^^",
	OpBitwiseNot: "~", OpBitwiseAnd: "&", OpBitwiseOr: "|", OpBitwiseXor: "^",
	OpEqEq: "==", OpNotEq: "!=", OpLt: "<", OpGt: ">", OpLtEq: "<=", OpGtEq: ">=",
	OpAssign: "=", OpPlusAssign: "+=", OpMinusAssign: "-=", OpStarAssign: "*=",
	OpSlashAssign: "/=", OpPercentAssign: "%=", OpShlAssign: "<<=", OpShrAssign: ">>=",
	OpBitwiseAndAssign: "&=", OpBitwiseOrAssign: "|=", OpBitwiseXorAssign: "^=",
	OpPlusPlus: "++", OpMinusMinus: "--", OpComma: ",",
}

func (op Operator) String() string {
	if int(op) < len(operatorNames) {
		return operatorNames[op]
	}

	return "?"
}

// IsComparison reports whether op is a relational or equality operator.
func (op Operator) IsComparison() bool {
	return op >= OpEqEq && op <= OpGtEq
}

// IsLogical reports whether op is a boolean logical operator.
func (op Operator) IsLogical() bool {
	return op >= OpLogicalNot && op <= OpLogicalXor
}

// IsAssignment reports whether op stores into its left operand.
func (op Operator) IsAssignment() bool {
	return op >= OpAssign && op <= OpBitwiseXorAssign
}

// BinaryExpression applies a binary operator to two expressions.
// ResultType is the static type of the whole expression: bool for
// comparisons and logical operators, the target's type for assignments,
// and the coerced common operand type otherwise; see BinaryResultType.
type BinaryExpression struct {
	Left       Expression
	Op         Operator
	Right      Expression
	ResultType *Type
}

func (*BinaryExpression) expression() {}

// Literal is a compile-time constant of bool, integer, or float type.
type Literal struct {
	Type  *Type
	Value LiteralValue
}

func (*Literal) expression() {}

// LiteralValue holds the payload of a Literal.
type LiteralValue interface {
	literalValue()
}

// LiteralBool is a boolean literal value.
type LiteralBool bool

func (LiteralBool) literalValue() {}

// LiteralInt is an integer literal value. Unsigned 32-bit payloads are
// stored zero-extended, so the full unsigned range is representable.
type LiteralInt int64

func (LiteralInt) literalValue() {}

// LiteralFloat is a float literal value, preserved bit-for-bit as the
// 32-bit IEEE-754 pattern it was serialized from.
type LiteralFloat float32

func (LiteralFloat) literalValue() {}

// ConstructorArray builds an array value from per-element arguments.
type ConstructorArray struct {
	Type      *Type
	Arguments []Expression
}

func (*ConstructorArray) expression() {}

// ConstructorArrayCast converts an array value to an array of a coercible
// component type.
type ConstructorArrayCast struct {
	Type     *Type
	Argument Expression
}

func (*ConstructorArrayCast) expression() {}

// ConstructorCompound builds a vector or matrix from components.
type ConstructorCompound struct {
	Type      *Type
	Arguments []Expression
}

func (*ConstructorCompound) expression() {}

// ConstructorCompoundCast converts a vector or matrix to one of a
// coercible component type.
type ConstructorCompoundCast struct {
	Type     *Type
	Argument Expression
}

func (*ConstructorCompoundCast) expression() {}

// ConstructorDiagonalMatrix builds a matrix with the argument on the
// diagonal and zeroes elsewhere.
type ConstructorDiagonalMatrix struct {
	Type     *Type
	Argument Expression
}

func (*ConstructorDiagonalMatrix) expression() {}

// ConstructorMatrixResize builds a matrix from a matrix of different
// dimensions, filling from the identity matrix.
type ConstructorMatrixResize struct {
	Type     *Type
	Argument Expression
}

func (*ConstructorMatrixResize) expression() {}

// ConstructorScalarCast converts a scalar to another scalar type.
type ConstructorScalarCast struct {
	Type     *Type
	Argument Expression
}

func (*ConstructorScalarCast) expression() {}

// ConstructorSplat broadcasts a scalar to all lanes of a vector.
type ConstructorSplat struct {
	Type     *Type
	Argument Expression
}

func (*ConstructorSplat) expression() {}

// ConstructorStruct builds a struct value from per-field arguments.
type ConstructorStruct struct {
	Type      *Type
	Arguments []Expression
}

func (*ConstructorStruct) expression() {}

// FieldAccessOwner distinguishes ordinary field access from access through
// an anonymous interface block, where the field behaves like a global.
type FieldAccessOwner uint8

const (
	FieldAccessDefault FieldAccessOwner = iota
	FieldAccessAnonymousInterfaceBlock
)

// FieldAccess selects a field of a struct-typed expression by index.
type FieldAccess struct {
	Base       Expression
	FieldIndex int
	Owner      FieldAccessOwner
}

func (*FieldAccess) expression() {}

// FunctionCall invokes Function with Arguments. Type is the call's static
// return type as recorded at compile time; Function is the overload
// re-selected against the argument types, see FindBestOverload.
type FunctionCall struct {
	Type      *Type
	Function  *FunctionDeclaration
	Arguments []Expression
}

func (*FunctionCall) expression() {}

// IndexExpression subscripts an array, vector, or matrix.
type IndexExpression struct {
	Base  Expression
	Index Expression
}

func (*IndexExpression) expression() {}

// PostfixExpression applies ++ or -- after evaluating the operand.
type PostfixExpression struct {
	Operand Expression
	Op      Operator
}

func (*PostfixExpression) expression() {}

// PrefixExpression applies a unary operator before the operand.
type PrefixExpression struct {
	Op      Operator
	Operand Expression
}

func (*PrefixExpression) expression() {}

// Setting refers to a compile-time capability value by name, resolved per
// target during code generation.
type Setting struct {
	SettingName string
	Type        *Type
}

func (*Setting) expression() {}

// Swizzle reorders or duplicates components of a vector. Components are
// lane indices into the base value; ResultType is the vector (or scalar,
// for a single component) type of the selection.
type Swizzle struct {
	Base       Expression
	Components []uint8
	ResultType *Type
}

func (*Swizzle) expression() {}

// TernaryExpression selects between two values on a boolean test.
type TernaryExpression struct {
	Test    Expression
	IfTrue  Expression
	IfFalse Expression
}

func (*TernaryExpression) expression() {}

// RefKind describes how a variable reference uses the variable.
type RefKind uint8

const (
	RefRead RefKind = iota
	RefWrite
	RefReadWrite
	RefPointer
)

// VariableReference names a variable visible in the current scope chain.
type VariableReference struct {
	Variable *Variable
	RefKind  RefKind
}

func (*VariableReference) expression() {}
