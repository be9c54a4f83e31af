package rehydrate

// Version identifies the binary format. A stream written by any other
// version is rejected outright; the format carries no compatibility
// machinery.
const Version = 10

// builtinSymbol is the symbol-reference sentinel that switches a reference
// from an id to a by-name lookup in the builtin root scope.
const builtinSymbol = 0xFFFF

// Command bytes of the stream. Every decode routine starts by reading one
// of these. Zero is reserved so a zeroed buffer never looks like a valid
// command.
const (
	cmdArrayType uint8 = iota + 1
	cmdBinary
	cmdBlock
	cmdBoolLiteral
	cmdBreak
	cmdBuiltinLayout
	cmdConstructorArray
	cmdConstructorArrayCast
	cmdConstructorCompound
	cmdConstructorCompoundCast
	cmdConstructorDiagonalMatrix
	cmdConstructorMatrixResize
	cmdConstructorScalarCast
	cmdConstructorSplat
	cmdConstructorStruct
	cmdContinue
	cmdDefaultLayout
	cmdDefaultModifiers
	cmdDiscard
	cmdDo
	cmdElements
	cmdElementsComplete
	cmdExpressionStatement
	cmdField
	cmdFieldAccess
	cmdFloatLiteral
	cmdFor
	cmdFunctionCall
	cmdFunctionDeclaration
	cmdFunctionDefinition
	cmdFunctionPrototype
	cmdGlobalVar
	cmdIf
	cmdIndex
	cmdInterfaceBlock
	cmdIntLiteral
	cmdLayout
	cmdModifiers8Bit
	cmdModifiers
	cmdNop
	cmdPostfix
	cmdPrefix
	cmdProgram
	cmdReturn
	cmdSetting
	cmdSharedFunction
	cmdStructDefinition
	cmdStructType
	cmdSwitch
	cmdSwizzle
	cmdSymbolRef
	cmdSymbolTable
	cmdTernary
	cmdVariable
	cmdVariableReference
	cmdVarDeclaration
	cmdVoid
)
