package ir

// LayoutFlags records which layout qualifiers were present on a declaration.
type LayoutFlags uint32

const (
	LayoutOriginUpperLeft LayoutFlags = 1 << iota
	LayoutPushConstant
	LayoutBlendSupportAllEquations
	LayoutColor
	LayoutLocation
	LayoutOffset
	LayoutBinding
	LayoutIndex
	LayoutSet
	LayoutBuiltin
	LayoutInputAttachmentIndex
)

// Layout holds the layout qualifier values of a declaration. Unset values
// are -1.
type Layout struct {
	Flags                LayoutFlags
	Location             int
	Offset               int
	Binding              int
	Index                int
	Set                  int
	Builtin              int
	InputAttachmentIndex int
}

// DefaultLayout returns a layout with no qualifiers set.
func DefaultLayout() Layout {
	return Layout{
		Location:             -1,
		Offset:               -1,
		Binding:              -1,
		Index:                -1,
		Set:                  -1,
		Builtin:              -1,
		InputAttachmentIndex: -1,
	}
}

// ModifierFlags records declaration qualifiers.
type ModifierFlags uint32

const (
	ModifierConst ModifierFlags = 1 << iota
	ModifierIn
	ModifierOut
	ModifierUniform
	ModifierFlat
	ModifierNoPerspective
	ModifierHasSideEffects
	ModifierInline
	ModifierNoInline
	ModifierHighp
	ModifierMediump
	ModifierLowp
	ModifierES3
)

// Modifiers bundles the qualifier flags and layout of a declaration.
type Modifiers struct {
	Layout Layout
	Flags  ModifierFlags
}

// DefaultModifiers returns modifiers with no qualifiers set.
func DefaultModifiers() Modifiers {
	return Modifiers{Layout: DefaultLayout()}
}
