package rehydrate

import "github.com/gogpu/sksl/ir"

func (r *Rehydrator) readString() string {
	return r.strings.at(int(r.read.u16()))
}

// register records a symbol under its serialized id. Ids are dense and
// assigned in decode order, so the stream's id must match the next slot.
func (r *Rehydrator) register(id uint16, sym ir.Symbol) {
	if int(id) != len(r.refs) {
		fail(ErrCorruptStream, "symbol id %d out of order, expected %d", id, len(r.refs))
	}

	r.refs = append(r.refs, sym)
}

// own records sym as owned by the current scope. The shared builtin root
// is published and immutable, so a stream constructing symbols while no
// decoded scope is current is rejected.
func (r *Rehydrator) own(sym ir.Symbol) {
	if r.symbols == nil || r.symbols == r.root {
		fail(ErrCorruptStream, "symbol %q constructed outside a decoded symbol table", sym.Name())
	}

	r.symbols.TakeOwnership(sym)
}

// symbolRef resolves a u16 reference: an index into the symbols decoded so
// far, or the builtin sentinel followed by a name resolved in the root
// scope.
func (r *Rehydrator) symbolRef() ir.Symbol {
	index := r.read.u16()

	if index == builtinSymbol {
		name := r.readString()

		sym := r.symbols.Root().Find(name)
		if sym == nil {
			fail(ErrCorruptStream, "builtin symbol %q not found", name)
		}

		return sym
	}

	if int(index) >= len(r.refs) {
		fail(ErrCorruptStream, "symbol reference %d out of range", index)
	}

	return r.refs[index]
}

func (r *Rehydrator) variableRef() *ir.Variable {
	v, ok := r.symbolRef().(*ir.Variable)
	if !ok {
		fail(ErrCorruptStream, "symbol reference is not a variable")
	}

	return v
}

func (r *Rehydrator) functionRef() *ir.FunctionDeclaration {
	f, ok := r.symbolRef().(*ir.FunctionDeclaration)
	if !ok {
		fail(ErrCorruptStream, "symbol reference is not a function")
	}

	return f
}

func (r *Rehydrator) typeSymbol() *ir.Type {
	t, ok := r.symbol().(*ir.Type)
	if !ok {
		fail(ErrCorruptStream, "expected a type symbol")
	}

	return t
}

func (r *Rehydrator) layout() ir.Layout {
	switch cmd := r.read.u8(); cmd {
	case cmdBuiltinLayout:
		l := ir.DefaultLayout()
		l.Flags |= ir.LayoutBuiltin
		l.Builtin = r.read.s16()

		return l
	case cmdDefaultLayout:
		return ir.DefaultLayout()
	case cmdLayout:
		return ir.Layout{
			Flags:                ir.LayoutFlags(r.read.u32()),
			Location:             r.read.s8(),
			Offset:               r.read.s16(),
			Binding:              r.read.s16(),
			Index:                r.read.s8(),
			Set:                  r.read.s8(),
			Builtin:              r.read.s16(),
			InputAttachmentIndex: r.read.s8(),
		}
	default:
		fail(ErrCorruptStream, "unsupported layout command %d", cmd)
		return ir.Layout{}
	}
}

func (r *Rehydrator) modifiers() ir.Modifiers {
	switch cmd := r.read.u8(); cmd {
	case cmdDefaultModifiers:
		return ir.DefaultModifiers()
	case cmdModifiers8Bit:
		l := r.layout()
		return ir.Modifiers{Layout: l, Flags: ir.ModifierFlags(r.read.u8())}
	case cmdModifiers:
		l := r.layout()
		return ir.Modifiers{Layout: l, Flags: ir.ModifierFlags(uint32(r.read.s32()))}
	default:
		fail(ErrCorruptStream, "unsupported modifiers command %d", cmd)
		return ir.Modifiers{}
	}
}

func (r *Rehydrator) symbol() ir.Symbol {
	cmd := r.read.u8()
	switch cmd {
	case cmdArrayType:
		id := r.read.u16()
		component := r.typeSymbol()
		size := r.read.s8()

		t := ir.MakeArrayType(component, size)

		r.own(t)
		r.register(id, t)

		return t
	case cmdFunctionDeclaration:
		id := r.read.u16()
		mods := r.modifiers()
		name := r.readString()

		params := make([]*ir.Variable, int(r.read.u8()))
		for i := range params {
			p, ok := r.symbol().(*ir.Variable)
			if !ok {
				fail(ErrCorruptStream, "parameter of %q is not a variable", name)
			}

			params[i] = p
		}

		f := &ir.FunctionDeclaration{
			FuncName:   name,
			Modifiers:  mods,
			Parameters: params,
			ReturnType: r.typeSymbol(),
			Builtin:    r.symbols.Builtin,
		}

		r.own(f)
		r.register(id, f)

		return f
	case cmdField:
		owner := r.variableRef()
		index := int(r.read.u8())

		f := &ir.Field{Owner: owner, FieldIndex: index}

		r.own(f)

		return f
	case cmdStructType:
		id := r.read.u16()
		name := r.readString()

		fields := make([]ir.StructField, int(r.read.u8()))
		for i := range fields {
			fields[i] = ir.StructField{
				Modifiers: r.modifiers(),
				FieldName: r.readString(),
				Type:      r.typeSymbol(),
			}
		}

		interfaceBlock := r.read.u8() != 0

		t := &ir.Type{
			TypeName: name,
			Inner:    ir.StructType{Fields: fields, InterfaceBlock: interfaceBlock},
		}

		r.own(t)
		r.register(id, t)

		return t
	case cmdSymbolRef:
		return r.symbolRef()
	case cmdVariable:
		id := r.read.u16()
		mods := r.modifiers()
		name := r.readString()
		typ := r.typeSymbol()
		storage := ir.StorageClass(r.read.u8())

		v := &ir.Variable{
			VarName:   name,
			Modifiers: mods,
			Type:      typ,
			Storage:   storage,
			Builtin:   r.symbols.Builtin,
		}

		r.own(v)
		r.register(id, v)

		return v
	}

	fail(ErrCorruptStream, "unsupported symbol command %d", cmd)
	return nil
}

// symbolTable decodes a symbol table into a fresh scope chained to the
// current one and makes it current. A void command leaves the scope
// untouched.
//
// The table is two lists: the symbols the scope owns, then the visible
// entries, each either an index into the owned list or the builtin
// sentinel plus a name resolved in the root scope. Visibility and
// ownership are recorded separately, mirroring how the encoder saw them.
func (r *Rehydrator) symbolTable() {
	switch cmd := r.read.u8(); cmd {
	case cmdVoid:
		return
	case cmdSymbolTable:
	default:
		fail(ErrCorruptStream, "expected a symbol table, got command %d", cmd)
	}

	builtin := r.read.u8() != 0
	ownedCount := int(r.read.u16())

	r.symbols = ir.NewScope(r.symbols, builtin)

	owned := make([]ir.Symbol, ownedCount)
	for i := range owned {
		owned[i] = r.symbol()
	}

	visibleCount := int(r.read.u16())
	for i := 0; i < visibleCount; i++ {
		index := r.read.u16()

		if index == builtinSymbol {
			name := r.readString()

			sym := r.symbols.Root().Find(name)
			if sym == nil {
				fail(ErrCorruptStream, "builtin symbol %q not found", name)
			}

			r.symbols.Insert(sym)

			continue
		}

		if int(index) >= ownedCount {
			fail(ErrCorruptStream, "owned symbol index %d out of range", index)
		}

		r.symbols.Insert(owned[index])
	}
}

// enterScope decodes an optional symbol table and returns the restore
// func. Deferring the result keeps the scope balanced even when a nested
// decode aborts mid-statement.
func (r *Rehydrator) enterScope() func() {
	old := r.symbols

	r.symbolTable()

	return func() { r.symbols = old }
}
