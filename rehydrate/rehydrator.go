package rehydrate

import (
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/gogpu/sksl/ir"
)

// RootProvider supplies the shared builtin root scope for a program kind.
// Returning nil rejects the kind.
type RootProvider func(ir.ProgramKind) *ir.Scope

// Rehydrator decodes one dehydrated module. It is single-use and not safe
// for concurrent use.
type Rehydrator struct {
	read    *reader
	strings stringTable
	roots   RootProvider

	// symbols is the scope new symbols resolve against and are owned by.
	// Statement decoding pushes and pops it as symbol table commands come
	// and go.
	symbols *ir.Scope

	// root is the shared builtin scope the program resolves against. It
	// is published and immutable; own refuses to construct symbols into
	// it.
	root *ir.Scope

	// refs lists every id-carrying symbol decoded so far, in id order.
	// Symbol references index into it.
	refs []ir.Symbol

	log *tlog.Logger
}

// New validates the header of a dehydrated module and prepares to decode
// its contents. The returned Rehydrator keeps data alive; decoded programs
// alias its string table.
func New(data []byte, roots RootProvider) (r *Rehydrator, err error) {
	defer capture(&err)

	rd := &reader{data: data}

	version := rd.u16()
	if version != Version {
		return nil, errors.Wrap(ErrIncompatibleVersion, "stream version %d, supported version %d", version, Version)
	}

	// String offsets count from the blob's length field, so the table
	// spans the length field plus the payload behind it.
	start := rd.pos
	length := int(rd.u16())
	rd.take(length)

	return &Rehydrator{
		read:    rd,
		strings: stringTable{data: data[start : start+2+length]},
		roots:   roots,
		log:     tlog.V("rehydrate"),
	}, nil
}

// Rehydrate decodes the program. It either returns a fully constructed
// program that consumed the entire stream, or an error and no program.
func (r *Rehydrator) Rehydrate() (prog *ir.Program, err error) {
	defer func() {
		if err != nil {
			prog = nil
		}
	}()
	defer capture(&err)

	prog = r.program()

	if !r.read.done() {
		return nil, errors.Wrap(ErrIncompleteConsumption, "%d bytes left after the program", r.read.remaining())
	}

	return prog, nil
}

func (r *Rehydrator) program() *ir.Program {
	if cmd := r.read.u8(); cmd != cmdProgram {
		fail(ErrCorruptStream, "expected a program, got command %d", cmd)
	}

	kind := ir.ProgramKind(r.read.u8())
	version := ir.LanguageVersion(r.read.u8())

	root := r.roots(kind)
	if root == nil {
		fail(ErrCorruptStream, "no builtin root for program kind %v", kind)
	}

	r.symbols = root
	r.root = root

	r.log.Printw("rehydrating program", "kind", kind, "language_version", version)

	r.symbolTable()

	elements := r.elements()

	var inputs ir.ProgramInputs
	inputs.UseFlipRTUniform = r.read.u8() != 0

	prog := &ir.Program{
		Kind:     kind,
		Version:  version,
		Elements: elements,
		Symbols:  r.symbols,
		Inputs:   inputs,
	}

	// Detach from the shared root; the program keeps its own scope.
	if r.symbols != root {
		r.symbols = r.symbols.Parent
	}

	r.log.Printw("program rehydrated", "kind", kind, "elements", len(elements))

	return prog
}

func (r *Rehydrator) elements() []ir.ProgramElement {
	if cmd := r.read.u8(); cmd != cmdElements {
		fail(ErrCorruptStream, "expected the element list, got command %d", cmd)
	}

	var out []ir.ProgramElement

	for {
		e := r.element()
		if e == nil {
			return out
		}

		out = append(out, e)
	}
}

func (r *Rehydrator) element() ir.ProgramElement {
	cmd := r.read.u8()
	switch cmd {
	case cmdFunctionDefinition:
		decl := r.functionRef()
		body := r.statement()

		return &ir.FunctionDefinition{Declaration: decl, Body: body, Builtin: r.symbols.Builtin}
	case cmdFunctionPrototype:
		// Builtin prototypes are skipped when dehydrating, so a decoded
		// prototype is never builtin.
		return &ir.FunctionPrototype{Declaration: r.functionRef()}
	case cmdGlobalVar:
		stmt := r.statement()

		decl, ok := stmt.(*ir.VarDeclaration)
		if !ok {
			fail(ErrCorruptStream, "global declaration is not a variable declaration")
		}

		return &ir.GlobalVarDeclaration{Declaration: decl}
	case cmdInterfaceBlock:
		sym := r.symbol()

		v, ok := sym.(*ir.Variable)
		if !ok {
			fail(ErrCorruptStream, "interface block is not backed by a variable")
		}

		typeName := r.readString()
		instanceName := r.readString()
		arraySize := int(r.read.u8())

		return &ir.InterfaceBlock{Variable: v, TypeName: typeName, InstanceName: instanceName, ArraySize: arraySize}
	case cmdStructDefinition:
		return &ir.StructDefinition{Type: r.typeSymbol()}
	case cmdSharedFunction:
		// The parameters and declaration were already serialized once in
		// some symbol table; decode them here purely to register their
		// ids, then decode the definition that uses them.
		n := int(r.read.u8())
		for i := 0; i < n; i++ {
			if _, ok := r.symbol().(*ir.Variable); !ok {
				fail(ErrCorruptStream, "shared function parameter is not a variable")
			}
		}

		if _, ok := r.symbol().(*ir.FunctionDeclaration); !ok {
			fail(ErrCorruptStream, "shared function carries no declaration")
		}

		elem := r.element()

		def, ok := elem.(*ir.FunctionDefinition)
		if !ok {
			fail(ErrCorruptStream, "shared function carries no definition")
		}

		return def
	case cmdElementsComplete:
		return nil
	}

	fail(ErrCorruptStream, "unsupported element command %d", cmd)
	return nil
}
