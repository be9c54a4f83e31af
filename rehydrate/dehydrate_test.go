package rehydrate

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/sksl/ir"
)

// moduleWriter assembles dehydrated modules for tests: a version word, the
// string table, and the command stream, with strings interned the way the
// production encoder interns them.
type moduleWriter struct {
	body    []byte
	blob    []byte
	strings map[string]uint16
}

func newModuleWriter() *moduleWriter {
	return &moduleWriter{strings: map[string]uint16{}}
}

func (w *moduleWriter) u8(v uint8) *moduleWriter {
	w.body = append(w.body, v)
	return w
}

func (w *moduleWriter) u16(v uint16) *moduleWriter {
	w.body = binary.LittleEndian.AppendUint16(w.body, v)
	return w
}

func (w *moduleWriter) u32(v uint32) *moduleWriter {
	w.body = binary.LittleEndian.AppendUint32(w.body, v)
	return w
}

func (w *moduleWriter) s8(v int8) *moduleWriter   { return w.u8(uint8(v)) }
func (w *moduleWriter) s16(v int16) *moduleWriter { return w.u16(uint16(v)) }
func (w *moduleWriter) s32(v int32) *moduleWriter { return w.u32(uint32(v)) }

func (w *moduleWriter) op(op ir.Operator) *moduleWriter { return w.u8(uint8(op)) }

func (w *moduleWriter) float(v float32) *moduleWriter { return w.u32(math.Float32bits(v)) }

// str interns s in the string table and writes its offset. Offsets count
// from the table's length field, so the first string lands at offset 2.
func (w *moduleWriter) str(s string) *moduleWriter {
	off, ok := w.strings[s]
	if !ok {
		off = uint16(2 + len(w.blob))
		w.blob = append(w.blob, uint8(len(s)))
		w.blob = append(w.blob, s...)
		w.strings[s] = off
	}

	return w.u16(off)
}

func (w *moduleWriter) bytes() []byte {
	out := binary.LittleEndian.AppendUint16(nil, Version)
	out = binary.LittleEndian.AppendUint16(out, uint16(len(w.blob)))
	out = append(out, w.blob...)

	return append(out, w.body...)
}

func (w *moduleWriter) defaultModifiers() *moduleWriter {
	return w.u8(cmdDefaultModifiers)
}

// builtinRef writes a symbol reference resolved by name in the root scope.
func (w *moduleWriter) builtinRef(name string) *moduleWriter {
	return w.u16(builtinSymbol).str(name)
}

// builtinType writes a full symbol command referencing a root scope type.
func (w *moduleWriter) builtinType(name string) *moduleWriter {
	return w.u8(cmdSymbolRef).builtinRef(name)
}

func (w *moduleWriter) programHeader(kind ir.ProgramKind) *moduleWriter {
	return w.u8(cmdProgram).u8(uint8(kind)).u8(uint8(ir.Version100))
}

// variable writes a cmdVariable symbol with default modifiers and a root
// scope type.
func (w *moduleWriter) variable(id uint16, name, typeName string, storage ir.StorageClass) *moduleWriter {
	return w.u8(cmdVariable).
		u16(id).
		defaultModifiers().
		str(name).
		builtinType(typeName).
		u8(uint8(storage))
}

// intLiteral writes a signed int literal of the root scope's int type.
func (w *moduleWriter) intLiteral(v int32) *moduleWriter {
	return w.u8(cmdIntLiteral).builtinType("int").s32(v)
}

// floatLiteral writes a float literal of the root scope's float type.
func (w *moduleWriter) floatLiteral(v float32) *moduleWriter {
	return w.u8(cmdFloatLiteral).builtinType("float").float(v)
}

func (w *moduleWriter) varRef(id uint16, kind ir.RefKind) *moduleWriter {
	return w.u8(cmdVariableReference).u16(id).u8(uint8(kind))
}

// symbolTableHeader writes the start of a symbol table; the caller writes
// the owned symbols, then the visible entry list.
func (w *moduleWriter) symbolTableHeader(builtin bool, ownedCount uint16) *moduleWriter {
	w.u8(cmdSymbolTable)
	if builtin {
		w.u8(1)
	} else {
		w.u8(0)
	}

	return w.u16(ownedCount)
}

// visible writes a visible entry list referencing owned symbols by index.
func (w *moduleWriter) visible(indices ...uint16) *moduleWriter {
	w.u16(uint16(len(indices)))
	for _, i := range indices {
		w.u16(i)
	}

	return w
}

func (w *moduleWriter) void() *moduleWriter {
	return w.u8(cmdVoid)
}

// emptyBlock writes a braced block with no symbol table and no statements.
func (w *moduleWriter) emptyBlock() *moduleWriter {
	return w.u8(cmdBlock).void().u8(0).u8(uint8(ir.BlockBracedScope))
}
