package rehydrate

import (
	"golang.org/x/exp/constraints"
	"honnef.co/go/safeish"
)

// reader walks the command stream. All reads abort via fail on truncation,
// so decode routines never check for short input themselves.
type reader struct {
	data []byte
	pos  int
}

func (r *reader) take(n int) []byte {
	if n < 0 || r.pos+n > len(r.data) {
		fail(ErrCorruptStream, "unexpected end of stream at offset %d", r.pos)
	}

	b := r.data[r.pos : r.pos+n]
	r.pos += n

	return b
}

// get reads an n-byte little-endian value.
func get[T constraints.Unsigned](r *reader, n int) T {
	b := r.take(n)

	var v uint64

	for i := n - 1; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}

	return T(v)
}

func (r *reader) u8() uint8   { return get[uint8](r, 1) }
func (r *reader) u16() uint16 { return get[uint16](r, 2) }
func (r *reader) u32() uint32 { return get[uint32](r, 4) }

func (r *reader) s8() int  { return int(int8(r.u8())) }
func (r *reader) s16() int { return int(int16(r.u16())) }
func (r *reader) s32() int { return int(int32(r.u32())) }

func (r *reader) done() bool { return r.pos == len(r.data) }

func (r *reader) remaining() int { return len(r.data) - r.pos }

// stringTable is the header string blob. Strings are stored once each as a
// length byte followed by the bytes; the stream refers to them by offset.
// Offsets are relative to the blob's own length field, so valid string
// offsets start at 2.
type stringTable struct {
	data []byte
}

func (t stringTable) at(offset int) string {
	if offset < 0 || offset >= len(t.data) {
		fail(ErrCorruptStream, "string offset %d outside the string table", offset)
	}

	n := int(t.data[offset])

	end := offset + 1 + n
	if end > len(t.data) {
		fail(ErrCorruptStream, "string at offset %d overruns the table", offset)
	}

	// The decoded program holds these strings for its whole lifetime, as
	// does the table; aliasing instead of copying is safe.
	return safeish.Cast[string](t.data[offset+1 : end])
}
