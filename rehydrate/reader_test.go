package rehydrate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// catch runs f and returns the decode error it aborted with, if any.
func catch(f func()) (err error) {
	defer capture(&err)

	f()

	return nil
}

func TestReaderValues(t *testing.T) {
	r := &reader{data: []byte{0x2A, 0x34, 0x12, 0x78, 0x56, 0x34, 0x12, 0xFF, 0xFF, 0xFF}}

	require.Equal(t, uint8(0x2A), r.u8())
	require.Equal(t, uint16(0x1234), r.u16())
	require.Equal(t, uint32(0x12345678), r.u32())
	require.Equal(t, -1, r.s8())
	require.Equal(t, -1, r.s16())

	require.True(t, r.done())
	require.Equal(t, 0, r.remaining())
}

func TestReaderTruncation(t *testing.T) {
	r := &reader{data: []byte{0x01, 0x02}}

	err := catch(func() { r.u32() })
	require.ErrorIs(t, err, ErrCorruptStream)

	// A failed read consumes nothing.
	require.Equal(t, 2, r.remaining())

	require.NoError(t, catch(func() { r.u16() }))

	err = catch(func() { r.u8() })
	require.ErrorIs(t, err, ErrCorruptStream)
}

func TestStringTable(t *testing.T) {
	// Layout as in a real header: the 2-byte length field, then
	// length-prefixed entries.
	table := stringTable{data: []byte{
		0x0B, 0x00,
		5, 'f', 'l', 'o', 'a', 't',
		0,
		3, 's', 'i', 'n',
	}}

	require.Equal(t, "float", table.at(2))
	require.Equal(t, "", table.at(8))
	require.Equal(t, "sin", table.at(9))

	err := catch(func() { table.at(100) })
	require.ErrorIs(t, err, ErrCorruptStream)

	// Length byte runs past the table end.
	err = catch(func() { table.at(12) })
	require.ErrorIs(t, err, ErrCorruptStream)
}

func TestNewRejectsShortHeader(t *testing.T) {
	for _, data := range [][]byte{
		nil,
		{0x0A},
		{0x0A, 0x00},
		{0x0A, 0x00, 0x05, 0x00, 'a'},
	} {
		_, err := New(data, nil)
		require.ErrorIs(t, err, ErrCorruptStream, "header % X", data)
	}
}
