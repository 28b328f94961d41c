package bytecursor

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstruction(t *testing.T) {
	b, err := New(16, nil)
	require.NoError(t, err)
	require.Equal(t, 16, b.Len())
	require.Equal(t, 0, b.Cursor())
	require.Equal(t, binary.ByteOrder(binary.BigEndian), b.ByteOrder())

	_, err = New(-1, nil)
	require.ErrorIs(t, err, ErrConstruction)

	b, err = New(0, binary.LittleEndian)
	require.NoError(t, err)
	require.Equal(t, 0, b.Len())
}

func TestFromBytesAliases(t *testing.T) {
	raw := []byte{1, 2, 3, 4}
	b := FromBytes(raw, binary.LittleEndian)
	require.Equal(t, 4, b.Len())

	require.NoError(t, b.WriteUint8(9))
	require.Equal(t, byte(9), raw[0], "FromBytes must adopt without copying")
}

func TestFromRangeCopies(t *testing.T) {
	outer := []byte{0, 1, 2, 3, 4, 5, 6, 7}
	b, err := FromRange(outer, 2, 4, nil)
	require.NoError(t, err)
	require.Equal(t, 4, b.Len())
	require.Equal(t, []byte{2, 3, 4, 5}, b.Bytes())

	require.NoError(t, b.WriteUint8(99))
	assert.Equal(t, byte(2), outer[2], "FromRange must copy the sub-range")

	_, err = FromRange(outer, 6, 4, nil)
	require.ErrorIs(t, err, ErrConstruction)
	_, err = FromRange(outer, -1, 2, nil)
	require.ErrorIs(t, err, ErrConstruction)
	_, err = FromRange(outer, 2, -1, nil)
	require.ErrorIs(t, err, ErrConstruction)
}

func TestSetCursor(t *testing.T) {
	b, err := New(8, nil)
	require.NoError(t, err)

	require.NoError(t, b.SetCursor(5))
	require.Equal(t, 5, b.Cursor())
	require.NoError(t, b.SetCursor(8), "cursor may sit at the very end")

	require.ErrorIs(t, b.SetCursor(-1), ErrCursorRange)
	require.ErrorIs(t, b.SetCursor(9), ErrCursorRange)
	require.Equal(t, 8, b.Cursor(), "failed SetCursor must not move the cursor")
}

func TestTrimToCursor(t *testing.T) {
	b, err := New(16, binary.LittleEndian)
	require.NoError(t, err)
	require.NoError(t, b.WriteUint16(0x1122, 0x3344))

	trimmed := b.TrimToCursor()
	require.Equal(t, []byte{0x22, 0x11, 0x44, 0x33}, trimmed)
	require.Equal(t, 4, b.Cursor(), "TrimToCursor must not move the cursor")

	trimmed[0] = 0xFF
	assert.Equal(t, byte(0x22), b.Bytes()[0], "TrimToCursor must return a copy")
}

func TestEndiannessConsistency(t *testing.T) {
	le, err := New(4, binary.LittleEndian)
	require.NoError(t, err)
	be, err := New(4, binary.BigEndian)
	require.NoError(t, err)

	require.NoError(t, le.WriteUint32(0xDEADBEEF))
	require.NoError(t, be.WriteUint32(0xDEADBEEF))

	require.NoError(t, le.SetCursor(0))
	require.NoError(t, be.SetCursor(0))
	lv, err := le.ReadNextUint32()
	require.NoError(t, err)
	bv, err := be.ReadNextUint32()
	require.NoError(t, err)
	require.Equal(t, uint32(0xDEADBEEF), lv)
	require.Equal(t, uint32(0xDEADBEEF), bv)

	assert.NotEqual(t, le.Bytes(), be.Bytes(), "raw bytes must differ between orders")
	assert.Equal(t, []byte{0xEF, 0xBE, 0xAD, 0xDE}, le.Bytes())
	assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, be.Bytes())
}

func TestEndToEndScenario(t *testing.T) {
	b, err := New(64, binary.LittleEndian)
	require.NoError(t, err)

	require.NoError(t, b.WriteInt32(55))
	require.NoError(t, b.WriteFloat32(5.5))
	require.NoError(t, b.WriteASCIIString("Hello World"))

	require.NoError(t, b.SetCursor(0))
	i, err := b.ReadNextInt32()
	require.NoError(t, err)
	require.Equal(t, int32(55), i)
	f, err := b.ReadNextFloat32()
	require.NoError(t, err)
	require.InDelta(t, 5.5, f, 1e-6)
	require.Equal(t, "Hello World", b.ReadNextASCIIString())
}
