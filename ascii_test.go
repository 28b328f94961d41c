package bytecursor

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestASCIIConsecutiveStrings(t *testing.T) {
	b, err := New(64, binary.LittleEndian)
	require.NoError(t, err)
	require.NoError(t, b.WriteASCIIString("Test"))
	require.Equal(t, 5, b.Cursor())
	require.NoError(t, b.WriteASCIIString("Apples"))
	require.Equal(t, 12, b.Cursor())

	require.NoError(t, b.SetCursor(0))
	require.Equal(t, "Test", b.ReadNextASCIIString())
	require.Equal(t, 5, b.Cursor(), "cursor must land at the start of the next string")
	require.Equal(t, "Apples", b.ReadNextASCIIString())
	require.Equal(t, 12, b.Cursor())
}

func TestASCIIMissingTerminator(t *testing.T) {
	b := FromBytes([]byte{'H', 'i'}, nil)
	require.Equal(t, "Hi", b.ReadNextASCIIString())
	require.Equal(t, 2, b.Cursor(), "cursor stops at the end when no terminator exists")
	require.Equal(t, "", b.ReadNextASCIIString())
}

func TestASCIIEmptyString(t *testing.T) {
	b, err := New(4, nil)
	require.NoError(t, err)
	require.NoError(t, b.WriteASCIIString(""))
	require.Equal(t, 1, b.Cursor())
	require.NoError(t, b.SetCursor(0))
	require.Equal(t, "", b.ReadNextASCIIString())
	require.Equal(t, 1, b.Cursor())
}

func TestASCIIBounds(t *testing.T) {
	b, err := New(3, nil)
	require.NoError(t, err)
	require.ErrorIs(t, b.WriteASCIIString("Test"), ErrOutOfBounds)
	require.Equal(t, 3, b.Cursor(), "characters before the overflow stay written")
	require.Equal(t, []byte("Tes"), b.Bytes())
}

func FuzzASCIIRoundTrip(f *testing.F) {
	f.Add("Hello World")
	f.Add("")
	f.Add("Apples")
	f.Fuzz(func(t *testing.T, s string) {
		for _, r := range s {
			if r == 0 || r > 0x7F {
				t.Skip("codec only supports NUL-free single-byte text")
			}
		}
		b, err := New(len(s)+1, binary.LittleEndian)
		require.NoError(t, err)
		require.NoError(t, b.WriteASCIIString(s))
		require.Equal(t, len(s)+1, b.Cursor())
		require.NoError(t, b.SetCursor(0))
		require.Equal(t, s, b.ReadNextASCIIString())
	})
}
