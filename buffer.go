// Package bytecursor implements a cursor-based binary reader/writer over a
// fixed-size byte buffer. Every read and write happens at the current cursor
// position and advances it by the byte width of the values processed; the
// byte order is fixed per instance at construction time.
//
// A Buffer is not safe for concurrent use. Callers sharing one instance
// across goroutines must provide their own synchronization; independent
// instances share no state.
package bytecursor

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	// ErrConstruction is returned when a constructor argument does not
	// describe a valid size or byte region.
	ErrConstruction = errors.New("bytecursor: invalid construction argument")

	// ErrCursorRange is returned by SetCursor for positions outside [0, Len()].
	ErrCursorRange = errors.New("bytecursor: cursor position out of range")

	// ErrOutOfBounds is returned by any read or write that would advance the
	// cursor past the end of the buffer.
	ErrOutOfBounds = errors.New("bytecursor: operation exceeds buffer bounds")
)

// Buffer owns a fixed-length byte region and a read/write cursor into it.
// The storage never grows; an operation that would run past the end fails
// with ErrOutOfBounds before touching the bytes of the failing value.
type Buffer struct {
	data   []byte
	cursor int
	order  binary.ByteOrder
}

// New allocates a zero-filled buffer of size bytes with the cursor at 0.
// A nil order defaults to binary.BigEndian.
func New(size int, order binary.ByteOrder) (*Buffer, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrConstruction, size)
	}
	return &Buffer{data: make([]byte, size), order: resolveOrder(order)}, nil
}

// FromBytes adopts data directly as the buffer's storage without copying.
// The Buffer and the caller alias the same bytes afterwards.
// A nil order defaults to binary.BigEndian.
func FromBytes(data []byte, order binary.ByteOrder) *Buffer {
	return &Buffer{data: data, order: resolveOrder(order)}
}

// FromRange copies outer[offset : offset+length] into a freshly owned buffer.
// It fails with ErrConstruction when the described range does not lie inside
// outer.
func FromRange(outer []byte, offset, length int, order binary.ByteOrder) (*Buffer, error) {
	if offset < 0 || length < 0 || offset+length > len(outer) {
		return nil, fmt.Errorf("%w: range [%d:%d) outside region of %d bytes",
			ErrConstruction, offset, offset+length, len(outer))
	}
	data := make([]byte, length)
	copy(data, outer[offset:offset+length])
	return &Buffer{data: data, order: resolveOrder(order)}, nil
}

func resolveOrder(order binary.ByteOrder) binary.ByteOrder {
	if order == nil {
		return binary.BigEndian
	}
	return order
}

// SetCursor repositions the cursor. Positions outside [0, Len()] fail with
// ErrCursorRange; the cursor is never repositioned automatically.
func (b *Buffer) SetCursor(pos int) error {
	if pos < 0 || pos > len(b.data) {
		return fmt.Errorf("%w: position %d, buffer length %d", ErrCursorRange, pos, len(b.data))
	}
	b.cursor = pos
	return nil
}

// Cursor returns the current read/write offset.
func (b *Buffer) Cursor() int { return b.cursor }

// Len returns the fixed byte capacity of the buffer.
func (b *Buffer) Len() int { return len(b.data) }

// ByteOrder returns the byte order fixed at construction.
func (b *Buffer) ByteOrder() binary.ByteOrder { return b.order }

// Bytes returns the underlying storage. The returned slice aliases the
// buffer; writes through either are visible to both.
func (b *Buffer) Bytes() []byte { return b.data }

// TrimToCursor returns a copy of the bytes written so far, data[0:cursor].
// Neither the cursor nor the storage is mutated.
func (b *Buffer) TrimToCursor() []byte {
	out := make([]byte, b.cursor)
	copy(out, b.data[:b.cursor])
	return out
}

// remaining bytes between cursor and end
func (b *Buffer) remaining() int { return len(b.data) - b.cursor }
