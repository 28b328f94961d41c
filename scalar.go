package bytecursor

import (
	"fmt"
	"math"
)

// writeFixed writes each value at the cursor, advancing by width per value.
// The bounds check runs before every value, so a failing call never performs
// a partial write of that value; values already written in the same call
// stay in place (no rollback).
func writeFixed[T any](b *Buffer, width int, put func([]byte, T), vals []T) error {
	for _, v := range vals {
		if b.remaining() < width {
			return fmt.Errorf("%w: write of %d bytes at cursor %d, length %d",
				ErrOutOfBounds, width, b.cursor, len(b.data))
		}
		put(b.data[b.cursor:], v)
		b.cursor += width
	}
	return nil
}

func readFixed[T any](b *Buffer, width int, get func([]byte) T) (T, error) {
	var zero T
	if b.remaining() < width {
		return zero, fmt.Errorf("%w: read of %d bytes at cursor %d, length %d",
			ErrOutOfBounds, width, b.cursor, len(b.data))
	}
	v := get(b.data[b.cursor:])
	b.cursor += width
	return v, nil
}

// readFixedArray decodes count consecutive values into dst[offset+i].
// A nil dst allocates make([]T, offset+count). A negative count or offset
// fails with ErrOutOfBounds before any element is consumed. The source
// bounds check runs per element, so on failure dst keeps the elements
// decoded before it.
func readFixedArray[T any](b *Buffer, width, count, offset int, get func([]byte) T, dst []T) ([]T, error) {
	if count < 0 || offset < 0 {
		return dst, fmt.Errorf("%w: count %d, offset %d", ErrOutOfBounds, count, offset)
	}
	if dst == nil {
		dst = make([]T, offset+count)
	}
	for i := 0; i < count; i++ {
		v, err := readFixed(b, width, get)
		if err != nil {
			return dst, err
		}
		dst[offset+i] = v
	}
	return dst, nil
}

// WriteUint8 writes each value at the cursor and advances it by 1 per value.
// Passing multiple values is the batch write path; there is no separate
// array-write entry point.
func (b *Buffer) WriteUint8(vals ...uint8) error {
	return writeFixed(b, 1, func(p []byte, v uint8) { p[0] = v }, vals)
}

func (b *Buffer) WriteInt8(vals ...int8) error {
	return writeFixed(b, 1, func(p []byte, v int8) { p[0] = byte(v) }, vals)
}

func (b *Buffer) WriteUint16(vals ...uint16) error {
	return writeFixed(b, 2, func(p []byte, v uint16) { b.order.PutUint16(p, v) }, vals)
}

func (b *Buffer) WriteInt16(vals ...int16) error {
	return writeFixed(b, 2, func(p []byte, v int16) { b.order.PutUint16(p, uint16(v)) }, vals)
}

func (b *Buffer) WriteUint32(vals ...uint32) error {
	return writeFixed(b, 4, func(p []byte, v uint32) { b.order.PutUint32(p, v) }, vals)
}

func (b *Buffer) WriteInt32(vals ...int32) error {
	return writeFixed(b, 4, func(p []byte, v int32) { b.order.PutUint32(p, uint32(v)) }, vals)
}

func (b *Buffer) WriteUint64(vals ...uint64) error {
	return writeFixed(b, 8, func(p []byte, v uint64) { b.order.PutUint64(p, v) }, vals)
}

func (b *Buffer) WriteInt64(vals ...int64) error {
	return writeFixed(b, 8, func(p []byte, v int64) { b.order.PutUint64(p, uint64(v)) }, vals)
}

func (b *Buffer) WriteFloat32(vals ...float32) error {
	return writeFixed(b, 4, func(p []byte, v float32) { b.order.PutUint32(p, math.Float32bits(v)) }, vals)
}

func (b *Buffer) WriteFloat64(vals ...float64) error {
	return writeFixed(b, 8, func(p []byte, v float64) { b.order.PutUint64(p, math.Float64bits(v)) }, vals)
}

// ReadNextUint8 reads one value at the cursor and advances it by the value's
// width. All ReadNext accessors fail with ErrOutOfBounds when fewer bytes
// than the width remain.
func (b *Buffer) ReadNextUint8() (uint8, error) {
	return readFixed(b, 1, func(p []byte) uint8 { return p[0] })
}

func (b *Buffer) ReadNextInt8() (int8, error) {
	return readFixed(b, 1, func(p []byte) int8 { return int8(p[0]) })
}

func (b *Buffer) ReadNextUint16() (uint16, error) {
	return readFixed(b, 2, func(p []byte) uint16 { return b.order.Uint16(p) })
}

func (b *Buffer) ReadNextInt16() (int16, error) {
	return readFixed(b, 2, func(p []byte) int16 { return int16(b.order.Uint16(p)) })
}

func (b *Buffer) ReadNextUint32() (uint32, error) {
	return readFixed(b, 4, func(p []byte) uint32 { return b.order.Uint32(p) })
}

func (b *Buffer) ReadNextInt32() (int32, error) {
	return readFixed(b, 4, func(p []byte) int32 { return int32(b.order.Uint32(p)) })
}

func (b *Buffer) ReadNextUint64() (uint64, error) {
	return readFixed(b, 8, func(p []byte) uint64 { return b.order.Uint64(p) })
}

func (b *Buffer) ReadNextInt64() (int64, error) {
	return readFixed(b, 8, func(p []byte) int64 { return int64(b.order.Uint64(p)) })
}

func (b *Buffer) ReadNextFloat32() (float32, error) {
	return readFixed(b, 4, func(p []byte) float32 { return math.Float32frombits(b.order.Uint32(p)) })
}

func (b *Buffer) ReadNextFloat64() (float64, error) {
	return readFixed(b, 8, func(p []byte) float64 { return math.Float64frombits(b.order.Uint64(p)) })
}

// ReadNextUint8Array reads count consecutive values into dst at offset+i.
// A nil dst allocates a fresh slice of length offset+count; a non-nil dst
// must be long enough or the fill panics like any slice index. A negative
// count or offset fails with ErrOutOfBounds. The other ReadNextTArray
// accessors behave identically for their own widths.
func (b *Buffer) ReadNextUint8Array(count int, dst []uint8, offset int) ([]uint8, error) {
	return readFixedArray(b, 1, count, offset, func(p []byte) uint8 { return p[0] }, dst)
}

func (b *Buffer) ReadNextInt8Array(count int, dst []int8, offset int) ([]int8, error) {
	return readFixedArray(b, 1, count, offset, func(p []byte) int8 { return int8(p[0]) }, dst)
}

func (b *Buffer) ReadNextUint16Array(count int, dst []uint16, offset int) ([]uint16, error) {
	return readFixedArray(b, 2, count, offset, func(p []byte) uint16 { return b.order.Uint16(p) }, dst)
}

func (b *Buffer) ReadNextInt16Array(count int, dst []int16, offset int) ([]int16, error) {
	return readFixedArray(b, 2, count, offset, func(p []byte) int16 { return int16(b.order.Uint16(p)) }, dst)
}

func (b *Buffer) ReadNextUint32Array(count int, dst []uint32, offset int) ([]uint32, error) {
	return readFixedArray(b, 4, count, offset, func(p []byte) uint32 { return b.order.Uint32(p) }, dst)
}

func (b *Buffer) ReadNextInt32Array(count int, dst []int32, offset int) ([]int32, error) {
	return readFixedArray(b, 4, count, offset, func(p []byte) int32 { return int32(b.order.Uint32(p)) }, dst)
}

func (b *Buffer) ReadNextUint64Array(count int, dst []uint64, offset int) ([]uint64, error) {
	return readFixedArray(b, 8, count, offset, func(p []byte) uint64 { return b.order.Uint64(p) }, dst)
}

func (b *Buffer) ReadNextInt64Array(count int, dst []int64, offset int) ([]int64, error) {
	return readFixedArray(b, 8, count, offset, func(p []byte) int64 { return int64(b.order.Uint64(p)) }, dst)
}

func (b *Buffer) ReadNextFloat32Array(count int, dst []float32, offset int) ([]float32, error) {
	return readFixedArray(b, 4, count, offset, func(p []byte) float32 { return math.Float32frombits(b.order.Uint32(p)) }, dst)
}

func (b *Buffer) ReadNextFloat64Array(count int, dst []float64, offset int) ([]float64, error) {
	return readFixedArray(b, 8, count, offset, func(p []byte) float64 { return math.Float64frombits(b.order.Uint64(p)) }, dst)
}
