package bytecursor

import (
	"math"

	"github.com/rawbytedev/bytecursor/internal/common"
)

// Clamped writes take int64 so out-of-range inputs still have a range to
// saturate into: values above the target type's maximum encode as the
// maximum, values below the minimum as the minimum. The unclamped writes
// take already-typed values instead; there the caller's Go conversion
// performs two's-complement truncation, which is the documented behaviour
// for out-of-range input. Clamped variants exist for integer kinds only.

func (b *Buffer) WriteUint8Clamped(vals ...int64) error {
	return writeFixed(b, 1, func(p []byte, v int64) {
		p[0] = byte(common.Clamp64(v, 0, math.MaxUint8))
	}, vals)
}

func (b *Buffer) WriteInt8Clamped(vals ...int64) error {
	return writeFixed(b, 1, func(p []byte, v int64) {
		p[0] = byte(common.Clamp64(v, math.MinInt8, math.MaxInt8))
	}, vals)
}

func (b *Buffer) WriteUint16Clamped(vals ...int64) error {
	return writeFixed(b, 2, func(p []byte, v int64) {
		b.order.PutUint16(p, uint16(common.Clamp64(v, 0, math.MaxUint16)))
	}, vals)
}

func (b *Buffer) WriteInt16Clamped(vals ...int64) error {
	return writeFixed(b, 2, func(p []byte, v int64) {
		b.order.PutUint16(p, uint16(common.Clamp64(v, math.MinInt16, math.MaxInt16)))
	}, vals)
}

func (b *Buffer) WriteUint32Clamped(vals ...int64) error {
	return writeFixed(b, 4, func(p []byte, v int64) {
		b.order.PutUint32(p, uint32(common.Clamp64(v, 0, math.MaxUint32)))
	}, vals)
}

func (b *Buffer) WriteInt32Clamped(vals ...int64) error {
	return writeFixed(b, 4, func(p []byte, v int64) {
		b.order.PutUint32(p, uint32(common.Clamp64(v, math.MinInt32, math.MaxInt32)))
	}, vals)
}
