package bytecursor

import "math"

// UNorm8 and UNorm16 pack a real value conceptually in [0, 1] into an 8- or
// 16-bit unsigned integer: stored = floor(value * max), read back as
// stored / max, with max 255 or 65535. The unclamped writes do not validate
// the input; values outside [0, 1] scale to out-of-range intermediates that
// get truncated like any unclamped integer write (NaN and infinities encode
// an unspecified bit pattern). Use the Clamped variants for guaranteed
// in-range storage.

const (
	unorm8Max  = 255
	unorm16Max = 65535
)

func clamp01(v float64) float64 {
	// NaN fails both comparisons; map it to 0
	if v > 0 {
		if v > 1 {
			return 1
		}
		return v
	}
	return 0
}

func (b *Buffer) WriteUNorm8(vals ...float64) error {
	return writeFixed(b, 1, func(p []byte, v float64) {
		p[0] = byte(int64(math.Floor(v * unorm8Max)))
	}, vals)
}

func (b *Buffer) WriteUNorm8Clamped(vals ...float64) error {
	return writeFixed(b, 1, func(p []byte, v float64) {
		p[0] = byte(math.Floor(clamp01(v) * unorm8Max))
	}, vals)
}

func (b *Buffer) ReadNextUNorm8() (float64, error) {
	return readFixed(b, 1, func(p []byte) float64 { return float64(p[0]) / unorm8Max })
}

func (b *Buffer) ReadNextUNorm8Array(count int, dst []float64, offset int) ([]float64, error) {
	return readFixedArray(b, 1, count, offset, func(p []byte) float64 { return float64(p[0]) / unorm8Max }, dst)
}

func (b *Buffer) WriteUNorm16(vals ...float64) error {
	return writeFixed(b, 2, func(p []byte, v float64) {
		b.order.PutUint16(p, uint16(int64(math.Floor(v*unorm16Max))))
	}, vals)
}

func (b *Buffer) WriteUNorm16Clamped(vals ...float64) error {
	return writeFixed(b, 2, func(p []byte, v float64) {
		b.order.PutUint16(p, uint16(math.Floor(clamp01(v)*unorm16Max)))
	}, vals)
}

func (b *Buffer) ReadNextUNorm16() (float64, error) {
	return readFixed(b, 2, func(p []byte) float64 { return float64(b.order.Uint16(p)) / unorm16Max })
}

func (b *Buffer) ReadNextUNorm16Array(count int, dst []float64, offset int) ([]float64, error) {
	return readFixedArray(b, 2, count, offset, func(p []byte) float64 { return float64(b.order.Uint16(p)) / unorm16Max }, dst)
}
