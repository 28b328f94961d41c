// Package framecodec wraps bytes produced through a bytecursor.Buffer into a
// self-describing frame:
//
//	magic u16 | version u8 | flags u8 | varint payloadLen | payload | crc32 u32
//
// Multi-byte header fields are little-endian. The CRC32 (IEEE) covers
// everything after the magic, payload included.
package framecodec

import "errors"

const (
	MagicV1   uint16 = 0xB5C1
	VersionV1 uint8  = 1
)

// FlagZstd marks a zstd-compressed payload.
const FlagZstd byte = 1 << 0

var (
	ErrBadMagic   = errors.New("framecodec: bad magic")
	ErrBadVersion = errors.New("framecodec: unsupported version")
	ErrTruncated  = errors.New("framecodec: frame truncated")
	ErrChecksum   = errors.New("framecodec: crc mismatch")
)
