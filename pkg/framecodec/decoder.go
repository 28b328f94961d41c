package framecodec

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"github.com/klauspost/compress/zstd"
	"github.com/rawbytedev/bytecursor"
	"github.com/rawbytedev/bytecursor/internal/common"
)

// Decode parses frame and returns the payload and flags, decompressing when
// FlagZstd is set. The returned payload never aliases frame.
func Decode(frame []byte) ([]byte, byte, error) {
	buf := bytecursor.FromBytes(frame, binary.LittleEndian)

	magic, err := buf.ReadNextUint16()
	if err != nil {
		return nil, 0, ErrTruncated
	}
	if magic != MagicV1 {
		return nil, 0, fmt.Errorf("%w: 0x%04x", ErrBadMagic, magic)
	}
	version, err := buf.ReadNextUint8()
	if err != nil {
		return nil, 0, ErrTruncated
	}
	if version != VersionV1 {
		return nil, 0, fmt.Errorf("%w: %d", ErrBadVersion, version)
	}
	flags, err := buf.ReadNextUint8()
	if err != nil {
		return nil, 0, ErrTruncated
	}

	plen, n := common.ReadVarUint(frame[buf.Cursor():])
	if n == 0 {
		return nil, 0, ErrTruncated
	}
	if err := buf.SetCursor(buf.Cursor() + n); err != nil {
		return nil, 0, ErrTruncated
	}
	// declared length must leave room for the crc trailer; compare unsigned
	// so absurd lengths cannot sneak past a signed cast
	rem := buf.Len() - buf.Cursor() - 4
	if rem < 0 || plen > uint64(rem) {
		return nil, 0, ErrTruncated
	}
	payload, err := buf.ReadNextUint8Array(int(plen), nil, 0)
	if err != nil {
		return nil, 0, ErrTruncated
	}

	want, err := buf.ReadNextUint32()
	if err != nil {
		return nil, 0, ErrTruncated
	}
	if crc32.ChecksumIEEE(frame[2:buf.Cursor()-4]) != want {
		return nil, 0, ErrChecksum
	}

	if flags&FlagZstd != 0 {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, 0, err
		}
		defer dec.Close()
		payload, err = dec.DecodeAll(payload, nil)
		if err != nil {
			return nil, 0, err
		}
	}
	return payload, flags, nil
}
