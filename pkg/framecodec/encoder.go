package framecodec

import (
	"encoding/binary"
	"hash/crc32"

	"github.com/klauspost/compress/zstd"
	"github.com/rawbytedev/bytecursor"
	"github.com/rawbytedev/bytecursor/internal/common"
)

// Encode builds a frame around payload. With FlagZstd set the payload is
// zstd-compressed before framing.
func Encode(payload []byte, flags byte) ([]byte, error) {
	if flags&FlagZstd != 0 {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
		if err != nil {
			return nil, err
		}
		payload = enc.EncodeAll(payload, nil)
		enc.Close()
	}

	lenPrefix := common.WriteVarUintTo(nil, uint64(len(payload)))
	total := 2 + 1 + 1 + len(lenPrefix) + len(payload) + 4
	buf, err := bytecursor.New(total, binary.LittleEndian)
	if err != nil {
		return nil, err
	}
	if err := buf.WriteUint16(MagicV1); err != nil {
		return nil, err
	}
	if err := buf.WriteUint8(VersionV1, flags); err != nil {
		return nil, err
	}
	if err := buf.WriteUint8(lenPrefix...); err != nil {
		return nil, err
	}
	if err := buf.WriteUint8(payload...); err != nil {
		return nil, err
	}

	// crc over everything after the magic
	crc := crc32.ChecksumIEEE(buf.TrimToCursor()[2:])
	if err := buf.WriteUint32(crc); err != nil {
		return nil, err
	}
	return buf.TrimToCursor(), nil
}
