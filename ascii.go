package bytecursor

// WriteASCIIString writes one byte per character of s (the code point
// truncated to 8 bits; text above the single-byte range is not supported and
// encodes truncated bytes), followed by a 0x00 terminator. The cursor
// advances by one per character plus one for the terminator. Bounds are
// checked per byte, so running out of room mid-string leaves the bytes
// written so far in place.
func (b *Buffer) WriteASCIIString(s string) error {
	for _, r := range s {
		if err := b.WriteUint8(uint8(r)); err != nil {
			return err
		}
	}
	return b.WriteUint8(0)
}

// ReadNextASCIIString scans bytes from the cursor until a 0x00 terminator or
// the end of the buffer, returning the accumulated characters without the
// terminator. The cursor lands just past the terminator, or at Len() when no
// terminator was found. There is no failure mode: at the end of the buffer
// it returns an empty string.
func (b *Buffer) ReadNextASCIIString() string {
	out := make([]byte, 0, 16)
	for b.cursor < len(b.data) {
		c := b.data[b.cursor]
		b.cursor++
		if c == 0 {
			break
		}
		out = append(out, c)
	}
	return string(out)
}
