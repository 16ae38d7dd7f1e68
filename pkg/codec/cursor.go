package codec

import "encoding/binary"

// Cursor is a forward-only reader over an in-memory byte buffer.
// Recordings are append-only, so there is no way to seek backward.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor creates a cursor positioned at the start of buf
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// ReadUint64 consumes 8 bytes, little-endian
func (c *Cursor) ReadUint64() (uint64, error) {
	if c.Remaining() < 8 {
		return 0, ErrTruncated
	}
	v := binary.LittleEndian.Uint64(c.buf[c.pos:])
	c.pos += 8
	return v, nil
}

// ReadUint128 consumes 16 bytes, little-endian
func (c *Cursor) ReadUint128() (Uint128, error) {
	if c.Remaining() < 16 {
		return Uint128{}, ErrTruncated
	}
	v := Uint128{
		Lo: binary.LittleEndian.Uint64(c.buf[c.pos:]),
		Hi: binary.LittleEndian.Uint64(c.buf[c.pos+8:]),
	}
	c.pos += 16
	return v, nil
}

// ReadBytes consumes exactly n bytes. The returned slice aliases the
// cursor's buffer and must not be modified.
func (c *Cursor) ReadBytes(n uint64) ([]byte, error) {
	if uint64(c.Remaining()) < n {
		return nil, ErrTruncated
	}
	b := c.buf[c.pos : c.pos+int(n)]
	c.pos += int(n)
	return b, nil
}

// Position returns the number of bytes consumed so far
func (c *Cursor) Position() int {
	return c.pos
}

// Remaining returns the number of bytes left to read
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}
