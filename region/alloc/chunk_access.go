package alloc

import (
	"golang.org/x/text/encoding/charmap"

	"github.com/napalmtorch/slugalloc/internal/buf"
)

// text is stored one byte per character.
var textCharmap = charmap.ISO8859_1

// WriteInt8 stores v at off.
func (c *Chunk) WriteInt8(off uint32, v uint8) bool {
	b, ok := c.field(off, 1)
	if !ok {
		return false
	}
	b[0] = v
	return true
}

// ReadInt8 returns the byte at off, or 0 when out of range.
func (c *Chunk) ReadInt8(off uint32) uint8 {
	b, ok := c.field(off, 1)
	if !ok {
		return 0
	}
	return b[0]
}

// WriteInt16 stores v big-endian at [off, off+2).
func (c *Chunk) WriteInt16(off uint32, v uint16) bool {
	b, ok := c.field(off, 2)
	if !ok {
		return false
	}
	return buf.PutU16BE(b, v)
}

// ReadInt16 returns the big-endian value at [off, off+2), or 0 when out of range.
func (c *Chunk) ReadInt16(off uint32) uint16 {
	b, ok := c.field(off, 2)
	if !ok {
		return 0
	}
	return buf.U16BE(b)
}

// WriteInt32 stores v big-endian at [off, off+4).
func (c *Chunk) WriteInt32(off uint32, v uint32) bool {
	b, ok := c.field(off, 4)
	if !ok {
		return false
	}
	return buf.PutU32BE(b, v)
}

// ReadInt32 returns the big-endian value at [off, off+4), or 0 when out of range.
func (c *Chunk) ReadInt32(off uint32) uint32 {
	b, ok := c.field(off, 4)
	if !ok {
		return 0
	}
	return buf.U32BE(b)
}

// WriteBoolean stores 1 for true and 0 for false at off.
func (c *Chunk) WriteBoolean(off uint32, v bool) bool {
	var x uint8
	if v {
		x = 1
	}
	return c.WriteInt8(off, x)
}

// ReadBoolean reports whether the byte at off is nonzero.
func (c *Chunk) ReadBoolean(off uint32) bool {
	return c.ReadInt8(off) != 0
}

// WriteChar stores r as a single ISO-8859-1 byte. Runes above U+00FF cannot
// be stored and report false.
func (c *Chunk) WriteChar(off uint32, r rune) bool {
	x, ok := textCharmap.EncodeRune(r)
	if !ok {
		return false
	}
	return c.WriteInt8(off, x)
}

// ReadChar decodes the byte at off, or returns 0 when out of range.
func (c *Chunk) ReadChar(off uint32) rune {
	b, ok := c.field(off, 1)
	if !ok {
		return 0
	}
	return textCharmap.DecodeByte(b[0])
}

// WriteString stores s at off, one byte per character, without a
// terminator. The encoded text must end before the chunk's final byte.
// Nothing is written when s holds a character outside ISO-8859-1 or does
// not fit.
func (c *Chunk) WriteString(off uint32, s string) bool {
	enc, err := textCharmap.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return false
	}
	b, ok := c.text(off, uint32(len(enc)))
	if !ok {
		return false
	}
	copy(b, enc)
	return true
}

// ReadString decodes n bytes at off. It returns "" when the range would
// reach the chunk's final byte.
func (c *Chunk) ReadString(off, n uint32) string {
	b, ok := c.text(off, n)
	if !ok {
		return ""
	}
	dec, err := textCharmap.NewDecoder().Bytes(b)
	if err != nil {
		return ""
	}
	return string(dec)
}
