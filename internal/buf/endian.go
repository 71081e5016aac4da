// Package buf contains bounds-checked helpers for big-endian access to byte
// ranges.
package buf

import "encoding/binary"

// U16BE reads a big-endian uint16 from b. Returns 0 when b is too short.
func U16BE(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

// U32BE reads a big-endian uint32 from b. Returns 0 when b is too short.
func U32BE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

// PutU16BE writes v into b most-significant byte first. Returns false and
// leaves b untouched when b is too short.
func PutU16BE(b []byte, v uint16) bool {
	if len(b) < 2 {
		return false
	}
	binary.BigEndian.PutUint16(b, v)
	return true
}

// PutU32BE writes v into b most-significant byte first. Returns false and
// leaves b untouched when b is too short.
func PutU32BE(b []byte, v uint32) bool {
	if len(b) < 4 {
		return false
	}
	binary.BigEndian.PutUint32(b, v)
	return true
}
