// Package hexfmt renders addresses and sizes as fixed-width upper-case
// hexadecimal text for diagnostic output.
package hexfmt

const digits = "0123456789ABCDEF"

// AddrWidth is the number of hex digits used for a 32-bit address.
const AddrWidth = 8

// AppendAddr appends v to dst as exactly AddrWidth zero-padded hex digits,
// preceded by "0x" when prefix is set.
func AppendAddr(dst []byte, v uint32, prefix bool) []byte {
	if prefix {
		dst = append(dst, '0', 'x')
	}
	for shift := (AddrWidth - 1) * 4; shift >= 0; shift -= 4 {
		dst = append(dst, digits[(v>>uint(shift))&0xF])
	}
	return dst
}

// Addr returns v as zero-padded 8-digit hex text, e.g. Addr(0x1F9C, true)
// is "0x00001F9C".
func Addr(v uint32, prefix bool) string {
	var buf [2 + AddrWidth]byte
	return string(AppendAddr(buf[:0], v, prefix))
}

// Byte returns v as two hex digits.
func Byte(v uint8) string {
	return string([]byte{digits[v>>4], digits[v&0xF]})
}
