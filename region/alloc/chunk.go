package alloc

import "github.com/napalmtorch/slugalloc/internal/buf"

// Occupancy is an approximate usage count for a chunk: bytes holding zero
// are counted as free, every other byte as used. Stored zeros are therefore
// miscounted as free. Use it for diagnostics only.
type Occupancy struct {
	Used uint32
	Free uint32
}

// Chunk is a live view over [Offset, Offset+Size) of the allocator's region.
// It does not own the bytes: after Free the same addresses may belong to a
// different chunk, and this handle stops working.
type Chunk struct {
	a         *Allocator
	offset    uint32
	size      uint32
	index     int
	allocated bool
	readOnly  bool
	tag       string
	occ       Occupancy
}

// Offset returns the absolute start address. It changes when an older chunk
// is freed and this one is relocated.
func (c *Chunk) Offset() uint32 { return c.offset }

// Size returns the chunk length in bytes.
func (c *Chunk) Size() uint32 { return c.size }

// Index returns the chunk's position in the allocator's registry, or -1
// once freed.
func (c *Chunk) Index() int { return c.index }

// Allocated reports whether the chunk is live.
func (c *Chunk) Allocated() bool { return c.allocated }

// ReadOnly returns the flag given to Allocate. It is advisory: accessors do
// not enforce it.
func (c *Chunk) ReadOnly() bool { return c.readOnly }

// Tag returns the caller-supplied label.
func (c *Chunk) Tag() string { return c.tag }

// bytes returns the chunk's backing bytes, or false for a dead handle.
func (c *Chunk) bytes() ([]byte, bool) {
	if c == nil || !c.allocated || c.a == nil {
		return nil, false
	}
	return c.a.r.Slice(c.offset, c.size)
}

// field returns width bytes at off. The range must satisfy
// off+width-1 < Size.
func (c *Chunk) field(off, width uint32) ([]byte, bool) {
	b, ok := c.bytes()
	if !ok {
		return nil, false
	}
	return buf.Slice(b, int(off), int(width))
}

// text returns n bytes at off for text access. The range must satisfy
// off+n < Size, so text never ends on the final byte.
func (c *Chunk) text(off, n uint32) ([]byte, bool) {
	b, ok := c.bytes()
	if !ok {
		return nil, false
	}
	return buf.SliceBefore(b, int(off), int(n))
}

// Fill sets every byte of the chunk to v. It reports false for a dead handle.
func (c *Chunk) Fill(v byte) bool {
	b, ok := c.bytes()
	if !ok {
		return false
	}
	if v == 0 {
		clear(b)
		return true
	}
	for i := range b {
		b[i] = v
	}
	return true
}

// Clear is Fill(0).
func (c *Chunk) Clear() bool { return c.Fill(0) }

// ComputeOccupancy scans every byte and records the approximate usage.
// See Occupancy for why the result is only a heuristic.
func (c *Chunk) ComputeOccupancy() Occupancy {
	b, ok := c.bytes()
	if !ok {
		return Occupancy{}
	}
	var occ Occupancy
	for _, v := range b {
		if v == 0 {
			occ.Free++
		} else {
			occ.Used++
		}
	}
	c.occ = occ
	return occ
}

// Occupancy returns the result of the last ComputeOccupancy call.
func (c *Chunk) Occupancy() Occupancy { return c.occ }
