package alloc

import "fmt"

// Verify checks the allocator invariants: every registry entry is live and
// knows its position, the entries tile [Frontier, End) from the top down in
// allocation order, and the frontier accounts for exactly the live bytes.
// Tiling implies the chunks are disjoint and inside the region.
func (a *Allocator) Verify() error {
	start, end := a.r.Start(), a.r.End()
	if a.frontier < start || a.frontier > end {
		return fmt.Errorf("%w: frontier 0x%X outside [0x%X, 0x%X]", ErrCorrupt, a.frontier, start, end)
	}

	expect := end
	var used uint64
	for i, c := range a.chunks {
		switch {
		case !c.allocated:
			return fmt.Errorf("%w: chunk %d is not allocated", ErrCorrupt, i)
		case c.index != i:
			return fmt.Errorf("%w: chunk %d has index %d", ErrCorrupt, i, c.index)
		case c.size == 0:
			return fmt.Errorf("%w: chunk %d has zero size", ErrCorrupt, i)
		case c.offset < start || uint64(c.offset)+uint64(c.size) > uint64(end):
			return fmt.Errorf("%w: chunk %d [0x%X, +%d) outside region", ErrCorrupt, i, c.offset, c.size)
		case c.offset+c.size != expect:
			return fmt.Errorf("%w: chunk %d ends at 0x%X, want 0x%X", ErrCorrupt, i, c.offset+c.size, expect)
		}
		expect = c.offset
		used += uint64(c.size)
	}
	if expect != a.frontier {
		return fmt.Errorf("%w: newest chunk starts at 0x%X, frontier is 0x%X", ErrCorrupt, expect, a.frontier)
	}
	if uint64(a.frontier-start) != uint64(end-start)-used {
		return fmt.Errorf("%w: frontier 0x%X does not account for %d live bytes", ErrCorrupt, a.frontier, used)
	}
	return nil
}
