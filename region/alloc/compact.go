package alloc

// compact closes the gap left by c. The newer chunks occupy exactly
// [frontier, c.offset); that block moves up by c.size as one overlapping
// copy, which keeps each chunk's bytes intact. The vacated bytes at the old
// frontier are zeroed so free space never holds stale data.
func (a *Allocator) compact(c *Chunk) {
	if below := c.offset - a.frontier; below > 0 {
		a.r.Move(a.frontier+c.size, a.frontier, below)
	}
	a.r.Fill(a.frontier, c.size, 0)

	for _, o := range a.chunks {
		if o != c && o.offset < c.offset {
			o.offset += c.size
		}
	}
}
