// Package alloc implements a compacting frontier allocator over a region.
//
// # Overview
//
// Chunks are carved downward from the top of the region: the frontier starts
// at End and every Allocate moves it down by the requested size. The used
// space [Frontier, End) is always contiguous and ordered by allocation time,
// oldest chunk at the top.
//
//	End ─────────────┐
//	  chunk 0 (oldest)│
//	  chunk 1         │ used
//	  chunk 2 (newest)│
//	Frontier ────────┘
//	  free
//	Start
//
// # Compaction
//
// Free accepts any live chunk, not just the newest. The block of newer
// chunks sitting between the frontier and the freed chunk is moved up by the
// freed chunk's size, their offsets are adjusted, and the frontier rises.
// Release therefore costs O(bytes below the freed chunk), and the used region
// never contains holes.
//
// # Usage Example
//
//	a, err := alloc.New(alloc.Config{Start: 0x1000, End: 0x2000})
//	if err != nil {
//	    return err
//	}
//	defer a.Close()
//
//	c, err := a.Allocate(64, false, "header")
//	if err != nil {
//	    return err
//	}
//	c.WriteInt32(0, 0xCAFEBABE)
//
//	err = a.Free(c)
//
// # Chunk Accessors
//
// Accessors take an offset relative to the chunk. Writes report success with
// a bool and never write partially; reads return zero when out of range.
// Integers are stored big-endian. Text is stored one byte per character in
// ISO-8859-1 and must end strictly before the chunk's final byte.
//
// # Thread Safety
//
// Allocator instances are not thread-safe. Callers must serialize every call,
// including chunk accessors, externally.
package alloc
