package alloc

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/napalmtorch/slugalloc/internal/hexfmt"
	"github.com/napalmtorch/slugalloc/internal/logger"
	"github.com/napalmtorch/slugalloc/region"
)

// Config holds the region boundaries and the diagnostic logger.
type Config struct {
	Start uint32
	End   uint32

	// Logger receives allocator diagnostics. Nil disables logging.
	Logger *slog.Logger
}

// Allocator hands out chunks from a single region.
type Allocator struct {
	r        *region.Region
	frontier uint32
	chunks   []*Chunk // oldest first
	log      *slog.Logger
}

// Stats is a snapshot of the allocator's accounting.
type Stats struct {
	Start     uint32
	End       uint32
	Frontier  uint32
	Capacity  uint32 // End - Start
	Used      uint32 // sum of live chunk sizes
	Available uint32 // Frontier - Start
	Chunks    int
}

// New configures a region from cfg and returns an empty allocator over it.
// It fails with region.ErrInvalidConfiguration when cfg.End <= cfg.Start.
func New(cfg Config) (*Allocator, error) {
	r, err := region.New(region.Config{Start: cfg.Start, End: cfg.End})
	if err != nil {
		return nil, err
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Discard()
	}
	a := &Allocator{
		r:        r,
		frontier: r.End(),
		log:      log,
	}
	if a.logging() {
		a.log.Info(
			"[BOTTOM] "+hexfmt.Addr(r.Start(), true)+"   [TOP] "+hexfmt.Addr(r.End(), true),
			"start", r.Start(), "end", r.End(),
		)
	}
	return a, nil
}

func (a *Allocator) logging() bool {
	return a.log.Enabled(context.Background(), slog.LevelInfo)
}

// Start returns the lowest address of the region.
func (a *Allocator) Start() uint32 { return a.r.Start() }

// End returns the address one past the top of the region.
func (a *Allocator) End() uint32 { return a.r.End() }

// Frontier returns the boundary between free space [Start, Frontier) and
// used space [Frontier, End).
func (a *Allocator) Frontier() uint32 { return a.frontier }

// Capacity returns End - Start.
func (a *Allocator) Capacity() uint32 { return a.r.Size() }

// Available returns the free space below the frontier.
func (a *Allocator) Available() uint32 { return a.frontier - a.r.Start() }

// Used returns the total size of live chunks.
func (a *Allocator) Used() uint32 { return a.r.End() - a.frontier }

// Len returns the number of live chunks.
func (a *Allocator) Len() int { return len(a.chunks) }

// Chunks returns the live chunks, oldest first. The slice is a copy; the
// chunks are not.
func (a *Allocator) Chunks() []*Chunk { return slices.Clone(a.chunks) }

// Stats returns the current accounting.
func (a *Allocator) Stats() Stats {
	return Stats{
		Start:     a.r.Start(),
		End:       a.r.End(),
		Frontier:  a.frontier,
		Capacity:  a.Capacity(),
		Used:      a.Used(),
		Available: a.Available(),
		Chunks:    len(a.chunks),
	}
}

// Allocate reserves size bytes directly below the frontier and returns a
// zeroed chunk over them. The new chunk is the newest registry entry.
// When fewer than size bytes are free it returns ErrAllocationOverflow and
// changes nothing.
func (a *Allocator) Allocate(size uint32, readOnly bool, tag string) (*Chunk, error) {
	if a.r.Bytes() == nil {
		return nil, region.ErrClosed
	}
	if size == 0 {
		a.log.Debug("Allocation rejected: zero size", "tag", tag)
		return nil, ErrZeroSize
	}
	if avail := a.Available(); size > avail {
		a.log.Warn("Allocation overflow", "size", size, "available", avail, "tag", tag)
		return nil, fmt.Errorf("%w: need %d bytes, %d available", ErrAllocationOverflow, size, avail)
	}

	a.frontier -= size
	c := &Chunk{
		a:         a,
		offset:    a.frontier,
		size:      size,
		allocated: true,
		readOnly:  readOnly,
		tag:       tag,
	}
	c.Clear()

	a.chunks = append(a.chunks, c)
	a.reindex(len(a.chunks) - 1)

	if a.logging() {
		a.log.Info(
			fmt.Sprintf("Allocated %d bytes at offset %s", size, hexfmt.Addr(c.offset, true)),
			"size", size, "offset", c.offset, "index", c.index, "tag", tag,
		)
		a.log.Info("Chunk Pointer: "+hexfmt.Addr(a.frontier, true), "frontier", a.frontier)
	}
	return c, nil
}

// Free releases c: its bytes are zeroed, every newer chunk below it is moved
// up by c.Size() to close the gap, and the frontier rises by c.Size().
// It returns ErrFreeOfInactiveChunk, changing nothing, when c is nil, already
// freed, or owned by another allocator.
func (a *Allocator) Free(c *Chunk) error {
	if c == nil {
		return fmt.Errorf("%w: nil chunk", ErrFreeOfInactiveChunk)
	}
	if !c.allocated {
		return fmt.Errorf("%w: chunk at 0x%X already freed", ErrFreeOfInactiveChunk, c.offset)
	}
	if c.a != a || c.index < 0 || c.index >= len(a.chunks) || a.chunks[c.index] != c {
		return fmt.Errorf("%w: chunk at 0x%X is not in this registry", ErrFreeOfInactiveChunk, c.offset)
	}

	if a.logging() {
		a.log.Info("Reclaiming memory, this could take some time...", "size", c.size, "offset", c.offset)
	}

	c.Clear()
	a.compact(c)

	i := c.index
	a.chunks = slices.Delete(a.chunks, i, i+1)
	a.reindex(i)
	a.frontier += c.size

	c.allocated = false
	c.index = -1

	if a.logging() {
		a.log.Info(
			fmt.Sprintf("Un-allocated %d bytes at offset %s", c.size, hexfmt.Addr(c.offset, true)),
			"size", c.size, "offset", c.offset, "tag", c.tag,
		)
		a.log.Info("Chunk Pointer: "+hexfmt.Addr(a.frontier, true), "frontier", a.frontier)
	}
	return nil
}

// FreeByOffset is not supported: locating a chunk by address is left to the
// caller, which can scan Chunks and call Free.
func (a *Allocator) FreeByOffset(addr uint32) error {
	return fmt.Errorf("%w: free by offset 0x%X", ErrUnsupported, addr)
}

// reindex assigns registry positions from i to the end.
func (a *Allocator) reindex(i int) {
	for ; i < len(a.chunks); i++ {
		a.chunks[i].index = i
	}
}

// Close releases the region. Every live chunk becomes a dead handle.
func (a *Allocator) Close() error {
	for _, c := range a.chunks {
		c.allocated = false
		c.index = -1
	}
	a.chunks = nil
	return a.r.Close()
}
