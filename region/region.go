package region

import (
	"fmt"

	"github.com/napalmtorch/slugalloc/internal/buf"
	"github.com/napalmtorch/slugalloc/internal/mmfile"
)

// Config holds the two boundary addresses of a region.
type Config struct {
	Start uint32 // lowest usable address
	End   uint32 // one past the highest usable address
}

// Validate reports ErrInvalidConfiguration when End <= Start.
func (c Config) Validate() error {
	if c.End <= c.Start {
		return fmt.Errorf("%w: end 0x%X <= start 0x%X", ErrInvalidConfiguration, c.End, c.Start)
	}
	return nil
}

// Region is the owned storage behind [Start, End).
type Region struct {
	start uint32
	end   uint32
	data  []byte
	unmap func() error
}

// New validates cfg and acquires End-Start zeroed bytes of backing memory.
func New(cfg Config) (*Region, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	data, unmap, err := mmfile.Anon(int(cfg.End - cfg.Start))
	if err != nil {
		return nil, fmt.Errorf("region: acquire backing memory: %w", err)
	}
	return &Region{
		start: cfg.Start,
		end:   cfg.End,
		data:  data,
		unmap: unmap,
	}, nil
}

// Start returns the lowest address of the region.
func (r *Region) Start() uint32 { return r.start }

// End returns the address one past the last byte of the region.
func (r *Region) End() uint32 { return r.end }

// Size returns End - Start.
func (r *Region) Size() uint32 { return r.end - r.start }

// Bytes exposes the whole backing buffer; index 0 is address Start.
func (r *Region) Bytes() []byte { return r.data }

// Contains reports whether addr lies in [Start, End).
func (r *Region) Contains(addr uint32) bool {
	return addr >= r.start && addr < r.end
}

// Slice returns the bytes of [addr, addr+n) when the whole range lies inside
// the region.
func (r *Region) Slice(addr, n uint32) ([]byte, bool) {
	if addr < r.start || r.data == nil {
		return nil, false
	}
	return buf.Slice(r.data, int(addr-r.start), int(n))
}

// Fill sets every byte of [addr, addr+n) to v.
func (r *Region) Fill(addr, n uint32, v byte) bool {
	b, ok := r.Slice(addr, n)
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

// Move copies n bytes from src to dst. The ranges may overlap; the result
// is as if the source were first copied to a temporary buffer.
func (r *Region) Move(dst, src, n uint32) bool {
	to, ok := r.Slice(dst, n)
	if !ok {
		return false
	}
	from, ok := r.Slice(src, n)
	if !ok {
		return false
	}
	copy(to, from)
	return true
}

// Close releases the backing memory. Every later access fails.
func (r *Region) Close() error {
	if r.data == nil {
		return ErrClosed
	}
	r.data = nil
	return r.unmap()
}
