// Package region owns the flat byte range managed by the allocator.
//
// # Overview
//
// A Region is a single contiguous block of memory addressed by absolute
// 32-bit addresses in [Start, End). Internally the bytes live in one owned
// buffer (an anonymous mapping where available) and every address is
// translated to an index into that buffer, so all access is bounds checked.
//
//	r, err := region.New(region.Config{Start: 0x1000, End: 0x2000})
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	b, ok := r.Slice(0x1F00, 16) // bytes [0x1F00, 0x1F10)
//
// # Thread Safety
//
// Region instances are not thread-safe. Callers must synchronize access
// externally.
package region
