package alloc

import (
	"strconv"
	"testing"
)

// BenchmarkAllocateFreeNewest measures the LIFO path, where Free moves nothing.
func BenchmarkAllocateFreeNewest(b *testing.B) {
	a := newTestAllocator(b, 0, 1<<20)

	b.ReportAllocs()
	for range b.N {
		c, err := a.Allocate(256, false, "")
		if err != nil {
			b.Fatal(err)
		}
		if err := a.Free(c); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFreeOldest measures the worst case: freeing the oldest chunk moves
// every other live byte.
func BenchmarkFreeOldest(b *testing.B) {
	for _, live := range []int{16, 256} {
		b.Run("live="+strconv.Itoa(live), func(b *testing.B) {
			a := newTestAllocator(b, 0, 1<<24)
			for range live {
				mustAllocate(b, a, 1024, "")
			}

			b.ReportAllocs()
			b.ResetTimer()
			for range b.N {
				if err := a.Free(a.chunks[0]); err != nil {
					b.Fatal(err)
				}
				if _, err := a.Allocate(1024, false, ""); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
