package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestAllocator creates an allocator over [start, end) with logging
// disabled and closes it when the test ends.
func newTestAllocator(t testing.TB, start, end uint32) *Allocator {
	t.Helper()
	a, err := New(Config{Start: start, End: end})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

// mustAllocate allocates size bytes and fails the test on error.
func mustAllocate(t testing.TB, a *Allocator, size uint32, tag string) *Chunk {
	t.Helper()
	c, err := a.Allocate(size, false, tag)
	require.NoError(t, err, "Allocate(%d, %q)", size, tag)
	require.NotNil(t, c)
	return c
}

// stamp fills c with a byte pattern derived from seed and returns a copy of
// what was written.
func stamp(t testing.TB, c *Chunk, seed byte) []byte {
	t.Helper()
	want := make([]byte, c.Size())
	for i := range want {
		want[i] = seed + byte(i*7) | 1
		require.True(t, c.WriteInt8(uint32(i), want[i]))
	}
	return want
}

// contents reads c back byte by byte.
func contents(c *Chunk) []byte {
	out := make([]byte, c.Size())
	for i := range out {
		out[i] = c.ReadInt8(uint32(i))
	}
	return out
}
