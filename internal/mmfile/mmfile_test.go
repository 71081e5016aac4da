package mmfile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnonIsZeroedAndWritable(t *testing.T) {
	data, cleanup, err := Anon(8192)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, cleanup())
	}()

	require.Len(t, data, 8192)
	for i, b := range data {
		if b != 0 {
			t.Fatalf("byte %d = 0x%x, want 0", i, b)
		}
	}

	data[0] = 0xde
	data[len(data)-1] = 0xad
	require.Equal(t, byte(0xde), data[0])
	require.Equal(t, byte(0xad), data[len(data)-1])
}

func TestAnonCleanupTwice(t *testing.T) {
	_, cleanup, err := Anon(4096)
	require.NoError(t, err)
	require.NotNil(t, cleanup)
	require.NoError(t, cleanup())
	require.NoError(t, cleanup())
}

func TestAnonRejectsInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		data, cleanup, err := Anon(size)
		require.Error(t, err, "size %d", size)
		require.Nil(t, data)
		require.Nil(t, cleanup)
	}
}
