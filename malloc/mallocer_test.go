package malloc

import "testing"
import "unsafe"

import "github.com/stretchr/testify/require"

import "github.com/bnclabs/memalloc/api"

func TestMallocerAPI(t *testing.T) {
	var mallocer api.Mallocer = New("api", testsetts())
	defer mallocer.Release()

	ptr := mallocer.Malloc(100)
	require.NotNil(t, ptr)
	require.Equal(t, int64(112), mallocer.Sizeof(ptr))

	ptr = mallocer.Realloc(ptr, 256)
	require.NotNil(t, ptr)
	require.Equal(t, int64(256), mallocer.Sizeof(ptr))

	zptr := mallocer.Calloc(4, 64)
	require.NotNil(t, zptr)
	block := unsafe.Slice((*byte)(zptr), 256)
	require.Equal(t, make([]byte, 256), block)

	mallocer.Free(zptr)
	mallocer.Free(ptr)

	capacity, heap, alloc, _ := mallocer.Info()
	require.Equal(t, int64(10*1024*1024), capacity)
	require.Zero(t, heap)
	require.Zero(t, alloc)
	require.Zero(t, mallocer.Utilization())
}
