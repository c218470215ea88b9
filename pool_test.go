package mscsc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmptyNodePoolAcquireOrder(t *testing.T) {
	pool := newEmptyNodePool(10, 3) // ids 10,11,12

	id, ok := pool.acquire()
	require.True(t, ok)
	require.Equal(t, 10, id)

	id, ok = pool.acquire()
	require.True(t, ok)
	require.Equal(t, 11, id)

	pool.release(10)

	// releasing a smaller id makes it the next one out again.
	id, ok = pool.acquire()
	require.True(t, ok)
	require.Equal(t, 10, id)

	id, ok = pool.acquire()
	require.True(t, ok)
	require.Equal(t, 12, id)

	_, ok = pool.acquire()
	require.False(t, ok)
}
