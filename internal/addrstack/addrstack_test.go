package addrstack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPushPop(t *testing.T) {
	var s AddrStack
	require.Equal(t, uint32(0), s.Pop(), "pop on empty stack returns the sentinel 0")

	require.True(t, s.Push(10))
	require.True(t, s.Push(20))
	require.True(t, s.Push(30))
	require.Equal(t, 3, s.Len())

	require.Equal(t, uint32(30), s.Pop())
	require.Equal(t, uint32(20), s.Pop())
	require.Equal(t, uint32(10), s.Pop())
	require.Equal(t, 0, s.Len())
	require.Equal(t, uint32(0), s.Pop())
}

func TestCapacity(t *testing.T) {
	var s AddrStack
	for i := 0; i < MaxLoops; i++ {
		require.True(t, s.Push(uint32(i)), "push %d should succeed within capacity", i)
	}
	require.False(t, s.Push(12345), "push beyond MaxLoops must fail")
	require.Equal(t, MaxLoops, s.Len())

	// Draining one slot makes room for exactly one more push.
	s.Pop()
	require.True(t, s.Push(999))
	require.False(t, s.Push(1000))
}
