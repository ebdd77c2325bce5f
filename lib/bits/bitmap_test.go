package bits

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewX32Bitmap(t *testing.T) {
	bm := NewX32Bitmap(10)
	setOffsets := []uint64{9, 5, 7, 3, 2, 8, 1}
	expectedOffsets := []uint64{1, 2, 3, 5, 7, 8, 9}
	for _, offset := range setOffsets {
		require.True(t, bm.SetBit(offset))
	}
	require.False(t, bm.SetBit(100))
	for _, offset := range expectedOffsets {
		require.True(t, bm.GetBit(offset))
	}
	require.False(t, bm.GetBit(0))
	require.False(t, bm.GetBit(4))
	require.False(t, bm.GetBit(6))
	require.False(t, bm.GetBit(100))
	// Setting twice keeps the bit.
	require.True(t, bm.SetBit(9))
	require.True(t, bm.GetBit(9))
}

func TestX32Bitmap_WordBoundary(t *testing.T) {
	bm := NewX32Bitmap(64)
	for _, offset := range []uint64{0, 31, 32, 63} {
		require.True(t, bm.SetBit(offset))
	}
	require.False(t, bm.SetBit(64))
	require.True(t, bm.GetBit(31))
	require.True(t, bm.GetBit(32))
	require.False(t, bm.GetBit(33))
	require.Len(t, bm.(*x32Bitmap).bits, 2)

	empty := NewX32Bitmap(0)
	require.False(t, empty.SetBit(0))
	require.False(t, empty.GetBit(0))
}
