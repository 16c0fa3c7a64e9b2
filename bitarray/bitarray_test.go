// SPDX-License-Identifier: MIT
package bitarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultFillAndUnusedBitsCleared(t *testing.T) {
	b, err := New(10, true)
	require.NoError(t, err)
	require.Equal(t, 10, b.Size())
	require.Len(t, b.Bytes(), 2)

	// 10 bits -> 2 bytes, last byte only uses 2 low bits.
	assert.Equal(t, byte(0xFF), b.Bytes()[0])
	assert.Equal(t, byte(0x03), b.Bytes()[1])
}

func TestNew_NegativeSize(t *testing.T) {
	_, err := New(-1, false)
	require.ErrorIs(t, err, ErrInvalidSize)
}

func TestSetGet_Roundtrip(t *testing.T) {
	b, err := New(16, false)
	require.NoError(t, err)

	for i := 0; i < b.Size(); i++ {
		x := i%2 == 0
		_, err := b.Set(i, x)
		require.NoError(t, err)

		got, err := b.Get(i)
		require.NoError(t, err)
		assert.Equal(t, x, got)
	}
}

func TestSet_Chaining(t *testing.T) {
	b, _ := New(8, false)
	b2, err := b.Set(0, true)
	require.NoError(t, err)
	assert.Same(t, b, b2)

	b3, err := b2.Set(0, false)
	require.NoError(t, err)
	got, _ := b3.Get(0)
	assert.False(t, got)
}

func TestGetSet_OutOfRange(t *testing.T) {
	b, _ := New(4, false)

	_, err := b.Get(4)
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = b.Get(-1)
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = b.Set(4, true)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestSwap(t *testing.T) {
	b, _ := New(4, false)

	idx, err := b.Swap(2)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	got, _ := b.Get(2)
	assert.True(t, got)

	_, err = b.Swap(2)
	require.NoError(t, err)
	got, _ = b.Get(2)
	assert.False(t, got)
}

func TestFindAndSwap(t *testing.T) {
	b, _ := New(8, false)
	_, _ = b.Set(0, true)
	_, _ = b.Set(1, true)

	idx, ok := b.FindAndSwap(false)
	require.True(t, ok)
	assert.Equal(t, 2, idx)

	got, _ := b.Get(2)
	assert.True(t, got)
}

func TestFindAndSwap_NoneFound(t *testing.T) {
	b, _ := New(4, true)

	_, ok := b.FindAndSwap(false)
	assert.False(t, ok)
}

func TestExpand(t *testing.T) {
	b, _ := New(4, true)
	big, err := b.Expand(12)
	require.NoError(t, err)

	assert.Equal(t, 12, big.Size())
	for i := 0; i < 4; i++ {
		got, _ := big.Get(i)
		assert.True(t, got, "bit %d should be copied verbatim", i)
	}
	for i := 4; i < 12; i++ {
		got, _ := big.Get(i)
		assert.False(t, got, "bit %d should default false", i)
	}
}

func TestExpand_Shrink(t *testing.T) {
	b, _ := New(8, false)
	_, err := b.Expand(8)
	require.ErrorIs(t, err, ErrShrink)

	_, err = b.Expand(4)
	require.ErrorIs(t, err, ErrShrink)
}

func TestPopcount(t *testing.T) {
	b, _ := New(577, false)
	idxs := []int{0, 300, 576}
	for _, i := range idxs {
		_, err := b.Set(i, true)
		require.NoError(t, err)
	}

	assert.Equal(t, len(idxs), b.Popcount())
}

func TestEqual(t *testing.T) {
	a, _ := New(10, false)
	b, _ := New(10, false)
	assert.True(t, a.Equal(b))

	_, _ = a.Set(3, true)
	assert.False(t, a.Equal(b))

	_, _ = b.Set(3, true)
	assert.True(t, a.Equal(b))

	c, _ := New(11, false)
	assert.False(t, a.Equal(c))
}

func TestEqual_ConstructedDifferently(t *testing.T) {
	a, _ := New(20, true)
	_, _ = a.Set(5, false)

	b, _ := New(20, false)
	for i := 0; i < 20; i++ {
		_, _ = b.Set(i, i != 5)
	}

	assert.True(t, a.Equal(b))
}

func TestClone(t *testing.T) {
	a, _ := New(10, false)
	_, _ = a.Set(2, true)

	b := a.Clone()
	assert.True(t, a.Equal(b))

	_, _ = b.Set(2, false)
	assert.False(t, a.Equal(b))
}

func TestBytesRoundTrip(t *testing.T) {
	a, _ := New(577, false)
	_, _ = a.Set(0, true)
	_, _ = a.Set(300, true)
	_, _ = a.Set(576, true)

	b, err := FromBytes(a.Bytes(), a.TrailingBits())
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestString(t *testing.T) {
	b, _ := New(4, false)
	_, _ = b.Set(1, true)
	_, _ = b.Set(3, true)

	assert.Equal(t, "0101", b.String())
}
