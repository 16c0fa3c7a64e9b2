// SPDX-License-Identifier: MIT
package bitarray

import (
	"math/bits"
	"strings"

	"github.com/pkg/errors"
)

// BitArray is a fixed-size sequence of bits stored in contiguous bytes.
// The zero value is not usable; construct one with New.
type BitArray struct {
	size int // logical bit count, immutable after construction
	data []byte
}

// byteLen returns the number of bytes needed to hold size bits.
func byteLen(size int) int {
	return (size + 7) / 8
}

// New allocates a BitArray of the given size. If def is true every bit
// starts set; otherwise every bit starts clear. Fails with ErrInvalidSize
// if size < 0.
func New(size int, def bool) (*BitArray, error) {
	if size < 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "size=%d", size)
	}

	data := make([]byte, byteLen(size))
	if def {
		for i := range data {
			data[i] = 0xFF
		}
	}

	b := &BitArray{size: size, data: data}
	b.clearUnusedBits()

	return b, nil
}

// clearUnusedBits zeroes the high bits of the last byte that fall at or
// past size. Every mutating operation preserves this invariant so that
// Equal can compare bytes verbatim.
func (b *BitArray) clearUnusedBits() {
	if b.size%8 == 0 || len(b.data) == 0 {
		return
	}

	used := b.size % 8
	mask := byte(1<<uint(used)) - 1
	b.data[len(b.data)-1] &= mask
}

// Size returns the logical bit count (never the byte count).
func (b *BitArray) Size() int {
	return b.size
}

func (b *BitArray) checkIndex(i int) error {
	if i < 0 || i >= b.size {
		return errors.Wrapf(ErrOutOfRange, "index=%d size=%d", i, b.size)
	}
	return nil
}

// Get returns the bit at i. Fails with ErrOutOfRange if i is out of bounds.
func (b *BitArray) Get(i int) (bool, error) {
	if err := b.checkIndex(i); err != nil {
		return false, err
	}

	return b.data[i/8]&(1<<uint(i%8)) != 0, nil
}

// Set sets the bit at i to v and returns the receiver, so calls can chain.
// Fails with ErrOutOfRange if i is out of bounds.
func (b *BitArray) Set(i int, v bool) (*BitArray, error) {
	if err := b.checkIndex(i); err != nil {
		return nil, err
	}

	mask := byte(1 << uint(i%8))
	if v {
		b.data[i/8] |= mask
	} else {
		b.data[i/8] &^= mask
	}

	return b, nil
}

// Swap toggles the bit at i and returns i. Fails with ErrOutOfRange if i
// is out of bounds.
func (b *BitArray) Swap(i int) (int, error) {
	if err := b.checkIndex(i); err != nil {
		return 0, err
	}

	b.data[i/8] ^= 1 << uint(i%8)

	return i, nil
}

// FindAndSwap scans ascending from 0 for the first bit equal to target,
// toggles it, and returns its index. ok is false if no such bit exists.
func (b *BitArray) FindAndSwap(target bool) (idx int, ok bool) {
	for i := 0; i < b.size; i++ {
		v, _ := b.Get(i) // i is always in range here
		if v == target {
			_, _ = b.Swap(i)
			return i, true
		}
	}

	return 0, false
}

// Expand returns a new BitArray of newSize, with the low bytes copied
// verbatim from b and the new bits defaulting false. Fails with ErrShrink
// if newSize <= b.Size().
func (b *BitArray) Expand(newSize int) (*BitArray, error) {
	if newSize <= b.size {
		return nil, errors.Wrapf(ErrShrink, "newSize=%d size=%d", newSize, b.size)
	}

	out, err := New(newSize, false)
	if err != nil {
		return nil, err
	}

	copy(out.data, b.data)
	out.clearUnusedBits()

	return out, nil
}

// Popcount returns the number of set bits. Correctness relies on the
// unused-bit-zero invariant maintained by every mutator.
func (b *BitArray) Popcount() int {
	n := 0
	for _, by := range b.data {
		n += bits.OnesCount8(by)
	}

	return n
}

// Equal reports whether b and other have the same size and identical
// byte contents. Because unused high bits are always zero, a verbatim
// byte comparison is correct.
func (b *BitArray) Equal(other *BitArray) bool {
	if other == nil {
		return false
	}

	if b.size != other.size {
		return false
	}

	for i := range b.data {
		if b.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of b with the same size and contents.
func (b *BitArray) Clone() *BitArray {
	data := make([]byte, len(b.data))
	copy(data, b.data)

	return &BitArray{size: b.size, data: data}
}

// Bytes returns the raw packed bytes (read-only view; callers must not
// mutate the returned slice). Used by the msgpack extension encoder to
// serialize a BitArray without re-deriving its packed form.
func (b *BitArray) Bytes() []byte {
	return b.data
}

// TrailingBits returns the number of bits used in the last byte; 0 means
// the last byte is fully used (size is a multiple of 8), matching the
// payload convention of msgpack extension tag 41.
func (b *BitArray) TrailingBits() int {
	if b.size%8 == 0 {
		return 0
	}
	return b.size % 8
}

// FromBytes reconstructs a BitArray from raw packed bytes and a trailing-bit
// count, the inverse of Bytes/TrailingBits. trailing follows the tag-41
// convention: 0 means the last byte is fully used.
func FromBytes(data []byte, trailing int) (*BitArray, error) {
	if trailing < 0 || trailing > 7 {
		return nil, errors.Wrapf(ErrInvalidSize, "trailing=%d", trailing)
	}

	size := len(data) * 8
	if trailing != 0 {
		size -= 8 - trailing
	}

	if size < 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "size=%d", size)
	}

	out := make([]byte, len(data))
	copy(out, data)

	b := &BitArray{size: size, data: out}
	b.clearUnusedBits()

	return b, nil
}

// String renders the bits as a compact 0/1 string, most significant bit of
// the array last, index 0 first. Intended for debugging and test failure
// output, not for serialization.
func (b *BitArray) String() string {
	var sb strings.Builder
	sb.Grow(b.size)

	for i := 0; i < b.size; i++ {
		v, _ := b.Get(i)
		if v {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}
