// SPDX-License-Identifier: MIT

// Package bitarray implements a fixed-size, byte-packed bit vector.
//
// A BitArray's size is fixed at construction and never changes; Expand
// returns a new, larger BitArray rather than growing in place. Bits are
// stored little-endian within each byte: bit i lives at byte i/8, mask
// 1<<(i%8). The unused high bits of the last byte are always zero, which
// is what makes Equal a verbatim byte comparison.
//
//	b, _ := bitarray.New(10, false)
//	b.Set(3, true)
//	b.Get(3) // true
package bitarray
