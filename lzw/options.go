// SPDX-License-Identifier: MIT
package lzw

import "github.com/pkg/errors"

// Order selects the bit-packing direction used to pack codes into bytes.
type Order int

const (
	// LSB packs each code's low bit first, draining whole bytes from the
	// low end of the accumulator. This is the GIF bit order.
	LSB Order = iota
	// MSB packs each code's high bit first, draining from the high end.
	MSB
)

const (
	minLiteralWidth = 2
	maxLiteralWidth = 8
	maxWidth        = 12
	maxCode         = 1<<maxWidth - 1
)

// Options configures the LZW codec.
type Options struct {
	// LiteralWidth is the bit width of literal (uncoded) bytes, in [2,8].
	LiteralWidth int
	// Order selects LSB or MSB bit packing.
	Order Order
}

// DefaultOptions returns 8-bit literals packed LSB-first.
func DefaultOptions() *Options {
	return &Options{LiteralWidth: maxLiteralWidth, Order: LSB}
}

func normalizeOptions(opts *Options) *Options {
	if opts == nil {
		return DefaultOptions()
	}
	cp := *opts
	return &cp
}

func (o *Options) validate() error {
	if o.LiteralWidth < minLiteralWidth || o.LiteralWidth > maxLiteralWidth {
		return errors.Wrapf(ErrInvalidArgument, "literalWidth=%d", o.LiteralWidth)
	}
	return nil
}
