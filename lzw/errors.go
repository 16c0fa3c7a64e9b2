// SPDX-License-Identifier: MIT
package lzw

import "errors"

// Sentinel errors for the LZW codec.
var (
	// ErrInvalidArgument is returned when LiteralWidth falls outside [2,8].
	ErrInvalidArgument = errors.New("lzw: literal width out of range [2,8]")
	// ErrLiteralOverflow is returned when an input byte exceeds 2^litWidth-1.
	ErrLiteralOverflow = errors.New("lzw: input byte exceeds literal width")
	// ErrInvalidCode is returned when the decoder reads a code it cannot
	// resolve against the current dictionary state.
	ErrInvalidCode = errors.New("lzw: invalid code in compressed stream")
	// ErrUnexpectedEOF is returned when the bitstream runs out before an
	// eof code is read.
	ErrUnexpectedEOF = errors.New("lzw: unexpected end of compressed stream")
)
