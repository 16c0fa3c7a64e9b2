// SPDX-License-Identifier: MIT

// Package lzw implements the variable-width LZW codec used by the
// pipeline façade: a hash-table compressor, a prefix/suffix-chain
// decompressor, selectable LSB/MSB bit order, and a small non-GIF framing
// header that lets a decoder tell a compressed blob from plain bytes.
//
// The core algorithm mirrors the classic LZW scheme (clear/eof reserved
// codes, width growth from litWidth+1 up to 12 bits, dictionary reset on
// overflow) byte-for-byte compatible with the reference vectors in the
// package tests, including the canonical GIF and PDF examples.
package lzw
