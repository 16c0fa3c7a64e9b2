// SPDX-License-Identifier: MIT
package bitarray

import "errors"

// Sentinel errors for BitArray construction and access.
var (
	// ErrInvalidSize is returned when New is called with a negative size.
	ErrInvalidSize = errors.New("bitarray: size must be >= 0")
	// ErrOutOfRange is returned when an index falls outside [0, size).
	ErrOutOfRange = errors.New("bitarray: index out of range")
	// ErrShrink is returned when Expand is asked for a size <= the current size.
	ErrShrink = errors.New("bitarray: expand size must be greater than current size")
)
