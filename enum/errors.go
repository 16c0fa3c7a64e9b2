// SPDX-License-Identifier: MIT
package enum

import "errors"

// Sentinel errors for Enum construction and lookup.
var (
	// ErrInvalidKey is returned when a key is empty or parses as a number.
	ErrInvalidKey = errors.New("enum: keys must be non-numeric strings")
	// ErrValueRange is returned when a value falls outside the declared [min, max].
	ErrValueRange = errors.New("enum: value out of declared range")
	// ErrDuplicateValue is returned when two keys share the same integer value.
	ErrDuplicateValue = errors.New("enum: values must be distinct")
	// ErrNotFound is returned by ByKey/ByValue when the lookup misses.
	ErrNotFound = errors.New("enum: not found")
	// ErrReadOnly is returned by any attempted mutation.
	ErrReadOnly = errors.New("enum: read-only")
)
