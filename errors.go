// SPDX-License-Identifier: MIT
package playerpack

import "errors"

// Sentinel errors for the pipeline façade.
var (
	// ErrVersionMismatch is returned when a decoded blob's version tag
	// doesn't match the tag the caller configured.
	ErrVersionMismatch = errors.New("playerpack: version tag mismatch")
	// ErrEmptyInput is returned when Decompress is given an empty blob.
	ErrEmptyInput = errors.New("playerpack: empty input")
)
