// SPDX-License-Identifier: MIT
package msgpack

import "errors"

// Sentinel errors for encoding and decoding, per the taxonomy in spec §7.
var (
	// ErrTruncated is returned when the decoder runs off the end of input.
	ErrTruncated = errors.New("msgpack: truncated input")
	// ErrExtraBytes is returned when a top-level Decode leaves bytes unread.
	ErrExtraBytes = errors.New("msgpack: extra bytes after top-level value")
	// ErrUnknownExtension is returned when the decoder sees an extension tag
	// with no registered decoder.
	ErrUnknownExtension = errors.New("msgpack: unknown extension tag")
	// ErrUnknownConstant is returned when the decoder sees a well-known
	// constant selector (tag 40) it does not recognize.
	ErrUnknownConstant = errors.New("msgpack: unknown constant selector")
	// ErrUnsupportedValue is returned when the encoder is asked to serialize
	// a value with no registered representation.
	ErrUnsupportedValue = errors.New("msgpack: unsupported value type")
	// ErrInvalidTag is returned when a caller registers an extension tag
	// outside its reserved partition, or a reserved/duplicate tag.
	ErrInvalidTag = errors.New("msgpack: invalid extension tag")
	// ErrMalformed is returned when a wire-format byte sequence cannot be
	// decoded (bad length prefix, invalid leading byte for the requested
	// decode, etc).
	ErrMalformed = errors.New("msgpack: malformed input")
)
