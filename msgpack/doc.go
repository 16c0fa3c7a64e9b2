// SPDX-License-Identifier: MIT

// Package msgpack implements a MessagePack encoder/decoder
// (https://github.com/msgpack/msgpack/blob/master/spec.md) with an
// extension-type registry for game-domain values: vectors, rotations,
// colors, player/object references, bit arrays, and enums.
//
// Encode and Decode take a Config that selects string/integer/number/array
// wire-format modes; DefaultConfig matches the pipeline façade's defaults
// (str8-capable text strings, unsigned-preferred integers, double-precision
// floats, sparse tables as maps).
//
//	cfg := msgpack.DefaultConfig()
//	b, err := msgpack.Encode(value, cfg)
//	v, err := msgpack.Decode(b, cfg)
package msgpack
