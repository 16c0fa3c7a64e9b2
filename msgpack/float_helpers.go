// SPDX-License-Identifier: MIT
package msgpack

import (
	"encoding/binary"
	"math"
)

// encodeFloat32s packs each value as a big-endian float32, concatenated.
func encodeFloat32s(vs ...float32) []byte {
	out := make([]byte, 4*len(vs))
	for i, v := range vs {
		binary.BigEndian.PutUint32(out[i*4:], math.Float32bits(v))
	}
	return out
}

// decodeFloat32s unpacks n big-endian float32 values from payload.
func decodeFloat32s(payload []byte, n int) ([]float32, error) {
	if len(payload) != 4*n {
		return nil, ErrMalformed
	}

	out := make([]float32, n)
	for i := range out {
		out[i] = math.Float32frombits(binary.BigEndian.Uint32(payload[i*4:]))
	}

	return out, nil
}
