// SPDX-License-Identifier: MIT
package msgpack

import "github.com/hearthcode/playerpack/bitarray"

// encodeBitArrayExt implements ext tag 41: one trailing-bits byte (0 means
// the last byte is fully used) followed by the raw packed bytes.
func encodeBitArrayExt(_ *Encoder, v any) (int8, []byte, error) {
	b := v.(*bitarray.BitArray)

	raw := b.Bytes()
	payload := make([]byte, 1+len(raw))
	payload[0] = byte(b.TrailingBits())
	copy(payload[1:], raw)

	return ExtBitArray, payload, nil
}

func decodeBitArrayExt(_ *Decoder, payload []byte) (any, error) {
	if len(payload) < 1 {
		return nil, ErrMalformed
	}

	trailing := int(payload[0])

	b, err := bitarray.FromBytes(payload[1:], trailing)
	if err != nil {
		return nil, err
	}

	return b, nil
}
