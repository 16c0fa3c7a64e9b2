// SPDX-License-Identifier: MIT
package lzw

// framingLiteralWidth is the literal width the pipeline façade always uses
// when wrapping a blob with the l,z,w magic (spec §4.4 framing note: "the
// first emitted LZW byte ... with W=8").
const framingLiteralWidth = maxLiteralWidth

var magic = [3]byte{'l', 'z', 'w'}

// EncodeFramed compresses src at 8-bit literal width and prepends the
// 3-byte "lzw" magic. The LZW stream's own first byte (0x00 for LSB order,
// 0x80 for MSB) doubles as the framing header's order discriminator, so
// the header is exactly magic + stream, 4 bytes before any payload data.
func EncodeFramed(src []byte, order Order) ([]byte, error) {
	body, err := Encode(src, &Options{LiteralWidth: framingLiteralWidth, Order: order})
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, 3+len(body))
	out = append(out, magic[0], magic[1], magic[2])
	out = append(out, body...)

	return out, nil
}

// DecodeFramed inspects src for the "lzw" magic and a recognized order
// discriminator byte. If the prefix doesn't match, matched is false and
// the caller should treat src as uncompressed passthrough data.
func DecodeFramed(src []byte) (decoded []byte, matched bool, err error) {
	if len(src) < 4 || src[0] != magic[0] || src[1] != magic[1] || src[2] != magic[2] {
		return nil, false, nil
	}

	var order Order
	switch src[3] {
	case 0x00:
		order = LSB
	case 0x80:
		order = MSB
	default:
		return nil, false, nil
	}

	decoded, err = Decode(src[3:], &Options{LiteralWidth: framingLiteralWidth, Order: order})
	if err != nil {
		return nil, true, err
	}

	return decoded, true, nil
}
