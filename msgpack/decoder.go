// SPDX-License-Identifier: MIT
package msgpack

import (
	"math"

	"github.com/pkg/errors"
)

// Decoder walks a MessagePack byte string and reconstructs Go values. The
// cursor (src, i) advances by exactly the bytes each primitive consumes;
// underflow fails with ErrTruncated.
type Decoder struct {
	cfg Config
	src []byte
	i   int
}

// Decode parses a single top-level MessagePack value from src. Fails with
// ErrExtraBytes if bytes remain after the value. Use DecodeOne to decode
// one value and learn the cursor position instead.
func Decode(src []byte, cfg Config) (any, error) {
	dec := &Decoder{cfg: cfg, src: src}

	v, err := dec.decodeValue()
	if err != nil {
		return nil, err
	}

	if dec.i != len(dec.src) {
		return nil, errors.Wrapf(ErrExtraBytes, "consumed=%d total=%d", dec.i, len(dec.src))
	}

	return v, nil
}

// DecodeOne parses a single MessagePack value from the front of src and
// returns it along with the number of bytes consumed, ignoring any
// trailing bytes.
func DecodeOne(src []byte, cfg Config) (any, int, error) {
	dec := &Decoder{cfg: cfg, src: src}

	v, err := dec.decodeValue()
	if err != nil {
		return nil, 0, err
	}

	return v, dec.i, nil
}

// decodeNested parses payload as a standalone top-level value under the
// same config, for extension decoders that nest MessagePack (Enum tag 42).
func (dec *Decoder) decodeNested(payload []byte) (any, error) {
	return Decode(payload, dec.cfg)
}

func (dec *Decoder) readByte() (byte, error) {
	if dec.i >= len(dec.src) {
		return 0, errors.Wrapf(ErrTruncated, "at offset %d", dec.i)
	}

	b := dec.src[dec.i]
	dec.i++

	return b, nil
}

func (dec *Decoder) readN(n int) ([]byte, error) {
	if n < 0 || dec.i+n > len(dec.src) {
		return nil, errors.Wrapf(ErrTruncated, "need %d bytes at offset %d, have %d", n, dec.i, len(dec.src)-dec.i)
	}

	b := dec.src[dec.i : dec.i+n]
	dec.i += n

	return b, nil
}

func (dec *Decoder) readUint16() (uint16, error) {
	b, err := dec.readN(2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0])<<8 | uint16(b[1]), nil
}

func (dec *Decoder) readUint32() (uint32, error) {
	b, err := dec.readN(4)
	if err != nil {
		return 0, err
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}

func (dec *Decoder) readUint64() (uint64, error) {
	b, err := dec.readN(8)
	if err != nil {
		return 0, err
	}
	var v uint64
	for _, x := range b {
		v = v<<8 | uint64(x)
	}
	return v, nil
}

func (dec *Decoder) decodeValue() (any, error) {
	b, err := dec.readByte()
	if err != nil {
		return nil, err
	}

	switch {
	case b == atomNil:
		return nil, nil
	case b == atomFalse:
		return false, nil
	case b == atomTrue:
		return true, nil

	case b&0x80 == 0x00: // positive fixint 0x00-0x7f
		return int64(b), nil
	case b&0xe0 == 0xe0: // negative fixint 0xe0-0xff
		return int64(int8(b)), nil

	case b&0xf0 == maskFixMap:
		return dec.decodeMap(int(b & 0x0f))
	case b&0xf0 == maskFixArray:
		return dec.decodeArray(int(b & 0x0f))
	case b&0xe0 == maskFixStr:
		return dec.decodeString(int(b & 0x1f))

	case b == typeBin8:
		n, err := dec.readByte()
		if err != nil {
			return nil, err
		}
		return dec.decodeBinary(int(n))
	case b == typeBin16:
		n, err := dec.readUint16()
		if err != nil {
			return nil, err
		}
		return dec.decodeBinary(int(n))
	case b == typeBin32:
		n, err := dec.readUint32()
		if err != nil {
			return nil, err
		}
		return dec.decodeBinary(int(n))

	case b == typeExt8:
		n, err := dec.readByte()
		if err != nil {
			return nil, err
		}
		return dec.decodeExt(int(n))
	case b == typeExt16:
		n, err := dec.readUint16()
		if err != nil {
			return nil, err
		}
		return dec.decodeExt(int(n))
	case b == typeExt32:
		n, err := dec.readUint32()
		if err != nil {
			return nil, err
		}
		return dec.decodeExt(int(n))

	case b == typeFloat32:
		bits, err := dec.readUint32()
		if err != nil {
			return nil, err
		}
		return float64(math.Float32frombits(bits)), nil
	case b == typeFloat64:
		bits, err := dec.readUint64()
		if err != nil {
			return nil, err
		}
		return math.Float64frombits(bits), nil

	case b == typeUint8:
		n, err := dec.readByte()
		if err != nil {
			return nil, err
		}
		return uint64(n), nil
	case b == typeUint16:
		n, err := dec.readUint16()
		if err != nil {
			return nil, err
		}
		return uint64(n), nil
	case b == typeUint32:
		n, err := dec.readUint32()
		if err != nil {
			return nil, err
		}
		return uint64(n), nil
	case b == typeUint64:
		return dec.readUint64()

	case b == typeInt8:
		n, err := dec.readByte()
		if err != nil {
			return nil, err
		}
		return int64(int8(n)), nil
	case b == typeInt16:
		n, err := dec.readUint16()
		if err != nil {
			return nil, err
		}
		return int64(int16(n)), nil
	case b == typeInt32:
		n, err := dec.readUint32()
		if err != nil {
			return nil, err
		}
		return int64(int32(n)), nil
	case b == typeInt64:
		n, err := dec.readUint64()
		if err != nil {
			return nil, err
		}
		return int64(n), nil

	case b == typeFixExt1:
		return dec.decodeExt(1)
	case b == typeFixExt2:
		return dec.decodeExt(2)
	case b == typeFixExt4:
		return dec.decodeExt(4)
	case b == typeFixExt8:
		return dec.decodeExt(8)
	case b == typeFixExt16:
		return dec.decodeExt(16)

	case b == typeStr8:
		n, err := dec.readByte()
		if err != nil {
			return nil, err
		}
		return dec.decodeString(int(n))
	case b == typeStr16:
		n, err := dec.readUint16()
		if err != nil {
			return nil, err
		}
		return dec.decodeString(int(n))
	case b == typeStr32:
		n, err := dec.readUint32()
		if err != nil {
			return nil, err
		}
		return dec.decodeString(int(n))

	case b == typeArray16:
		n, err := dec.readUint16()
		if err != nil {
			return nil, err
		}
		return dec.decodeArray(int(n))
	case b == typeArray32:
		n, err := dec.readUint32()
		if err != nil {
			return nil, err
		}
		return dec.decodeArray(int(n))

	case b == typeMap16:
		n, err := dec.readUint16()
		if err != nil {
			return nil, err
		}
		return dec.decodeMap(int(n))
	case b == typeMap32:
		n, err := dec.readUint32()
		if err != nil {
			return nil, err
		}
		return dec.decodeMap(int(n))

	default:
		return nil, errors.Wrapf(ErrMalformed, "leading byte 0x%02x at offset %d", b, dec.i-1)
	}
}

func (dec *Decoder) decodeString(n int) (string, error) {
	b, err := dec.readN(n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (dec *Decoder) decodeBinary(n int) ([]byte, error) {
	b, err := dec.readN(n)
	if err != nil {
		return nil, err
	}

	out := make([]byte, n)
	copy(out, b)

	return out, nil
}

func (dec *Decoder) decodeArray(n int) ([]any, error) {
	out := make([]any, n)

	for i := 0; i < n; i++ {
		v, err := dec.decodeValue()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// decodeMap discards entries whose key decodes to nil or NaN, and
// canonicalizes numeric keys so int64/uint64/float64 values that compare
// numerically equal collapse to the same map key (last write wins).
func (dec *Decoder) decodeMap(n int) (map[any]any, error) {
	out := make(map[any]any, n)

	for i := 0; i < n; i++ {
		k, err := dec.decodeValue()
		if err != nil {
			return nil, err
		}

		v, err := dec.decodeValue()
		if err != nil {
			return nil, err
		}

		ck, keep := canonicalizeKey(k)
		if !keep {
			continue
		}

		out[ck] = v
	}

	return out, nil
}

// canonicalizeKey normalizes a decoded key for map insertion. It reports
// keep=false for nil and NaN keys, which must be discarded per spec §4.3.
func canonicalizeKey(k any) (any, bool) {
	switch v := k.(type) {
	case nil:
		return nil, false
	case float64:
		if math.IsNaN(v) {
			return nil, false
		}
		if v == math.Trunc(v) && v >= math.MinInt64 && v <= math.MaxInt64 {
			return int64(v), true
		}
		return v, true
	case uint64:
		if v <= math.MaxInt64 {
			return int64(v), true
		}
		return v, true
	default:
		return v, true
	}
}

func (dec *Decoder) decodeExt(n int) (any, error) {
	tagByte, err := dec.readByte()
	if err != nil {
		return nil, err
	}
	tag := int8(tagByte)

	payload, err := dec.readN(n)
	if err != nil {
		return nil, err
	}

	if tag == extTagConstant {
		if len(payload) != 1 {
			return nil, errors.Wrapf(ErrMalformed, "constant payload length=%d", len(payload))
		}
		return decodeWellKnown(payload[0])
	}

	decode, ok := dec.cfg.registry().decoderFor(tag)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownExtension, "tag=%d", tag)
	}

	return decode(dec, payload)
}
