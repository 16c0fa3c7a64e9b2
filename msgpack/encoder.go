// SPDX-License-Identifier: MIT
package msgpack

import (
	"bytes"
	"math"

	"github.com/pkg/errors"
)

// byteSink is the minimal write surface Encoder needs; bytes.Buffer and
// countingSink both satisfy it, which is what lets Measure share
// encodeValue's logic without allocating an output buffer.
type byteSink interface {
	WriteByte(byte) error
	Write(p []byte) (int, error)
}

// countingSink discards bytes and only counts them, backing Measure.
type countingSink struct{ n int }

func (c *countingSink) WriteByte(byte) error        { c.n++; return nil }
func (c *countingSink) Write(p []byte) (int, error) { c.n += len(p); return len(p), nil }

// Encoder walks a Go value and writes its MessagePack encoding to w.
type Encoder struct {
	cfg Config
	w   byteSink
}

// Encode serializes v to MessagePack bytes under cfg.
func Encode(v any, cfg Config) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := &Encoder{cfg: cfg, w: buf}

	if err := enc.encodeValue(v); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Measure returns the byte length Encode(v, cfg) would produce, without
// allocating the output buffer.
func Measure(v any, cfg Config) (int, error) {
	sink := &countingSink{}
	enc := &Encoder{cfg: cfg, w: sink}

	if err := enc.encodeValue(v); err != nil {
		return 0, err
	}

	return sink.n, nil
}

// encodeNested encodes v as a standalone top-level value under the same
// config, for extension encoders that nest MessagePack (Enum's tag 42).
func (enc *Encoder) encodeNested(v any) ([]byte, error) {
	return Encode(v, enc.cfg)
}

func (enc *Encoder) writeByte(b byte) error {
	return enc.w.WriteByte(b)
}

func (enc *Encoder) write(p []byte) error {
	_, err := enc.w.Write(p)
	return err
}

func (enc *Encoder) encodeValue(v any) error {
	switch val := v.(type) {
	case nil:
		return enc.writeByte(atomNil)
	case bool:
		if val {
			return enc.writeByte(atomTrue)
		}
		return enc.writeByte(atomFalse)

	case int:
		return enc.encodeSignedOrUnsigned(int64(val))
	case int8:
		return enc.encodeSignedOrUnsigned(int64(val))
	case int16:
		return enc.encodeSignedOrUnsigned(int64(val))
	case int32:
		return enc.encodeSignedOrUnsigned(int64(val))
	case int64:
		return enc.encodeSignedOrUnsigned(val)
	case uint:
		return enc.encodeSignedOrUnsigned(int64(val))
	case uint8:
		return enc.encodeSignedOrUnsigned(int64(val))
	case uint16:
		return enc.encodeSignedOrUnsigned(int64(val))
	case uint32:
		return enc.encodeSignedOrUnsigned(int64(val))
	case uint64:
		return enc.encodeUint64(val)

	case float32:
		return enc.encodeFloat(float64(val))
	case float64:
		return enc.encodeFloat(val)

	case string:
		return enc.encodeString(val)
	case []byte:
		return enc.encodeBinary(val)

	case []any:
		return enc.encodeArray(val)
	case map[any]any:
		return enc.encodeMap(val)
	case map[string]any:
		converted := make(map[any]any, len(val))
		for k, v := range val {
			converted[k] = v
		}
		return enc.encodeMap(converted)

	default:
		return enc.encodeExtensionOrFail(v)
	}
}

// encodeSignedOrUnsigned applies IntMode: unsigned-preferred for
// non-negative values unless IntSigned forces signed encodings throughout.
func (enc *Encoder) encodeSignedOrUnsigned(v int64) error {
	if enc.cfg.Int == IntSigned {
		return enc.encodeInt64(v)
	}

	if v >= 0 {
		return enc.encodeUint64(uint64(v))
	}

	return enc.encodeInt64(v)
}

func (enc *Encoder) encodeUint64(v uint64) error {
	switch {
	case v <= 0x7f:
		return enc.writeByte(byte(v))
	case v <= 0xff:
		return enc.writeAll(typeUint8, byte(v))
	case v <= 0xffff:
		return enc.writeBE16(typeUint16, uint16(v))
	case v <= 0xffffffff:
		return enc.writeBE32(typeUint32, uint32(v))
	default:
		return enc.writeBE64(typeUint64, v)
	}
}

func (enc *Encoder) encodeInt64(v int64) error {
	switch {
	case v >= -32 && v <= 127:
		return enc.writeByte(byte(v))
	case v >= math.MinInt8 && v <= math.MaxInt8:
		return enc.writeAll(typeInt8, byte(int8(v)))
	case v >= math.MinInt16 && v <= math.MaxInt16:
		return enc.writeBE16(typeInt16, uint16(int16(v)))
	case v >= math.MinInt32 && v <= math.MaxInt32:
		return enc.writeBE32(typeInt32, uint32(int32(v)))
	default:
		return enc.writeBE64(typeInt64, uint64(v))
	}
}

func (enc *Encoder) encodeFloat(v float64) error {
	if enc.cfg.Number == NumberFloat {
		if err := enc.writeByte(typeFloat32); err != nil {
			return err
		}
		return enc.writeBE32Raw(math.Float32bits(float32(v)))
	}

	if err := enc.writeByte(typeFloat64); err != nil {
		return err
	}
	return enc.writeBE64Raw(math.Float64bits(v))
}

func (enc *Encoder) encodeString(s string) error {
	if enc.cfg.String == StringBinary {
		return enc.encodeBinary([]byte(s))
	}

	n := len(s)
	switch {
	case n < 32:
		if err := enc.writeByte(maskFixStr | byte(n)); err != nil {
			return err
		}
	case n < 256 && enc.cfg.String == StringDefault:
		if err := enc.writeAll(typeStr8, byte(n)); err != nil {
			return err
		}
	case n < 65536:
		if err := enc.writeBE16(typeStr16, uint16(n)); err != nil {
			return err
		}
	default:
		if err := enc.writeBE32(typeStr32, uint32(n)); err != nil {
			return err
		}
	}

	return enc.write([]byte(s))
}

func (enc *Encoder) encodeBinary(b []byte) error {
	n := len(b)
	switch {
	case n < 256:
		if err := enc.writeAll(typeBin8, byte(n)); err != nil {
			return err
		}
	case n < 65536:
		if err := enc.writeBE16(typeBin16, uint16(n)); err != nil {
			return err
		}
	default:
		if err := enc.writeBE32(typeBin32, uint32(n)); err != nil {
			return err
		}
	}

	return enc.write(b)
}

func (enc *Encoder) encodeArray(vs []any) error {
	n := len(vs)
	if err := enc.writeArrayHeader(n); err != nil {
		return err
	}

	for _, v := range vs {
		if err := enc.encodeValue(v); err != nil {
			return err
		}
	}

	return nil
}

func (enc *Encoder) writeArrayHeader(n int) error {
	switch {
	case n < 16:
		return enc.writeByte(maskFixArray | byte(n))
	case n < 65536:
		return enc.writeBE16(typeArray16, uint16(n))
	default:
		return enc.writeBE32(typeArray32, uint32(n))
	}
}

func (enc *Encoder) writeMapHeader(n int) error {
	switch {
	case n < 16:
		return enc.writeByte(maskFixMap | byte(n))
	case n < 65536:
		return enc.writeBE16(typeMap16, uint16(n))
	default:
		return enc.writeBE32(typeMap32, uint32(n))
	}
}

// encodeMap applies ArrayMode: a map with dense or sparse positive-integer
// keys starting at 1 may be encoded as an array instead of a map.
func (enc *Encoder) encodeMap(m map[any]any) error {
	if enc.cfg.Array != ArrayAlwaysAsMap {
		if asArray, ok := tryTableAsArray(m, enc.cfg.Array); ok {
			return enc.encodeArray(asArray)
		}
	}

	if err := enc.writeMapHeader(len(m)); err != nil {
		return err
	}

	for k, v := range m {
		if err := enc.encodeValue(k); err != nil {
			return err
		}
		if err := enc.encodeValue(v); err != nil {
			return err
		}
	}

	return nil
}

// tryTableAsArray reports whether m's keys are all positive ints (a Lua-
// table-style array candidate) and, if so, returns the padded slice per
// mode. ArrayWithoutHole only converts fully dense {1..max} tables;
// ArrayWithHole converts any positive-int-keyed table, padding gaps with
// nil.
func tryTableAsArray(m map[any]any, mode ArrayMode) ([]any, bool) {
	if len(m) == 0 {
		return nil, false
	}

	maxKey := 0
	for k := range m {
		n, ok := k.(int)
		if !ok || n < 1 {
			return nil, false
		}
		if n > maxKey {
			maxKey = n
		}
	}

	dense := maxKey == len(m)
	if mode == ArrayWithoutHole && !dense {
		return nil, false
	}

	out := make([]any, maxKey)
	for k, v := range m {
		out[k.(int)-1] = v
	}

	return out, true
}

func (enc *Encoder) encodeExtensionOrFail(v any) error {
	if selector, ok := lookupWellKnown(v); ok {
		return enc.writeExt(extTagConstant, []byte{selector})
	}

	entry, ok := enc.cfg.registry().encoderFor(v)
	if !ok {
		return errors.Wrapf(ErrUnsupportedValue, "type %T", v)
	}

	tag, payload, err := entry.encode(enc, v)
	if err != nil {
		return err
	}

	return enc.writeExt(tag, payload)
}

// writeExt picks the smallest extension wire form (fixext if the payload
// length is 1/2/4/8/16, otherwise ext8/16/32) and writes tag then payload.
func (enc *Encoder) writeExt(tag int8, payload []byte) error {
	n := len(payload)

	switch n {
	case 1:
		if err := enc.writeByte(typeFixExt1); err != nil {
			return err
		}
	case 2:
		if err := enc.writeByte(typeFixExt2); err != nil {
			return err
		}
	case 4:
		if err := enc.writeByte(typeFixExt4); err != nil {
			return err
		}
	case 8:
		if err := enc.writeByte(typeFixExt8); err != nil {
			return err
		}
	case 16:
		if err := enc.writeByte(typeFixExt16); err != nil {
			return err
		}
	default:
		switch {
		case n < 256:
			if err := enc.writeAll(typeExt8, byte(n)); err != nil {
				return err
			}
		case n < 65536:
			if err := enc.writeBE16(typeExt16, uint16(n)); err != nil {
				return err
			}
		default:
			if err := enc.writeBE32(typeExt32, uint32(n)); err != nil {
				return err
			}
		}
	}

	if err := enc.writeByte(byte(tag)); err != nil {
		return err
	}

	return enc.write(payload)
}

// --- low-level writers ---

func (enc *Encoder) writeAll(prefix, b byte) error {
	if err := enc.writeByte(prefix); err != nil {
		return err
	}
	return enc.writeByte(b)
}

func (enc *Encoder) writeBE16(prefix byte, v uint16) error {
	if err := enc.writeByte(prefix); err != nil {
		return err
	}
	return enc.write([]byte{byte(v >> 8), byte(v)})
}

func (enc *Encoder) writeBE32(prefix byte, v uint32) error {
	if err := enc.writeByte(prefix); err != nil {
		return err
	}
	return enc.writeBE32Raw(v)
}

func (enc *Encoder) writeBE32Raw(v uint32) error {
	return enc.write([]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)})
}

func (enc *Encoder) writeBE64(prefix byte, v uint64) error {
	if err := enc.writeByte(prefix); err != nil {
		return err
	}
	return enc.writeBE64Raw(v)
}

func (enc *Encoder) writeBE64Raw(v uint64) error {
	return enc.write([]byte{
		byte(v >> 56), byte(v >> 48), byte(v >> 40), byte(v >> 32),
		byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v),
	})
}
