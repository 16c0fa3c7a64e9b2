// SPDX-License-Identifier: MIT
package msgpack

import (
	"reflect"

	"github.com/pkg/errors"

	"github.com/hearthcode/playerpack/bitarray"
	"github.com/hearthcode/playerpack/enum"
)

// EncodeExtFunc produces the (tag, payload) for a registered Go type. enc
// is supplied so extension encoders that nest MessagePack values (Enum's
// tag 42) can recurse through the same Encoder/Config.
type EncodeExtFunc func(enc *Encoder, v any) (tag int8, payload []byte, err error)

// DecodeExtFunc reconstructs a Go value from an extension payload. dec is
// supplied for the same nesting reason as EncodeExtFunc.
type DecodeExtFunc func(dec *Decoder, payload []byte) (any, error)

type extEncoderEntry struct {
	tag    int8
	encode EncodeExtFunc
}

// Registry is the bidirectional extension table from spec §4.3: tag ->
// decoder, Go type -> encoder. Immutable once built; RegisterTag/
// RegisterType are only meant to be called while assembling a registry,
// never concurrently with Encode/Decode using it.
type Registry struct {
	decoders map[int8]DecodeExtFunc
	encoders map[reflect.Type]extEncoderEntry
}

// NewRegistry returns an empty registry with no extensions registered.
func NewRegistry() *Registry {
	return &Registry{
		decoders: make(map[int8]DecodeExtFunc),
		encoders: make(map[reflect.Type]extEncoderEntry),
	}
}

func validateTag(tag int8, allowBuiltinRange bool) error {
	if tag < extTagMin || tag > extTagMax {
		return errors.Wrapf(ErrInvalidTag, "tag=%d out of [%d,%d]", tag, extTagMin, extTagMax)
	}

	if !allowBuiltinRange && tag <= extTagBuiltinMax {
		return errors.Wrapf(ErrInvalidTag, "tag=%d is reserved for built-in types ([0,%d])", tag, extTagBuiltinMax)
	}

	return nil
}

// RegisterTag installs the decoder for tag. Fails with ErrInvalidTag if
// tag falls outside [41,127] (the user-defined partition) or is already
// registered.
func (r *Registry) RegisterTag(tag int8, decode DecodeExtFunc) error {
	if err := validateTag(tag, false); err != nil {
		return err
	}

	if _, dup := r.decoders[tag]; dup {
		return errors.Wrapf(ErrInvalidTag, "tag=%d already registered", tag)
	}

	r.decoders[tag] = decode

	return nil
}

// RegisterType installs the encoder for the Go type of sample, tagged tag.
func (r *Registry) RegisterType(sample any, tag int8, encode EncodeExtFunc) error {
	if err := validateTag(tag, false); err != nil {
		return err
	}

	t := reflect.TypeOf(sample)
	if _, dup := r.encoders[t]; dup {
		return errors.Wrapf(ErrInvalidTag, "type %s already registered", t)
	}

	r.encoders[t] = extEncoderEntry{tag: tag, encode: encode}

	return nil
}

// registerBuiltin is like RegisterTag/RegisterType but skips the
// user-partition check, for tags in [0,40] reserved for built-ins.
func (r *Registry) registerBuiltin(sample any, tag int8, encode EncodeExtFunc, decode DecodeExtFunc) {
	t := reflect.TypeOf(sample)
	r.encoders[t] = extEncoderEntry{tag: tag, encode: encode}
	r.decoders[tag] = decode
}

func (r *Registry) encoderFor(v any) (extEncoderEntry, bool) {
	e, ok := r.encoders[reflect.TypeOf(v)]
	return e, ok
}

func (r *Registry) decoderFor(tag int8) (DecodeExtFunc, bool) {
	d, ok := r.decoders[tag]
	return d, ok
}

var defaultRegistry = buildDefaultRegistry()

// DefaultRegistry returns the shared registry with all built-in extension
// types (spec §4.3 table) installed. A registry from NewRegistry() starts
// empty, and RegisterTag/RegisterType accept only tags in [41,127], so the
// built-in tags [0,40] cannot be installed into it.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

func buildDefaultRegistry() *Registry {
	r := NewRegistry()

	r.registerBuiltin(Vector3{}, ExtVector3,
		func(_ *Encoder, v any) (int8, []byte, error) {
			vec := v.(Vector3)
			return ExtVector3, encodeFloat32s(vec.X, vec.Y, vec.Z), nil
		},
		func(_ *Decoder, payload []byte) (any, error) {
			f, err := decodeFloat32s(payload, 3)
			if err != nil {
				return nil, err
			}
			return Vector3{f[0], f[1], f[2]}, nil
		})

	r.registerBuiltin(Rotation{}, ExtRotation,
		func(_ *Encoder, v any) (int8, []byte, error) {
			rot := v.(Rotation)
			return ExtRotation, encodeFloat32s(rot.X, rot.Y, rot.Z), nil
		},
		func(_ *Decoder, payload []byte) (any, error) {
			f, err := decodeFloat32s(payload, 3)
			if err != nil {
				return nil, err
			}
			return Rotation{f[0], f[1], f[2]}, nil
		})

	r.registerBuiltin(Color{}, ExtColor,
		func(_ *Encoder, v any) (int8, []byte, error) {
			c := v.(Color)
			return ExtColor, []byte{c.R, c.G, c.B, c.A}, nil
		},
		func(_ *Decoder, payload []byte) (any, error) {
			if len(payload) != 4 {
				return nil, ErrMalformed
			}
			return Color{payload[0], payload[1], payload[2], payload[3]}, nil
		})

	r.registerBuiltin(Vector2{}, ExtVector2,
		func(_ *Encoder, v any) (int8, []byte, error) {
			vec := v.(Vector2)
			return ExtVector2, encodeFloat32s(vec.X, vec.Y), nil
		},
		func(_ *Decoder, payload []byte) (any, error) {
			f, err := decodeFloat32s(payload, 2)
			if err != nil {
				return nil, err
			}
			return Vector2{f[0], f[1]}, nil
		})

	r.registerBuiltin(Vector4{}, ExtVector4,
		func(_ *Encoder, v any) (int8, []byte, error) {
			vec := v.(Vector4)
			return ExtVector4, encodeFloat32s(vec.X, vec.Y, vec.Z, vec.W), nil
		},
		func(_ *Decoder, payload []byte) (any, error) {
			f, err := decodeFloat32s(payload, 4)
			if err != nil {
				return nil, err
			}
			return Vector4{f[0], f[1], f[2], f[3]}, nil
		})

	r.registerBuiltin(PlayerID{}, ExtPlayerId128,
		func(_ *Encoder, v any) (int8, []byte, error) {
			tag, payload := encodePlayerID(v.(PlayerID).ID)
			return tag, payload, nil
		},
		func(_ *Decoder, payload []byte) (any, error) {
			return decodePlayerID128(payload)
		})
	// PlayerIdString (tag 6) shares the Go type with PlayerId128 (tag 5);
	// only one encoder entry per type is possible, so encodePlayerID
	// decides the tag dynamically and the encode-side dispatch in
	// Encoder.encodeExtensionOrFail honors whatever tag the function returns.
	r.decoders[ExtPlayerIdString] = func(_ *Decoder, payload []byte) (any, error) {
		return PlayerID{ID: string(payload)}, nil
	}

	r.registerBuiltin(ObjectRef{}, ExtObjectRef64,
		func(_ *Encoder, v any) (int8, []byte, error) {
			tag, payload := encodeObjectRef(v.(ObjectRef).ID)
			return tag, payload, nil
		},
		func(_ *Decoder, payload []byte) (any, error) {
			return decodeObjectRef64(payload)
		})
	r.decoders[ExtObjectRefString] = func(_ *Decoder, payload []byte) (any, error) {
		return ObjectRef{ID: string(payload)}, nil
	}

	r.registerBuiltin((*bitarray.BitArray)(nil), ExtBitArray, encodeBitArrayExt, decodeBitArrayExt)
	r.registerBuiltin((*enum.Enum)(nil), ExtEnum, encodeEnumExt, decodeEnumExt)

	return r
}
