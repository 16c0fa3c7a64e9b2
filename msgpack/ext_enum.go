// SPDX-License-Identifier: MIT
package msgpack

import "github.com/hearthcode/playerpack/enum"

// encodeEnumExt implements ext tag 42: a nested MessagePack encoding of
// the pair (keys_array, values_array). Order and range are not carried on
// the wire — decodeEnumExt reconstructs the bijection with the default
// ascending order and unrestricted range (see DESIGN.md); ByKey/ByValue
// round-trip exactly, only Descending iteration order does not.
func encodeEnumExt(enc *Encoder, v any) (int8, []byte, error) {
	e := v.(*enum.Enum)

	keys := e.Keys()
	values := e.Values()

	keysArr := make([]any, len(keys))
	for i, k := range keys {
		keysArr[i] = k
	}

	valuesArr := make([]any, len(values))
	for i, val := range values {
		valuesArr[i] = int64(val)
	}

	nested, err := enc.encodeNested([]any{keysArr, valuesArr})
	if err != nil {
		return 0, nil, err
	}

	return ExtEnum, nested, nil
}

func decodeEnumExt(dec *Decoder, payload []byte) (any, error) {
	pair, err := dec.decodeNested(payload)
	if err != nil {
		return nil, err
	}

	outer, ok := pair.([]any)
	if !ok || len(outer) != 2 {
		return nil, ErrMalformed
	}

	keysArr, ok := outer[0].([]any)
	if !ok {
		return nil, ErrMalformed
	}

	valuesArr, ok := outer[1].([]any)
	if !ok || len(valuesArr) != len(keysArr) {
		return nil, ErrMalformed
	}

	kv := make(map[string]int, len(keysArr))
	for i, k := range keysArr {
		key, ok := k.(string)
		if !ok {
			return nil, ErrMalformed
		}

		val, err := asInt(valuesArr[i])
		if err != nil {
			return nil, ErrMalformed
		}

		kv[key] = val
	}

	return enum.New(kv, enum.Ascending, nil)
}

// asInt coerces a decoded MessagePack integer (int64 or uint64) to int.
func asInt(v any) (int, error) {
	switch n := v.(type) {
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	default:
		return 0, ErrMalformed
	}
}
