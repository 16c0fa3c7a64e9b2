// SPDX-License-Identifier: MIT
package msgpack

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthcode/playerpack/bitarray"
	"github.com/hearthcode/playerpack/enum"
)

func roundTrip(t *testing.T, v any, cfg Config) any {
	t.Helper()

	b, err := Encode(v, cfg)
	require.NoError(t, err)

	got, err := Decode(b, cfg)
	require.NoError(t, err)

	return got
}

func TestScalarRoundTrip(t *testing.T) {
	cfg := DefaultConfig()

	cases := []struct {
		name string
		in   any
		want any
	}{
		{"nil", nil, nil},
		{"true", true, true},
		{"false", false, false},
		{"fixint", 42, int64(42)},
		{"negative fixint", -5, int64(-5)},
		{"uint8 boundary", 200, uint64(200)},
		{"uint16 boundary", 40000, uint64(40000)},
		{"uint64 boundary", 5_000_000_000, uint64(5_000_000_000)},
		{"int8 negative", -100, int64(-100)},
		{"int16 negative", -30000, int64(-30000)},
		{"int64 negative", -3_000_000_000, int64(-3_000_000_000)},
		{"float64", 3.5, 3.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := roundTrip(t, tc.in, cfg)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIntSignedMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Int = IntSigned

	got := roundTrip(t, 200, cfg)
	assert.Equal(t, int64(200), got)
}

func TestNumberFloatMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Number = NumberFloat

	b, err := Encode(float32(1.5), cfg)
	require.NoError(t, err)
	require.Equal(t, typeFloat32, b[0])

	got, err := Decode(b, cfg)
	require.NoError(t, err)
	assert.Equal(t, float64(1.5), got)
}

func TestStringModes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.String = StringCompat

	b, err := Encode("hello", cfg)
	require.NoError(t, err)
	assert.Equal(t, maskFixStr|byte(5), b[0])

	got, err := Decode(b, cfg)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	cfg.String = StringBinary
	b, err = Encode("hello", cfg)
	require.NoError(t, err)
	assert.Equal(t, typeBin8, b[0])

	got, err = Decode(b, cfg)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)
}

func TestStringCompatSkipsStr8(t *testing.T) {
	cfg := DefaultConfig()
	cfg.String = StringCompat

	long := make([]byte, 100)
	for i := range long {
		long[i] = 'a'
	}

	b, err := Encode(string(long), cfg)
	require.NoError(t, err)
	assert.Equal(t, typeStr16, b[0])
}

func TestBinaryRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	in := []byte{1, 2, 3, 4, 5}

	got := roundTrip(t, in, cfg)
	assert.Equal(t, in, got)
}

func TestArrayRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	in := []any{int64(1), "two", 3.0, nil, true}

	got := roundTrip(t, in, cfg)
	assert.Equal(t, in, got)
}

func TestMapRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Array = ArrayAlwaysAsMap
	in := map[any]any{"a": int64(1), "b": int64(2)}

	got := roundTrip(t, in, cfg)
	assert.Equal(t, in, got)
}

func TestMapWithoutHoleConvertsDenseIntKeys(t *testing.T) {
	cfg := DefaultConfig()
	in := map[any]any{1: "x", 2: "y", 3: "z"}

	b, err := Encode(in, cfg)
	require.NoError(t, err)
	assert.Equal(t, maskFixArray|byte(3), b[0])

	got, err := Decode(b, cfg)
	require.NoError(t, err)
	assert.Equal(t, []any{"x", "y", "z"}, got)
}

func TestMapWithoutHoleKeepsSparseAsMap(t *testing.T) {
	cfg := DefaultConfig()
	in := map[any]any{1: "x", 3: "z"}

	b, err := Encode(in, cfg)
	require.NoError(t, err)
	assert.Equal(t, maskFixMap|byte(2), b[0])
}

func TestMapWithHolePadsSparseIntKeys(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Array = ArrayWithHole
	in := map[any]any{1: "x", 3: "z"}

	b, err := Encode(in, cfg)
	require.NoError(t, err)
	assert.Equal(t, maskFixArray|byte(3), b[0])

	got, err := Decode(b, cfg)
	require.NoError(t, err)
	assert.Equal(t, []any{"x", nil, "z"}, got)
}

func TestDomainExtensionsRoundTrip(t *testing.T) {
	cfg := DefaultConfig()

	cases := []any{
		Vector3{1, 2, 3},
		Rotation{0.1, 0.2, 0.3},
		Color{10, 20, 30, 255},
		Vector2{4, 5},
		Vector4{1, 2, 3, 4},
	}

	for _, in := range cases {
		got := roundTrip(t, in, cfg)
		assert.Equal(t, in, got)
	}
}

func TestPlayerIDHexRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	in := PlayerID{ID: "0123456789abcdef0123456789abcdef"}

	b, err := Encode(in, cfg)
	require.NoError(t, err)
	assert.Equal(t, typeFixExt16, b[0])
	assert.Equal(t, byte(ExtPlayerId128), b[1])

	got := roundTrip(t, in, cfg)
	assert.Equal(t, in, got)
}

func TestPlayerIDStringFallback(t *testing.T) {
	cfg := DefaultConfig()
	in := PlayerID{ID: "not-hex-at-all"}

	tag, payload := encodePlayerID(in.ID)
	assert.Equal(t, ExtPlayerIdString, tag)
	assert.Equal(t, in.ID, string(payload))

	got := roundTrip(t, in, cfg)
	assert.Equal(t, in, got)
}

func TestObjectRefHexRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	in := ObjectRef{ID: "0123456789abcdef"}

	b, err := Encode(in, cfg)
	require.NoError(t, err)
	assert.Equal(t, typeFixExt8, b[0])
	assert.Equal(t, byte(ExtObjectRef64), b[1])

	got := roundTrip(t, in, cfg)
	assert.Equal(t, in, got)
}

func TestObjectRefStringFallback(t *testing.T) {
	cfg := DefaultConfig()
	in := ObjectRef{ID: "ABCDEF0123456789"} // uppercase, not lowercase hex

	got := roundTrip(t, in, cfg)
	assert.Equal(t, in, got)
}

func TestWellKnownConstantFastPath(t *testing.T) {
	cfg := DefaultConfig()
	in := Color{255, 255, 255, 255} // white, selector 10

	b, err := Encode(in, cfg)
	require.NoError(t, err)
	assert.Equal(t, typeFixExt1, b[0])
	assert.Equal(t, byte(extTagConstant), b[1])
	assert.Equal(t, byte(10), b[2])

	got := roundTrip(t, in, cfg)
	assert.Equal(t, in, got)
}

func TestObjectRefUnassignedWellKnown(t *testing.T) {
	cfg := DefaultConfig()

	got := roundTrip(t, ObjectRefUnassigned, cfg)
	assert.Equal(t, ObjectRefUnassigned, got)
}

func TestBitArrayExtensionRoundTrip(t *testing.T) {
	cfg := DefaultConfig()

	b, err := bitarray.New(577, false)
	require.NoError(t, err)
	_, _ = b.Set(0, true)
	_, _ = b.Set(300, true)
	_, _ = b.Set(576, true)

	got := roundTrip(t, b, cfg)
	gotBits, ok := got.(*bitarray.BitArray)
	require.True(t, ok)
	assert.True(t, b.Equal(gotBits))
}

func TestEnumExtensionRoundTrip(t *testing.T) {
	cfg := DefaultConfig()

	e, err := enum.New(map[string]int{"north": 0, "east": 1, "south": 2, "west": 3}, enum.Ascending, nil)
	require.NoError(t, err)

	got := roundTrip(t, e, cfg)
	gotEnum, ok := got.(*enum.Enum)
	require.True(t, ok)

	for k, want := range map[string]int{"north": 0, "east": 1, "south": 2, "west": 3} {
		v, err := gotEnum.ByKey(k)
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
}

func TestUnsupportedValueFails(t *testing.T) {
	cfg := DefaultConfig()

	type unregistered struct{ X int }
	_, err := Encode(unregistered{1}, cfg)
	require.ErrorIs(t, err, ErrUnsupportedValue)
}

func TestDecodeTruncated(t *testing.T) {
	cfg := DefaultConfig()

	_, err := Decode([]byte{typeUint32, 0x00, 0x00}, cfg)
	require.ErrorIs(t, err, ErrTruncated)
}

func TestDecodeExtraBytes(t *testing.T) {
	cfg := DefaultConfig()

	b, err := Encode(int64(1), cfg)
	require.NoError(t, err)

	_, err = Decode(append(b, 0x01), cfg)
	require.ErrorIs(t, err, ErrExtraBytes)
}

func TestDecodeOneIgnoresTrailingBytes(t *testing.T) {
	cfg := DefaultConfig()

	b, err := Encode(int64(7), cfg)
	require.NoError(t, err)
	b = append(b, 0xAA, 0xBB)

	v, n, err := DecodeOne(b, cfg)
	require.NoError(t, err)
	assert.Equal(t, int64(7), v)
	assert.Equal(t, len(b)-2, n)
}

func TestDecodeUnknownExtension(t *testing.T) {
	cfg := DefaultConfig()

	raw := []byte{typeFixExt1, 100, 0xAB}
	_, err := Decode(raw, cfg)
	require.ErrorIs(t, err, ErrUnknownExtension)
}

func TestMapDropsNilAndNaNKeys(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Array = ArrayAlwaysAsMap

	buf := &bytes.Buffer{}
	enc := &Encoder{cfg: cfg, w: buf}

	require.NoError(t, enc.writeMapHeader(3))
	require.NoError(t, enc.writeByte(atomNil))
	require.NoError(t, enc.encodeValue("dropped-nil-key"))
	require.NoError(t, enc.encodeFloat(math.NaN()))
	require.NoError(t, enc.encodeValue("dropped-nan-key"))
	require.NoError(t, enc.encodeValue("kept"))
	require.NoError(t, enc.encodeValue(int64(1)))

	got, err := Decode(buf.Bytes(), cfg)
	require.NoError(t, err)

	m, ok := got.(map[any]any)
	require.True(t, ok)
	assert.Equal(t, map[any]any{"kept": int64(1)}, m)
}

func TestMeasureMatchesEncodeLength(t *testing.T) {
	cfg := DefaultConfig()

	values := []any{
		nil, true, 42, "hello world", []byte{1, 2, 3},
		[]any{int64(1), int64(2), int64(3)},
		Vector3{1, 2, 3},
	}

	for _, v := range values {
		b, err := Encode(v, cfg)
		require.NoError(t, err)

		n, err := Measure(v, cfg)
		require.NoError(t, err)

		assert.Equal(t, len(b), n)
	}
}

func TestFixintBoundaryWireForms(t *testing.T) {
	cfg := DefaultConfig()

	b, err := Encode(127, cfg)
	require.NoError(t, err)
	assert.Len(t, b, 1)

	b, err = Encode(-1, cfg)
	require.NoError(t, err)
	assert.Len(t, b, 1)

	b, err = Encode(-33, cfg)
	require.NoError(t, err)
	assert.Equal(t, typeInt8, b[0])
}
