// SPDX-License-Identifier: MIT
package msgpack

import "encoding/hex"

// Domain value types carried by the built-in extensions (spec §4.3 table).
// These are plain structs; the codec never requires callers to import a
// geometry package of its own.

// Vector2 is a 2D float vector (ext tag 3, fixext8).
type Vector2 struct{ X, Y float32 }

// Vector3 is a 3D float vector (ext tag 0, ext8/12 bytes).
type Vector3 struct{ X, Y, Z float32 }

// Vector4 is a 4D float vector (ext tag 4, fixext16).
type Vector4 struct{ X, Y, Z, W float32 }

// Rotation is a 3-component rotation, same wire layout as Vector3 but a
// distinct Go type and extension tag (ext tag 1, ext8/12 bytes).
type Rotation struct{ X, Y, Z float32 }

// Color is an RGBA color with byte channels (ext tag 2, fixext4).
type Color struct{ R, G, B, A uint8 }

// PlayerID wraps an opaque player identifier string. The encoder prefers
// the 16-byte PlayerId128 payload (tag 5) when ID is exactly a 32-character
// lowercase hex string whose two 8-byte halves round-trip back to the same
// string; otherwise it falls back to PlayerIdString (tag 6), which carries
// ID verbatim.
type PlayerID struct{ ID string }

// ObjectRef wraps an opaque object reference identifier string. The
// encoder prefers the 8-byte ObjectRef64 payload (tag 7) when ID is
// exactly a 16-character lowercase hex string that round-trips back to the
// same string (the "hex prefix" spanning the whole id); otherwise it falls
// back to ObjectRefString (tag 8), which carries ID verbatim. See
// DESIGN.md for why the round-trip check, not just "has a hex prefix", is
// the deciding rule.
type ObjectRef struct{ ID string }

// isLowerHex reports whether s consists entirely of lowercase hex digits.
func isLowerHex(s string) bool {
	for _, r := range s {
		if !(r >= '0' && r <= '9') && !(r >= 'a' && r <= 'f') {
			return false
		}
	}
	return len(s) > 0
}

// encodePlayerID picks PlayerId128 when lossless, else PlayerIdString.
func encodePlayerID(id string) (tag int8, payload []byte) {
	if len(id) == 32 && isLowerHex(id) {
		raw, err := hex.DecodeString(id)
		if err == nil && len(raw) == 16 {
			return ExtPlayerId128, raw
		}
	}

	return ExtPlayerIdString, []byte(id)
}

func decodePlayerID128(payload []byte) (PlayerID, error) {
	if len(payload) != 16 {
		return PlayerID{}, ErrMalformed
	}

	return PlayerID{ID: hex.EncodeToString(payload)}, nil
}

// encodeObjectRef picks ObjectRef64 when lossless, else ObjectRefString.
func encodeObjectRef(id string) (tag int8, payload []byte) {
	if len(id) == 16 && isLowerHex(id) {
		raw, err := hex.DecodeString(id)
		if err == nil && len(raw) == 8 {
			return ExtObjectRef64, raw
		}
	}

	return ExtObjectRefString, []byte(id)
}

func decodeObjectRef64(payload []byte) (ObjectRef, error) {
	if len(payload) != 8 {
		return ObjectRef{}, ErrMalformed
	}

	return ObjectRef{ID: hex.EncodeToString(payload)}, nil
}
