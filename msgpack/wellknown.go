// SPDX-License-Identifier: MIT
package msgpack

import "reflect"

// Well-known-constant selector table (spec §6, extension tag 40). Built
// forward (selector -> value) then reversed once at init time into a
// value -> selector index, per the "cyclic lookup tables" design note
// (spec §9): both tables are immutable and built once, side by side.

// ObjectRefUnassigned is the sentinel ObjectRef for selector 0.
var ObjectRefUnassigned = ObjectRef{ID: ""}

var wellKnownBySelector = map[byte]any{
	0: ObjectRefUnassigned,

	10: Color{255, 255, 255, 255}, // white
	11: Color{128, 128, 128, 255}, // gray
	12: Color{0, 0, 0, 255},       // black
	13: Color{0, 0, 0, 0},         // transparent
	14: Color{255, 0, 0, 255},     // red
	15: Color{0, 255, 0, 255},     // green
	16: Color{0, 0, 255, 255},     // blue
	17: Color{0, 255, 255, 255},   // cyan
	18: Color{255, 0, 255, 255},   // magenta
	19: Color{255, 255, 0, 255},   // yellow
	20: Color{255, 165, 0, 255},   // orange
	21: Color{128, 0, 128, 255},   // purple
	22: Color{139, 69, 19, 255},   // brown
	23: Color{255, 192, 203, 255}, // pink
	24: Color{210, 180, 140, 255}, // tan
	25: Color{224, 17, 95, 255},   // ruby
	26: Color{80, 200, 120, 255},  // emerald
	27: Color{15, 82, 186, 255},   // sapphire
	28: Color{192, 192, 192, 255}, // silver
	29: Color{115, 130, 118, 255}, // smoke

	40: Vector2{1, 1}, // ONE
	41: Vector2{0, 0}, // ZERO

	51: Vector3{1, 1, 1}, // ONE
	52: Vector3{0, 0, 0}, // ZERO
	53: Vector3{0, 0, 1}, // FORWARD
	54: Vector3{0, 1, 0}, // UP
	55: Vector3{1, 0, 0}, // RIGHT

	60: Vector4{1, 1, 1, 1}, // ONE
	61: Vector4{0, 0, 0, 0}, // ZERO

	70: Rotation{0, 0, 0}, // ZERO
}

var wellKnownByValue = func() map[any]byte {
	m := make(map[any]byte, len(wellKnownBySelector))
	for selector, v := range wellKnownBySelector {
		m[v] = selector
	}
	return m
}()

// lookupWellKnown returns the selector byte for v if it matches a
// registered well-known constant exactly. v's dynamic type must be
// comparable before it can key wellKnownByValue; funcs, maps, and slices
// are not, and would otherwise panic the map index rather than fall
// through to ErrUnsupportedValue.
func lookupWellKnown(v any) (byte, bool) {
	if v == nil || !reflect.TypeOf(v).Comparable() {
		return 0, false
	}
	selector, ok := wellKnownByValue[v]
	return selector, ok
}

// decodeWellKnown returns the value for a constant selector byte. Fails
// with ErrUnknownConstant if selector isn't registered.
func decodeWellKnown(selector byte) (any, error) {
	v, ok := wellKnownBySelector[selector]
	if !ok {
		return nil, ErrUnknownConstant
	}
	return v, nil
}
