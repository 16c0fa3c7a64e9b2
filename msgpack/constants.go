// SPDX-License-Identifier: MIT
package msgpack

// Wire-format leading bytes, per the MessagePack spec
// (https://github.com/msgpack/msgpack/blob/master/spec.md). Naming follows
// atom (single byte, no payload) / mask (type + size folded into one byte,
// payload follows) / type (dedicated leading byte, explicit length follows).

const (
	atomNil   byte = 0xc0
	atomFalse byte = 0xc2
	atomTrue  byte = 0xc3

	maskPosFixInt byte = 0x00 // 0x00-0x7f: positive fixint (0-127)
	maskFixMap    byte = 0x80 // 0x80-0x8f: map with 0-15 entries
	maskFixArray  byte = 0x90 // 0x90-0x9f: array with 0-15 entries
	maskFixStr    byte = 0xa0 // 0xa0-0xbf: string with 0-31 bytes
	maskNegFixInt byte = 0xe0 // 0xe0-0xff: negative fixint (-32 to -1)

	typeBin8  byte = 0xc4
	typeBin16 byte = 0xc5
	typeBin32 byte = 0xc6

	typeExt8  byte = 0xc7
	typeExt16 byte = 0xc8
	typeExt32 byte = 0xc9

	typeFloat32 byte = 0xca
	typeFloat64 byte = 0xcb

	typeUint8  byte = 0xcc
	typeUint16 byte = 0xcd
	typeUint32 byte = 0xce
	typeUint64 byte = 0xcf

	typeInt8  byte = 0xd0
	typeInt16 byte = 0xd1
	typeInt32 byte = 0xd2
	typeInt64 byte = 0xd3

	typeFixExt1  byte = 0xd4
	typeFixExt2  byte = 0xd5
	typeFixExt4  byte = 0xd6
	typeFixExt8  byte = 0xd7
	typeFixExt16 byte = 0xd8

	typeStr8  byte = 0xd9
	typeStr16 byte = 0xda
	typeStr32 byte = 0xdb

	typeArray16 byte = 0xdc
	typeArray32 byte = 0xdd

	typeMap16 byte = 0xde
	typeMap32 byte = 0xdf
)

// Extension tag partitions (spec §4.3).
const (
	extTagMin        = -128
	extTagMax        = 127
	extTagBuiltinMax = 40 // [0,40] reserved for built-in domain types
	extTagConstant   = 40 // well-known-constant discriminator
	extTagUserMin    = 41 // [41,127] for user-defined types
)

// Built-in extension tags (spec §4.3 table).
const (
	ExtVector3         int8 = 0
	ExtRotation        int8 = 1
	ExtColor           int8 = 2
	ExtVector2         int8 = 3
	ExtVector4         int8 = 4
	ExtPlayerId128     int8 = 5
	ExtPlayerIdString  int8 = 6
	ExtObjectRef64     int8 = 7
	ExtObjectRefString int8 = 8
	ExtConstant        int8 = 40
	ExtBitArray        int8 = 41
	ExtEnum            int8 = 42
)
