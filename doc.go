// SPDX-License-Identifier: MIT

/*
Package playerpack implements a player-data persistence pipeline for a
game runtime with a hard per-player byte budget: arbitrary Go values are
encoded to MessagePack (see the msgpack subpackage), optionally LZW-
compressed (see lzw) behind a 4-byte framing header, and round-tripped
back through Decompress.

# Compress

	result, err := playerpack.Compress(playerState)
	// result.Bytes, result.Ratio, result.RawSize, result.CompressedSize

	result, err := playerpack.CompressWithOptions(playerState, &playerpack.PipelineOptions{
		Order:      lzw.MSB,
		SoftCap:    4090,
		VersionTag: 1,
	})

# Decompress

	value, err := playerpack.Decompress(result.Bytes)

Values whose MessagePack encoding exceeds the configured soft cap (default
4090 bytes, tuned to the host's per-frame instruction budget) are passed
through unframed with ratio 1.000, so the façade never spends compression
effort it cannot afford to spend.
*/
package playerpack
