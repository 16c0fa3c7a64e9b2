// SPDX-License-Identifier: MIT
package playerpack

import "github.com/hearthcode/playerpack/lzw"

// defaultSoftCap is the MessagePack-encoded size above which Compress
// gives up on LZW compression and returns the encoding unframed, per the
// host's per-frame instruction budget.
const defaultSoftCap = 4090

// PipelineOptions configures Compress/Decompress beyond spec.md's single
// `order` parameter: a soft cap tuned to the host's frame budget and a
// caller-supplied schema version tag written ahead of the MessagePack
// payload (outside the 4-byte LZW framing header, which stays fixed).
type PipelineOptions struct {
	// Order selects LZW bit packing (LSB by default).
	Order lzw.Order
	// SoftCap is the MessagePack-encoded byte threshold above which
	// Compress skips LZW compression entirely.
	SoftCap int
	// VersionTag is written as one byte ahead of the payload on compress,
	// and checked against decoded blobs on decompress.
	VersionTag byte
}

// DefaultPipelineOptions returns LSB order, a 4090-byte soft cap, and
// version tag 0.
func DefaultPipelineOptions() *PipelineOptions {
	return &PipelineOptions{Order: lzw.LSB, SoftCap: defaultSoftCap, VersionTag: 0}
}

func normalizePipelineOptions(opts *PipelineOptions) *PipelineOptions {
	if opts == nil {
		return DefaultPipelineOptions()
	}
	cp := *opts
	return &cp
}

// CompressResult is the outcome of Compress/CompressWithOptions.
type CompressResult struct {
	// Bytes is the wire-format blob: version tag, then either an LZW-
	// framed payload or the raw MessagePack encoding.
	Bytes []byte
	// RawSize is the MessagePack-encoded size before compression.
	RawSize int
	// CompressedSize is len(Bytes).
	CompressedSize int
	// Ratio is CompressedSize/RawSize, truncated to 3 decimal places. 1.0
	// when the soft cap was exceeded and compression was skipped.
	Ratio float64
}
