// SPDX-License-Identifier: MIT
package playerpack

import (
	"encoding/base64"
	"math"

	"github.com/pkg/errors"

	"github.com/hearthcode/playerpack/lzw"
	"github.com/hearthcode/playerpack/msgpack"
)

// Compress encodes value via MessagePack, then LZW-compresses it with
// LSB bit order and the default soft cap, per spec.md §4.5.
func Compress(value any) (*CompressResult, error) {
	return CompressWithOptions(value, DefaultPipelineOptions())
}

// CompressWithOptions is Compress with an explicit order, soft cap, and
// version tag (§5 of SPEC_FULL.md).
func CompressWithOptions(value any, opts *PipelineOptions) (*CompressResult, error) {
	opts = normalizePipelineOptions(opts)

	mp, err := msgpack.Encode(value, msgpack.DefaultConfig())
	if err != nil {
		return nil, errors.Wrap(err, "playerpack: encode value")
	}

	rawSize := len(mp)

	var body []byte
	if rawSize > opts.SoftCap {
		body = mp
	} else {
		body, err = lzw.EncodeFramed(mp, opts.Order)
		if err != nil {
			return nil, errors.Wrap(err, "playerpack: lzw compress")
		}
	}

	out := make([]byte, 0, 1+len(body))
	out = append(out, opts.VersionTag)
	out = append(out, body...)

	return &CompressResult{
		Bytes:          out,
		RawSize:        rawSize,
		CompressedSize: len(out),
		Ratio:          compressionRatio(rawSize, len(out), rawSize > opts.SoftCap),
	}, nil
}

// compressionRatio returns compressedSize/rawSize truncated to 3 decimal
// places, or exactly 1.0 when the soft cap forced a passthrough.
func compressionRatio(rawSize, compressedSize int, passthrough bool) float64 {
	if passthrough || rawSize == 0 {
		return 1.0
	}

	return math.Floor(float64(compressedSize)/float64(rawSize)*1000) / 1000
}

// Decompress reverses Compress: it decodes the version tag, LZW-decodes
// the payload if it carries the framing header, and MessagePack-decodes
// the result. A blob without the framing header is treated as a raw
// MessagePack encoding, per spec.md §4.5.
func Decompress(blob []byte) (any, error) {
	return DecompressWithOptions(blob, DefaultPipelineOptions())
}

// DecompressWithOptions is Decompress with an explicit expected version
// tag; mismatches fail with ErrVersionMismatch before any decode is
// attempted.
func DecompressWithOptions(blob []byte, opts *PipelineOptions) (any, error) {
	opts = normalizePipelineOptions(opts)

	if len(blob) == 0 {
		return nil, ErrEmptyInput
	}

	versionTag, rest := blob[0], blob[1:]
	if versionTag != opts.VersionTag {
		return nil, errors.Wrapf(ErrVersionMismatch, "got=%d want=%d", versionTag, opts.VersionTag)
	}

	mp, matched, err := lzw.DecodeFramed(rest)
	if err != nil {
		return nil, errors.Wrap(err, "playerpack: lzw decompress")
	}
	if !matched {
		mp = rest
	} else {
		yieldForSize(len(mp))
	}

	value, err := msgpack.Decode(mp, msgpack.DefaultConfig())
	if err != nil {
		return nil, errors.Wrap(err, "playerpack: decode value")
	}

	return value, nil
}

// CompressToBase64 is Compress followed by standard base64 encoding, for
// hosts that only transport text (e.g. a JSON field holding save data).
func CompressToBase64(value any) (string, error) {
	return CompressToBase64WithOptions(value, DefaultPipelineOptions())
}

// CompressToBase64WithOptions is CompressWithOptions followed by standard
// base64 encoding.
func CompressToBase64WithOptions(value any, opts *PipelineOptions) (string, error) {
	result, err := CompressWithOptions(value, opts)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(result.Bytes), nil
}

// DecompressBase64 reverses CompressToBase64.
func DecompressBase64(encoded string) (any, error) {
	return DecompressBase64WithOptions(encoded, DefaultPipelineOptions())
}

// DecompressBase64WithOptions reverses CompressToBase64WithOptions.
func DecompressBase64WithOptions(encoded string, opts *PipelineOptions) (any, error) {
	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.Wrap(err, "playerpack: base64 decode")
	}
	return DecompressWithOptions(blob, opts)
}
