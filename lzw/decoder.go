// SPDX-License-Identifier: MIT
package lzw

import "sync"

// Decoder owns the prefix/suffix dictionary chains (spec §3): two parallel
// arrays indexed by code, each entry recording the last byte of that
// code's expansion (suffix) and the code for everything but the last byte
// (prefix). Decode acquires one from decoderPool per call and releases it
// back when done, amortizing the arrays' allocation across calls (spec §3,
// §9's "owned objects that carry their scratch as fields").
type Decoder struct {
	litWidth int
	clear    int
	eof      int
	hi       int
	width    int
	overflow int
	suffix   [maxCode + 1]byte
	prefix   [maxCode + 1]int
}

// NewDecoder returns a Decoder with no dictionary configured; call Reset
// before use.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Reset reconfigures d for litWidth and clears its dictionary bookkeeping
// in place, preserving the suffix/prefix arrays' backing storage across
// calls.
func (d *Decoder) Reset(litWidth int) {
	d.litWidth = litWidth
	d.clear = 1 << litWidth
	d.eof = d.clear + 1
	d.resetDict()
}

func (d *Decoder) resetDict() {
	d.width = d.litWidth + 1
	d.hi = d.eof
	d.overflow = 1 << d.width
}

// expand walks the prefix chain from code down to a literal code,
// collecting suffix bytes, then reverses them into expansion order.
func (d *Decoder) expand(code int) []byte {
	var rev []byte

	for code >= d.clear+2 {
		rev = append(rev, d.suffix[code])
		code = d.prefix[code]
	}
	rev = append(rev, byte(code))

	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// decoderPool holds Decoders between calls to Decode, mirroring the
// teacher's sliding-window-dictionary pool (sliding_window_pool.go): the
// suffix/prefix arrays are the expensive part to allocate, so they are
// what gets reused.
var decoderPool = sync.Pool{
	New: func() any { return NewDecoder() },
}

func acquireDecoder(litWidth int) *Decoder {
	d := decoderPool.Get().(*Decoder)
	d.Reset(litWidth)
	return d
}

func releaseDecoder(d *Decoder) {
	if d == nil {
		return
	}
	decoderPool.Put(d)
}

// Decode decompresses a raw LZW bitstream (no framing header) produced by
// Encode with matching opts.
func Decode(src []byte, opts *Options) ([]byte, error) {
	opts = normalizeOptions(opts)
	if err := opts.validate(); err != nil {
		return nil, err
	}

	d := acquireDecoder(opts.LiteralWidth)
	defer releaseDecoder(d)

	r := newBitReader(src, opts.Order)

	var out []byte
	prev := invalidCode

	for {
		code, err := r.readCode(d.width)
		if err != nil {
			return nil, err
		}

		if code == d.clear {
			d.resetDict()
			prev = invalidCode
			continue
		}

		if code == d.eof {
			return out, nil
		}

		var entry []byte
		switch {
		case code < d.clear:
			entry = []byte{byte(code)}
		case code <= d.hi:
			entry = d.expand(code)
		case code == d.hi+1 && prev != invalidCode:
			prevExpansion := d.expand(prev)
			entry = append(append([]byte{}, prevExpansion...), prevExpansion[0])
		default:
			return nil, ErrInvalidCode
		}

		out = append(out, entry...)

		skipPrevUpdate := false
		if prev != invalidCode {
			next := d.hi + 1
			if next > maxCode {
				return nil, ErrInvalidCode
			}

			d.suffix[next] = entry[0]
			d.prefix[next] = prev
			d.hi = next

			if d.hi+1 == d.overflow {
				if d.width < maxWidth {
					d.width++
					d.overflow <<= 1
				} else {
					skipPrevUpdate = true
				}
			}
		}

		if !skipPrevUpdate {
			prev = code
		} else {
			prev = invalidCode
		}
	}
}
