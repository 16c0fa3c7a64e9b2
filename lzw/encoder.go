// SPDX-License-Identifier: MIT
package lzw

import "sync"

const (
	tableSize = 1 << 14 // 16384 slots, 4x the 4096 code ceiling
	tableMask = tableSize - 1
)

const invalidCode = -1

// Encoder owns the compressor's dictionary (a 20-bit-key open-addressed
// hash table, spec §3) and code-width bookkeeping. Encode acquires one from
// encoderPool per call and releases it back when done, so the table's
// backing array is amortized across calls instead of reallocated each time
// (spec §3, §9's "owned objects that carry their scratch as fields").
type Encoder struct {
	litWidth int
	clear    int
	eof      int
	hi       int
	width    int
	overflow int
	table    [tableSize]uint32
}

// NewEncoder returns an Encoder with no dictionary configured; call Reset
// before use.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Reset reconfigures e for litWidth and clears its dictionary in place,
// preserving the table's backing array across calls.
func (e *Encoder) Reset(litWidth int) {
	e.litWidth = litWidth
	e.clear = 1 << litWidth
	e.eof = e.clear + 1
	e.resetDict()
}

func (e *Encoder) resetDict() {
	e.width = e.litWidth + 1
	e.hi = e.eof
	e.overflow = 1 << e.width
	for i := range e.table {
		e.table[i] = 0
	}
}

func (e *Encoder) lookup(key int) (int, bool) {
	h := ((key >> 12) ^ key) & tableMask
	for {
		entry := e.table[h]
		if entry == 0 {
			return 0, false
		}
		if int(entry>>12) == key {
			return int(entry & 0xfff), true
		}
		h = (h + 1) & tableMask
	}
}

func (e *Encoder) insert(key, code int) {
	h := ((key >> 12) ^ key) & tableMask
	for e.table[h] != 0 {
		h = (h + 1) & tableMask
	}
	e.table[h] = uint32(key)<<12 | uint32(code)
}

// assign runs after the caller has emitted pending: it advances hi, grows
// the code width per §4.4's overflow rules, and records key -> hi in the
// dictionary, or, once hi reaches maxCode, emits a clear code and resets
// the dictionary instead.
func (e *Encoder) assign(w *bitWriter, key int) {
	e.hi++

	if e.hi >= e.overflow && e.width < maxWidth {
		e.width++
		e.overflow <<= 1
	}

	if e.hi >= maxCode {
		w.writeCode(e.clear, e.width)
		e.resetDict()
		return
	}

	e.insert(key, e.hi)
}

func (e *Encoder) maxLiteral() int {
	return 1<<e.litWidth - 1
}

// encoderPool holds Encoders between calls to Encode, the same
// acquire/release idiom the teacher uses for its sliding-window dictionary
// (sliding_window_pool.go): the scratch dictionary is the expensive part to
// allocate, not the per-call state, so it is what gets pooled.
var encoderPool = sync.Pool{
	New: func() any { return NewEncoder() },
}

func acquireEncoder(litWidth int) *Encoder {
	e := encoderPool.Get().(*Encoder)
	e.Reset(litWidth)
	return e
}

func releaseEncoder(e *Encoder) {
	if e == nil {
		return
	}
	encoderPool.Put(e)
}

// Encode compresses src into a raw LZW bitstream (no framing header) per
// opts. Fails with ErrInvalidArgument if opts.LiteralWidth is out of
// range, or ErrLiteralOverflow if an input byte exceeds it.
func Encode(src []byte, opts *Options) ([]byte, error) {
	opts = normalizeOptions(opts)
	if err := opts.validate(); err != nil {
		return nil, err
	}

	e := acquireEncoder(opts.LiteralWidth)
	defer releaseEncoder(e)

	w := newBitWriter(opts.Order)

	pending := invalidCode

	for i, b := range src {
		L := int(b)
		if L > e.maxLiteral() {
			return nil, ErrLiteralOverflow
		}

		if i == 0 {
			w.writeCode(e.clear, e.width)
			pending = L
			continue
		}

		key := pending<<8 | L
		if code, ok := e.lookup(key); ok {
			pending = code
			continue
		}

		w.writeCode(pending, e.width)
		e.assign(w, key)
		pending = L
	}

	if pending == invalidCode {
		w.writeCode(e.clear, e.width)
	} else {
		w.writeCode(pending, e.width)
		e.hi++
		if e.hi >= e.overflow && e.width < maxWidth {
			e.width++
			e.overflow <<= 1
		}
		if e.hi >= maxCode {
			w.writeCode(e.clear, e.width)
			e.resetDict()
		}
	}
	w.writeCode(e.eof, e.width)

	return w.flush(), nil
}
