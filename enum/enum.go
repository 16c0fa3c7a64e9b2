// SPDX-License-Identifier: MIT
package enum

import (
	"math"
	"sort"
	"strconv"

	"github.com/pkg/errors"
)

// Order selects the sort order of Iterate/Keys/Values.
type Order int

const (
	// Ascending sorts entries by increasing value (the default variant).
	Ascending Order = iota
	// Descending sorts entries by decreasing value (the "gt" variant).
	Descending
)

// Range declares the inclusive bound every value must fall within. A nil
// *Range passed to New means the full int range.
type Range struct {
	Min int
	Max int
}

func fullRange() Range {
	return Range{Min: math.MinInt, Max: math.MaxInt}
}

type entry struct {
	key   string
	value int
}

// Enum is an immutable bijection between string keys and distinct integer
// values, ordered by value. Construct with New; there is no exported
// mutator — Set exists only to surface the ReadOnly contract explicitly.
type Enum struct {
	order   Order
	entries []entry
	byKey   map[string]int
	byValue map[int]string
}

// isNumeric reports whether s parses as a number, which disqualifies it as
// an Enum key.
func isNumeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// New validates kv and builds an immutable Enum ordered by value.
// Every key must be a non-numeric, non-empty string; every value must be
// distinct and fall within r (nil means the full int range).
func New(kv map[string]int, order Order, r *Range) (*Enum, error) {
	bounds := fullRange()
	if r != nil {
		bounds = *r
	}

	entries := make([]entry, 0, len(kv))
	byValue := make(map[int]string, len(kv))

	for k, v := range kv {
		if k == "" || isNumeric(k) {
			return nil, errors.Wrapf(ErrInvalidKey, "key=%q", k)
		}

		if v < bounds.Min || v > bounds.Max {
			return nil, errors.Wrapf(ErrValueRange, "key=%q value=%d range=[%d,%d]", k, v, bounds.Min, bounds.Max)
		}

		if _, dup := byValue[v]; dup {
			return nil, errors.Wrapf(ErrDuplicateValue, "value=%d", v)
		}

		byValue[v] = k
		entries = append(entries, entry{key: k, value: v})
	}

	switch order {
	case Ascending:
		sort.Slice(entries, func(i, j int) bool { return entries[i].value < entries[j].value })
	case Descending:
		sort.Slice(entries, func(i, j int) bool { return entries[i].value > entries[j].value })
	}

	byKey := make(map[string]int, len(entries))
	for _, e := range entries {
		byKey[e.key] = e.value
	}

	return &Enum{order: order, entries: entries, byKey: byKey, byValue: byValue}, nil
}

// ByKey returns the integer value for k. Fails with ErrNotFound.
func (e *Enum) ByKey(k string) (int, error) {
	v, ok := e.byKey[k]
	if !ok {
		return 0, errors.Wrapf(ErrNotFound, "key=%q", k)
	}

	return v, nil
}

// ByValue returns the key string for v. Fails with ErrNotFound.
func (e *Enum) ByValue(v int) (string, error) {
	k, ok := e.byValue[v]
	if !ok {
		return "", errors.Wrapf(ErrNotFound, "value=%d", v)
	}

	return k, nil
}

// Iterate yields (key, value) pairs in the Enum's sort order.
func (e *Enum) Iterate(fn func(key string, value int) bool) {
	for _, ent := range e.entries {
		if !fn(ent.key, ent.value) {
			return
		}
	}
}

// Len returns the number of entries.
func (e *Enum) Len() int {
	return len(e.entries)
}

// Keys returns the keys in sort order.
func (e *Enum) Keys() []string {
	out := make([]string, len(e.entries))
	for i, ent := range e.entries {
		out[i] = ent.key
	}

	return out
}

// Values returns the values in sort order.
func (e *Enum) Values() []int {
	out := make([]int, len(e.entries))
	for i, ent := range e.entries {
		out[i] = ent.value
	}

	return out
}

// IsIn reports whether min equals the smallest declared value and max is
// at least the largest declared value. Returns false for an empty Enum.
func (e *Enum) IsIn(min, max int) bool {
	if len(e.entries) == 0 {
		return false
	}

	lo, hi := e.entries[0].value, e.entries[0].value
	for _, ent := range e.entries {
		if ent.value < lo {
			lo = ent.value
		}
		if ent.value > hi {
			hi = ent.value
		}
	}

	return min == lo && max >= hi
}

// Set always fails: Enum is immutable after construction. The method
// exists only to make the ReadOnly contract (spec §4.2) a checkable API
// surface rather than an implicit absence.
func (e *Enum) Set(key string, value int) error {
	return errors.Wrapf(ErrReadOnly, "key=%q value=%d", key, value)
}
