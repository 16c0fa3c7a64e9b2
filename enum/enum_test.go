// SPDX-License-Identifier: MIT
package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_AscendingOrder(t *testing.T) {
	e, err := New(map[string]int{"red": 2, "green": 0, "blue": 1}, Ascending, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"green", "blue", "red"}, e.Keys())
	assert.Equal(t, []int{0, 1, 2}, e.Values())
}

func TestNew_DescendingOrder(t *testing.T) {
	e, err := New(map[string]int{"red": 2, "green": 0, "blue": 1}, Descending, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"red", "blue", "green"}, e.Keys())
	assert.Equal(t, []int{2, 1, 0}, e.Values())
}

func TestNew_RejectsNumericKey(t *testing.T) {
	_, err := New(map[string]int{"123": 0}, Ascending, nil)
	require.ErrorIs(t, err, ErrInvalidKey)
}

func TestNew_RejectsEmptyKey(t *testing.T) {
	_, err := New(map[string]int{"": 0}, Ascending, nil)
	require.ErrorIs(t, err, ErrInvalidKey)
}

func TestNew_RejectsValueOutOfRange(t *testing.T) {
	_, err := New(map[string]int{"a": 200}, Ascending, &Range{Min: -32, Max: 127})
	require.ErrorIs(t, err, ErrValueRange)
}

func TestNew_MPOptimizedRange(t *testing.T) {
	e, err := New(map[string]int{"a": -32, "b": 127}, Ascending, &Range{Min: -32, Max: 127})
	require.NoError(t, err)
	assert.True(t, e.IsIn(-32, 127))
}

func TestNew_DuplicateValues(t *testing.T) {
	// Two distinct keys share the value 1.
	kv := map[string]int{"a": 1}
	kv["b"] = 1
	_, err := New(kv, Ascending, nil)
	require.ErrorIs(t, err, ErrDuplicateValue)
}

func TestByKeyByValue(t *testing.T) {
	e, err := New(map[string]int{"a": 0, "b": 1}, Ascending, nil)
	require.NoError(t, err)

	v, err := e.ByKey("a")
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	k, err := e.ByValue(1)
	require.NoError(t, err)
	assert.Equal(t, "b", k)

	_, err = e.ByKey("missing")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = e.ByValue(99)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestIterate(t *testing.T) {
	e, err := New(map[string]int{"a": 0, "b": 1, "c": 2}, Ascending, nil)
	require.NoError(t, err)

	var keys []string
	e.Iterate(func(k string, v int) bool {
		keys = append(keys, k)
		return true
	})
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestIterate_EarlyStop(t *testing.T) {
	e, _ := New(map[string]int{"a": 0, "b": 1, "c": 2}, Ascending, nil)

	var keys []string
	e.Iterate(func(k string, v int) bool {
		keys = append(keys, k)
		return k != "b"
	})
	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestIsIn(t *testing.T) {
	e, _ := New(map[string]int{"a": 1, "b": 5}, Ascending, nil)
	assert.True(t, e.IsIn(1, 5))
	assert.True(t, e.IsIn(1, 10))
	assert.False(t, e.IsIn(0, 5))
	assert.False(t, e.IsIn(1, 4))
}

func TestLen(t *testing.T) {
	e, _ := New(map[string]int{"a": 0, "b": 1}, Ascending, nil)
	assert.Equal(t, 2, e.Len())
}

func TestSet_AlwaysReadOnly(t *testing.T) {
	e, _ := New(map[string]int{"a": 0}, Ascending, nil)
	err := e.Set("a", 1)
	require.ErrorIs(t, err, ErrReadOnly)
}
