// SPDX-License-Identifier: MIT

// Package enum implements an immutable bijection between a set of string
// keys and a set of distinct integer values, ordered by value.
//
//	e, err := enum.New(map[string]int{"red": 0, "green": 1, "blue": 2}, enum.Ascending, nil)
//	v, _ := e.ByKey("green")  // 1
//	k, _ := e.ByValue(2)      // "blue"
package enum
