// SPDX-License-Identifier: MIT

package modcomb

import (
	"fmt"
	"slices"
	"strings"
)

// newCombination maps an ascending slot array onto modification values,
// dropping empty slots. mods is shared, never copied per entry.
func newCombination[T comparable](mods []T, slots []int) Combination[T] {
	var comb Combination[T]
	for _, s := range slots {
		if s == sentinel {
			continue
		}
		comb.ids = append(comb.ids, s-1)
		comb.mods = append(comb.mods, mods[s-1])
	}

	return comb
}

// Len returns the number of placed modifications.
func (c Combination[T]) Len() int {
	return len(c.ids)
}

// IsEmpty reports whether no modification is placed.
func (c Combination[T]) IsEmpty() bool {
	return len(c.ids) == 0
}

// Modifications returns the placed modification values in ascending
// type-id order. The slice is a copy.
func (c Combination[T]) Modifications() []T {
	return slices.Clone(c.mods)
}

// TypeIDs returns the placed type ids in ascending order. The slice is a copy.
func (c Combination[T]) TypeIDs() []int {
	return slices.Clone(c.ids)
}

// Count returns how many times typeID is placed.
func (c Combination[T]) Count(typeID int) int {
	n := 0
	for _, id := range c.ids {
		if id == typeID {
			n++
		}
	}

	return n
}

// String renders the combination as "{a, b, b}"; the empty one is "{}".
func (c Combination[T]) String() string {
	parts := make([]string, len(c.mods))
	for i, mod := range c.mods {
		parts[i] = fmt.Sprint(mod)
	}

	return "{" + strings.Join(parts, ", ") + "}"
}
