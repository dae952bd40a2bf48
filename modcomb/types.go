// SPDX-License-Identifier: MIT

package modcomb

// Catalogue enumerates every multiset of at most K modifications drawn from
// M modification types and precomputes one-step transitions between them.
//
// A Catalogue is immutable once New returns. All methods are pure reads, so
// one instance may be shared by any number of goroutines without locking.
//
// Fields:
//   - mods          — the modification types; index i is type id i.
//   - typeIDs       — reverse map from modification value to type id.
//   - maxMods       — K, the number of slots per combination.
//   - combinations  — entries in generator order; position == combination index.
//   - transitions   — flat table, cell src*M+typeID; noTransition if src is full.
//   - numTransitions — count of cells that are not noTransition.
type Catalogue[T comparable] struct {
	mods           []T
	typeIDs        map[T]int
	maxMods        int
	combinations   []Combination[T]
	transitions    []int32
	numTransitions int
}

// Combination is one catalogued multiset of modifications.
// Modifications appear in ascending type-id order, repeated once per
// placement. The zero value is the empty combination.
type Combination[T comparable] struct {
	ids  []int
	mods []T
}
