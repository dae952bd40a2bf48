// SPDX-License-Identifier: MIT

package modcomb

import "slices"

// New builds the catalogue of every combination of at most maxMods
// modifications over mods, together with its transition table.
//
// Construction runs three phases once:
//  1. generate every ascending slot array of length maxMods over the
//     symbols {0..M} (0 = empty slot, id+1 = modification type id);
//  2. encode each array to its canonical hash and assign dense indices in
//     generation order, keeping hash↔index maps for the next phase only;
//  3. build the transition table from those maps, then drop them.
//
// The symbol range is sized by the number of modification types, so every
// type id is reachable from EmptyIndex in one step and the catalogue is
// closed under transitions.
//
// Errors:
//   - ErrNoModifications       — len(mods) == 0.
//   - ErrBadMaxModifications   — maxMods < 1.
//   - ErrDuplicateModification — two equal values in mods.
//   - ErrCatalogueTooLarge     — hash or count overflow, count above the
//     WithMaxCombinations limit, or a transition table (count·M cells)
//     larger than maxTableEntries.
//   - ErrInconsistentCatalogue — internal invariant violation; fatal.
//
// Complexity: O(N·M·K log K) time and O(N·(M+K)) memory, where
// N = C(M+K, K).
func New[T comparable](mods []T, maxMods int, opts ...Option) (*Catalogue[T], error) {
	cfg := newConfig(opts...)

	m := len(mods)
	if m == 0 {
		return nil, modcombErrorf(MethodNew, ErrNoModifications, "got %d types", m)
	}
	if maxMods < 1 {
		return nil, modcombErrorf(MethodNew, ErrBadMaxModifications, "got %d", maxMods)
	}

	typeIDs := make(map[T]int, m)
	for i, mod := range mods {
		if j, dup := typeIDs[mod]; dup {
			return nil, modcombErrorf(MethodNew, ErrDuplicateModification, "types %d and %d are equal", j, i)
		}
		typeIDs[mod] = i
	}

	radix := uint64(m) + 1
	if !radixFits(radix, maxMods) {
		return nil, modcombErrorf(MethodNew, ErrCatalogueTooLarge, "%d^%d overflows a 64-bit hash", radix, maxMods)
	}
	count, ok := countMultisets(m+1, maxMods)
	if !ok || count > cfg.maxCombinations {
		return nil, modcombErrorf(MethodNew, ErrCatalogueTooLarge,
			"%d types with %d slots exceed the limit of %d combinations", m, maxMods, cfg.maxCombinations)
	}
	if count > maxTableEntries/m {
		return nil, modcombErrorf(MethodNew, ErrCatalogueTooLarge,
			"%d combinations × %d types exceed the limit of %d transition cells", count, m, maxTableEntries)
	}

	slotArrays := combinationsWithRepetition(m+1, maxMods, count)
	if len(slotArrays) != count {
		return nil, modcombErrorf(MethodNew, ErrInconsistentCatalogue,
			"generated %d combinations, expected %d", len(slotArrays), count)
	}

	own := slices.Clone(mods)
	hashes := make([]uint64, count)
	index := make(map[uint64]int, count)
	combinations := make([]Combination[T], count)
	for i, slots := range slotArrays {
		h := encode(slots, radix)
		if j, dup := index[h]; dup {
			return nil, modcombErrorf(MethodNew, ErrInconsistentCatalogue,
				"combinations %d and %d share hash %d", j, i, h)
		}
		hashes[i] = h
		index[h] = i
		combinations[i] = newCombination(own, slots)
	}

	transitions, err := buildTransitions(hashes, index, radix, maxMods, m)
	if err != nil {
		return nil, err
	}
	numTransitions := 0
	for _, dest := range transitions {
		if dest != noTransition {
			numTransitions++
		}
	}

	return &Catalogue[T]{
		mods:           own,
		typeIDs:        typeIDs,
		maxMods:        maxMods,
		combinations:   combinations,
		transitions:    transitions,
		numTransitions: numTransitions,
	}, nil
}

// Len returns the number of catalogued combinations.
func (c *Catalogue[T]) Len() int {
	return len(c.combinations)
}

// MaxModifications returns K, the most modifications one combination holds.
func (c *Catalogue[T]) MaxModifications() int {
	return c.maxMods
}

// NumModificationTypes returns M.
func (c *Catalogue[T]) NumModificationTypes() int {
	return len(c.mods)
}

// NumTransitions returns the number of recorded (source, type) transitions.
func (c *Catalogue[T]) NumTransitions() int {
	return c.numTransitions
}

// Modifications returns a copy of the modification types, indexed by type id.
func (c *Catalogue[T]) Modifications() []T {
	return slices.Clone(c.mods)
}

// TypeID returns the type id of mod, or false if mod is not catalogued.
func (c *Catalogue[T]) TypeID(mod T) (int, bool) {
	id, ok := c.typeIDs[mod]
	return id, ok
}

// At returns the combination with the given index.
// Returns ErrIndexOutOfRange if index is outside [0, Len()).
func (c *Catalogue[T]) At(index int) (Combination[T], error) {
	if err := c.checkIndex(MethodAt, index); err != nil {
		return Combination[T]{}, err
	}

	return c.combinations[index], nil
}

// Transition returns the index reached by adding one modification of type
// typeID to combination src. It is the O(1) step used by residue walks.
//
// Errors (all match ErrInvalidQuery):
//   - ErrIndexOutOfRange     — src outside [0, Len()).
//   - ErrUnknownModification — typeID outside [0, M).
//   - ErrFullCombination     — src already holds K modifications.
func (c *Catalogue[T]) Transition(src, typeID int) (int, error) {
	dest, err := c.step(src, typeID)
	if err != nil {
		return -1, queryErrorf(MethodTransition, err, "source %d, type %d", src, typeID)
	}

	return dest, nil
}

// Lookup returns the index of the combination holding exactly the given
// type ids, in any order, by walking transitions from EmptyIndex.
// Lookup() with no ids returns EmptyIndex.
//
// Returns ErrUnknownModification for an id outside [0, M) and
// ErrFullCombination when more than K ids are given.
func (c *Catalogue[T]) Lookup(typeIDs ...int) (int, error) {
	cur := EmptyIndex
	for _, t := range typeIDs {
		next, err := c.step(cur, t)
		if err != nil {
			return -1, queryErrorf(MethodLookup, err, "%d ids with K=%d: %v", len(typeIDs), c.maxMods, typeIDs)
		}
		cur = next
	}

	return cur, nil
}

// Size returns the number of modifications placed in combination index.
func (c *Catalogue[T]) Size(index int) (int, error) {
	if err := c.checkIndex(MethodSize, index); err != nil {
		return 0, err
	}

	return len(c.combinations[index].ids), nil
}

// IsFull reports whether combination index holds K modifications and so
// has no outgoing transitions.
func (c *Catalogue[T]) IsFull(index int) (bool, error) {
	n, err := c.Size(index)
	if err != nil {
		return false, err
	}

	return n == c.maxMods, nil
}

// step resolves one transition and returns the bare sentinel on failure.
func (c *Catalogue[T]) step(src, typeID int) (int, error) {
	if src < 0 || src >= len(c.combinations) {
		return -1, ErrIndexOutOfRange
	}
	if typeID < 0 || typeID >= len(c.mods) {
		return -1, ErrUnknownModification
	}
	dest := c.transitions[src*len(c.mods)+typeID]
	if dest == noTransition {
		return -1, ErrFullCombination
	}

	return int(dest), nil
}

func (c *Catalogue[T]) checkIndex(method string, index int) error {
	if index < 0 || index >= len(c.combinations) {
		return queryErrorf(method, ErrIndexOutOfRange, "index %d, want [0,%d)", index, len(c.combinations))
	}

	return nil
}
