// SPDX-License-Identifier: MIT

package modcomb

import "slices"

// buildTransitions computes the flat transition table for a catalogue.
//
// hashes[c] is the canonical hash of combination c; index is the reverse
// map. For every c whose leading slot is still the sentinel (fewer than k
// modifications placed) and every type t in [0, m):
//
//  1. decode hashes[c] into ascending slots,
//  2. overwrite the leading sentinel with t+1,
//  3. re-sort ascending and re-encode,
//  4. resolve the hash through index into the destination.
//
// The cell table[c*m+t] holds the destination, or noTransition for full
// sources. A hash missing from index means the generator and the encoder
// disagree; the table is then discarded and ErrInconsistentCatalogue
// returned.
//
// Complexity: O(len(hashes) · m · k log k) time, O(len(hashes) · m) memory.
func buildTransitions(hashes []uint64, index map[uint64]int, radix uint64, k, m int) ([]int32, error) {
	table := make([]int32, len(hashes)*m)
	for i := range table {
		table[i] = noTransition
	}

	slots := make([]int, k)
	work := make([]int, k)
	for c, h := range hashes {
		decodeInto(slots, h, radix)
		if slots[0] != sentinel {
			continue // full: K modifications already placed
		}
		for t := 0; t < m; t++ {
			copy(work, slots)
			work[0] = t + 1
			slices.Sort(work)
			dest, ok := index[encode(work, radix)]
			if !ok {
				return nil, modcombErrorf(MethodNew, ErrInconsistentCatalogue,
					"combination %d plus type %d encodes to an uncatalogued hash", c, t)
			}
			table[c*m+t] = int32(dest)
		}
	}

	return table, nil
}
