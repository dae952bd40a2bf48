// SPDX-License-Identifier: MIT

package modcomb

import "math/bits"

// encode folds a slot array into its canonical hash, reading the slots as
// the digits of a base-radix number, most significant first:
//
//	hash = ((s[0]·R + s[1])·R + s[2])·R + …
//
// Two ascending arrays of the same length are equal iff their hashes are.
// Callers must sort before encoding; permutations of one multiset only
// collapse to one hash in sorted form.
func encode(slots []int, radix uint64) uint64 {
	var h uint64
	for _, s := range slots {
		h = h*radix + uint64(s)
	}

	return h
}

// decode is the inverse of encode for arrays of length k.
// Digits are peeled off least significant first and written from the last
// slot backwards, so decode(encode(x)) == x for any x whose slots are below
// radix. Sortedness is preserved, not established.
func decode(hash, radix uint64, k int) []int {
	slots := make([]int, k)
	decodeInto(slots, hash, radix)

	return slots
}

// decodeInto is decode without the allocation; len(dst) is k.
func decodeInto(dst []int, hash, radix uint64) {
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = int(hash % radix)
		hash /= radix
	}
}

// radixFits reports whether radix^k fits in uint64, which bounds every
// hash of a k-slot array to radix^k - 1.
func radixFits(radix uint64, k int) bool {
	p := uint64(1)
	for i := 0; i < k; i++ {
		hi, lo := bits.Mul64(p, radix)
		if hi != 0 {
			return false
		}
		p = lo
	}

	return true
}
