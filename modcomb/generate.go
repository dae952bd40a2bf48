// SPDX-License-Identifier: MIT

package modcomb

import (
	"math"
	"math/bits"
)

// combinationsWithRepetition enumerates every ascending length-k sequence
// over the symbols {0..r-1}, in lexicographic order.
//
// Algorithm:
//  1. Start from the all-zero array (the first sequence).
//  2. Find the rightmost slot that is still below r-1 and increment it.
//  3. Reset every slot to its right to the same value, the smallest
//     ascending continuation.
//  4. Stop when no slot can be incremented.
//
// The order is fixed, so identical (r, k) always yield identical sequences
// at identical positions. capacity pre-sizes the result; pass the closed-form
// count when it is known.
//
// Complexity: O(k · C(r+k-1, k)) time and memory.
func combinationsWithRepetition(r, k, capacity int) [][]int {
	out := make([][]int, 0, capacity)
	cur := make([]int, k)
	for {
		next := make([]int, k)
		copy(next, cur)
		out = append(out, next)

		i := k - 1
		for i >= 0 && cur[i] == r-1 {
			i--
		}
		if i < 0 {
			return out
		}
		cur[i]++
		for j := i + 1; j < k; j++ {
			cur[j] = cur[i]
		}
	}
}

// binomial returns C(n, k). ok is false when an intermediate product
// overflows uint64.
func binomial(n, k int) (c uint64, ok bool) {
	if k < 0 || k > n {
		return 0, true
	}
	k = min(k, n-k)
	c = 1
	for i := 1; i <= k; i++ {
		// c == C(n-k+i-1, i-1) here, so c*(n-k+i) is divisible by i.
		hi, lo := bits.Mul64(c, uint64(n-k+i))
		if hi != 0 {
			return 0, false
		}
		c = lo / uint64(i)
	}

	return c, true
}

// countMultisets returns the number of length-k multisets over r symbols,
// C(r+k-1, k), or ok=false if it does not fit in an int.
func countMultisets(r, k int) (n int, ok bool) {
	c, ok := binomial(r+k-1, k)
	if !ok || c > math.MaxInt {
		return 0, false
	}

	return int(c), true
}

// CountCombinations returns the size of the catalogue New builds for m
// modification types and at most k simultaneous modifications: the number
// of multisets of size ≤ k over m types, C(m+k, k).
//
// Errors:
//   - ErrNoModifications     if m < 1.
//   - ErrBadMaxModifications if k < 1.
//   - ErrCatalogueTooLarge   if the count does not fit in an int.
func CountCombinations(m, k int) (int, error) {
	if m < 1 {
		return 0, modcombErrorf(MethodCount, ErrNoModifications, "got m=%d", m)
	}
	if k < 1 {
		return 0, modcombErrorf(MethodCount, ErrBadMaxModifications, "got k=%d", k)
	}
	n, ok := countMultisets(m+1, k)
	if !ok {
		return 0, modcombErrorf(MethodCount, ErrCatalogueTooLarge, "C(%d,%d) overflows", m+k, k)
	}

	return n, nil
}
