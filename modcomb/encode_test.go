package modcomb

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEncodeDecode_RoundTrip checks decode(encode(x)) == x and
// encode(decode(h)) == h for every sorted array of a small catalogue.
func TestEncodeDecode_RoundTrip(t *testing.T) {
	const r, k = 4, 3
	radix := uint64(r)
	for _, slots := range combinationsWithRepetition(r, k, 0) {
		h := encode(slots, radix)
		back := decode(h, radix, k)
		require.Equal(t, slots, back)
		require.Equal(t, h, encode(back, radix))
	}
}

// TestEncode_Injective ensures no two sorted arrays share a hash.
func TestEncode_Injective(t *testing.T) {
	const r, k = 6, 4
	seen := make(map[uint64][]int)
	for _, slots := range combinationsWithRepetition(r, k, 0) {
		h := encode(slots, uint64(r))
		prev, dup := seen[h]
		require.False(t, dup, "%v and %v share hash %d", prev, slots, h)
		seen[h] = slots
	}
}

// TestEncode_PermutationsCollapseWhenSorted shows why callers sort first.
func TestEncode_PermutationsCollapseWhenSorted(t *testing.T) {
	radix := uint64(4)
	a := []int{3, 0, 1}
	b := []int{1, 3, 0}
	assert.NotEqual(t, encode(a, radix), encode(b, radix))

	slices.Sort(a)
	slices.Sort(b)
	assert.Equal(t, encode(a, radix), encode(b, radix))
}

func TestEncode_Digits(t *testing.T) {
	// [0 1 2] in base 3 is 0·9 + 1·3 + 2.
	assert.Equal(t, uint64(5), encode([]int{0, 1, 2}, 3))
	assert.Equal(t, []int{0, 1, 2}, decode(5, 3, 3))
	assert.Equal(t, []int{0, 0, 0}, decode(0, 3, 3))
}

func TestRadixFits(t *testing.T) {
	assert.True(t, radixFits(2, 63))
	assert.False(t, radixFits(2, 64))
	assert.True(t, radixFits(10, 19))
	assert.False(t, radixFits(10, 20))
	assert.True(t, radixFits(1<<32-1, 2))
}
