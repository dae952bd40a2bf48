// Package modcomb_test verifies that a built Catalogue can be read from many
// goroutines at once.
package modcomb_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lonelu/Informed-Proteomics/modcomb"
)

// TestConcurrentReaders walks random-ish paths through one shared catalogue
// from many goroutines and compares against a single-threaded walk.
func TestConcurrentReaders(t *testing.T) {
	const m, k = 6, 4
	cat, err := modcomb.New(types(m), k)
	require.NoError(t, err)

	// Reference: destination of every (source, type) pair, -1 when full.
	want := make([]int, cat.Len()*m)
	for c := 0; c < cat.Len(); c++ {
		for typeID := 0; typeID < m; typeID++ {
			d, err := cat.Transition(c, typeID)
			if err != nil {
				d = -1
			}
			want[c*m+typeID] = d
		}
	}

	const readers = 64
	var wg sync.WaitGroup
	wg.Add(readers)
	errs := make(chan error, readers)
	for r := 0; r < readers; r++ {
		go func(seed int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				cur := modcomb.EmptyIndex
				for step := 0; step < k; step++ {
					typeID := (seed + i + step*step) % m
					d, err := cat.Transition(cur, typeID)
					if err != nil {
						errs <- err
						return
					}
					if d != want[cur*m+typeID] {
						errs <- modcomb.ErrInconsistentCatalogue
						return
					}
					if _, err := cat.At(d); err != nil {
						errs <- err
						return
					}
					cur = d
				}
			}
		}(r)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}
