package modcomb_test

import (
	"testing"

	"github.com/lonelu/Informed-Proteomics/modcomb"
)

// benchmarkNew builds a catalogue of m types and k slots per iteration.
func benchmarkNew(b *testing.B, m, k int) {
	mods := types(m)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := modcomb.New(mods, k); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

func BenchmarkNew_M4K3(b *testing.B)  { benchmarkNew(b, 4, 3) }
func BenchmarkNew_M10K4(b *testing.B) { benchmarkNew(b, 10, 4) }
func BenchmarkNew_M12K6(b *testing.B) { benchmarkNew(b, 12, 6) }

// BenchmarkTransition measures the hot-path step used by residue walks.
func BenchmarkTransition(b *testing.B) {
	const m, k = 10, 4
	cat, err := modcomb.New(types(m), k)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	b.ResetTimer()
	cur := modcomb.EmptyIndex
	for i := 0; i < b.N; i++ {
		next, err := cat.Transition(cur, i%m)
		if err != nil {
			cur = modcomb.EmptyIndex
			continue
		}
		cur = next
	}
}
