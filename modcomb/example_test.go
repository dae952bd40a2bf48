package modcomb_test

import (
	"errors"
	"fmt"

	"github.com/lonelu/Informed-Proteomics/modcomb"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleNew
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two dynamic modifications, Oxidation (type 0) and Acetylation (type 1),
//	at most two per peptide. The catalogue holds six states; a walk adds
//	Oxidation, then Acetylation, and reaches a full state.
//
// Complexity: O(N·M) to build, O(1) per step.
func ExampleNew() {
	cat, err := modcomb.New([]string{"Oxidation", "Acetylation"}, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i := 0; i < cat.Len(); i++ {
		comb, _ := cat.At(i)
		full, _ := cat.IsFull(i)
		fmt.Printf("%d %v full=%v\n", i, comb, full)
	}

	ox, _ := cat.Transition(modcomb.EmptyIndex, 0)
	both, _ := cat.Transition(ox, 1)
	fmt.Println("walk:", modcomb.EmptyIndex, "→", ox, "→", both)

	_, err = cat.Transition(both, 0)
	fmt.Println("full:", errors.Is(err, modcomb.ErrFullCombination))
	// Output:
	// 0 {} full=false
	// 1 {Oxidation} full=false
	// 2 {Acetylation} full=false
	// 3 {Oxidation, Oxidation} full=true
	// 4 {Oxidation, Acetylation} full=true
	// 5 {Acetylation, Acetylation} full=true
	// walk: 0 → 1 → 4
	// full: true
}

// ExampleCatalogue_Lookup finds a combination from type ids in any order.
func ExampleCatalogue_Lookup() {
	cat, _ := modcomb.New([]string{"Ox", "Ac", "Ph"}, 3)
	idx, _ := cat.Lookup(2, 0, 2)
	comb, _ := cat.At(idx)
	fmt.Println(comb, comb.Count(2))
	// Output:
	// {Ox, Ph, Ph} 2
}

func ExampleCountCombinations() {
	n, _ := modcomb.CountCombinations(10, 6)
	fmt.Println(n)
	// Output: 8008
}
