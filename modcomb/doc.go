// SPDX-License-Identifier: MIT

// Package modcomb catalogues every combination of post-translational
// modifications a peptide or protein can carry, and precomputes how one
// combination turns into another when a single modification is added.
//
// 🚀 What is a modification catalogue?
//
//	A search allowing at most K dynamic modifications out of M types must
//	track, at every residue of a sequence walk, which multiset of
//	modifications has been placed so far. modcomb assigns each multiset a
//	dense integer index and answers "where do I land if I add type t?" with
//	one table read:
//	  • Oxidation + Acetylation, K=2 → 6 states: {}, {Ox}, {Ac}, {Ox,Ox}, {Ox,Ac}, {Ac,Ac}
//	  • {} + Ox → {Ox};  {Ox} + Ac → {Ox,Ac};  {Ox,Ac} is full
//
// ✨ Key features:
//   - canonical mixed-radix encoding: order-irrelevant multisets collapse to
//     one identity, built once and then discarded
//   - flat transition table: Transition(src, t) is O(1), no hashing, no sorting
//   - deterministic indices: identical inputs give identical catalogues
//   - immutable after New: share one *Catalogue across goroutines freely
//   - generic over the modification type: any comparable value works
//
// ⚙️ Usage:
//
//	cat, err := modcomb.New([]string{"Oxidation", "Acetylation"}, 2)
//	if err != nil {
//	  // ErrNoModifications, ErrBadMaxModifications, ErrDuplicateModification,
//	  // ErrCatalogueTooLarge or ErrInconsistentCatalogue
//	}
//	ox, _ := cat.Transition(modcomb.EmptyIndex, 0)
//	both, _ := cat.Transition(ox, 1)
//	comb, _ := cat.At(both) // {Oxidation, Acetylation}
//
// Query errors (ErrIndexOutOfRange, ErrUnknownModification,
// ErrFullCombination) all match ErrInvalidQuery; construction errors never do.
//
// Performance:
//
//   - Build:  O(N·M·K log K) time, N = C(M+K, K)
//   - Memory: O(N·(M+K))
//   - Query:  O(1)
//
// The package computes no masses and performs no I/O.
package modcomb
