// SPDX-License-Identifier: MIT

package modcomb

//-----------------------------------------------------------------------------
// Method names, used to prefix errors with the rejecting call.
//-----------------------------------------------------------------------------

const (
	// MethodNew is the canonical name for the New constructor.
	MethodNew = "New"
	// MethodAt is the canonical name for Catalogue.At.
	MethodAt = "At"
	// MethodTransition is the canonical name for Catalogue.Transition.
	MethodTransition = "Transition"
	// MethodLookup is the canonical name for Catalogue.Lookup.
	MethodLookup = "Lookup"
	// MethodSize is the canonical name for Catalogue.Size and Catalogue.IsFull.
	MethodSize = "Size"
	// MethodWalk is the canonical name for Catalogue.Walk.
	MethodWalk = "Walk"
	// MethodCount is the canonical name for CountCombinations.
	MethodCount = "CountCombinations"
)

//-----------------------------------------------------------------------------
// Slot encoding
//-----------------------------------------------------------------------------

// sentinel marks an unoccupied slot. Occupied slots hold typeID+1, so the
// symbol range for M modification types is {0..M} and the radix is M+1.
const sentinel = 0

// noTransition marks a (source, type) cell of the transition table that has
// no destination because the source is full.
const noTransition int32 = -1

// EmptyIndex is the combination index of the unmodified state. The generator
// emits the all-sentinel slot array first, so it is always 0.
const EmptyIndex = 0

//-----------------------------------------------------------------------------
// Limits
//-----------------------------------------------------------------------------

// DefaultMaxCombinations caps the catalogue size unless WithMaxCombinations
// overrides it. At M=10 types and K=6 slots the catalogue holds 8008 entries,
// so the default leaves ample room for realistic search settings.
const DefaultMaxCombinations = 1 << 22

// maxTableEntries bounds both the combination count, so that destinations
// fit in int32, and the number of transition table cells.
const maxTableEntries = 1<<31 - 1
