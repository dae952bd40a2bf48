// SPDX-License-Identifier: MIT
// Package: modcomb
//
// errors.go — sentinel errors for the modcomb package.
//
// Error policy:
//   • Construction failures return a sentinel wrapped with the method name
//     (modcombErrorf). No partially built Catalogue is ever returned.
//   • Query failures return *QueryError. It unwraps to the specific sentinel
//     (ErrIndexOutOfRange, ErrUnknownModification, ErrFullCombination) and
//     also matches ErrInvalidQuery, so callers can tell caller mistakes apart
//     from construction failures with a single errors.Is.
//   • Option constructors panic on meaningless input; algorithms never panic.

package modcomb

import (
	"errors"
	"fmt"
)

// Construction errors.
var (
	// ErrNoModifications indicates an empty modification-type slice.
	ErrNoModifications = errors.New("modcomb: at least one modification type is required")

	// ErrBadMaxModifications indicates K < 1.
	ErrBadMaxModifications = errors.New("modcomb: max modifications must be ≥ 1")

	// ErrDuplicateModification indicates two equal values in the modification-type slice.
	// Type ids must denote distinct modifications, otherwise one multiset would
	// be catalogued twice under different indices.
	ErrDuplicateModification = errors.New("modcomb: duplicate modification type")

	// ErrCatalogueTooLarge indicates that the catalogue would exceed the
	// configured combination limit, or that the canonical hash of a K-slot
	// array would not fit in 64 bits.
	ErrCatalogueTooLarge = errors.New("modcomb: catalogue exceeds size limit")

	// ErrInconsistentCatalogue signals that the generator and the encoder
	// disagree: a canonical hash has no catalogued index, or two combinations
	// share a hash. The catalogue is unusable; this is never a caller error.
	ErrInconsistentCatalogue = errors.New("modcomb: generator and encoder disagree")
)

// Query errors. Every one of them is reported through *QueryError.
var (
	// ErrInvalidQuery is matched by every query error.
	ErrInvalidQuery = errors.New("modcomb: invalid query")

	// ErrIndexOutOfRange indicates a combination index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("modcomb: combination index out of range")

	// ErrUnknownModification indicates a modification type id outside [0, M).
	ErrUnknownModification = errors.New("modcomb: modification type id out of range")

	// ErrFullCombination indicates a transition requested from a combination
	// that already holds K modifications.
	ErrFullCombination = errors.New("modcomb: combination is full")
)

// QueryError describes a rejected read against a Catalogue.
type QueryError struct {
	Method string // public method that rejected the query, e.g. MethodTransition
	Err    error  // one of the query sentinels
	Detail string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Method, e.Err.Error(), e.Detail)
}

// Unwrap exposes the specific sentinel.
func (e *QueryError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidQuery.
func (e *QueryError) Is(target error) bool {
	return target == ErrInvalidQuery
}

// queryErrorf builds a *QueryError for method with a formatted detail.
func queryErrorf(method string, sentinel error, format string, args ...any) error {
	return &QueryError{
		Method: method,
		Err:    sentinel,
		Detail: fmt.Sprintf(format, args...),
	}
}

// modcombErrorf wraps sentinel with the given method context.
// The result reads "<Method>: <sentinel>: <detail>" and matches sentinel
// under errors.Is.
func modcombErrorf(method string, sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", method, sentinel, fmt.Sprintf(format, args...))
}
