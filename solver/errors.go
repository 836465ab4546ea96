// SPDX-License-Identifier: MIT
package solver

import "errors"

// The taxonomy below mirrors spec §7's error classes exactly, so a
// caller can branch with errors.Is/errors.As the same way it would
// against this module's other packages' sentinel errors.
var (
	// ErrUnknownAttribute is a UserError: the AttributeKey has no entry
	// in the requested back-end's table for that entity kind.
	ErrUnknownAttribute = errors.New("solver: unknown attribute for this back-end/entity")
	// ErrUnsupportedOperation is a UserError: the attribute exists in
	// the abstract enum but this back-end never implements it (e.g. IIS
	// on a back-end with no infeasibility-certificate support).
	ErrUnsupportedOperation = errors.New("solver: operation not supported by this back-end")
	// ErrUnknownParameter is a UserError: a raw (native-named)
	// parameter was not recognized by the back-end.
	ErrUnknownParameter = errors.New("solver: unknown raw parameter name")
	// ErrSolveFailed is a SolverError: the back-end returned failure
	// from add/delete/solve.
	ErrSolveFailed = errors.New("solver: back-end reported failure")
	// ErrLibraryNotFound is a LibraryError: autoload_library exhausted
	// every candidate path without finding a loadable library.
	ErrLibraryNotFound = errors.New("solver: no candidate library path resolved")
	// ErrSymbolMissing is a LibraryError: the library loaded, but a
	// required exported symbol was absent.
	ErrSymbolMissing = errors.New("solver: required symbol missing from loaded library")
)
