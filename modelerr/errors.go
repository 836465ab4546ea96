// SPDX-License-Identifier: MIT
// Package modelerr is the shared error taxonomy every other package's
// sentinel errors surface through (spec §7): UserError, GraphError,
// CompileError, SolverError and LibraryError. Each is a typed wrapper
// holding the package's own sentinel plus whatever structured context
// that error class carries natively, so a caller can `errors.As` for
// the class and structured fields while `errors.Is` still matches the
// original per-package sentinel through Unwrap.
package modelerr

import "fmt"

// Kind discriminates which of spec §7's five error classes an Error
// belongs to.
type Kind int

const (
	UserKind Kind = iota
	GraphKind
	CompileKind
	SolverKind
	LibraryKind
)

func (k Kind) String() string {
	switch k {
	case UserKind:
		return "UserError"
	case GraphKind:
		return "GraphError"
	case CompileKind:
		return "CompileError"
	case SolverKind:
		return "SolverError"
	case LibraryKind:
		return "LibraryError"
	default:
		return "UnknownError"
	}
}

// Error is the concrete type every class's constructor returns. Attribute
// and RawStatus are populated only where that class's constructor sets
// them (AttributeError/SolverFailure below); zero otherwise.
type Error struct {
	Kind      Kind
	Err       error
	Attribute string // UserError: the offending attribute/parameter name, if any
	RawStatus string // SolverError: the back-end's native status string, if any
}

func (e *Error) Error() string {
	if e.Attribute != "" {
		return fmt.Sprintf("%s: %v (attribute %q)", e.Kind, e.Err, e.Attribute)
	}
	if e.RawStatus != "" {
		return fmt.Sprintf("%s: %v (raw status %q)", e.Kind, e.Err, e.RawStatus)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// Unwrap exposes the wrapped sentinel so errors.Is(err, somePkg.ErrXxx)
// keeps working through the taxonomy wrapper.
func (e *Error) Unwrap() error { return e.Err }

// User wraps err as a UserError (spec: bad attribute, unknown parameter
// name, unsupported operation, degree exceeded outside a graph).
func User(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: UserKind, Err: err}
}

// AttributeError wraps err as a UserError carrying the offending
// attribute or parameter name (spec: "attribute queries on deleted
// handles fail with UserError").
func AttributeError(err error, attribute string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: UserKind, Err: err, Attribute: attribute}
}

// Graph wraps err as a GraphError (spec: no active graph context,
// cyclic or ill-formed graph output).
func Graph(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: GraphKind, Err: err}
}

// Compile wraps err as a CompileError (spec: C text or LLVM IR
// rejected, symbol missing after compile).
func Compile(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: CompileKind, Err: err}
}

// Solver wraps err as a SolverError (spec: back-end returned failure on
// add/delete/solve), carrying the back-end's own raw status string.
func Solver(err error, rawStatus string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: SolverKind, Err: err, RawStatus: rawStatus}
}

// Library wraps err as a LibraryError (spec: library load failed,
// required symbol missing).
func Library(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: LibraryKind, Err: err}
}
