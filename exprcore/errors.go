// SPDX-License-Identifier: MIT
// Package exprcore: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// exprcore package. All algorithms MUST return these sentinels and tests
// MUST check them via errors.Is. No algorithm should panic on user-triggered
// error conditions. Panics are reserved for internal invariant violations.

package exprcore

import "errors"

var (
	// ErrDegreeExceeded is returned when an operation would produce a
	// polynomial of degree > 2 and no graph context absorbs the escalation.
	ErrDegreeExceeded = errors.New("exprcore: degree exceeded (no graph context active)")

	// ErrNonLinearDivide is returned when dividing by a non-constant
	// expression outside of a graph context.
	ErrNonLinearDivide = errors.New("exprcore: division by non-constant expression")

	// ErrLengthMismatch indicates SAF/SQF parallel slices of unequal length.
	ErrLengthMismatch = errors.New("exprcore: parallel slice length mismatch")

	// ErrEmptyBuilder indicates an operation required a non-empty accumulator.
	ErrEmptyBuilder = errors.New("exprcore: builder has no terms")
)
