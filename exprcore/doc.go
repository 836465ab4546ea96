// Package exprcore implements the symbolic algebra of degree-≤2 scalar
// expressions: variable handles, affine and quadratic polynomial
// containers, and a mutable builder accumulator that absorbs arithmetic
// across all three grades.
//
// Degree closure is the central rule: adding two expressions keeps the
// maximum of their degrees, multiplying sums the degrees, and any
// operation that would push the result past degree 2 fails with
// ErrDegreeExceeded — unless a graph context is active (see the
// sibling nlgraph package), in which case Mul and Div hand the operands
// to the registered graph escalator and return a graph handle instead.
//
// Canonical form is deterministic: SAF variables are sorted strictly
// ascending with duplicate coefficients combined and zeros dropped; SQF
// pairs are additionally ordered v1<=v2 and sorted lexicographically.
package exprcore
