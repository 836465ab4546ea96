// Package matrixglue implements spec §4's MatrixGlue: bulk construction
// of linear/quadratic constraint rows from whole matrices instead of
// one exprcore.SAF/SQF term at a time, adapted from matrix/impl_dense.go
// and matrix/impl_builder.go's row-at-a-time dense assembly idiom.
//
// Two input shapes are accepted: a dense gonum/mat.Dense (the common
// case when a caller already has the problem data as a Go matrix
// literal or computed numerically) and a sparse gosl/la.Triplet (the
// common case when the data arrives already in coordinate form from
// another gosl-based computation, e.g. a finite-element assembly
// producing a stiffness matrix directly as constraint rows).
package matrixglue
