// SPDX-License-Identifier: MIT
// File: structure.go
// Role: Structure — the coordinate-form sparsity description the solver
// adapter needs per spec §4.3/§4.7 ("AutodiffArtifact ... structure").

package autodiff

// Structure describes the shape of one group's compiled evaluators: the
// variable/parameter/output counts and the coordinate-form (COO)
// sparsity of the Jacobian and of the lower triangle of the
// Lagrangian Hessian.
type Structure struct {
	NX int // number of variable slots in the representative graph
	NP int // number of parameter slots
	NY int // number of output roots (constraint block width, or 1 for an objective)

	NNZJac  int
	NNZHess int

	// JacRows/JacCols are parallel arrays of length NNZJac, row-major:
	// JacRows[k] in [0,NY), JacCols[k] in [0,NX).
	JacRows []int
	JacCols []int

	// HessRows/HessCols are parallel arrays of length NNZHess, the lower
	// triangle (row >= col) in row-major order, per spec §4.7's
	// convention.
	HessRows []int
	HessCols []int

	HasJacobian  bool
	HasHessian   bool
	HasParameter bool
}
