// Package autodiff turns one GraphHash group's representative graph into
// three new expression graphs — f, Jacobian, and Lagrangian-Hessian —
// plus their coordinate-form sparsity patterns (spec §4.7).
//
// The method is tape-based reverse-mode, run symbolically rather than
// numerically: each pass walks the representative's nodes in decreasing
// NodeID order (already a valid reverse-topological order, since the
// arena only ever references smaller ids) and builds new nodes in the
// output graph representing the chain-rule accumulation, instead of
// accumulating float64 adjoints. The Hessian is obtained by running the
// same reverse pass a second time over the Jacobian's own row
// expressions under a Lagrange-multiplier-weighted sum wᵀf(x,p), which
// is what makes the sparsity pattern purely structural: a column is
// nonzero iff some node on the path actually produced a derivative
// expression, never because of a numeric cancellation at a sample point
// (spec §9's Hessian-sparsity-conservatism resolution).
//
// Grounded on cpmech/gosl's num.DerivCentral / chk.AnaNum idiom for the
// correctness tests (central-difference cross-check of the symbolic
// output), carried over from the PaddySchmidt-gofem and
// BookmarkSciencePrrojects-gofem packages' own test style.
package autodiff
