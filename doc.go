// Package modeling is an algebraic modeling layer for mathematical
// optimization: a symbolic expression core (exprcore) with a stable
// variable indexer, a nonlinear expression graph (nlgraph) with
// automatic differentiation (autodiff) and native code generation
// (codegen/jit), structural grouping of repeated expression shapes
// (graphhash) so a multi-instance model compiles once per shape rather
// than once per instance, a single orchestrator (model) that ties all
// of the above into one compiled problem, and a solver-adapter contract
// (solver) for driving that problem through whichever back-end library
// is loaded at runtime.
//
// Subpackages:
//
//	exprcore/   — VarIdx/SAF/SQF/ExprBuilder, degree-bounded symbolic algebra
//	indexer/    — stable handle allocation/deletion backed by a Fenwick tree
//	tupledict/  — sparse tuple-keyed dictionaries with wildcard Select
//	nlgraph/    — the nonlinear expression graph and its scoped recording context
//	graphhash/  — structural-equality grouping of graph instances
//	autodiff/   — symbolic reverse-mode differentiation over a grouped graph
//	codegen/    — C and LLVM IR lowering of a differentiated graph
//	jit/        — native compilation (libtcc, LLVM ORC) and symbol resolution
//	model/      — NLPModel: the single orchestrator from constraints to a Compiled problem
//	matrixglue/ — bulk constraint construction from dense/sparse matrices
//	solver/     — the back-end-agnostic attribute/parameter adapter contract
package modeling
