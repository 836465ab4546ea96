// SPDX-License-Identifier: MIT
// File: types.go
// Role: NLPModel's own handle types and the mutable state it accumulates
// before Optimize compiles everything. Grounded on core/types.go's
// "stable handle backed by an internal slice, resolved through an
// Indexer" shape, generalized from one entity kind (vertices) to four
// (variables, linear/quadratic/nonlinear constraints).

package model

import (
	"sync"

	"github.com/katalvlaran/modeling/exprcore"
	"github.com/katalvlaran/modeling/graphhash"
	"github.com/katalvlaran/modeling/indexer"
	"github.com/katalvlaran/modeling/jit"
	"github.com/katalvlaran/modeling/nlgraph"
)

// VariableSpec records one variable's domain and bounds, keyed by its
// stable VarIdx handle (not by its current dense index).
type VariableSpec struct {
	Idx    exprcore.VarIdx
	Domain exprcore.Domain
	Lower  float64
	Upper  float64
}

// LinearConstraint is one row accumulated by AddLinearConstraint.
type LinearConstraint struct {
	Handle indexer.Handle
	Expr   *exprcore.SAF
	Sense  exprcore.Sense
	RHS    float64
}

// QuadraticConstraint is one row accumulated by AddQuadraticConstraint.
type QuadraticConstraint struct {
	Handle indexer.Handle
	Expr   *exprcore.SQF
	Sense  exprcore.Sense
	RHS    float64
}

// ConeKind distinguishes the non-linear "shape" constraints spec §4.10
// names beyond plain comparisons: SOS1/SOS2 (at most one/two nonzero,
// adjacent for SOS2), second-order cone, and exponential cone.
type ConeKind int

const (
	ConeSOS1 ConeKind = iota
	ConeSOS2
	ConeSOC
	ConeExp
)

// ConeConstraint records a shape constraint over an ordered list of
// variables (the solver-adapter layer maps this to whichever native
// attribute table entry that back end exposes for the given ConeKind).
type ConeConstraint struct {
	Handle  indexer.Handle
	Kind    ConeKind
	Vars    []exprcore.VarIdx
	Weights []float64 // SOS priority weights; nil for SOC/Exp
}

// NLTerm is one nonlinear graph instance recorded against the model:
// either a constraint row (bounded by Lower/Upper) or an objective
// contribution (IsObjective true, bounds unused).
type NLTerm struct {
	Handle      indexer.Handle
	Graph       *nlgraph.Graph
	Root        nlgraph.NodeID
	VarIdxs     []exprcore.VarIdx
	IsObjective bool
	Lower       float64
	Upper       float64
}

// NLPModel is spec §4.10's single orchestrator. The zero value is not
// usable; use New.
type NLPModel struct {
	mu sync.Mutex

	varIdx *indexer.Indexer
	vars   map[exprcore.VarIdx]*VariableSpec

	linIdx  *indexer.Indexer
	linCons map[indexer.Handle]*LinearConstraint

	quadIdx  *indexer.Indexer
	quadCons map[indexer.Handle]*QuadraticConstraint

	coneIdx  *indexer.Indexer
	coneCons map[indexer.Handle]*ConeConstraint

	nlIdx   *indexer.Indexer
	nlTerms map[indexer.Handle]*NLTerm

	linObjective *exprcore.SAF
	quadObjective *exprcore.SQF

	grouper *graphhash.Grouper
	jit     *jit.JIT
	backend Backend

	compiled bool
	result   *Compiled
}

// New returns an empty NLPModel. By default every group compiles
// through the tcc/C pipeline; pass WithLLVMBackend to use LLVM ORC
// instead.
func New(opts ...Option) *NLPModel {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &NLPModel{
		varIdx:   indexer.New(),
		vars:     make(map[exprcore.VarIdx]*VariableSpec),
		linIdx:   indexer.New(),
		linCons:  make(map[indexer.Handle]*LinearConstraint),
		quadIdx:  indexer.New(),
		quadCons: make(map[indexer.Handle]*QuadraticConstraint),
		coneIdx:  indexer.New(),
		coneCons: make(map[indexer.Handle]*ConeConstraint),
		nlIdx:    indexer.New(),
		nlTerms:  make(map[indexer.Handle]*NLTerm),
		grouper:  graphhash.NewGrouper(),
		jit:      jit.New(),
		backend:  cfg.backend,
	}
}

// Close releases the model's JIT resources. Safe to call once Optimize
// has finished driving the solve; compiled native functions must not be
// invoked afterward.
func (m *NLPModel) Close() error {
	return m.jit.Close()
}
