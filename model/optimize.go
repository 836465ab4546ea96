// SPDX-License-Identifier: MIT
// File: optimize.go
// Role: Optimize() — spec §4.10's single pipeline entry point: finalize
// every recorded graph, partition into structural groups, differentiate
// + codegen + JIT each new group exactly once, and hand back a Compiled
// problem the solver package's adapter drives to a solution.

package model

import (
	"math"

	"github.com/katalvlaran/modeling/exprcore"
	"github.com/katalvlaran/modeling/modelerr"
)

// Compiled is the solver-ready view of an NLPModel: dense variable
// bounds/domains, linear/quadratic constraint rows (passed through
// unchanged — a solver back end handles these natively, without ever
// routing them through autodiff/codegen/jit), and an Evaluator for
// whatever nonlinear rows/objective terms were recorded.
type Compiled struct {
	NumVars int
	Lower   []float64
	Upper   []float64
	Domains []exprcore.Domain

	LinCons  []*LinearConstraint
	QuadCons []*QuadraticConstraint
	ConeCons []*ConeConstraint

	// LinObjective/QuadObjective are the model's linear/quadratic
	// objective contributions, passed through unchanged like LinCons/
	// QuadCons (a solver back end adds these natively; only the
	// nonlinear contribution routes through Evaluator). Either may be
	// nil if the model never set that degree of objective.
	LinObjective  *exprcore.SAF
	QuadObjective *exprcore.SQF

	Evaluator *Evaluator
	NumNLRows int
}

// Optimize finalizes every graph recorded so far, partitions nonlinear
// terms into structural groups, compiles each new group, and returns
// the resulting Compiled problem. The model is marked compiled; further
// mutation requires a new NLPModel.
func (m *NLPModel) Optimize() (*Compiled, error) {
	m.mu.Lock()
	if m.compiled {
		m.mu.Unlock()
		return m.result, nil
	}

	handles := m.nlIdx.LiveHandles()
	hasObjective := m.linObjective != nil || m.quadObjective != nil
	for _, h := range handles {
		if err := m.nlTerms[h].Graph.Finalize(); err != nil {
			m.mu.Unlock()
			return nil, err
		}
		hasObjective = hasObjective || m.nlTerms[h].IsObjective
	}
	if !hasObjective {
		m.mu.Unlock()
		return nil, modelerr.User(ErrNoObjective)
	}
	m.mu.Unlock()

	insts, err := m.partition()
	if err != nil {
		return nil, err
	}
	groups, err := m.compileGroups(insts)
	if err != nil {
		return nil, err
	}

	nx := m.varIdx.Len()
	ev := newEvaluator(nx, insts, groups)

	liveVars := m.varIdx.LiveHandles()
	lower := make([]float64, nx)
	upper := make([]float64, nx)
	domains := make([]exprcore.Domain, nx)
	for _, h := range liveVars {
		idx := m.varIdx.Get(h)
		spec := m.vars[exprcore.VarIdx(h)]
		if spec == nil {
			lower[idx], upper[idx] = math.Inf(-1), math.Inf(1)
			continue
		}
		lower[idx], upper[idx], domains[idx] = spec.Lower, spec.Upper, spec.Domain
	}

	lin := make([]*LinearConstraint, 0, len(m.linCons))
	for _, h := range m.linIdx.LiveHandles() {
		lin = append(lin, m.linCons[h])
	}
	quad := make([]*QuadraticConstraint, 0, len(m.quadCons))
	for _, h := range m.quadIdx.LiveHandles() {
		quad = append(quad, m.quadCons[h])
	}
	cones := make([]*ConeConstraint, 0, len(m.coneCons))
	for _, h := range m.coneIdx.LiveHandles() {
		cones = append(cones, m.coneCons[h])
	}

	m.mu.Lock()
	m.compiled = true
	m.result = &Compiled{
		NumVars: nx, Lower: lower, Upper: upper, Domains: domains,
		LinCons: lin, QuadCons: quad, ConeCons: cones,
		LinObjective: m.linObjective, QuadObjective: m.quadObjective,
		Evaluator: ev, NumNLRows: ev.ny,
	}
	res := m.result
	m.mu.Unlock()
	return res, nil
}
