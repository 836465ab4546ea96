// SPDX-License-Identifier: MIT
// File: constraints.go
// Role: linear/quadratic/cone constraint and objective registration.
// Mirrors core/methods.go's validate-then-store discipline, generalized
// to four constraint kinds instead of one edge kind.

package model

import (
	"math"

	"github.com/katalvlaran/modeling/exprcore"
	"github.com/katalvlaran/modeling/indexer"
	"github.com/katalvlaran/modeling/modelerr"
	"github.com/katalvlaran/modeling/nlgraph"
)

// AddLinearConstraint registers lhs <sense> rhs and returns its handle.
func (m *NLPModel) AddLinearConstraint(lhs *exprcore.SAF, sense exprcore.Sense, rhs float64) (indexer.Handle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.compiled {
		return 0, modelerr.User(ErrAlreadyCompiled)
	}
	if lhs == nil {
		return 0, modelerr.User(ErrEmptyExpression)
	}
	h := m.linIdx.Add()
	m.linCons[h] = &LinearConstraint{Handle: h, Expr: lhs.Clone(), Sense: sense, RHS: rhs}
	return h, nil
}

// AddQuadraticConstraint registers lhs <sense> rhs and returns its handle.
func (m *NLPModel) AddQuadraticConstraint(lhs *exprcore.SQF, sense exprcore.Sense, rhs float64) (indexer.Handle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.compiled {
		return 0, modelerr.User(ErrAlreadyCompiled)
	}
	if lhs == nil {
		return 0, modelerr.User(ErrEmptyExpression)
	}
	h := m.quadIdx.Add()
	m.quadCons[h] = &QuadraticConstraint{Handle: h, Expr: lhs.Clone(), Sense: sense, RHS: rhs}
	return h, nil
}

// AddConeConstraint registers a SOS1/SOS2/SOC/exponential-cone shape
// constraint over vars (weights is the SOS priority vector; pass nil
// for SOC/Exp, where it is unused).
func (m *NLPModel) AddConeConstraint(kind ConeKind, vars []exprcore.VarIdx, weights []float64) (indexer.Handle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.compiled {
		return 0, modelerr.User(ErrAlreadyCompiled)
	}
	if len(vars) == 0 {
		return 0, modelerr.User(ErrEmptyExpression)
	}
	h := m.coneIdx.Add()
	m.coneCons[h] = &ConeConstraint{
		Handle:  h,
		Kind:    kind,
		Vars:    append([]exprcore.VarIdx(nil), vars...),
		Weights: append([]float64(nil), weights...),
	}
	return h, nil
}

// AddSOS1Constraint: at most one of vars may be nonzero.
func (m *NLPModel) AddSOS1Constraint(vars []exprcore.VarIdx, weights []float64) (indexer.Handle, error) {
	return m.AddConeConstraint(ConeSOS1, vars, weights)
}

// AddSOS2Constraint: at most two of vars may be nonzero, and if two, they
// must be adjacent in priority-weight order.
func (m *NLPModel) AddSOS2Constraint(vars []exprcore.VarIdx, weights []float64) (indexer.Handle, error) {
	return m.AddConeConstraint(ConeSOS2, vars, weights)
}

// AddSOCConstraint: vars[0] >= ||vars[1:]||_2 (the standard rotated-free
// second-order cone).
func (m *NLPModel) AddSOCConstraint(vars []exprcore.VarIdx) (indexer.Handle, error) {
	return m.AddConeConstraint(ConeSOC, vars, nil)
}

// AddExpConeConstraint: (vars[0], vars[1], vars[2]) in the exponential
// cone {(x,y,z) : y*exp(x/y) <= z, y>0}.
func (m *NLPModel) AddExpConeConstraint(vars []exprcore.VarIdx) (indexer.Handle, error) {
	if len(vars) != 3 {
		return 0, modelerr.User(ErrEmptyExpression)
	}
	return m.AddConeConstraint(ConeExp, vars, nil)
}

// AddNLConstraint records root (built against g) as a bounded nonlinear
// constraint row: lower <= f(x,p) <= upper. Pass math.Inf(-1)/math.Inf(1)
// for a one-sided bound.
func (m *NLPModel) AddNLConstraint(g *nlgraph.Graph, root nlgraph.NodeID, lower, upper float64) (indexer.Handle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.compiled {
		return 0, modelerr.User(ErrAlreadyCompiled)
	}
	h := m.nlIdx.Add()
	m.nlTerms[h] = &NLTerm{
		Handle:  h,
		Graph:   g,
		Root:    root,
		VarIdxs: g.VarSlots(),
		Lower:   lower,
		Upper:   upper,
	}
	return h, nil
}

// SetLinearObjective sets the model's linear objective term, added to
// any quadratic/nonlinear objective contribution also present.
func (m *NLPModel) SetLinearObjective(expr *exprcore.SAF) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.compiled {
		return modelerr.User(ErrAlreadyCompiled)
	}
	if expr == nil {
		return modelerr.User(ErrEmptyExpression)
	}
	m.linObjective = expr.Clone()
	return nil
}

// SetQuadraticObjective sets the model's quadratic objective term.
func (m *NLPModel) SetQuadraticObjective(expr *exprcore.SQF) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.compiled {
		return modelerr.User(ErrAlreadyCompiled)
	}
	if expr == nil {
		return modelerr.User(ErrEmptyExpression)
	}
	m.quadObjective = expr.Clone()
	return nil
}

// SetNLObjective records root as a nonlinear objective contribution.
// Calling it more than once adds further additive terms (spec §8
// scenario 6's "objective assembled from several NL terms").
func (m *NLPModel) SetNLObjective(g *nlgraph.Graph, root nlgraph.NodeID) (indexer.Handle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.compiled {
		return 0, modelerr.User(ErrAlreadyCompiled)
	}
	h := m.nlIdx.Add()
	m.nlTerms[h] = &NLTerm{
		Handle:      h,
		Graph:       g,
		Root:        root,
		VarIdxs:     g.VarSlots(),
		IsObjective: true,
		Lower:       math.Inf(-1),
		Upper:       math.Inf(1),
	}
	return h, nil
}
