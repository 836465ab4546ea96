// SPDX-License-Identifier: MIT
// File: variables.go
// Role: variable registration plus the Quicksum/MakeNDVariable aliases
// spec §4.4 names as sugar over tupledict's Cartesian-product builder.

package model

import (
	"github.com/cpmech/gosl/utl"
	"github.com/katalvlaran/modeling/exprcore"
	"github.com/katalvlaran/modeling/indexer"
	"github.com/katalvlaran/modeling/modelerr"
	"github.com/katalvlaran/modeling/tupledict"
)

// AddVariable registers one scalar variable and returns its stable
// handle. lower/upper follow exprcore's convention of math.Inf(±1) for
// an unbounded side.
func (m *NLPModel) AddVariable(domain exprcore.Domain, lower, upper float64) (exprcore.VarIdx, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.compiled {
		return 0, modelerr.User(ErrAlreadyCompiled)
	}
	h := m.varIdx.Add()
	idx := exprcore.VarIdx(h)
	m.vars[idx] = &VariableSpec{Idx: idx, Domain: domain, Lower: lower, Upper: upper}
	return idx, nil
}

// DeleteVariable removes v from the model. Any linear/quadratic/NL term
// still referencing v is left as-is. Optimize fails with
// ErrUnknownVariable when an NL term still references v; linear and
// quadratic constraints and objectives are not checked for v.
func (m *NLPModel) DeleteVariable(v exprcore.VarIdx) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.compiled {
		return modelerr.User(ErrAlreadyCompiled)
	}
	if err := m.varIdx.Delete(indexer.Handle(v)); err != nil {
		return err
	}
	delete(m.vars, v)
	return nil
}

// MakeNDVariable registers one variable per coordinate of a dense
// N-dimensional index range (spec §4.4's ND variable sugar), returning
// a TupleDict mapping each coordinate tuple to its VarIdx so callers can
// use tupledict.Select over the resulting variable block the same way
// they would over any other tuple-keyed expression. Coordinate ranges
// are built with gosl/utl.IntRange.
func (m *NLPModel) MakeNDVariable(domain exprcore.Domain, lower, upper float64, dims ...int) (*tupledict.TupleDict[exprcore.VarIdx], error) {
	coords := make([]tupledict.Coord, len(dims))
	for i, d := range dims {
		rng := utl.IntRange(d)
		c := make(tupledict.Coord, len(rng))
		for j, v := range rng {
			c[j] = v
		}
		coords[i] = c
	}

	var buildErr error
	rule := func(key []interface{}) (exprcore.VarIdx, bool) {
		v, err := m.AddVariable(domain, lower, upper)
		if err != nil {
			buildErr = err
			return 0, false
		}
		return v, true
	}
	td, err := tupledict.MakeTupleDict(rule, coords...)
	if err != nil {
		return nil, err
	}
	if buildErr != nil {
		return nil, buildErr
	}
	return td, nil
}

// Quicksum is spec §4.4's sugar for summing a slice of expressions into
// one SAF/SQF via ExprBuilder, returned as a *exprcore.SQF so the
// caller can downcast with ToSAF if every term stayed linear.
func Quicksum(terms ...exprcore.Expr) (*exprcore.SQF, error) {
	b := exprcore.NewExprBuilder()
	for _, t := range terms {
		if err := b.AddInPlace(t); err != nil {
			return nil, err
		}
	}
	return b.ToSQF(), nil
}
