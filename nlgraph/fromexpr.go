// SPDX-License-Identifier: MIT
// File: fromexpr.go
// Role: explicit constructors folding exprcore values into a graph as the
// equivalent node subgraph (spec §4.5: "there are explicit constructors
// to fold a VarIdx / SAF / SQF / ExprBuilder into the graph").

package nlgraph

import (
	"github.com/katalvlaran/modeling/exprcore"
	"github.com/katalvlaran/modeling/modelerr"
)

// FromVarIdx folds a bare variable handle into g.
func FromVarIdx(g *Graph, v exprcore.VarIdx) Handle {
	return Handle{g: g, node: g.AddVariable(v)}
}

// FromSAF folds an affine function into g as a sum of (coef * var) terms
// plus a constant leaf, using an n-ary Add so CSE/flattening applies.
func FromSAF(g *Graph, a *exprcore.SAF) Handle {
	terms := make([]Handle, 0, len(a.Variables)+1)
	for i, v := range a.Variables {
		coef := constHandle(g, a.Coefficients[i])
		terms = append(terms, Mul(coef, FromVarIdx(g, v)))
	}
	terms = append(terms, constHandle(g, a.Constant))
	if len(terms) == 1 {
		return terms[0]
	}
	return NAdd(terms...)
}

// FromSQF folds a quadratic function into g as a sum of (coef*v1*v2)
// terms plus the folded affine part.
func FromSQF(g *Graph, q *exprcore.SQF) Handle {
	terms := make([]Handle, 0, len(q.Variable1s)+1)
	for i := range q.Variable1s {
		coef := constHandle(g, q.Coefficients[i])
		terms = append(terms, NMul(coef, FromVarIdx(g, q.Variable1s[i]), FromVarIdx(g, q.Variable2s[i])))
	}
	terms = append(terms, FromSAF(g, q.AffinePart))
	if len(terms) == 1 {
		return terms[0]
	}
	return NAdd(terms...)
}

// FromBuilder folds an ExprBuilder's current value into g.
func FromBuilder(g *Graph, b *exprcore.ExprBuilder) Handle {
	return FromSQF(g, b.ToSQF())
}

// FromExpr folds any exprcore.Expr (VarIdx/*SAF/*SQF/*ExprBuilder) into
// g, dispatching on its dynamic type. Returns the handle unchanged if e
// is already a Handle on g.
func FromExpr(g *Graph, e exprcore.Expr) (Handle, error) {
	switch v := e.(type) {
	case exprcore.VarIdx:
		return FromVarIdx(g, v), nil
	case *exprcore.SAF:
		return FromSAF(g, v), nil
	case *exprcore.SQF:
		return FromSQF(g, v), nil
	case *exprcore.ExprBuilder:
		return FromBuilder(g, v), nil
	case Handle:
		if v.g != g {
			return Handle{}, modelerr.Graph(ErrForeignNode)
		}
		return v, nil
	default:
		return Handle{}, modelerr.Graph(ErrForeignNode)
	}
}
