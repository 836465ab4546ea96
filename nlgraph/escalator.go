// SPDX-License-Identifier: MIT
// File: escalator.go
// Role: the single place the graph-promotion rule lives (design note
// §9): implements exprcore.GraphEscalator and registers itself with
// exprcore at package-init time, so exprcore.Mul/Add/... can transparently
// hand off to an active graph context without exprcore importing nlgraph.

package nlgraph

import (
	"github.com/katalvlaran/modeling/exprcore"
	"github.com/katalvlaran/modeling/modelerr"
)

func init() {
	exprcore.RegisterGraphEscalator(graphEscalator{})
}

type graphEscalator struct{}

func (graphEscalator) Active() bool { return Active() }

func (graphEscalator) Promote(v exprcore.Expr) (exprcore.Expr, error) {
	if h, ok := v.(Handle); ok {
		return h, nil
	}
	g := Current()
	if g == nil {
		return nil, modelerr.Graph(ErrNoActiveContext)
	}
	h, err := FromExpr(g, v)
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (e graphEscalator) BinaryOp(op exprcore.BinaryOp, l, r exprcore.Expr) (exprcore.Expr, error) {
	lh, err := e.operand(l)
	if err != nil {
		return nil, err
	}
	rh, err := e.operand(r)
	if err != nil {
		return nil, err
	}
	switch op {
	case exprcore.OpAdd:
		return Add(lh, rh), nil
	case exprcore.OpSub:
		return Sub(lh, rh), nil
	case exprcore.OpMul:
		return Mul(lh, rh), nil
	case exprcore.OpDiv:
		return Div(lh, rh), nil
	case exprcore.OpEq:
		return Eq(lh, rh), nil
	case exprcore.OpLeq:
		return Leq(lh, rh), nil
	case exprcore.OpGeq:
		return Geq(lh, rh), nil
	default:
		return nil, modelerr.Graph(ErrUnknownOp)
	}
}

func (e graphEscalator) UnaryOp(op exprcore.UnaryOp, v exprcore.Expr) (exprcore.Expr, error) {
	h, err := e.operand(v)
	if err != nil {
		return nil, err
	}
	switch op {
	case exprcore.OpNeg:
		return Neg(h), nil
	default:
		return nil, modelerr.Graph(ErrUnknownOp)
	}
}

// operand promotes v (if not already a Handle) into the active graph.
func (e graphEscalator) operand(v exprcore.Expr) (Handle, error) {
	promoted, err := e.Promote(v)
	if err != nil {
		return Handle{}, err
	}
	return promoted.(Handle), nil
}
