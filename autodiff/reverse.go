// SPDX-License-Identifier: MIT
// File: reverse.go
// Role: reverseDiff — the symbolic reverse-mode adjoint pass. It runs
// entirely within one Graph: root and every node it depends on already
// live there, so differentiating just means appending new nodes that
// compute d(root)/d(node) for each node, keyed by that node's own id.
//
// For each group it is called once per Jacobian row (root = one
// output), once on the Lagrangian sum, and once per Hessian row
// (root = one of the Lagrangian's first-derivative expressions) — the same
// primitive serves both because a first-derivative expression is itself
// just another subgraph of the same Graph.

package autodiff

import (
	"github.com/cpmech/gosl/chk"
	"github.com/katalvlaran/modeling/nlgraph"
)

// reverseDiff returns, for every node id that root's value actually
// depends on, the NodeID (newly appended to g) computing d(root)/d(id).
// Nodes root does not depend on are absent from the map — this absence
// IS the sparsity pattern (spec §9: symbolic, never value-based).
func reverseDiff(g *nlgraph.Graph, root nlgraph.NodeID) map[nlgraph.NodeID]nlgraph.NodeID {
	adjoint := make(map[nlgraph.NodeID]nlgraph.NodeID)

	add := func(id nlgraph.NodeID, contribution nlgraph.NodeID) {
		if existing, ok := adjoint[id]; ok {
			adjoint[id] = g.AddBinary(nlgraph.BinAdd, existing, contribution)
			return
		}
		adjoint[id] = contribution
	}

	add(root, g.AddConstant(1))

	for id := root; ; id-- {
		a, ok := adjoint[id]
		if ok {
			propagate(g, id, a, add)
		}
		if id == 0 {
			break
		}
	}
	return adjoint
}

// propagate distributes the accumulated adjoint a of node id to id's
// children, per the chain rule for id's operator kind.
func propagate(g *nlgraph.Graph, id nlgraph.NodeID, a nlgraph.NodeID, add func(nlgraph.NodeID, nlgraph.NodeID)) {
	n := g.NodeAt(id)
	switch n.Kind {
	case nlgraph.KindConstant, nlgraph.KindVariable, nlgraph.KindParameter:
		// Leaves: nothing further to propagate. Variable leaves are read
		// back directly out of the adjoint map by the caller.
	case nlgraph.KindUnary:
		local := unaryDeriv(g, id, n.UnaryOp, n.UnaryChild)
		add(n.UnaryChild, g.AddBinary(nlgraph.BinAzMul, a, local))
	case nlgraph.KindBinary:
		dl, dr, hasL, hasR := binaryDeriv(g, id, n.BinaryOp, n.Left, n.Right)
		if hasL {
			add(n.Left, g.AddBinary(nlgraph.BinAzMul, a, dl))
		}
		if hasR {
			add(n.Right, g.AddBinary(nlgraph.BinAzMul, a, dr))
		}
	case nlgraph.KindTernary:
		// IfThenElse: the adjoint flows to whichever branch is active at
		// evaluation time, zero through the other (spec §9's documented
		// discontinuity at the switching point).
		zero := g.AddConstant(0)
		add(n.ThenNode, g.AddTernary(nlgraph.TernIfThenElse, n.CondNode, a, zero))
		add(n.ElseNode, g.AddTernary(nlgraph.TernIfThenElse, n.CondNode, zero, a))
	case nlgraph.KindNary:
		switch n.NaryOp {
		case nlgraph.NaryAdd:
			for _, c := range n.Children {
				add(c, a)
			}
		case nlgraph.NaryMul:
			for k := range n.Children {
				other := productExcluding(g, n.Children, k)
				add(n.Children[k], g.AddBinary(nlgraph.BinAzMul, a, other))
			}
		}
	}
}

// unaryDeriv returns d(node)/d(child) for a unary op, reusing the node's
// own clone where the derivative equals the function's own value
// (exp, and the tan/sqrt identities) instead of re-synthesizing it.
func unaryDeriv(g *nlgraph.Graph, node nlgraph.NodeID, op nlgraph.UnaryOpKind, child nlgraph.NodeID) nlgraph.NodeID {
	one := g.AddConstant(1)
	switch op {
	case nlgraph.UnNeg:
		return g.AddConstant(-1)
	case nlgraph.UnAbs:
		// sign(x) = x>=0 ? 1 : -1, undefined exactly at 0 like most autodiff systems.
		geq0 := g.AddBinary(nlgraph.BinGeq, child, g.AddConstant(0))
		return g.AddTernary(nlgraph.TernIfThenElse, geq0, one, g.AddConstant(-1))
	case nlgraph.UnAcos:
		oneMinusX2 := g.AddBinary(nlgraph.BinSub, one, g.AddBinary(nlgraph.BinMul, child, child))
		return g.AddUnary(nlgraph.UnNeg, g.AddBinary(nlgraph.BinDiv, one, g.AddUnary(nlgraph.UnSqrt, oneMinusX2)))
	case nlgraph.UnAsin:
		oneMinusX2 := g.AddBinary(nlgraph.BinSub, one, g.AddBinary(nlgraph.BinMul, child, child))
		return g.AddBinary(nlgraph.BinDiv, one, g.AddUnary(nlgraph.UnSqrt, oneMinusX2))
	case nlgraph.UnAtan:
		onePlusX2 := g.AddBinary(nlgraph.BinAdd, one, g.AddBinary(nlgraph.BinMul, child, child))
		return g.AddBinary(nlgraph.BinDiv, one, onePlusX2)
	case nlgraph.UnCos:
		return g.AddUnary(nlgraph.UnNeg, g.AddUnary(nlgraph.UnSin, child))
	case nlgraph.UnExp:
		return node // d(exp(x))/dx == exp(x), already computed as this node.
	case nlgraph.UnLog:
		return g.AddBinary(nlgraph.BinDiv, one, child)
	case nlgraph.UnLog10:
		ln10 := g.AddConstant(2.302585092994046)
		return g.AddBinary(nlgraph.BinDiv, one, g.AddBinary(nlgraph.BinMul, child, ln10))
	case nlgraph.UnSin:
		return g.AddUnary(nlgraph.UnCos, child)
	case nlgraph.UnSqrt:
		return g.AddBinary(nlgraph.BinDiv, one, g.AddBinary(nlgraph.BinMul, g.AddConstant(2), node))
	case nlgraph.UnTan:
		return g.AddBinary(nlgraph.BinAdd, one, g.AddBinary(nlgraph.BinMul, node, node))
	}
	chk.Panic("autodiff: no differentiation rule for unary operator %v", op)
	return 0
}

// binaryDeriv returns d(node)/d(l) and d(node)/d(r), plus whether each
// side actually propagates (comparisons are a.e. zero-derivative and
// propagate neither).
func binaryDeriv(g *nlgraph.Graph, node nlgraph.NodeID, op nlgraph.BinaryOpKind, l, r nlgraph.NodeID) (dl, dr nlgraph.NodeID, hasL, hasR bool) {
	switch op {
	case nlgraph.BinAdd:
		one := g.AddConstant(1)
		return one, one, true, true
	case nlgraph.BinSub:
		return g.AddConstant(1), g.AddConstant(-1), true, true
	case nlgraph.BinMul, nlgraph.BinAzMul:
		return r, l, true, true
	case nlgraph.BinDiv:
		one := g.AddConstant(1)
		dlExpr := g.AddBinary(nlgraph.BinDiv, one, r)
		rr := g.AddBinary(nlgraph.BinMul, r, r)
		drExpr := g.AddUnary(nlgraph.UnNeg, g.AddBinary(nlgraph.BinDiv, l, rr))
		return dlExpr, drExpr, true, true
	case nlgraph.BinPow:
		rMinus1 := g.AddBinary(nlgraph.BinSub, r, g.AddConstant(1))
		dlExpr := g.AddBinary(nlgraph.BinMul, r, g.AddBinary(nlgraph.BinPow, l, rMinus1))
		drExpr := g.AddBinary(nlgraph.BinMul, node, g.AddUnary(nlgraph.UnLog, l))
		return dlExpr, drExpr, true, true
	case nlgraph.BinEq, nlgraph.BinNeq, nlgraph.BinLt, nlgraph.BinLeq, nlgraph.BinGt, nlgraph.BinGeq:
		return 0, 0, false, false
	}
	chk.Panic("autodiff: no differentiation rule for binary operator %v", op)
	return 0, 0, false, false
}

// productExcluding builds the product of children[i] for all i != k,
// using pairwise multiplication (AddBinary's own Mul-flattening collapses
// this back into a single n-ary node where that is the natural shape).
func productExcluding(g *nlgraph.Graph, children []nlgraph.NodeID, k int) nlgraph.NodeID {
	var acc nlgraph.NodeID
	started := false
	for i, c := range children {
		if i == k {
			continue
		}
		if !started {
			acc = c
			started = true
			continue
		}
		acc = g.AddBinary(nlgraph.BinMul, acc, c)
	}
	if !started {
		return g.AddConstant(1)
	}
	return acc
}
