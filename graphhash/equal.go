// SPDX-License-Identifier: MIT
// File: equal.go
// Role: StructurallyEqual — the exact isomorphism check run when two
// roots' ShapeHash values collide (spec §4.6: "candidates for the same
// group and must additionally pass a structural equality check").

package graphhash

import "github.com/katalvlaran/modeling/nlgraph"

// pairKey identifies one (id in g1, id in g2) comparison, memoized to
// keep the check linear in shared-subgraph DAGs instead of exponential.
type pairKey struct {
	a, b nlgraph.NodeID
}

// StructurallyEqual reports whether the subgraphs rooted at rootA (in gA)
// and rootB (in gB) are isomorphic under spec §4.6's definition: same
// node-type topology and the same variable/parameter slot shape,
// ignoring constant values and external variable identities.
func StructurallyEqual(gA *nlgraph.Graph, rootA nlgraph.NodeID, gB *nlgraph.Graph, rootB nlgraph.NodeID) bool {
	memo := make(map[pairKey]bool)
	return structEqual(gA, rootA, gB, rootB, memo)
}

// StructurallyEqualMulti is the ordered-output-vector counterpart to
// StructurallyEqual.
func StructurallyEqualMulti(gA *nlgraph.Graph, rootsA []nlgraph.NodeID, gB *nlgraph.Graph, rootsB []nlgraph.NodeID) bool {
	if len(rootsA) != len(rootsB) {
		return false
	}
	memo := make(map[pairKey]bool)
	for i := range rootsA {
		if !structEqual(gA, rootsA[i], gB, rootsB[i], memo) {
			return false
		}
	}
	return true
}

func structEqual(gA *nlgraph.Graph, a nlgraph.NodeID, gB *nlgraph.Graph, b nlgraph.NodeID, memo map[pairKey]bool) bool {
	key := pairKey{a, b}
	if v, ok := memo[key]; ok {
		return v
	}
	// Optimistically assume equal while recursing, to break cycles in
	// degenerate inputs; the arena is acyclic by construction so this
	// never masks a real mismatch, it only prevents infinite recursion
	// on diamond-shaped shared subgraphs.
	memo[key] = true

	na, nb := gA.NodeAt(a), gB.NodeAt(b)
	ok := equalShape(na, nb, gA, gB, memo)
	memo[key] = ok
	return ok
}

func equalShape(na, nb nlgraph.Node, gA, gB *nlgraph.Graph, memo map[pairKey]bool) bool {
	if na.Kind != nb.Kind {
		return false
	}
	switch na.Kind {
	case nlgraph.KindConstant:
		return true
	case nlgraph.KindVariable:
		return na.VarSlot == nb.VarSlot
	case nlgraph.KindParameter:
		return na.ParamSlot == nb.ParamSlot
	case nlgraph.KindUnary:
		return na.UnaryOp == nb.UnaryOp && structEqual(gA, na.UnaryChild, gB, nb.UnaryChild, memo)
	case nlgraph.KindBinary:
		return na.BinaryOp == nb.BinaryOp &&
			structEqual(gA, na.Left, gB, nb.Left, memo) &&
			structEqual(gA, na.Right, gB, nb.Right, memo)
	case nlgraph.KindTernary:
		return na.TernaryOp == nb.TernaryOp &&
			structEqual(gA, na.CondNode, gB, nb.CondNode, memo) &&
			structEqual(gA, na.ThenNode, gB, nb.ThenNode, memo) &&
			structEqual(gA, na.ElseNode, gB, nb.ElseNode, memo)
	case nlgraph.KindNary:
		if na.NaryOp != nb.NaryOp || len(na.Children) != len(nb.Children) {
			return false
		}
		for i := range na.Children {
			if !structEqual(gA, na.Children[i], gB, nb.Children[i], memo) {
				return false
			}
		}
		return true
	}
	return false
}
