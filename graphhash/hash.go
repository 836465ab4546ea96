// SPDX-License-Identifier: MIT
// File: hash.go
// Role: ShapeHash — a Merkle-style structural hash over the subgraph
// reachable from one output root, ignoring constant values and external
// variable identities (spec §4.6). Sharing is handled naturally: a
// node's hash depends only on its own content and its children's hashes,
// memoized per NodeID, so shared subgraphs are hashed once regardless of
// how many roots reference them.

package graphhash

import "github.com/katalvlaran/modeling/nlgraph"

// ShapeHash computes the structural hash of the subgraph rooted at root.
func ShapeHash(g *nlgraph.Graph, root nlgraph.NodeID) uint64 {
	memo := make(map[nlgraph.NodeID]uint64)
	return shapeHash(g, root, memo)
}

// ShapeHashMulti computes the combined structural hash of an ordered
// output vector (spec's ny>1 case: a group's constraint/objective roots
// sharing one graph), folding in each root's position so permuting the
// output order is a different shape.
func ShapeHashMulti(g *nlgraph.Graph, roots []nlgraph.NodeID) uint64 {
	memo := make(map[nlgraph.NodeID]uint64)
	h := fnvSeed
	h = mix(h, uint64(len(roots)))
	for i, r := range roots {
		h = mix(h, uint64(i))
		h = mix(h, shapeHash(g, r, memo))
	}
	return h
}

func shapeHash(g *nlgraph.Graph, id nlgraph.NodeID, memo map[nlgraph.NodeID]uint64) uint64 {
	if h, ok := memo[id]; ok {
		return h
	}
	n := g.NodeAt(id)

	h := fnvSeed
	h = mix(h, uint64(n.Kind))

	switch n.Kind {
	case nlgraph.KindConstant:
		// Constant VALUE is deliberately erased from the shape (spec
		// §4.6: "NOT the numeric values of constants"); only the fact
		// that a constant leaf exists here contributes to the shape.
	case nlgraph.KindVariable:
		h = mix(h, uint64(n.VarSlot))
	case nlgraph.KindParameter:
		h = mix(h, uint64(n.ParamSlot))
	case nlgraph.KindUnary:
		h = mix(h, uint64(n.UnaryOp))
		h = mix(h, shapeHash(g, n.UnaryChild, memo))
	case nlgraph.KindBinary:
		h = mix(h, uint64(n.BinaryOp))
		h = mix(h, shapeHash(g, n.Left, memo))
		h = mix(h, shapeHash(g, n.Right, memo))
	case nlgraph.KindTernary:
		h = mix(h, uint64(n.TernaryOp))
		h = mix(h, shapeHash(g, n.CondNode, memo))
		h = mix(h, shapeHash(g, n.ThenNode, memo))
		h = mix(h, shapeHash(g, n.ElseNode, memo))
	case nlgraph.KindNary:
		h = mix(h, uint64(n.NaryOp))
		h = mix(h, uint64(len(n.Children)))
		for _, c := range n.Children {
			h = mix(h, shapeHash(g, c, memo))
		}
	}
	memo[id] = h
	return h
}

const fnvSeed uint64 = 14695981039346656037

// mix folds v into the running hash h using FNV-1a's multiply-xor step.
func mix(h, v uint64) uint64 {
	h ^= v
	h *= 1099511628211
	return h
}
