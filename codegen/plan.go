// SPDX-License-Identifier: MIT
// File: plan.go
// Role: plan — the node-visitation order shared by both backends: every
// node reachable from any root, visited in increasing NodeID order
// (already bottom-up, since the arena only ever references smaller
// ids), so each node's children are always emitted before it is.

package codegen

import "github.com/katalvlaran/modeling/nlgraph"

type plan struct {
	order []nlgraph.NodeID
}

func buildPlan(g *nlgraph.Graph, roots []nlgraph.NodeID) plan {
	n := g.NumNodes()
	reachable := make([]bool, n)

	var mark func(id nlgraph.NodeID)
	mark = func(id nlgraph.NodeID) {
		if reachable[id] {
			return
		}
		reachable[id] = true
		for _, c := range nlgraph.ChildrenOf(g.NodeAt(id)) {
			mark(c)
		}
	}
	for _, r := range roots {
		mark(r)
	}

	order := make([]nlgraph.NodeID, 0, n)
	for id := 0; id < n; id++ {
		if reachable[id] {
			order = append(order, nlgraph.NodeID(id))
		}
	}
	return plan{order: order}
}
