// SPDX-License-Identifier: MIT
// File: clone.go
// Role: cloner copies a subgraph from a source Graph into a fresh
// destination Graph, memoized per source NodeID so shared subexpressions
// (CSE sharing the representative already carries, or sharing across
// several output roots) are copied once.

package autodiff

import "github.com/katalvlaran/modeling/nlgraph"

type cloner struct {
	src  *nlgraph.Graph
	dst  *nlgraph.Graph
	memo map[nlgraph.NodeID]nlgraph.NodeID

	// varClone/paramClone record the destination node id for each source
	// variable/parameter slot, keyed by slot index, so later passes can
	// look up "the clone of variable slot j" directly.
	varClone   map[int]nlgraph.NodeID
	paramClone map[int]nlgraph.NodeID
}

// newCloner builds a cloner and immediately pre-seeds dst's variable and
// parameter slots in src's own slot order, so every graph this package
// produces (f_graph, jacobian_graph, hessian_graph) shares IDENTICAL
// variable/parameter slot numbering with the representative — an
// evaluator only ever needs one xi/pi mapping per group, not one per
// artifact.
func newCloner(src, dst *nlgraph.Graph) *cloner {
	c := &cloner{
		src:        src,
		dst:        dst,
		memo:       make(map[nlgraph.NodeID]nlgraph.NodeID),
		varClone:   make(map[int]nlgraph.NodeID),
		paramClone: make(map[int]nlgraph.NodeID),
	}
	for slot, v := range src.VarSlots() {
		c.varClone[slot] = dst.AddVariable(v)
	}
	for _, v := range src.ParamValues() {
		id := dst.AddParameter(v)
		c.paramClone[len(c.paramClone)] = id
	}
	return c
}

func (c *cloner) clone(id nlgraph.NodeID) nlgraph.NodeID {
	if out, ok := c.memo[id]; ok {
		return out
	}
	n := c.src.NodeAt(id)
	var out nlgraph.NodeID
	switch n.Kind {
	case nlgraph.KindConstant:
		out = c.dst.AddConstant(n.ConstValue)
	case nlgraph.KindVariable:
		out = c.varClone[n.VarSlot] // pre-seeded by newCloner
	case nlgraph.KindParameter:
		out = c.paramClone[n.ParamSlot] // pre-seeded by newCloner
	case nlgraph.KindUnary:
		out = c.dst.AddUnary(n.UnaryOp, c.clone(n.UnaryChild))
	case nlgraph.KindBinary:
		out = c.dst.AddBinary(n.BinaryOp, c.clone(n.Left), c.clone(n.Right))
	case nlgraph.KindTernary:
		out = c.dst.AddTernary(n.TernaryOp, c.clone(n.CondNode), c.clone(n.ThenNode), c.clone(n.ElseNode))
	case nlgraph.KindNary:
		children := make([]nlgraph.NodeID, len(n.Children))
		for i, ch := range n.Children {
			children[i] = c.clone(ch)
		}
		out = c.dst.AddNary(n.NaryOp, children...)
	}
	c.memo[id] = out
	return out
}

func (c *cloner) cloneAll(roots []nlgraph.NodeID) []nlgraph.NodeID {
	out := make([]nlgraph.NodeID, len(roots))
	for i, r := range roots {
		out[i] = c.clone(r)
	}
	return out
}
