// SPDX-License-Identifier: MIT
// File: graph.go
// Role: Graph — the arena of Nodes plus its variable/parameter slot
// tables and root-output lists. One Graph instance corresponds to one
// "structural recording" in spec §3/§4.5; grouping of many such
// recordings into equivalence classes is graphhash's job, not this
// package's.

package nlgraph

import (
	"sync"

	"github.com/cpmech/gosl/chk"
	"github.com/katalvlaran/modeling/exprcore"
	"github.com/katalvlaran/modeling/modelerr"
)

// Graph is a directed acyclic graph of operation nodes, CSE-friendly
// (sharing is permitted: two outputs may reference the same child id).
type Graph struct {
	mu sync.RWMutex

	nodes []Node

	// varSlots[i] is the external VarIdx bound to slot i, in the order
	// first referenced while recording directly against this Graph.
	varSlots   []exprcore.VarIdx
	varSlotOf  map[exprcore.VarIdx]int
	paramSlots []float64 // parameter value bound at record time

	// Root outputs, in registration order.
	constraintOutputs []NodeID
	objectiveOutputs  []NodeID

	finalized bool
}

// NewGraph returns an empty graph. Most callers obtain a Graph through
// Enter/Current rather than constructing one directly.
func NewGraph() *Graph {
	return &Graph{varSlotOf: make(map[exprcore.VarIdx]int)}
}

func (g *Graph) newNode(n Node) NodeID {
	g.nodes = append(g.nodes, n)
	return NodeID(len(g.nodes) - 1)
}

// NodeAt returns a copy of the node at id. Panics (via chk-style internal
// assertion) if id is out of range — an out-of-range NodeID is always a
// programmer error (arena ids are never handed out except by this
// package), never user input.
func (g *Graph) NodeAt(id NodeID) Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if int(id) < 0 || int(id) >= len(g.nodes) {
		chk.Panic("nlgraph: node id %d out of range (arena has %d nodes)", id, len(g.nodes))
	}
	return g.nodes[id]
}

// NumNodes reports the current arena size.
func (g *Graph) NumNodes() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// NumVariableSlots / NumParameterSlots report this graph's own variable
// and parameter table sizes (the nx/np a compiled function expects).
func (g *Graph) NumVariableSlots() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.varSlots)
}

func (g *Graph) NumParameterSlots() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.paramSlots)
}

// VarSlots returns the external VarIdx bound to each slot, in slot order.
func (g *Graph) VarSlots() []exprcore.VarIdx {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]exprcore.VarIdx, len(g.varSlots))
	copy(out, g.varSlots)
	return out
}

// ParamValues returns the parameter values bound at record time, in slot
// order.
func (g *Graph) ParamValues() []float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]float64, len(g.paramSlots))
	copy(out, g.paramSlots)
	return out
}

// AddConstant creates a constant leaf node.
func (g *Graph) AddConstant(v float64) NodeID {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.newNode(Node{Kind: KindConstant, ConstValue: v})
}

// AddVariable folds an external VarIdx into the graph, reusing the same
// slot (and node, if already referenced) on repeat calls with the same
// VarIdx — this is the CSE-friendly sharing spec §3 permits.
func (g *Graph) AddVariable(v exprcore.VarIdx) NodeID {
	g.mu.Lock()
	defer g.mu.Unlock()
	if slot, ok := g.varSlotOf[v]; ok {
		// find (or recreate) the node for this slot; nodes are cheap,
		// scan from the end since variable nodes are usually referenced
		// again shortly after creation.
		for i := len(g.nodes) - 1; i >= 0; i-- {
			if g.nodes[i].Kind == KindVariable && g.nodes[i].VarSlot == slot {
				return NodeID(i)
			}
		}
		return g.newNode(Node{Kind: KindVariable, VarSlot: slot})
	}
	slot := len(g.varSlots)
	g.varSlots = append(g.varSlots, v)
	g.varSlotOf[v] = slot
	return g.newNode(Node{Kind: KindVariable, VarSlot: slot})
}

// AddParameter creates a fresh parameter slot bound to value at record
// time and returns its leaf node. Unlike variables, parameters are not
// deduplicated by value: each call is a new slot, matching spec's
// "Parameter(double-valued slot)" — one slot per distinct binding site.
func (g *Graph) AddParameter(value float64) NodeID {
	g.mu.Lock()
	defer g.mu.Unlock()
	slot := len(g.paramSlots)
	g.paramSlots = append(g.paramSlots, value)
	return g.newNode(Node{Kind: KindParameter, ParamSlot: slot})
}

// AddUnary creates a unary operator node.
func (g *Graph) AddUnary(op UnaryOpKind, child NodeID) NodeID {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.newNode(Node{Kind: KindUnary, UnaryOp: op, UnaryChild: child})
}

// AddBinary creates a binary operator node, collapsing adjacent Add/Mul
// into an n-ary node per spec §4.5 ("adjacent adds/muls collapse into
// the same N-ary node").
func (g *Graph) AddBinary(op BinaryOpKind, l, r NodeID) NodeID {
	g.mu.Lock()
	defer g.mu.Unlock()

	if op == BinAdd || op == BinMul {
		naryOp := NaryAdd
		if op == BinMul {
			naryOp = NaryMul
		}
		children := g.flattenNaryOperand(naryOp, l)
		children = append(children, g.flattenNaryOperand(naryOp, r)...)
		return g.newNode(Node{Kind: KindNary, NaryOp: naryOp, Children: children})
	}
	return g.newNode(Node{Kind: KindBinary, BinaryOp: op, Left: l, Right: r})
}

// flattenNaryOperand returns id's own children if id is already an n-ary
// node of the same op (collapsing), otherwise []NodeID{id}.
func (g *Graph) flattenNaryOperand(op NaryOpKind, id NodeID) []NodeID {
	n := g.nodes[id]
	if n.Kind == KindNary && n.NaryOp == op {
		return append([]NodeID(nil), n.Children...)
	}
	return []NodeID{id}
}

// AddTernary creates a ternary operator node (IfThenElse).
func (g *Graph) AddTernary(op TernaryOpKind, cond, then, els NodeID) NodeID {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.newNode(Node{Kind: KindTernary, TernaryOp: op, CondNode: cond, ThenNode: then, ElseNode: els})
}

// AddNary creates an n-ary node directly from an ordered child list,
// flattening any same-op children.
func (g *Graph) AddNary(op NaryOpKind, children ...NodeID) NodeID {
	g.mu.Lock()
	defer g.mu.Unlock()
	var flat []NodeID
	for _, c := range children {
		flat = append(flat, g.flattenNaryOperand(op, c)...)
	}
	return g.newNode(Node{Kind: KindNary, NaryOp: op, Children: flat})
}

// RegisterConstraintOutput appends root to the constraint-output list.
func (g *Graph) RegisterConstraintOutput(root NodeID) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.constraintOutputs = append(g.constraintOutputs, root)
	return len(g.constraintOutputs) - 1
}

// RegisterObjectiveOutput appends root to the objective-output list.
func (g *Graph) RegisterObjectiveOutput(root NodeID) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.objectiveOutputs = append(g.objectiveOutputs, root)
	return len(g.objectiveOutputs) - 1
}

// ConstraintOutputs / ObjectiveOutputs return the registered root lists.
func (g *Graph) ConstraintOutputs() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]NodeID(nil), g.constraintOutputs...)
}

func (g *Graph) ObjectiveOutputs() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]NodeID(nil), g.objectiveOutputs...)
}

// Finalize freezes the output lists and validates acyclicity (every
// node's children must have a strictly smaller NodeID, which holds by
// construction in this arena, so this is an O(n) sanity assertion, not a
// search). Safe to call multiple times.
func (g *Graph) Finalize() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.finalized {
		return nil
	}
	for id, n := range g.nodes {
		for _, c := range childrenOf(n) {
			if int(c) >= id {
				return modelerr.Graph(ErrCyclic)
			}
		}
	}
	g.finalized = true
	return nil
}

// ChildrenOf returns n's direct child node ids (empty for leaves), for
// packages (autodiff, codegen) that need to walk the arena themselves.
func ChildrenOf(n Node) []NodeID { return childrenOf(n) }

func childrenOf(n Node) []NodeID {
	switch n.Kind {
	case KindUnary:
		return []NodeID{n.UnaryChild}
	case KindBinary:
		return []NodeID{n.Left, n.Right}
	case KindTernary:
		return []NodeID{n.CondNode, n.ThenNode, n.ElseNode}
	case KindNary:
		return n.Children
	default:
		return nil
	}
}

// Eval evaluates root under the given variable/parameter valuation
// (dense arrays indexed by slot). Used by tests and by the reference
// (non-JIT) evaluation path when no compiled function is available yet.
func (g *Graph) Eval(root NodeID, x, p []float64) float64 {
	memo := make(map[NodeID]float64, len(g.nodes))
	var eval func(id NodeID) float64
	eval = func(id NodeID) float64 {
		if v, ok := memo[id]; ok {
			return v
		}
		n := g.nodes[id]
		v := evalNode(n, x, p, eval)
		memo[id] = v
		return v
	}
	return eval(root)
}
