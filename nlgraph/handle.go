// SPDX-License-Identifier: MIT
// File: handle.go
// Role: Handle — the user-facing graph value, implementing
// exprcore.Expr so it can flow through exprcore's operator dispatch
// (via the registered GraphEscalator) as well as nlgraph's own richer
// operator set (exp, log, ifelse, ...).

package nlgraph

import "github.com/katalvlaran/modeling/exprcore"

// Handle is an opaque reference to one node in one Graph. It implements
// exprcore.Expr so exprcore's Add/Sub/Mul/Div/Compare free functions can
// accept it as an operand and hand off to this package's GraphEscalator.
type Handle struct {
	g    *Graph
	node NodeID
}

// ExprDegree always reports exprcore.DegreeGraph: once a value is graph-
// backed, exprcore no longer reasons about its polynomial degree.
func (h Handle) ExprDegree() exprcore.Degree { return exprcore.DegreeGraph }

// WrapNode builds a Handle over an existing NodeID, for packages (notably
// autodiff) that construct nodes directly via Graph's Add* methods and
// then want to use the operator sugar in this package to combine them.
func WrapNode(g *Graph, id NodeID) Handle { return Handle{g: g, node: id} }

// Graph returns the Graph this handle belongs to.
func (h Handle) Graph() *Graph { return h.g }

// Node returns the underlying NodeID.
func (h Handle) Node() NodeID { return h.node }

func (h Handle) sameGraph(o Handle) bool { return h.g == o.g }
