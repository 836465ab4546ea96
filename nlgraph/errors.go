// SPDX-License-Identifier: MIT
// Package nlgraph: sentinel error set.

package nlgraph

import "errors"

var (
	// ErrNoActiveContext indicates a graph-requiring operation was
	// attempted outside any Enter()'d scope on the calling goroutine.
	ErrNoActiveContext = errors.New("nlgraph: no active graph context")

	// ErrForeignNode indicates a node handle from one Graph was used
	// against a different Graph.
	ErrForeignNode = errors.New("nlgraph: node belongs to a different graph")

	// ErrCyclic indicates a constructed output set would introduce a
	// cycle (programmer error; the arena never allows back-references).
	ErrCyclic = errors.New("nlgraph: graph is not acyclic")

	// ErrUnknownOp indicates an internal op enum value outside its
	// declared range reached a traversal (programmer error).
	ErrUnknownOp = errors.New("nlgraph: unknown operator")
)
