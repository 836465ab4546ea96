// SPDX-License-Identifier: MIT
// File: expr.go
// Role: the tagged-variant Expr interface (design note §9) and the single
// escalation checkpoint through which degree-2-exceeding operations reach
// the graph-recording package (nlgraph) without exprcore importing it.

package exprcore

// Expr is implemented by every value that can appear on either side of an
// operator: VarIdx, *SAF, *SQF, *ExprBuilder, and (via nlgraph) a graph
// node handle. Operators are free functions (Add, Sub, Mul, Div, Compare)
// that type-switch on this interface — this is the Go rendering of the
// "tagged variant" design note: one dispatch point per operator, instead
// of N*N overloaded methods.
type Expr interface {
	// ExprDegree reports the polynomial degree of the value as seen by
	// exprcore; graph handles report DegreeGraph regardless of their
	// actual nonlinear structure, since degree bookkeeping beyond 2 is
	// nlgraph's concern, not exprcore's.
	ExprDegree() Degree
}

// DegreeGraph is the sentinel degree reported by any Expr that is backed
// by an active nlgraph recording (i.e. everything nlgraph hands back).
const DegreeGraph Degree = -1

func (VarIdx) ExprDegree() Degree       { return 1 }
func (a *SAF) ExprDegree() Degree       { return 1 }
func (q *SQF) ExprDegree() Degree       { return 2 }
func (b *ExprBuilder) ExprDegree() Degree { return b.degree }

// GraphEscalator is implemented by nlgraph and registered once via
// RegisterGraphEscalator (typically from an init() in a package that
// imports both exprcore and nlgraph, or from nlgraph itself if it is
// safe to depend on exprcore only one-directionally — which it is: only
// nlgraph imports exprcore, never the reverse; this interface is how the
// dependency is inverted for the escalation call only).
//
// Active reports whether a graph-recording context is currently open on
// the calling goroutine (nlgraph's context stack is thread-local).
// Promote lifts a plain exprcore value (VarIdx/*SAF/*SQF/*ExprBuilder)
// into the active graph as an equivalent leaf/subgraph and returns the
// resulting Expr (a graph handle, which also implements Expr).
// BinaryOp and UnaryOp perform an operation once at least one operand is
// (or has been promoted to) a graph handle.
type GraphEscalator interface {
	Active() bool
	Promote(v Expr) (Expr, error)
	BinaryOp(op BinaryOp, l, r Expr) (Expr, error)
	UnaryOp(op UnaryOp, v Expr) (Expr, error)
}

// BinaryOp enumerates the binary operators exprcore can hand off to a
// graph escalator. Mirrors the subset of nlgraph.BinaryOpKind exprcore
// itself can produce (arithmetic + comparisons), without importing nlgraph.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpEq
	OpLeq
	OpGeq
)

// UnaryOp enumerates the unary operator exprcore can hand off (negation);
// richer unary ops (exp, log, ...) only ever originate inside nlgraph
// itself, never from exprcore values, so they are not listed here.
type UnaryOp int

const (
	OpNeg UnaryOp = iota
)

var escalator GraphEscalator

// RegisterGraphEscalator installs the active graph escalator. Called once
// at process start (by whichever package wires exprcore and nlgraph
// together, conventionally nlgraph's own init()). Safe to call multiple
// times in tests; the last registration wins.
func RegisterGraphEscalator(e GraphEscalator) { escalator = e }

// escalatorActive reports whether degree-exceeding operations should be
// handed off to the registered graph escalator instead of failing.
func escalatorActive() bool {
	return escalator != nil && escalator.Active()
}
