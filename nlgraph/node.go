// SPDX-License-Identifier: MIT
// File: node.go
// Role: NodeID, NodeKind, and the Node arena entry itself.

package nlgraph

import "github.com/katalvlaran/modeling/exprcore"

// NodeID is local to one Graph's arena; it is never meaningful across
// graphs (spec §3: "node ids are local to the graph").
type NodeID int32

// NodeKind tags the variant carried by a Node.
type NodeKind int

const (
	KindConstant NodeKind = iota
	KindVariable
	KindParameter
	KindUnary
	KindBinary
	KindTernary
	KindNary
)

// UnaryOpKind enumerates the unary operators spec §4.5 names.
type UnaryOpKind int

const (
	UnNeg UnaryOpKind = iota
	UnAbs
	UnAcos
	UnAsin
	UnAtan
	UnCos
	UnExp
	UnLog
	UnLog10
	UnSin
	UnSqrt
	UnTan
)

// BinaryOpKind enumerates the binary operators spec §4.5 names,
// including the comparison operators (legal only inside a graph).
type BinaryOpKind int

const (
	BinAdd BinaryOpKind = iota
	BinSub
	BinMul
	BinDiv
	BinPow
	BinEq
	BinNeq
	BinLt
	BinLeq
	BinGt
	BinGeq
	// BinAzMul is the "a==0 -> 0 else a*b" exact-zero-preserving product
	// (spec §4.8); autodiff-produced graphs use it when accumulating
	// adjoints so a structurally-zero incoming adjoint never lets a
	// locally-undefined derivative (e.g. +-Inf) contaminate the sum.
	BinAzMul
)

// TernaryOpKind enumerates ternary operators; currently only IfThenElse.
type TernaryOpKind int

const (
	TernIfThenElse TernaryOpKind = iota
)

// NaryOpKind enumerates the n-ary operators; adjacent Add/Mul nodes
// collapse into the same n-ary node (spec §4.5).
type NaryOpKind int

const (
	NaryAdd NaryOpKind = iota
	NaryMul
)

// Node is one arena entry. Only the fields relevant to Kind are
// meaningful; this mirrors a tagged union via a flat struct, the
// idiomatic Go rendering (no algebraic data types).
type Node struct {
	Kind NodeKind

	// KindConstant
	ConstValue float64

	// KindVariable: index into the graph's own variable-slot table
	// (spec §4.6: "the slot indices within the graph's own variable ...
	// table"), NOT the external exprcore.VarIdx. The mapping from slot
	// to external VarIdx is carried per-instance (see graphhash.Member).
	VarSlot int

	// KindParameter: index into the graph's own parameter-slot table.
	ParamSlot int

	// KindUnary
	UnaryOp    UnaryOpKind
	UnaryChild NodeID

	// KindBinary
	BinaryOp BinaryOpKind
	Left     NodeID
	Right    NodeID

	// KindTernary (only IfThenElse today)
	TernaryOp TernaryOpKind
	CondNode  NodeID
	ThenNode  NodeID
	ElseNode  NodeID

	// KindNary
	NaryOp   NaryOpKind
	Children []NodeID
}

// varIdxOf is used by Graph to remember which external exprcore.VarIdx a
// given VarSlot corresponds to for THIS graph (a graph built directly,
// not via instancing, has exactly one VarIdx per slot).
type varIdxOf = exprcore.VarIdx
