// SPDX-License-Identifier: MIT
// File: ops.go
// Role: the public unary/binary/ternary/n-ary operator surface on Handle
// (spec §4.5), plus integer-power expansion (repeated squaring, or
// 1/x^|n| for negative n) so the Hessian pass later sees polynomial
// structure instead of an opaque pow(x,3.0) call.

package nlgraph

func unary(op UnaryOpKind, h Handle) Handle {
	return Handle{g: h.g, node: h.g.AddUnary(op, h.node)}
}

func Neg(h Handle) Handle    { return unary(UnNeg, h) }
func Abs(h Handle) Handle    { return unary(UnAbs, h) }
func Acos(h Handle) Handle   { return unary(UnAcos, h) }
func Asin(h Handle) Handle   { return unary(UnAsin, h) }
func Atan(h Handle) Handle   { return unary(UnAtan, h) }
func Cos(h Handle) Handle    { return unary(UnCos, h) }
func Exp(h Handle) Handle    { return unary(UnExp, h) }
func Log(h Handle) Handle    { return unary(UnLog, h) }
func Log10(h Handle) Handle  { return unary(UnLog10, h) }
func Sin(h Handle) Handle    { return unary(UnSin, h) }
func Sqrt(h Handle) Handle   { return unary(UnSqrt, h) }
func Tan(h Handle) Handle    { return unary(UnTan, h) }

func binary(op BinaryOpKind, l, r Handle) Handle {
	return Handle{g: l.g, node: l.g.AddBinary(op, l.node, r.node)}
}

func Add(l, r Handle) Handle { return binary(BinAdd, l, r) }
func Sub(l, r Handle) Handle { return binary(BinSub, l, r) }
func Mul(l, r Handle) Handle { return binary(BinMul, l, r) }
func Div(l, r Handle) Handle { return binary(BinDiv, l, r) }

// PowFloat lowers to a generic Binary(Pow) node (non-integer exponent).
func PowFloat(base Handle, exp Handle) Handle { return binary(BinPow, base, exp) }

// Pow implements the integer-power expansion rule from spec §4.5: for
// integer n>=0, repeated-squaring multiplications; for integer n<0,
// 1/(x**|n|). This is what lets the Hessian autodiff pass see
// structure-preserving polynomials instead of a pow(x,3.0) call.
func Pow(base Handle, n int) Handle {
	if n < 0 {
		return Div(constHandle(base.g, 1), Pow(base, -n))
	}
	if n == 0 {
		return constHandle(base.g, 1)
	}
	return powBySquaring(base, n)
}

func powBySquaring(base Handle, n int) Handle {
	if n == 1 {
		return base
	}
	half := powBySquaring(base, n/2)
	sq := Mul(half, half)
	if n%2 == 1 {
		return Mul(sq, base)
	}
	return sq
}

func constHandle(g *Graph, v float64) Handle {
	return Handle{g: g, node: g.AddConstant(v)}
}

// Eq, Neq, Lt, Leq, Gt, Geq are the graph-internal comparison operators
// (spec §4.5: "comparisons are operators inside a graph"); their result
// feeds IfElse as the switching condition.
// AzMul lowers to a Binary(AzMul) node: "a==0 -> 0 else a*b", exposed for
// callers (chiefly the autodiff pass) that build adjoint-accumulation
// expressions directly.
func AzMul(l, r Handle) Handle { return binary(BinAzMul, l, r) }

func Eq(l, r Handle) Handle  { return binary(BinEq, l, r) }
func Neq(l, r Handle) Handle { return binary(BinNeq, l, r) }
func Lt(l, r Handle) Handle  { return binary(BinLt, l, r) }
func Leq(l, r Handle) Handle { return binary(BinLeq, l, r) }
func Gt(l, r Handle) Handle  { return binary(BinGt, l, r) }
func Geq(l, r Handle) Handle { return binary(BinGeq, l, r) }

// IfElse lowers to a Ternary(IfThenElse) node. Derivatives of the result
// equal the active branch's derivative at the seed point and zero from
// the inactive branch — documented discontinuity, per spec §9's open
// question on comparison-derivative semantics; callers must avoid
// differentiating across the switching point.
func IfElse(cond, then, els Handle) Handle {
	return Handle{g: cond.g, node: cond.g.AddTernary(TernIfThenElse, cond.node, then.node, els.node)}
}

// NAdd / NMul build an n-ary node directly from an ordered list of
// operands, collapsing any same-op children (spec §4.5).
func NAdd(terms ...Handle) Handle {
	ids := make([]NodeID, len(terms))
	for i, t := range terms {
		ids[i] = t.node
	}
	return Handle{g: terms[0].g, node: terms[0].g.AddNary(NaryAdd, ids...)}
}

func NMul(terms ...Handle) Handle {
	ids := make([]NodeID, len(terms))
	for i, t := range terms {
		ids[i] = t.node
	}
	return Handle{g: terms[0].g, node: terms[0].g.AddNary(NaryMul, ids...)}
}

// AddConstant / AddParameter / AddVariable are the graph's own leaf
// constructors scoped to a specific Graph (used when a caller already
// holds a *Graph rather than going through Enter()'s Context).
func AddConstant(g *Graph, v float64) Handle {
	return Handle{g: g, node: g.AddConstant(v)}
}

func AddParameter(g *Graph, v float64) Handle {
	return Handle{g: g, node: g.AddParameter(v)}
}
