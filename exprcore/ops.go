// SPDX-License-Identifier: MIT
// File: ops.go
// Role: degree-closure arithmetic (+, -, *, /) and comparison sugar (==,
// <=, >=) over VarIdx/SAF/SQF/ExprBuilder, with single-point escalation
// to an active graph context when the result would exceed degree 2.
//
// Complexity: every operator here is O(deg(a)+deg(b)) to build the
// uncanonicalized result; canonicalization (sorting/combining) is left to
// the caller via SAF.Canonicalize/SQF.Canonicalize, matching spec §4.1's
// "canonicalize is explicit, not implicit on every op" contract.

package exprcore

import "github.com/katalvlaran/modeling/modelerr"

// toSAF lifts a degree-<=1 Expr to an SAF. Returns ok=false for degree-2
// or graph-backed values.
func toSAF(e Expr) (*SAF, bool) {
	switch v := e.(type) {
	case VarIdx:
		return SingleTerm(v), true
	case *SAF:
		return v, true
	case *ExprBuilder:
		if v.degree <= 1 {
			return v.toSAFUnchecked(), true
		}
	}
	return nil, false
}

// toSQF lifts a degree-<=2 Expr to an SQF.
func toSQF(e Expr) (*SQF, bool) {
	switch v := e.(type) {
	case VarIdx:
		s, _ := NewSQF(nil, nil, nil, SingleTerm(v))
		return s, true
	case *SAF:
		s, _ := NewSQF(nil, nil, nil, v)
		return s, true
	case *SQF:
		return v, true
	case *ExprBuilder:
		if v.degree <= 2 {
			return v.toSQFUnchecked(), true
		}
	}
	return nil, false
}

func scalarOf(e Expr) (float64, bool) {
	switch v := e.(type) {
	case *SAF:
		if len(v.Variables) == 0 {
			return v.Constant, true
		}
	case *SQF:
		if len(v.Variable1s) == 0 && len(v.AffinePart.Variables) == 0 {
			return v.AffinePart.Constant, true
		}
	}
	return 0, false
}

// Add returns a+b, escalating to the active graph if both operands are
// degree-compatible-but-one-is-a-graph-handle, or failing with
// ErrDegreeExceeded if neither applies (Add never itself exceeds degree 2,
// since degree(a+b) = max(deg a, deg b), but a or b may already be a graph
// handle that does not satisfy toSAF/toSQF).
func Add(a, b Expr) (Expr, error) {
	if isGraphHandle(a) || isGraphHandle(b) {
		return escalateBinary(OpAdd, a, b)
	}
	if qa, ok := toSQF(a); ok {
		if qb, ok2 := toSQF(b); ok2 {
			return addSQF(qa, qb), nil
		}
	}
	return nil, modelerr.User(ErrDegreeExceeded)
}

func addSQF(a, b *SQF) *SQF {
	out := a.Clone()
	out.Variable1s = append(out.Variable1s, b.Variable1s...)
	out.Variable2s = append(out.Variable2s, b.Variable2s...)
	out.Coefficients = append(out.Coefficients, b.Coefficients...)
	out.AffinePart.Variables = append(out.AffinePart.Variables, b.AffinePart.Variables...)
	out.AffinePart.Coefficients = append(out.AffinePart.Coefficients, b.AffinePart.Coefficients...)
	out.AffinePart.Constant += b.AffinePart.Constant
	return out
}

// Sub returns a-b (same closure rule as Add).
func Sub(a, b Expr) (Expr, error) {
	neg, err := Neg(b)
	if err != nil {
		return nil, err
	}
	return Add(a, neg)
}

// Neg returns -a.
func Neg(a Expr) (Expr, error) {
	if isGraphHandle(a) {
		return escalateUnary(OpNeg, a)
	}
	q, ok := toSQF(a)
	if !ok {
		return nil, modelerr.User(ErrDegreeExceeded)
	}
	out := q.Clone()
	for i := range out.Coefficients {
		out.Coefficients[i] = -out.Coefficients[i]
	}
	for i := range out.AffinePart.Coefficients {
		out.AffinePart.Coefficients[i] = -out.AffinePart.Coefficients[i]
	}
	out.AffinePart.Constant = -out.AffinePart.Constant
	return out, nil
}

// Mul returns a*b when deg(a)+deg(b) <= 2; otherwise it escalates to the
// active graph context (spec §4.1 closure rule), or fails with
// ErrDegreeExceeded if no context is active.
func Mul(a, b Expr) (Expr, error) {
	if isGraphHandle(a) || isGraphHandle(b) {
		return escalateBinary(OpMul, a, b)
	}
	ka, oka := scalarOf(a)
	kb, okb := scalarOf(b)
	switch {
	case oka && okb:
		return ConstSAF(ka * kb), nil
	case oka:
		return scaleExpr(b, ka)
	case okb:
		return scaleExpr(a, kb)
	}
	// both non-scalar: degree sums. Only legal in-grade if result <= 2.
	da, db := degreeOfNonScalar(a), degreeOfNonScalar(b)
	if da+db > 2 {
		if escalatorActive() {
			return escalateBinary(OpMul, a, b)
		}
		return nil, modelerr.User(ErrDegreeExceeded)
	}
	// da==db==1: affine * affine -> quadratic.
	sa, _ := toSAF(a)
	sb, _ := toSAF(b)
	return mulAffine(sa, sb), nil
}

func degreeOfNonScalar(e Expr) int {
	if _, ok := toSAF(e); ok {
		return 1
	}
	return 2
}

func scaleExpr(e Expr, k float64) (Expr, error) {
	q, ok := toSQF(e)
	if !ok {
		return nil, modelerr.User(ErrDegreeExceeded)
	}
	out := q.Clone()
	for i := range out.Coefficients {
		out.Coefficients[i] *= k
	}
	for i := range out.AffinePart.Coefficients {
		out.AffinePart.Coefficients[i] *= k
	}
	out.AffinePart.Constant *= k
	return out, nil
}

func mulAffine(a, b *SAF) *SQF {
	out := &SQF{AffinePart: ConstSAF(0)}
	// (sum ai*xi + ca) * (sum bj*xj + cb)
	for i, va := range a.Variables {
		for j, vb := range b.Variables {
			out.Variable1s = append(out.Variable1s, va)
			out.Variable2s = append(out.Variable2s, vb)
			out.Coefficients = append(out.Coefficients, a.Coefficients[i]*b.Coefficients[j])
		}
	}
	for i, va := range a.Variables {
		out.AffinePart.Variables = append(out.AffinePart.Variables, va)
		out.AffinePart.Coefficients = append(out.AffinePart.Coefficients, a.Coefficients[i]*b.Constant)
	}
	for j, vb := range b.Variables {
		out.AffinePart.Variables = append(out.AffinePart.Variables, vb)
		out.AffinePart.Coefficients = append(out.AffinePart.Coefficients, b.Coefficients[j]*a.Constant)
	}
	out.AffinePart.Constant = a.Constant * b.Constant
	return out
}

// Div returns a/b. b must be a nonzero constant unless a graph context is
// active, in which case a non-constant divisor escalates to a graph Div
// node (matching spec's NonLinearDivide rule: "division by a non-constant
// -> NonLinearDivide" outside a graph).
func Div(a, b Expr) (Expr, error) {
	if isGraphHandle(a) || isGraphHandle(b) {
		return escalateBinary(OpDiv, a, b)
	}
	k, ok := scalarOf(b)
	if !ok {
		if escalatorActive() {
			return escalateBinary(OpDiv, a, b)
		}
		return nil, modelerr.User(ErrNonLinearDivide)
	}
	if k == 0 {
		return nil, modelerr.User(ErrNonLinearDivide)
	}
	return scaleExpr(a, 1/k)
}

// Compare builds a ComparisonConstraint unconditionally: the stored lhs is
// always left-minus-right, rhs is always 0 (spec §4.1).
func Compare(sense Sense, a, b Expr) (*ComparisonConstraint, error) {
	diff, err := Sub(a, b)
	if err != nil {
		return nil, err
	}
	q, ok := toSQF(diff)
	if !ok {
		return nil, modelerr.User(ErrDegreeExceeded)
	}
	return &ComparisonConstraint{Sense: sense, Lhs: q.Canonicalize(), Rhs: 0}, nil
}

// isGraphHandle reports whether e is backed by nlgraph (detected via the
// DegreeGraph sentinel every graph handle reports).
func isGraphHandle(e Expr) bool {
	return e != nil && e.ExprDegree() == DegreeGraph
}

func escalateBinary(op BinaryOp, a, b Expr) (Expr, error) {
	if escalator == nil {
		return nil, modelerr.User(ErrDegreeExceeded)
	}
	return escalator.BinaryOp(op, a, b)
}

func escalateUnary(op UnaryOp, a Expr) (Expr, error) {
	if escalator == nil {
		return nil, modelerr.User(ErrDegreeExceeded)
	}
	return escalator.UnaryOp(op, a)
}
