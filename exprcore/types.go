// SPDX-License-Identifier: MIT
// File: types.go
// Role: core value types — VarIdx, SAF, SQF, Domain, Sense, ComparisonConstraint.
// Policy: value types only; no mutation of shared state; canonicalize is the
// only place that reorders/combines terms, and it always returns a fresh copy.

package exprcore

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/katalvlaran/modeling/modelerr"
)

// VarIdx is a stable, opaque handle to a variable. It is issued by the
// indexer package (Model.AddVariable) and is never reused once deleted.
type VarIdx int32

// Domain classifies the admissible values of a variable.
type Domain int

const (
	Continuous Domain = iota
	Integer
	Binary
	SemiContinuous
)

func (d Domain) String() string {
	switch d {
	case Continuous:
		return "Continuous"
	case Integer:
		return "Integer"
	case Binary:
		return "Binary"
	case SemiContinuous:
		return "SemiContinuous"
	default:
		return "Unknown"
	}
}

// Sense is the relational operator produced by a comparison.
type Sense int

const (
	Eq Sense = iota
	Leq
	Geq
)

// Degree reports the polynomial degree of a value: 0 for a pure constant,
// 1 for a VarIdx/SAF, 2 for a SQF. ExprBuilder tracks its own degree.
type Degree int

// SAF is a ScalarAffineFunction: sum(coefficients[i] * variables[i]) + constant.
// variables and coefficients are parallel sequences; order is build order
// until Canonicalize is called.
type SAF struct {
	Variables    []VarIdx
	Coefficients []float64
	Constant     float64
}

// NewSAF constructs an SAF from parallel slices, copying them defensively.
func NewSAF(vars []VarIdx, coefs []float64, constant float64) (*SAF, error) {
	if len(vars) != len(coefs) {
		return nil, modelerr.User(ErrLengthMismatch)
	}
	v := make([]VarIdx, len(vars))
	c := make([]float64, len(coefs))
	copy(v, vars)
	copy(c, coefs)
	return &SAF{Variables: v, Coefficients: c, Constant: constant}, nil
}

// SingleTerm builds the SAF "1*v".
func SingleTerm(v VarIdx) *SAF {
	return &SAF{Variables: []VarIdx{v}, Coefficients: []float64{1}, Constant: 0}
}

// ConstSAF builds the constant-only SAF "k".
func ConstSAF(k float64) *SAF {
	return &SAF{Variables: nil, Coefficients: nil, Constant: k}
}

// Clone returns a deep copy.
func (a *SAF) Clone() *SAF {
	v := make([]VarIdx, len(a.Variables))
	c := make([]float64, len(a.Coefficients))
	copy(v, a.Variables)
	copy(c, a.Coefficients)
	return &SAF{Variables: v, Coefficients: c, Constant: a.Constant}
}

// Eval evaluates the SAF at the given variable valuation.
func (a *SAF) Eval(x func(VarIdx) float64) float64 {
	sum := a.Constant
	for i, v := range a.Variables {
		sum += a.Coefficients[i] * x(v)
	}
	return sum
}

// Canonicalize returns a new SAF with variables sorted strictly ascending,
// duplicate coefficients summed, and zero coefficients dropped. Deterministic.
func (a *SAF) Canonicalize() *SAF {
	type kv struct {
		v VarIdx
		c float64
	}
	pairs := make([]kv, len(a.Variables))
	for i := range a.Variables {
		pairs[i] = kv{a.Variables[i], a.Coefficients[i]}
	}
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].v < pairs[j].v })

	out := &SAF{Constant: a.Constant}
	i := 0
	for i < len(pairs) {
		j := i + 1
		sum := pairs[i].c
		for j < len(pairs) && pairs[j].v == pairs[i].v {
			sum += pairs[j].c
			j++
		}
		if sum != 0 {
			out.Variables = append(out.Variables, pairs[i].v)
			out.Coefficients = append(out.Coefficients, sum)
		}
		i = j
	}
	if !out.IsCanonical() {
		chk.Panic("exprcore: SAF.Canonicalize postcondition violated: variables not strictly increasing")
	}
	return out
}

// IsCanonical reports whether Variables is strictly increasing (spec §8
// invariant), without mutating the receiver.
func (a *SAF) IsCanonical() bool {
	for i := 1; i < len(a.Variables); i++ {
		if a.Variables[i-1] >= a.Variables[i] {
			return false
		}
	}
	return true
}

// varPair is an ordered (v1<=v2) variable pair used by SQF.
type varPair struct {
	V1, V2 VarIdx
}

func makePair(a, b VarIdx) varPair {
	if a <= b {
		return varPair{a, b}
	}
	return varPair{b, a}
}

// SQF is a ScalarQuadraticFunction:
// sum(coefficients[i] * variable_1s[i] * variable_2s[i]) + affine_part.
type SQF struct {
	Variable1s   []VarIdx
	Variable2s   []VarIdx
	Coefficients []float64
	AffinePart   *SAF
}

// NewSQF constructs an SQF from parallel quadratic-term slices plus an
// affine part (may be nil, treated as the zero SAF).
func NewSQF(v1, v2 []VarIdx, coefs []float64, affine *SAF) (*SQF, error) {
	if len(v1) != len(v2) || len(v1) != len(coefs) {
		return nil, modelerr.User(ErrLengthMismatch)
	}
	a := affine
	if a == nil {
		a = ConstSAF(0)
	}
	q := &SQF{
		Variable1s:   append([]VarIdx(nil), v1...),
		Variable2s:   append([]VarIdx(nil), v2...),
		Coefficients: append([]float64(nil), coefs...),
		AffinePart:   a.Clone(),
	}
	return q, nil
}

// Clone returns a deep copy.
func (q *SQF) Clone() *SQF {
	return &SQF{
		Variable1s:   append([]VarIdx(nil), q.Variable1s...),
		Variable2s:   append([]VarIdx(nil), q.Variable2s...),
		Coefficients: append([]float64(nil), q.Coefficients...),
		AffinePart:   q.AffinePart.Clone(),
	}
}

// Eval evaluates the SQF at the given variable valuation.
func (q *SQF) Eval(x func(VarIdx) float64) float64 {
	sum := q.AffinePart.Eval(x)
	for i := range q.Variable1s {
		sum += q.Coefficients[i] * x(q.Variable1s[i]) * x(q.Variable2s[i])
	}
	return sum
}

// Canonicalize returns a new SQF with (v1,v2) normalized to v1<=v2, pairs
// sorted lexicographically, duplicates combined, zeros dropped, and the
// affine part canonicalized.
func (q *SQF) Canonicalize() *SQF {
	type kv struct {
		p varPair
		c float64
	}
	pairs := make([]kv, len(q.Variable1s))
	for i := range q.Variable1s {
		pairs[i] = kv{makePair(q.Variable1s[i], q.Variable2s[i]), q.Coefficients[i]}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		if pairs[i].p.V1 != pairs[j].p.V1 {
			return pairs[i].p.V1 < pairs[j].p.V1
		}
		return pairs[i].p.V2 < pairs[j].p.V2
	})

	out := &SQF{AffinePart: q.AffinePart.Canonicalize()}
	i := 0
	for i < len(pairs) {
		j := i + 1
		sum := pairs[i].c
		for j < len(pairs) && pairs[j].p == pairs[i].p {
			sum += pairs[j].c
			j++
		}
		if sum != 0 {
			out.Variable1s = append(out.Variable1s, pairs[i].p.V1)
			out.Variable2s = append(out.Variable2s, pairs[i].p.V2)
			out.Coefficients = append(out.Coefficients, sum)
		}
		i = j
	}
	if !out.IsCanonical() {
		chk.Panic("exprcore: SQF.Canonicalize postcondition violated: pairs not in canonical order")
	}
	return out
}

// IsCanonical reports whether (v1,v2) pairs satisfy v1<=v2 and are
// strictly increasing lexicographically, and the affine part is canonical.
func (q *SQF) IsCanonical() bool {
	if !q.AffinePart.IsCanonical() {
		return false
	}
	for i := range q.Variable1s {
		if q.Variable1s[i] > q.Variable2s[i] {
			return false
		}
	}
	for i := 1; i < len(q.Variable1s); i++ {
		prev := varPair{q.Variable1s[i-1], q.Variable2s[i-1]}
		cur := varPair{q.Variable1s[i], q.Variable2s[i]}
		if !(prev.V1 < cur.V1 || (prev.V1 == cur.V1 && prev.V2 < cur.V2)) {
			return false
		}
	}
	return true
}

// ComparisonConstraint is the value produced by the overloaded ==, <=, >=
// sugar (see ops.go); it is consumed by Model.Add*Constraint.
type ComparisonConstraint struct {
	Sense Sense
	Lhs   *SQF // always the left-minus-right form; may have zero quadratic terms
	Rhs   float64
}
