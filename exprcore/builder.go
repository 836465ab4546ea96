// SPDX-License-Identifier: MIT
// File: builder.go
// Role: ExprBuilder, the mutable accumulator that absorbs +, -, *, / with
// scalars/SAF/SQF and tracks its own degree, capped at 2. Grounded on
// builder/api.go's "single orchestrator over an internal, unexported
// config" shape, adapted from graph construction to polynomial accumulation.

package exprcore

import "github.com/katalvlaran/modeling/modelerr"

// ExprBuilder is a mutable accumulator. Unlike SAF/SQF it is not a value
// type: callers build one up with AddInPlace/SubInPlace/MulInPlace/
// DivInPlace (the Go rendering of +=, -=, *=, /=, since Go has no
// operator overloading) and read it out with ToSAF/ToSQF.
type ExprBuilder struct {
	quad   *SQF
	degree Degree
}

// NewExprBuilder returns an empty accumulator (degree 0, value 0).
func NewExprBuilder() *ExprBuilder {
	return &ExprBuilder{quad: &SQF{AffinePart: ConstSAF(0)}, degree: 0}
}

func (b *ExprBuilder) toSAFUnchecked() *SAF {
	return b.quad.AffinePart.Clone()
}

func (b *ExprBuilder) toSQFUnchecked() *SQF {
	return b.quad.Clone()
}

// ToSAF materializes the accumulator as an SAF. Fails if degree > 1.
func (b *ExprBuilder) ToSAF() (*SAF, error) {
	if b.degree > 1 {
		return nil, modelerr.User(ErrDegreeExceeded)
	}
	return b.toSAFUnchecked(), nil
}

// ToSQF materializes the accumulator as an SQF (always legal: degree<=2).
func (b *ExprBuilder) ToSQF() *SQF {
	return b.toSQFUnchecked()
}

// Degree reports the current accumulated degree.
func (b *ExprBuilder) Degree() Degree { return b.degree }

func degreeOf(e Expr) Degree {
	if isGraphHandle(e) {
		return DegreeGraph
	}
	switch v := e.(type) {
	case VarIdx:
		_ = v
		return 1
	case *SAF:
		return 1
	case *SQF:
		return 2
	case *ExprBuilder:
		return v.degree
	}
	return 2
}

// AddInPlace accumulates b += other (Go rendering of the source
// language's "+=" augmented assignment, spec §4.1/§4.4).
func (b *ExprBuilder) AddInPlace(other Expr) error {
	sum, err := Add(Expr(b.quad), other)
	if err != nil {
		return err
	}
	q, ok := toSQF(sum)
	if !ok {
		return modelerr.User(ErrDegreeExceeded)
	}
	b.quad = q
	if d := degreeOf(other); d > b.degree {
		b.degree = d
	}
	return nil
}

// SubInPlace accumulates b -= other.
func (b *ExprBuilder) SubInPlace(other Expr) error {
	neg, err := Neg(other)
	if err != nil {
		return err
	}
	return b.AddInPlace(neg)
}

// MulInPlace accumulates b *= other (other must be a constant, or the
// result must stay within degree 2).
func (b *ExprBuilder) MulInPlace(other Expr) error {
	prod, err := Mul(Expr(b.quad), other)
	if err != nil {
		return err
	}
	q, ok := toSQF(prod)
	if !ok {
		return modelerr.User(ErrDegreeExceeded)
	}
	b.quad = q
	if k, ok := scalarOf(other); !ok {
		_ = k
		b.degree += degreeOf(other)
		if b.degree > 2 {
			b.degree = 2
		}
	}
	return nil
}

// DivInPlace accumulates b /= other (other must be a nonzero constant
// outside a graph context).
func (b *ExprBuilder) DivInPlace(other Expr) error {
	quot, err := Div(Expr(b.quad), other)
	if err != nil {
		return err
	}
	q, ok := toSQF(quot)
	if !ok {
		return modelerr.User(ErrDegreeExceeded)
	}
	b.quad = q
	return nil
}
