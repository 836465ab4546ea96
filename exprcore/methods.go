// SPDX-License-Identifier: MIT
// File: methods.go
// Role: per-type method sugar over the free-function operators in ops.go,
// so callers write x.Add(y) / x.Leq(10) instead of exprcore.Add(x, y).
// Every method here is a one-line forward to the corresponding free
// function; the dispatch logic itself lives in exactly one place (ops.go),
// per design note §9.

package exprcore

func (v VarIdx) Add(other Expr) (Expr, error) { return Add(v, other) }
func (v VarIdx) Sub(other Expr) (Expr, error) { return Sub(v, other) }
func (v VarIdx) Mul(other Expr) (Expr, error) { return Mul(v, other) }
func (v VarIdx) Div(other Expr) (Expr, error) { return Div(v, other) }
func (v VarIdx) Neg() (Expr, error)           { return Neg(v) }
func (v VarIdx) Eq(other Expr) (*ComparisonConstraint, error)  { return Compare(Eq, v, other) }
func (v VarIdx) Leq(other Expr) (*ComparisonConstraint, error) { return Compare(Leq, v, other) }
func (v VarIdx) Geq(other Expr) (*ComparisonConstraint, error) { return Compare(Geq, v, other) }

func (a *SAF) Add(other Expr) (Expr, error) { return Add(a, other) }
func (a *SAF) Sub(other Expr) (Expr, error) { return Sub(a, other) }
func (a *SAF) Mul(other Expr) (Expr, error) { return Mul(a, other) }
func (a *SAF) Div(other Expr) (Expr, error) { return Div(a, other) }
func (a *SAF) Neg() (Expr, error)           { return Neg(a) }
func (a *SAF) Eq(other Expr) (*ComparisonConstraint, error)  { return Compare(Eq, a, other) }
func (a *SAF) Leq(other Expr) (*ComparisonConstraint, error) { return Compare(Leq, a, other) }
func (a *SAF) Geq(other Expr) (*ComparisonConstraint, error) { return Compare(Geq, a, other) }

func (q *SQF) Add(other Expr) (Expr, error) { return Add(q, other) }
func (q *SQF) Sub(other Expr) (Expr, error) { return Sub(q, other) }
func (q *SQF) Mul(other Expr) (Expr, error) { return Mul(q, other) }
func (q *SQF) Div(other Expr) (Expr, error) { return Div(q, other) }
func (q *SQF) Neg() (Expr, error)           { return Neg(q) }
func (q *SQF) Eq(other Expr) (*ComparisonConstraint, error)  { return Compare(Eq, q, other) }
func (q *SQF) Leq(other Expr) (*ComparisonConstraint, error) { return Compare(Leq, q, other) }
func (q *SQF) Geq(other Expr) (*ComparisonConstraint, error) { return Compare(Geq, q, other) }

func (b *ExprBuilder) Add(other Expr) (Expr, error) { return Add(Expr(b.quad), other) }
func (b *ExprBuilder) Sub(other Expr) (Expr, error) { return Sub(Expr(b.quad), other) }
func (b *ExprBuilder) Mul(other Expr) (Expr, error) { return Mul(Expr(b.quad), other) }
func (b *ExprBuilder) Div(other Expr) (Expr, error) { return Div(Expr(b.quad), other) }
func (b *ExprBuilder) Neg() (Expr, error)           { return Neg(Expr(b.quad)) }
func (b *ExprBuilder) Eq(other Expr) (*ComparisonConstraint, error) {
	return Compare(Eq, Expr(b.quad), other)
}
func (b *ExprBuilder) Leq(other Expr) (*ComparisonConstraint, error) {
	return Compare(Leq, Expr(b.quad), other)
}
func (b *ExprBuilder) Geq(other Expr) (*ComparisonConstraint, error) {
	return Compare(Geq, Expr(b.quad), other)
}
