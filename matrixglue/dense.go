// SPDX-License-Identifier: MIT
// File: dense.go
// Role: bulk linear/quadratic constraint construction from a dense
// gonum/mat.Dense, one exprcore.SAF/SQF per row — the row-at-a-time
// assembly idiom of matrix/impl_dense.go, generalized from building a
// core.Graph's adjacency rows to building exprcore polynomial rows.

package matrixglue

import (
	"math"

	"github.com/katalvlaran/modeling/exprcore"
	"github.com/katalvlaran/modeling/modelerr"
	"gonum.org/v1/gonum/mat"
)

// BuildLinearRows builds one *exprcore.SAF per row of A (A[i] . vars),
// in row order. len(vars) must equal A's column count.
func BuildLinearRows(a *mat.Dense, vars []exprcore.VarIdx) ([]*exprcore.SAF, error) {
	r, c := a.Dims()
	if c != len(vars) {
		return nil, modelerr.User(ErrDimensionMismatch)
	}
	rows := make([]*exprcore.SAF, r)
	for i := 0; i < r; i++ {
		coefs := make([]float64, c)
		for j := 0; j < c; j++ {
			coefs[j] = a.At(i, j)
		}
		saf, err := exprcore.NewSAF(append([]exprcore.VarIdx(nil), vars...), coefs, 0)
		if err != nil {
			return nil, err
		}
		rows[i] = saf.Canonicalize()
	}
	return rows, nil
}

// BuildQuadraticObjective folds a dense symmetric Q into one
// *exprcore.SQF representing exactly x^T Q x: each diagonal entry Q_ii
// becomes the coefficient of x_i*x_i, and each off-diagonal pair (i,j),
// (j,i) is combined into one x_i*x_j term with coefficient Q_ij+Q_ji.
// No factor of 1/2 is applied.
func BuildQuadraticObjective(q *mat.Dense, vars []exprcore.VarIdx) (*exprcore.SQF, error) {
	r, c := q.Dims()
	if r != c || r != len(vars) {
		return nil, modelerr.User(ErrDimensionMismatch)
	}
	for i := 0; i < r; i++ {
		for j := i + 1; j < c; j++ {
			if math.Abs(q.At(i, j)-q.At(j, i)) > 1e-9 {
				return nil, modelerr.User(ErrNotSymmetric)
			}
		}
	}

	var v1, v2 []exprcore.VarIdx
	var coefs []float64
	for i := 0; i < r; i++ {
		for j := i; j < c; j++ {
			val := q.At(i, j)
			if i != j {
				val += q.At(j, i)
			}
			if val == 0 {
				continue
			}
			v1 = append(v1, vars[i])
			v2 = append(v2, vars[j])
			coefs = append(coefs, val)
		}
	}
	sqf, err := exprcore.NewSQF(v1, v2, coefs, nil)
	if err != nil {
		return nil, err
	}
	return sqf.Canonicalize(), nil
}
