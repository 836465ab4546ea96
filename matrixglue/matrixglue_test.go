// SPDX-License-Identifier: MIT
package matrixglue

import (
	"testing"

	"github.com/cpmech/gosl/la"
	"github.com/katalvlaran/modeling/exprcore"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestBuildLinearRowsFromDense(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	vars := []exprcore.VarIdx{0, 1}
	rows, err := BuildLinearRows(a, vars)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, []float64{1, 2}, rows[0].Coefficients)
	require.Equal(t, []float64{3, 4}, rows[1].Coefficients)
}

func TestBuildLinearRowsDimensionMismatch(t *testing.T) {
	a := mat.NewDense(1, 2, []float64{1, 2})
	_, err := BuildLinearRows(a, []exprcore.VarIdx{0})
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestBuildQuadraticObjectiveRejectsAsymmetric(t *testing.T) {
	q := mat.NewDense(2, 2, []float64{1, 2, 99, 4})
	_, err := BuildQuadraticObjective(q, []exprcore.VarIdx{0, 1})
	require.ErrorIs(t, err, ErrNotSymmetric)
}

func TestBuildQuadraticObjectiveSymmetric(t *testing.T) {
	q := mat.NewDense(2, 2, []float64{2, 1, 1, 2})
	sqf, err := BuildQuadraticObjective(q, []exprcore.VarIdx{0, 1})
	require.NoError(t, err)
	require.True(t, sqf.IsCanonical())
	got := sqf.Eval(func(v exprcore.VarIdx) float64 { return 1 })
	require.Equal(t, 6.0, got) // 2*1*1 + 2*1*1 + 1*1*1(i!=j combined to 2) = 2+2+2
}

func TestBuildLinearRowsFromTripletGroupsByRow(t *testing.T) {
	tr := la.NewTriplet(2, 2, 4)
	tr.Put(0, 0, 1)
	tr.Put(0, 1, 2)
	tr.Put(1, 1, 5)
	vars := []exprcore.VarIdx{0, 1}

	rows, err := BuildLinearRowsFromTriplet(tr, vars)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Contains(t, rows, 0)
	require.Contains(t, rows, 1)
}
