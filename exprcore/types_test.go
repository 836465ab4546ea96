// SPDX-License-Identifier: MIT
package exprcore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSAFCanonicalize(t *testing.T) {
	saf := &SAF{
		Variables:    []VarIdx{3, 1, 1, 2},
		Coefficients: []float64{1, 2, -2, 5},
		Constant:     7,
	}
	c := saf.Canonicalize()
	require.True(t, c.IsCanonical())
	// variable 1 cancels out (2 + -2 == 0) and must be dropped.
	require.Equal(t, []VarIdx{2, 3}, c.Variables)
	require.Equal(t, []float64{5, 1}, c.Coefficients)
	require.Equal(t, 7.0, c.Constant)
}

func TestSQFCanonicalize(t *testing.T) {
	sqf := &SQF{
		Variable1s:   []VarIdx{2, 1, 1},
		Variable2s:   []VarIdx{1, 2, 2},
		Coefficients: []float64{3, 1, 1},
		AffinePart:   ConstSAF(0),
	}
	c := sqf.Canonicalize()
	require.True(t, c.IsCanonical())
	require.Equal(t, []VarIdx{1}, c.Variable1s)
	require.Equal(t, []VarIdx{2}, c.Variable2s)
	require.Equal(t, []float64{5}, c.Coefficients)
}

func TestDegreeLawAdd(t *testing.T) {
	x, y := VarIdx(0), VarIdx(1)
	xy, err := Mul(x, y)
	require.NoError(t, err)
	require.Equal(t, Degree(2), degreeOf(xy))

	sum, err := Add(x, xy)
	require.NoError(t, err)
	require.Equal(t, Degree(2), degreeOf(sum))
}

func TestDegreeOverflowFailsOutsideGraph(t *testing.T) {
	RegisterGraphEscalator(nil)
	x, y, z := VarIdx(0), VarIdx(1), VarIdx(2)
	xy, err := Mul(x, y)
	require.NoError(t, err)
	_, err = Mul(xy, z)
	require.ErrorIs(t, err, ErrDegreeExceeded)
}

func TestRoundTripEval(t *testing.T) {
	x, y := VarIdx(0), VarIdx(1)
	b := NewExprBuilder()
	require.NoError(t, b.AddInPlace(x))
	require.NoError(t, b.AddInPlace(y))
	xy, err := Mul(x, y)
	require.NoError(t, err)
	require.NoError(t, b.AddInPlace(xy))

	val := func(v VarIdx) float64 {
		if v == x {
			return 3
		}
		return 4
	}
	sqf := b.ToSQF().Canonicalize()
	require.InDelta(t, 3+4+12, sqf.Eval(val), 1e-12)
}

func TestComparisonIsLeftMinusRight(t *testing.T) {
	x, y := VarIdx(0), VarIdx(1)
	cc, err := Compare(Leq, x, y)
	require.NoError(t, err)
	require.Equal(t, Leq, cc.Sense)
	require.Equal(t, 0.0, cc.Rhs)
	val := func(v VarIdx) float64 {
		if v == x {
			return 10
		}
		return 4
	}
	require.InDelta(t, 6, cc.Lhs.Eval(val), 1e-12)
}
