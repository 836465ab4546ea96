// SPDX-License-Identifier: MIT
package autodiff

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
	"github.com/katalvlaran/modeling/exprcore"
	"github.com/katalvlaran/modeling/graphhash"
	"github.com/katalvlaran/modeling/nlgraph"
	"github.com/stretchr/testify/require"
)

// buildHS071Style builds f(x0,x1) = exp(x0)*x1 + x0*x0*x1 + 3, the kind of
// mixed transcendental/polynomial expression spec §8's HS071 scenario
// exercises, so the autodiff-correctness property gets a realistic shape.
func buildHS071Style(t *testing.T) (*nlgraph.Graph, nlgraph.NodeID) {
	t.Helper()
	_, g := nlgraph.Enter()
	x0 := nlgraph.FromVarIdx(g, exprcore.VarIdx(0))
	x1 := nlgraph.FromVarIdx(g, exprcore.VarIdx(1))
	three := nlgraph.AddConstant(g, 3)
	term1 := nlgraph.Mul(nlgraph.Exp(x0), x1)
	term2 := nlgraph.Mul(nlgraph.Mul(x0, x0), x1)
	f := nlgraph.Add(nlgraph.Add(term1, term2), three)
	return g, f.Node()
}

func TestJacobianMatchesCentralDifference(t *testing.T) {
	g, root := buildHS071Style(t)
	art, err := Differentiate(graphhash.Representative{Graph: g, Roots: []nlgraph.NodeID{root}})
	require.NoError(t, err)
	require.True(t, art.Structure.HasJacobian)
	require.Equal(t, 2, art.Structure.NNZJac) // both x0 and x1 appear

	x := []float64{0.7, 1.3}
	p := []float64{}

	for k, row := range art.Structure.JacRows {
		col := art.Structure.JacCols[k]
		ana := art.JacobianGraph.Eval(art.JacRoots[k], x, p)

		num_, errN := num.DerivCentral(func(t float64, args ...interface{}) float64 {
			xTmp := append([]float64(nil), x...)
			xTmp[col] = t
			return g.Eval(root, xTmp, p)
		}, x[col], 1e-3)
		require.NoError(t, errN)

		chk.AnaNum(t, "dJ/dx", 1e-5, ana, num_, chk.Verbose)
		_ = row
	}
}

func TestHessianMatchesCentralDifferenceOfJacobian(t *testing.T) {
	g, root := buildHS071Style(t)
	art, err := Differentiate(graphhash.Representative{Graph: g, Roots: []nlgraph.NodeID{root}})
	require.NoError(t, err)
	require.True(t, art.Structure.HasHessian)

	x := []float64{0.4, -0.2}
	p := art.HessianGraph.ParamValues()

	for k, row := range art.Structure.HessRows {
		col := art.Structure.HessCols[k]
		ana := art.HessianGraph.Eval(art.HessRoots[k], x, p)

		// Central difference of df/d(row) w.r.t. x[col], scaled by the
		// dummy w=0.5 seed buildHessian used for the single output.
		num_, errN := num.DerivCentral(func(t float64, args ...interface{}) float64 {
			xTmp := append([]float64(nil), x...)
			xTmp[col] = t
			return 0.5 * gradientComponent(g, root, xTmp, row)
		}, x[col], 1e-3)
		require.NoError(t, errN)

		chk.AnaNum(t, "d2L/dxdx", 1e-4, ana, num_, chk.Verbose)
	}
}

// gradientComponent computes df/dx[component] at x via central difference
// over the raw representative graph, used as the "analytic-enough"
// reference for the Hessian's own central-difference check.
func gradientComponent(g *nlgraph.Graph, root nlgraph.NodeID, x []float64, component int) float64 {
	d, _ := num.DerivCentral(func(t float64, args ...interface{}) float64 {
		xTmp := append([]float64(nil), x...)
		xTmp[component] = t
		return g.Eval(root, xTmp, nil)
	}, x[component], 1e-3)
	return d
}

func TestDifferentiateRejectsEmptyRoots(t *testing.T) {
	g := nlgraph.NewGraph()
	_, err := Differentiate(graphhash.Representative{Graph: g, Roots: nil})
	require.ErrorIs(t, err, ErrNoOutputs)
}

func TestSharedSubgraphAcrossMultipleOutputsClonesOnce(t *testing.T) {
	_, g := nlgraph.Enter()
	x := nlgraph.FromVarIdx(g, exprcore.VarIdx(0))
	shared := nlgraph.Sin(x)
	out1 := nlgraph.Add(shared, nlgraph.AddConstant(g, 1)).Node()
	out2 := nlgraph.Mul(shared, nlgraph.AddConstant(g, 2)).Node()

	art, err := Differentiate(graphhash.Representative{Graph: g, Roots: []nlgraph.NodeID{out1, out2}})
	require.NoError(t, err)
	require.Equal(t, 2, art.Structure.NY)
	require.Equal(t, 1, art.Structure.NX)
	require.Len(t, art.FRoots, 2)
}
