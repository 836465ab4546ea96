// SPDX-License-Identifier: MIT
package nlgraph

import (
	"testing"

	"github.com/katalvlaran/modeling/exprcore"
	"github.com/stretchr/testify/require"
)

func TestContextEnterExit(t *testing.T) {
	require.False(t, Active())
	ctx, g := Enter()
	require.True(t, Active())
	require.Same(t, g, Current())
	ctx.Exit()
	require.False(t, Active())
}

func TestNestedContexts(t *testing.T) {
	ctx1, g1 := Enter()
	defer ctx1.Exit()
	ctx2, g2 := Enter()
	require.Same(t, g2, Current())
	ctx2.Exit()
	require.Same(t, g1, Current())
}

func TestPowIntegerExpansion(t *testing.T) {
	_, g := Enter()
	x := AddVariableFresh(g)
	cube := Pow(x, 3)
	require.Equal(t, 8.0, g.Eval(cube.node, []float64{2}, nil))

	inv := Pow(x, -2)
	require.InDelta(t, 0.25, g.Eval(inv.node, []float64{2}, nil), 1e-12)
}

func TestNaryCollapsesAdjacentAdds(t *testing.T) {
	_, g := Enter()
	x := AddVariableFresh(g)
	y := AddVariableFresh(g)
	z := AddVariableFresh(g)
	sum := Add(Add(x, y), z)
	n := g.NodeAt(sum.node)
	require.Equal(t, KindNary, n.Kind)
	require.Len(t, n.Children, 3)
}

func TestIfElseSelectsActiveBranch(t *testing.T) {
	_, g := Enter()
	x := AddVariableFresh(g)
	cond := Geq(x, constHandle(g, 0))
	result := IfElse(cond, x, Neg(x))
	require.Equal(t, 5.0, g.Eval(result.node, []float64{5}, nil))
	require.Equal(t, 5.0, g.Eval(result.node, []float64{-5}, nil))
}

func TestEscalationFromExprcore(t *testing.T) {
	ctx, g := Enter()
	defer ctx.Exit()
	x := exprcore.VarIdx(0)
	y := exprcore.VarIdx(1)
	// x*y*x exceeds degree 2 in exprcore; with a context active it must
	// escalate instead of failing.
	xy, err := exprcore.Mul(x, y)
	require.NoError(t, err)
	cubic, err := exprcore.Mul(xy, x)
	require.NoError(t, err)
	h, ok := cubic.(Handle)
	require.True(t, ok)
	require.Same(t, g, h.g)
	require.Equal(t, 4.0, g.Eval(h.node, []float64{2, 1}, nil))
}

// AddVariableFresh is a tiny test helper issuing a distinct exprcore
// VarIdx each call so graph_test.go doesn't need the model package.
var freshVarCounter exprcore.VarIdx

func AddVariableFresh(g *Graph) Handle {
	v := freshVarCounter
	freshVarCounter++
	return FromVarIdx(g, v)
}
