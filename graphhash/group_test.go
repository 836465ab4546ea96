// SPDX-License-Identifier: MIT
package graphhash

import (
	"testing"

	"github.com/katalvlaran/modeling/exprcore"
	"github.com/katalvlaran/modeling/nlgraph"
	"github.com/stretchr/testify/require"
)

// buildF constructs f(x,y) = exp(x) * y + 1 on a fresh graph with fresh
// external variables, returning (graph, root).
func buildF(t *testing.T, xExt, yExt exprcore.VarIdx) (*nlgraph.Graph, nlgraph.NodeID) {
	t.Helper()
	_, g := nlgraph.Enter()
	x := nlgraph.FromVarIdx(g, xExt)
	y := nlgraph.FromVarIdx(g, yExt)
	one := nlgraph.AddConstant(g, 1)
	f := nlgraph.Add(nlgraph.Mul(nlgraph.Exp(x), y), one)
	return g, f.Node()
}

func TestSameSourcePathDisjointVarsLandInSameGroup(t *testing.T) {
	g1, r1 := buildF(t, exprcore.VarIdx(0), exprcore.VarIdx(1))
	g2, r2 := buildF(t, exprcore.VarIdx(10), exprcore.VarIdx(11))

	gr := NewGrouper()
	m1 := gr.Add(g1, r1)
	m2 := gr.Add(g2, r2)

	require.Equal(t, m1.Group, m2.Group)
	require.Equal(t, 1, gr.NumGroups())
	require.Equal(t, []exprcore.VarIdx{0, 1}, m1.VarIdxs)
	require.Equal(t, []exprcore.VarIdx{10, 11}, m2.VarIdxs)
}

func TestDifferentShapeLandsInDifferentGroup(t *testing.T) {
	g1, r1 := buildF(t, exprcore.VarIdx(0), exprcore.VarIdx(1))

	_, g3 := nlgraph.Enter()
	x3 := nlgraph.FromVarIdx(g3, exprcore.VarIdx(2))
	y3 := nlgraph.FromVarIdx(g3, exprcore.VarIdx(3))
	other := nlgraph.Add(nlgraph.Log(x3), y3) // different shape entirely

	gr := NewGrouper()
	m1 := gr.Add(g1, r1)
	m3 := gr.Add(g3, other.Node())
	require.NotEqual(t, m1.Group, m3.Group)
	require.Equal(t, 2, gr.NumGroups())
}

func TestRepresentativeIsFirstRecorded(t *testing.T) {
	g1, r1 := buildF(t, exprcore.VarIdx(0), exprcore.VarIdx(1))
	g2, r2 := buildF(t, exprcore.VarIdx(10), exprcore.VarIdx(11))

	gr := NewGrouper()
	m1 := gr.Add(g1, r1)
	gr.Add(g2, r2)

	rep, ok := gr.RepresentativeOf(m1.Group)
	require.True(t, ok)
	require.Same(t, g1, rep.Graph)
	require.Equal(t, []nlgraph.NodeID{r1}, rep.Roots)
}

func TestAddMultiOrderedOutputsAffectGrouping(t *testing.T) {
	g1, r1a := buildF(t, exprcore.VarIdx(0), exprcore.VarIdx(1))
	x1b := nlgraph.FromVarIdx(g1, exprcore.VarIdx(2))
	r1b := nlgraph.Log(x1b).Node()

	g2, r2a := buildF(t, exprcore.VarIdx(10), exprcore.VarIdx(11))
	x2b := nlgraph.FromVarIdx(g2, exprcore.VarIdx(12))
	r2b := nlgraph.Log(x2b).Node()

	gr := NewGrouper()
	m1 := gr.AddMulti(g1, []nlgraph.NodeID{r1a, r1b})
	m2 := gr.AddMulti(g2, []nlgraph.NodeID{r2a, r2b})

	require.Equal(t, m1.Group, m2.Group)
	require.Equal(t, 1, gr.NumGroups())

	// Reversing output order is a different shape.
	m3 := gr.AddMulti(g2, []nlgraph.NodeID{r2b, r2a})
	require.NotEqual(t, m1.Group, m3.Group)
	require.Equal(t, 2, gr.NumGroups())
}
