// SPDX-License-Identifier: MIT
package model

import (
	"testing"

	"github.com/katalvlaran/modeling/exprcore"
	"github.com/katalvlaran/modeling/indexer"
	"github.com/katalvlaran/modeling/nlgraph"
	"github.com/stretchr/testify/require"
)

func TestAddVariableAndDeleteReindexes(t *testing.T) {
	m := New()
	v0, err := m.AddVariable(exprcore.Continuous, 0, 1)
	require.NoError(t, err)
	v1, err := m.AddVariable(exprcore.Continuous, 0, 1)
	require.NoError(t, err)
	require.NoError(t, m.DeleteVariable(v0))
	require.Equal(t, 0, m.varIdx.Get(indexer.Handle(v1)))
}

func TestWithLLVMBackendSelectsLLVM(t *testing.T) {
	m := New()
	require.Equal(t, BackendC, m.backend)

	m = New(WithLLVMBackend())
	require.Equal(t, BackendLLVM, m.backend)
}

func TestQuicksumAccumulatesLinearTerms(t *testing.T) {
	saf1, err := exprcore.NewSAF([]exprcore.VarIdx{0}, []float64{2}, 1)
	require.NoError(t, err)
	saf2, err := exprcore.NewSAF([]exprcore.VarIdx{1}, []float64{3}, 0)
	require.NoError(t, err)

	q, err := Quicksum(saf1, saf2)
	require.NoError(t, err)
	got := q.AffinePart.Eval(func(v exprcore.VarIdx) float64 { return 1 })
	require.Equal(t, 6.0, got) // (2*1+1) + (3*1+0)
}

func TestMakeNDVariableRegistersOnePerCoordinate(t *testing.T) {
	m := New()
	td, err := m.MakeNDVariable(exprcore.Binary, 0, 1, 2, 3)
	require.NoError(t, err)
	require.Equal(t, 6, td.Len())
	require.Equal(t, 6, m.varIdx.Len())
}

func TestPartitionGroupsStructurallyEqualTerms(t *testing.T) {
	m := New()
	x0, _ := m.AddVariable(exprcore.Continuous, 0, 10)
	x1, _ := m.AddVariable(exprcore.Continuous, 0, 10)

	_, g1 := nlgraph.Enter()
	h1 := nlgraph.FromVarIdx(g1, x0)
	root1 := nlgraph.Mul(h1, h1).Node()
	_, err := m.AddNLConstraint(g1, root1, 0, 100)
	require.NoError(t, err)

	_, g2 := nlgraph.Enter()
	h2 := nlgraph.FromVarIdx(g2, x1)
	root2 := nlgraph.Mul(h2, h2).Node()
	_, err = m.AddNLConstraint(g2, root2, 0, 100)
	require.NoError(t, err)

	insts, err := m.partition()
	require.NoError(t, err)
	require.Len(t, insts, 2)
	require.Equal(t, insts[0].member.Group, insts[1].member.Group, "x*x and y*y are structurally identical")
}
