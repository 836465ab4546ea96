// SPDX-License-Identifier: MIT
package codegen

import (
	"testing"

	"github.com/katalvlaran/modeling/exprcore"
	"github.com/katalvlaran/modeling/nlgraph"
	"github.com/llir/llvm/ir"
	"github.com/stretchr/testify/require"
)

func buildSample(t *testing.T) (*nlgraph.Graph, nlgraph.NodeID) {
	t.Helper()
	_, g := nlgraph.Enter()
	x0 := nlgraph.FromVarIdx(g, exprcore.VarIdx(0))
	x1 := nlgraph.FromVarIdx(g, exprcore.VarIdx(1))
	f := nlgraph.Add(nlgraph.Mul(nlgraph.Exp(x0), x1), nlgraph.AddConstant(g, 3))
	return g, f.Node()
}

func TestGenerateCIsDeterministic(t *testing.T) {
	g, root := buildSample(t)
	opts := Options{FuncName: "f_group0"}

	out1, err := GenerateC(g, []nlgraph.NodeID{root}, opts)
	require.NoError(t, err)
	out2, err := GenerateC(g, []nlgraph.NodeID{root}, opts)
	require.NoError(t, err)
	require.Equal(t, out1, out2)

	require.Contains(t, out1, "void f_group0(const double* restrict x")
	require.Contains(t, out1, "exp(")
	require.Contains(t, out1, "y[0] = ")
	require.NotContains(t, out1, "const double* restrict p") // no parameters in this graph
}

func TestGenerateCIndirectAddressingAndAccumulate(t *testing.T) {
	g, root := buildSample(t)
	opts := Options{FuncName: "f_group0", IndirectX: true, IndirectY: true, AddY: true}

	out, err := GenerateC(g, []nlgraph.NodeID{root}, opts)
	require.NoError(t, err)
	require.Contains(t, out, "const size_t* restrict xi")
	require.Contains(t, out, "const size_t* restrict yi")
	require.Contains(t, out, "x[xi[0]]")
	require.Contains(t, out, "y[yi[0]] +=")
}

func TestGenerateCRejectsEmptyRoots(t *testing.T) {
	g, _ := buildSample(t)
	_, err := GenerateC(g, nil, Options{FuncName: "f"})
	require.ErrorIs(t, err, ErrNoOutputs)
}

func TestGenerateLLVMBuildsExpectedSignature(t *testing.T) {
	g, root := buildSample(t)
	opts := Options{FuncName: "f_group0"}

	m, err := GenerateLLVM(g, []nlgraph.NodeID{root}, opts)
	require.NoError(t, err)
	require.NotNil(t, m)

	var fn *ir.Func
	for _, f := range m.Funcs {
		if f.Name() == "f_group0" {
			fn = f
		}
	}
	require.NotNil(t, fn, "F function must be present in the module")
	require.Len(t, fn.Params, 2, "x and y only: no parameters in this graph, no indirect addressing requested")
}

func TestCAndLLVMAgreeOnParameterAndHessianSignature(t *testing.T) {
	_, g := nlgraph.Enter()
	x0 := nlgraph.FromVarIdx(g, exprcore.VarIdx(0))
	param := nlgraph.AddParameter(g, 2.0)
	root := nlgraph.Mul(x0, param).Node()

	opts := Options{FuncName: "h_group0", HasParameter: true, HasW: true}
	cOut, err := GenerateC(g, []nlgraph.NodeID{root}, opts)
	require.NoError(t, err)
	require.Contains(t, cOut, "const double* restrict p")
	require.Contains(t, cOut, "const double* restrict w")

	m, err := GenerateLLVM(g, []nlgraph.NodeID{root}, opts)
	require.NoError(t, err)
	var fn *ir.Func
	for _, f := range m.Funcs {
		if f.Name() == "h_group0" {
			fn = f
		}
	}
	require.NotNil(t, fn)
	require.Len(t, fn.Params, 4) // x, p, w, y; no indirect-index args requested
}
