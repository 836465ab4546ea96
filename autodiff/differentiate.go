// SPDX-License-Identifier: MIT
// File: differentiate.go
// Role: Differentiate — the public entry point assembling f_graph,
// jacobian_graph, and hessian_graph plus Structure from one group's
// representative (spec §4.7).

package autodiff

import (
	"sort"

	"github.com/katalvlaran/modeling/graphhash"
	"github.com/katalvlaran/modeling/modelerr"
	"github.com/katalvlaran/modeling/nlgraph"
)

// Artifact is the per-group AutodiffArtifact from spec §4.3.
type Artifact struct {
	FGraph *nlgraph.Graph
	FRoots []nlgraph.NodeID // length NY

	JacobianGraph *nlgraph.Graph
	JacRoots      []nlgraph.NodeID // length Structure.NNZJac, row-major

	HessianGraph *nlgraph.Graph
	HessRoots    []nlgraph.NodeID // length Structure.NNZHess, lower-triangle row-major

	Structure Structure
}

// Differentiate builds the AutodiffArtifact for one group's
// representative graph/output vector.
func Differentiate(rep graphhash.Representative) (*Artifact, error) {
	if len(rep.Roots) == 0 {
		return nil, modelerr.Graph(ErrNoOutputs)
	}
	src := rep.Graph
	nx := src.NumVariableSlots()
	np := src.NumParameterSlots()
	ny := len(rep.Roots)

	fGraph, fRoots := buildFGraph(src, rep.Roots)
	jacGraph, jacRoots, jacRows, jacCols := buildJacobian(src, rep.Roots, nx)
	hessGraph, hessRoots, hessRows, hessCols := buildHessian(src, rep.Roots, nx)

	return &Artifact{
		FGraph:        fGraph,
		FRoots:        fRoots,
		JacobianGraph: jacGraph,
		JacRoots:      jacRoots,
		HessianGraph:  hessGraph,
		HessRoots:     hessRoots,
		Structure: Structure{
			NX: nx, NP: np, NY: ny,
			NNZJac: len(jacRoots), NNZHess: len(hessRoots),
			JacRows: jacRows, JacCols: jacCols,
			HessRows: hessRows, HessCols: hessCols,
			HasJacobian:  len(jacRoots) > 0,
			HasHessian:   len(hessRoots) > 0,
			HasParameter: np > 0,
		},
	}, nil
}

// buildFGraph clones the representative's output roots into a fresh,
// self-contained graph (what the solver calls to get f(x,p) alone).
func buildFGraph(src *nlgraph.Graph, roots []nlgraph.NodeID) (*nlgraph.Graph, []nlgraph.NodeID) {
	dst := nlgraph.NewGraph()
	c := newCloner(src, dst)
	return dst, c.cloneAll(roots)
}

// buildJacobian clones the forward computation once, then runs one
// reverseDiff pass per output row, reading each row's derivative w.r.t.
// every variable slot the row actually depends on out of the adjoint map.
func buildJacobian(src *nlgraph.Graph, roots []nlgraph.NodeID, nx int) (*nlgraph.Graph, []nlgraph.NodeID, []int, []int) {
	dst := nlgraph.NewGraph()
	c := newCloner(src, dst)
	clonedRoots := c.cloneAll(roots)

	var jacRoots []nlgraph.NodeID
	var jacRows, jacCols []int

	for row, croot := range clonedRoots {
		adjoint := reverseDiff(dst, croot)
		for slot := 0; slot < nx; slot++ {
			varID, ok := c.varClone[slot]
			if !ok {
				continue // slot never referenced while cloning this group at all
			}
			d, ok := adjoint[varID]
			if !ok {
				continue // structurally zero: this row does not depend on this variable
			}
			jacRoots = append(jacRoots, d)
			jacRows = append(jacRows, row)
			jacCols = append(jacCols, slot)
		}
	}
	return dst, jacRoots, jacRows, jacCols
}

// buildHessian clones the forward computation, forms L = sum_i w_i*f_i
// with one fresh parameter slot w_i per output, differentiates L once to
// get each row's gradient expression, then differentiates each gradient
// expression a second time to get the lower triangle of the Hessian.
func buildHessian(src *nlgraph.Graph, roots []nlgraph.NodeID, nx int) (*nlgraph.Graph, []nlgraph.NodeID, []int, []int) {
	dst := nlgraph.NewGraph()
	c := newCloner(src, dst)
	clonedRoots := c.cloneAll(roots)

	var lTerms []nlgraph.NodeID
	for _, croot := range clonedRoots {
		w := dst.AddParameter(0.5) // dummy seed value, never read symbolically
		lTerms = append(lTerms, dst.AddBinary(nlgraph.BinMul, w, croot))
	}
	var lRoot nlgraph.NodeID
	if len(lTerms) == 1 {
		lRoot = lTerms[0]
	} else {
		lRoot = dst.AddNary(nlgraph.NaryAdd, lTerms...)
	}

	firstOrder := reverseDiff(dst, lRoot)

	// gradExpr has no entry for row j when row j is structurally absent from L.
	gradExpr := make(map[int]nlgraph.NodeID, nx)
	for slot := 0; slot < nx; slot++ {
		varID, ok := c.varClone[slot]
		if !ok {
			continue
		}
		if d, ok := firstOrder[varID]; ok {
			gradExpr[slot] = d
		}
	}

	// Stable iteration order over the rows that exist.
	rows := make([]int, 0, len(gradExpr))
	for j := range gradExpr {
		rows = append(rows, j)
	}
	sort.Ints(rows)

	var hessRoots []nlgraph.NodeID
	var hessRows, hessCols []int
	for _, j := range rows {
		secondOrder := reverseDiff(dst, gradExpr[j])
		for k := 0; k <= j; k++ {
			varID, ok := c.varClone[k]
			if !ok {
				continue
			}
			d, ok := secondOrder[varID]
			if !ok {
				continue
			}
			hessRoots = append(hessRoots, d)
			hessRows = append(hessRows, j)
			hessCols = append(hessCols, k)
		}
	}
	return dst, hessRoots, hessRows, hessCols
}
