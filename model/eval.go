// SPDX-License-Identifier: MIT
// File: eval.go
// Role: Evaluator — drives every compiled group's native function once
// per instance against the model's dense variable buffer, scattering
// results into the solver's constraint/objective output vectors. This
// is the object the SolverAdapter callback ABI (spec §4.11) calls into
// on every eval_f/eval_g/eval_jac_g/eval_h request.

package model

import (
	"github.com/katalvlaran/modeling/graphhash"
)

// outputSlot records where one instance's scalar result lands: its
// objective accumulator (AddY-style sum) or its own constraint row.
type outputSlot struct {
	isObjective bool
	row         int // index into Evaluator.g / Evaluator.jacRows when not objective
}

// Evaluator holds everything Optimize resolved: the compiled group per
// GroupID, and one outputSlot + per-instance p/w/xi/yi buffers per
// nlTerm instance, in the same order the solver's constraint vector is
// laid out.
type Evaluator struct {
	groups  map[graphhash.GroupID]*CompiledGroup
	instances []instance
	slots   []outputSlot

	nx int
	ny int // number of constraint rows (excludes the objective scalar)
}

func newEvaluator(nx int, insts []instance, groups map[graphhash.GroupID]*CompiledGroup) *Evaluator {
	slots := make([]outputSlot, len(insts))
	row := 0
	for i, ins := range insts {
		if ins.term.IsObjective {
			slots[i] = outputSlot{isObjective: true}
		} else {
			slots[i] = outputSlot{row: row}
			row++
		}
	}
	return &Evaluator{groups: groups, instances: insts, slots: slots, nx: nx, ny: row}
}

// EvalF computes the scalar objective value at x.
func (e *Evaluator) EvalF(x []float64) float64 {
	obj := 0.0
	y := []float64{0}
	for i, ins := range e.instances {
		if !e.slots[i].isObjective {
			continue
		}
		cg := e.groups[ins.member.Group]
		y[0] = 0
		callNative(cg.FFunc, x, ins.member.ParamVals, nil, y, ins.xi, []uint64{0})
		obj += y[0]
	}
	return obj
}

// EvalG computes every constraint row's value at x, in row order.
func (e *Evaluator) EvalG(x []float64) []float64 {
	g := make([]float64, e.ny)
	yi := []uint64{0}
	for i, ins := range e.instances {
		if e.slots[i].isObjective {
			continue
		}
		cg := e.groups[ins.member.Group]
		row := e.slots[i].row
		out := g[row : row+1]
		callNative(cg.FFunc, x, ins.member.ParamVals, nil, out, ins.xi, yi)
	}
	return g
}

// EvalJacG computes every constraint row's gradient contribution at x,
// scattered by (row, global variable index) into a dense matrix of ny
// rows and nx columns (spec §8's problem sizes are small enough that a
// dense buffer is the right tool; no sparse form is assembled here).
func (e *Evaluator) EvalJacG(x []float64) [][]float64 {
	jac := make([][]float64, e.ny)
	for r := range jac {
		jac[r] = make([]float64, e.nx)
	}
	for i, ins := range e.instances {
		if e.slots[i].isObjective {
			continue
		}
		cg := e.groups[ins.member.Group]
		if cg.JacFunc == nil {
			continue
		}
		row := e.slots[i].row
		nnz := cg.Artifact.Structure.NNZJac
		out := make([]float64, nnz)
		yi := make([]uint64, nnz)
		for k := range yi {
			yi[k] = uint64(k)
		}
		callNative(cg.JacFunc, x, ins.member.ParamVals, nil, out, ins.xi, yi)
		for k, col := range cg.Artifact.Structure.JacCols {
			globalCol := int(ins.xi[col])
			jac[row][globalCol] += out[k]
		}
	}
	return jac
}

// EvalH computes the weighted Hessian of the Lagrangian, sum over every
// instance of w_i * d^2(f_i)/dx^2, scattered into a dense symmetric
// nx*nx matrix (both (r,c) and (c,r) are filled). The weight w_i is
// objWeight for every objective instance and lambda[row] for the
// instance of constraint row row.
func (e *Evaluator) EvalH(x []float64, objWeight float64, lambda []float64) [][]float64 {
	h := make([][]float64, e.nx)
	for r := range h {
		h[r] = make([]float64, e.nx)
	}
	for i, ins := range e.instances {
		cg := e.groups[ins.member.Group]
		if cg.HessFunc == nil {
			continue
		}
		w := []float64{objWeight}
		if !e.slots[i].isObjective {
			w = []float64{lambda[e.slots[i].row]}
		}
		nnz := cg.Artifact.Structure.NNZHess
		out := make([]float64, nnz)
		yi := make([]uint64, nnz)
		for k := range yi {
			yi[k] = uint64(k)
		}
		callNative(cg.HessFunc, x, ins.member.ParamVals, w, out, ins.xi, yi)
		for k := range out {
			r := int(ins.xi[cg.Artifact.Structure.HessRows[k]])
			c := int(ins.xi[cg.Artifact.Structure.HessCols[k]])
			h[r][c] += out[k]
			if r != c {
				h[c][r] += out[k]
			}
		}
	}
	return h
}
