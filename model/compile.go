// SPDX-License-Identifier: MIT
// File: compile.go
// Role: per-group compilation — Differentiate, lower with codegen, JIT
// the result, and bind the compiled symbol to a callable Go func via
// purego (the same raw-function-pointer-binding idiom the solver
// package's autoload_library uses against a solver's shared library,
// applied here against our own just-JIT-compiled code instead).

package model

import (
	"fmt"
	"unsafe"

	"github.com/cpmech/gosl/chk"
	"github.com/ebitengine/purego"
	"github.com/katalvlaran/modeling/autodiff"
	"github.com/katalvlaran/modeling/codegen"
	"github.com/katalvlaran/modeling/graphhash"
	"github.com/katalvlaran/modeling/jit"
	"github.com/katalvlaran/modeling/nlgraph"
)

// nativeFunc is the Go-callable shape of the fixed F() ABI (spec
// §4.8/§4.9): every pointer argument is passed as a raw address, since
// the compiled function indexes into whichever backing array the
// caller chooses (a model-wide dense x buffer, a per-instance p/w
// buffer, a model-wide y buffer) — purego.RegisterFunc binds a Go func
// value to a raw code address with exactly this calling convention.
type nativeFunc func(x, p, w, y, xi, pi, wi, yi uintptr)

// CompiledGroup holds one group's differentiated artifact and its JIT-
// bound entry points (f always present; jacobian/hessian present when
// the group's structure reports them).
type CompiledGroup struct {
	GroupID  graphhash.GroupID
	Artifact *autodiff.Artifact
	FFunc    nativeFunc
	JacFunc  nativeFunc
	HessFunc nativeFunc
}

// compileGroups differentiates and JITs every distinct group present in
// insts, returning one CompiledGroup per group, keyed by GroupID.
func (m *NLPModel) compileGroups(insts []instance) (map[graphhash.GroupID]*CompiledGroup, error) {
	seen := make(map[graphhash.GroupID]bool)
	out := make(map[graphhash.GroupID]*CompiledGroup)
	for _, ins := range insts {
		gid := ins.member.Group
		if seen[gid] {
			continue
		}
		seen[gid] = true

		rep, ok := m.grouper.RepresentativeOf(gid)
		if !ok {
			chk.Panic("model: group %d returned by partition() has no representative in the grouper", gid)
		}
		cg, err := compileOneGroup(m.jit, m.backend, gid, rep)
		if err != nil {
			return nil, err
		}
		out[gid] = cg
	}
	return out, nil
}

func compileOneGroup(j *jit.JIT, backend Backend, gid graphhash.GroupID, rep graphhash.Representative) (*CompiledGroup, error) {
	art, err := autodiff.Differentiate(rep)
	if err != nil {
		return nil, fmt.Errorf("model: group %d: differentiate: %w", gid, err)
	}

	fSym := fmt.Sprintf("f_group%d", gid)
	fFn, err := compileArtifactFunc(j, backend, art.FGraph, art.FRoots, codegen.Options{
		FuncName: fSym, HasParameter: art.Structure.HasParameter,
		IndirectX: true, IndirectY: true,
	}, fSym)
	if err != nil {
		return nil, err
	}

	var jFn, hFn nativeFunc
	if art.Structure.HasJacobian {
		jSym := fmt.Sprintf("jac_group%d", gid)
		jFn, err = compileArtifactFunc(j, backend, art.JacobianGraph, art.JacRoots, codegen.Options{
			FuncName: jSym, HasParameter: art.Structure.HasParameter,
			IndirectX: true, IndirectY: true,
		}, jSym)
		if err != nil {
			return nil, err
		}
	}
	if art.Structure.HasHessian {
		hSym := fmt.Sprintf("hess_group%d", gid)
		hFn, err = compileArtifactFunc(j, backend, art.HessianGraph, art.HessRoots, codegen.Options{
			FuncName: hSym, HasParameter: art.Structure.HasParameter, HasW: true,
			IndirectX: true, IndirectY: true,
		}, hSym)
		if err != nil {
			return nil, err
		}
	}

	return &CompiledGroup{GroupID: gid, Artifact: art, FFunc: fFn, JacFunc: jFn, HessFunc: hFn}, nil
}

// compileArtifactFunc lowers one artifact graph through whichever of
// codegen's two back ends backend selects, hands the result to j, and
// binds the resulting symbol to a nativeFunc via purego.
func compileArtifactFunc(j *jit.JIT, backend Backend, g *nlgraph.Graph, roots []nlgraph.NodeID, opts codegen.Options, sym string) (nativeFunc, error) {
	switch backend {
	case BackendLLVM:
		mod, err := codegen.GenerateLLVM(g, roots, opts)
		if err != nil {
			return nil, fmt.Errorf("model: codegen %s: %w", sym, err)
		}
		if err := j.CompileLLVM(mod, sym); err != nil {
			return nil, fmt.Errorf("model: jit compile %s: %w", sym, err)
		}
	default:
		src, err := codegen.GenerateC(g, roots, opts)
		if err != nil {
			return nil, fmt.Errorf("model: codegen %s: %w", sym, err)
		}
		if err := j.CompileC(src, sym); err != nil {
			return nil, fmt.Errorf("model: jit compile %s: %w", sym, err)
		}
	}
	addr, err := j.GetSymbol(sym)
	if err != nil {
		return nil, fmt.Errorf("model: resolve %s: %w", sym, err)
	}

	var fn nativeFunc
	purego.RegisterFunc(&fn, uintptr(addr))
	return fn, nil
}

// callNative invokes fn over the model-wide x/y buffers and the group's own
// per-instance p/w buffers and xi/yi index maps, using unsafe.Pointer
// only to obtain the base addresses purego's registered signature
// expects as raw uintptrs.
func callNative(fn nativeFunc, x, p, w, y []float64, xi, yi []uint64) {
	fn(
		ptrOf(x), ptrOf(p), ptrOf(w), ptrOf(y),
		ptrOfU(xi), 0, 0, ptrOfU(yi),
	)
}

func ptrOf(s []float64) uintptr {
	if len(s) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&s[0]))
}

func ptrOfU(s []uint64) uintptr {
	if len(s) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&s[0]))
}
