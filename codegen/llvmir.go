// SPDX-License-Identifier: MIT
// File: llvmir.go
// Role: the LLVM IR back-end (spec §4.8): builds an in-memory module via
// github.com/llir/llvm/ir, ready to hand to the LLVM ORC JIT. Produces
// the functionally-identical twin of GenerateC's output for the same
// (graph, roots, Options) triple — same plan, same node lowering rules,
// just emitted as IR instructions instead of C text.

package codegen

import (
	"fmt"

	"github.com/katalvlaran/modeling/modelerr"
	"github.com/katalvlaran/modeling/nlgraph"
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// llvmBuilder carries the per-function state while lowering one graph.
type llvmBuilder struct {
	m       *ir.Module
	fn      *ir.Func
	block   *ir.Block
	opts    Options
	values  map[nlgraph.NodeID]value.Value
	x, p, w *ir.Param
	y       *ir.Param
	xi, pi, wi, yi *ir.Param
	intrinsics map[string]*ir.Func
}

// GenerateLLVM lowers g's roots into a fresh *ir.Module defining
// opts.FuncName with the fixed F() signature.
func GenerateLLVM(g *nlgraph.Graph, roots []nlgraph.NodeID, opts Options) (*ir.Module, error) {
	if len(roots) == 0 {
		return nil, modelerr.Compile(ErrNoOutputs)
	}
	plan := buildPlan(g, roots)

	m := ir.NewModule()
	doubleT := types.Double
	doublePtrT := types.NewPointer(doubleT)
	i64T := types.I64
	i64PtrT := types.NewPointer(i64T)

	var params []*ir.Param
	b := &llvmBuilder{m: m, opts: opts, values: make(map[nlgraph.NodeID]value.Value), intrinsics: make(map[string]*ir.Func)}

	b.x = ir.NewParam("x", doublePtrT)
	params = append(params, b.x)
	if opts.HasParameter {
		b.p = ir.NewParam("p", doublePtrT)
		params = append(params, b.p)
	}
	if opts.HasW {
		b.w = ir.NewParam("w", doublePtrT)
		params = append(params, b.w)
	}
	b.y = ir.NewParam("y", doublePtrT)
	params = append(params, b.y)
	if opts.IndirectX {
		b.xi = ir.NewParam("xi", i64PtrT)
		params = append(params, b.xi)
	}
	if opts.HasParameter && opts.IndirectP {
		b.pi = ir.NewParam("pi", i64PtrT)
		params = append(params, b.pi)
	}
	if opts.HasW && opts.IndirectW {
		b.wi = ir.NewParam("wi", i64PtrT)
		params = append(params, b.wi)
	}
	if opts.IndirectY {
		b.yi = ir.NewParam("yi", i64PtrT)
		params = append(params, b.yi)
	}

	b.fn = m.NewFunc(opts.FuncName, types.Void, params...)
	b.block = b.fn.NewBlock("entry")

	for _, id := range plan.order {
		n := g.NodeAt(id)
		v, err := b.lowerNode(id, n)
		if err != nil {
			return nil, err
		}
		b.values[id] = v
	}

	for i, root := range roots {
		ptr := b.outputPtr(i)
		val := b.values[root]
		if opts.AddY {
			cur := b.block.NewLoad(doubleT, ptr)
			val = b.block.NewFAdd(cur, val)
		}
		b.block.NewStore(val, ptr)
	}
	b.block.NewRet(nil)

	return m, nil
}

// loadSlot reads x[slot] (or x[xi[slot]] under indirect addressing).
func (b *llvmBuilder) loadSlot(base *ir.Param, idxParam *ir.Param, indirect bool, slot int) value.Value {
	doubleT := types.Double
	i64T := types.I64
	var idx value.Value = constant.NewInt(i64T, int64(slot))
	if indirect {
		idxPtr := b.block.NewGetElementPtr(i64T, idxParam, constant.NewInt(i64T, int64(slot)))
		idx = b.block.NewLoad(i64T, idxPtr)
	}
	ptr := b.block.NewGetElementPtr(doubleT, base, idx)
	return b.block.NewLoad(doubleT, ptr)
}

// outputPtr computes the address of the i-th output slot (y[i] or
// y[yi[i]]), as a pointer for either a plain store or a load-then-store
// (AddY's accumulate case).
func (b *llvmBuilder) outputPtr(i int) value.Value {
	doubleT := types.Double
	i64T := types.I64
	var idx value.Value = constant.NewInt(i64T, int64(i))
	if b.opts.IndirectY {
		idxPtr := b.block.NewGetElementPtr(i64T, b.yi, constant.NewInt(i64T, int64(i)))
		idx = b.block.NewLoad(i64T, idxPtr)
	}
	return b.block.NewGetElementPtr(doubleT, b.y, idx)
}

func (b *llvmBuilder) lowerNode(id nlgraph.NodeID, n nlgraph.Node) (value.Value, error) {
	switch n.Kind {
	case nlgraph.KindConstant:
		return constant.NewFloat(types.Double, n.ConstValue), nil
	case nlgraph.KindVariable:
		return b.loadSlot(b.x, b.xi, b.opts.IndirectX, n.VarSlot), nil
	case nlgraph.KindParameter:
		return b.loadSlot(b.p, b.pi, b.opts.IndirectP, n.ParamSlot), nil
	case nlgraph.KindUnary:
		return b.lowerUnary(n.UnaryOp, b.values[n.UnaryChild])
	case nlgraph.KindBinary:
		return b.lowerBinary(n.BinaryOp, b.values[n.Left], b.values[n.Right])
	case nlgraph.KindTernary:
		zero := constant.NewFloat(types.Double, 0)
		cond := b.block.NewFCmp(enum.FPredONE, b.values[n.CondNode], zero)
		return b.block.NewSelect(cond, b.values[n.ThenNode], b.values[n.ElseNode]), nil
	case nlgraph.KindNary:
		return b.lowerNary(n)
	}
	return nil, modelerr.Compile(ErrUnknownOp)
}

func (b *llvmBuilder) lowerUnary(op nlgraph.UnaryOpKind, x value.Value) (value.Value, error) {
	switch op {
	case nlgraph.UnNeg:
		return b.block.NewFNeg(x), nil
	case nlgraph.UnAbs:
		return b.block.NewCall(b.intrinsic("llvm.fabs.f64"), x), nil
	case nlgraph.UnAcos:
		return b.block.NewCall(b.libmCall("acos"), x), nil
	case nlgraph.UnAsin:
		return b.block.NewCall(b.libmCall("asin"), x), nil
	case nlgraph.UnAtan:
		return b.block.NewCall(b.libmCall("atan"), x), nil
	case nlgraph.UnCos:
		return b.block.NewCall(b.intrinsic("llvm.cos.f64"), x), nil
	case nlgraph.UnExp:
		return b.block.NewCall(b.intrinsic("llvm.exp.f64"), x), nil
	case nlgraph.UnLog:
		return b.block.NewCall(b.intrinsic("llvm.log.f64"), x), nil
	case nlgraph.UnLog10:
		return b.block.NewCall(b.intrinsic("llvm.log10.f64"), x), nil
	case nlgraph.UnSin:
		return b.block.NewCall(b.intrinsic("llvm.sin.f64"), x), nil
	case nlgraph.UnSqrt:
		return b.block.NewCall(b.intrinsic("llvm.sqrt.f64"), x), nil
	case nlgraph.UnTan:
		return b.block.NewCall(b.libmCall("tan"), x), nil
	}
	return nil, modelerr.Compile(ErrUnknownOp)
}

func (b *llvmBuilder) lowerBinary(op nlgraph.BinaryOpKind, l, r value.Value) (value.Value, error) {
	switch op {
	case nlgraph.BinAdd:
		return b.block.NewFAdd(l, r), nil
	case nlgraph.BinSub:
		return b.block.NewFSub(l, r), nil
	case nlgraph.BinMul:
		return b.block.NewFMul(l, r), nil
	case nlgraph.BinDiv:
		return b.block.NewFDiv(l, r), nil
	case nlgraph.BinPow:
		return b.block.NewCall(b.intrinsic("llvm.pow.f64"), l, r), nil
	case nlgraph.BinEq:
		return b.boolToDouble(enum.FPredOEQ, l, r), nil
	case nlgraph.BinNeq:
		return b.boolToDouble(enum.FPredONE, l, r), nil
	case nlgraph.BinLt:
		return b.boolToDouble(enum.FPredOLT, l, r), nil
	case nlgraph.BinLeq:
		return b.boolToDouble(enum.FPredOLE, l, r), nil
	case nlgraph.BinGt:
		return b.boolToDouble(enum.FPredOGT, l, r), nil
	case nlgraph.BinGeq:
		return b.boolToDouble(enum.FPredOGE, l, r), nil
	case nlgraph.BinAzMul:
		zero := constant.NewFloat(types.Double, 0)
		isZero := b.block.NewFCmp(enum.FPredOEQ, l, zero)
		return b.block.NewSelect(isZero, zero, b.block.NewFMul(l, r)), nil
	}
	return nil, modelerr.Compile(ErrUnknownOp)
}

func (b *llvmBuilder) lowerNary(n nlgraph.Node) (value.Value, error) {
	if len(n.Children) == 0 {
		return nil, modelerr.Compile(ErrUnknownOp)
	}
	acc := b.values[n.Children[0]]
	for _, c := range n.Children[1:] {
		switch n.NaryOp {
		case nlgraph.NaryAdd:
			acc = b.block.NewFAdd(acc, b.values[c])
		case nlgraph.NaryMul:
			acc = b.block.NewFMul(acc, b.values[c])
		default:
			return nil, modelerr.Compile(ErrUnknownOp)
		}
	}
	return acc, nil
}

// boolToDouble turns an FCmp's i1 result into the 0.0/1.0 double value
// that comparisons carry everywhere else in this graph alphabet.
func (b *llvmBuilder) boolToDouble(pred enum.FPred, l, r value.Value) value.Value {
	cmp := b.block.NewFCmp(pred, l, r)
	return b.block.NewUIToFP(cmp, types.Double)
}

// intrinsic declares (once per module) an "llvm.*.f64" intrinsic with
// a fixed double(double) or double(double,double) signature, matching
// how many args were already used at the one call site that needs it.
func (b *llvmBuilder) intrinsic(name string) *ir.Func {
	if fn, ok := b.intrinsics[name]; ok {
		return fn
	}
	var fn *ir.Func
	if name == "llvm.pow.f64" {
		fn = b.m.NewFunc(name, types.Double, ir.NewParam("", types.Double), ir.NewParam("", types.Double))
	} else {
		fn = b.m.NewFunc(name, types.Double, ir.NewParam("", types.Double))
	}
	b.intrinsics[name] = fn
	return fn
}

// libmCall declares a plain libm symbol (no LLVM intrinsic exists for
// acos/asin/atan/tan), resolved at link time the same way a C back-end
// translation unit would resolve them via -lm.
func (b *llvmBuilder) libmCall(name string) *ir.Func {
	key := fmt.Sprintf("libm:%s", name)
	if fn, ok := b.intrinsics[key]; ok {
		return fn
	}
	fn := b.m.NewFunc(name, types.Double, ir.NewParam("", types.Double))
	b.intrinsics[key] = fn
	return fn
}
