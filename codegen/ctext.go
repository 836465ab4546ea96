// SPDX-License-Identifier: MIT
// File: ctext.go
// Role: the C-text back-end (spec §4.8): emits one translation unit
// defining F() per the fixed signature, handed to the in-process C JIT.

package codegen

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/modeling/modelerr"
	"github.com/katalvlaran/modeling/nlgraph"
)

// GenerateC lowers g's roots into a C translation unit defining a
// function named opts.FuncName with the fixed F() signature.
func GenerateC(g *nlgraph.Graph, roots []nlgraph.NodeID, opts Options) (string, error) {
	if len(roots) == 0 {
		return "", modelerr.Compile(ErrNoOutputs)
	}
	p := buildPlan(g, roots)

	var b strings.Builder
	b.WriteString("#include <math.h>\n#include <stddef.h>\n\n")

	fmt.Fprintf(&b, "void %s(const double* restrict x", opts.FuncName)
	if opts.HasParameter {
		b.WriteString(", const double* restrict p")
	}
	if opts.HasW {
		b.WriteString(", const double* restrict w")
	}
	b.WriteString(", double* restrict y")
	if opts.IndirectX {
		b.WriteString(", const size_t* restrict xi")
	}
	if opts.HasParameter && opts.IndirectP {
		b.WriteString(", const size_t* restrict pi")
	}
	if opts.HasW && opts.IndirectW {
		b.WriteString(", const size_t* restrict wi")
	}
	if opts.IndirectY {
		b.WriteString(", const size_t* restrict yi")
	}
	b.WriteString(") {\n")

	for _, id := range p.order {
		n := g.NodeAt(id)
		expr, err := cLowerNode(n, opts)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "    const double t%d = %s;\n", id, expr)
	}

	for i, root := range roots {
		yIdx := cOutputIndexExpr(opts.IndirectY, i)
		op := "="
		if opts.AddY {
			op = "+="
		}
		fmt.Fprintf(&b, "    y[%s] %s t%d;\n", yIdx, op, root)
	}
	b.WriteString("}\n")
	return b.String(), nil
}

// cOutputIndexExpr returns the literal output-slot index i when
// addressing y directly, or "yi[i]" when this function serves many
// GraphInstance members through an indirect y map.
func cOutputIndexExpr(indirect bool, i int) string {
	if indirect {
		return fmt.Sprintf("yi[%d]", i)
	}
	return fmt.Sprintf("%d", i)
}

func cVarRef(slot int, indirect bool, arrName, idxArrName string) string {
	if indirect {
		return fmt.Sprintf("%s[%s[%d]]", arrName, idxArrName, slot)
	}
	return fmt.Sprintf("%s[%d]", arrName, slot)
}

func cLowerNode(n nlgraph.Node, opts Options) (string, error) {
	switch n.Kind {
	case nlgraph.KindConstant:
		return fmt.Sprintf("%v", n.ConstValue), nil
	case nlgraph.KindVariable:
		return cVarRef(n.VarSlot, opts.IndirectX, "x", "xi"), nil
	case nlgraph.KindParameter:
		return cVarRef(n.ParamSlot, opts.IndirectP, "p", "pi"), nil
	case nlgraph.KindUnary:
		return cLowerUnary(n.UnaryOp, fmt.Sprintf("t%d", n.UnaryChild))
	case nlgraph.KindBinary:
		return cLowerBinary(n.BinaryOp, fmt.Sprintf("t%d", n.Left), fmt.Sprintf("t%d", n.Right))
	case nlgraph.KindTernary:
		return fmt.Sprintf("(t%d != 0.0) ? t%d : t%d", n.CondNode, n.ThenNode, n.ElseNode), nil
	case nlgraph.KindNary:
		return cLowerNary(n)
	}
	return "", modelerr.Compile(ErrUnknownOp)
}

func cLowerUnary(op nlgraph.UnaryOpKind, x string) (string, error) {
	switch op {
	case nlgraph.UnNeg:
		return fmt.Sprintf("(-%s)", x), nil
	case nlgraph.UnAbs:
		return fmt.Sprintf("fabs(%s)", x), nil
	case nlgraph.UnAcos:
		return fmt.Sprintf("acos(%s)", x), nil
	case nlgraph.UnAsin:
		return fmt.Sprintf("asin(%s)", x), nil
	case nlgraph.UnAtan:
		return fmt.Sprintf("atan(%s)", x), nil
	case nlgraph.UnCos:
		return fmt.Sprintf("cos(%s)", x), nil
	case nlgraph.UnExp:
		return fmt.Sprintf("exp(%s)", x), nil
	case nlgraph.UnLog:
		return fmt.Sprintf("log(%s)", x), nil
	case nlgraph.UnLog10:
		return fmt.Sprintf("log10(%s)", x), nil
	case nlgraph.UnSin:
		return fmt.Sprintf("sin(%s)", x), nil
	case nlgraph.UnSqrt:
		return fmt.Sprintf("sqrt(%s)", x), nil
	case nlgraph.UnTan:
		return fmt.Sprintf("tan(%s)", x), nil
	}
	return "", modelerr.Compile(ErrUnknownOp)
}

func cLowerBinary(op nlgraph.BinaryOpKind, l, r string) (string, error) {
	switch op {
	case nlgraph.BinAdd:
		return fmt.Sprintf("(%s + %s)", l, r), nil
	case nlgraph.BinSub:
		return fmt.Sprintf("(%s - %s)", l, r), nil
	case nlgraph.BinMul:
		return fmt.Sprintf("(%s * %s)", l, r), nil
	case nlgraph.BinDiv:
		return fmt.Sprintf("(%s / %s)", l, r), nil
	case nlgraph.BinPow:
		return fmt.Sprintf("pow(%s, %s)", l, r), nil
	case nlgraph.BinEq:
		return fmt.Sprintf("((double)(%s == %s))", l, r), nil
	case nlgraph.BinNeq:
		return fmt.Sprintf("((double)(%s != %s))", l, r), nil
	case nlgraph.BinLt:
		return fmt.Sprintf("((double)(%s < %s))", l, r), nil
	case nlgraph.BinLeq:
		return fmt.Sprintf("((double)(%s <= %s))", l, r), nil
	case nlgraph.BinGt:
		return fmt.Sprintf("((double)(%s > %s))", l, r), nil
	case nlgraph.BinGeq:
		return fmt.Sprintf("((double)(%s >= %s))", l, r), nil
	case nlgraph.BinAzMul:
		return fmt.Sprintf("((%s == 0.0) ? 0.0 : (%s * %s))", l, l, r), nil
	}
	return "", modelerr.Compile(ErrUnknownOp)
}

func cLowerNary(n nlgraph.Node) (string, error) {
	parts := make([]string, len(n.Children))
	for i, c := range n.Children {
		parts[i] = fmt.Sprintf("t%d", c)
	}
	var sep string
	switch n.NaryOp {
	case nlgraph.NaryAdd:
		sep = " + "
	case nlgraph.NaryMul:
		sep = " * "
	default:
		return "", modelerr.Compile(ErrUnknownOp)
	}
	return "(" + strings.Join(parts, sep) + ")", nil
}
