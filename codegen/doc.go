// Package codegen lowers one autodiff-produced expression graph into a
// function of the fixed signature spec §4.8 defines:
//
//	void F(const double* x, const double* p, const double* w, double* y,
//	       const size_t* xi, const size_t* pi, const size_t* wi, const size_t* yi);
//
// p/w/their index arrays are only present when the graph has parameter
// slots / is a Hessian evaluator; xi/pi/wi/yi are only present when the
// caller asked for indirect addressing (the multi-instance case: many
// GraphInstance members share one compiled function and differ only in
// which x/y slots they read and write).
//
// Two backends share one lowering walk (the plan built by buildPlan, in
// plan.go) over the same
// node alphabet the representative graph and its autodiff derivatives
// are built from: GenerateC emits a C-text translation unit for the
// in-process C JIT; GenerateLLVM builds an in-memory LLVM IR module via
// github.com/llir/llvm for the LLVM ORC JIT. Both walk the arena in
// increasing NodeID order, so for a fixed graph and fixed Options the
// emitted output is byte-for-byte deterministic.
package codegen
