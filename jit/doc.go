// Package jit owns the in-process native compilation described by spec
// §4.9: compiling a codegen-produced translation unit (C text or an
// LLVM IR module) into machine code and resolving its symbols without
// ever touching disk.
//
// Two engines share one JIT value and one symbol table: cEngine compiles
// C text through libtcc (TinyCC, embeddable as a library — the same
// "vendor a small C library behind cgo" shape the pack's go-nlopt
// binding uses for nlopt itself), and llvmEngine compiles an LLVM IR
// module through LLVM's C ORCv2 API (LLJIT). Both engines append their
// compiled translation unit to the same JIT instance; get_symbol looks
// across every TU compiled so far, and already-resolved symbols stay
// valid even after later TUs are added — spec §4.9's "must not lose
// symbols" rule, enforced here by never destroying an engine's
// underlying JIT/TCCState until the whole JIT is Closed.
package jit
