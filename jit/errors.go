// SPDX-License-Identifier: MIT
package jit

import "errors"

var (
	// ErrCompileFailed wraps a non-zero return from the underlying
	// compiler (libtcc's tcc_compile_string, or an LLVM parse/add-module
	// error) together with that backend's own diagnostic text.
	ErrCompileFailed = errors.New("jit: compile failed")
	// ErrRelocateFailed is returned when a translation unit compiled
	// cleanly but could not be relocated into executable memory.
	ErrRelocateFailed = errors.New("jit: relocate failed")
	// ErrSymbolNotFound is returned by GetSymbol when name was never
	// defined by any translation unit compiled into this JIT so far.
	ErrSymbolNotFound = errors.New("jit: symbol not found")
	// ErrClosed is returned by any JIT method called after Close.
	ErrClosed = errors.New("jit: use of closed JIT")
)
