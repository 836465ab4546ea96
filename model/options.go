// SPDX-License-Identifier: MIT
// File: options.go
// Role: functional options for New, grounded on builder/options.go's
// "type Option func(*config); With* validates and panics on meaningless
// input, everything else flows through one unexported struct" shape.

package model

// Backend selects which codegen/JIT pipeline compileArtifactFunc lowers
// a group's artifact graphs through.
type Backend int

const (
	// BackendC lowers through codegen.GenerateC and jit.(*JIT).CompileC
	// (tcc). This is the default: it needs no LLVM toolchain present.
	BackendC Backend = iota
	// BackendLLVM lowers through codegen.GenerateLLVM and
	// jit.(*JIT).CompileLLVM (LLVM ORC).
	BackendLLVM
)

// config is New's resolved construction-time state; Option mutates it
// before the NLPModel itself is built.
type config struct {
	backend Backend
}

func defaultConfig() config {
	return config{backend: BackendC}
}

// Option customizes New. Complexity: applying N options costs O(N) time.
type Option func(*config)

// WithLLVMBackend selects the LLVM ORC codegen/JIT pipeline for every
// group this model compiles, instead of the default tcc pipeline.
func WithLLVMBackend() Option {
	return func(c *config) { c.backend = BackendLLVM }
}
