// SPDX-License-Identifier: MIT
// File: module.go
// Role: the public JIT façade model/solver drive — one JIT per running
// model, holding one symtab shared by both backend engines (they never
// share a function name in practice, since codegen names every
// function after its owning group, but sharing one table is what makes
// GetSymbol a single lookup regardless of which backend produced it).

package jit

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/katalvlaran/modeling/modelerr"
	"github.com/llir/llvm/ir"
)

// JIT compiles codegen-produced translation units in memory and
// resolves their symbols. The zero value is not usable; use New.
type JIT struct {
	mu     sync.Mutex
	tab    *symtab
	cEng   *cEngine
	llvmEng *llvmEngine
	closed bool
}

// New returns a JIT with both backend engines lazily initialized on
// first use (CompileC never needs LLVM, CompileLLVM never needs tcc).
func New() *JIT {
	return &JIT{tab: newSymtab()}
}

// CompileC compiles src as one C translation unit and registers every
// name in funcNames in this JIT's symbol table. funcNames is normally
// the single group function name codegen's Options.FuncName produced
// it under.
func (j *JIT) CompileC(src string, funcNames ...string) error {
	j.mu.Lock()
	if j.closed {
		j.mu.Unlock()
		return modelerr.User(ErrClosed)
	}
	if j.cEng == nil {
		j.cEng = newCEngine()
	}
	eng := j.cEng
	j.mu.Unlock()

	return eng.compile(src, funcNames, j.tab)
}

// CompileLLVM compiles an in-memory *ir.Module (as produced by
// codegen.GenerateLLVM) and registers funcNames in this JIT's symbol
// table. The module is rendered to textual IR before being handed to
// LLVM's C API, since LLJIT's AddLLVMIRModule operates on an
// LLVMModuleRef parsed inside LLVM's own C context, not on llir/llvm's
// Go-side representation.
func (j *JIT) CompileLLVM(m *ir.Module, funcNames ...string) error {
	j.mu.Lock()
	if j.closed {
		j.mu.Unlock()
		return modelerr.User(ErrClosed)
	}
	if j.llvmEng == nil {
		eng, err := newLLVMEngine()
		if err != nil {
			j.mu.Unlock()
			return err
		}
		j.llvmEng = eng
	}
	eng := j.llvmEng
	j.mu.Unlock()

	return eng.compile(m.String(), funcNames, j.tab)
}

// GetSymbol resolves name against every translation unit compiled into
// this JIT so far, by either backend. Relocation already happened
// inside CompileC/CompileLLVM, so this is a pure lookup — spec §4.9's
// "relocation must happen before any symbol lookup" ordering is
// structural here, not something a caller can get wrong.
func (j *JIT) GetSymbol(name string) (unsafe.Pointer, error) {
	j.mu.Lock()
	closed := j.closed
	j.mu.Unlock()
	if closed {
		return nil, modelerr.User(ErrClosed)
	}
	addr, ok := j.tab.get(name)
	if !ok {
		return nil, modelerr.Compile(fmt.Errorf("%w: %s", ErrSymbolNotFound, name))
	}
	return addr, nil
}

// SymbolCount reports how many distinct names have been resolved so
// far, across every translation unit compiled into this JIT.
func (j *JIT) SymbolCount() int { return j.tab.len() }

// Close releases both backend engines' native resources. Every symbol
// previously handed out by GetSymbol becomes invalid the instant Close
// returns; callers must not call any compiled function pointer after
// this. Safe to call once; a second call is a no-op.
func (j *JIT) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.closed {
		return nil
	}
	j.closed = true
	if j.cEng != nil {
		j.cEng.close()
	}
	if j.llvmEng != nil {
		j.llvmEng.close()
	}
	return nil
}
