// SPDX-License-Identifier: MIT
// File: llvmorc.go
// Role: the LLVM IR engine. Binds LLVM's C API ORCv2 JIT (LLJIT),
// which takes the textual IR codegen's LLVM backend produces (via
// github.com/llir/llvm/ir's *ir.Module.String()) and turns it into
// machine code behind one long-lived LLJIT instance, mirroring the
// single-long-lived-opaque-handle shape of cEngine/tcc.go.

package jit

/*
#cgo pkg-config: llvm
#include <stdlib.h>
#include <llvm-c/Core.h>
#include <llvm-c/IRReader.h>
#include <llvm-c/Error.h>
#include <llvm-c/LLJIT.h>
#include <llvm-c/Orc.h>
*/
import "C"

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/katalvlaran/modeling/modelerr"
)

// llvmEngine owns one long-lived LLJIT instance; every IR module
// compiled through it is added to that same instance's main JITDylib,
// so earlier lookups stay valid for as long as the instance itself is
// alive (spec §4.9's lifetime rule), and a later AddLLVMIRModule call
// only adds new definitions rather than replacing the instance.
type llvmEngine struct {
	mu   sync.Mutex
	jit  C.LLVMOrcLLJITRef
	jd   C.LLVMOrcJITDylibRef
	tsCtx C.LLVMOrcThreadSafeContextRef
}

func newLLVMEngine() (*llvmEngine, error) {
	builder := C.LLVMOrcCreateLLJITBuilder()
	var jit C.LLVMOrcLLJITRef
	if errRef := C.LLVMOrcCreateLLJIT(&jit, builder); errRef != nil {
		return nil, modelerr.Compile(fmt.Errorf("%w: %s", ErrCompileFailed, orcErrMessage(errRef)))
	}
	return &llvmEngine{
		jit:   jit,
		jd:    C.LLVMOrcLLJITGetMainJITDylib(jit),
		tsCtx: C.LLVMOrcCreateNewThreadSafeContext(),
	}, nil
}

// compile parses irText (the textual form of one *ir.Module) and adds
// it as a new translation unit to the running LLJIT instance. names
// lists the top-level function names the caller expects to resolve
// afterward, recorded into tab exactly once relocation (LLJIT's lazy
// compile-on-lookup) actually succeeds.
func (e *llvmEngine) compile(irText string, names []string, tab *symtab) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	ctx := C.LLVMOrcThreadSafeContextGetContext(e.tsCtx)
	cText := C.CString(irText)
	defer C.free(unsafe.Pointer(cText))
	buf := C.LLVMCreateMemoryBufferWithMemoryRangeCopy(cText, C.size_t(len(irText)), C.CString("module"))

	var mod C.LLVMModuleRef
	var errMsg *C.char
	if C.LLVMParseIRInContext(ctx, buf, &mod, &errMsg) != 0 {
		msg := C.GoString(errMsg)
		C.LLVMDisposeMessage(errMsg)
		return modelerr.Compile(fmt.Errorf("%w: %s", ErrCompileFailed, msg))
	}

	tsm := C.LLVMOrcCreateNewThreadSafeModule(mod, e.tsCtx)
	if errRef := C.LLVMOrcLLJITAddLLVMIRModule(e.jit, e.jd, tsm); errRef != nil {
		return modelerr.Compile(fmt.Errorf("%w: %s", ErrCompileFailed, orcErrMessage(errRef)))
	}

	for _, name := range names {
		cName := C.CString(name)
		var addr C.LLVMOrcJITTargetAddress
		errRef := C.LLVMOrcLLJITLookup(e.jit, &addr, cName)
		C.free(unsafe.Pointer(cName))
		if errRef != nil {
			return modelerr.Compile(fmt.Errorf("%w: %s: %s", ErrSymbolNotFound, name, orcErrMessage(errRef)))
		}
		tab.put(name, unsafe.Pointer(uintptr(addr)))
	}
	return nil
}

func (e *llvmEngine) close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.jit != nil {
		C.LLVMOrcDisposeLLJIT(e.jit)
		e.jit = nil
	}
}

// orcErrMessage consumes (and disposes) an LLVMErrorRef into a string.
func orcErrMessage(errRef C.LLVMErrorRef) string {
	cMsg := C.LLVMGetErrorMessage(errRef)
	msg := C.GoString(cMsg)
	C.LLVMDisposeErrorMessage(cMsg)
	return msg
}
