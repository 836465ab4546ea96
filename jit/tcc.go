// SPDX-License-Identifier: MIT
// File: tcc.go
// Role: the C-text engine. Binds libtcc (TinyCC compiled as a library)
// the same way the pack's go-nlopt vendor file binds nlopt: a #cgo
// LDFLAGS/pkg-config pair, an opaque C handle wrapped in a Go struct,
// a mutex guarding every call into it.

package jit

/*
#cgo pkg-config: libtcc
#cgo LDFLAGS: -ltcc -ldl
#include <stdlib.h>
#include <libtcc.h>

// TCC_OUTPUT_MEMORY is libtcc.h's in-memory relocation mode: compiled
// code never touches disk, matching spec §4.9's "never touches disk"
// requirement for the whole jit package.
#ifndef TCC_OUTPUT_MEMORY
#define TCC_OUTPUT_MEMORY 1
#endif
*/
import "C"

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/katalvlaran/modeling/modelerr"
)

// cEngine owns one libtcc TCCState per compiled translation unit. Each
// TU gets its own state (libtcc relocates and frees as a unit, and a
// single state can only be set up for output once), but every state's
// symbols are copied into the shared symtab before the state is ever
// discarded — so a later TU's state being created never invalidates a
// symbol handed out earlier. Symbol resolution therefore never needs to
// touch a TCCState after its own compile+relocate call returns. Close
// deletes every state, and the code behind every symbol with it.
type cEngine struct {
	mu     sync.Mutex
	states []*C.TCCState
}

func newCEngine() *cEngine { return &cEngine{} }

// compile compiles src as one translation unit, relocates it into
// executable memory, and records every name in names into tab. names
// is the set of top-level function names GenerateC emitted (the caller
// knows this; libtcc has no "list all defined symbols" API).
func (e *cEngine) compile(src string, names []string, tab *symtab) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	state := C.tcc_new()
	if state == nil {
		return modelerr.Compile(fmt.Errorf("%w: tcc_new returned NULL", ErrCompileFailed))
	}
	if C.tcc_set_output_type(state, C.TCC_OUTPUT_MEMORY) < 0 {
		C.tcc_delete(state)
		return modelerr.Compile(fmt.Errorf("%w: tcc_set_output_type", ErrCompileFailed))
	}

	cSrc := C.CString(src)
	defer C.free(unsafe.Pointer(cSrc))
	if C.tcc_compile_string(state, cSrc) < 0 {
		C.tcc_delete(state)
		return modelerr.Compile(fmt.Errorf("%w: tcc_compile_string rejected translation unit", ErrCompileFailed))
	}

	// TCC_RELOCATE_AUTO: let libtcc allocate and manage the executable
	// memory region itself, rather than sizing a buffer ourselves.
	if C.tcc_relocate(state, C.TCC_RELOCATE_AUTO) < 0 {
		C.tcc_delete(state)
		return modelerr.Compile(ErrRelocateFailed)
	}

	for _, name := range names {
		cName := C.CString(name)
		addr := C.tcc_get_symbol(state, cName)
		C.free(unsafe.Pointer(cName))
		if addr == nil {
			C.tcc_delete(state)
			return modelerr.Compile(fmt.Errorf("%w: symbol %q not defined after relocation", ErrSymbolNotFound, name))
		}
		tab.put(name, unsafe.Pointer(addr))
	}

	// Kept alive (not tcc_delete'd) for the engine's own lifetime: the
	// relocated code backing tab's addresses lives inside this state's
	// memory, so freeing it now would dangle every pointer just handed
	// out.
	e.states = append(e.states, state)
	return nil
}

func (e *cEngine) close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, s := range e.states {
		C.tcc_delete(s)
	}
	e.states = nil
}
