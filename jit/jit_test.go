// SPDX-License-Identifier: MIT
// These tests cover the package's pure-Go bookkeeping (symbol table
// accumulation, lifetime/close semantics) without touching libtcc or
// LLVM, since New() initializes both backend engines lazily on first
// CompileC/CompileLLVM call. No test in this module compiles native
// code through libtcc or LLVM.
package jit

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestGetSymbolUnknownNameFails(t *testing.T) {
	j := New()
	defer j.Close()

	_, err := j.GetSymbol("f_group0")
	require.ErrorIs(t, err, ErrSymbolNotFound)
	require.Equal(t, 0, j.SymbolCount())
}

func TestCloseIsIdempotentAndInvalidatesFurtherUse(t *testing.T) {
	j := New()
	require.NoError(t, j.Close())
	require.NoError(t, j.Close())

	_, err := j.GetSymbol("anything")
	require.ErrorIs(t, err, ErrClosed)

	err = j.CompileC("void f(void){}", "f")
	require.ErrorIs(t, err, ErrClosed)
}

func TestSymtabAccumulatesAndNeverDropsEarlierEntries(t *testing.T) {
	tab := newSymtab()
	one := new(int)
	two := new(int)

	tab.put("f_group0", unsafe.Pointer(one))
	require.Equal(t, 1, tab.len())

	tab.put("f_group1", unsafe.Pointer(two))
	require.Equal(t, 2, tab.len())

	addr, ok := tab.get("f_group0")
	require.True(t, ok)
	require.Equal(t, unsafe.Pointer(one), addr)
}
