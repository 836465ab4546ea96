// SPDX-License-Identifier: MIT
// File: autoload.go
// Role: autoload_library (spec §6/§4.11): walks a per-back-end ordered
// candidate list (home environment variable, then OS default names)
// and dlopen's the first one that succeeds. Uses
// github.com/ebitengine/purego the same way jit's engines use cgo: a
// thin wrapper over a native loader API, one opaque handle per loaded
// library. Loaded libraries are never closed by this package.

package solver

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/ebitengine/purego"
	"github.com/katalvlaran/modeling/modelerr"
)

// LibrarySpec names one back-end's discovery recipe: the environment
// variable pointing at its home directory (if any), the relative path
// under that home where the shared library normally lives, and the
// bare OS-default library names to fall back to (searched via the
// platform's normal dynamic-linker search path).
type LibrarySpec struct {
	HomeEnvVar      string
	RelPathUnix     string
	RelPathWindows  string
	DefaultNamesUnix []string
	DefaultNamesWindows []string
}

// Known back-end discovery recipes (spec §6's named environment
// variables and default library names).
var (
	GurobiSpec = LibrarySpec{
		HomeEnvVar: "GUROBI_HOME", RelPathUnix: "lib/libgurobi110.so", RelPathWindows: `bin\gurobi110.dll`,
		DefaultNamesUnix: []string{"libgurobi110.so"}, DefaultNamesWindows: []string{"gurobi110.dll"},
	}
	CoptSpec = LibrarySpec{
		HomeEnvVar: "COPT_HOME", RelPathUnix: "lib/libcopt.so", RelPathWindows: `bin\copt.dll`,
		DefaultNamesUnix: []string{"libcopt.so"}, DefaultNamesWindows: []string{"copt.dll"},
	}
	XpressSpec = LibrarySpec{
		HomeEnvVar: "XPRESSDIR", RelPathUnix: "lib/libxprs.so", RelPathWindows: `bin\xprs.dll`,
		DefaultNamesUnix: []string{"libxprs.so"}, DefaultNamesWindows: []string{"xprs.dll"},
	}
	MosekSpec = LibrarySpec{
		HomeEnvVar: "MOSEK_10_x_BINDIR", RelPathUnix: "libmosek64.so", RelPathWindows: `mosek64.dll`,
		DefaultNamesUnix: []string{"libmosek64.so"}, DefaultNamesWindows: []string{"mosek64.dll"},
	}
	KnitroSpec = LibrarySpec{
		HomeEnvVar: "KNITRODIR", RelPathUnix: "lib/libknitro.so", RelPathWindows: `lib\knitro.dll`,
		DefaultNamesUnix: []string{"libknitro.so"}, DefaultNamesWindows: []string{"knitro.dll"},
	}
	HighsSpec = LibrarySpec{
		HomeEnvVar: "HiGHS_HOME", RelPathUnix: "lib/libhighs.so", RelPathWindows: `bin\highs.dll`,
		DefaultNamesUnix: []string{"libhighs.so"}, DefaultNamesWindows: []string{"highs.dll"},
	}
)

// candidates returns spec's ordered path list for this platform: the
// home-env-var path first, then bare default names resolved through
// the OS loader's own search path.
func (s LibrarySpec) candidates() []string {
	var out []string
	rel, names := s.RelPathUnix, s.DefaultNamesUnix
	if runtime.GOOS == "windows" {
		rel, names = s.RelPathWindows, s.DefaultNamesWindows
	}
	if s.HomeEnvVar != "" {
		if home := os.Getenv(s.HomeEnvVar); home != "" {
			out = append(out, filepath.Join(home, rel))
		}
	}
	out = append(out, names...)
	return out
}

// autoloadLibrary walks spec.candidates(), dlopen-ing each in turn via
// purego, and returns the first handle that loads successfully.
// Explicit loadLibrary(path) (below) overrides this search entirely.
func autoloadLibrary(spec LibrarySpec) (uintptr, error) {
	for _, path := range spec.candidates() {
		if h, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL); err == nil {
			return h, nil
		}
	}
	return 0, modelerr.Library(ErrLibraryNotFound)
}

// loadLibrary is the explicit override: load exactly path, no search.
func loadLibrary(path string) (uintptr, error) {
	h, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, modelerr.Library(ErrLibraryNotFound)
	}
	return h, nil
}

// mustSymbol resolves name in the loaded library lib, returning
// ErrSymbolMissing (a LibraryError) rather than purego's own panic-on-
// missing-symbol behavior, so a back-end adapter can report a clean
// LibraryError instead of crashing the process.
func mustSymbol(lib uintptr, name string) (addr uintptr, err error) {
	defer func() {
		if r := recover(); r != nil {
			addr, err = 0, modelerr.Library(ErrSymbolMissing)
		}
	}()
	addr, err = purego.Dlsym(lib, name)
	if err != nil {
		return 0, modelerr.Library(ErrSymbolMissing)
	}
	return addr, nil
}
