// SPDX-License-Identifier: MIT
// File: sparse.go
// Role: bulk linear constraint construction from a gosl/la.Triplet
// (coordinate-form sparse matrix), the sparse-input counterpart to
// dense.go's BuildLinearRows.

package matrixglue

import (
	"github.com/cpmech/gosl/la"
	"github.com/katalvlaran/modeling/exprcore"
	"github.com/katalvlaran/modeling/modelerr"
)

// BuildLinearRowsFromTriplet groups t's (row,col,value) entries by row
// and builds one *exprcore.SAF per row present in t (rows with no
// entries at all are omitted, not zero-filled — a sparse assembly's
// whole point). len(vars) must equal t's declared column count.
func BuildLinearRowsFromTriplet(t *la.Triplet, vars []exprcore.VarIdx) (map[int]*exprcore.SAF, error) {
	_, n := t.Size()
	if n != len(vars) {
		return nil, modelerr.User(ErrDimensionMismatch)
	}

	byRow := make(map[int]struct {
		vs []exprcore.VarIdx
		cs []float64
	})
	for k := 0; k < t.Pos; k++ {
		i, j, v := t.Ai[k], t.Aj[k], t.Ax[k]
		entry := byRow[i]
		entry.vs = append(entry.vs, vars[j])
		entry.cs = append(entry.cs, v)
		byRow[i] = entry
	}

	out := make(map[int]*exprcore.SAF, len(byRow))
	for row, entry := range byRow {
		saf, err := exprcore.NewSAF(entry.vs, entry.cs, 0)
		if err != nil {
			return nil, err
		}
		out[row] = saf.Canonicalize()
	}
	return out, nil
}
