// SPDX-License-Identifier: MIT
// File: groups.go
// Role: partitions every recorded NLTerm into graphhash groups and
// resolves each member's variable slots against the model's dense
// variable indexing, ready for compile.go to differentiate/codegen/jit
// once per distinct group.

package model

import (
	"github.com/katalvlaran/modeling/graphhash"
	"github.com/katalvlaran/modeling/indexer"
	"github.com/katalvlaran/modeling/modelerr"
)

// instance is one NLTerm after grouping: which group it belongs to, and
// the dense model-variable index each of its graph's variable slots
// resolves to (the xi array codegen's IndirectX addressing reads).
type instance struct {
	term    *NLTerm
	member  graphhash.Member
	xi      []uint64
}

// partition groups every recorded nlTerm by structural shape and
// resolves xi for each. Deterministic: nlTerms are walked in ascending
// handle order (indexer.Handle is itself monotonically issued), so two
// Optimize() calls against an identically-built model produce the same
// groups in the same order.
func (m *NLPModel) partition() ([]instance, error) {
	handles := m.nlIdx.LiveHandles()
	out := make([]instance, 0, len(handles))
	for _, h := range handles {
		term := m.nlTerms[h]
		member := m.grouper.Add(term.Graph, term.Root)
		xi := make([]uint64, len(member.VarIdxs))
		for i, v := range member.VarIdxs {
			idx := m.varIdx.Get(indexer.Handle(v))
			if idx < 0 {
				return nil, modelerr.User(ErrUnknownVariable)
			}
			xi[i] = uint64(idx)
		}
		out = append(out, instance{term: term, member: member, xi: xi})
	}
	return out, nil
}
