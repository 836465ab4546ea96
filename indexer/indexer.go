// SPDX-License-Identifier: MIT
// File: indexer.go
// Role: Indexer — the public stable-handle -> dense-index map.
// Concurrency: one RWMutex guards both the alive bitmap and the Fenwick
// tree, mirroring core.Graph's single-lock-per-concern discipline
// (muVert/muEdgeAdj in the teacher); here there is only one concern.

package indexer

import (
	"sync"

	"github.com/katalvlaran/modeling/modelerr"
)

// Handle is a stable, monotonically increasing identity. It is never
// reused: once issued by Add, the same integer never refers to a
// different logical entity, even after Delete (spec §3).
type Handle int32

// Indexer implements spec §4.2's stable-handle -> dense-index map.
type Indexer struct {
	mu     sync.RWMutex
	alive  []bool   // alive[h] true until Delete(h)
	bit    *fenwick // 1-based Fenwick tree of alive markers
	nextID Handle
}

// New returns an empty Indexer.
func New() *Indexer {
	return &Indexer{bit: newFenwick()}
}

// Add issues and returns a new handle, monotonically greater than every
// previously issued handle (spec §3 invariant (a)).
//
// Complexity: O(log n) amortized (Fenwick point update + occasional
// slice growth, itself amortized O(1)).
func (ix *Indexer) Add() Handle {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	h := ix.nextID
	ix.nextID++
	ix.alive = append(ix.alive, true)
	ix.bit.grow(len(ix.alive))
	ix.bit.add(int(h)+1, 1)
	return h
}

// Delete marks h as dead. Every still-live handle j>h now resolves to a
// dense index one smaller than before (spec §3 invariant (b)); this falls
// out of the Fenwick prefix-sum automatically, no shifting is performed.
//
// Complexity: O(log n).
func (ix *Indexer) Delete(h Handle) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if h < 0 || int(h) >= len(ix.alive) {
		return modelerr.User(ErrUnknownHandle)
	}
	if !ix.alive[h] {
		return modelerr.User(ErrAlreadyDeleted)
	}
	ix.alive[h] = false
	ix.bit.add(int(h)+1, -1)
	return nil
}

// Get resolves h to its current dense index, or DeletedIndex (-1) if h
// was deleted or never issued (spec §3 invariant (c)).
//
// Complexity: O(log n).
func (ix *Indexer) Get(h Handle) int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	if h < 0 || int(h) >= len(ix.alive) || !ix.alive[h] {
		return DeletedIndex
	}
	// Dense index is the count of alive handles strictly before h (0-based).
	return ix.bit.prefixSum(int(h))
}

// Len reports the number of currently live handles (the current dense
// size the solver would see).
func (ix *Indexer) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.bit.prefixSum(ix.bit.size)
}

// IsAlive reports whether h currently resolves to a dense index.
func (ix *Indexer) IsAlive(h Handle) bool {
	return ix.Get(h) != DeletedIndex
}

// LiveHandles returns, in ascending handle order, every currently-alive
// handle. O(n) — intended for diagnostics/iteration, not hot paths.
func (ix *Indexer) LiveHandles() []Handle {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	out := make([]Handle, 0, len(ix.alive))
	for h, a := range ix.alive {
		if a {
			out = append(out, Handle(h))
		}
	}
	return out
}
