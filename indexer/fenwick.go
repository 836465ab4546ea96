// SPDX-License-Identifier: MIT
// File: fenwick.go
// Role: a binary-indexed tree (Fenwick tree) of 0/1 "alive" markers over
// the handle range, giving O(log n) point update and prefix-sum query.
// This is the data structure spec §4.2 requires in place of an O(n)
// shift-on-delete array.

package indexer

// fenwick is a 1-indexed Fenwick tree over a dynamically growing range.
// tree[i] accumulates the alive-count of a range ending at i (standard
// Fenwick layout); size is the current capacity (number of handles ever
// issued).
type fenwick struct {
	tree []int
	size int
}

func newFenwick() *fenwick {
	return &fenwick{tree: []int{0}, size: 0} // tree[0] unused (1-indexed)
}

// grow extends the tree to cover handle index newSize-1 (0-based), i.e.
// ensures capacity for positions 1..newSize.
func (f *fenwick) grow(newSize int) {
	for len(f.tree) <= newSize {
		i := len(f.tree)
		f.tree = append(f.tree, f.prefixSum(i-1)-f.prefixSum(i-(i&-i)))
	}
	f.size = newSize
}

// add applies delta (+1 on issue, -1 on delete) at 1-based position pos.
func (f *fenwick) add(pos, delta int) {
	for i := pos; i <= f.size; i += i & (-i) {
		f.tree[i] += delta
	}
}

// prefixSum returns the sum of alive-markers over 1-based positions [1,pos].
func (f *fenwick) prefixSum(pos int) int {
	sum := 0
	for i := pos; i > 0; i -= i & (-i) {
		sum += f.tree[i]
	}
	return sum
}
