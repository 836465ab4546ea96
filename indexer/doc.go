// Package indexer implements the stable-handle -> dense-index map
// described in spec §4.2: Add issues a monotonically increasing handle,
// Delete marks it dead and shifts every still-live handle above it down
// by one dense slot, and Get resolves a handle to its current dense
// index or -1 if deleted.
//
// A naive implementation shifts every live slot above a deletion, which
// is O(n) per delete. Spec §4.2 explicitly rules that out for the
// hundreds-of-thousands-of-deletions workloads this module targets; this
// package instead keeps a Fenwick tree (binary indexed tree) of "alive"
// counts over the handle range, giving O(log n) Add/Delete/Get.
//
// Grounded on core/adjacency_list.go's mutex-guarded mutation discipline
// (RWMutex around a slice-backed catalog), adapted from "adjacency
// bookkeeping under edge mutation" to "dense-slot bookkeeping under
// deletion".
package indexer
