// SPDX-License-Identifier: MIT
// Package indexer: sentinel error set.

package indexer

import "errors"

var (
	// ErrUnknownHandle indicates a handle that was never issued by this Indexer.
	ErrUnknownHandle = errors.New("indexer: unknown handle")

	// ErrAlreadyDeleted indicates Delete called twice on the same handle.
	ErrAlreadyDeleted = errors.New("indexer: handle already deleted")
)

// DeletedIndex is the sentinel dense index returned by Get for a deleted
// (or never-issued) handle, matching spec §3's "get_index(deleted) = -1".
const DeletedIndex = -1
