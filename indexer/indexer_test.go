// SPDX-License-Identifier: MIT
package indexer

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStableHandlesUnderDeletion(t *testing.T) {
	ix := New()
	var handles []Handle
	for i := 0; i < 10; i++ {
		handles = append(handles, ix.Add())
	}
	require.NoError(t, ix.Delete(handles[3]))
	require.Equal(t, DeletedIndex, ix.Get(handles[3]))

	// every live handle above the deleted one shifts down by exactly one.
	for i, h := range handles {
		if i == 3 {
			continue
		}
		want := i
		if i > 3 {
			want = i - 1
		}
		require.Equal(t, want, ix.Get(h), "handle %d", h)
	}
}

func TestDeleteUnknownOrTwice(t *testing.T) {
	ix := New()
	h := ix.Add()
	require.ErrorIs(t, ix.Delete(Handle(999)), ErrUnknownHandle)
	require.NoError(t, ix.Delete(h))
	require.ErrorIs(t, ix.Delete(h), ErrAlreadyDeleted)
}

func TestRandomizedAddDeleteAgreesWithNaiveModel(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ix := New()
	var handles []Handle
	live := map[Handle]bool{}

	for step := 0; step < 5000; step++ {
		if len(handles) == 0 || rng.Intn(2) == 0 {
			h := ix.Add()
			handles = append(handles, h)
			live[h] = true
		} else {
			h := handles[rng.Intn(len(handles))]
			wasLive := live[h]
			err := ix.Delete(h)
			if wasLive {
				require.NoError(t, err)
				live[h] = false
			} else {
				require.Error(t, err)
			}
		}
	}

	// Rebuild the naive dense mapping and compare against the Fenwick one.
	dense := 0
	for _, h := range handles {
		if live[h] {
			require.Equal(t, dense, ix.Get(h))
			dense++
		} else {
			require.Equal(t, DeletedIndex, ix.Get(h))
		}
	}
	require.Equal(t, dense, ix.Len())
}
