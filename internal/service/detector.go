// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Semenov

package service

import (
	"sort"

	"github.com/dsemenov/snipsync/internal/utils"
	"github.com/dsemenov/snipsync/models"
)

// syncKey returns the cross-replica matching key of a command: its SyncID,
// or its local ID for commands that have never been synced (SyncID defaults
// to ID on the first sync).
func syncKey(cmd models.Command) string {
	if cmd.SyncID != "" {
		return cmd.SyncID
	}
	return cmd.ID
}

// indexBySyncKey builds the syncId lookup for one snapshot.
func indexBySyncKey(snapshot []models.Command) map[string]models.Command {
	index := make(map[string]models.Command, len(snapshot))
	for _, cmd := range snapshot {
		index[syncKey(cmd)] = cmd
	}
	return index
}

// DetectConflicts compares the local and remote snapshots and returns every
// divergence that needs a human decision. It is a pure function of its
// inputs: running it twice on unchanged snapshots yields the same list, in
// ascending syncId order.
//
// Classification per syncId present on both sides:
//   - tombstoned on both sides: deletion is unanimous, no conflict;
//   - tombstoned locally only: deleted_local;
//   - tombstoned remotely only: deleted_remote;
//   - live on both with differing content hash AND both sides updated since
//     their own last sync: modified;
//   - live on both with differing hash but only one side updated: a
//     directional update, handled by the merge engine, not a conflict.
//
// Commands present in only one snapshot are pure additions and never
// conflict.
func DetectConflicts(local, remote []models.Command) []models.Conflict {
	remoteIndex := indexBySyncKey(remote)

	var conflicts []models.Conflict
	for _, lc := range local {
		rc, existsRemote := remoteIndex[syncKey(lc)]
		if !existsRemote {
			continue
		}

		switch {
		case lc.Deleted() && rc.Deleted():
			// Unanimous deletion, dropped at merge time.

		case lc.Deleted() && !rc.Deleted():
			conflicts = append(conflicts, models.Conflict{
				SyncID: syncKey(lc),
				Local:  lc,
				Remote: rc,
				Kind:   models.ConflictDeletedLocal,
			})

		case !lc.Deleted() && rc.Deleted():
			conflicts = append(conflicts, models.Conflict{
				SyncID: syncKey(lc),
				Local:  lc,
				Remote: rc,
				Kind:   models.ConflictDeletedRemote,
			})

		default:
			if utils.CommandHash(lc) == utils.CommandHash(rc) {
				continue
			}
			if lc.UpdatedSinceLastSync() && rc.UpdatedSinceLastSync() {
				conflicts = append(conflicts, models.Conflict{
					SyncID: syncKey(lc),
					Local:  lc,
					Remote: rc,
					Kind:   models.ConflictModified,
				})
			}
		}
	}

	sort.Slice(conflicts, func(i, j int) bool {
		return conflicts[i].SyncID < conflicts[j].SyncID
	})

	return conflicts
}
