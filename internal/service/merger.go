// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Semenov

package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"time"

	"github.com/dsemenov/snipsync/internal/utils"
	"github.com/dsemenov/snipsync/models"
)

// stampSynced marks a command as written by a successful sync: syncId
// assigned from the local id when absent, lastSyncedAt refreshed, content
// hash recomputed.
func stampSynced(cmd models.Command, now time.Time) models.Command {
	if cmd.SyncID == "" {
		cmd.SyncID = cmd.ID
	}
	t := now
	cmd.LastSyncedAt = &t
	cmd.Hash = utils.CommandHash(cmd)
	return cmd
}

// pickNewer decides a directional update between two commands sharing a
// syncId: identical content keeps the local copy, otherwise the side with
// the strictly later UpdatedAt wins and ties favor the local side.
func pickNewer(local, remote models.Command) models.Command {
	if utils.CommandHash(local) == utils.CommandHash(remote) {
		return local
	}
	if remote.UpdatedAt.After(local.UpdatedAt) {
		return remote
	}
	return local
}

// MergeNoConflict combines two snapshots known to carry no conflicts into
// the unified snapshot: union by syncId, directional last-write-wins for
// records present on both sides, tombstones excluded from the result. Every
// surviving record is stamped with lastSyncedAt = now.
//
// The result is sorted by syncId so repeated merges of unchanged inputs are
// byte-identical.
func MergeNoConflict(local, remote []models.Command, now time.Time) []models.Command {
	return mergeUnion(local, remote, now, nil)
}

// mergeUnion is the shared union pass behind MergeNoConflict and
// ApplyResolutions. Keys listed in skip are left out entirely (the
// resolution applier handles those itself).
func mergeUnion(local, remote []models.Command, now time.Time, skip map[string]bool) []models.Command {
	merged := make(map[string]models.Command, len(local)+len(remote))
	remoteIndex := indexBySyncKey(remote)

	for _, lc := range local {
		key := syncKey(lc)
		if skip[key] {
			continue
		}

		rc, existsRemote := remoteIndex[key]
		if !existsRemote {
			merged[key] = lc
			continue
		}
		merged[key] = pickNewer(lc, rc)
	}

	localIndex := indexBySyncKey(local)
	for _, rc := range remote {
		key := syncKey(rc)
		if skip[key] {
			continue
		}
		if _, existsLocal := localIndex[key]; existsLocal {
			continue
		}
		merged[key] = rc
	}

	return finalizeSnapshot(merged, now)
}

// finalizeSnapshot filters tombstones, stamps survivors and returns them in
// deterministic syncId order.
func finalizeSnapshot(merged map[string]models.Command, now time.Time) []models.Command {
	out := make([]models.Command, 0, len(merged))
	for _, cmd := range merged {
		if cmd.Deleted() {
			continue
		}
		out = append(out, stampSynced(cmd, now))
	}

	sort.Slice(out, func(i, j int) bool {
		return syncKey(out[i]) < syncKey(out[j])
	})

	return out
}

// SiblingSyncID derives the syncId under which a keep_both copy is inserted.
// Deterministic so the same conflict resolved the same way on two machines
// mints the same key.
func SiblingSyncID(syncID string) string {
	sum := sha256.Sum256([]byte(syncID))
	return syncID + "-copy-" + hex.EncodeToString(sum[:4])
}

// ApplyResolutions produces the unified snapshot from two conflicting
// snapshots and one resolution per conflict. Non-conflicting records pass
// through the same union rules as MergeNoConflict. Exactly one resolution
// per conflict is required; any missing one fails the whole merge.
//
// Per choice:
//   - keep_local: the local version survives at its syncId;
//   - keep_remote: the remote version survives, keyed by the local syncId;
//   - keep_both: the local version survives unchanged and the remote version
//     is inserted as a new record under a fresh id (from newID) and a
//     deterministic sibling syncId, its name annotated with provenance.
//
// Tombstoned survivors are filtered out, so confirming a deletion
// (keep_local on deleted_local, keep_remote on deleted_remote) drops the
// record from the result.
func ApplyResolutions(
	conflicts []models.Conflict,
	resolutions map[string]string,
	local, remote []models.Command,
	now time.Time,
	newID func() string,
) ([]models.Command, error) {
	skip := make(map[string]bool, len(conflicts))
	for _, c := range conflicts {
		skip[c.SyncID] = true
	}

	merged := make(map[string]models.Command, len(local)+len(remote))
	for _, cmd := range mergeUnion(local, remote, now, skip) {
		merged[syncKey(cmd)] = cmd
	}

	for _, c := range conflicts {
		choice, ok := resolutions[c.SyncID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrResolutionMissing, c.SyncID)
		}

		switch choice {
		case models.KeepLocal:
			merged[c.SyncID] = c.Local

		case models.KeepRemote:
			winner := c.Remote
			winner.SyncID = c.SyncID
			merged[c.SyncID] = winner

		case models.KeepBoth:
			merged[c.SyncID] = c.Local

			copied := c.Remote
			copied.ID = newID()
			copied.SyncID = SiblingSyncID(c.SyncID)
			copied.Name = copied.Name + " (remote copy)"
			copied.UpdatedAt = now
			merged[copied.SyncID] = copied

		default:
			return nil, fmt.Errorf("%w: %q for %s", ErrUnknownResolution, choice, c.SyncID)
		}
	}

	return finalizeSnapshot(merged, now), nil
}

// confirmedDeletions returns the tombstoned side of every delete conflict
// whose resolution confirmed the deletion. The orchestrator writes these
// back into the local store so a confirmed delete survives locally as a
// tombstone and propagates on the next push instead of being resurrected by
// the untouched local row.
func confirmedDeletions(conflicts []models.Conflict, resolutions map[string]string) []models.Command {
	var tombstones []models.Command
	for _, c := range conflicts {
		switch {
		case c.Kind == models.ConflictDeletedLocal && resolutions[c.SyncID] == models.KeepLocal:
			tombstones = append(tombstones, c.Local)
		case c.Kind == models.ConflictDeletedRemote && resolutions[c.SyncID] == models.KeepRemote:
			rc := c.Remote
			rc.SyncID = c.SyncID
			tombstones = append(tombstones, rc)
		}
	}
	return tombstones
}
