// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Semenov

package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsemenov/snipsync/internal/service"
	"github.com/dsemenov/snipsync/models"
)

var baseTime = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func tp(t time.Time) *time.Time { return &t }

// testCommand builds a command that has already been through one sync:
// SyncID set, LastSyncedAt at baseTime, UpdatedAt at baseTime.
func testCommand(syncID, script string) models.Command {
	return models.Command{
		ID:           "local-" + syncID,
		SyncID:       syncID,
		Name:         syncID,
		Script:       script,
		CreatedAt:    baseTime.Add(-time.Hour),
		UpdatedAt:    baseTime,
		LastSyncedAt: tp(baseTime),
	}
}

// touched returns a copy modified after its last sync.
func touched(cmd models.Command, script string) models.Command {
	cmd.Script = script
	cmd.UpdatedAt = baseTime.Add(time.Minute)
	return cmd
}

// tombstoned returns a copy soft-deleted after its last sync.
func tombstoned(cmd models.Command) models.Command {
	cmd.DeletedAt = tp(baseTime.Add(time.Minute))
	cmd.UpdatedAt = baseTime.Add(time.Minute)
	return cmd
}

// --- DetectConflicts ---

func TestDetectConflicts_DisjointSnapshots(t *testing.T) {
	local := []models.Command{testCommand("a", "ls")}
	remote := []models.Command{testCommand("b", "pwd")}

	assert.Empty(t, service.DetectConflicts(local, remote))
}

func TestDetectConflicts_IdenticalContent(t *testing.T) {
	local := []models.Command{testCommand("a", "ls")}
	remote := []models.Command{testCommand("a", "ls")}

	assert.Empty(t, service.DetectConflicts(local, remote))
}

func TestDetectConflicts_BothSidesModified(t *testing.T) {
	base := testCommand("a", "ls")
	local := []models.Command{touched(base, "ls -la")}
	remote := []models.Command{touched(base, "ls -lh")}

	conflicts := service.DetectConflicts(local, remote)
	require.Len(t, conflicts, 1)
	assert.Equal(t, models.ConflictModified, conflicts[0].Kind)
	assert.Equal(t, "a", conflicts[0].SyncID)
	assert.Equal(t, "ls -la", conflicts[0].Local.Script)
	assert.Equal(t, "ls -lh", conflicts[0].Remote.Script)
}

func TestDetectConflicts_OneSidedUpdateIsNotAConflict(t *testing.T) {
	base := testCommand("a", "ls")
	local := []models.Command{base}
	remote := []models.Command{touched(base, "ls -la")}

	// Content differs but only the remote changed since its last sync:
	// that is a directional update for the merge engine.
	assert.Empty(t, service.DetectConflicts(local, remote))
	assert.Empty(t, service.DetectConflicts(remote, local))
}

func TestDetectConflicts_NeverSyncedCountsAsModified(t *testing.T) {
	base := testCommand("a", "ls")

	fresh := base
	fresh.LastSyncedAt = nil
	fresh.Script = "ls --color"

	conflicts := service.DetectConflicts([]models.Command{fresh}, []models.Command{touched(base, "ls -la")})
	require.Len(t, conflicts, 1)
	assert.Equal(t, models.ConflictModified, conflicts[0].Kind)
}

func TestDetectConflicts_DeletedLocal(t *testing.T) {
	base := testCommand("a", "ls")
	local := []models.Command{tombstoned(base)}
	remote := []models.Command{base}

	conflicts := service.DetectConflicts(local, remote)
	require.Len(t, conflicts, 1)
	assert.Equal(t, models.ConflictDeletedLocal, conflicts[0].Kind)
	assert.True(t, conflicts[0].Local.Deleted())
	assert.False(t, conflicts[0].Remote.Deleted())
}

func TestDetectConflicts_DeletedRemote(t *testing.T) {
	base := testCommand("a", "ls")
	conflicts := service.DetectConflicts([]models.Command{base}, []models.Command{tombstoned(base)})

	require.Len(t, conflicts, 1)
	assert.Equal(t, models.ConflictDeletedRemote, conflicts[0].Kind)
}

func TestDetectConflicts_UnanimousDeletion(t *testing.T) {
	base := testCommand("a", "ls")
	local := []models.Command{tombstoned(base)}
	remote := []models.Command{tombstoned(base)}

	assert.Empty(t, service.DetectConflicts(local, remote))
}

func TestDetectConflicts_MatchesUnsyncedLocalByID(t *testing.T) {
	// A local command with no SyncID matches a remote record whose syncId
	// equals the local id (another replica pushed it first).
	local := models.Command{
		ID:        "cmd-1",
		Name:      "a",
		Script:    "ls -la",
		UpdatedAt: baseTime.Add(time.Minute),
	}
	remote := testCommand("cmd-1", "ls -lh")
	remote.UpdatedAt = baseTime.Add(time.Minute)
	remote.LastSyncedAt = tp(baseTime)

	conflicts := service.DetectConflicts([]models.Command{local}, []models.Command{touched(remote, "ls -lh")})
	require.Len(t, conflicts, 1)
	assert.Equal(t, "cmd-1", conflicts[0].SyncID)
}

func TestDetectConflicts_SortedAndDeterministic(t *testing.T) {
	var local, remote []models.Command
	for _, id := range []string{"c", "a", "b"} {
		base := testCommand(id, "echo "+id)
		local = append(local, touched(base, "echo "+id+" local"))
		remote = append(remote, touched(base, "echo "+id+" remote"))
	}

	first := service.DetectConflicts(local, remote)
	second := service.DetectConflicts(local, remote)

	require.Len(t, first, 3)
	assert.Equal(t, "a", first[0].SyncID)
	assert.Equal(t, "b", first[1].SyncID)
	assert.Equal(t, "c", first[2].SyncID)
	assert.Equal(t, first, second)
}
