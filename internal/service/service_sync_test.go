// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Semenov

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dsemenov/snipsync/internal/adapter"
	"github.com/dsemenov/snipsync/internal/logger"
	"github.com/dsemenov/snipsync/internal/mock"
	"github.com/dsemenov/snipsync/models"
)

var (
	syncNow  = time.Date(2026, 8, 3, 10, 0, 0, 0, time.UTC)
	syncCred = models.Credential{Token: "test-token"}
)

// newTestSyncSvc builds a syncService with mocked collaborators and a frozen
// clock and id sequence.
func newTestSyncSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*syncService,
	*mock.MockCommandRepository,
	*mock.MockSyncMetaRepository,
	*mock.MockRemoteBlobClient,
	*mock.MockResolver,
) {
	t.Helper()

	cmds := mock.NewMockCommandRepository(ctrl)
	meta := mock.NewMockSyncMetaRepository(ctrl)
	remote := mock.NewMockRemoteBlobClient(ctrl)
	resolver := mock.NewMockResolver(ctrl)

	n := 0
	svc := &syncService{
		commands: cmds,
		meta:     meta,
		remote:   remote,
		resolver: resolver,
		newID: func() string {
			n++
			return fmt.Sprintf("new-%d", n)
		},
		now:    func() time.Time { return syncNow },
		logger: logger.Nop(),
	}

	return svc, cmds, meta, remote, resolver
}

func syncedCmd(syncID, script string) models.Command {
	synced := syncNow.Add(-time.Hour)
	return models.Command{
		ID:           "local-" + syncID,
		SyncID:       syncID,
		Name:         syncID,
		Script:       script,
		CreatedAt:    synced.Add(-time.Hour),
		UpdatedAt:    synced,
		LastSyncedAt: &synced,
	}
}

func modified(cmd models.Command, script string) models.Command {
	cmd.Script = script
	cmd.UpdatedAt = syncNow.Add(-time.Minute)
	return cmd
}

func deleted(cmd models.Command) models.Command {
	when := syncNow.Add(-time.Minute)
	cmd.DeletedAt = &when
	cmd.UpdatedAt = when
	return cmd
}

// ── Push ────────────────────────────────────────────────────────────────────

func TestSyncService_Push_CreatesBlobFirstTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, cmds, meta, remote, _ := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	fresh := models.Command{ID: "cmd-1", Name: "list", Script: "ls", UpdatedAt: syncNow.Add(-time.Hour)}

	remote.EXPECT().Authenticate(ctx).Return(syncCred, nil)
	cmds.EXPECT().GetAll(ctx).Return([]models.Command{fresh}, nil)
	cmds.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, stamped ...models.Command) error {
			require.Len(t, stamped, 1)
			assert.Equal(t, "cmd-1", stamped[0].SyncID, "syncId claimed from the local id")
			require.NotNil(t, stamped[0].LastSyncedAt)
			assert.Equal(t, syncNow, *stamped[0].LastSyncedAt)
			assert.NotEmpty(t, stamped[0].Hash)
			return nil
		},
	)
	meta.EXPECT().SyncVersion(ctx).Return(int64(0), nil)
	meta.EXPECT().Handle(ctx).Return("", nil)
	remote.EXPECT().Create(ctx, syncCred, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.Credential, payload models.RemotePayload) (string, error) {
			assert.Equal(t, models.PayloadVersion, payload.Version)
			assert.Equal(t, int64(1), payload.SyncVersion)
			assert.Equal(t, syncNow, payload.ExportedAt)
			assert.Len(t, payload.Commands, 1)
			return "handle-1", nil
		},
	)
	meta.EXPECT().SetHandle(ctx, "handle-1").Return(nil)
	meta.EXPECT().SetSyncVersion(ctx, int64(1)).Return(nil)

	require.NoError(t, svc.Push(ctx))
}

func TestSyncService_Push_UpdatesExistingBlob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, cmds, meta, remote, _ := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	remote.EXPECT().Authenticate(ctx).Return(syncCred, nil)
	cmds.EXPECT().GetAll(ctx).Return([]models.Command{syncedCmd("a", "ls")}, nil)
	cmds.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
	meta.EXPECT().SyncVersion(ctx).Return(int64(7), nil)
	meta.EXPECT().Handle(ctx).Return("handle-1", nil)
	remote.EXPECT().Update(ctx, syncCred, "handle-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.Credential, _ string, payload models.RemotePayload) error {
			assert.Equal(t, int64(8), payload.SyncVersion)
			return nil
		},
	)
	meta.EXPECT().SetSyncVersion(ctx, int64(8)).Return(nil)

	require.NoError(t, svc.Push(ctx))
}

func TestSyncService_Push_RecreatesGoneBlob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, cmds, meta, remote, _ := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	remote.EXPECT().Authenticate(ctx).Return(syncCred, nil)
	cmds.EXPECT().GetAll(ctx).Return([]models.Command{syncedCmd("a", "ls")}, nil)
	cmds.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
	meta.EXPECT().SyncVersion(ctx).Return(int64(3), nil)
	meta.EXPECT().Handle(ctx).Return("stale", nil)

	gomock.InOrder(
		remote.EXPECT().Update(ctx, syncCred, "stale", gomock.Any()).Return(adapter.ErrHandleNotFound),
		meta.EXPECT().ClearHandle(ctx).Return(nil),
		remote.EXPECT().Create(ctx, syncCred, gomock.Any()).Return("fresh", nil),
		meta.EXPECT().SetHandle(ctx, "fresh").Return(nil),
	)
	meta.EXPECT().SetSyncVersion(ctx, int64(4)).Return(nil)

	require.NoError(t, svc.Push(ctx))
}

func TestSyncService_Push_RecreateFailureLeavesVersionUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, cmds, meta, remote, _ := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	createErr := errors.New("remote rejected create")

	remote.EXPECT().Authenticate(ctx).Return(syncCred, nil)
	cmds.EXPECT().GetAll(ctx).Return([]models.Command{syncedCmd("a", "ls")}, nil)
	cmds.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
	meta.EXPECT().SyncVersion(ctx).Return(int64(3), nil)
	meta.EXPECT().Handle(ctx).Return("stale", nil)

	gomock.InOrder(
		remote.EXPECT().Update(ctx, syncCred, "stale", gomock.Any()).Return(adapter.ErrHandleNotFound),
		meta.EXPECT().ClearHandle(ctx).Return(nil),
		remote.EXPECT().Create(ctx, syncCred, gomock.Any()).Return("", createErr),
	)
	// No SetHandle and no SetSyncVersion: the counter stays at 3.

	require.ErrorIs(t, svc.Push(ctx), createErr)
}

func TestSyncService_Push_AuthFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, remote, _ := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	remote.EXPECT().Authenticate(ctx).Return(models.Credential{}, adapter.ErrUnauthorized)

	err := svc.Push(ctx)
	require.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Contains(t, err.Error(), "authentication failed")
}

func TestSyncService_Push_VersionNotPersistedOnTransmitFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, cmds, meta, remote, _ := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	transmitErr := errors.New("remote exploded")

	remote.EXPECT().Authenticate(ctx).Return(syncCred, nil)
	cmds.EXPECT().GetAll(ctx).Return([]models.Command{syncedCmd("a", "ls")}, nil)
	cmds.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
	meta.EXPECT().SyncVersion(ctx).Return(int64(3), nil)
	meta.EXPECT().Handle(ctx).Return("handle-1", nil)
	remote.EXPECT().Update(ctx, syncCred, "handle-1", gomock.Any()).Return(transmitErr)
	// No SetSyncVersion expectation: the counter stays at 3.

	require.ErrorIs(t, svc.Push(ctx), transmitErr)
}

func TestSyncService_Push_TransmitsTombstones(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, cmds, meta, remote, _ := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	live := syncedCmd("a", "ls")
	dead := deleted(syncedCmd("b", "pwd"))

	remote.EXPECT().Authenticate(ctx).Return(syncCred, nil)
	cmds.EXPECT().GetAll(ctx).Return([]models.Command{live, dead}, nil)
	cmds.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
	meta.EXPECT().SyncVersion(ctx).Return(int64(0), nil)
	meta.EXPECT().Handle(ctx).Return("handle-1", nil)
	remote.EXPECT().Update(ctx, syncCred, "handle-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.Credential, _ string, payload models.RemotePayload) error {
			require.Len(t, payload.Commands, 2, "deletions propagate through the pushed payload")
			var tombstones int
			for _, c := range payload.Commands {
				if c.Deleted() {
					tombstones++
				}
			}
			assert.Equal(t, 1, tombstones)
			return nil
		},
	)
	meta.EXPECT().SetSyncVersion(ctx, int64(1)).Return(nil)

	require.NoError(t, svc.Push(ctx))
}

// ── Pull ────────────────────────────────────────────────────────────────────

func TestSyncService_Pull_NothingToPull(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, meta, remote, _ := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	remote.EXPECT().Authenticate(ctx).Return(syncCred, nil)
	meta.EXPECT().Handle(ctx).Return("", nil)
	remote.EXPECT().FindExisting(ctx, syncCred).Return("", nil)

	require.ErrorIs(t, svc.Pull(ctx), ErrNothingToPull)
}

func TestSyncService_Pull_AdoptsDiscoveredHandle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, cmds, meta, remote, _ := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	payload := &models.RemotePayload{
		Version:  models.PayloadVersion,
		Commands: []models.Command{syncedCmd("a", "ls")},
	}

	remote.EXPECT().Authenticate(ctx).Return(syncCred, nil)
	meta.EXPECT().Handle(ctx).Return("", nil)
	remote.EXPECT().FindExisting(ctx, syncCred).Return("found-1", nil)
	meta.EXPECT().SetHandle(ctx, "found-1").Return(nil)
	remote.EXPECT().Fetch(ctx, syncCred, "found-1").Return(payload, nil)
	cmds.EXPECT().MergeSave(ctx, payload.Commands).Return(nil)

	require.NoError(t, svc.Pull(ctx))
}

func TestSyncService_Pull_MergesRemoteSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, cmds, meta, remote, _ := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	payload := &models.RemotePayload{
		Version:  models.PayloadVersion,
		Commands: []models.Command{syncedCmd("a", "ls"), syncedCmd("b", "pwd")},
	}

	remote.EXPECT().Authenticate(ctx).Return(syncCred, nil)
	meta.EXPECT().Handle(ctx).Return("handle-1", nil)
	remote.EXPECT().Fetch(ctx, syncCred, "handle-1").Return(payload, nil)
	cmds.EXPECT().MergeSave(ctx, payload.Commands).Return(nil)

	require.NoError(t, svc.Pull(ctx))
}

// ── Sync ────────────────────────────────────────────────────────────────────

// expectPush wires the mock calls of the trailing push phase of Sync.
func expectPush(
	ctx context.Context,
	cmds *mock.MockCommandRepository,
	meta *mock.MockSyncMetaRepository,
	remote *mock.MockRemoteBlobClient,
	snapshot []models.Command,
	version int64,
	handle string,
) {
	cmds.EXPECT().GetAll(ctx).Return(snapshot, nil)
	cmds.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
	meta.EXPECT().SyncVersion(ctx).Return(version, nil)
	meta.EXPECT().Handle(ctx).Return(handle, nil)
	if handle == "" {
		remote.EXPECT().Create(ctx, syncCred, gomock.Any()).Return("created", nil)
		meta.EXPECT().SetHandle(ctx, "created").Return(nil)
	} else {
		remote.EXPECT().Update(ctx, syncCred, handle, gomock.Any()).Return(nil)
	}
	meta.EXPECT().SetSyncVersion(ctx, version+1).Return(nil)
}

func TestSyncService_Sync_DegradesToPushWithoutRemoteLibrary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, cmds, meta, remote, _ := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	remote.EXPECT().Authenticate(ctx).Return(syncCred, nil)
	meta.EXPECT().Handle(ctx).Return("", nil)
	remote.EXPECT().FindExisting(ctx, syncCred).Return("", nil)

	expectPush(ctx, cmds, meta, remote, []models.Command{syncedCmd("a", "ls")}, 0, "")

	require.NoError(t, svc.Sync(ctx))
}

func TestSyncService_Sync_DegradesToPushWithEmptyLibrary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, cmds, meta, remote, _ := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	remote.EXPECT().Authenticate(ctx).Return(syncCred, nil)
	meta.EXPECT().Handle(ctx).Return("", nil)
	remote.EXPECT().FindExisting(ctx, syncCred).Return("", nil)

	cmds.EXPECT().GetAll(ctx).Return(nil, nil)
	cmds.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
	meta.EXPECT().SyncVersion(ctx).Return(int64(0), nil)
	meta.EXPECT().Handle(ctx).Return("", nil)
	remote.EXPECT().Create(ctx, syncCred, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.Credential, payload models.RemotePayload) (string, error) {
			assert.Empty(t, payload.Commands, "an empty library publishes an empty snapshot")
			assert.Equal(t, int64(1), payload.SyncVersion)
			return "created", nil
		},
	)
	meta.EXPECT().SetHandle(ctx, "created").Return(nil)
	meta.EXPECT().SetSyncVersion(ctx, int64(1)).Return(nil)

	require.NoError(t, svc.Sync(ctx))
}

func TestSyncService_Sync_TwiceWithoutChangesIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, cmds, meta, remote, _ := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	// Stateful collaborators: the local store and the version counter carry
	// over between the two runs, and the second fetch returns exactly what
	// the first run pushed. No resolver expectations are registered, so any
	// prompt fails the test.
	stored := []models.Command{syncedCmd("a", "ls"), syncedCmd("b", "pwd")}
	version := int64(5)
	var pushed []models.RemotePayload

	remote.EXPECT().Authenticate(ctx).Return(syncCred, nil).Times(2)
	meta.EXPECT().Handle(ctx).Return("handle-1", nil).Times(4)
	remote.EXPECT().Fetch(ctx, syncCred, "handle-1").DoAndReturn(
		func(context.Context, models.Credential, string) (*models.RemotePayload, error) {
			if len(pushed) > 0 {
				last := pushed[len(pushed)-1]
				return &last, nil
			}
			return &models.RemotePayload{
				Version:     models.PayloadVersion,
				Commands:    append([]models.Command(nil), stored...),
				SyncVersion: version,
			}, nil
		},
	).Times(2)
	cmds.EXPECT().GetAll(ctx).DoAndReturn(
		func(context.Context) ([]models.Command, error) {
			return append([]models.Command(nil), stored...), nil
		},
	).Times(4)
	cmds.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, written ...models.Command) error {
			stored = append([]models.Command(nil), written...)
			return nil
		},
	).Times(4)
	meta.EXPECT().SyncVersion(ctx).DoAndReturn(
		func(context.Context) (int64, error) { return version, nil },
	).Times(2)
	remote.EXPECT().Update(ctx, syncCred, "handle-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.Credential, _ string, payload models.RemotePayload) error {
			pushed = append(pushed, payload)
			return nil
		},
	).Times(2)
	meta.EXPECT().SetSyncVersion(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, v int64) error {
			version = v
			return nil
		},
	).Times(2)

	require.NoError(t, svc.Sync(ctx))
	require.NoError(t, svc.Sync(ctx))

	require.Len(t, pushed, 2)
	assert.Equal(t, pushed[0].Commands, pushed[1].Commands, "second run leaves the snapshot unchanged")
	assert.Equal(t, int64(6), pushed[0].SyncVersion)
	assert.Equal(t, int64(7), pushed[1].SyncVersion, "version grows by exactly one per run")
	assert.Equal(t, int64(7), version)
}

func TestSyncService_Sync_NoConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, cmds, meta, remote, _ := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	local := syncedCmd("a", "ls")
	remoteOnly := syncedCmd("b", "pwd")
	payload := &models.RemotePayload{Version: models.PayloadVersion, Commands: []models.Command{remoteOnly}}

	remote.EXPECT().Authenticate(ctx).Return(syncCred, nil)
	meta.EXPECT().Handle(ctx).Return("handle-1", nil)
	remote.EXPECT().Fetch(ctx, syncCred, "handle-1").Return(payload, nil)
	cmds.EXPECT().GetAll(ctx).Return([]models.Command{local}, nil)

	var unified []models.Command
	cmds.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, written ...models.Command) error {
			unified = written
			return nil
		},
	)

	expectPush(ctx, cmds, meta, remote, nil, 2, "handle-1")

	require.NoError(t, svc.Sync(ctx))

	require.Len(t, unified, 2)
	assert.Equal(t, "a", unified[0].SyncID)
	assert.Equal(t, "b", unified[1].SyncID)
	for _, c := range unified {
		require.NotNil(t, c.LastSyncedAt)
		assert.Equal(t, syncNow, *c.LastSyncedAt)
	}
}

func TestSyncService_Sync_AppliesResolverChoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, cmds, meta, remote, resolver := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	base := syncedCmd("a", "ls")
	local := modified(base, "ls -la")
	remoteSide := modified(base, "ls -lh")
	payload := &models.RemotePayload{Version: models.PayloadVersion, Commands: []models.Command{remoteSide}}

	remote.EXPECT().Authenticate(ctx).Return(syncCred, nil)
	meta.EXPECT().Handle(ctx).Return("handle-1", nil)
	remote.EXPECT().Fetch(ctx, syncCred, "handle-1").Return(payload, nil)
	cmds.EXPECT().GetAll(ctx).Return([]models.Command{local}, nil)

	resolver.EXPECT().Resolve(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, c models.Conflict) (string, error) {
			assert.Equal(t, models.ConflictModified, c.Kind)
			assert.Equal(t, "a", c.SyncID)
			return models.KeepRemote, nil
		},
	)

	cmds.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, written ...models.Command) error {
			require.Len(t, written, 1)
			assert.Equal(t, "ls -lh", written[0].Script)
			return nil
		},
	)

	expectPush(ctx, cmds, meta, remote, nil, 0, "handle-1")

	require.NoError(t, svc.Sync(ctx))
}

func TestSyncService_Sync_CancellationAbortsWithoutWrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, cmds, meta, remote, resolver := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	base := syncedCmd("a", "ls")
	first := base
	second := syncedCmd("b", "pwd")
	payload := &models.RemotePayload{
		Version:  models.PayloadVersion,
		Commands: []models.Command{modified(first, "ls -lh"), modified(second, "pwd -P")},
	}

	remote.EXPECT().Authenticate(ctx).Return(syncCred, nil)
	meta.EXPECT().Handle(ctx).Return("handle-1", nil)
	remote.EXPECT().Fetch(ctx, syncCred, "handle-1").Return(payload, nil)
	cmds.EXPECT().GetAll(ctx).Return([]models.Command{modified(base, "ls -la"), modified(second, "pwd -L")}, nil)

	// The first prompt answers, the second cancels; no write to either
	// replica may happen.
	gomock.InOrder(
		resolver.EXPECT().Resolve(ctx, gomock.Any()).Return(models.KeepLocal, nil),
		resolver.EXPECT().Resolve(ctx, gomock.Any()).Return("", ErrResolutionCancelled),
	)

	require.ErrorIs(t, svc.Sync(ctx), ErrResolutionCancelled)
}

func TestSyncService_Sync_ResolverFailureIsNotCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, cmds, meta, remote, resolver := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	base := syncedCmd("a", "ls")
	payload := &models.RemotePayload{
		Version:  models.PayloadVersion,
		Commands: []models.Command{modified(base, "ls -lh")},
	}

	remote.EXPECT().Authenticate(ctx).Return(syncCred, nil)
	meta.EXPECT().Handle(ctx).Return("handle-1", nil)
	remote.EXPECT().Fetch(ctx, syncCred, "handle-1").Return(payload, nil)
	cmds.EXPECT().GetAll(ctx).Return([]models.Command{modified(base, "ls -la")}, nil)

	promptErr := errors.New("prompt backend unavailable")
	resolver.EXPECT().Resolve(ctx, gomock.Any()).Return("", promptErr)

	err := svc.Sync(ctx)
	require.ErrorIs(t, err, promptErr)
	require.NotErrorIs(t, err, ErrResolutionCancelled, "a broken resolver must not read as a user cancellation")
}

func TestSyncService_Sync_ConfirmedDeletionPersistsTombstone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, cmds, meta, remote, resolver := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	base := syncedCmd("a", "ls")
	remoteTombstone := deleted(base)
	payload := &models.RemotePayload{Version: models.PayloadVersion, Commands: []models.Command{remoteTombstone}}

	remote.EXPECT().Authenticate(ctx).Return(syncCred, nil)
	meta.EXPECT().Handle(ctx).Return("handle-1", nil)
	remote.EXPECT().Fetch(ctx, syncCred, "handle-1").Return(payload, nil)
	cmds.EXPECT().GetAll(ctx).Return([]models.Command{base}, nil)

	resolver.EXPECT().Resolve(ctx, gomock.Any()).Return(models.KeepRemote, nil)

	cmds.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, written ...models.Command) error {
			require.Len(t, written, 1, "unified snapshot is empty, only the tombstone is written")
			assert.True(t, written[0].Deleted())
			assert.Equal(t, "a", written[0].SyncID)
			return nil
		},
	)

	expectPush(ctx, cmds, meta, remote, nil, 0, "handle-1")

	require.NoError(t, svc.Sync(ctx))
}

func TestSyncService_Sync_BlobGoneDegradesToPush(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, cmds, meta, remote, _ := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	remote.EXPECT().Authenticate(ctx).Return(syncCred, nil)
	meta.EXPECT().Handle(ctx).Return("stale", nil)
	remote.EXPECT().Fetch(ctx, syncCred, "stale").Return(nil, adapter.ErrHandleNotFound)
	meta.EXPECT().ClearHandle(ctx).Return(nil)

	expectPush(ctx, cmds, meta, remote, []models.Command{syncedCmd("a", "ls")}, 1, "")

	require.NoError(t, svc.Sync(ctx))
}

func TestSyncService_OperationsAreSerialized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	svc.mu.Lock()
	defer svc.mu.Unlock()

	require.ErrorIs(t, svc.Push(ctx), ErrSyncInProgress)
	require.ErrorIs(t, svc.Pull(ctx), ErrSyncInProgress)
	require.ErrorIs(t, svc.Sync(ctx), ErrSyncInProgress)
}
