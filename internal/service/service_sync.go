// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Semenov

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dsemenov/snipsync/internal/adapter"
	"github.com/dsemenov/snipsync/internal/logger"
	"github.com/dsemenov/snipsync/internal/store"
	"github.com/dsemenov/snipsync/models"
)

// syncService drives push, pull and full synchronization. It owns the only
// mutable sync state outside the command store (the remote blob handle and
// the monotonic sync version), both persisted through the injected
// SyncMetaRepository, never held as ambient globals.
//
// The remote side offers no transactional guarantee: a push is a
// read-version/increment/write sequence, so two independent clients racing
// to push can overwrite each other's counter. Known limitation, accepted;
// the intended semantics under true concurrent multi-writer sync are
// unspecified upstream.
type syncService struct {
	commands store.CommandRepository
	meta     store.SyncMetaRepository
	remote   adapter.RemoteBlobClient
	resolver Resolver

	newID func() string
	now   func() time.Time

	// mu serializes Push/Pull/Sync: both read-then-write the local store
	// without isolation, so two flights against it would corrupt state.
	mu sync.Mutex

	logger *logger.Logger
}

// IDGenerator mints identifiers for commands created during resolution
// (keep_both copies).
type IDGenerator interface {
	Generate() string
}

func NewSyncService(
	storages *store.Storages,
	remote adapter.RemoteBlobClient,
	resolver Resolver,
	ids IDGenerator,
	log *logger.Logger,
) SyncService {
	return &syncService{
		commands: storages.Commands,
		meta:     storages.SyncMeta,
		remote:   remote,
		resolver: resolver,
		newID:    ids.Generate,
		now:      time.Now,
		logger:   log,
	}
}

// Push implements [SyncService]. It stamps the full local snapshot
// (tombstones included, so deletions propagate), writes it back, transmits
// it with an incremented sync version, and persists the counter only after
// the transmission is confirmed.
func (s *syncService) Push(ctx context.Context) error {
	if !s.mu.TryLock() {
		return ErrSyncInProgress
	}
	defer s.mu.Unlock()

	cred, err := s.remote.Authenticate(ctx)
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	return s.push(ctx, cred)
}

// push is the locked push body shared by Push and Sync.
func (s *syncService) push(ctx context.Context, cred models.Credential) error {
	snapshot, err := s.commands.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("read local snapshot: %w", err)
	}

	now := s.now()
	stamped := make([]models.Command, len(snapshot))
	for i, cmd := range snapshot {
		stamped[i] = stampSynced(cmd, now)
	}

	if err = s.commands.Upsert(ctx, stamped...); err != nil {
		return fmt.Errorf("write stamped snapshot: %w", err)
	}

	version, err := s.meta.SyncVersion(ctx)
	if err != nil {
		return fmt.Errorf("read sync version: %w", err)
	}
	next := version + 1

	payload := models.RemotePayload{
		Version:     models.PayloadVersion,
		Commands:    stamped,
		ExportedAt:  now,
		SyncVersion: next,
	}

	if err = s.transmit(ctx, cred, payload); err != nil {
		return err
	}

	if err = s.meta.SetSyncVersion(ctx, next); err != nil {
		return fmt.Errorf("persist sync version: %w", err)
	}

	s.logger.Info().
		Int64("sync_version", next).
		Int("commands", len(stamped)).
		Msg("pushed library to remote")
	return nil
}

// transmit publishes the payload: create when no handle is stored, update
// otherwise. When the update reports the handle gone (the blob was deleted
// out-of-band), the stored handle is cleared and creation is retried exactly
// once; a second failure propagates.
func (s *syncService) transmit(ctx context.Context, cred models.Credential, payload models.RemotePayload) error {
	handle, err := s.meta.Handle(ctx)
	if err != nil {
		return fmt.Errorf("read remote handle: %w", err)
	}

	if handle == "" {
		return s.createBlob(ctx, cred, payload)
	}

	err = s.remote.Update(ctx, cred, handle, payload)
	if err == nil {
		return nil
	}
	if !errors.Is(err, adapter.ErrHandleNotFound) {
		return fmt.Errorf("update remote blob: %w", err)
	}

	s.logger.Warn().
		Str("handle", handle).
		Msg("remote blob gone, recreating")
	if err = s.meta.ClearHandle(ctx); err != nil {
		return fmt.Errorf("clear stale remote handle: %w", err)
	}

	return s.createBlob(ctx, cred, payload)
}

func (s *syncService) createBlob(ctx context.Context, cred models.Credential, payload models.RemotePayload) error {
	handle, err := s.remote.Create(ctx, cred, payload)
	if err != nil {
		return fmt.Errorf("create remote blob: %w", err)
	}

	if err = s.meta.SetHandle(ctx, handle); err != nil {
		return fmt.Errorf("persist remote handle: %w", err)
	}

	return nil
}

// Pull implements [SyncService]. It requires a resolvable remote handle
// (searching by the well-known filename marker when none is stored), fetches
// the remote snapshot and merge-writes it into the local store: per record,
// the newer UpdatedAt wins.
func (s *syncService) Pull(ctx context.Context) error {
	if !s.mu.TryLock() {
		return ErrSyncInProgress
	}
	defer s.mu.Unlock()

	cred, err := s.remote.Authenticate(ctx)
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	handle, err := s.resolveHandle(ctx, cred)
	if err != nil {
		return err
	}
	if handle == "" {
		return ErrNothingToPull
	}

	payload, err := s.remote.Fetch(ctx, cred, handle)
	if err != nil {
		return fmt.Errorf("fetch remote snapshot: %w", err)
	}

	if err = s.commands.MergeSave(ctx, payload.Commands); err != nil {
		return fmt.Errorf("merge remote snapshot: %w", err)
	}

	s.logger.Info().
		Int("commands", len(payload.Commands)).
		Msg("pulled library from remote")
	return nil
}

// Sync implements [SyncService]. With no resolvable handle it degrades to a
// plain push. Otherwise it fetches the remote snapshot, detects conflicts,
// collects one resolution per conflict (cancellation anywhere aborts with no
// writes to either replica), computes the unified snapshot, persists it
// locally and finishes with a push that publishes it.
func (s *syncService) Sync(ctx context.Context) error {
	if !s.mu.TryLock() {
		return ErrSyncInProgress
	}
	defer s.mu.Unlock()

	cred, err := s.remote.Authenticate(ctx)
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	handle, err := s.resolveHandle(ctx, cred)
	if err != nil {
		return err
	}
	if handle == "" {
		s.logger.Debug().Msg("no remote library yet, degrading sync to push")
		return s.push(ctx, cred)
	}

	payload, err := s.remote.Fetch(ctx, cred, handle)
	if err != nil {
		if errors.Is(err, adapter.ErrHandleNotFound) {
			s.logger.Warn().
				Str("handle", handle).
				Msg("remote blob gone, degrading sync to push")
			if clearErr := s.meta.ClearHandle(ctx); clearErr != nil {
				return fmt.Errorf("clear stale remote handle: %w", clearErr)
			}
			return s.push(ctx, cred)
		}
		return fmt.Errorf("fetch remote snapshot: %w", err)
	}

	local, err := s.commands.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("read local snapshot: %w", err)
	}

	now := s.now()
	conflicts := DetectConflicts(local, payload.Commands)

	var unified []models.Command
	if len(conflicts) == 0 {
		unified = MergeNoConflict(local, payload.Commands, now)
	} else {
		resolutions, err := s.collectResolutions(ctx, conflicts)
		if err != nil {
			return err
		}

		unified, err = ApplyResolutions(conflicts, resolutions, local, payload.Commands, now, s.newID)
		if err != nil {
			return err
		}

		// Confirmed deletions must land in the local store as tombstones,
		// not vanish from the unified set only.
		unified = append(unified, confirmedDeletions(conflicts, resolutions)...)
	}

	if err = s.commands.Upsert(ctx, unified...); err != nil {
		return fmt.Errorf("write unified snapshot: %w", err)
	}

	return s.push(ctx, cred)
}

// collectResolutions prompts the resolver once per conflict, in detector
// order. Any cancellation or failure aborts the whole sync before a single
// write has happened.
func (s *syncService) collectResolutions(ctx context.Context, conflicts []models.Conflict) (map[string]string, error) {
	resolutions := make(map[string]string, len(conflicts))
	for _, c := range conflicts {
		choice, err := s.resolver.Resolve(ctx, c)
		if err != nil {
			if errors.Is(err, ErrResolutionCancelled) {
				return nil, err
			}
			// A broken resolver is not a cancellation; keep the cause visible.
			return nil, fmt.Errorf("resolve conflict %s: %w", c.SyncID, err)
		}
		resolutions[c.SyncID] = choice
	}
	return resolutions, nil
}

// resolveHandle returns the stored remote handle, searching the service by
// the well-known filename marker (and persisting the adopted handle) when
// none is stored yet. An empty result means no remote library exists.
func (s *syncService) resolveHandle(ctx context.Context, cred models.Credential) (string, error) {
	handle, err := s.meta.Handle(ctx)
	if err != nil {
		return "", fmt.Errorf("read remote handle: %w", err)
	}
	if handle != "" {
		return handle, nil
	}

	handle, err = s.remote.FindExisting(ctx, cred)
	if err != nil {
		return "", fmt.Errorf("search remote library: %w", err)
	}
	if handle == "" {
		return "", nil
	}

	if err = s.meta.SetHandle(ctx, handle); err != nil {
		return "", fmt.Errorf("persist adopted remote handle: %w", err)
	}

	return handle, nil
}
