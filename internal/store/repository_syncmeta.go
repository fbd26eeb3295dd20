// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Semenov

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/dsemenov/snipsync/internal/logger"
)

// sync_meta keys. The handle is the opaque identifier of the remote blob;
// the version is the monotonic counter bumped on every push.
const (
	metaKeyHandle      = "remote_handle"
	metaKeySyncVersion = "sync_version"
)

type syncMetaRepository struct {
	*DB
	logger *logger.Logger
}

func NewSyncMetaRepository(db *DB, logger *logger.Logger) SyncMetaRepository {
	return &syncMetaRepository{
		DB:     db,
		logger: logger,
	}
}

// Handle returns the stored remote blob handle, or "" when none is known.
func (r *syncMetaRepository) Handle(ctx context.Context) (string, error) {
	value, err := r.get(ctx, metaKeyHandle)
	if errors.Is(err, ErrMetaNotFound) {
		return "", nil
	}
	return value, err
}

func (r *syncMetaRepository) SetHandle(ctx context.Context, handle string) error {
	return r.set(ctx, metaKeyHandle, handle)
}

func (r *syncMetaRepository) ClearHandle(ctx context.Context) error {
	query, args, err := buildDeleteMetaQuery(metaKeyHandle)
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "syncMetaRepository.ClearHandle").
			Msg("failed to clear remote handle")
		return fmt.Errorf("failed to clear remote handle: %w", err)
	}

	return nil
}

// SyncVersion returns the persisted counter, or 0 before the first push.
func (r *syncMetaRepository) SyncVersion(ctx context.Context) (int64, error) {
	value, err := r.get(ctx, metaKeySyncVersion)
	if errors.Is(err, ErrMetaNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	version, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse sync version %q: %w", value, err)
	}
	return version, nil
}

func (r *syncMetaRepository) SetSyncVersion(ctx context.Context, version int64) error {
	return r.set(ctx, metaKeySyncVersion, strconv.FormatInt(version, 10))
}

func (r *syncMetaRepository) get(ctx context.Context, key string) (string, error) {
	query, args, err := buildSelectMetaQuery(key)
	if err != nil {
		return "", fmt.Errorf("failed to build select query: %w", err)
	}

	var value string
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrMetaNotFound
		}
		r.logger.Err(err).
			Str("func", "syncMetaRepository.get").
			Str("key", key).
			Msg("failed to read sync meta value")
		return "", fmt.Errorf("failed to read sync meta %q: %w", key, err)
	}

	return value, nil
}

func (r *syncMetaRepository) set(ctx context.Context, key, value string) error {
	query, args, err := buildUpsertMetaQuery(key, value)
	if err != nil {
		return fmt.Errorf("failed to build upsert query: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "syncMetaRepository.set").
			Str("key", key).
			Msg("failed to write sync meta value")
		return fmt.Errorf("failed to write sync meta %q: %w", key, err)
	}

	return nil
}
