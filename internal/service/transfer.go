// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Semenov

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dsemenov/snipsync/internal/adapter"
	"github.com/dsemenov/snipsync/internal/logger"
	"github.com/dsemenov/snipsync/internal/store"
	"github.com/dsemenov/snipsync/models"
)

// transferService reads and writes the library as a local file using the
// same payload schema as the remote blob, so an exported file can be
// imported on another machine (or fed back through a future sync).
type transferService struct {
	commands store.CommandRepository
	meta     store.SyncMetaRepository

	now func() time.Time

	logger *logger.Logger
}

func NewTransferService(storages *store.Storages, log *logger.Logger) TransferService {
	return &transferService{
		commands: storages.Commands,
		meta:     storages.SyncMeta,
		now:      time.Now,
		logger:   log,
	}
}

// Export implements [TransferService]. The file carries the full snapshot,
// tombstones included, with the current sync version for traceability.
func (s *transferService) Export(ctx context.Context, path string) error {
	snapshot, err := s.commands.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("read local snapshot: %w", err)
	}

	version, err := s.meta.SyncVersion(ctx)
	if err != nil {
		return fmt.Errorf("read sync version: %w", err)
	}

	payload := models.RemotePayload{
		Version:     models.PayloadVersion,
		Commands:    snapshot,
		ExportedAt:  s.now(),
		SyncVersion: version,
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode export payload: %w", err)
	}

	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}

	s.logger.Info().
		Str("path", path).
		Int("commands", len(snapshot)).
		Msg("exported library to file")
	return nil
}

// Import implements [TransferService]. The file is validated against the
// shared payload contract and merged through the same entry point as pull:
// per record, the newer UpdatedAt wins. A malformed file aborts with the
// local store untouched.
func (s *transferService) Import(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read import file: %w", err)
	}

	payload, err := adapter.DecodePayload(data)
	if err != nil {
		return err
	}

	if err = s.commands.MergeSave(ctx, payload.Commands); err != nil {
		return fmt.Errorf("merge imported snapshot: %w", err)
	}

	s.logger.Info().
		Str("path", path).
		Int("commands", len(payload.Commands)).
		Msg("imported library from file")
	return nil
}
