package store

import (
	"context"
	"fmt"

	"github.com/dsemenov/snipsync/internal/config"
	"github.com/dsemenov/snipsync/internal/logger"
)

// Storages groups all local repositories into a single value that can be
// passed around the service layer.
type Storages struct {
	// Commands is the SQLite-backed repository of the command library.
	Commands CommandRepository
	// SyncMeta is the key-value repository holding the remote blob handle
	// and the sync version counter.
	SyncMeta SyncMetaRepository
}

// NewStorages initialises the storage layer using the supplied configuration
// and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to fresh repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Commands: NewCommandRepository(db, logger),
		SyncMeta: NewSyncMetaRepository(db, logger),
	}, nil
}
