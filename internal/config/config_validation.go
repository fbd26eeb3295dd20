// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Semenov

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dsemenov/snipsync/models"
)

// validate checks that the merged [ClientConfig] satisfies the invariants the
// rest of the application relies on. Remote settings are validated lazily by
// the adapter because purely local commands (add, list, export) must work
// without any remote configuration.
func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Remote.RequestTimeout <= 0 {
		return ErrInvalidRemoteConfigs
	}

	if cfg.Workers.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	switch cfg.Sync.DefaultResolution {
	case "", models.KeepLocal, models.KeepRemote, models.KeepBoth:
	default:
		return ErrInvalidSyncConfigs
	}

	return nil
}

// defaultDBPath places the database under ~/.snipsync, falling back to the
// working directory when the home directory cannot be resolved.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "snipsync.db"
	}
	return filepath.Join(home, ".snipsync", "snipsync.db")
}
