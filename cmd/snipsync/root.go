// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Semenov

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dsemenov/snipsync/internal/adapter"
	"github.com/dsemenov/snipsync/internal/config"
	"github.com/dsemenov/snipsync/internal/logger"
	"github.com/dsemenov/snipsync/internal/service"
	"github.com/dsemenov/snipsync/internal/store"
	"github.com/dsemenov/snipsync/internal/tui"
	"github.com/dsemenov/snipsync/models"
)

var (
	flagConfig    string
	flagDB        string
	flagRemote    string
	flagDeviceKey string
)

var rootCmd = &cobra.Command{
	Use:   "snipsync",
	Short: "Local command library synced against a shared remote blob",
	Long: `snipsync keeps a personal library of shell commands in a local SQLite
database and synchronizes it with teammates through a single JSON blob on a
remote blob service.

Library commands (add, list, search, show, copy, rm, edit) work fully
offline. Sync commands (push, pull, sync, watch) talk to the remote and need
REMOTE_ADDRESS and REMOTE_DEVICE_KEY configured, via flags, environment or a
JSON config file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       "dev",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a JSON config file")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "path to the local SQLite database file")
	rootCmd.PersistentFlags().StringVar(&flagRemote, "remote", "", "base URL of the remote blob service")
	rootCmd.PersistentFlags().StringVar(&flagDeviceKey, "device-key", "", "device key used to authenticate against the remote")

	rootCmd.AddGroup(
		&cobra.Group{ID: "library", Title: "Library commands:"},
		&cobra.Group{ID: "sync", Title: "Sync commands:"},
	)
}

// app bundles everything a subcommand needs after wiring.
type app struct {
	cfg      *config.ClientConfig
	log      *logger.Logger
	services *service.Services
}

// newApp wires config, logger, storage, remote adapter and services for a
// single command invocation. The resolver answers sync conflicts: an explicit
// --prefer flag wins, then the configured default resolution, then the
// interactive prompt when the command allows one, and finally cancellation.
func newApp(prefer string, interactive bool) (*app, error) {
	cfg, err := config.GetClientConfig(flagOverrides())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.NewFileLogger("snipsync")

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("open local storage: %w", err)
	}

	remote, err := adapter.NewHTTPBlobClient(cfg.Remote, log)
	if err != nil {
		return nil, fmt.Errorf("create remote client: %w", err)
	}

	resolver, err := pickResolver(prefer, cfg.Sync.DefaultResolution, interactive)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:      cfg,
		log:      log,
		services: service.NewServices(storages, remote, resolver, log),
	}, nil
}

func flagOverrides() *config.StructuredConfig {
	overrides := &config.StructuredConfig{JSONFilePath: flagConfig}
	overrides.Storage.DB.DSN = flagDB
	overrides.Remote.Address = flagRemote
	overrides.Remote.DeviceKey = flagDeviceKey
	return overrides
}

func pickResolver(prefer, configured string, interactive bool) (service.Resolver, error) {
	if prefer != "" {
		choice, err := resolutionChoice(prefer)
		if err != nil {
			return nil, err
		}
		return service.FixedResolver{Choice: choice}, nil
	}

	if configured != "" {
		return service.FixedResolver{Choice: configured}, nil
	}

	if interactive {
		return tui.NewResolver(), nil
	}

	return service.CancelResolver{}, nil
}

func resolutionChoice(prefer string) (string, error) {
	switch prefer {
	case "local":
		return models.KeepLocal, nil
	case "remote":
		return models.KeepRemote, nil
	case "both":
		return models.KeepBoth, nil
	default:
		return "", fmt.Errorf("unknown --prefer value %q (want local, remote or both)", prefer)
	}
}
