// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Semenov

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for snipsync.
// It aggregates all sub-configurations and is populated by merging values
// from CLI overrides, environment variables, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage holds configuration for the local command store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Remote holds configuration for the remote blob service adapter.
	Remote Remote `envPrefix:"REMOTE_"`

	// Sync holds behaviour settings for the synchronization engine.
	Sync Sync `envPrefix:"SYNC_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged underneath the values
	// already loaded from overrides and environment variables.
	// Populated via the SNIPSYNC_CONFIG environment variable or --config.
	JSONFilePath string `env:"SNIPSYNC_CONFIG"`
}

// Storage groups the configuration of the local persistence layer.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the path of the SQLite database file
	// (e.g. "~/.snipsync/snipsync.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Remote holds network settings for the remote blob service.
type Remote struct {
	// Address is the base URL of the blob service
	// (e.g. "https://blobs.example.com").
	// Env: REMOTE_ADDRESS
	Address string `env:"ADDRESS"`

	// DeviceKey is the pre-provisioned key exchanged for a bearer token
	// during authentication.
	// Env: REMOTE_DEVICE_KEY
	DeviceKey string `env:"DEVICE_KEY"`

	// RequestTimeout is the per-request timeout for blob service calls
	// (e.g. "30s").
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sync holds behaviour settings for the synchronization engine.
type Sync struct {
	// DefaultResolution optionally pre-selects a conflict choice
	// ("keep_local", "keep_remote" or "keep_both"), bypassing the
	// interactive prompt entirely. Empty means prompt.
	// Env: SYNC_DEFAULT_RESOLUTION
	DefaultResolution string `env:"DEFAULT_RESOLUTION"`
}

// Workers holds background job settings.
type Workers struct {
	// SyncInterval defines how often the background sync job runs.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// ClientConfig is the validated view of the merged configuration consumed by
// the wiring layer.
type ClientConfig struct {
	Storage Storage
	Remote  Remote
	Sync    Sync
	Workers Workers
}

// GetClientConfig builds and validates the configuration from the merge of
// the supplied CLI overrides, the environment, and the optional JSON file.
func GetClientConfig(overrides *StructuredConfig) (*ClientConfig, error) {
	builder := newConfigBuilder()
	if overrides != nil {
		builder = builder.withOverrides(overrides)
	}

	cfg, err := builder.
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		Storage: cfg.Storage,
		Remote:  cfg.Remote,
		Sync:    cfg.Sync,
		Workers: cfg.Workers,
	}

	return clientCfg, clientCfg.validate()
}
