package service

import (
	"context"
	"time"

	"github.com/dsemenov/snipsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncService orchestrates push, pull and full synchronization of the local
// command library against the remote blob. Operations are serialized: a
// second call while one is in flight fails with ErrSyncInProgress.
type SyncService interface {
	// Push publishes the local snapshot to the remote blob, bumping the
	// sync version counter.
	Push(ctx context.Context) error
	// Pull fetches the remote snapshot and merges it into the local store,
	// newest UpdatedAt winning per record.
	Pull(ctx context.Context) error
	// Sync reconciles both replicas: detects conflicts, collects
	// resolutions through the configured Resolver, merges, writes the
	// unified snapshot locally and finishes with a push.
	Sync(ctx context.Context) error
}

// Resolver supplies the choice for a single conflict. Implementations range
// from an interactive terminal prompt to a fixed pre-configured answer; the
// sync engine never talks to a human directly.
type Resolver interface {
	// Resolve returns one of models.KeepLocal, models.KeepRemote,
	// models.KeepBoth, or ErrResolutionCancelled when the user aborts.
	Resolve(ctx context.Context, conflict models.Conflict) (string, error)
}

// CommandService is the CRUD surface of the local command library consumed
// by the CLI.
type CommandService interface {
	Add(ctx context.Context, cmd models.Command) (models.Command, error)
	Get(ctx context.Context, id string) (models.Command, error)
	List(ctx context.Context) ([]models.Command, error)
	Search(ctx context.Context, term string) ([]models.Command, error)
	Edit(ctx context.Context, cmd models.Command) (models.Command, error)
	Delete(ctx context.Context, id string) error
	CopyToClipboard(ctx context.Context, id string) error
}

// TransferService reads and writes the library payload as a local file,
// using the same schema as the remote blob.
type TransferService interface {
	Export(ctx context.Context, path string) error
	Import(ctx context.Context, path string) error
}

// SyncJob runs Sync periodically in the background.
type SyncJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
