package store

import (
	"context"
	"time"

	"github.com/dsemenov/snipsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CommandRepository is the local authoritative replica of the command
// library. The sync engine only reads it and writes back through Upsert and
// MergeSave; content mutations come from the CLI layer.
type CommandRepository interface {
	// Save inserts a new command.
	Save(ctx context.Context, cmd models.Command) error
	// Get returns a command by its local id or sync id.
	Get(ctx context.Context, id string) (models.Command, error)
	// GetAll returns the full snapshot, tombstones included.
	GetAll(ctx context.Context) ([]models.Command, error)
	// GetAllLive returns the snapshot without tombstoned commands.
	GetAllLive(ctx context.Context) ([]models.Command, error)
	// Search returns live commands whose name, script or tags match term.
	Search(ctx context.Context, term string) ([]models.Command, error)
	// Update overwrites an existing command by local id.
	Update(ctx context.Context, cmd models.Command) error
	// SoftDelete stamps the tombstone on a command; the row stays behind so
	// the deletion can propagate on the next sync.
	SoftDelete(ctx context.Context, id string, when time.Time) error
	// Upsert writes commands unconditionally, matching by sync id first and
	// local id second. Used by the sync engine to persist stamped and
	// unified snapshots.
	Upsert(ctx context.Context, cmds ...models.Command) error
	// MergeSave merges an incoming snapshot: unknown commands are inserted,
	// known ones are overwritten only when the incoming UpdatedAt is newer.
	// Used by pull and by file import.
	MergeSave(ctx context.Context, cmds []models.Command) error
}

// SyncMetaRepository persists the only mutable state the sync orchestrator
// owns outside the command store: the last-known remote blob handle and the
// monotonic sync version counter. Both survive restarts.
type SyncMetaRepository interface {
	Handle(ctx context.Context) (string, error)
	SetHandle(ctx context.Context, handle string) error
	ClearHandle(ctx context.Context) error
	SyncVersion(ctx context.Context) (int64, error)
	SetSyncVersion(ctx context.Context, version int64) error
}
