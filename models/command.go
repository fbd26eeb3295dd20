// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Semenov

package models

import "time"

// Command is the unit of synchronization: one saved shell command with its
// user-visible content fields and the bookkeeping fields owned by the sync
// engine.
//
// Two fields are written by the sync engine only: SyncID (assigned from ID the
// first time a command is synced, immutable afterwards) and LastSyncedAt
// (stamped on every successful sync write-back). Everything else belongs to
// the local store.
type Command struct {
	// ID is the locally generated stable identifier, assigned at creation
	// and never reused.
	ID string `json:"id"`

	// SyncID is the cross-replica matching key. Defaults to ID on the first
	// sync. A local and a remote command describe the same logical record
	// iff their SyncIDs are equal.
	SyncID string `json:"syncId,omitempty"`

	// Name is the human-readable label shown in lists.
	Name string `json:"name"`

	// Script is the command line itself.
	Script string `json:"script"`

	// Description is optional free-form text.
	Description string `json:"description,omitempty"`

	// Tags are categorical labels used for search.
	Tags []string `json:"tags,omitempty"`

	// Favorite marks a pinned command.
	Favorite bool `json:"favorite,omitempty"`

	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is set by the owning replica on every content mutation.
	UpdatedAt time.Time `json:"updatedAt"`

	// LastSyncedAt is absent before the first sync.
	LastSyncedAt *time.Time `json:"lastSyncedAt,omitempty"`

	// DeletedAt is the soft-delete tombstone. A command with DeletedAt set
	// stays in the replica so the deletion can propagate, but is logically
	// gone and filtered out of every merged result.
	DeletedAt *time.Time `json:"deletedAt,omitempty"`

	// Hash is the derived digest of the content fields. It is recomputed,
	// never trusted from storage or the wire.
	Hash string `json:"hash,omitempty"`
}

// Deleted reports whether the command carries a tombstone.
func (c Command) Deleted() bool {
	return c.DeletedAt != nil
}

// UpdatedSinceLastSync reports whether the command's content changed after
// its last successful sync. A command that has never been synced counts as
// changed (LastSyncedAt is treated as epoch zero).
func (c Command) UpdatedSinceLastSync() bool {
	if c.LastSyncedAt == nil {
		return true
	}
	return c.UpdatedAt.After(*c.LastSyncedAt)
}
