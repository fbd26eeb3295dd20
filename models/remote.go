// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Semenov

package models

import "time"

// PayloadVersion is the schema version written into every exported payload.
const PayloadVersion = "1.0"

// RemotePayload is the single JSON document stored by the remote blob
// service. The same schema is used for local file export/import.
type RemotePayload struct {
	// Version is the payload schema version ("1.0").
	Version string `json:"version"`

	// Commands is the full replica snapshot, tombstones included so that
	// deletions performed on one machine are visible to the others.
	Commands []Command `json:"commands"`

	// ExportedAt records when the payload was produced.
	ExportedAt time.Time `json:"exportedAt"`

	// SyncVersion is the monotonic counter bumped on every push.
	SyncVersion int64 `json:"syncVersion,omitempty"`
}

// Credential is the opaque bearer token obtained from the blob service's
// authentication endpoint.
type Credential struct {
	Token string `json:"token"`
}

// Empty reports whether no credential was obtained.
func (c Credential) Empty() bool {
	return c.Token == ""
}
