// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Semenov

package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/dsemenov/snipsync/models"
)

// hashedContent is the canonical projection of a command used for hashing.
// Only user-visible content fields participate; identifiers, timestamps and
// sync bookkeeping are excluded so that stamping a record during sync does
// not change its hash.
type hashedContent struct {
	Name        string   `json:"name"`
	Script      string   `json:"script"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Favorite    bool     `json:"favorite"`
}

// CommandHash computes the SHA-256 digest of a command's content fields,
// hex encoded. Two commands claiming the same syncId are considered equal
// iff their hashes match.
//
// nil and empty tag slices hash identically.
func CommandHash(cmd models.Command) string {
	content := hashedContent{
		Name:        cmd.Name,
		Script:      cmd.Script,
		Description: cmd.Description,
		Tags:        cmd.Tags,
		Favorite:    cmd.Favorite,
	}
	if len(content.Tags) == 0 {
		content.Tags = nil
	}

	// Marshal of a flat struct with no custom marshalers cannot fail.
	payload, _ := json.Marshal(content)

	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
