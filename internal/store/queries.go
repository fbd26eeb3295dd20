// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Semenov

package store

import (
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/dsemenov/snipsync/models"
)

// qb is the shared squirrel builder. SQLite uses ? placeholders.
var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

var commandColumns = []string{
	"id",
	"sync_id",
	"name",
	"script",
	"description",
	"tags",
	"favorite",
	"created_at",
	"updated_at",
	"last_synced_at",
	"deleted_at",
}

func buildInsertCommandQuery(cmd models.Command, tagsJSON string) (string, []any, error) {
	return qb.Insert("commands").
		Columns(commandColumns...).
		Values(
			cmd.ID,
			cmd.SyncID,
			cmd.Name,
			cmd.Script,
			cmd.Description,
			tagsJSON,
			cmd.Favorite,
			cmd.CreatedAt,
			cmd.UpdatedAt,
			cmd.LastSyncedAt,
			cmd.DeletedAt,
		).
		ToSql()
}

func buildSelectCommandQuery(id string) (string, []any, error) {
	return qb.Select(commandColumns...).
		From("commands").
		Where(squirrel.Or{
			squirrel.Eq{"id": id},
			squirrel.Eq{"sync_id": id},
		}).
		ToSql()
}

func buildSelectAllCommandsQuery(onlyLive bool) (string, []any, error) {
	query := qb.Select(commandColumns...).
		From("commands").
		OrderBy("created_at")
	if onlyLive {
		query = query.Where(squirrel.Eq{"deleted_at": nil})
	}
	return query.ToSql()
}

func buildSearchCommandsQuery(term string) (string, []any, error) {
	pattern := "%" + term + "%"
	return qb.Select(commandColumns...).
		From("commands").
		Where(squirrel.Eq{"deleted_at": nil}).
		Where(squirrel.Or{
			squirrel.Like{"name": pattern},
			squirrel.Like{"script": pattern},
			squirrel.Like{"description": pattern},
			squirrel.Like{"tags": pattern},
		}).
		OrderBy("name").
		ToSql()
}

func buildUpdateCommandQuery(cmd models.Command, tagsJSON string) (string, []any, error) {
	return qb.Update("commands").
		Set("sync_id", cmd.SyncID).
		Set("name", cmd.Name).
		Set("script", cmd.Script).
		Set("description", cmd.Description).
		Set("tags", tagsJSON).
		Set("favorite", cmd.Favorite).
		Set("updated_at", cmd.UpdatedAt).
		Set("last_synced_at", cmd.LastSyncedAt).
		Set("deleted_at", cmd.DeletedAt).
		Where(squirrel.Eq{"id": cmd.ID}).
		ToSql()
}

func buildSoftDeleteQuery(id string, when time.Time) (string, []any, error) {
	return qb.Update("commands").
		Set("deleted_at", when).
		Set("updated_at", when).
		Where(squirrel.Or{
			squirrel.Eq{"id": id},
			squirrel.Eq{"sync_id": id},
		}).
		ToSql()
}

func buildSelectMetaQuery(key string) (string, []any, error) {
	return qb.Select("value").
		From("sync_meta").
		Where(squirrel.Eq{"key": key}).
		ToSql()
}

func buildUpsertMetaQuery(key, value string) (string, []any, error) {
	return qb.Insert("sync_meta").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value").
		ToSql()
}

func buildDeleteMetaQuery(key string) (string, []any, error) {
	return qb.Delete("sync_meta").
		Where(squirrel.Eq{"key": key}).
		ToSql()
}
