package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dsemenov/snipsync/internal/logger"
	"github.com/dsemenov/snipsync/models"
)

type commandRepository struct {
	*DB
	logger *logger.Logger
}

func NewCommandRepository(db *DB, logger *logger.Logger) CommandRepository {
	return &commandRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *commandRepository) Save(ctx context.Context, cmd models.Command) error {
	query, args, err := buildInsertCommandQuery(cmd, encodeTags(cmd.Tags))
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "commandRepository.Save").
			Str("id", cmd.ID).
			Msg("failed to execute insert for command")
		return fmt.Errorf("failed to save command (id=%s): %w", cmd.ID, err)
	}

	return nil
}

func (r *commandRepository) Get(ctx context.Context, id string) (models.Command, error) {
	query, args, err := buildSelectCommandQuery(id)
	if err != nil {
		return models.Command{}, fmt.Errorf("failed to build select query: %w", err)
	}

	row := r.DB.QueryRowContext(ctx, query, args...)
	cmd, err := scanCommand(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Command{}, ErrCommandNotFound
		}
		r.logger.Err(err).
			Str("func", "commandRepository.Get").
			Str("id", id).
			Msg("failed to scan command row")
		return models.Command{}, fmt.Errorf("failed to scan command row: %w", err)
	}

	return cmd, nil
}

func (r *commandRepository) GetAll(ctx context.Context) ([]models.Command, error) {
	return r.selectMany(ctx, "commandRepository.GetAll", func() (string, []any, error) {
		return buildSelectAllCommandsQuery(false)
	})
}

func (r *commandRepository) GetAllLive(ctx context.Context) ([]models.Command, error) {
	return r.selectMany(ctx, "commandRepository.GetAllLive", func() (string, []any, error) {
		return buildSelectAllCommandsQuery(true)
	})
}

func (r *commandRepository) Search(ctx context.Context, term string) ([]models.Command, error) {
	return r.selectMany(ctx, "commandRepository.Search", func() (string, []any, error) {
		return buildSearchCommandsQuery(term)
	})
}

func (r *commandRepository) Update(ctx context.Context, cmd models.Command) error {
	query, args, err := buildUpdateCommandQuery(cmd, encodeTags(cmd.Tags))
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "commandRepository.Update").
			Str("id", cmd.ID).
			Msg("failed to execute update for command")
		return fmt.Errorf("failed to update command (id=%s): %w", cmd.ID, err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrCommandNotFound
	}

	return nil
}

func (r *commandRepository) SoftDelete(ctx context.Context, id string, when time.Time) error {
	query, args, err := buildSoftDeleteQuery(id, when)
	if err != nil {
		return fmt.Errorf("failed to build soft delete query: %w", err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "commandRepository.SoftDelete").
			Str("id", id).
			Msg("failed to execute soft delete for command")
		return fmt.Errorf("failed to soft delete command (id=%s): %w", id, err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrCommandNotFound
	}

	return nil
}

// Upsert writes every command unconditionally. An existing row (matched by
// sync id, then by local id) is overwritten in place, keeping its primary
// key; anything else is inserted as new.
func (r *commandRepository) Upsert(ctx context.Context, cmds ...models.Command) error {
	for _, cmd := range cmds {
		existing, err := r.lookupExisting(ctx, cmd)
		if err != nil && !errors.Is(err, ErrCommandNotFound) {
			return err
		}

		if errors.Is(err, ErrCommandNotFound) {
			if err := r.Save(ctx, cmd); err != nil {
				return err
			}
			continue
		}

		cmd.ID = existing.ID
		cmd.CreatedAt = existing.CreatedAt
		if err := r.Update(ctx, cmd); err != nil {
			return err
		}
	}

	return nil
}

// MergeSave merges an incoming snapshot: unknown commands are inserted as-is,
// known ones (matched by sync id, then by local id) are overwritten only when
// the incoming UpdatedAt is strictly newer. Ties keep the local row.
func (r *commandRepository) MergeSave(ctx context.Context, cmds []models.Command) error {
	for _, cmd := range cmds {
		existing, err := r.lookupExisting(ctx, cmd)
		if err != nil && !errors.Is(err, ErrCommandNotFound) {
			return err
		}

		if errors.Is(err, ErrCommandNotFound) {
			if err := r.Save(ctx, cmd); err != nil {
				return err
			}
			continue
		}

		if !cmd.UpdatedAt.After(existing.UpdatedAt) {
			continue
		}

		cmd.ID = existing.ID
		cmd.CreatedAt = existing.CreatedAt
		if err := r.Update(ctx, cmd); err != nil {
			return err
		}
	}

	return nil
}

func (r *commandRepository) lookupExisting(ctx context.Context, cmd models.Command) (models.Command, error) {
	if cmd.SyncID != "" {
		existing, err := r.Get(ctx, cmd.SyncID)
		if err == nil || !errors.Is(err, ErrCommandNotFound) {
			return existing, err
		}
	}
	return r.Get(ctx, cmd.ID)
}

func (r *commandRepository) selectMany(ctx context.Context, caller string, build func() (string, []any, error)) ([]models.Command, error) {
	query, args, err := build()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", caller).
			Msg("failed to execute query for commands")
		return nil, fmt.Errorf("failed to query commands: %w", err)
	}
	defer rows.Close()

	var items []models.Command

	for rows.Next() {
		cmd, scanErr := scanCommand(rows.Scan)
		if scanErr != nil {
			r.logger.Err(scanErr).
				Str("func", caller).
				Msg("failed to scan command row")
			return nil, fmt.Errorf("failed to scan command row: %w", scanErr)
		}

		items = append(items, cmd)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		r.logger.Err(rowsErr).
			Str("func", caller).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating command rows: %w", rowsErr)
	}

	return items, nil
}

func scanCommand(scan func(dest ...any) error) (models.Command, error) {
	var (
		cmd          models.Command
		syncID       sql.NullString
		tagsJSON     string
		lastSyncedAt sql.NullTime
		deletedAt    sql.NullTime
	)

	err := scan(
		&cmd.ID,
		&syncID,
		&cmd.Name,
		&cmd.Script,
		&cmd.Description,
		&tagsJSON,
		&cmd.Favorite,
		&cmd.CreatedAt,
		&cmd.UpdatedAt,
		&lastSyncedAt,
		&deletedAt,
	)
	if err != nil {
		return models.Command{}, err
	}

	cmd.SyncID = syncID.String
	cmd.Tags = decodeTags(tagsJSON)
	if lastSyncedAt.Valid {
		t := lastSyncedAt.Time
		cmd.LastSyncedAt = &t
	}
	if deletedAt.Valid {
		t := deletedAt.Time
		cmd.DeletedAt = &t
	}

	return cmd, nil
}

func encodeTags(tags []string) string {
	if len(tags) == 0 {
		return "[]"
	}
	payload, err := json.Marshal(tags)
	if err != nil {
		return "[]"
	}
	return string(payload)
}

func decodeTags(tagsJSON string) []string {
	if tagsJSON == "" || tagsJSON == "[]" {
		return nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(tagsJSON), &tags); err != nil {
		return nil
	}
	return tags
}
