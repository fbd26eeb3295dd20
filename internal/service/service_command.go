package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"

	"github.com/dsemenov/snipsync/internal/logger"
	"github.com/dsemenov/snipsync/internal/store"
	"github.com/dsemenov/snipsync/models"
)

type commandService struct {
	commands store.CommandRepository

	newID func() string
	now   func() time.Time

	logger *logger.Logger
}

func NewCommandService(storages *store.Storages, ids IDGenerator, log *logger.Logger) CommandService {
	return &commandService{
		commands: storages.Commands,
		newID:    ids.Generate,
		now:      time.Now,
		logger:   log,
	}
}

// Add implements [CommandService]. The id and timestamps are assigned here;
// SyncID stays empty until the first sync claims it.
func (s *commandService) Add(ctx context.Context, cmd models.Command) (models.Command, error) {
	if strings.TrimSpace(cmd.Script) == "" {
		return models.Command{}, fmt.Errorf("command script must not be empty")
	}
	if strings.TrimSpace(cmd.Name) == "" {
		cmd.Name = firstLine(cmd.Script)
	}

	now := s.now()
	cmd.ID = s.newID()
	cmd.SyncID = ""
	cmd.CreatedAt = now
	cmd.UpdatedAt = now
	cmd.LastSyncedAt = nil
	cmd.DeletedAt = nil

	if err := s.commands.Save(ctx, cmd); err != nil {
		return models.Command{}, fmt.Errorf("save command: %w", err)
	}

	return cmd, nil
}

func (s *commandService) Get(ctx context.Context, id string) (models.Command, error) {
	return s.commands.Get(ctx, id)
}

func (s *commandService) List(ctx context.Context) ([]models.Command, error) {
	return s.commands.GetAllLive(ctx)
}

func (s *commandService) Search(ctx context.Context, term string) ([]models.Command, error) {
	return s.commands.Search(ctx, term)
}

// Edit implements [CommandService]. Only content fields are taken from cmd;
// bookkeeping fields are preserved from the stored row and UpdatedAt is
// bumped so the change is visible to conflict detection.
func (s *commandService) Edit(ctx context.Context, cmd models.Command) (models.Command, error) {
	existing, err := s.commands.Get(ctx, cmd.ID)
	if err != nil {
		return models.Command{}, err
	}

	existing.Name = cmd.Name
	existing.Script = cmd.Script
	existing.Description = cmd.Description
	existing.Tags = cmd.Tags
	existing.Favorite = cmd.Favorite
	existing.UpdatedAt = s.now()

	if err := s.commands.Update(ctx, existing); err != nil {
		return models.Command{}, fmt.Errorf("update command: %w", err)
	}

	return existing, nil
}

func (s *commandService) Delete(ctx context.Context, id string) error {
	return s.commands.SoftDelete(ctx, id, s.now())
}

func (s *commandService) CopyToClipboard(ctx context.Context, id string) error {
	cmd, err := s.commands.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := clipboard.WriteAll(cmd.Script); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}

	s.logger.Debug().Str("id", cmd.ID).Msg("copied command script to clipboard")
	return nil
}

func firstLine(script string) string {
	if idx := strings.IndexByte(script, '\n'); idx >= 0 {
		return strings.TrimSpace(script[:idx])
	}
	return strings.TrimSpace(script)
}
