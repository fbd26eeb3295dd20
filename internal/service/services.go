package service

import (
	"github.com/dsemenov/snipsync/internal/adapter"
	"github.com/dsemenov/snipsync/internal/logger"
	"github.com/dsemenov/snipsync/internal/store"
	"github.com/dsemenov/snipsync/internal/utils"
)

// Services groups every service consumed by the CLI layer.
type Services struct {
	Commands CommandService
	Sync     SyncService
	Transfer TransferService
	SyncJob  SyncJob
}

// NewServices wires the service layer: repositories and the remote adapter
// go in, ready-to-use services come out. The resolver decides how conflicts
// are answered (interactive prompt, fixed choice, or cancel).
func NewServices(
	storages *store.Storages,
	remote adapter.RemoteBlobClient,
	resolver Resolver,
	log *logger.Logger,
) *Services {
	ids := utils.NewUUIDGenerator()

	syncSvc := NewSyncService(storages, remote, resolver, ids, log)

	return &Services{
		Commands: NewCommandService(storages, ids, log),
		Sync:     syncSvc,
		Transfer: NewTransferService(storages, log),
		SyncJob:  NewSyncJob(syncSvc),
	}
}
