package adapter

import (
	"context"

	"github.com/dsemenov/snipsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RemoteBlobClient talks to the blob service holding the shared command
// library document. The blob handle is always an argument, never client
// state: the sync orchestrator owns the persisted handle and decides which
// blob each call targets.
type RemoteBlobClient interface {
	// Authenticate exchanges the configured device key for a bearer token.
	// Returns ErrUnauthorized when no credential can be obtained.
	Authenticate(ctx context.Context) (models.Credential, error)

	// FindExisting searches the service for a blob carrying the well-known
	// library filename marker and returns its handle, or "" when none
	// exists.
	FindExisting(ctx context.Context, cred models.Credential) (string, error)

	// Create stores payload as a new blob and returns its handle.
	Create(ctx context.Context, cred models.Credential, payload models.RemotePayload) (string, error)

	// Update overwrites the blob identified by handle. A 404-equivalent
	// response is reported as ErrHandleNotFound so the caller can recreate
	// the blob.
	Update(ctx context.Context, cred models.Credential, handle string, payload models.RemotePayload) error

	// Fetch retrieves the payload of the blob identified by handle.
	// Returns ErrHandleNotFound on 404 and ErrInvalidPayload when the body
	// cannot be decoded or lacks the commands array.
	Fetch(ctx context.Context, cred models.Credential, handle string) (*models.RemotePayload, error)
}
