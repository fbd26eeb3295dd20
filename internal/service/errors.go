package service

import "errors"

var (
	// ErrResolutionCancelled means the caller aborted conflict resolution.
	// The sync is abandoned with both replicas untouched.
	ErrResolutionCancelled = errors.New("conflict resolution cancelled")
	// ErrResolutionMissing means a conflict reached the merge step without
	// a resolution. Indicates a programming error in the caller.
	ErrResolutionMissing = errors.New("missing resolution for conflict")
	// ErrUnknownResolution means a resolver returned a choice outside the
	// keep_local/keep_remote/keep_both set.
	ErrUnknownResolution = errors.New("unknown resolution choice")
	// ErrSyncInProgress means another push, pull or sync is already running
	// against the same local store.
	ErrSyncInProgress = errors.New("another sync operation is in progress")
	// ErrNothingToPull means no remote blob handle could be resolved.
	ErrNothingToPull = errors.New("no remote library found")
)
