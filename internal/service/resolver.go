package service

import (
	"context"

	"github.com/dsemenov/snipsync/models"
)

// FixedResolver answers every conflict with the same pre-configured choice,
// bypassing interaction entirely. Used for scripted syncs (--prefer) and the
// background sync job.
type FixedResolver struct {
	Choice string
}

func (r FixedResolver) Resolve(_ context.Context, _ models.Conflict) (string, error) {
	switch r.Choice {
	case models.KeepLocal, models.KeepRemote, models.KeepBoth:
		return r.Choice, nil
	default:
		return "", ErrUnknownResolution
	}
}

// CancelResolver rejects every conflict. It is the default when no
// interactive terminal and no pre-configured choice are available, so an
// unattended sync with conflicts aborts cleanly instead of guessing.
type CancelResolver struct{}

func (CancelResolver) Resolve(_ context.Context, _ models.Conflict) (string, error) {
	return "", ErrResolutionCancelled
}
