package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsemenov/snipsync/internal/service"
	"github.com/dsemenov/snipsync/models"
)

func TestFixedResolver(t *testing.T) {
	ctx := context.Background()
	conflict := models.Conflict{SyncID: "a", Kind: models.ConflictModified}

	for _, choice := range []string{models.KeepLocal, models.KeepRemote, models.KeepBoth} {
		got, err := service.FixedResolver{Choice: choice}.Resolve(ctx, conflict)
		require.NoError(t, err)
		assert.Equal(t, choice, got)
	}
}

func TestFixedResolver_InvalidChoice(t *testing.T) {
	_, err := service.FixedResolver{Choice: "maybe"}.Resolve(context.Background(), models.Conflict{})
	require.ErrorIs(t, err, service.ErrUnknownResolution)
}

func TestCancelResolver(t *testing.T) {
	_, err := service.CancelResolver{}.Resolve(context.Background(), models.Conflict{})
	require.ErrorIs(t, err, service.ErrResolutionCancelled)
}
