package utils_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsemenov/snipsync/internal/utils"
)

func TestParseBearerToken(t *testing.T) {
	token, err := utils.ParseBearerToken("Bearer abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	_, err = utils.ParseBearerToken("")
	require.Error(t, err)

	_, err = utils.ParseBearerToken("Bearer ")
	require.Error(t, err)

	_, err = utils.ParseBearerToken("abc123")
	require.Error(t, err)

	_, err = utils.ParseBearerToken("Basic abc123")
	require.Error(t, err, "non-Bearer schemes carry no usable token")
}

func TestUUIDGenerator(t *testing.T) {
	gen := utils.NewUUIDGenerator()

	first := gen.Generate()
	second := gen.Generate()

	assert.NotEqual(t, first, second)
	_, err := uuid.Parse(first)
	require.NoError(t, err)
}
