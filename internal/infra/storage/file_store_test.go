package storage

import (
	"context"
	"testing"

	"nosh/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_SetGetRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	require.NoError(t, store.Set(ctx, repository.KeyUserToken, "abc123"))

	value, err := store.Get(ctx, repository.KeyUserToken)
	require.NoError(t, err)
	assert.Equal(t, "abc123", value)
}

func TestFileStore_GetMissingKey(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, repository.KeyZoneID, "7"))
	require.NoError(t, store.Set(ctx, repository.KeyUserType, "guest"))

	reopened, err := NewFileStore(dir)
	require.NoError(t, err)

	zone, err := reopened.Get(ctx, repository.KeyZoneID)
	require.NoError(t, err)
	assert.Equal(t, "7", zone)

	userType, err := reopened.Get(ctx, repository.KeyUserType)
	require.NoError(t, err)
	assert.Equal(t, "guest", userType)
}

func TestFileStore_DeleteIsIdempotent(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, repository.KeyUserToken, "abc"))
	require.NoError(t, store.Delete(ctx, repository.KeyUserToken))
	require.NoError(t, store.Delete(ctx, repository.KeyUserToken))

	_, err = store.Get(ctx, repository.KeyUserToken)
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
}
