package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutripal/profile-backend/internal/models"
)

func TestJSONProfileStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewJSONProfileStore(dir)
	require.NoError(t, err)

	_, err = store.Get(ctx, "u1")
	assert.ErrorIs(t, err, ErrProfileNotFound)

	pic := "http://localhost:3000/uploads/profile-pictures/a.png"
	require.NoError(t, store.Put(ctx, &models.Profile{UID: "u1", Name: "Ana", ProfilePicture: &pic}))
	require.NoError(t, store.Put(ctx, &models.Profile{UID: "u2", Name: "Ben"}))

	// A fresh store over the same directory sees persisted data.
	reopened, err := NewJSONProfileStore(dir)
	require.NoError(t, err)

	got, err := reopened.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
	require.NotNil(t, got.ProfilePicture)
	assert.Equal(t, pic, *got.ProfilePicture)

	got, err = reopened.Get(ctx, "u2")
	require.NoError(t, err)
	assert.Nil(t, got.ProfilePicture)
}
