package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutripal/profile-backend/internal/storage"
)

func stagedFile(t *testing.T, name, content string) *storage.StagedFile {
	t.Helper()
	path := filepath.Join(t.TempDir(), "upload-1")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return &storage.StagedFile{Path: path, OriginalName: name, ContentType: "image/png", Size: int64(len(content))}
}

func TestLocalBlobStoreUploadAndDelete(t *testing.T) {
	uploadDir := t.TempDir()
	s := NewLocalBlobStore(uploadDir, "http://localhost:3000")
	file := stagedFile(t, "me.png", "png")

	url, err := s.Upload(context.Background(), file)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "http://localhost:3000/uploads/profile-pictures/"))
	assert.True(t, strings.HasSuffix(url, "-me.png"))
	_, err = os.Stat(file.Path)
	assert.True(t, os.IsNotExist(err), "staged file removed after upload")

	stored := filepath.Join(uploadDir, filepath.FromSlash(keyFromURL(url)))
	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, "png", string(data))

	require.NoError(t, s.Delete(context.Background(), url))
	_, err = os.Stat(stored)
	assert.True(t, os.IsNotExist(err))
}

func TestLocalBlobStoreUploadFailureStillRemovesStagedFile(t *testing.T) {
	// A regular file where the upload directory should be makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "uploads")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))
	s := NewLocalBlobStore(blocker, "http://localhost:3000")
	file := stagedFile(t, "me.png", "png")

	_, err := s.Upload(context.Background(), file)

	assert.ErrorIs(t, err, ErrUploadFailed)
	_, statErr := os.Stat(file.Path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestLocalBlobStoreDeleteMissing(t *testing.T) {
	s := NewLocalBlobStore(t.TempDir(), "http://localhost:3000")

	err := s.Delete(context.Background(), "http://localhost:3000/uploads/profile-pictures/none.png")

	assert.ErrorIs(t, err, ErrImageNotFound)
}
