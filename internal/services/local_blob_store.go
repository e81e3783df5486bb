package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/nutripal/profile-backend/internal/storage"
)

var ErrImageNotFound = errors.New("image not found")

// LocalBlobStore writes profile pictures under uploadDir. The server exposes
// that directory at /uploads/ so the returned URLs resolve.
type LocalBlobStore struct {
	uploadDir string
	baseURL   string
}

func NewLocalBlobStore(uploadDir, baseURL string) *LocalBlobStore {
	return &LocalBlobStore{uploadDir: uploadDir, baseURL: baseURL}
}

func (s *LocalBlobStore) Upload(ctx context.Context, file *storage.StagedFile) (string, error) {
	key := profilePictureKey(file.OriginalName)
	err := s.copy(key, file)

	if rmErr := storage.RemoveStaged(file); rmErr != nil {
		log.Printf("[local-blob] failed to remove staged file path=%s err=%v", file.Path, rmErr)
	}
	if err != nil {
		log.Printf("[local-blob] upload failed key=%s err=%v", key, err)
		return "", ErrUploadFailed
	}

	return s.baseURL + "/uploads/" + keyURLPath(key), nil
}

func (s *LocalBlobStore) copy(key string, file *storage.StagedFile) error {
	dstPath := filepath.Join(s.uploadDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
		return fmt.Errorf("create upload dir: %w", err)
	}

	src, err := os.Open(file.Path)
	if err != nil {
		return fmt.Errorf("open staged file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dstPath)
		return fmt.Errorf("save file: %w", err)
	}
	return dst.Close()
}

func (s *LocalBlobStore) Delete(ctx context.Context, publicURL string) error {
	key := keyFromURL(publicURL)
	err := os.Remove(filepath.Join(s.uploadDir, filepath.FromSlash(key)))
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrImageNotFound, key)
	}
	if err != nil {
		return fmt.Errorf("delete file: %w", err)
	}
	log.Printf("[local-blob] deleted key=%s", key)
	return nil
}
