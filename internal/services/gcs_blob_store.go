package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"cloud.google.com/go/storage"

	stage "github.com/nutripal/profile-backend/internal/storage"
)

// GCSBlobStore keeps profile pictures in a Cloud Storage bucket.
type GCSBlobStore struct {
	bucket     *storage.BucketHandle
	bucketName string
}

func NewGCSBlobStore(bucket *storage.BucketHandle, bucketName string) *GCSBlobStore {
	return &GCSBlobStore{bucket: bucket, bucketName: bucketName}
}

func (s *GCSBlobStore) Upload(ctx context.Context, file *stage.StagedFile) (string, error) {
	key := profilePictureKey(file.OriginalName)
	err := s.write(ctx, key, file)

	if rmErr := stage.RemoveStaged(file); rmErr != nil {
		log.Printf("[gcs] failed to remove staged file path=%s err=%v", file.Path, rmErr)
	}
	if err != nil {
		log.Printf("[gcs] upload failed bucket=%s key=%s err=%v", s.bucketName, key, err)
		return "", ErrUploadFailed
	}

	return s.publicURL(key), nil
}

func (s *GCSBlobStore) write(ctx context.Context, key string, file *stage.StagedFile) error {
	src, err := os.Open(file.Path)
	if err != nil {
		return fmt.Errorf("open staged file: %w", err)
	}
	defer src.Close()

	// Cancelling the writer's context discards a partial object.
	wctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w := s.bucket.Object(key).NewWriter(wctx)
	w.ContentType = file.ContentType
	if _, err := io.Copy(w, src); err != nil {
		cancel()
		w.Close()
		return fmt.Errorf("copy: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close writer: %w", err)
	}
	return nil
}

func (s *GCSBlobStore) Delete(ctx context.Context, publicURL string) error {
	key := keyFromURL(publicURL)
	if err := s.bucket.Object(key).Delete(ctx); err != nil {
		log.Printf("[gcs] delete failed key=%s err=%v", key, err)
		return err
	}
	log.Printf("[gcs] deleted key=%s", key)
	return nil
}

func (s *GCSBlobStore) publicURL(key string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, keyURLPath(key))
}
