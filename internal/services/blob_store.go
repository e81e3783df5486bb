package services

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/nutripal/profile-backend/internal/storage"
)

// ErrUploadFailed hides the underlying storage error from callers.
var ErrUploadFailed = errors.New("failed to upload file")

const profilePicturePrefix = "profile-pictures/"

// BlobStore holds profile pictures.
type BlobStore interface {
	// Upload stores the staged file and returns its public URL. The staged
	// file is removed whether or not the upload succeeds.
	Upload(ctx context.Context, file *storage.StagedFile) (string, error)
	// Delete removes the object a previously returned URL points at.
	Delete(ctx context.Context, publicURL string) error
}

// profilePictureKey builds a collision-free object name for an upload.
func profilePictureKey(originalName string) string {
	return profilePicturePrefix + uuid.New().String() + "-" + originalName
}

// keyURLPath escapes the file segment of key for use in a URL path.
func keyURLPath(key string) string {
	return profilePicturePrefix + url.PathEscape(strings.TrimPrefix(key, profilePicturePrefix))
}

// keyFromURL maps a public URL back to its object name using only the last
// path segment.
func keyFromURL(publicURL string) string {
	name := publicURL
	if i := strings.LastIndex(publicURL, "/"); i >= 0 {
		name = publicURL[i+1:]
	}
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	return profilePicturePrefix + name
}
