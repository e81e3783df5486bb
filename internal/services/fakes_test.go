package services

import (
	"context"
	"errors"

	"github.com/nutripal/profile-backend/internal/models"
	"github.com/nutripal/profile-backend/internal/storage"
)

type fakeProfileStore struct {
	profiles map[string]models.Profile
	puts     int
	getErr   error
	putErr   error
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{profiles: make(map[string]models.Profile)}
}

func (s *fakeProfileStore) Get(ctx context.Context, uid string) (*models.Profile, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	p, ok := s.profiles[uid]
	if !ok {
		return nil, ErrProfileNotFound
	}
	return &p, nil
}

func (s *fakeProfileStore) Put(ctx context.Context, p *models.Profile) error {
	if s.putErr != nil {
		return s.putErr
	}
	s.puts++
	s.profiles[p.UID] = *p
	return nil
}

type fakeBlobStore struct {
	uploads   []*storage.StagedFile
	deletes   []string
	nextURL   string
	uploadErr error
	deleteErr error
}

func (b *fakeBlobStore) Upload(ctx context.Context, file *storage.StagedFile) (string, error) {
	b.uploads = append(b.uploads, file)
	if b.uploadErr != nil {
		return "", b.uploadErr
	}
	return b.nextURL, nil
}

func (b *fakeBlobStore) Delete(ctx context.Context, publicURL string) error {
	b.deletes = append(b.deletes, publicURL)
	return b.deleteErr
}

var errBoom = errors.New("boom")

func strPtr(s string) *string { return &s }
