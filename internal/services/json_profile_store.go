package services

import (
	"context"

	"github.com/nutripal/profile-backend/internal/models"
	"github.com/nutripal/profile-backend/internal/storage"
)

// JSONProfileStore keeps every profile in one JSON file. Meant for local
// development with a single server process.
type JSONProfileStore struct {
	store *storage.JSONStore
}

func NewJSONProfileStore(dataDir string) (*JSONProfileStore, error) {
	store, err := storage.NewJSONStore(dataDir, "profiles.json")
	if err != nil {
		return nil, err
	}
	return &JSONProfileStore{store: store}, nil
}

func (s *JSONProfileStore) Get(ctx context.Context, uid string) (*models.Profile, error) {
	profiles := make(map[string]models.Profile)
	if err := s.store.Load(&profiles); err != nil {
		return nil, err
	}
	p, ok := profiles[uid]
	if !ok {
		return nil, ErrProfileNotFound
	}
	return &p, nil
}

func (s *JSONProfileStore) Put(ctx context.Context, p *models.Profile) error {
	profiles := make(map[string]models.Profile)
	return s.store.Update(&profiles, func() error {
		profiles[p.UID] = *p
		return nil
	})
}
