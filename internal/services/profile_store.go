package services

import (
	"context"
	"errors"

	"github.com/nutripal/profile-backend/internal/models"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileStore persists one profile document per UID.
type ProfileStore interface {
	// Get returns ErrProfileNotFound when no document exists for uid.
	Get(ctx context.Context, uid string) (*models.Profile, error)
	// Put replaces the whole document keyed by p.UID.
	Put(ctx context.Context, p *models.Profile) error
}
