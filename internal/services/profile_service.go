package services

import (
	"context"
	"fmt"

	"github.com/nutripal/profile-backend/internal/models"
	"github.com/nutripal/profile-backend/internal/storage"
)

// ProfileService combines the profile document with its picture blob.
//
// Update is a plain read-modify-write: two concurrent updates of the same
// UID can interleave and the last write wins.
type ProfileService struct {
	profiles ProfileStore
	blobs    BlobStore
}

func NewProfileService(profiles ProfileStore, blobs BlobStore) *ProfileService {
	return &ProfileService{profiles: profiles, blobs: blobs}
}

func (s *ProfileService) Get(ctx context.Context, uid string) (*models.Profile, error) {
	return s.profiles.Get(ctx, uid)
}

// Create writes a fresh document for input.UID, replacing any existing one.
// Fields missing from input are stored empty.
func (s *ProfileService) Create(ctx context.Context, input *models.ProfileInput, file *storage.StagedFile) (*models.Profile, error) {
	prof := &models.Profile{UID: input.UID}
	input.Apply(prof)

	if file != nil {
		url, err := s.blobs.Upload(ctx, file)
		if err != nil {
			return nil, err
		}
		prof.ProfilePicture = &url
	}

	if err := s.profiles.Put(ctx, prof); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return prof, nil
}

// Update merges the supplied fields onto the stored profile. A new file
// replaces the picture, deleting the previous blob first.
func (s *ProfileService) Update(ctx context.Context, uid string, input *models.ProfileInput, file *storage.StagedFile) (*models.Profile, error) {
	prof, err := s.profiles.Get(ctx, uid)
	if err != nil {
		return nil, err
	}

	if file != nil {
		if prof.ProfilePicture != nil && *prof.ProfilePicture != "" {
			if err := s.blobs.Delete(ctx, *prof.ProfilePicture); err != nil {
				return nil, fmt.Errorf("delete old picture: %w", err)
			}
		}
		url, err := s.blobs.Upload(ctx, file)
		if err != nil {
			return nil, err
		}
		prof.ProfilePicture = &url
	}

	input.Apply(prof)
	prof.UID = uid

	if err := s.profiles.Put(ctx, prof); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return prof, nil
}
