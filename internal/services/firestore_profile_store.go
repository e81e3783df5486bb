package services

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nutripal/profile-backend/internal/models"
)

const profilesCollection = "profiles"

// FirestoreProfileStore keeps profiles in the "profiles" collection with the
// UID as document id.
type FirestoreProfileStore struct {
	col *firestore.CollectionRef
}

func NewFirestoreProfileStore(client *firestore.Client) *FirestoreProfileStore {
	return &FirestoreProfileStore{col: client.Collection(profilesCollection)}
}

func (s *FirestoreProfileStore) Get(ctx context.Context, uid string) (*models.Profile, error) {
	doc, err := s.col.Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	var p models.Profile
	if err := doc.DataTo(&p); err != nil {
		return nil, err
	}
	if p.UID == "" {
		p.UID = uid
	}
	return &p, nil
}

func (s *FirestoreProfileStore) Put(ctx context.Context, p *models.Profile) error {
	_, err := s.col.Doc(p.UID).Set(ctx, p)
	return err
}
