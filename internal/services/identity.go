package services

import (
	"context"
	"errors"

	fbauth "firebase.google.com/go/v4/auth"
)

var ErrIdentityNotFound = errors.New("identity not found")

// FirebaseIdentity resolves UIDs against Firebase Authentication.
type FirebaseIdentity struct {
	client *fbauth.Client
}

func NewFirebaseIdentity(client *fbauth.Client) *FirebaseIdentity {
	return &FirebaseIdentity{client: client}
}

// LookupUser returns ErrIdentityNotFound when Firebase has no such user.
func (f *FirebaseIdentity) LookupUser(ctx context.Context, uid string) (*fbauth.UserRecord, error) {
	u, err := f.client.GetUser(ctx, uid)
	if err != nil {
		if fbauth.IsUserNotFound(err) {
			return nil, ErrIdentityNotFound
		}
		return nil, err
	}
	return u, nil
}
