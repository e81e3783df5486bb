package services

import (
	"context"
	"fmt"
	"os"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

type FirebaseConfig struct {
	ProjectID       string
	CredentialsFile string
	CredentialsJSON string
	StorageBucket   string
}

// NewFirebaseApp initializes the Admin SDK. Inline JSON credentials win over
// the credentials file; with neither available, Application Default
// Credentials are used.
func NewFirebaseApp(ctx context.Context, cfg FirebaseConfig) (*firebase.App, error) {
	var opts []option.ClientOption
	switch {
	case cfg.CredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	case cfg.CredentialsFile != "":
		if _, err := os.Stat(cfg.CredentialsFile); err == nil {
			opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
		}
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     cfg.ProjectID,
		StorageBucket: cfg.StorageBucket,
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase: init app: %w", err)
	}
	return app, nil
}
