package services

import (
	"context"
	"crypto/tls"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nutripal/profile-backend/internal/models"
)

type MongoProfileStore struct {
	client      *mongo.Client
	profilesCol *mongo.Collection
}

func NewMongoProfileStore(ctx context.Context, mongoURI, dbName string) (*MongoProfileStore, error) {
	opts := options.Client().ApplyURI(mongoURI)
	// Atlas clusters are reached through SRV records and require TLS.
	if strings.HasPrefix(mongoURI, "mongodb+srv://") {
		opts.SetTLSConfig(&tls.Config{MinVersion: tls.VersionTLS12})
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	col := client.Database(dbName).Collection(profilesCollection)

	// Best-effort index.
	_, _ = col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "uid", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return &MongoProfileStore{client: client, profilesCol: col}, nil
}

func (s *MongoProfileStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *MongoProfileStore) Get(ctx context.Context, uid string) (*models.Profile, error) {
	var prof models.Profile
	err := s.profilesCol.FindOne(ctx, bson.M{"uid": uid}).Decode(&prof)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &prof, nil
}

func (s *MongoProfileStore) Put(ctx context.Context, p *models.Profile) error {
	_, err := s.profilesCol.ReplaceOne(
		ctx,
		bson.M{"uid": p.UID},
		p,
		options.Replace().SetUpsert(true),
	)
	return err
}
