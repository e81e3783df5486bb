package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	firebase "firebase.google.com/go/v4"

	"github.com/nutripal/profile-backend/internal/config"
	"github.com/nutripal/profile-backend/internal/handlers"
	"github.com/nutripal/profile-backend/internal/services"
	"github.com/nutripal/profile-backend/internal/storage"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := services.NewFirebaseApp(ctx, services.FirebaseConfig{
		ProjectID:       cfg.FirebaseProjectID,
		CredentialsFile: cfg.FirebaseCredentialsFile,
		CredentialsJSON: cfg.FirebaseCredentialsJSON,
		StorageBucket:   cfg.StorageBucket,
	})
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth client: %v", err)
	}
	identity := services.NewFirebaseIdentity(authClient)

	profileStore, closeStore, err := newProfileStore(ctx, cfg, app)
	if err != nil {
		log.Fatalf("Failed to initialize %s profile store: %v", cfg.ProfileBackend, err)
	}
	defer closeStore()

	blobStore, err := newBlobStore(ctx, cfg, app)
	if err != nil {
		log.Fatalf("Failed to initialize %s blob store: %v", cfg.BlobBackend, err)
	}

	profileService := services.NewProfileService(profileStore, blobStore)
	profileHandler := handlers.NewProfileHandler(profileService, cfg.RequestTimeout)

	r := handlers.NewRouter(profileHandler, identity, storage.NewStager(cfg.TempDir))
	if cfg.BlobBackend == config.BlobBackendLocal {
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown: %v", err)
		}
	}()

	log.Printf("Profile API server starting on %s (profiles=%s, blobs=%s)", cfg.Addr(), cfg.ProfileBackend, cfg.BlobBackend)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server failed to start: %v", err)
	}
}

func newProfileStore(ctx context.Context, cfg *config.Config, app *firebase.App) (services.ProfileStore, func(), error) {
	switch cfg.ProfileBackend {
	case config.ProfileBackendMongo:
		if cfg.MongoURI == "" {
			return nil, nil, errors.New("MONGO_URI is not set")
		}
		connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
		defer cancel()
		store, err := services.NewMongoProfileStore(connectCtx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close(context.Background()) }, nil

	case config.ProfileBackendFile:
		store, err := services.NewJSONProfileStore(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil

	case config.ProfileBackendFirestore:
		client, err := app.Firestore(ctx)
		if err != nil {
			return nil, nil, err
		}
		return services.NewFirestoreProfileStore(client), func() { client.Close() }, nil
	}
	return nil, nil, errors.New("unknown PROFILE_BACKEND " + cfg.ProfileBackend)
}

func newBlobStore(ctx context.Context, cfg *config.Config, app *firebase.App) (services.BlobStore, error) {
	switch cfg.BlobBackend {
	case config.BlobBackendLocal:
		return services.NewLocalBlobStore(cfg.UploadDir, cfg.PublicBaseURL), nil

	case config.BlobBackendGCS:
		client, err := app.Storage(ctx)
		if err != nil {
			return nil, err
		}
		bucket, err := client.Bucket(cfg.StorageBucket)
		if err != nil {
			return nil, err
		}
		return services.NewGCSBlobStore(bucket, cfg.StorageBucket), nil
	}
	return nil, errors.New("unknown BLOB_BACKEND " + cfg.BlobBackend)
}
