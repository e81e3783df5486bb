package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProfileBackendFirestore = "firestore"
	ProfileBackendMongo     = "mongo"
	ProfileBackendFile      = "file"

	BlobBackendGCS   = "gcs"
	BlobBackendLocal = "local"
)

type Config struct {
	Port string

	FirebaseProjectID       string
	FirebaseCredentialsFile string
	FirebaseCredentialsJSON string
	StorageBucket           string

	ProfileBackend string
	BlobBackend    string

	MongoURI string
	MongoDB  string
	DataDir  string

	UploadDir     string
	PublicBaseURL string
	TempDir       string

	RequestTimeout time.Duration
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[config] failed to read .env: %v", err)
	}

	port := getEnv("PORT", "3000")
	return &Config{
		Port:                    port,
		FirebaseProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseCredentialsFile: getEnv("FIREBASE_CREDENTIALS_FILE", "serviceAccountKey.json"),
		FirebaseCredentialsJSON: getEnv("FIREBASE_CREDENTIALS_JSON", ""),
		StorageBucket:           getEnv("STORAGE_BUCKET", "nutripal-4bd4e.appspot.com"),
		ProfileBackend:          strings.ToLower(getEnv("PROFILE_BACKEND", ProfileBackendFirestore)),
		BlobBackend:             strings.ToLower(getEnv("BLOB_BACKEND", BlobBackendGCS)),
		MongoURI:                getEnv("MONGO_URI", ""),
		MongoDB:                 getEnv("MONGO_DB", "nutripal"),
		DataDir:                 getEnv("DATA_DIR", "./data"),
		UploadDir:               getEnv("UPLOAD_DIR", "./uploads"),
		PublicBaseURL:           strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:"+port), "/"),
		TempDir:                 getEnv("TEMP_DIR", "temp"),
		RequestTimeout:          getDuration("REQUEST_TIMEOUT", 30*time.Second),
	}
}

// Addr is the listen address derived from Port.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("[config] invalid %s=%q, using %s", key, raw, defaultValue)
		return defaultValue
	}
	return d
}
