package envvars

import (
	"crypto/rand"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	Port          = "PORT"
	Environment   = "ENVIRONMENT"
	StoreBackend  = "STORE_BACKEND"
	GCPProjectID  = "GCP_PROJECT_ID"
	MongoURI      = "MONGO_URI"
	MongoDatabase = "MONGO_DATABASE"
	SessionSecret = "SESSION_SECRET"
	SessionTTL    = "SESSION_TTL"
	SeedBucket    = "SEED_BUCKET"
	SeedObject    = "SEED_OBJECT"
	SeedFile      = "SEED_FILE"
	LogLevel      = "LOG_LEVEL"
)

const (
	DevEnv        = "dev"
	ProductionEnv = "production"
)

const (
	FirestoreBackend = "firestore"
	MongoBackend     = "mongo"
	MemoryBackend    = "memory"
)

const (
	defaultPort          = "3000"
	defaultMongoURI      = "mongodb://localhost:27017"
	defaultMongoDatabase = "web420"
	defaultSessionTTL    = 24 * time.Hour
	defaultLogLevel      = "info"
)

type Env struct {
	Port          string
	Environment   string
	StoreBackend  string
	GCPProjectID  string
	MongoURI      string
	MongoDatabase string
	SessionSecret []byte
	SessionTTL    time.Duration
	SeedBucket    string
	SeedObject    string
	SeedFile      string
	LogLevel      string
}

func GetEnv() (Env, error) {
	env := Env{
		Port:          lookup(Port, defaultPort),
		Environment:   lookup(Environment, DevEnv),
		StoreBackend:  strings.ToLower(lookup(StoreBackend, FirestoreBackend)),
		GCPProjectID:  lookup(GCPProjectID, ""),
		MongoURI:      lookup(MongoURI, defaultMongoURI),
		MongoDatabase: lookup(MongoDatabase, defaultMongoDatabase),
		SessionTTL:    defaultSessionTTL,
		SeedBucket:    lookup(SeedBucket, ""),
		SeedObject:    lookup(SeedObject, ""),
		SeedFile:      lookup(SeedFile, ""),
		LogLevel:      strings.ToLower(lookup(LogLevel, defaultLogLevel)),
	}

	switch env.StoreBackend {
	case FirestoreBackend, MongoBackend, MemoryBackend:
	default:
		return Env{}, fmt.Errorf("%s must be one of %s, %s or %s, got %q",
			StoreBackend, FirestoreBackend, MongoBackend, MemoryBackend, env.StoreBackend)
	}

	if ttl, ok := os.LookupEnv(SessionTTL); ok {
		d, err := time.ParseDuration(ttl)
		if err != nil || d <= 0 {
			return Env{}, fmt.Errorf("%s must be a positive duration, got %q", SessionTTL, ttl)
		}
		env.SessionTTL = d
	}

	if (env.SeedBucket == "") != (env.SeedObject == "") {
		return Env{}, fmt.Errorf("%s and %s must be set together", SeedBucket, SeedObject)
	}

	secret, ok := os.LookupEnv(SessionSecret)
	switch {
	case ok && secret != "":
		env.SessionSecret = []byte(secret)
	case IsProd(env):
		return Env{}, fmt.Errorf("%s required", SessionSecret)
	default:
		// Dev sessions do not survive a restart.
		env.SessionSecret = make([]byte, 32)
		if _, err := rand.Read(env.SessionSecret); err != nil {
			return Env{}, fmt.Errorf("failed to generate session secret: %w", err)
		}
	}
	return env, nil
}

func IsProd(env Env) bool {
	return env.Environment == ProductionEnv
}

func IsDev(env Env) bool {
	return env.Environment == DevEnv
}

func lookup(name, fallback string) string {
	value, ok := os.LookupEnv(name)
	if !ok || value == "" {
		return fallback
	}
	return value
}
