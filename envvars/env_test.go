package envvars

import (
	"os"
	"reflect"
	"testing"
	"time"
)

func TestGetEnv(t *testing.T) {
	// Backup and defer restore of environment variables
	backup := os.Environ()
	defer func() {
		os.Clearenv()
		for _, env := range backup {
			pair := splitEnv(env)
			os.Setenv(pair[0], pair[1])
		}
	}()

	t.Run("all env vars set", func(t *testing.T) {
		os.Clearenv()
		os.Setenv(Port, "8080")
		os.Setenv(Environment, "production")
		os.Setenv(StoreBackend, "Mongo")
		os.Setenv(GCPProjectID, "hall-project")
		os.Setenv(MongoURI, "mongodb://db:27017")
		os.Setenv(MongoDatabase, "hall")
		os.Setenv(SessionSecret, "test_secret")
		os.Setenv(SessionTTL, "90m")
		os.Setenv(SeedBucket, "fixtures")
		os.Setenv(SeedObject, "seed.json")
		os.Setenv(SeedFile, "./seed.json")
		os.Setenv(LogLevel, "DEBUG")

		expected := Env{
			Port:          "8080",
			Environment:   ProductionEnv,
			StoreBackend:  MongoBackend,
			GCPProjectID:  "hall-project",
			MongoURI:      "mongodb://db:27017",
			MongoDatabase: "hall",
			SessionSecret: []byte("test_secret"),
			SessionTTL:    90 * time.Minute,
			SeedBucket:    "fixtures",
			SeedObject:    "seed.json",
			SeedFile:      "./seed.json",
			LogLevel:      "debug",
		}

		got, err := GetEnv()
		if err != nil {
			t.Fatalf("GetEnv() error = %v", err)
		}
		if !reflect.DeepEqual(got, expected) {
			t.Errorf("GetEnv() = %v, want %v", got, expected)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		os.Clearenv()

		got, err := GetEnv()
		if err != nil {
			t.Fatalf("GetEnv() error = %v", err)
		}
		if got.Environment != DevEnv {
			t.Errorf("Expected environment to default to dev, got %s", got.Environment)
		}
		if got.Port != "3000" {
			t.Errorf("Expected port to default to 3000, got %s", got.Port)
		}
		if got.StoreBackend != FirestoreBackend {
			t.Errorf("Expected store backend to default to firestore, got %s", got.StoreBackend)
		}
		if got.SessionTTL != 24*time.Hour {
			t.Errorf("Expected session ttl to default to 24h, got %s", got.SessionTTL)
		}
		if len(got.SessionSecret) != 32 {
			t.Errorf("Expected a generated 32 byte dev secret, got %d bytes", len(got.SessionSecret))
		}
	})

	errorCases := []struct {
		name string
		vars map[string]string
	}{
		{"production requires a session secret", map[string]string{Environment: ProductionEnv}},
		{"unknown store backend", map[string]string{StoreBackend: "postgres"}},
		{"bad session ttl", map[string]string{SessionTTL: "soon"}},
		{"negative session ttl", map[string]string{SessionTTL: "-1h"}},
		{"seed bucket without object", map[string]string{SeedBucket: "fixtures"}},
	}
	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for k, v := range tt.vars {
				os.Setenv(k, v)
			}
			if _, err := GetEnv(); err == nil {
				t.Errorf("GetEnv() expected an error")
			}
		})
	}
}

func TestIsProd(t *testing.T) {
	tests := []struct {
		name string
		env  Env
		want bool
	}{
		{"production env", Env{Environment: ProductionEnv}, true},
		{"dev env", Env{Environment: DevEnv}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsProd(tt.env); got != tt.want {
				t.Errorf("IsProd() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsDev(t *testing.T) {
	tests := []struct {
		name string
		env  Env
		want bool
	}{
		{"production env", Env{Environment: ProductionEnv}, false},
		{"dev env", Env{Environment: DevEnv}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDev(tt.env); got != tt.want {
				t.Errorf("IsDev() = %v, want %v", got, tt.want)
			}
		})
	}
}

func splitEnv(env string) []string {
	var s []string
	for i := 0; i < len(env); i++ {
		if env[i] == '=' {
			s = append(s, env[:i])
			s = append(s, env[i+1:])
			return s
		}
	}
	// Return slice with empty strings if no '=' is found
	return []string{"", ""}
}
