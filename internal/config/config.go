package config

import (
	"os"

	"github.com/joho/godotenv"
)

// sha256("12345") — the development owner credential shipped with the
// original installations. Override OWNER_PASSWORD_HASH in any real deploy.
const defaultOwnerHash = "5994471abb01112afcc18159f6cc74b4f511b99806da59b3caf5a9c173cacfc5"

type Config struct {
	DBPath string

	// Fixed owner credential pair, compared at login time without touching
	// the users table. The hash is a precomputed SHA-256 hex digest.
	OwnerEmail        string
	OwnerPasswordHash string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBPath:            getEnv("DB_PATH", "app.db"),
		OwnerEmail:        getEnv("OWNER_EMAIL", "sam@s.com"),
		OwnerPasswordHash: getEnv("OWNER_PASSWORD_HASH", defaultOwnerHash),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
