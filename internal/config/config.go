package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds seeder configuration loaded from environment variables. Every
// field has a default; a missing override never fails the run.
type Config struct {
	Env            string // BOUTIQUE_ENV, default "development"
	DBPath         string // BOUTIQUE_DB, default "boutique.db"
	AdminEmail     string // ADMIN_EMAIL
	AdminPassword  string // ADMIN_PASSWORD
	AdminUsername  string // ADMIN_USERNAME
	ClientPassword string // CLIENT_PASSWORD, shared by seeded client accounts
	BcryptCost     int    // BCRYPT_COST, default 10
}

// Load reads configuration from environment variables with sensible defaults.
// If envFile is non-empty the file is loaded first; a missing file is not an
// error, matching the "absence of overrides must not fail the run" contract.
func Load(envFile string) Config {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	}

	return Config{
		Env:            envOr("BOUTIQUE_ENV", "development"),
		DBPath:         envOr("BOUTIQUE_DB", "boutique.db"),
		AdminEmail:     envOr("ADMIN_EMAIL", "admin@boutique.example"),
		AdminPassword:  envOr("ADMIN_PASSWORD", "admin123!"),
		AdminUsername:  envOr("ADMIN_USERNAME", "admin"),
		ClientPassword: envOr("CLIENT_PASSWORD", "client123!"),
		BcryptCost:     envOrInt("BCRYPT_COST", 10),
	}
}

// Production reports whether credentials must be kept out of the logs.
func (c Config) Production() bool {
	return c.Env == "production"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
