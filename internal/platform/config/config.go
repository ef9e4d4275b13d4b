package config

import (
	"os"

	"github.com/kakineha/coffee-backend/internal/platform/logger"
)

const defaultSecretKey = "supersecretkey-change-me"

type ServerConfig struct {
	Port string
}

type MongoConfig struct {
	URI      string
	Database string
}

type AuthConfig struct {
	SecretKey         string
	SeedAdminEmail    string
	SeedAdminPassword string
}

type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	Auth   AuthConfig
}

func Load() Config {
	secret := GetEnv("SECRET_KEY", "")
	if secret == "" {
		logger.Warn("SECRET_KEY not set, using default insecure key")
		secret = defaultSecretKey
	}

	return Config{
		Server: ServerConfig{
			Port: ":" + GetEnv("SERVER_PORT", "8000"),
		},
		Mongo: MongoConfig{
			URI:      GetEnv("DATABASE_URL", "mongodb://127.0.0.1:27017"),
			Database: GetEnv("DATABASE_NAME", "kakineha"),
		},
		Auth: AuthConfig{
			SecretKey:         secret,
			SeedAdminEmail:    GetEnv("SEED_ADMIN_EMAIL", "admin@example.com"),
			SeedAdminPassword: GetEnv("SEED_ADMIN_PASSWORD", "Admin@123"),
		},
	}
}

// GetEnv returns the value of an environment variable, or fallback if unset.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
