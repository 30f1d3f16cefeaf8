package config

import "time"

// Config holds every runtime setting the application needs. It is built once
// at startup and passed explicitly to the components that use it, so nothing
// reads the environment after boot.
type Config struct {
	// Port the HTTP server listens on
	Port string
	// DBUrl is the sqlite DSN
	DBUrl string
	// JWTSecret signs and verifies auth tokens
	JWTSecret string
	// TokenLifetime is how long an issued auth token stays valid
	TokenLifetime time.Duration
	// BcryptCost is the bcrypt work factor for password hashing
	BcryptCost int
}

// Load builds a Config from environment variables.
func Load() *Config {
	return &Config{
		Port:          GetEnvAsStr("PORT", "8080"),
		DBUrl:         GetEnvAsStr("DB_URL", "auth.db"),
		JWTSecret:     GetEnv("SECRET_KEY"),
		TokenLifetime: time.Duration(GetEnvAsInt("AUTH_TOKEN_EXPIRY_SECONDS", 3600, true)) * time.Second,
		BcryptCost:    GetEnvAsInt("BCRYPT_LOG_ROUNDS", 13, true),
	}
}
