package configs

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config is everything the server reads from the environment. The JWT
// secret lives here and in process memory only; it is never persisted.
type Config struct {
	MongoURI    string
	DBName      string
	Port        string
	JWTSecret   string
	JWTIssuer   string
	JWTAudience string
	TokenTTL    time.Duration
}

// Load reads .env if present, then the environment. Missing required vars
// fail the boot.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		MongoURI:    os.Getenv("MONGO_URI"),
		DBName:      os.Getenv("DB_NAME"),
		Port:        os.Getenv("PORT"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTIssuer:   os.Getenv("JWT_ISSUER"),
		JWTAudience: os.Getenv("JWT_AUDIENCE"),
		TokenTTL:    24 * time.Hour,
	}

	for name, v := range map[string]string{
		"MONGO_URI":    cfg.MongoURI,
		"DB_NAME":      cfg.DBName,
		"JWT_SECRET":   cfg.JWTSecret,
		"JWT_ISSUER":   cfg.JWTIssuer,
		"JWT_AUDIENCE": cfg.JWTAudience,
	} {
		if v == "" {
			return Config{}, fmt.Errorf("%s not set in environment", name)
		}
	}

	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return Config{}, fmt.Errorf("invalid TOKEN_TTL %q: %w", ttl, err)
		}
		cfg.TokenTTL = d
	}

	return cfg, nil
}
