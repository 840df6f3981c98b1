package config

import (
	"errors"
	"os"
	"strings"
)

// Config carries everything the server reads from the environment.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string

	S3Endpoint      string
	S3Region        string
	S3Bucket        string
	S3AccessKey     string
	S3SecretKey     string
	S3PublicBaseURL string
}

// Load builds a Config from environment variables. PORT defaults to 8080;
// DATABASE_URL and JWT_SECRET are required.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getenv("PORT", "8080"),
		DatabaseURL:     strings.TrimSpace(os.Getenv("DATABASE_URL")),
		JWTSecret:       strings.TrimSpace(os.Getenv("JWT_SECRET")),
		S3Endpoint:      strings.TrimSpace(os.Getenv("S3_ENDPOINT")),
		S3Region:        getenv("S3_REGION", "us-east-1"),
		S3Bucket:        strings.TrimSpace(os.Getenv("S3_BUCKET")),
		S3AccessKey:     strings.TrimSpace(os.Getenv("S3_ACCESS_KEY")),
		S3SecretKey:     strings.TrimSpace(os.Getenv("S3_SECRET_KEY")),
		S3PublicBaseURL: strings.TrimSpace(os.Getenv("S3_PUBLIC_BASE_URL")),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	if cfg.S3PublicBaseURL == "" {
		cfg.S3PublicBaseURL = cfg.S3Endpoint
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
