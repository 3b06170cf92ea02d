package config

import (
	"os"
	"strings"
)

const (
	defaultPort        = "8080"
	defaultDatabaseURL = "moviebooks.db"
	defaultUploadDir   = "public/images"
)

// Config holds process-level settings loaded once at startup.
type Config struct {
	Port        string
	DatabaseURL string
	UploadDir   string
	CORSOrigins []string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", defaultPort),
		DatabaseURL: getEnv("DATABASE_URL", defaultDatabaseURL),
		UploadDir:   getEnv("UPLOAD_DIR", defaultUploadDir),
		CORSOrigins: splitEnv("CORS_ALLOWED_ORIGINS"),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitEnv(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
