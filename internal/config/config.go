package config

import "os"

type Config struct {
	// Server
	Port       string
	CORSOrigin string

	// Persistence
	DatabaseURL string

	// Auth
	JWTSecret string

	// Uploaded images live here and are served under /uploads.
	UploadDir string
}

func New() *Config {
	return &Config{
		Port:        getEnv("PORT", "5000"),
		CORSOrigin:  getEnv("CORS_ORIGIN", "http://localhost:8080"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		UploadDir:   getEnv("UPLOAD_DIR", "public/uploads"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
