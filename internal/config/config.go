package config

import (
	"os"
	"path/filepath"
	"time"
)

type Config struct {
	Addr         string
	DataDir      string
	DBPath       string
	SchemaPath   string
	LogLevel     string
	SyncInterval time.Duration
	JWTSecret    string

	// Machine translation provider settings. Empty APIKey disables suggestions.
	AIProvider string
	AIAPIKey   string
	AIBaseURL  string
	AIModel    string
}

func Load() Config {
	addr := getenv("POLYGLOT_ADDR", ":8080")
	dataDir := getenv("POLYGLOT_DATA_DIR", "data")

	dbPath := os.Getenv("POLYGLOT_DB_PATH")
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, "polyglot.db")
	}

	schemaPath := getenv("POLYGLOT_SCHEMA_PATH", "translatables.yaml")

	syncInterval := time.Duration(0)
	if raw := os.Getenv("POLYGLOT_SYNC_INTERVAL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			syncInterval = parsed
		}
	}

	return Config{
		Addr:         addr,
		DataDir:      dataDir,
		DBPath:       filepath.Clean(dbPath),
		SchemaPath:   filepath.Clean(schemaPath),
		LogLevel:     getenv("POLYGLOT_LOG_LEVEL", "info"),
		SyncInterval: syncInterval,
		JWTSecret:    os.Getenv("POLYGLOT_JWT_SECRET"),
		AIProvider:   getenv("POLYGLOT_AI_PROVIDER", "openai"),
		AIAPIKey:     os.Getenv("POLYGLOT_AI_API_KEY"),
		AIBaseURL:    os.Getenv("POLYGLOT_AI_BASE_URL"),
		AIModel:      os.Getenv("POLYGLOT_AI_MODEL"),
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
