package config

import (
	"fmt"
	"os"
	"strings"
)

// Storage mode selects which backend serves the collection repositories.
const (
	StorageJSON   = "json"
	StorageMongo  = "mongo"
	StorageMemory = "memory"
)

// Config aggregates application configuration values loaded from
// environment variables.
type Config struct {
	Env         string
	DataDir     string
	StorageMode string
	MongoURI    string
	MongoDB     string
	ServeHTTP   bool
	HTTPAddr    string
}

// Load parses configuration from the current environment.
func Load() (Config, error) {
	cfg := Config{
		Env:         getEnv("APP_ENV", "dev"),
		DataDir:     getEnv("DATA_DIR", "data"),
		StorageMode: strings.ToLower(getEnv("STORAGE_MODE", StorageJSON)),
		MongoURI:    os.Getenv("MONGO_URI"),
		MongoDB:     getEnv("MONGO_DB", "fleetdesk"),
		HTTPAddr:    getEnv("HTTP_ADDR", ":8080"),
	}

	serve, err := parseBoolEnv("SERVE_HTTP", false)
	if err != nil {
		return Config{}, err
	}
	cfg.ServeHTTP = serve

	switch cfg.StorageMode {
	case StorageJSON, StorageMemory:
	case StorageMongo:
		if cfg.MongoURI == "" {
			return Config{}, fmt.Errorf("MONGO_URI is required when STORAGE_MODE=mongo")
		}
	default:
		return Config{}, fmt.Errorf("invalid STORAGE_MODE: %q", cfg.StorageMode)
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseBoolEnv(key string, def bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "t", "true", "yes", "y", "on":
		return true, nil
	case "0", "f", "false", "no", "n", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid %s boolean: %q", key, raw)
	}
}
