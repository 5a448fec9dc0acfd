package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variables recognized as overrides for the built-in defaults.
// Explicit YAML keys and CLI flags both take precedence over these.
const (
	EnvTool   = "CRATEDOC_TOOL"
	EnvDocDir = "CRATEDOC_DOC_DIR"
	EnvHeader = "CRATEDOC_HEADER"
)

// loadEnvFiles loads .env/.env.local if present. godotenv.Load never
// overwrites variables already set in the process environment, which keeps
// the parent environment authoritative.
func loadEnvFiles() {
	for _, envPath := range []string{".env", ".env.local"} {
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
		}
	}
}

// applyEnvOverrides replaces built-in defaults with CRATEDOC_* values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvTool); v != "" {
		cfg.Tool = v
	}
	if v := os.Getenv(EnvDocDir); v != "" {
		cfg.DocDir = v
	}
	if v := os.Getenv(EnvHeader); v != "" {
		cfg.Header = v
	}
}
