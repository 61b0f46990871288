// Package config loads dev-store settings from the environment, with a
// best-effort .env file load first so local setups need no exported vars.
package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the process configuration
type Config struct {
	// Backend selects the document store backend: file, memory, or redis
	Backend string `env:"DEVSTORE_BACKEND" envDefault:"file"`

	// Path is the backing document path for the file backend
	Path string `env:"DEVSTORE_PATH" envDefault:"devstore.json"`

	// RedisURL is the connection URL for the redis backend
	RedisURL string `env:"DEVSTORE_REDIS_URL" envDefault:"redis://localhost:6379"`
}

// Load reads configuration from .env (if present) and the environment
func Load() (Config, error) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	return env.ParseAs[Config]()
}
