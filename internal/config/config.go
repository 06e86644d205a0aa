package config

import (
	"log"
	"os"
)

const (
	defaultDBPath = "./taxlens.db"
	defaultPort   = "8080"
	defaultEnv    = "dev"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	Env             string
	Port            string
	DBPath          string
	ImageAPIBaseURL string
	ImageAPIKey     string
}

// Load reads environment variables and returns a populated Config.
func Load() Config {
	// Best-effort: load local dev environment variables.
	// We don't fail if the file is missing; production should use real env injection.
	_ = loadDotEnv(".env")

	cfg := Config{
		Env:             os.Getenv("APP_ENV"),
		Port:            os.Getenv("PORT"),
		DBPath:          os.Getenv("DB_PATH"),
		ImageAPIBaseURL: os.Getenv("IMAGE_API_BASE_URL"),
		ImageAPIKey:     os.Getenv("IMAGE_API_KEY"),
	}

	if cfg.Env == "" {
		cfg.Env = defaultEnv
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}
	if cfg.ImageAPIBaseURL == "" {
		cfg.ImageAPIBaseURL = "https://api.openai.com"
	}

	if cfg.ImageAPIKey == "" {
		log.Print("warning: IMAGE_API_KEY is not set, share images are disabled")
	}

	return cfg
}

// IsDev reports whether the app runs in local development mode.
func (c Config) IsDev() bool {
	return c.Env == defaultEnv
}
