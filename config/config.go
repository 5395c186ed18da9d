package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config contains every runtime setting the server needs. All values are
// read from environment variables, with a .env file loaded first if present.
type Config struct {
	Environment string
	Port        string
	HTTPPort    string

	MongoURI      string
	MongoDatabase string

	// StoreTimeout bounds every round trip to the document store.
	StoreTimeout time.Duration
}

// IsDevelopment reports whether the server runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// LoadConfig reads the configuration from the environment. Development falls
// back to local defaults; any other environment requires MONGO_URI to be set.
func LoadConfig() (*Config, error) {
	// Missing .env is fine, the environment may be configured externally.
	_ = godotenv.Load()

	cfg := &Config{
		Environment:   getEnv("ENVIRONMENT", "development"),
		Port:          getEnv("PORT", "3001"),
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDatabase: getEnv("MONGO_DATABASE", "oxide"),
	}

	if cfg.MongoURI == "" {
		if !cfg.IsDevelopment() {
			return nil, fmt.Errorf("MONGO_URI environment variable is required in %s environment", cfg.Environment)
		}
		cfg.MongoURI = "mongodb://localhost:27017"
	}

	timeoutStr := getEnv("STORE_TIMEOUT_SECONDS", "5")
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil || timeout <= 0 {
		return nil, fmt.Errorf("invalid STORE_TIMEOUT_SECONDS value %q", timeoutStr)
	}
	cfg.StoreTimeout = time.Duration(timeout) * time.Second

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("invalid PORT value %q", cfg.Port)
	}
	if _, err := strconv.Atoi(cfg.HTTPPort); err != nil {
		return nil, fmt.Errorf("invalid HTTP_PORT value %q", cfg.HTTPPort)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
