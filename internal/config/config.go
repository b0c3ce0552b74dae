package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"nicegauss/internal/errors"
)

// Config holds the settings the surrounding system needs: where the data
// service lives and how long a fetch may take. The analysis core itself
// carries no configuration.
type Config struct {
	APIURL     string
	APITimeout time.Duration
}

const (
	defaultAPIURL     = "https://data.nicenumbers.net"
	defaultAPITimeout = 30 * time.Second
)

// Load reads configuration from the environment, honoring a .env file when
// one is present.
func Load() (*Config, error) {
	// Missing .env is fine; explicit environment still applies.
	_ = godotenv.Load()

	cfg := &Config{
		APIURL:     defaultAPIURL,
		APITimeout: defaultAPITimeout,
	}

	if url := os.Getenv("NICE_API_URL"); url != "" {
		cfg.APIURL = url
	}

	if raw := os.Getenv("NICE_API_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, errors.ConfigInvalid("NICE_API_TIMEOUT must be a duration like 30s")
		}
		if timeout <= 0 {
			return nil, errors.ConfigInvalid("NICE_API_TIMEOUT must be positive")
		}
		cfg.APITimeout = timeout
	}

	return cfg, nil
}
