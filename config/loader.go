package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envBindings maps config keys to the environment variables that set them.
var envBindings = map[string]string{
	"port":               "PORT",
	"bot_token":          "BOT_TOKEN",
	"webhook_url":        "WEBHOOK_URL",
	"elevenlabs_api_key": "ELEVENLABS_API_KEY",
	"upload_dir":         "UPLOAD_DIR",
	"fetch_max_bytes":    "FETCH_MAX_BYTES",
	"logging.level":      "LOG_LEVEL",
	"logging.format":     "LOG_FORMAT",
}

// Load reads configuration from a .env file (when present) and the
// environment, applies defaults and validates the result.
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom is Load with an explicit .env path, used by tests.
func LoadFrom(envFile string) (*Config, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
			}
		}
	}

	v := viper.New()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
