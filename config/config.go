package config

import (
	"github.com/viprogramm/audio11eleven/logger"
	"github.com/viprogramm/audio11eleven/validation"
)

// Config is the full service configuration.
type Config struct {
	// Port is the HTTP listen port.
	Port int `mapstructure:"port" validate:"gte=1,lte=65535"`

	// BotToken is the Telegram bot token. When empty the bot side of the
	// service is disabled and only HTTP uploads work.
	BotToken string `mapstructure:"bot_token"`

	// WebhookURL is the public base URL Telegram should deliver updates to.
	WebhookURL string `mapstructure:"webhook_url" validate:"omitempty,url"`

	// ElevenLabsAPIKey authenticates against the ElevenLabs API. When empty
	// the service starts but reports the provider as unavailable.
	ElevenLabsAPIKey string `mapstructure:"elevenlabs_api_key"`

	// UploadDir is where multipart uploads are staged before transcription.
	UploadDir string `mapstructure:"upload_dir" validate:"required"`

	// FetchMaxBytes caps the size of remote media downloaded for bot messages.
	FetchMaxBytes int64 `mapstructure:"fetch_max_bytes" validate:"gt=0"`

	Logging logger.Config `mapstructure:"logging"`
}

// ApplyDefaults fills in default values for unset fields.
func (c *Config) ApplyDefaults() {
	if c.Port == 0 {
		c.Port = 3001
	}
	if c.UploadDir == "" {
		c.UploadDir = "uploads"
	}
	if c.FetchMaxBytes == 0 {
		c.FetchMaxBytes = 50 << 20
	}
	c.Logging.ApplyDefaults()
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	return c.Logging.Validate()
}

// BotEnabled reports whether the Telegram side should start.
func (c *Config) BotEnabled() bool {
	return c.BotToken != ""
}
