package httpclient

import (
	"fmt"
	"time"
)

const (
	defaultTimeout = 30 * time.Second

	// defaultMaxDownloadBytes caps in-memory downloads at 50 MiB. Remote
	// media is buffered whole before transcription, so an unbounded body
	// would translate directly into unbounded memory growth.
	defaultMaxDownloadBytes = 50 << 20
)

// Config configures the HTTP client.
type Config struct {
	// BaseURL is the base URL prepended to all request paths.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// Timeout is the default request timeout. Defaults to 30s.
	// A negative value disables the client-level timeout entirely.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are default headers applied to every request.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// Auth configures default authentication applied to all requests.
	Auth *AuthConfig `yaml:"-" mapstructure:"-"`

	// MaxDownloadBytes limits how many bytes Download will buffer.
	// Defaults to 50 MiB.
	MaxDownloadBytes int64 `yaml:"max_download_bytes" mapstructure:"max_download_bytes"`
}

// ApplyDefaults sets sensible default values for unset fields.
func (c *Config) ApplyDefaults() {
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
	if c.MaxDownloadBytes == 0 {
		c.MaxDownloadBytes = defaultMaxDownloadBytes
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.MaxDownloadBytes < 0 {
		return fmt.Errorf("httpclient: max_download_bytes must be non-negative (got: %d)", c.MaxDownloadBytes)
	}
	return nil
}
