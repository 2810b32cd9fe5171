package httpclient

import (
	"fmt"
	"time"
)

const defaultTimeout = 300 * time.Second

// Config configures an HTTP client.
type Config struct {
	// BaseURL is prepended to request paths (e.g. "https://api.openai.com/v1").
	BaseURL string
	// Timeout is the total request timeout. Audio uploads are large, so the
	// default is generous.
	Timeout time.Duration
	// Headers are default headers applied to every request.
	Headers map[string]string
	// Auth is the client-level authentication, applied unless a request
	// overrides it.
	Auth *AuthConfig
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("httpclient: timeout must not be negative")
	}
	return nil
}
