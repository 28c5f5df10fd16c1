package options

import (
	"log/slog"
	"os"

	"github.com/robbyt/go-polyquad/engines/types"
	"github.com/robbyt/go-polyquad/reference"
)

// DefaultConfig initializes a Config with sensible defaults: the native
// engine, sequential sampling, no metrics and the built-in closed forms.
func DefaultConfig() *Config {
	return &Config{
		handler:    DefaultHandler(),
		engineType: types.Native,
		workers:    1,
		oracle:     reference.Default(),
	}
}

// DefaultHandler returns the default logging handler
func DefaultHandler() slog.Handler {
	return slog.NewTextHandler(os.Stderr, nil)
}

// WithDefaults applies default values to any config properties that are unset
func WithDefaults() Option {
	return func(c *Config) error {
		if c.handler == nil {
			c.handler = DefaultHandler()
		}
		if c.engineType == "" {
			c.engineType = types.Native
		}
		if c.workers < 1 {
			c.workers = 1
		}
		return nil
	}
}
