// Package options configures an Integrator.
package options

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/robbyt/go-polyquad/engines/types"
	"github.com/robbyt/go-polyquad/reference"
)

// ErrInvalidOption is returned by an Option given an unusable value.
var ErrInvalidOption = errors.New("invalid option")

// Config holds everything an Integrator needs besides the request itself.
type Config struct {
	// Logger for the integrator and the engines it compiles with
	handler slog.Handler
	// Engine used to compile expressions (native, starlark, govaluate)
	engineType types.Type
	// Sampling goroutines; 1 samples sequentially
	workers int
	// Points from which sampling goes parallel when workers > 1
	parallelThreshold int
	// Registry for the integration metrics; nil disables metrics
	registerer prometheus.Registerer
	// Known closed forms; nil disables the exact value comparison
	oracle *reference.Oracle
}

// Option is a function that modifies Config
type Option func(*Config) error

// New builds a Config from the defaults and opts, then validates it.
func New(opts ...Option) (*Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithEngine selects the expression engine.
func WithEngine(engineType types.Type) Option {
	return func(c *Config) error {
		if _, err := types.Parse(string(engineType)); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidOption, err)
		}
		c.engineType = engineType
		return nil
	}
}

// WithLogHandler sets the log handler.
func WithLogHandler(handler slog.Handler) Option {
	return func(c *Config) error {
		if handler == nil {
			return fmt.Errorf("%w: log handler cannot be nil", ErrInvalidOption)
		}
		c.handler = handler
		return nil
	}
}

// WithLogger sets the log handler from an existing logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) error {
		if logger == nil {
			return fmt.Errorf("%w: logger cannot be nil", ErrInvalidOption)
		}
		c.handler = logger.Handler()
		return nil
	}
}

// WithWorkers sets the number of sampling goroutines.
func WithWorkers(workers int) Option {
	return func(c *Config) error {
		if workers < 1 {
			return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidOption, workers)
		}
		c.workers = workers
		return nil
	}
}

// WithParallelThreshold sets the number of points from which sampling runs
// in parallel.
func WithParallelThreshold(points int) Option {
	return func(c *Config) error {
		if points < 1 {
			return fmt.Errorf("%w: parallel threshold must be positive, got %d", ErrInvalidOption, points)
		}
		c.parallelThreshold = points
		return nil
	}
}

// WithRegisterer enables metrics on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *Config) error {
		c.registerer = reg
		return nil
	}
}

// WithOracle replaces the table of known closed forms. nil disables the
// comparison.
func WithOracle(oracle *reference.Oracle) Option {
	return func(c *Config) error {
		c.oracle = oracle
		return nil
	}
}

// Validate performs basic validation on the configuration
func (c *Config) Validate() error {
	if c.handler == nil {
		return fmt.Errorf("%w: no log handler specified", ErrInvalidOption)
	}
	if c.engineType == "" {
		return fmt.Errorf("%w: no engine type specified", ErrInvalidOption)
	}
	if c.workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1", ErrInvalidOption)
	}
	return nil
}

// GetHandler returns the configured log handler
func (c *Config) GetHandler() slog.Handler {
	return c.handler
}

// GetEngineType returns the configured engine
func (c *Config) GetEngineType() types.Type {
	return c.engineType
}

// GetWorkers returns the number of sampling goroutines
func (c *Config) GetWorkers() int {
	return c.workers
}

// GetParallelThreshold returns the parallel sampling threshold, 0 for the
// sampler default
func (c *Config) GetParallelThreshold() int {
	return c.parallelThreshold
}

// GetRegisterer returns the metrics registry, possibly nil
func (c *Config) GetRegisterer() prometheus.Registerer {
	return c.registerer
}

// GetOracle returns the closed-form table, possibly nil
func (c *Config) GetOracle() *reference.Oracle {
	return c.oracle
}
