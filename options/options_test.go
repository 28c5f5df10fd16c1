package options

import (
	"log/slog"
	"os"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robbyt/go-polyquad/engines/types"
	"github.com/robbyt/go-polyquad/reference"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, types.Native, cfg.GetEngineType())
	assert.Equal(t, 1, cfg.GetWorkers())
	assert.Zero(t, cfg.GetParallelThreshold())
	assert.Nil(t, cfg.GetRegisterer())
	assert.Same(t, reference.Default(), cfg.GetOracle())
	assert.NotNil(t, cfg.GetHandler())
}

func TestWithOptions(t *testing.T) {
	t.Parallel()

	handler := slog.NewTextHandler(os.Stdout, nil)
	reg := prometheus.NewRegistry()

	cfg, err := New(
		WithEngine(types.Starlark),
		WithLogHandler(handler),
		WithWorkers(4),
		WithParallelThreshold(100),
		WithRegisterer(reg),
		WithOracle(nil),
	)
	require.NoError(t, err)
	assert.Equal(t, types.Starlark, cfg.GetEngineType())
	assert.Equal(t, handler, cfg.GetHandler())
	assert.Equal(t, 4, cfg.GetWorkers())
	assert.Equal(t, 100, cfg.GetParallelThreshold())
	assert.Equal(t, reg, cfg.GetRegisterer())
	assert.Nil(t, cfg.GetOracle())

	t.Run("logger", func(t *testing.T) {
		logger := slog.New(handler)
		cfg, err := New(WithLogger(logger))
		require.NoError(t, err)
		assert.Equal(t, handler, cfg.GetHandler())
	})
}

func TestInvalidOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opt  Option
	}{
		{name: "unknown engine", opt: WithEngine("lua")},
		{name: "nil handler", opt: WithLogHandler(nil)},
		{name: "nil logger", opt: WithLogger(nil)},
		{name: "zero workers", opt: WithWorkers(0)},
		{name: "negative threshold", opt: WithParallelThreshold(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opt)
			require.ErrorIs(t, err, ErrInvalidOption)
		})
	}
}

func TestConfigValidation(t *testing.T) {
	t.Parallel()

	err := (&Config{engineType: types.Native, workers: 1}).Validate()
	require.ErrorIs(t, err, ErrInvalidOption)
	require.Contains(t, err.Error(), "no log handler specified")

	err = (&Config{handler: DefaultHandler(), workers: 1}).Validate()
	require.Contains(t, err.Error(), "no engine type specified")

	cfg := &Config{}
	require.NoError(t, WithDefaults()(cfg))
	require.NoError(t, cfg.Validate())
	assert.Equal(t, types.Native, cfg.GetEngineType())
	assert.Nil(t, cfg.GetOracle())
}
