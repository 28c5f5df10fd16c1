package helpers

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	t.Parallel()

	t.Run("uses provided handler and group", func(t *testing.T) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, nil)

		gotHandler, logger := SetupLogger(handler, "native", "Compiler")
		require.NotNil(t, logger)
		assert.Equal(t, handler, gotHandler)

		logger.Info("compiled", "nodes", 3)
		assert.Contains(t, buf.String(), "Compiler.nodes=3")
	})

	t.Run("without group", func(t *testing.T) {
		var buf bytes.Buffer
		_, logger := SetupLogger(slog.NewTextHandler(&buf, nil), "native", "")
		logger.Info("hello", "k", "v")
		assert.Contains(t, buf.String(), " k=v")
	})

	t.Run("nil handler falls back", func(t *testing.T) {
		gotHandler, logger := SetupLogger(nil, "quadrature", "")
		assert.NotNil(t, gotHandler)
		assert.NotNil(t, logger)
	})
}
