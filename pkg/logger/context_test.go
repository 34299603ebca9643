package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotodo/pkg/logger"
)

func TestLogResolution(t *testing.T) {
	t.Run("logger from context wins", func(t *testing.T) {
		contextLogger, err := logger.NewLogger(logger.Development, "debug")
		require.NoError(t, err)

		ctx := logger.NewContext(context.Background(), contextLogger)
		assert.Same(t, contextLogger, logger.Log(ctx))
	})

	t.Run("global logger serves bare context", func(t *testing.T) {
		globalLogger, err := logger.NewLogger(logger.Development, "info")
		require.NoError(t, err)

		logger.SetGlobalLogger(globalLogger)
		assert.Same(t, globalLogger, logger.Log(context.Background()))
	})

	t.Run("bare context without global logger still yields a logger", func(t *testing.T) {
		logger.SetGlobalLogger(nil)
		assert.NotNil(t, logger.Log(context.Background()))
	})
}

func TestRequestIDContext(t *testing.T) {
	t.Run("explicit request id is preserved", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "req-123")

		id, ok := logger.GetRequestID(ctx)
		require.True(t, ok)
		assert.Equal(t, "req-123", id)
	})

	t.Run("empty request id is generated", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "")

		id, ok := logger.GetRequestID(ctx)
		require.True(t, ok)
		assert.NotEmpty(t, id)
	})

	t.Run("bare context has no request id", func(t *testing.T) {
		_, ok := logger.GetRequestID(context.Background())
		assert.False(t, ok)
	})
}
