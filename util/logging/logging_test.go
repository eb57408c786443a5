package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_Level(t *testing.T) {
	log, err := NewLogger("debug", FormatDevelopment, nil)
	require.NoError(t, err)

	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	log, err := NewLogger("chatty", FormatProduction, nil)
	require.NoError(t, err)

	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
}

func TestParseLevel_Empty(t *testing.T) {
	assert.Equal(t, zapcore.InfoLevel, parseLevel("").Level())
}

func TestLoggerFromContext(t *testing.T) {
	log := zap.NewNop()
	ctx := ContextWithLogger(context.Background(), log)

	actual, err := LoggerFromContext(ctx)
	require.NoError(t, err)
	assert.Same(t, log, actual)
}

func TestLoggerFromContext_Missing(t *testing.T) {
	_, err := LoggerFromContext(context.Background())
	assert.ErrorIs(t, err, ErrNoLoggerInContext)
}

func TestNamedLogger(t *testing.T) {
	log := NamedLogger("registry")(zap.NewNop().Named("serve"))

	assert.Equal(t, "serve.registry", log.Name())
}
