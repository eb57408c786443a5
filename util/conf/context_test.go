package conf_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lambda-feedback/regmock/util/conf"
)

func TestContextWithConfig(t *testing.T) {
	ctx := conf.ContextWithConfig(context.Background(), testConfig{Port: 4250})

	cfg, err := conf.GetConfigFromContext[testConfig](ctx)
	require.NoError(t, err)
	assert.Equal(t, 4250, cfg.Port)
}

func TestGetConfigFromContext_Missing(t *testing.T) {
	_, err := conf.GetConfigFromContext[testConfig](context.Background())
	assert.ErrorIs(t, err, conf.ErrConfigNotFound)
}

func TestGetConfigFromContext_WrongType(t *testing.T) {
	ctx := conf.ContextWithConfig(context.Background(), "not a config")

	_, err := conf.GetConfigFromContext[testConfig](ctx)
	assert.ErrorIs(t, err, conf.ErrInvalidConfig)
}
