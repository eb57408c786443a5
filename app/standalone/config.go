package standalone

import (
	"github.com/lambda-feedback/regmock/internal/metrics"
	"github.com/lambda-feedback/regmock/internal/server"
	"github.com/lambda-feedback/regmock/registry"
	"github.com/lambda-feedback/regmock/util/conf"
)

type Config struct {
	// HttpConfig represents the configuration for the HTTP server.
	HttpConfig server.HttpConfig `conf:",squash"`

	// Registry represents the configuration for the mock registry.
	Registry registry.Config `conf:",squash"`

	// Metrics represents the configuration for the metrics listener.
	Metrics metrics.Config `conf:",squash"`
}

var DefaultConfig = conf.DefaultConfig{
	"host":         "127.0.0.1",
	"port":         8080,
	"metrics_host": "127.0.0.1",
	"metrics_port": 9090,
}
