package metrics_test

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap/zaptest"

	"github.com/lambda-feedback/regmock/internal/metrics"
	"github.com/lambda-feedback/regmock/internal/server"
	"github.com/lambda-feedback/regmock/registry"
)

func freePort(t *testing.T) int {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	return ln.Addr().(*net.TCPAddr).Port
}

func TestModule_ServesMetrics(t *testing.T) {
	port := freePort(t)

	var srv *server.HttpServer

	app := fxtest.New(t,
		fx.Supply(fx.Annotate(context.Background(), fx.As(new(context.Context)))),
		fx.Supply(zaptest.NewLogger(t)),
		metrics.Module(metrics.Config{Enabled: true, Host: "127.0.0.1", Port: port}),
		registry.Module(registry.Config{}),
		server.Module(server.HttpConfig{Host: "127.0.0.1"}),
		fx.Populate(&srv),
	)
	app.RequireStart()
	defer app.RequireStop()

	res, err := http.Get("http://" + srv.Addr() + "/api/scope/x")
	require.NoError(t, err)
	res.Body.Close()

	res, err = http.Get(fmt.Sprintf("http://127.0.0.1:%d/metrics", port))
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, string(body), `regmock_requests_total{code="200",route="scope"} 1`)

	// the registry port keeps its own routing
	res, err = http.Get("http://" + srv.Addr() + "/metrics")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestModule_Disabled(t *testing.T) {
	var observer registry.Observer

	app := fxtest.New(t,
		fx.Supply(fx.Annotate(context.Background(), fx.As(new(context.Context)))),
		fx.Supply(zaptest.NewLogger(t)),
		metrics.Module(metrics.Config{}),
		fx.Populate(&observer),
	)
	app.RequireStart()
	defer app.RequireStop()

	assert.NotNil(t, observer)
}
