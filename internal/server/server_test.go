package server_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/lambda-feedback/regmock/internal/server"
)

func loopback() server.HttpConfig {
	return server.HttpConfig{Host: "127.0.0.1", Port: 0}
}

func startServer(t *testing.T, handler http.Handler) *server.HttpServer {
	t.Helper()

	srv := server.New(context.Background(), loopback(), handler, zaptest.NewLogger(t))
	require.NoError(t, srv.Start(context.Background()))

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		assert.NoError(t, srv.Shutdown(ctx))
	})

	return srv
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()

	res, err := http.Get(url)
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res, string(body)
}

func TestHttpServer_Start_ServesHandler(t *testing.T) {
	srv := startServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	}))

	res, body := get(t, "http://"+srv.Addr()+"/anything")

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "ok", body)
}

func TestHttpServer_Start_FailsIfStarted(t *testing.T) {
	srv := startServer(t, http.NotFoundHandler())

	err := srv.Start(context.Background())
	assert.ErrorIs(t, err, server.ErrServerStarted)
}

func TestHttpServer_Start_FailsIfAddressInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	port := ln.Addr().(*net.TCPAddr).Port

	srv := server.New(context.Background(), server.HttpConfig{Host: "127.0.0.1", Port: port}, http.NotFoundHandler(), zaptest.NewLogger(t))

	assert.Error(t, srv.Start(context.Background()))
}

func TestHttpServer_Addr_BeforeStart(t *testing.T) {
	srv := server.New(context.Background(), server.HttpConfig{Host: "127.0.0.1", Port: 4250}, http.NotFoundHandler(), nil)

	assert.Equal(t, "127.0.0.1:4250", srv.Addr())
}

func TestHttpServer_Panic_AbortsSingleRequest(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/panic", func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	})
	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})

	srv := startServer(t, mux)

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}

	_, err := client.Get("http://" + srv.Addr() + "/panic")
	assert.Error(t, err)

	res, err := client.Get("http://" + srv.Addr() + "/ok")
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestHttpServer_Shutdown_NotStarted(t *testing.T) {
	srv := server.New(context.Background(), loopback(), http.NotFoundHandler(), nil)

	assert.NoError(t, srv.Shutdown(context.Background()))
}

func TestHttpServer_Shutdown_StopsServing(t *testing.T) {
	srv := server.New(context.Background(), loopback(), http.NotFoundHandler(), zaptest.NewLogger(t))
	require.NoError(t, srv.Start(context.Background()))

	addr := srv.Addr()
	require.NoError(t, srv.Shutdown(context.Background()))

	_, err := net.DialTimeout("tcp", addr, 100*time.Millisecond)
	assert.Error(t, err)
}

func TestNewHttpServer_MountsGroupedHandlers(t *testing.T) {
	scope := server.AsHttpHandler("/scope/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "scope")
	}))

	srv := server.NewHttpServer(server.HttpServerParams{
		Context:  context.Background(),
		Config:   loopback(),
		Handlers: []*server.HttpHandler{scope.Handler},
		Logger:   zaptest.NewLogger(t),
	})
	require.NoError(t, srv.Start(context.Background()))
	defer srv.Shutdown(context.Background())

	res, body := get(t, "http://"+srv.Addr()+"/scope/x")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "scope", body)

	res, _ = get(t, "http://"+srv.Addr()+"/other")
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

// pathEcho reports the request path it was handed.
type pathEcho struct{}

func (*pathEcho) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Path", r.URL.Path)
	w.WriteHeader(http.StatusNoContent)
}

func TestNewHandler_CatchAllServedDirectly(t *testing.T) {
	echo := &pathEcho{}
	catchAll := server.AsHttpHandler("/", echo)

	handler := server.NewHandler([]*server.HttpHandler{catchAll.Handler})
	assert.Same(t, echo, handler)

	srv := startServer(t, handler)

	res, _ := get(t, "http://"+srv.Addr()+"//unclean/../path")
	assert.Equal(t, http.StatusNoContent, res.StatusCode)
	assert.Equal(t, "//unclean/../path", res.Header.Get("X-Path"))
}

func TestNewHandler_MultipleHandlersUseMux(t *testing.T) {
	catchAll := server.AsHttpHandler("/", &pathEcho{})
	scope := server.AsHttpHandler("/scope/", &pathEcho{})

	handler := server.NewHandler([]*server.HttpHandler{catchAll.Handler, scope.Handler})

	assert.IsType(t, &http.ServeMux{}, handler)
}
