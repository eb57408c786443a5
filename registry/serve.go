package registry

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/lambda-feedback/regmock/internal/server"
)

const shutdownTimeout = 5 * time.Second

// Serve runs the mock registry on 127.0.0.1:port until ctx is cancelled.
func Serve(ctx context.Context, port int, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}

	responder := NewResponder(ResponderParams{Log: log})

	srv := server.New(ctx, server.HttpConfig{
		Host: "127.0.0.1",
		Port: port,
	}, responder, log)

	if err := srv.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
