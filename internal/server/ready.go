package server

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// WaitReady blocks until addr accepts TCP connections, the timeout elapses
// or ctx is cancelled.
func WaitReady(ctx context.Context, addr string, timeout time.Duration) error {
	b := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(25*time.Millisecond),
		backoff.WithMaxInterval(500*time.Millisecond),
		backoff.WithMaxElapsedTime(timeout),
	)

	dialer := net.Dialer{Timeout: 200 * time.Millisecond}

	op := func() error {
		conn, err := dialer.DialContext(ctx, "tcp", addr)
		if err != nil {
			return err
		}
		return conn.Close()
	}

	if err := backoff.Retry(op, backoff.WithContext(b, ctx)); err != nil {
		return fmt.Errorf("wait for %s: %w", addr, err)
	}

	return nil
}
