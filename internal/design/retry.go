package design

import (
	"context"
	"fmt"
	"time"
)

const (
	defaultMaxAttempts = 3
	defaultBaseDelay   = time.Second
)

type retryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

func (c retryConfig) withDefaults() retryConfig {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = defaultMaxAttempts
	}
	if c.BaseDelay <= 0 {
		c.BaseDelay = defaultBaseDelay
	}
	return c
}

// withRetry runs op up to cfg.MaxAttempts times, sleeping BaseDelay*2^i after
// failed attempt i. Only transient failures are retried; anything else
// propagates immediately. Exhausting the attempts yields ErrBackendUnavailable
// wrapping the last backend error.
func withRetry[T any](ctx context.Context, cfg retryConfig, op func(context.Context) (T, error)) (T, error) {
	cfg = cfg.withDefaults()

	var zero T
	var lastErr error
	for i := 0; i < cfg.MaxAttempts; i++ {
		out, err := op(ctx)
		if err == nil {
			return out, nil
		}
		if !IsTransient(err) {
			return zero, err
		}
		lastErr = err
		if i == cfg.MaxAttempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(cfg.BaseDelay << i):
		}
	}
	return zero, fmt.Errorf("%w: %v", ErrBackendUnavailable, lastErr)
}
