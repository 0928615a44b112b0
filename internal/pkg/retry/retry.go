// Package retry runs an operation again when it fails with a transient error:
// a lost optimistic concurrency race or a database serialization conflict.
// Attempts are bounded and spaced by exponential backoff with optional jitter.
package retry

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"dinesmart/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// PostgreSQL SQLSTATE codes that are safe to retry.
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

type Config struct {
	MaxAttempts   int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
	JitterEnabled bool

	// RetryPredicate marks additional errors as retryable.
	RetryPredicate func(error) bool
}

var DefaultConfig = Config{
	MaxAttempts:   5,
	InitialDelay:  10 * time.Millisecond,
	MaxDelay:      500 * time.Millisecond,
	BackoffFactor: 2.0,
	JitterEnabled: true,
}

// NoRetry runs the operation exactly once.
var NoRetry = Config{MaxAttempts: 1}

// Backoff returns the pause after the given failed attempt (1-based).
func Backoff(attempt int, cfg Config) time.Duration {
	if attempt <= 0 || cfg.InitialDelay <= 0 {
		return 0
	}

	factor := cfg.BackoffFactor
	if factor < 1 {
		factor = 1
	}

	delay := float64(cfg.InitialDelay) * math.Pow(factor, float64(attempt-1))
	if cfg.MaxDelay > 0 && delay > float64(cfg.MaxDelay) {
		delay = float64(cfg.MaxDelay)
	}
	if cfg.JitterEnabled {
		delay *= 0.8 + rand.Float64()*0.4 //nolint:gosec // jitter does not need a secure source
	}
	if delay < 0 {
		delay = 0
	}

	return time.Duration(delay)
}

// IsRetryable reports whether err is transient.
func IsRetryable(err error, cfg Config) bool {
	if err == nil {
		return false
	}
	if cfg.RetryPredicate != nil && cfg.RetryPredicate(err) {
		return true
	}
	if errors.Is(err, errs.ErrConcurrentModification) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return isRetryableCode(pgErr.Code)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return isRetryableCode(string(pqErr.Code))
	}

	return false
}

func isRetryableCode(code string) bool {
	return code == codeSerializationFailure || code == codeDeadlockDetected
}

// Do calls fn until it succeeds, fails with a non-retryable error, the
// attempts are used up or ctx is done. The last error of fn is returned.
func Do(ctx context.Context, cfg Config, fn func(ctx context.Context) error) error {
	_, err := DoValue(ctx, cfg, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

// DoValue is Do for operations that produce a value.
func DoValue[T any](ctx context.Context, cfg Config, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		value, err := fn(ctx)
		if err == nil {
			return value, nil
		}

		lastErr = err
		if !IsRetryable(err, cfg) || attempt == attempts {
			break
		}

		if delay := Backoff(attempt, cfg); delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return zero, ctx.Err()
			}
		}
	}

	return zero, lastErr
}
