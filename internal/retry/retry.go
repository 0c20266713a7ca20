package retry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"
)

// Policy retries an operation MaxRetries times after the first failed call.
// The delay before retry n is BaseDelay * Multiplier^(n-1); a Multiplier of 1 gives a constant delay.
type Policy struct {
	MaxRetries int
	BaseDelay  time.Duration
	Multiplier float64
}

func Constant(retries int, delay time.Duration) Policy {
	return Policy{MaxRetries: retries, BaseDelay: delay, Multiplier: 1}
}

func Exponential(retries int, base time.Duration) Policy {
	return Policy{MaxRetries: retries, BaseDelay: base, Multiplier: 2}
}

// Delay returns the wait before the given retry, counting from 1.
func (p Policy) Delay(retry int) time.Duration {
	if retry < 1 {
		return 0
	}

	multiplier := p.Multiplier
	if multiplier < 1 {
		multiplier = 1
	}

	return time.Duration(float64(p.BaseDelay) * math.Pow(multiplier, float64(retry-1)))
}

// Do calls fn until it succeeds, the retries are exhausted or ctx is done.
func Do[T any](ctx context.Context, log *slog.Logger, p Policy, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	for r := 0; ; r++ {
		res, err := fn(ctx)
		if err == nil {
			return res, nil
		}

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return zero, err
		}

		if r >= p.MaxRetries {
			return zero, fmt.Errorf("%s failed after %d attempts: %w", op, r+1, err)
		}

		delay := p.Delay(r + 1)

		log.WarnContext(ctx, "operation failed, retrying",
			slog.String("op", op),
			slog.Int("attempt", r+1),
			slog.Int("max_retries", p.MaxRetries),
			slog.Duration("delay", delay),
			slog.String("err", err.Error()),
		)

		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		}
	}
}

// Run is Do for operations without a result.
func Run(ctx context.Context, log *slog.Logger, p Policy, op string, fn func(ctx context.Context) error) error {
	_, err := Do(ctx, log, p, op, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})

	return err
}
