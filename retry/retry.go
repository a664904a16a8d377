// Package retry executes operations that may fail transiently, with
// exponential backoff between attempts. It supports jitter, per-attempt
// timeouts, retry budgets, and permanent-error short-circuiting.
//
// The retry loop is synchronous: the only suspension points are the backoff
// sleeps, and those honor the caller's context.
//
// Basic usage:
//
//	err := retry.Do(ctx, func(ctx context.Context) error {
//	    return callService(ctx)
//	})
//
// Non-retriable failures are marked with Abort:
//
//	if resp.StatusCode == http.StatusNotFound {
//	    return retry.Abort(errNotFound)
//	}
package retry

import (
	"context"
	"errors"
	"time"
)

const (
	defaultAttempts       = 4
	defaultBackoffFactor  = 1.0
	defaultMaxBackoffSecs = 10
)

// Runner executes operations with retry logic.
type Runner interface {
	Do(ctx context.Context, f func(ctx context.Context) error) error
}

// ValueRunner executes operations that return a value with retry logic.
// On failure it returns the zero value of T along with the final error.
type ValueRunner[T any] interface {
	Do(ctx context.Context, f func(ctx context.Context) (T, error)) (T, error)
}

// NewRunner creates a Runner. Without options it makes 4 attempts (one
// initial call plus 3 retries) with a 1-second backoff factor capped at 10
// seconds, and no jitter.
func NewRunner(opts ...Option) Runner {
	return &runner{opts: readOptions(opts)}
}

// NewValueRunner creates a ValueRunner with the same defaults as NewRunner.
func NewValueRunner[T any](opts ...Option) ValueRunner[T] {
	return &valueRunner[T]{opts: readOptions(opts)}
}

type runner struct {
	opts *options
}

func (r *runner) Do(ctx context.Context, f func(ctx context.Context) error) error {
	return do(ctx, r.opts, f)
}

type valueRunner[T any] struct {
	opts *options
}

func (r *valueRunner[T]) Do(ctx context.Context, f func(ctx context.Context) (T, error)) (T, error) {
	var out T

	err := do(ctx, r.opts, func(ctx context.Context) error {
		var err error

		out, err = f(ctx)

		return err
	})
	if err != nil {
		var zero T

		return zero, err
	}

	return out, nil
}

// do is the core retry loop. It returns:
//   - nil once the operation succeeds
//   - ctx.Err() if the caller's context is canceled, including during a
//     backoff sleep
//   - ErrExhausted if the retry budget refuses a retry
//   - the unwrapped error if the operation aborts with a permanent error
//   - the last attempt's error once all attempts are used
func do(ctx context.Context, opts *options, operation func(ctx context.Context) error) error {
	var lastErr error

	for attempt := uint(0); Attempts(attempt) < opts.attempts || opts.attempts == 0; attempt++ {
		if attempt > 0 {
			if err := sleep(ctx, opts.jitter.apply(opts.backoff.Delay(attempt))); err != nil {
				return err
			}
		}

		// The budget always admits initial calls; retries are refused
		// when the retry rate is out of proportion to the call rate.
		if !opts.budget.sendOK(attempt != 0) {
			return ErrExhausted
		}

		err := runAttempt(withAttempt(ctx, attempt), operation, opts.timeout)
		if err == nil {
			return nil
		}

		// Caller cancellation wins over whatever the attempt reported.
		if ctx.Err() != nil {
			return ctx.Err()
		}

		var retryErr Error
		if errors.As(err, &retryErr) && !retryErr.Temporary() {
			var p *permanentError
			if errors.As(err, &p) {
				return p.error
			}

			return err
		}

		lastErr = err
	}

	return lastErr
}

// runAttempt executes one attempt, bounding it with the per-attempt timeout
// when one is configured.
func runAttempt(ctx context.Context, operation func(ctx context.Context) error, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	return operation(ctx)
}

// sleep blocks for the given duration or until the context is done,
// whichever comes first.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Do creates a Runner and executes f in a single call.
func Do(ctx context.Context, f func(ctx context.Context) error, opts ...Option) error {
	return NewRunner(opts...).Do(ctx, f)
}

// DoValue creates a ValueRunner and executes f in a single call.
func DoValue[T any](ctx context.Context, f func(ctx context.Context) (T, error), opts ...Option) (T, error) {
	return NewValueRunner[T](opts...).Do(ctx, f)
}
