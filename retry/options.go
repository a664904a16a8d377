package retry

import "time"

// Option configures a Runner or ValueRunner.
type Option func(*options)

type options struct {
	attempts Attempts
	backoff  Backoff
	jitter   Jitter
	budget   *Budget
	timeout  time.Duration
}

func readOptions(opts []Option) *options {
	cfg := &options{
		attempts: defaultAttempts,
		backoff: ExpBackoff{
			Factor: defaultBackoffFactor,
			Max:    defaultMaxBackoffSecs * time.Second,
		},
		jitter: WithoutJitter,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	return cfg
}

// WithAttempts sets the maximum number of attempts, counting the initial
// call. Zero means unlimited.
func WithAttempts(a Attempts) Option {
	return func(o *options) {
		o.attempts = a
	}
}

// WithBackoff sets the backoff strategy used between attempts.
func WithBackoff(b Backoff) Option {
	return func(o *options) {
		o.backoff = b
	}
}

// WithJitter sets the jitter strategy applied to backoff delays.
func WithJitter(j Jitter) Option {
	return func(o *options) {
		o.jitter = j
	}
}

// WithBudget attaches a retry budget shared across operations. The budget
// refuses retries when the retry rate becomes disproportionate to the
// initial call rate.
func WithBudget(b *Budget) Option {
	return func(o *options) {
		o.budget = b
	}
}

// WithTimeout bounds each individual attempt. An attempt that exceeds the
// timeout is canceled through its context and counts as a failure.
func WithTimeout(t time.Duration) Option {
	return func(o *options) {
		o.timeout = t
	}
}
