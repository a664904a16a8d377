package retry

import "context"

// Attempts is the maximum number of attempts for an operation, counting the
// initial call. Zero means retry without limit.
type Attempts uint

type ctxKey string

const attemptKey ctxKey = "attempt"

// withAttempt records the current attempt index in the context so the
// operation can observe which attempt it is on.
func withAttempt(ctx context.Context, attempt uint) context.Context {
	return context.WithValue(ctx, attemptKey, attempt)
}

// Attempt returns the zero-based attempt index stored in the context, or 0
// if the context did not come from a retry loop.
func Attempt(ctx context.Context) uint {
	attempt, ok := ctx.Value(attemptKey).(uint)
	if !ok {
		return 0
	}

	return attempt
}
