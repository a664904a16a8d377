package jules

import (
	"context"
	"fmt"
	"time"
)

// WaitOptions tune WaitForCompletion. Zero fields fall back to the
// client's configured defaults.
type WaitOptions struct {
	// PollInterval is the delay between session fetches.
	PollInterval time.Duration
	// Timeout is the overall deadline for the wait.
	Timeout time.Duration
}

// WaitForCompletion polls the session until it reaches a terminal state.
//
// It returns (session, nil) when the session completes, and
// (session, *SessionFailedError) when it fails, so the caller has the
// final snapshot either way. If the timeout elapses first it returns a
// KindTimeout error, never a non-terminal snapshot. Cancelling ctx aborts
// the wait immediately with ctx.Err(), distinct from the timeout error.
// Fetch failures propagate unchanged beyond the per-request retries.
func (s *SessionsService) WaitForCompletion(ctx context.Context, sessionID string, opts *WaitOptions) (*Session, error) {
	pollInterval := s.client.cfg.PollInterval
	timeout := s.client.cfg.SessionTimeout

	if opts != nil {
		if opts.PollInterval > 0 {
			pollInterval = opts.PollInterval
		}

		if opts.Timeout > 0 {
			timeout = opts.Timeout
		}
	}

	start := time.Now()

	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		session, err := s.Get(ctx, sessionID)
		if err != nil {
			return nil, err
		}

		if session.State.IsTerminal() {
			if session.State == SessionStateFailed {
				return session, &SessionFailedError{Session: session}
			}

			return session, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-deadline.C:
			return nil, &Error{
				Kind: KindTimeout,
				Message: fmt.Sprintf("session %s did not complete within %v",
					sessionID, time.Since(start).Round(time.Millisecond)),
			}
		case <-ticker.C:
		}
	}
}
