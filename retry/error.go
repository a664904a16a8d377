package retry

import "errors"

// ErrExhausted is returned when the retry budget refuses an attempt.
var ErrExhausted = errors.New("retry budget exhausted")

// Error lets operations tell the retry loop whether a failure is worth
// retrying. If an error in the chain implements Error and Temporary()
// returns false, the loop stops immediately.
type Error interface {
	// Temporary reports whether retrying could help.
	Temporary() bool
	error
}

// permanentError marks an error as non-retriable. Produced by Abort.
type permanentError struct {
	error
}

func (e *permanentError) Temporary() bool { return false }

func (e *permanentError) Unwrap() error { return e.error }

// Abort wraps an error so the retry loop returns it without further
// attempts. Use it for failures where retrying cannot change the outcome,
// such as validation errors.
func Abort(err error) Error {
	return &permanentError{err}
}
