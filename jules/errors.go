package jules

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// ErrClientClosed is returned by every operation started after Close.
var ErrClientClosed = errors.New("jules: client is closed")

// Kind classifies an API failure. The set is closed; callers can switch
// exhaustively or use the Is* helpers.
type Kind int

const (
	// KindAPI is any HTTP error status not covered by a more specific
	// kind.
	KindAPI Kind = iota
	// KindValidation is a 400 response: the request was malformed.
	KindValidation
	// KindAuthentication is a 401 response: the API key was missing or
	// rejected.
	KindAuthentication
	// KindNotFound is a 404 response.
	KindNotFound
	// KindRateLimit is a 429 response. The error may carry a RetryAfter
	// hint.
	KindRateLimit
	// KindServer is any 5xx response. Retried automatically.
	KindServer
	// KindNetwork is a transport-level failure (DNS, connect, timeout)
	// with no HTTP status. Retried automatically.
	KindNetwork
	// KindTimeout means a wait operation exceeded its overall deadline.
	KindTimeout
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindNotFound:
		return "not_found"
	case KindRateLimit:
		return "rate_limit"
	case KindServer:
		return "server"
	case KindNetwork:
		return "network"
	case KindTimeout:
		return "timeout"
	case KindAPI:
		return "api"
	default:
		return "api"
	}
}

// Error is the failure type for all API operations. Exactly one Kind is
// set; StatusCode is 0 for transport-level and timeout failures; Raw holds
// the decoded error response body when one was received.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int
	// Raw is the decoded JSON error body, nil when the response had none.
	Raw map[string]any
	// RetryAfter is the service's retry hint on rate-limit errors. Zero
	// means the service gave none. Best-effort metadata, not a contract.
	RetryAfter time.Duration

	cause error
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("jules: %s error (status %d): %s", e.Kind, e.StatusCode, e.Message)
	}

	return fmt.Sprintf("jules: %s error: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying transport error on network failures.
func (e *Error) Unwrap() error {
	return e.cause
}

// Temporary reports whether the failure is worth retrying. Only network
// and server failures are; everything else is terminal on first
// occurrence.
func (e *Error) Temporary() bool {
	return e.Kind == KindNetwork || e.Kind == KindServer
}

// kindOf extracts the Kind from an error chain, or (0, false).
func kindOf(err error) (Kind, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind, true
	}

	return 0, false
}

// IsValidation reports whether err is a 400 validation failure.
func IsValidation(err error) bool { k, ok := kindOf(err); return ok && k == KindValidation }

// IsAuthentication reports whether err is a 401 authentication failure.
func IsAuthentication(err error) bool { k, ok := kindOf(err); return ok && k == KindAuthentication }

// IsNotFound reports whether err is a 404.
func IsNotFound(err error) bool { k, ok := kindOf(err); return ok && k == KindNotFound }

// IsRateLimit reports whether err is a 429.
func IsRateLimit(err error) bool { k, ok := kindOf(err); return ok && k == KindRateLimit }

// IsServer reports whether err is a 5xx.
func IsServer(err error) bool { k, ok := kindOf(err); return ok && k == KindServer }

// IsNetwork reports whether err is a transport-level failure.
func IsNetwork(err error) bool { k, ok := kindOf(err); return ok && k == KindNetwork }

// IsTimeout reports whether err is a wait-deadline failure.
func IsTimeout(err error) bool { k, ok := kindOf(err); return ok && k == KindTimeout }

// SessionFailedError is returned by WaitForCompletion when the session
// reaches the FAILED state. It carries the final session snapshot, which
// is also returned alongside the error.
type SessionFailedError struct {
	Session *Session
}

func (e *SessionFailedError) Error() string {
	if e.Session != nil && e.Session.Name != "" {
		return fmt.Sprintf("jules: session %s failed", e.Session.Name)
	}

	return "jules: session failed"
}

// classifyResponse maps an HTTP error response to a typed *Error.
// The message comes from the standard `error.message` body field when
// present, otherwise the raw body text.
func classifyResponse(statusCode int, header http.Header, body []byte, raw map[string]any) *Error {
	message := string(body)

	if errObj, ok := raw["error"].(map[string]any); ok {
		if msg, ok := errObj["message"].(string); ok && msg != "" {
			message = msg
		}
	}

	apiErr := &Error{
		Message:    message,
		StatusCode: statusCode,
		Raw:        raw,
	}

	switch {
	case statusCode == http.StatusBadRequest:
		apiErr.Kind = KindValidation
	case statusCode == http.StatusUnauthorized:
		apiErr.Kind = KindAuthentication
	case statusCode == http.StatusNotFound:
		apiErr.Kind = KindNotFound
	case statusCode == http.StatusTooManyRequests:
		apiErr.Kind = KindRateLimit
		apiErr.RetryAfter = retryAfterHint(header, raw)
	case statusCode >= http.StatusInternalServerError:
		apiErr.Kind = KindServer
	default:
		apiErr.Kind = KindAPI
	}

	return apiErr
}

// retryAfterHint extracts the retry-after delay from the Retry-After
// header or a top-level retryAfter body field, in seconds. Absent or
// malformed values yield zero; the hint never fails a request.
func retryAfterHint(header http.Header, raw map[string]any) time.Duration {
	if v := header.Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
			return time.Duration(secs) * time.Second
		}
	}

	if secs, ok := raw["retryAfter"].(float64); ok && secs >= 0 {
		return time.Duration(secs * float64(time.Second))
	}

	return 0
}
