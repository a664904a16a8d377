// Package httplog provides an http.RoundTripper that logs requests and
// responses through slog, with sensitive headers redacted.
//
// Every request gets a correlation id so its request, response, and error
// log lines can be tied together:
//
//	rt := httplog.NewRoundTripper(base,
//	    httplog.WithLogger(logger),
//	    httplog.WithRedactedHeaders("X-Goog-Api-Key"),
//	)
package httplog

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/amp-labs/jules-go/retry"
)

const (
	logMsgRequest  = "Sending HTTP request"
	logMsgResponse = "Received HTTP response"
	logMsgError    = "HTTP request failed"
)

// Option configures the logging RoundTripper.
type Option func(*roundTripper)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(rt *roundTripper) {
		if logger != nil {
			rt.logger = logger
		}
	}
}

// WithLevel sets the level request/response lines are logged at.
// Defaults to slog.LevelDebug. Errors are always logged at Warn.
func WithLevel(level slog.Level) Option {
	return func(rt *roundTripper) {
		rt.level = level
	}
}

// WithRedactedHeaders adds header names (case-insensitive) whose values
// are masked in log output.
func WithRedactedHeaders(names ...string) Option {
	return func(rt *roundTripper) {
		for _, name := range names {
			rt.redacted[strings.ToLower(name)] = struct{}{}
		}
	}
}

// WithHeaders enables logging of request headers (redacted ones masked).
func WithHeaders() Option {
	return func(rt *roundTripper) {
		rt.logHeaders = true
	}
}

// NewRoundTripper wraps next so every round trip is logged.
func NewRoundTripper(next http.RoundTripper, opts ...Option) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	rt := &roundTripper{
		next:     next,
		logger:   slog.Default(),
		level:    slog.LevelDebug,
		redacted: map[string]struct{}{},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(rt)
		}
	}

	return rt
}

type roundTripper struct {
	next       http.RoundTripper
	logger     *slog.Logger
	level      slog.Level
	redacted   map[string]struct{}
	logHeaders bool
}

var _ http.RoundTripper = (*roundTripper)(nil)

func (rt *roundTripper) RoundTrip(request *http.Request) (*http.Response, error) {
	ctx := request.Context()
	correlationID := uuid.NewString()

	attrs := []any{
		slog.String("method", request.Method),
		slog.String("url", request.URL.Redacted()),
		slog.String("correlation_id", correlationID),
		slog.Uint64("attempt", uint64(retry.Attempt(ctx))),
	}

	if rt.logHeaders {
		attrs = append(attrs, slog.Any("headers", rt.redactHeaders(request.Header)))
	}

	rt.logger.Log(ctx, rt.level, logMsgRequest, attrs...)

	start := time.Now()

	rsp, err := rt.next.RoundTrip(request)
	if err != nil {
		rt.logger.Log(ctx, slog.LevelWarn, logMsgError,
			slog.String("method", request.Method),
			slog.String("url", request.URL.Redacted()),
			slog.String("correlation_id", correlationID),
			slog.Duration("duration", time.Since(start)),
			slog.String("error", err.Error()),
		)

		return rsp, err
	}

	rt.logger.Log(ctx, rt.level, logMsgResponse,
		slog.String("method", request.Method),
		slog.String("url", request.URL.Redacted()),
		slog.String("correlation_id", correlationID),
		slog.Int("status", rsp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	return rsp, nil
}

// redactHeaders returns a loggable copy of the headers with redacted
// values masked.
func (rt *roundTripper) redactHeaders(headers http.Header) map[string]string {
	out := make(map[string]string, len(headers))

	for name, values := range headers {
		value := strings.Join(values, ", ")

		if _, ok := rt.redacted[strings.ToLower(name)]; ok {
			value = Mask(value)
		}

		out[name] = value
	}

	return out
}

// Mask hides a sensitive value, keeping a short prefix so operators can
// tell which credential was used.
func Mask(value string) string {
	const keep = 4

	if len(value) <= keep {
		return "****"
	}

	return value[:keep] + "****"
}
