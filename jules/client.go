package jules

import (
	"log/slog"
	"net/http"

	"go.uber.org/atomic"

	"github.com/amp-labs/jules-go/httplog"
	"github.com/amp-labs/jules-go/retry"
	"github.com/amp-labs/jules-go/transport"
)

// Client is the entry point to the Jules API. It is safe for concurrent
// use; independent requests share the underlying connection pool.
type Client struct {
	cfg        *Config
	httpClient *http.Client
	retryOpts  []retry.Option
	metrics    *metrics
	closed     atomic.Bool

	// Sessions manages agent work units.
	Sessions *SessionsService
	// Activities reads the event timeline within a session.
	Activities *ActivitiesService
	// Sources lists the repositories the service can act on.
	Sources *SourcesService
}

// NewClient creates a Client with default configuration.
func NewClient(apiKey string) (*Client, error) {
	cfg, err := NewConfig(apiKey)
	if err != nil {
		return nil, err
	}

	return NewClientWithConfig(cfg)
}

// NewClientWithConfig creates a Client from the given configuration.
func NewClientWithConfig(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := &Client{
		cfg:        cfg,
		httpClient: buildHTTPClient(cfg),
		metrics:    newMetrics(cfg.Registerer),
		retryOpts: []retry.Option{
			retry.WithAttempts(retry.Attempts(cfg.MaxRetries + 1)),
			retry.WithBackoff(retry.ExpBackoff{
				Factor: cfg.RetryBackoffFactor,
				Max:    cfg.MaxBackoff,
			}),
			retry.WithJitter(cfg.Jitter),
			retry.WithTimeout(cfg.Timeout),
			retry.WithBudget(cfg.RetryBudget),
		},
	}

	client.Sessions = &SessionsService{client: client}
	client.Activities = &ActivitiesService{client: client}
	client.Sources = &SourcesService{client: client}

	return client, nil
}

// buildHTTPClient assembles the transport stack: base transport (pooled,
// optionally DNS-cached, optionally insecure), then transparent response
// decompression, then request/response logging with the API key redacted.
func buildHTTPClient(cfg *Config) *http.Client {
	if cfg.HTTPClient != nil {
		return cfg.HTTPClient
	}

	rt := cfg.Transport
	if rt == nil {
		var opts []transport.Option

		if !cfg.VerifySSL {
			opts = append(opts, transport.InsecureTLS)
		}

		if cfg.EnableDNSCache {
			opts = append(opts, transport.EnableDNSCache)
		}

		rt = transport.New(opts...)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	rt = transport.NewDecompressor(rt)
	rt = httplog.NewRoundTripper(rt,
		httplog.WithLogger(logger),
		httplog.WithRedactedHeaders(apiKeyHeader),
	)

	return &http.Client{Transport: rt}
}

// Close marks the client closed and releases idle connections. Requests
// already in flight (including their remaining retries) are allowed to
// finish; operations started after Close fail with ErrClientClosed.
// Close is idempotent.
func (c *Client) Close() error {
	c.closed.Store(true)
	c.httpClient.CloseIdleConnections()

	return nil
}

// Stats returns the number of request attempts and failed attempts made
// over the client's lifetime.
func (c *Client) Stats() map[string]int {
	return map[string]int{
		"request_count": int(c.metrics.requestCount.Load()),
		"error_count":   int(c.metrics.errorCount.Load()),
	}
}
