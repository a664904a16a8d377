package jules

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/amp-labs/jules-go/envcfg"
	"github.com/amp-labs/jules-go/retry"
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://jules.googleapis.com/v1alpha"

	// DefaultTimeout bounds each request attempt.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxRetries is the number of retries after the initial
	// attempt for network and server failures.
	DefaultMaxRetries = 3

	// DefaultRetryBackoffFactor is the base backoff in seconds; the
	// delay before retry n is factor * 2^(n-1) seconds.
	DefaultRetryBackoffFactor = 1.0

	// DefaultMaxBackoff caps the delay between retries.
	DefaultMaxBackoff = 10 * time.Second

	// DefaultPollInterval is how often WaitForCompletion fetches the
	// session.
	DefaultPollInterval = 5 * time.Second

	// DefaultSessionTimeout is the overall WaitForCompletion deadline.
	DefaultSessionTimeout = 600 * time.Second
)

// apiKeyHeader carries the API key on every request.
const apiKeyHeader = "X-Goog-Api-Key"

var (
	errAPIKeyRequired     = errors.New("jules: API key is required")
	errBaseURLRequired    = errors.New("jules: base URL is required")
	errTimeoutNotPositive = errors.New("jules: timeout must be positive")
	errNegativeRetries    = errors.New("jules: max retries must be non-negative")
	errNegativeBackoff    = errors.New("jules: retry backoff factor must be non-negative")
	errMaxBackoffRequired = errors.New("jules: max backoff must be positive")
	errPollNotPositive    = errors.New("jules: poll interval must be positive")
)

// Config holds client configuration. Zero-value fields are filled with the
// defaults above by NewConfig and ConfigFromEnv; a hand-built Config must
// set every field it cares about before Validate.
type Config struct {
	// APIKey authenticates every request. Required.
	APIKey string

	// BaseURL is the API endpoint, without a trailing slash.
	BaseURL string

	// Timeout bounds each individual request attempt.
	Timeout time.Duration

	// MaxRetries is the retry count after the initial attempt; the total
	// attempt budget is MaxRetries+1.
	MaxRetries int

	// RetryBackoffFactor is the base backoff in seconds.
	RetryBackoffFactor float64

	// MaxBackoff caps the delay between retries.
	MaxBackoff time.Duration

	// VerifySSL controls TLS certificate verification. Disable only
	// against test endpoints.
	VerifySSL bool

	// PollInterval is the default WaitForCompletion poll cadence.
	PollInterval time.Duration

	// SessionTimeout is the default WaitForCompletion deadline.
	SessionTimeout time.Duration

	// EnableDNSCache routes DNS lookups through a shared caching
	// resolver.
	EnableDNSCache bool

	// Jitter randomizes backoff delays. Defaults to none so retry timing
	// is deterministic; set retry.FullJitter for fleets of clients.
	Jitter retry.Jitter

	// RetryBudget, when set, refuses retries once they become
	// disproportionate to initial call volume. Shared across all of the
	// client's operations.
	RetryBudget *retry.Budget

	// HTTPClient overrides the constructed client wholesale. Transport,
	// decompression, and logging wrapping are skipped when set.
	HTTPClient *http.Client

	// Transport overrides only the underlying RoundTripper; decompression and
	// logging are still layered on top.
	Transport http.RoundTripper

	// Logger receives request/response debug lines. Defaults to
	// slog.Default().
	Logger *slog.Logger

	// Registerer, when set, registers the client's request and error
	// counters with Prometheus. Leave nil to keep counters unregistered
	// (they still back Stats).
	Registerer prometheus.Registerer
}

// NewConfig returns a Config with all defaults applied.
func NewConfig(apiKey string) (*Config, error) {
	if apiKey == "" {
		return nil, errAPIKeyRequired
	}

	return &Config{
		APIKey:             apiKey,
		BaseURL:            DefaultBaseURL,
		Timeout:            DefaultTimeout,
		MaxRetries:         DefaultMaxRetries,
		RetryBackoffFactor: DefaultRetryBackoffFactor,
		MaxBackoff:         DefaultMaxBackoff,
		VerifySSL:          true,
		PollInterval:       DefaultPollInterval,
		SessionTimeout:     DefaultSessionTimeout,
		Jitter:             retry.WithoutJitter,
	}, nil
}

// ConfigFromEnv builds a Config from JULES_* environment variables:
// JULES_API_KEY (required), JULES_BASE_URL, JULES_TIMEOUT,
// JULES_MAX_RETRIES, JULES_RETRY_BACKOFF_FACTOR, JULES_MAX_BACKOFF,
// JULES_VERIFY_SSL, JULES_POLL_INTERVAL, JULES_SESSION_TIMEOUT.
// Durations accept either Go duration syntax or bare seconds.
func ConfigFromEnv() (*Config, error) {
	cfg, err := NewConfig(envcfg.String("JULES_API_KEY", ""))
	if err != nil {
		return nil, err
	}

	cfg.BaseURL = envcfg.String("JULES_BASE_URL", cfg.BaseURL)
	cfg.Timeout = envcfg.Duration("JULES_TIMEOUT", cfg.Timeout)
	cfg.MaxRetries = envcfg.Int("JULES_MAX_RETRIES", cfg.MaxRetries)
	cfg.RetryBackoffFactor = envcfg.Float("JULES_RETRY_BACKOFF_FACTOR", cfg.RetryBackoffFactor)
	cfg.MaxBackoff = envcfg.Duration("JULES_MAX_BACKOFF", cfg.MaxBackoff)
	cfg.VerifySSL = envcfg.Bool("JULES_VERIFY_SSL", cfg.VerifySSL)
	cfg.PollInterval = envcfg.Duration("JULES_POLL_INTERVAL", cfg.PollInterval)
	cfg.SessionTimeout = envcfg.Duration("JULES_SESSION_TIMEOUT", cfg.SessionTimeout)

	return cfg, nil
}

// Validate reports the first configuration problem found.
func (c *Config) Validate() error {
	switch {
	case c.APIKey == "":
		return errAPIKeyRequired
	case c.BaseURL == "":
		return errBaseURLRequired
	case c.Timeout <= 0:
		return errTimeoutNotPositive
	case c.MaxRetries < 0:
		return errNegativeRetries
	case c.RetryBackoffFactor < 0:
		return errNegativeBackoff
	case c.MaxBackoff <= 0:
		return errMaxBackoffRequired
	case c.PollInterval <= 0:
		return errPollNotPositive
	default:
		return nil
	}
}
