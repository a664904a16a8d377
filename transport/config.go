package transport

import "net/http"

// Option configures transport construction.
type Option func(*config)

type config struct {
	TransportOverrides       []http.RoundTripper
	DisableConnectionPooling bool
	EnableDNSCache           bool
	InsecureTLS              bool
}

// DisableConnectionPooling turns off HTTP keep-alives so every request
// dials a fresh connection.
func DisableConnectionPooling(c *config) {
	c.DisableConnectionPooling = true
}

// EnableDNSCache resolves hostnames through a shared caching resolver,
// reducing DNS traffic under load.
func EnableDNSCache(c *config) {
	c.EnableDNSCache = true
}

// InsecureTLS skips TLS certificate verification. Only for testing against
// self-signed endpoints.
func InsecureTLS(c *config) {
	c.InsecureTLS = true
}

// WithTransportOverride makes Get return the given RoundTripper instead of
// a constructed transport. Nil overrides are ignored.
func WithTransportOverride(transport ...http.RoundTripper) Option {
	return func(c *config) {
		c.TransportOverrides = append(c.TransportOverrides, transport...)
	}
}

func readOptions(opts []Option) *config {
	cfg := &config{}

	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	return cfg
}
