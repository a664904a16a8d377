// Package transport builds http.Transport instances with connection
// pooling, optional DNS caching, and optional TLS verification skipping.
//
// The package keeps singleton instances for each option combination so
// that clients sharing a configuration also share a connection pool.
//
//	rt := transport.Get()                        // pooled default
//	rt = transport.Get(transport.EnableDNSCache) // pooled, cached DNS
//
// Pool sizing and dial behavior can be tuned through environment
// variables:
//
//   - HTTP_TRANSPORT_MAX_IDLE_CONNS (default 100)
//   - HTTP_TRANSPORT_IDLE_CONN_TIMEOUT (default 90s)
//   - HTTP_TRANSPORT_TLS_HANDSHAKE_TIMEOUT (default 10s)
//   - HTTP_TRANSPORT_EXPECT_CONTINUE_TIMEOUT (default 1s)
//   - HTTP_TRANSPORT_FORCE_ATTEMPT_HTTP2 (default false)
//   - HTTP_TRANSPORT_DIAL_TIMEOUT (default 30s)
//   - HTTP_TRANSPORT_DIAL_KEEPALIVE (default 30s)
package transport

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"sync"

	"github.com/amp-labs/jules-go/envcfg"
)

// New returns a new http.Transport built from the given options and the
// HTTP_TRANSPORT_* environment variables. Reuse a single instance across
// requests to benefit from connection pooling; prefer Get unless a private
// pool is required.
func New(options ...Option) *http.Transport {
	return create(readOptions(options))
}

// Get returns a RoundTripper for the given options. A transport placed in
// the context via WithTransport takes precedence, then any
// WithTransportOverride option, then a shared singleton instance for the
// option combination.
func Get(ctx context.Context, opts ...Option) http.RoundTripper {
	if rt := fromContext(ctx); rt != nil {
		return rt
	}

	cfg := readOptions(opts)

	for _, rt := range cfg.TransportOverrides {
		if rt != nil {
			return rt
		}
	}

	return instance(cfg)
}

func create(cfg *config) *http.Transport {
	dialer := &net.Dialer{
		Timeout:   envcfg.Duration("HTTP_TRANSPORT_DIAL_TIMEOUT", defaultDialTimeout),
		KeepAlive: envcfg.Duration("HTTP_TRANSPORT_DIAL_KEEPALIVE", defaultKeepAlive),
	}

	trans := &http.Transport{
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     envcfg.Bool("HTTP_TRANSPORT_FORCE_ATTEMPT_HTTP2", defaultForceAttemptHTTP2),
		MaxIdleConns:          envcfg.Int("HTTP_TRANSPORT_MAX_IDLE_CONNS", defaultMaxIdleConns),
		MaxIdleConnsPerHost:   envcfg.Int("HTTP_TRANSPORT_MAX_IDLE_CONNS_PER_HOST", defaultMaxIdleConnsPerHost),
		IdleConnTimeout:       envcfg.Duration("HTTP_TRANSPORT_IDLE_CONN_TIMEOUT", defaultIdleConnTimeout),
		TLSHandshakeTimeout:   envcfg.Duration("HTTP_TRANSPORT_TLS_HANDSHAKE_TIMEOUT", defaultTLSHandshakeTimeout),
		ExpectContinueTimeout: envcfg.Duration("HTTP_TRANSPORT_EXPECT_CONTINUE_TIMEOUT", defaultExpectContinueTimeout),
	}

	if cfg.DisableConnectionPooling {
		trans.DisableKeepAlives = true
	}

	if cfg.EnableDNSCache {
		useDNSCacheDialer(trans, dialer)
	}

	if cfg.InsecureTLS {
		trans.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true, //nolint:gosec // explicit opt-in
		}
	}

	return trans
}

// instanceKey identifies one option combination. Transports are cached per
// key so callers with identical settings share a connection pool.
type instanceKey struct {
	unpooled bool
	dnsCache bool
	insecure bool
}

var (
	instancesMu sync.Mutex
	instances   = map[instanceKey]*http.Transport{}
)

func instance(cfg *config) *http.Transport {
	key := instanceKey{
		unpooled: cfg.DisableConnectionPooling,
		dnsCache: cfg.EnableDNSCache,
		insecure: cfg.InsecureTLS,
	}

	instancesMu.Lock()
	defer instancesMu.Unlock()

	if trans, ok := instances[key]; ok {
		return trans
	}

	trans := create(&config{
		DisableConnectionPooling: key.unpooled,
		EnableDNSCache:           key.dnsCache,
		InsecureTLS:              key.insecure,
	})
	instances[key] = trans

	return trans
}
