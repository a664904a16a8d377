package jules

import (
	"context"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_EmptyKey(t *testing.T) {
	t.Parallel()

	_, err := NewClient("")
	require.ErrorIs(t, err, errAPIKeyRequired)
}

func TestNewClientWithConfig_InvalidConfig(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig("key")
	require.NoError(t, err)

	cfg.Timeout = -1

	_, err = NewClientWithConfig(cfg)
	require.ErrorIs(t, err, errTimeoutNotPositive)
}

func TestClientStats(t *testing.T) {
	t.Parallel()

	fake := &fakeResponder{
		fn: func(call int, _ *http.Request) (*http.Response, error) {
			if call == 1 {
				return jsonResponse(http.StatusServiceUnavailable, `{}`), nil
			}

			return jsonResponse(http.StatusOK, `{"id":"s1"}`), nil
		},
	}
	client := newTestClient(t, fake.transport())

	_, err := client.Sessions.Get(context.Background(), "s1")
	require.NoError(t, err)

	stats := client.Stats()
	// The 503 counts as both a request attempt and an error.
	assert.Equal(t, 2, stats["request_count"])
	assert.Equal(t, 1, stats["error_count"])
}

func TestClientMetrics_Registered(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()

	fake := &fakeResponder{
		fn: func(_ int, _ *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, `{"id":"s1"}`), nil
		},
	}

	cfg, err := NewConfig("test-api-key")
	require.NoError(t, err)

	cfg.Transport = fake.transport()
	cfg.RetryBackoffFactor = 0
	cfg.Registerer = reg

	client, err := NewClientWithConfig(cfg)
	require.NoError(t, err)

	t.Cleanup(func() { _ = client.Close() })

	_, err = client.Sessions.Get(context.Background(), "s1")
	require.NoError(t, err)

	got := testutil.ToFloat64(client.metrics.requests.WithLabelValues(http.MethodGet))
	assert.InDelta(t, 1, got, 0)
}

func TestClientClose_Idempotent(t *testing.T) {
	t.Parallel()

	fake := &fakeResponder{
		fn: func(_ int, _ *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, `{}`), nil
		},
	}
	client := newTestClient(t, fake.transport())

	require.NoError(t, client.Close())
	require.NoError(t, client.Close())

	_, err := client.Sessions.Get(context.Background(), "s1")
	require.ErrorIs(t, err, ErrClientClosed)
	assert.Zero(t, fake.calls)
}
