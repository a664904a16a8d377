package jules

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/jules-go/transport"
)

// newTestClient builds a client whose transport is the given fake and
// whose backoff is zeroed so retry paths run instantly.
func newTestClient(t *testing.T, rt http.RoundTripper) *Client {
	t.Helper()

	cfg, err := NewConfig("test-api-key")
	require.NoError(t, err)

	cfg.Transport = rt
	cfg.RetryBackoffFactor = 0
	cfg.Logger = slogt.New(t)

	client, err := NewClientWithConfig(cfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = client.Close()
	})

	return client
}

// fakeResponder routes each request through fn, capturing calls and
// request bodies as they pass through the wire.
type fakeResponder struct {
	calls    int
	requests []*http.Request
	bodies   []string
	fn       func(call int, req *http.Request) (*http.Response, error)
}

func (f *fakeResponder) transport() http.RoundTripper {
	return transport.NewCustom(func(req *http.Request) (*http.Response, error) {
		f.calls++
		f.requests = append(f.requests, req)

		var body []byte
		if req.Body != nil {
			body, _ = io.ReadAll(req.Body)
		}

		f.bodies = append(f.bodies, string(body))

		return f.fn(f.calls, req)
	})
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}
