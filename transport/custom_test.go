package transport

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustom(t *testing.T) {
	t.Parallel()

	var captured *http.Request

	rt := NewCustom(func(req *http.Request) (*http.Response, error) {
		captured = req

		return &http.Response{
			StatusCode: http.StatusTeapot,
			Body:       io.NopCloser(strings.NewReader("short and stout")),
		}, nil
	})

	req, err := http.NewRequest(http.MethodGet, "https://example.com/pot", nil)
	require.NoError(t, err)

	rsp, err := rt.RoundTrip(req)
	require.NoError(t, err)

	defer rsp.Body.Close()

	assert.Same(t, req, captured)
	assert.Equal(t, http.StatusTeapot, rsp.StatusCode)
}

func TestNewCustom_NilFailsEveryRequest(t *testing.T) {
	t.Parallel()

	rt := NewCustom(nil)

	req, err := http.NewRequest(http.MethodGet, "https://example.com/", nil)
	require.NoError(t, err)

	_, err = rt.RoundTrip(req) //nolint:bodyclose // no response on error
	require.ErrorIs(t, err, errNoRoundTrip)
}
