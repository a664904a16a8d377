package transport

import (
	"errors"
	"net/http"
)

var errNoRoundTrip = errors.New("transport: no RoundTrip function configured")

// NewCustom wraps a plain function as an http.RoundTripper. It is the
// standard way to fake the wire in tests:
//
//	rt := transport.NewCustom(func(req *http.Request) (*http.Response, error) {
//	    return &http.Response{
//	        StatusCode: http.StatusOK,
//	        Body:       io.NopCloser(strings.NewReader(`{}`)),
//	    }, nil
//	})
//
// A nil roundTrip produces a transport that fails every request, which is
// useful for detecting unintended HTTP calls.
func NewCustom(roundTrip func(req *http.Request) (*http.Response, error)) http.RoundTripper {
	if roundTrip == nil {
		roundTrip = func(req *http.Request) (*http.Response, error) {
			return nil, errNoRoundTrip
		}
	}

	return &customTransport{roundTrip: roundTrip}
}

type customTransport struct {
	roundTrip func(req *http.Request) (*http.Response, error)
}

var _ http.RoundTripper = (*customTransport)(nil)

func (c *customTransport) RoundTrip(request *http.Request) (*http.Response, error) {
	return c.roundTrip(request)
}
