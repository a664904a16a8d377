package transport

import (
	"context"
	"net/http"
)

type contextKey string

const contextKeyTransport contextKey = "http-transport"

// WithTransport stores a RoundTripper in the context. Get returns it in
// preference to any constructed transport, which lets tests intercept all
// traffic of code that builds its own client.
func WithTransport(ctx context.Context, transport http.RoundTripper) context.Context {
	return context.WithValue(ctx, contextKeyTransport, transport)
}

func fromContext(ctx context.Context) http.RoundTripper {
	if ctx == nil {
		return nil
	}

	rt, ok := ctx.Value(contextKeyTransport).(http.RoundTripper)
	if !ok {
		return nil
	}

	return rt
}
