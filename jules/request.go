package jules

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/amp-labs/jules-go/retry"
)

// do executes one logical API call: build, send, classify, retry. The
// returned bytes are the raw success payload for the caller to decode.
//
// Network and 5xx failures are retried up to MaxRetries with exponential
// backoff; 4xx classifications return on first occurrence regardless of
// remaining budget. The caller's context cancels both in-flight attempts
// and backoff sleeps.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	if c.closed.Load() {
		return nil, ErrClientClosed
	}

	endpoint := c.cfg.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	return retry.DoValue(ctx, func(ctx context.Context) (json.RawMessage, error) {
		return c.attempt(ctx, method, endpoint, body)
	}, c.retryOpts...)
}

// attempt performs a single transport execution. The request is built
// fresh so each attempt serializes the body and attaches headers anew.
func (c *Client) attempt(ctx context.Context, method, endpoint string, body any) (json.RawMessage, error) {
	var bodyReader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, retry.Abort(fmt.Errorf("jules: marshal request body: %w", err))
		}

		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return nil, retry.Abort(fmt.Errorf("jules: build request: %w", err))
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set(apiKeyHeader, c.cfg.APIKey)

	c.metrics.recordRequest(method)

	rsp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.recordError(KindNetwork)

		return nil, &Error{
			Kind:    KindNetwork,
			Message: err.Error(),
			cause:   err,
		}
	}

	defer rsp.Body.Close() //nolint:errcheck // read side already done

	respBody, err := io.ReadAll(rsp.Body)
	if err != nil {
		c.metrics.recordError(KindNetwork)

		return nil, &Error{
			Kind:    KindNetwork,
			Message: fmt.Sprintf("read response body: %v", err),
			cause:   err,
		}
	}

	if rsp.StatusCode < http.StatusBadRequest {
		return respBody, nil
	}

	var raw map[string]any
	if len(respBody) > 0 {
		// Best effort: error bodies are usually JSON but not always.
		_ = json.Unmarshal(respBody, &raw)
	}

	apiErr := classifyResponse(rsp.StatusCode, rsp.Header, respBody, raw)
	c.metrics.recordError(apiErr.Kind)

	// Temporary() steers the retry runner: server errors loop, the rest
	// short-circuit.
	return nil, apiErr
}

// get issues a GET and decodes the response into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	payload, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}

	return decode(payload, out)
}

// post issues a POST and decodes the response into out when out is
// non-nil.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := c.do(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	return decode(payload, out)
}

func decode(payload json.RawMessage, out any) error {
	if len(payload) == 0 {
		return nil
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("jules: decode response: %w", err)
	}

	return nil
}
