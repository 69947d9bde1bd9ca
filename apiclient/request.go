package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const (
	contentTypeJSON = "application/json; charset=utf-8"
	contentTypeForm = "application/x-www-form-urlencoded"
)

// Get issues a GET request against path.
func (c *Client) Get(ctx context.Context, path string, opts *CallOptions) (*Result, error) {
	return c.Request(ctx, http.MethodGet, path, nil, opts)
}

// Delete issues a DELETE request against path.
func (c *Client) Delete(ctx context.Context, path string, opts *CallOptions) (*Result, error) {
	return c.Request(ctx, http.MethodDelete, path, nil, opts)
}

// Post issues a POST request with data serialized as JSON.
func (c *Client) Post(ctx context.Context, path string, data any, opts *CallOptions) (*Result, error) {
	return c.sendJSON(ctx, http.MethodPost, path, data, opts)
}

// Put issues a PUT request with data serialized as JSON.
func (c *Client) Put(ctx context.Context, path string, data any, opts *CallOptions) (*Result, error) {
	return c.sendJSON(ctx, http.MethodPut, path, data, opts)
}

// PostAction issues a POST request with form serialized as
// application/x-www-form-urlencoded, for the platform's action
// endpoints. This is plain form encoding, not the signed-request
// percent-encoding variant; the two wire formats are distinct.
func (c *Client) PostAction(ctx context.Context, path string, form url.Values, opts *CallOptions) (*Result, error) {
	merged := mergeOptions(opts)
	if merged.ContentType == "" {
		merged.ContentType = contentTypeForm
	}

	return c.do(ctx, http.MethodPost, path, []byte(form.Encode()), &merged)
}

// Request is the general entry point: it issues one request with the
// given method, path, and raw body. A non-nil body defaults to the
// JSON content type unless CallOptions.ContentType overrides it.
func (c *Client) Request(ctx context.Context, method, path string, body []byte, opts *CallOptions) (*Result, error) {
	merged := mergeOptions(opts)

	return c.do(ctx, method, path, body, &merged)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, data any, opts *CallOptions) (*Result, error) {
	var body []byte

	if data != nil {
		encoded, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("apiclient: encode request body: %w", err)
		}

		body = encoded
	}

	return c.Request(ctx, method, path, body, opts)
}

func mergeOptions(opts *CallOptions) CallOptions {
	if opts == nil {
		return CallOptions{}
	}

	return *opts
}

// do performs exactly one round trip and normalizes the reply. No
// retries, no redirect handling beyond the transport default.
func (c *Client) do(ctx context.Context, method, path string, body []byte, opts *CallOptions) (*Result, error) {
	// The path is caller-constructed and may carry a query string; it
	// is passed through without further validation.
	target := c.scheme + "://" + c.host + path

	var reader io.Reader
	if body != nil {
		// bytes.Reader carries its length into the request so
		// Content-Length reflects the exact encoded body.
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, transportError(err)
	}

	accept := opts.Accept
	if accept == "" {
		accept = c.accept
	}
	req.Header.Set("Accept", accept)

	token := opts.AccessToken
	if token == "" {
		token = c.bearerToken
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	if body != nil {
		contentType := opts.ContentType
		if contentType == "" {
			contentType = contentTypeJSON
		}

		req.Header.Set("Content-Type", contentType)
	}

	req.Header.Set("X-Request-ID", c.requestID())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	return normalize(resp)
}

// normalize maps an HTTP reply onto the success/error result contract:
// 204 is success without a body parse attempt, other 2xx replies must
// carry JSON, and everything else is an error with a JSON error body.
func normalize(resp *http.Response) (*Result, error) {
	if resp.StatusCode == http.StatusNoContent {
		return &Result{Status: resp.StatusCode, Value: true}, nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var value any
		if err := json.Unmarshal(raw, &value); err != nil {
			return nil, unexpectedReplyError(resp.StatusCode, raw)
		}

		return &Result{Status: resp.StatusCode, Raw: raw, Value: value}, nil
	}

	var apiErr Error
	if err := json.Unmarshal(raw, &apiErr); err != nil {
		return nil, unexpectedReplyError(resp.StatusCode, raw)
	}

	apiErr.Status = resp.StatusCode

	return nil, &apiErr
}
