package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client is a configurable HTTP client with built-in auth, TLS and proxy
// selection. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	config     Config
	base       *url.URL
}

// New creates a new HTTP client with the given configuration.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base *url.URL
	if cfg.BaseAddress != "" {
		u, err := url.Parse(cfg.BaseAddress)
		if err != nil {
			return nil, fmt.Errorf("httpclient: base_address: %w", err)
		}
		base = u
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = cfg.Proxy.proxyFunc()

	if cfg.TLS.IsEnabled() {
		tlsCfg, err := cfg.TLS.Build()
		if err != nil {
			return nil, fmt.Errorf("httpclient: %w", err)
		}
		transport.TLSClientConfig = tlsCfg
	}

	// No http.Client timeout: executeRequest sets the deadline per request.
	return &Client{
		httpClient: &http.Client{Transport: transport},
		config:     cfg,
		base:       base,
	}, nil
}

// Send executes req with opts layered over it and returns the complete response.
func (c *Client) Send(ctx context.Context, req Request, opts ...RequestOption) (*Response, error) {
	req = req.clone()
	for _, opt := range opts {
		opt(&req)
	}
	return c.executeRequest(ctx, req)
}

// SendAsync starts Send in the background.
func (c *Client) SendAsync(ctx context.Context, req Request, opts ...RequestOption) *Future {
	return NewFuture(ctx, func(ctx context.Context) (*Response, error) {
		return c.Send(ctx, req, opts...)
	})
}

// Request is Send for a request built from method and uri.
func (c *Client) Request(ctx context.Context, method, uri string, opts ...RequestOption) (*Response, error) {
	return c.Send(ctx, Request{Method: method, Path: uri}, opts...)
}

// RequestAsync starts Request in the background.
func (c *Client) RequestAsync(ctx context.Context, method, uri string, opts ...RequestOption) *Future {
	return c.SendAsync(ctx, Request{Method: method, Path: uri}, opts...)
}

// Config reports the effective configuration keyed by option name.
func (c *Client) Config() map[string]any {
	return c.config.ToMap()
}

// Close releases idle connections.
func (c *Client) Close(_ context.Context) error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// executeRequest builds and sends the HTTP request. The request timeout
// replaces the client timeout and covers reading the body.
func (c *Client) executeRequest(ctx context.Context, req Request) (*Response, error) {
	timeout := c.config.Timeout
	if req.Timeout > 0 {
		timeout = req.Timeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, classifyTransferError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return nil, NewTimeoutError(fmt.Errorf("read response body: %w", err))
		}
		return nil, NewProtocolError(resp.StatusCode, fmt.Errorf("read response body: %w", err))
	}

	result := &Response{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		Body:       body,
	}

	if c.config.SurfaceHTTPErrors {
		if classErr := ClassifyStatusCode(resp.StatusCode, body); classErr != nil {
			return result, classErr
		}
	}

	return result, nil
}

// buildRequest constructs an *http.Request from the client config and request.
func (c *Client) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	url := c.resolve(req.Path)

	body, contentType, err := encodeBody(req.Body)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("encode body: %v", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, body)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("create request: %v", err))
	}

	if len(req.Query) > 0 {
		q := httpReq.URL.Query()
		for k, v := range req.Query {
			q.Set(k, v)
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	if c.config.UserAgent != "" {
		httpReq.Header.Set("User-Agent", c.config.UserAgent)
	}

	// Request headers override client defaults.
	for k, v := range c.config.Headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	if body != nil && httpReq.Header.Get("Content-Type") == "" && contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	auth := c.config.Auth
	if req.Auth != nil {
		auth = req.Auth
	}
	auth.apply(httpReq)

	return httpReq, nil
}

// resolve resolves path against the base address (RFC 3986). An absolute
// path replaces the base path, a relative one is appended to its last
// segment, and a full URL is used as is.
func (c *Client) resolve(path string) string {
	if c.base == nil {
		return path
	}
	ref, err := url.Parse(path)
	if err != nil {
		return path
	}
	return c.base.ResolveReference(ref).String()
}

// encodeBody converts a body value into an io.Reader and content type.
func encodeBody(body any) (io.Reader, string, error) {
	if body == nil {
		return nil, "", nil
	}
	switch v := body.(type) {
	case io.Reader:
		return v, "", nil
	case []byte:
		return bytes.NewReader(v), "", nil
	case string:
		return strings.NewReader(v), "text/plain", nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(data), "application/json", nil
	}
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
