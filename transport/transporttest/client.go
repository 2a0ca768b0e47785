// Package transporttest provides a programmable transport.Client for tests.
package transporttest

import (
	"context"
	"maps"
	"net/http"
	"sync"

	"github.com/kbukum/vault-transport/httpclient"
)

// Client records every request and answers with Handler.
type Client struct {
	// Handler produces the result of every call. Nil answers 200 with an
	// empty body.
	Handler func(ctx context.Context, req httpclient.Request) (*httpclient.Response, error)

	// Gate, when non-nil, holds asynchronous calls until it is closed or the
	// call is canceled.
	Gate chan struct{}

	// Settings is what Config reports.
	Settings map[string]any

	mu    sync.Mutex
	calls []httpclient.Request
}

// New returns a Client answering 200 to everything.
func New() *Client {
	return &Client{Settings: map[string]any{}}
}

// Respond makes every call return resp and err.
func (c *Client) Respond(resp *httpclient.Response, err error) *Client {
	c.Handler = func(context.Context, httpclient.Request) (*httpclient.Response, error) {
		return resp, err
	}
	return c
}

// Calls returns the requests received so far, with options applied.
func (c *Client) Calls() []httpclient.Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]httpclient.Request(nil), c.calls...)
}

// Send records req and answers it.
func (c *Client) Send(ctx context.Context, req httpclient.Request, opts ...httpclient.RequestOption) (*httpclient.Response, error) {
	req = c.record(req, opts)
	return c.answer(ctx, req)
}

// SendAsync records req and answers it in the background once Gate opens.
func (c *Client) SendAsync(ctx context.Context, req httpclient.Request, opts ...httpclient.RequestOption) *httpclient.Future {
	req = c.record(req, opts)
	return httpclient.NewFuture(ctx, func(ctx context.Context) (*httpclient.Response, error) {
		if c.Gate != nil {
			select {
			case <-c.Gate:
			case <-ctx.Done():
				return nil, httpclient.NewCanceledError(ctx.Err())
			}
		}
		return c.answer(ctx, req)
	})
}

// Request is Send for a request built from method and uri.
func (c *Client) Request(ctx context.Context, method, uri string, opts ...httpclient.RequestOption) (*httpclient.Response, error) {
	return c.Send(ctx, httpclient.Request{Method: method, Path: uri}, opts...)
}

// RequestAsync is SendAsync for a request built from method and uri.
func (c *Client) RequestAsync(ctx context.Context, method, uri string, opts ...httpclient.RequestOption) *httpclient.Future {
	return c.SendAsync(ctx, httpclient.Request{Method: method, Path: uri}, opts...)
}

// Config returns a copy of Settings.
func (c *Client) Config() map[string]any {
	return maps.Clone(c.Settings)
}

func (c *Client) record(req httpclient.Request, opts []httpclient.RequestOption) httpclient.Request {
	req.Headers = maps.Clone(req.Headers)
	req.Query = maps.Clone(req.Query)
	for _, opt := range opts {
		opt(&req)
	}
	c.mu.Lock()
	c.calls = append(c.calls, req)
	c.mu.Unlock()
	return req
}

func (c *Client) answer(ctx context.Context, req httpclient.Request) (*httpclient.Response, error) {
	if c.Handler == nil {
		return &httpclient.Response{StatusCode: http.StatusOK, Headers: map[string]string{}}, nil
	}
	return c.Handler(ctx, req)
}
